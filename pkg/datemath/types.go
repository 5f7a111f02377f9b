package datemath

import "errors"

// ErrUnrecognizedDate is returned when a string matches no known date form.
var ErrUnrecognizedDate = errors.New("unrecognized date")

// absoluteLayouts are the date forms syllabi and the parsing service emit.
var absoluteLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"Monday, January 2, 2006",
}

// yearlessLayouts are resolved against the reference year.
var yearlessLayouts = []string{
	"01/02",
	"1/2",
}
