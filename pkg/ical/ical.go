// Package ical writes minimal RFC 5545 calendars of all-day events.
package ical

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const (
	ContentType = "text/calendar; charset=utf-8"

	dateLayout  = "20060102"
	stampLayout = "20060102T150405Z"
	maxLineLen  = 75
)

// Event is a single all-day VEVENT.
type Event struct {
	UID         string
	Summary     string
	Description string
	Day         time.Time
}

// Calendar is a VCALENDAR document.
type Calendar struct {
	ProdID string
	Name   string
	Events []Event
}

// Encode writes cal to w with CRLF line endings and folded long lines.
func Encode(w io.Writer, cal Calendar, stamp time.Time) error {
	lw := &lineWriter{w: w}

	lw.line("BEGIN:VCALENDAR")
	lw.line("VERSION:2.0")
	lw.line("PRODID:" + escape(cal.ProdID))
	lw.line("CALSCALE:GREGORIAN")
	if cal.Name != "" {
		lw.line("X-WR-CALNAME:" + escape(cal.Name))
	}

	dtstamp := stamp.UTC().Format(stampLayout)
	for _, ev := range cal.Events {
		lw.line("BEGIN:VEVENT")
		lw.line("UID:" + escape(ev.UID))
		lw.line("DTSTAMP:" + dtstamp)
		lw.line("DTSTART;VALUE=DATE:" + ev.Day.Format(dateLayout))
		lw.line("DTEND;VALUE=DATE:" + ev.Day.AddDate(0, 0, 1).Format(dateLayout))
		lw.line("SUMMARY:" + escape(ev.Summary))
		if ev.Description != "" {
			lw.line("DESCRIPTION:" + escape(ev.Description))
		}
		lw.line("END:VEVENT")
	}

	lw.line("END:VCALENDAR")
	return lw.err
}

var textEscaper = strings.NewReplacer(`\`, `\\`, ";", `\;`, ",", `\,`, "\r\n", `\n`, "\n", `\n`)

// escape applies TEXT value escaping.
func escape(s string) string {
	return textEscaper.Replace(s)
}

type lineWriter struct {
	w   io.Writer
	err error
}

// line writes one content line, folding at 75 octets without splitting a
// UTF-8 sequence.
func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}

	var b strings.Builder
	limit := maxLineLen
	n := 0
	for _, r := range s {
		size := len(string(r))
		if n+size > limit {
			b.WriteString("\r\n ")
			n = 0
			limit = maxLineLen - 1
		}
		b.WriteRune(r)
		n += size
	}
	b.WriteString("\r\n")

	_, lw.err = fmt.Fprint(lw.w, b.String())
}
