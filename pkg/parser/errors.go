package parser

import "fmt"

// StatusError is returned when the parsing service answers with a non-2xx status.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("parser API %s error %d: %s", e.Op, e.Code, e.Body)
}
