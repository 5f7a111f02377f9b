package errors

import "net/http"

// HTTPError is an error that carries the status code it should be served with.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError returns a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)
