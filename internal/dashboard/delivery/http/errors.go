package http

import (
	"errors"
	"net/http"

	"syllabus-tracker/internal/chat"
	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/notes"
	pkgErrors "syllabus-tracker/pkg/errors"
)

var (
	errNoteFields     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Please fill out both fields.")
	errEmptyMessage   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Please type a message.")
	errFileRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Please choose a file to upload.")
	errFileTooLarge   = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "The file is too large.")
	errUnsupportedExt = pkgErrors.NewHTTPError(http.StatusBadRequest, "Only .txt, .docx and .pdf files are supported.")
	errEmptyFile      = pkgErrors.NewHTTPError(http.StatusBadRequest, "The file is empty.")
	errSessionMissing = pkgErrors.NewHTTPError(http.StatusNotFound, "Session not found.")
	errNoCalendar     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Google Calendar is not configured.")
	errNothingDated   = pkgErrors.NewHTTPError(http.StatusBadRequest, "There are no dated assignments to export.")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, notes.ErrValidation):
		return errNoteFields
	case errors.Is(err, chat.ErrEmptyMessage):
		return errEmptyMessage
	case errors.Is(err, dashboard.ErrUnsupportedFileType):
		return errUnsupportedExt
	case errors.Is(err, dashboard.ErrEmptyFile):
		return errEmptyFile
	case errors.Is(err, dashboard.ErrSessionNotFound):
		return errSessionMissing
	case errors.Is(err, dashboard.ErrCalendarNotConfigured):
		return errNoCalendar
	case errors.Is(err, dashboard.ErrNothingToExport):
		return errNothingDated
	default:
		return pkgErrors.ErrInternalServerError
	}
}
