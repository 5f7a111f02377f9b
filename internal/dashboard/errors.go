package dashboard

import "errors"

var (
	ErrSessionNotFound       = errors.New("dashboard session not found")
	ErrUnsupportedFileType   = errors.New("unsupported file type, expected .txt, .docx or .pdf")
	ErrEmptyFile             = errors.New("uploaded file is empty")
	ErrCalendarNotConfigured = errors.New("google calendar is not configured")
	ErrNothingToExport       = errors.New("no assignments to export")
)
