package upload

import "errors"

const (
	MsgUploadFailed = "Failed to upload the file. Please try again."
	MsgReportFailed = "Failed to generate the report. Please try again."
)

var (
	// ErrStaleAttempt is returned when a result arrives for an attempt that a
	// newer upload has superseded. The result has not been applied.
	ErrStaleAttempt = errors.New("upload attempt superseded")
	// ErrUnexpectedResult is returned when a result does not match the
	// attempt's current stage.
	ErrUnexpectedResult = errors.New("result does not match attempt stage")
)
