package parser

import (
	"context"
	"io"
)

// IParser is the syllabus parsing service.
// Implementations are safe for concurrent use.
type IParser interface {
	// Upload sends a syllabus file and returns the parsed-file handle, if any.
	Upload(ctx context.Context, fileName string, content io.Reader) (UploadResult, error)

	// GenerateReport fetches the assignments extracted from a parsed file.
	GenerateReport(ctx context.Context, parsedPath string) (Report, error)
}
