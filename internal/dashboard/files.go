package dashboard

import (
	"path/filepath"
	"strings"
)

// AcceptedExtensions are the syllabus formats the dashboard forwards.
var AcceptedExtensions = []string{".txt", ".docx", ".pdf"}

// ValidateFileName checks the client-side file type filter.
func ValidateFileName(name string) error {
	ext := strings.ToLower(filepath.Ext(name))
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return nil
		}
	}
	return ErrUnsupportedFileType
}
