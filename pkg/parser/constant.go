package parser

const (
	UploadPath = "/upload"
	ReportPath = "/generate-report"

	// FileField is the multipart field carrying the syllabus.
	FileField = "file"

	maxErrorBody = 4 << 10
)
