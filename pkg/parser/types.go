package parser

// UploadResult is the body of a successful POST /upload.
type UploadResult struct {
	ParsedPath string `json:"parsed_path,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Report is the body of a successful GET /generate-report.
type Report struct {
	ImportantDates      []ImportantDate      `json:"important_dates,omitempty"`
	UpcomingAssignments []UpcomingAssignment `json:"upcoming_assignments,omitempty"`
}

type ImportantDate struct {
	Event string `json:"event"`
	Date  string `json:"date"`
}

type UpcomingAssignment struct {
	Name    string `json:"name"`
	DueDate string `json:"due_date"`
	Details string `json:"details"`
}
