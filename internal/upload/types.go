package upload

import "syllabus-tracker/internal/model"

// Status is the lifecycle state of the current upload attempt.
type Status string

const (
	StatusIdle          Status = "idle"
	StatusUploading     Status = "uploading"
	StatusReportPending Status = "report_pending"
	StatusReportReady   Status = "report_ready"
	// StatusNoReport: upload succeeded but returned no parsed handle.
	// Observably the same as a ready report with empty lists.
	StatusNoReport     Status = "no_report"
	StatusUploadFailed Status = "upload_failed"
	StatusReportFailed Status = "report_failed"
)

// Terminal reports whether no further call is outstanding for the attempt.
func (s Status) Terminal() bool {
	switch s {
	case StatusIdle, StatusReportReady, StatusNoReport, StatusUploadFailed, StatusReportFailed:
		return true
	}
	return false
}

// Token identifies one upload attempt. Tokens increase monotonically; zero
// is never issued.
type Token uint64

// State is everything the dashboard shows about the current attempt.
type State struct {
	Generation   Token
	FileName     string
	Status       Status
	ParsedHandle string
	Message      string
	Error        string
	Upcoming     []model.Assignment
	Priority     []model.PriorityAssignment
}

func (st State) clone() State {
	out := st
	out.Upcoming = append(make([]model.Assignment, 0, len(st.Upcoming)), st.Upcoming...)
	out.Priority = append(make([]model.PriorityAssignment, 0, len(st.Priority)), st.Priority...)
	return out
}
