package upload

import (
	"syllabus-tracker/internal/model"
	"syllabus-tracker/pkg/parser"
)

// Session is the upload state machine for one dashboard. Only the attempt
// started by the latest Begin is current; results carrying an older token are
// rejected with ErrStaleAttempt. Session is not safe for concurrent use.
type Session struct {
	gen   Token
	state State
}

// NewSession returns a session in the Idle state.
func NewSession() *Session {
	return &Session{state: emptyState(0, StatusIdle)}
}

// Begin starts a new attempt for fileName and returns its token. All display
// state from earlier attempts is cleared before any call is issued.
func (s *Session) Begin(fileName string) Token {
	s.gen++
	s.state = emptyState(s.gen, StatusUploading)
	s.state.FileName = fileName
	return s.gen
}

// Current returns the token of the current attempt, zero before any upload.
func (s *Session) Current() Token {
	return s.gen
}

// ApplyUpload records the outcome of the upload call for tok. It returns the
// parsed handle when a report fetch must follow, or "" when the attempt has
// reached a terminal state.
func (s *Session) ApplyUpload(tok Token, res parser.UploadResult, callErr error) (string, error) {
	if err := s.check(tok, StatusUploading); err != nil {
		return "", err
	}

	if callErr != nil {
		s.state = emptyState(s.gen, StatusUploadFailed)
		s.state.Error = MsgUploadFailed
		return "", nil
	}

	s.state.Message = res.Message
	if res.ParsedPath == "" {
		s.state.Status = StatusNoReport
		return "", nil
	}

	s.state.Status = StatusReportPending
	s.state.ParsedHandle = res.ParsedPath
	return res.ParsedPath, nil
}

// ApplyReport records the outcome of the report fetch for tok. Both lists are
// replaced on success and cleared on failure.
func (s *Session) ApplyReport(tok Token, report parser.Report, callErr error) error {
	if err := s.check(tok, StatusReportPending); err != nil {
		return err
	}

	if callErr != nil {
		s.state.Status = StatusReportFailed
		s.state.Message = ""
		s.state.Error = MsgReportFailed
		s.state.Upcoming = []model.Assignment{}
		s.state.Priority = []model.PriorityAssignment{}
		return nil
	}

	upcoming := make([]model.Assignment, 0, len(report.UpcomingAssignments))
	for _, a := range report.UpcomingAssignments {
		upcoming = append(upcoming, model.Assignment{Name: a.Name, DueDate: a.DueDate, Details: a.Details})
	}
	priority := make([]model.PriorityAssignment, 0, len(report.ImportantDates))
	for _, d := range report.ImportantDates {
		priority = append(priority, model.PriorityAssignment{Event: d.Event, Date: d.Date})
	}

	s.state.Status = StatusReportReady
	s.state.Error = ""
	s.state.Upcoming = upcoming
	s.state.Priority = priority
	return nil
}

// State returns a copy of the current display state.
func (s *Session) State() State {
	return s.state.clone()
}

func (s *Session) check(tok Token, want Status) error {
	if tok != s.gen {
		return ErrStaleAttempt
	}
	if s.state.Status != want {
		return ErrUnexpectedResult
	}
	return nil
}

func emptyState(gen Token, status Status) State {
	return State{
		Generation: gen,
		Status:     status,
		Upcoming:   []model.Assignment{},
		Priority:   []model.PriorityAssignment{},
	}
}
