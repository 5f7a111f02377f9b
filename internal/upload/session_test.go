package upload_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"syllabus-tracker/internal/model"
	"syllabus-tracker/internal/upload"
	"syllabus-tracker/pkg/parser"
)

var errTransport = errors.New("connection refused")

func hw3Report() parser.Report {
	return parser.Report{
		UpcomingAssignments: []parser.UpcomingAssignment{{Name: "HW3", DueDate: "2024-12-10", Details: "Math"}},
		ImportantDates:      []parser.ImportantDate{},
	}
}

func TestNewSessionIsIdle(t *testing.T) {
	s := upload.NewSession()
	st := s.State()

	if st.Status != upload.StatusIdle {
		t.Errorf("expected idle, got %s", st.Status)
	}
	if s.Current() != 0 {
		t.Errorf("expected zero token before first upload, got %d", s.Current())
	}
	if st.Upcoming == nil || st.Priority == nil {
		t.Errorf("lists should be empty, not nil")
	}
}

func TestHappyPath(t *testing.T) {
	s := upload.NewSession()

	tok := s.Begin("syllabus.pdf")
	if st := s.State(); st.Status != upload.StatusUploading || st.FileName != "syllabus.pdf" {
		t.Fatalf("unexpected state after Begin: %+v", st)
	}

	handle, err := s.ApplyUpload(tok, parser.UploadResult{ParsedPath: "f1", Message: "parsed"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != "f1" {
		t.Fatalf("expected handle f1, got %q", handle)
	}
	if st := s.State(); st.Status != upload.StatusReportPending {
		t.Fatalf("expected report pending, got %s", st.Status)
	}

	if err := s.ApplyReport(tok, hw3Report(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := upload.State{
		Generation:   tok,
		FileName:     "syllabus.pdf",
		Status:       upload.StatusReportReady,
		ParsedHandle: "f1",
		Message:      "parsed",
		Upcoming:     []model.Assignment{{Name: "HW3", DueDate: "2024-12-10", Details: "Math"}},
		Priority:     []model.PriorityAssignment{},
	}
	if diff := cmp.Diff(want, s.State()); diff != "" {
		t.Errorf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestUploadFailure(t *testing.T) {
	s := upload.NewSession()
	tok := s.Begin("syllabus.pdf")

	handle, err := s.ApplyUpload(tok, parser.UploadResult{}, errTransport)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != "" {
		t.Errorf("failed upload must not request a report")
	}

	st := s.State()
	if st.Status != upload.StatusUploadFailed {
		t.Errorf("expected upload_failed, got %s", st.Status)
	}
	if st.Error != upload.MsgUploadFailed {
		t.Errorf("unexpected error message: %q", st.Error)
	}
	if st.FileName != "" {
		t.Errorf("file reference should be cleared, got %q", st.FileName)
	}
	if len(st.Upcoming) != 0 || len(st.Priority) != 0 {
		t.Errorf("lists should be empty: %+v", st)
	}
}

func TestUploadWithoutHandleIsSoftSuccess(t *testing.T) {
	s := upload.NewSession()
	tok := s.Begin("syllabus.txt")

	handle, err := s.ApplyUpload(tok, parser.UploadResult{Message: "ok"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle != "" {
		t.Errorf("expected no report fetch, got handle %q", handle)
	}

	st := s.State()
	if st.Status != upload.StatusNoReport || !st.Status.Terminal() {
		t.Errorf("expected terminal no_report, got %s", st.Status)
	}
	if st.Error != "" {
		t.Errorf("soft success must not set an error, got %q", st.Error)
	}
	if len(st.Upcoming) != 0 || len(st.Priority) != 0 {
		t.Errorf("lists should be empty")
	}

	if err := s.ApplyReport(tok, hw3Report(), nil); !errors.Is(err, upload.ErrUnexpectedResult) {
		t.Errorf("expected ErrUnexpectedResult, got %v", err)
	}
}

func TestReportFailure(t *testing.T) {
	s := upload.NewSession()
	tok := s.Begin("syllabus.pdf")
	s.ApplyUpload(tok, parser.UploadResult{ParsedPath: "f1"}, nil)

	if err := s.ApplyReport(tok, parser.Report{}, errTransport); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := s.State()
	if st.Status != upload.StatusReportFailed {
		t.Errorf("expected report_failed, got %s", st.Status)
	}
	if st.Error != upload.MsgReportFailed {
		t.Errorf("unexpected error message: %q", st.Error)
	}
	if upload.MsgReportFailed == upload.MsgUploadFailed {
		t.Errorf("upload and report failure messages must differ")
	}
	if len(st.Upcoming) != 0 || len(st.Priority) != 0 {
		t.Errorf("lists should be empty")
	}
}

func TestStaleReportIsDropped(t *testing.T) {
	s := upload.NewSession()

	tokA := s.Begin("a.pdf")
	if _, err := s.ApplyUpload(tokA, parser.UploadResult{ParsedPath: "a"}, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tokB := s.Begin("b.pdf")
	if tokB <= tokA {
		t.Fatalf("tokens must increase: a=%d b=%d", tokA, tokB)
	}

	if err := s.ApplyReport(tokA, hw3Report(), nil); !errors.Is(err, upload.ErrStaleAttempt) {
		t.Fatalf("expected ErrStaleAttempt, got %v", err)
	}
	st := s.State()
	if st.Generation != tokB || st.Status != upload.StatusUploading || st.FileName != "b.pdf" {
		t.Errorf("stale report leaked into state: %+v", st)
	}
	if len(st.Upcoming) != 0 {
		t.Errorf("stale assignments applied: %+v", st.Upcoming)
	}

	// A stale failure is dropped as well.
	if err := s.ApplyReport(tokA, parser.Report{}, errTransport); !errors.Is(err, upload.ErrStaleAttempt) {
		t.Fatalf("expected ErrStaleAttempt, got %v", err)
	}
	if s.State().Error != "" {
		t.Errorf("stale failure surfaced an error")
	}
}

func TestStaleUploadIsDropped(t *testing.T) {
	s := upload.NewSession()
	tokA := s.Begin("a.pdf")
	s.Begin("b.pdf")

	handle, err := s.ApplyUpload(tokA, parser.UploadResult{ParsedPath: "a"}, nil)
	if !errors.Is(err, upload.ErrStaleAttempt) || handle != "" {
		t.Fatalf("expected stale drop, got handle=%q err=%v", handle, err)
	}
}

func TestBeginResetsPreviousResults(t *testing.T) {
	s := upload.NewSession()
	tok := s.Begin("a.pdf")
	s.ApplyUpload(tok, parser.UploadResult{ParsedPath: "f1", Message: "m"}, nil)
	s.ApplyReport(tok, hw3Report(), nil)

	s.Begin("b.pdf")
	st := s.State()
	if st.Message != "" || st.Error != "" || st.ParsedHandle != "" {
		t.Errorf("previous attempt state not reset: %+v", st)
	}
	if len(st.Upcoming) != 0 || len(st.Priority) != 0 {
		t.Errorf("previous lists not reset: %+v", st)
	}
}

func TestRecoverAfterFailure(t *testing.T) {
	s := upload.NewSession()
	tok := s.Begin("a.pdf")
	s.ApplyUpload(tok, parser.UploadResult{}, errTransport)

	tok = s.Begin("a.pdf")
	if s.State().Status != upload.StatusUploading {
		t.Fatalf("new file must restart at uploading")
	}
	s.ApplyUpload(tok, parser.UploadResult{ParsedPath: "f1"}, nil)
	s.ApplyReport(tok, hw3Report(), nil)

	if st := s.State(); st.Status != upload.StatusReportReady || st.Error != "" {
		t.Errorf("expected recovery, got %+v", st)
	}
}

func TestStateIsACopy(t *testing.T) {
	s := upload.NewSession()
	tok := s.Begin("a.pdf")
	s.ApplyUpload(tok, parser.UploadResult{ParsedPath: "f1"}, nil)
	s.ApplyReport(tok, hw3Report(), nil)

	st := s.State()
	st.Upcoming[0].Name = "mutated"

	if s.State().Upcoming[0].Name != "HW3" {
		t.Errorf("State leaked internal slice")
	}
}
