package dashboard

import (
	"io"
	"time"

	"syllabus-tracker/internal/assignment"
	"syllabus-tracker/internal/chat"
	"syllabus-tracker/internal/notes"
	"syllabus-tracker/internal/upload"
)

// Snapshot is everything a dashboard page renders.
type Snapshot struct {
	Upload      upload.State
	Assignments assignment.View
	NoteGroups  []notes.Group
	Chat        []chat.Message
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

type UploadInput struct {
	SessionID string
	FileName  string
	Size      int64
	Content   io.Reader
}

type AddNoteInput struct {
	SessionID string
	Text      string
	Tag       string
}

type SendChatInput struct {
	SessionID string
	Text      string
}

// --- UseCase Outputs ---

type CreateSessionOutput struct {
	SessionID string
	Snapshot  Snapshot
}

type AddNoteOutput struct {
	Note   notes.Note
	Groups []notes.Group
}

type SendChatOutput struct {
	Reply    chat.Message
	Messages []chat.Message
}

type SyncCalendarOutput struct {
	Created  int
	Existing int
	Skipped  int
}

type ExportCalendarOutput struct {
	FileName string
	Content  []byte
}
