package dashboard

import (
	"context"

	"syllabus-tracker/internal/chat"
	"syllabus-tracker/internal/notes"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Sessions
	CreateSession(ctx context.Context) (CreateSessionOutput, error)
	Detail(ctx context.Context, sessionID string) (Snapshot, error)

	// Upload runs the upload and report pipeline for one file and returns
	// the snapshot once this attempt settles or is superseded.
	Upload(ctx context.Context, input UploadInput) (Snapshot, error)

	// Notes
	AddNote(ctx context.Context, input AddNoteInput) (AddNoteOutput, error)
	ListNotes(ctx context.Context, sessionID string) ([]notes.Group, error)

	// Chat
	SendChat(ctx context.Context, input SendChatInput) (SendChatOutput, error)
	ListChat(ctx context.Context, sessionID string) ([]chat.Message, error)

	// Calendar
	SyncCalendar(ctx context.Context, sessionID string) (SyncCalendarOutput, error)
	ExportCalendar(ctx context.Context, sessionID string) (ExportCalendarOutput, error)
}
