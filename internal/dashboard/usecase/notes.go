package usecase

import (
	"context"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/notes"
)

func (uc *implUseCase) AddNote(ctx context.Context, input dashboard.AddNoteInput) (dashboard.AddNoteOutput, error) {
	ctx, b, err := uc.board(ctx, input.SessionID)
	if err != nil {
		return dashboard.AddNoteOutput{}, err
	}

	n, groups, err := b.AddNote(input.Text, input.Tag)
	if err != nil {
		return dashboard.AddNoteOutput{}, err
	}

	uc.l.Debugf(ctx, "note added under tag %q", n.Tag)
	return dashboard.AddNoteOutput{Note: n, Groups: groups}, nil
}

func (uc *implUseCase) ListNotes(ctx context.Context, sessionID string) ([]notes.Group, error) {
	_, b, err := uc.board(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return b.NoteGroups(), nil
}
