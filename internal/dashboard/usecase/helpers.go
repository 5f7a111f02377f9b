package usecase

import (
	"context"
	"errors"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/dashboard/repository"
	"syllabus-tracker/internal/upload"
	pkgLog "syllabus-tracker/pkg/log"
)

// board resolves a session id and tags ctx with it for logging.
func (uc *implUseCase) board(ctx context.Context, sessionID string) (context.Context, *dashboard.Board, error) {
	b, err := uc.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ctx, nil, dashboard.ErrSessionNotFound
		}
		return ctx, nil, err
	}
	return pkgLog.WithSessionID(ctx, sessionID), b, nil
}

// logDropped records a result that was not applied to the board.
func (uc *implUseCase) logDropped(ctx context.Context, tok upload.Token, stage string, err error) {
	if errors.Is(err, upload.ErrStaleAttempt) {
		uc.l.Debugf(ctx, "attempt %d: stale %s result dropped", tok, stage)
		return
	}
	uc.l.Warnf(ctx, "attempt %d: %s result not applied: %v", tok, stage, err)
}
