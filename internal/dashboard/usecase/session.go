package usecase

import (
	"context"
	"fmt"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/dashboard/repository"
	pkgLog "syllabus-tracker/pkg/log"
)

func (uc *implUseCase) CreateSession(ctx context.Context) (dashboard.CreateSessionOutput, error) {
	id, b, err := uc.repo.Create(ctx, repository.CreateBoardOptions{
		ChatGreeting: uc.cfg.ChatGreeting,
		ChatReply:    uc.cfg.ChatReply,
	})
	if err != nil {
		return dashboard.CreateSessionOutput{}, fmt.Errorf("repo.Create: %w", err)
	}

	uc.l.Infof(pkgLog.WithSessionID(ctx, id), "dashboard session created (%d live)", uc.repo.Len())
	return dashboard.CreateSessionOutput{SessionID: id, Snapshot: b.Snapshot()}, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sessionID string) (dashboard.Snapshot, error) {
	_, b, err := uc.board(ctx, sessionID)
	if err != nil {
		return dashboard.Snapshot{}, err
	}
	return b.Snapshot(), nil
}
