package usecase

import (
	"context"

	"syllabus-tracker/internal/chat"
	"syllabus-tracker/internal/dashboard"
)

func (uc *implUseCase) SendChat(ctx context.Context, input dashboard.SendChatInput) (dashboard.SendChatOutput, error) {
	_, b, err := uc.board(ctx, input.SessionID)
	if err != nil {
		return dashboard.SendChatOutput{}, err
	}

	reply, msgs, err := b.SendChat(input.Text)
	if err != nil {
		return dashboard.SendChatOutput{}, err
	}

	return dashboard.SendChatOutput{Reply: reply, Messages: msgs}, nil
}

func (uc *implUseCase) ListChat(ctx context.Context, sessionID string) ([]chat.Message, error) {
	_, b, err := uc.board(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return b.ChatMessages(), nil
}
