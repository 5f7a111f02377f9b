package repository

import (
	"context"

	"syllabus-tracker/internal/dashboard"
)

// BoardRepository stores live dashboard boards by session id.
type BoardRepository interface {
	Create(ctx context.Context, opt CreateBoardOptions) (string, *dashboard.Board, error)
	Get(ctx context.Context, id string) (*dashboard.Board, error)
	Len() int
}
