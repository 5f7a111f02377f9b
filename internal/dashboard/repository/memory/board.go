package memory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/dashboard/repository"
	pkgLog "syllabus-tracker/pkg/log"
)

const (
	DefaultMaxBoards = 1000
	DefaultTTL       = 2 * time.Hour
)

type implRepository struct {
	l      pkgLog.Logger
	boards *expirable.LRU[string, *dashboard.Board]
}

// New creates an in-memory board store. Boards idle for longer than ttl
// expire; past maxBoards the least recently used board is evicted.
func New(l pkgLog.Logger, maxBoards int, ttl time.Duration) repository.BoardRepository {
	if maxBoards <= 0 {
		maxBoards = DefaultMaxBoards
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	onEvict := func(id string, _ *dashboard.Board) {
		l.Debugf(context.Background(), "dashboard session %s evicted", id)
	}

	return &implRepository{
		l:      l,
		boards: expirable.NewLRU[string, *dashboard.Board](maxBoards, onEvict, ttl),
	}
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateBoardOptions) (string, *dashboard.Board, error) {
	id := uuid.NewString()
	b := dashboard.NewBoard(dashboard.WithChatStrings(opt.ChatGreeting, opt.ChatReply))
	r.boards.Add(id, b)
	return id, b, nil
}

// Get returns the board for id and refreshes its expiry.
func (r *implRepository) Get(ctx context.Context, id string) (*dashboard.Board, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, repository.ErrNotFound
	}

	b, ok := r.boards.Get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	// expirable.LRU does not slide the TTL on Get; re-adding does.
	r.boards.Add(id, b)
	return b, nil
}

func (r *implRepository) Len() int {
	return r.boards.Len()
}
