package usecase

import (
	"time"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/dashboard/repository"
	"syllabus-tracker/pkg/datemath"
	"syllabus-tracker/pkg/gcalendar"
	pkgLog "syllabus-tracker/pkg/log"
	"syllabus-tracker/pkg/parser"
)

// Config holds the optional collaborators of the dashboard use case.
type Config struct {
	ChatGreeting string
	ChatReply    string

	// Calendar is nil when Google Calendar is not configured.
	Calendar   gcalendar.ICalendar
	CalendarID string
	// SyncConcurrency bounds parallel calendar inserts.
	SyncConcurrency int
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.BoardRepository
	parser   parser.IParser
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

var _ dashboard.UseCase = (*implUseCase)(nil)

// New creates a new dashboard UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.BoardRepository,
	p parser.IParser,
	dateMath *datemath.Parser,
	cfg Config,
) *implUseCase {
	if cfg.SyncConcurrency <= 0 {
		cfg.SyncConcurrency = 4
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		parser:   p,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}
