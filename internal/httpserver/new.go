package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"syllabus-tracker/internal/dashboard/repository"
	"syllabus-tracker/internal/dashboard/usecase"
	"syllabus-tracker/internal/middleware"
	"syllabus-tracker/pkg/datemath"
	"syllabus-tracker/pkg/log"
	"syllabus-tracker/pkg/parser"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Dashboard domain
	boards     repository.BoardRepository
	parser     parser.IParser
	dateMath   *datemath.Parser
	dashboard  usecase.Config
	middleware middleware.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Dashboard domain
	Boards     repository.BoardRepository
	Parser     parser.IParser
	DateMath   *datemath.Parser
	Dashboard  usecase.Config
	Middleware middleware.Config
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		boards:      cfg.Boards,
		parser:      cfg.Parser,
		dateMath:    cfg.DateMath,
		dashboard:   cfg.Dashboard,
		middleware:  cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.boards == nil {
		return errors.New("board repository is required")
	}
	if srv.parser == nil {
		return errors.New("parser is required")
	}
	if srv.dateMath == nil {
		return errors.New("date parser is required")
	}
	return nil
}
