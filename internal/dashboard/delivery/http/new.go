package http

import (
	"github.com/gin-gonic/gin"

	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/pkg/log"
)

// Handler is the public interface for the dashboard HTTP delivery layer.
type Handler interface {
	CreateSession(c *gin.Context)
	Detail(c *gin.Context)
	Upload(c *gin.Context)
	Assignments(c *gin.Context)
	AddNote(c *gin.Context)
	ListNotes(c *gin.Context)
	SendChat(c *gin.Context)
	ListChat(c *gin.Context)
	SyncCalendar(c *gin.Context)
	ExportCalendar(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the dashboard domain.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
