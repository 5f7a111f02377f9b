package http

import (
	"github.com/gin-gonic/gin"

	"syllabus-tracker/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Uploads go through the per-client rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:id", h.Detail)
		sessions.POST("/:id/upload", mw.RateLimitUpload(), h.Upload)
		sessions.GET("/:id/assignments", h.Assignments)
		sessions.POST("/:id/notes", h.AddNote)
		sessions.GET("/:id/notes", h.ListNotes)
		sessions.POST("/:id/chat", h.SendChat)
		sessions.GET("/:id/chat", h.ListChat)
		sessions.POST("/:id/calendar/sync", h.SyncCalendar)
		sessions.GET("/:id/calendar.ics", h.ExportCalendar)
	}
}
