package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	dashboardHTTP "syllabus-tracker/internal/dashboard/delivery/http"
	dashboardUC "syllabus-tracker/internal/dashboard/usecase"
	"syllabus-tracker/internal/middleware"
)

// setupDashboardDomain wires the dashboard use case and registers
// /api/v1/sessions.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if err := dashboardHTTP.RegisterValidators(); err != nil {
		return fmt.Errorf("dashboardHTTP.RegisterValidators: %w", err)
	}

	uc := dashboardUC.New(srv.l, srv.boards, srv.parser, srv.dateMath, srv.dashboard)
	h := dashboardHTTP.New(srv.l, uc)
	dashboardHTTP.RegisterRoutes(api, h, mw)

	if srv.dashboard.Calendar != nil {
		srv.l.Infof(ctx, "Dashboard domain registered (Google Calendar sync enabled)")
	} else {
		srv.l.Infof(ctx, "Dashboard domain registered")
	}
	return nil
}
