package httpserver

import (
	"github.com/gin-gonic/gin"

	"syllabus-tracker/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "syllabus-tracker"
)

type healthResp struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Version  string `json:"version"`
	Sessions int    `json:"sessions,omitempty"`
	Calendar bool   `json:"calendar_sync,omitempty"`
}

func (srv HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: HealthVersion}
}

// healthCheck
// @Summary     Health Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("healthy"))
}

// readyCheck also reports how many dashboard sessions are live.
// @Summary     Readiness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := srv.newHealthResp("ready")
	resp.Sessions = srv.boards.Len()
	resp.Calendar = srv.dashboard.Calendar != nil
	response.OK(c, resp)
}

// liveCheck
// @Summary     Liveness Check
// @Tags        Health
// @Produce     json
// @Success     200 {object} healthResp
// @Router      /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.newHealthResp("alive"))
}
