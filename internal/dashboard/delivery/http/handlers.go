package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"syllabus-tracker/pkg/ical"
	"syllabus-tracker/pkg/response"
)

// CreateSession godoc
// @Summary     Open a dashboard session
// @Description Creates an idle dashboard with no notes and a greeted chat panel.
// @Tags        Dashboard
// @Produce     json
// @Success     201 {object} createSessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newCreateSessionResp(output))
}

// Detail godoc
// @Summary     Get dashboard snapshot
// @Description Returns upload status, assignment lists, grouped notes and chat.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} snapshotResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSnapshotResp(output))
}

// Upload godoc
// @Summary     Upload a syllabus
// @Description Sends the file to the parsing service, fetches the report and returns the resulting snapshot.
// @Description Parsing failures are reported in upload.error with a 200 status.
// @Tags        Dashboard
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     string true "Session ID"
// @Param       file formData file   true "Syllabus (.txt, .docx, .pdf)"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     413 {object} response.Resp "File too large"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/sessions/{id}/upload [POST]
func (h *handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUploadReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processUploadReq: %v", err)
		response.Error(c, err, nil)
		return
	}
	defer req.file.Close()

	output, err := h.uc.Upload(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Upload: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSnapshotResp(output))
}

// Assignments godoc
// @Summary     Get assignment lists
// @Description Returns upcoming assignments and priority dates, with placeholders for empty lists.
// @Tags        Dashboard
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} assignmentsResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/assignments [GET]
func (h *handler) Assignments(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newAssignmentsResp(output.Assignments))
}

// AddNote godoc
// @Summary     Add a note
// @Description Files a note under a tag. Both fields are required.
// @Tags        Notes
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body addNoteReq true "Note"
// @Success     201 {object} addNoteResp
// @Failure     400 {object} response.Resp "Please fill out both fields."
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/notes [POST]
func (h *handler) AddNote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddNoteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddNote(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.AddNote: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newAddNoteResp(output))
}

// ListNotes godoc
// @Summary     List notes by tag
// @Description Returns notes grouped by tag in first-seen order, each group with its color.
// @Tags        Notes
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {array}  noteGroupResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/notes [GET]
func (h *handler) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListNotes(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ListNotes: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newNoteGroupsResp(output))
}

// SendChat godoc
// @Summary     Send a chat message
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Session ID"
// @Param       body body sendChatReq true "Message"
// @Success     200 {object} sendChatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/chat [POST]
func (h *handler) SendChat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendChat(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.SendChat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendChatResp(output))
}

// ListChat godoc
// @Summary     Get chat transcript
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {array}  messageResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/chat [GET]
func (h *handler) ListChat(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListChat(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ListChat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMessagesResp(output))
}

// SyncCalendar godoc
// @Summary     Sync assignments to Google Calendar
// @Description Inserts every dated assignment and priority date as an all-day event. Events from earlier syncs are not duplicated.
// @Tags        Calendar
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} syncCalendarResp
// @Failure     400 {object} response.Resp "Calendar not configured or nothing to sync"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id}/calendar/sync [POST]
func (h *handler) SyncCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.SyncCalendar(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSyncCalendarResp(output))
}

// ExportCalendar godoc
// @Summary     Download assignments as iCalendar
// @Tags        Calendar
// @Produce     text/calendar
// @Param       id path string true "Session ID"
// @Success     200 {file}   file
// @Failure     400 {object} response.Resp "Nothing to export"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/sessions/{id}/calendar.ics [GET]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportCalendar(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.FileName))
	c.Data(http.StatusOK, ical.ContentType, output.Content)
}
