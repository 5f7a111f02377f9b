package http

import (
	"io"
	"time"

	"syllabus-tracker/internal/assignment"
	"syllabus-tracker/internal/chat"
	"syllabus-tracker/internal/dashboard"
	"syllabus-tracker/internal/notes"
	"syllabus-tracker/internal/upload"
)

// --- Request DTOs ---

type uploadReq struct {
	SessionID string
	FileName  string
	Size      int64
	file      io.ReadCloser
}

func (r uploadReq) toInput() dashboard.UploadInput {
	return dashboard.UploadInput{
		SessionID: r.SessionID,
		FileName:  r.FileName,
		Size:      r.Size,
		Content:   r.file,
	}
}

// ---

type addNoteReq struct {
	SessionID string `json:"-"` // populated from URI param
	Text      string `json:"text" binding:"required,notblank"`
	Tag       string `json:"tag"  binding:"required,notblank"`
}

func (r addNoteReq) toInput() dashboard.AddNoteInput {
	return dashboard.AddNoteInput{
		SessionID: r.SessionID,
		Text:      r.Text,
		Tag:       r.Tag,
	}
}

// ---

type sendChatReq struct {
	SessionID string `json:"-"`
	Text      string `json:"text" binding:"required,notblank"`
}

func (r sendChatReq) toInput() dashboard.SendChatInput {
	return dashboard.SendChatInput{
		SessionID: r.SessionID,
		Text:      r.Text,
	}
}

// --- Response DTOs ---

type uploadResp struct {
	Generation uint64        `json:"generation"`
	FileName   string        `json:"file_name"`
	Status     upload.Status `json:"status"`
	Busy       bool          `json:"busy"`
	Message    string        `json:"message"`
	Error      string        `json:"error"`
}

func newUploadResp(st upload.State) uploadResp {
	return uploadResp{
		Generation: uint64(st.Generation),
		FileName:   st.FileName,
		Status:     st.Status,
		Busy:       !st.Status.Terminal(),
		Message:    st.Message,
		Error:      st.Error,
	}
}

type cardResp struct {
	Name        string `json:"name"`
	DueDate     string `json:"due_date"`
	Details     string `json:"details"`
	Placeholder bool   `json:"placeholder"`
}

type priorityResp struct {
	Event       string `json:"event"`
	Date        string `json:"date"`
	Placeholder bool   `json:"placeholder"`
}

type assignmentsResp struct {
	Upcoming []cardResp     `json:"upcoming"`
	Priority []priorityResp `json:"priority"`
}

func newAssignmentsResp(v assignment.View) assignmentsResp {
	resp := assignmentsResp{
		Upcoming: make([]cardResp, len(v.Upcoming)),
		Priority: make([]priorityResp, len(v.Priority)),
	}
	for i, c := range v.Upcoming {
		resp.Upcoming[i] = cardResp{Name: c.Name, DueDate: c.DueDate, Details: c.Details, Placeholder: c.Placeholder}
	}
	for i, p := range v.Priority {
		resp.Priority[i] = priorityResp{Event: p.Event, Date: p.Date, Placeholder: p.Placeholder}
	}
	return resp
}

type noteResp struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

type noteGroupResp struct {
	Tag   string     `json:"tag"`
	Color string     `json:"color"`
	Notes []noteResp `json:"notes"`
}

func newNoteGroupsResp(groups []notes.Group) []noteGroupResp {
	resp := make([]noteGroupResp, len(groups))
	for i, g := range groups {
		ns := make([]noteResp, len(g.Notes))
		for j, n := range g.Notes {
			ns[j] = noteResp{Text: n.Text, Tag: n.Tag}
		}
		resp[i] = noteGroupResp{Tag: g.Tag, Color: string(g.Color), Notes: ns}
	}
	return resp
}

type messageResp struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

func newMessagesResp(msgs []chat.Message) []messageResp {
	resp := make([]messageResp, len(msgs))
	for i, m := range msgs {
		resp[i] = messageResp{Sender: string(m.Sender), Text: m.Text}
	}
	return resp
}

type snapshotResp struct {
	Upload      uploadResp      `json:"upload"`
	Assignments assignmentsResp `json:"assignments"`
	Notes       []noteGroupResp `json:"notes"`
	Chat        []messageResp   `json:"chat"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func newSnapshotResp(s dashboard.Snapshot) snapshotResp {
	return snapshotResp{
		Upload:      newUploadResp(s.Upload),
		Assignments: newAssignmentsResp(s.Assignments),
		Notes:       newNoteGroupsResp(s.NoteGroups),
		Chat:        newMessagesResp(s.Chat),
		UpdatedAt:   s.UpdatedAt,
	}
}

type createSessionResp struct {
	SessionID string       `json:"session_id"`
	Snapshot  snapshotResp `json:"snapshot"`
}

func (h *handler) newCreateSessionResp(out dashboard.CreateSessionOutput) createSessionResp {
	return createSessionResp{SessionID: out.SessionID, Snapshot: newSnapshotResp(out.Snapshot)}
}

type addNoteResp struct {
	Note   noteResp        `json:"note"`
	Groups []noteGroupResp `json:"groups"`
}

func (h *handler) newAddNoteResp(out dashboard.AddNoteOutput) addNoteResp {
	return addNoteResp{
		Note:   noteResp{Text: out.Note.Text, Tag: out.Note.Tag},
		Groups: newNoteGroupsResp(out.Groups),
	}
}

type sendChatResp struct {
	Reply    messageResp   `json:"reply"`
	Messages []messageResp `json:"messages"`
}

func (h *handler) newSendChatResp(out dashboard.SendChatOutput) sendChatResp {
	return sendChatResp{
		Reply:    messageResp{Sender: string(out.Reply.Sender), Text: out.Reply.Text},
		Messages: newMessagesResp(out.Messages),
	}
}

type syncCalendarResp struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
	Skipped  int `json:"skipped"`
}

func (h *handler) newSyncCalendarResp(out dashboard.SyncCalendarOutput) syncCalendarResp {
	return syncCalendarResp{Created: out.Created, Existing: out.Existing, Skipped: out.Skipped}
}
