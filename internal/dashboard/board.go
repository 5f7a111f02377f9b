package dashboard

import (
	"sync"
	"time"

	"syllabus-tracker/internal/assignment"
	"syllabus-tracker/internal/chat"
	"syllabus-tracker/internal/notes"
	"syllabus-tracker/internal/upload"
	"syllabus-tracker/pkg/parser"
)

// Board is the state of one dashboard page session: the current upload
// attempt, the note log and the chat transcript. Every method runs under the
// board lock, so each event is applied to completion before the next one.
// Network calls are made by the caller between BeginUpload and the Apply
// methods, never while the lock is held.
type Board struct {
	mu sync.Mutex

	upload *upload.Session
	notes  *notes.Store
	chat   *chat.Transcript

	updatedAt time.Time
	now       func() time.Time
}

// BoardOption configures a Board.
type BoardOption func(*Board)

// WithChatStrings sets the chat greeting and canned reply.
func WithChatStrings(greeting, reply string) BoardOption {
	return func(b *Board) {
		b.chat = chat.NewTranscript(greeting, reply)
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) BoardOption {
	return func(b *Board) {
		b.now = now
	}
}

// NewBoard returns an idle board with no notes.
func NewBoard(opts ...BoardOption) *Board {
	b := &Board{
		upload: upload.NewSession(),
		notes:  notes.NewStore(),
		chat:   chat.NewTranscript("", ""),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.updatedAt = b.now()
	return b
}

// BeginUpload starts a new attempt, discarding everything shown for the
// previous one.
func (b *Board) BeginUpload(fileName string) upload.Token {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.touch()
	return b.upload.Begin(fileName)
}

// ApplyUpload applies the upload result for tok. See upload.Session.ApplyUpload.
func (b *Board) ApplyUpload(tok upload.Token, res parser.UploadResult, callErr error) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handle, err := b.upload.ApplyUpload(tok, res, callErr)
	if err == nil {
		b.touch()
	}
	return handle, err
}

// ApplyReport applies the report result for tok. See upload.Session.ApplyReport.
func (b *Board) ApplyReport(tok upload.Token, report parser.Report, callErr error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.upload.ApplyReport(tok, report, callErr)
	if err == nil {
		b.touch()
	}
	return err
}

// AddNote validates and stores a note, returning it with the note groups as
// they stand right after the insert.
func (b *Board) AddNote(text, tag string) (notes.Note, []notes.Group, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, err := b.notes.Add(text, tag)
	if err != nil {
		return notes.Note{}, nil, err
	}
	b.touch()
	return n, b.notes.GroupedByTag(), nil
}

// NoteGroups returns the notes grouped by tag.
func (b *Board) NoteGroups() []notes.Group {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.notes.GroupedByTag()
}

// SendChat appends a user message and the reply, returning the reply with
// the transcript as it stands right after.
func (b *Board) SendChat(text string) (chat.Message, []chat.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg, err := b.chat.Send(text)
	if err != nil {
		return chat.Message{}, nil, err
	}
	b.touch()
	return msg, b.chat.Messages(), nil
}

// ChatMessages returns a copy of the transcript.
func (b *Board) ChatMessages() []chat.Message {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.chat.Messages()
}

// Snapshot renders every view from one consistent read of the state.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.upload.State()
	return Snapshot{
		Upload:      st,
		Assignments: assignment.Project(st.Upcoming, st.Priority),
		NoteGroups:  b.notes.GroupedByTag(),
		Chat:        b.chat.Messages(),
		UpdatedAt:   b.updatedAt,
	}
}

func (b *Board) touch() {
	b.updatedAt = b.now()
}
