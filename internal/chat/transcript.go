package chat

import (
	"errors"
	"strings"
)

const (
	DefaultGreeting = "Hello! How can I assist you today?"
	DefaultReply    = "Thank you for your message! How else can I help?"
)

var ErrEmptyMessage = errors.New("message is empty")

type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

type Message struct {
	Sender Sender
	Text   string
}

// Transcript is the chat panel history. The assistant does not read what it
// is sent; every user message is acknowledged with the same reply.
type Transcript struct {
	reply    string
	messages []Message
}

// NewTranscript returns a transcript opened with greeting. Empty strings fall
// back to the defaults.
func NewTranscript(greeting, reply string) *Transcript {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	if reply == "" {
		reply = DefaultReply
	}
	return &Transcript{
		reply:    reply,
		messages: []Message{{Sender: SenderBot, Text: greeting}},
	}
}

// Send appends text and the assistant's acknowledgment. Blank input is
// rejected without changing the transcript.
func (t *Transcript) Send(text string) (Message, error) {
	if strings.TrimSpace(text) == "" {
		return Message{}, ErrEmptyMessage
	}

	reply := Message{Sender: SenderBot, Text: t.reply}
	t.messages = append(t.messages, Message{Sender: SenderUser, Text: text}, reply)
	return reply, nil
}

// Messages returns a copy of the history, oldest first.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}
