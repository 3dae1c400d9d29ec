// Package chat implements the scripted lead-qualification conversation:
// a small state machine that walks a visitor from picking a service through
// clarifying questions to leaving contact details, interjecting persuasion
// or upsell messages when the replies call for it.
package chat

import (
	"time"

	"github.com/smartsites-digital/leadchat/internal/i18n"
	"github.com/smartsites-digital/leadchat/internal/leads"
)

// Sender identifies who authored a message.
type Sender string

const (
	SenderBot  Sender = "bot"
	SenderUser Sender = "user"
)

// Step is the conversation phase. Progression is forward-only.
type Step string

const (
	StepService Step = "service"
	StepDetails Step = "details"
	StepContact Step = "contact"
	StepDone    Step = "done"
)

// Message is one transcript entry. Immutable once appended.
type Message struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	Sender    Sender        `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
	Options   []i18n.Option `json:"options,omitempty"`
}

// Session is the full conversation state. It is what the store persists
// between turns; nothing else survives a request.
type Session struct {
	ID          string            `json:"id"`
	Locale      string            `json:"locale"`
	Step        Step              `json:"step"`
	ServiceKind leads.ServiceKind `json:"service_kind"`
	Messages    []Message         `json:"messages"`
	Record      leads.ChatData    `json:"record"`

	// Cursor indexes the current service question. PersuadedCursor remembers
	// the last cursor position that already got a persuasion interjection,
	// so the same question is never stalled twice in a row.
	Cursor           int        `json:"cursor"`
	PersuadedCursor  int        `json:"persuaded_cursor"`
	LastPersuasionAt *time.Time `json:"last_persuasion_at,omitempty"`

	Submitted bool   `json:"submitted"`
	LeadID    string `json:"lead_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserAnswers extracts the visitor's replies in transcript order. They feed
// the conversation context rebuilt before each analysis.
func (s *Session) UserAnswers() []string {
	var answers []string
	for _, m := range s.Messages {
		if m.Sender == SenderUser {
			answers = append(answers, m.Text)
		}
	}
	return answers
}
