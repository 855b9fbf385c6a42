// Package chat contains the inbound side of the bot: messages received
// from the chat platform and the per-request context derived from them.
package chat

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// Message is a single inbound chat-platform message. The adapter guarantees
// at least these four fields; anything else the platform sends is dropped
// at the boundary.
type Message struct {
	Text    string `validate:"required"`
	User    string `validate:"required"`
	Team    string `validate:"required"`
	Channel string `validate:"required"`
	At      time.Time
}

func (m Message) Validate() error {
	return validate.Struct(m)
}

// RequestContext is the ephemeral per-message context handed to the
// execution pipeline. RawQuery is the matched query string, kept for
// logging and artifact labeling only, never for matching logic.
type RequestContext struct {
	ID       uuid.UUID
	UserID   string
	TeamID   string
	Channel  string
	RawQuery string
}

func NewRequestContext(msg Message, rawQuery string) RequestContext {
	return RequestContext{
		ID:       uuid.New(),
		UserID:   msg.User,
		TeamID:   msg.Team,
		Channel:  msg.Channel,
		RawQuery: rawQuery,
	}
}
