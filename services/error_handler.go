package services

import (
	"errors"
	"log/slog"

	"search-bot/domain/chat"
)

// ErrorHandler is the shared error-routing collaborator. Recognized error
// kinds are handled silently with a log entry; everything else goes to the
// caller's fallback, which owns the single user-facing reply.
type ErrorHandler struct {
	log        *slog.Logger
	recognized []error
}

// NewErrorHandler builds a handler that treats the given sentinel errors as
// recognized. Today nothing registers any: validation failures deliberately
// read the same as backend failures to the user.
func NewErrorHandler(log *slog.Logger, recognized ...error) *ErrorHandler {
	return &ErrorHandler{log: log, recognized: recognized}
}

func (h *ErrorHandler) Handle(msg chat.Message, err error, onUnrecognized func(error)) {
	for _, known := range h.recognized {
		if errors.Is(err, known) {
			h.log.Warn("Recognized error handled silently",
				"user", msg.User, "team", msg.Team, "error", err)
			return
		}
	}
	onUnrecognized(err)
}
