// Package runtime wires inbound messages to command routes and keeps the
// long-running pieces of the bot alive.
package runtime

import (
	"context"
	"log/slog"
	"regexp"

	"search-bot/contract"
	"search-bot/domain/chat"
)

// MessageSink receives messages no route claimed, typically to feed the
// local index. May be nil.
type MessageSink func(msg chat.Message)

type registeredRoute struct {
	pattern *regexp.Regexp
	handler contract.RouteHandler
}

// Controller owns the dispatch loop: each inbound message is checked
// against the registered routes in order and the first match wins. Routes
// are registered once at startup, before Run, so the loop reads them
// without locking.
type Controller struct {
	log      *slog.Logger
	messages chan chat.Message
	routes   []registeredRoute
	fallback MessageSink
}

func NewController(log *slog.Logger, bufferSize int, fallback MessageSink) *Controller {
	return &Controller{
		log:      log,
		messages: make(chan chat.Message, bufferSize),
		fallback: fallback,
	}
}

func (c *Controller) Hears(pattern *regexp.Regexp, handler contract.RouteHandler) {
	c.routes = append(c.routes, registeredRoute{pattern: pattern, handler: handler})
}

// Submit hands a message to the dispatch loop. Blocks only when the buffer
// is full, and gives up when the context ends.
func (c *Controller) Submit(ctx context.Context, msg chat.Message) error {
	select {
	case c.messages <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Controller) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			c.log.Debug("Context done, stopping controller")
			return nil
		case msg, ok := <-c.messages:
			if !ok {
				c.log.Debug("Message channel closed")
				return nil
			}
			c.Dispatch(msg)
		}
	}
}

// Dispatch validates the message and triggers the first matching route.
// Well-formed command text matches at most one route; anything unmatched
// goes to the fallback sink.
func (c *Controller) Dispatch(msg chat.Message) {
	if err := msg.Validate(); err != nil {
		c.log.Warn("Dropping malformed message", "error", err)
		return
	}

	for _, r := range c.routes {
		groups := r.pattern.FindStringSubmatch(msg.Text)
		if groups == nil {
			continue
		}
		r.handler(msg, groups[1:])
		return
	}

	if c.fallback != nil {
		c.fallback(msg)
	}
}
