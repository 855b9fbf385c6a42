package workers

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"time"

	"search-bot/domain/chat"
	"search-bot/runtime"
)

// ListenerWorker reads lines from a source and submits them to the
// controller as chat messages stamped with a fixed identity. With stdin as
// the source it gives the bot a local conversation to live in.
type ListenerWorker struct {
	log        *slog.Logger
	source     io.Reader
	controller *runtime.Controller
	user       string
	team       string
	channel    string
}

func NewListenerWorker(
	log *slog.Logger,
	source io.Reader,
	controller *runtime.Controller,
	user, team, channel string,
) *ListenerWorker {
	return &ListenerWorker{
		log:        log,
		source:     source,
		controller: controller,
		user:       user,
		team:       team,
		channel:    channel,
	}
}

// Run scans the source in a separate goroutine so cancellation is observed
// even while a read is blocked on an idle stdin. The scanning goroutine may
// stay parked inside Read until the source yields or closes; it then sees
// the done context and exits without touching the channels.
func (w *ListenerWorker) Run(ctx context.Context) error {
	lines := make(chan string)
	scanDone := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(w.source)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanDone <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-scanDone:
			w.log.Info("Listener source exhausted")
			return err
		case text := <-lines:
			if text == "" {
				continue
			}

			msg := chat.Message{
				Text:    text,
				User:    w.user,
				Team:    w.team,
				Channel: w.channel,
				At:      time.Now().UTC(),
			}
			if err := w.controller.Submit(ctx, msg); err != nil {
				return err
			}
		}
	}
}
