//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"regexp"
	"time"

	"search-bot/domain/chat"
	"search-bot/domain/search"
)

// SearchHit is one document returned by the backend. The pipeline treats
// the whole result as opaque serializable data.
type SearchHit struct {
	ID       string    `json:"id"`
	Team     string    `json:"team"`
	Channel  string    `json:"channel"`
	Author   string    `json:"author"`
	Content  string    `json:"content"`
	Language string    `json:"language,omitempty"`
	At       time.Time `json:"at"`
	Score    float64   `json:"score"`
}

type SearchResult struct {
	Total uint64      `json:"total"`
	Hits  []SearchHit `json:"hits"`
}

// ISearchClient executes a built Query against the search backend.
// Exactly one call per user-triggered search; no retries at any layer.
type ISearchClient interface {
	Search(ctx context.Context, teamID string, query search.Query) (SearchResult, error)
}

// Artifact is a file-like payload delivered to a conversation.
type Artifact struct {
	Content  string
	Channel  string
	Filename string
	Filetype string
}

// IChatAdapter is the narrow surface of the chat platform the bot consumes.
type IChatAdapter interface {
	Reply(msg chat.Message, text string) error
	Upload(artifact Artifact) error
}

// IErrorHandler decides whether an error kind is recognized and handled on
// its own; unrecognized errors are passed to the fallback, which owns the
// single user-facing reply.
type IErrorHandler interface {
	Handle(msg chat.Message, err error, onUnrecognized func(error))
}

// RouteHandler receives the matched message and the pattern's capture
// groups (without the full-match group).
type RouteHandler func(msg chat.Message, groups []string)

// IController registers message patterns on behalf of commands and feeds
// each inbound message to the first matching route.
type IController interface {
	Hears(pattern *regexp.Regexp, handler RouteHandler)
}

// ICommand is implemented by every chat command surface.
type ICommand interface {
	Configure(controller IController)
	Category() string
	Usage() []string
}

// Worker doesn't protect itself. Can be silly, focused.
type Worker interface {
	Run(ctx context.Context) error
}

type WorkerName string

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker,
// for logging and supervision purposes. Avoids manual naming in Worker.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
