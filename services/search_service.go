package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"search-bot/contract"
	"search-bot/domain/chat"
	"search-bot/domain/search"
	"search-bot/redact"
)

const (
	apologyText = "Unknown error occurred while performing your search.\n" +
		"Please try again later or contact support."
	artifactFiletype = "json"
)

//go:generate go run go.uber.org/mock/mockgen -source=search_service.go -destination=../mocks/mock_search_service.go -package=mocks
type ISearchService interface {
	Execute(ctx context.Context, req chat.RequestContext, msg chat.Message, query search.Query)
	Reject(msg chat.Message, rawQuery string, err error)
}

// SearchService is the execution pipeline: one backend round-trip per
// user-triggered search, then either an artifact upload or a single error
// reply. It never mutates the Query it receives.
type SearchService struct {
	log      *slog.Logger
	client   contract.ISearchClient
	adapter  contract.IChatAdapter
	errors   contract.IErrorHandler
	redactor redact.Redactor
}

func NewSearchService(
	log *slog.Logger,
	client contract.ISearchClient,
	adapter contract.IChatAdapter,
	errors contract.IErrorHandler,
	redactor redact.Redactor,
) *SearchService {
	return &SearchService{
		log:      log,
		client:   client,
		adapter:  adapter,
		errors:   errors,
		redactor: redactor,
	}
}

// Execute dispatches the query without blocking the caller. The router is
// free to handle the next message while the backend call is in flight.
func (s *SearchService) Execute(ctx context.Context, req chat.RequestContext, msg chat.Message, query search.Query) {
	go s.run(ctx, req, msg, query)
}

// Reject reports a query that failed construction. No backend call is made;
// the user gets the same single generic reply as for any other failure.
func (s *SearchService) Reject(msg chat.Message, rawQuery string, err error) {
	s.errors.Handle(msg, err, func(err error) {
		_ = s.adapter.Reply(msg, apologyText)
		s.log.Error("Rejected search before dispatch", "query", rawQuery, "error", err)
	})
}

func (s *SearchService) run(ctx context.Context, req chat.RequestContext, msg chat.Message, query search.Query) {
	result, err := s.client.Search(ctx, req.TeamID, query)
	if err != nil {
		s.errors.Handle(msg, err, func(err error) {
			_ = s.adapter.Reply(msg, apologyText)
			s.log.Error(
				fmt.Sprintf("Unknown error occurred while performing user search: [%s]", query.Text),
				"request", req.ID, "error", err,
			)
		})
		return
	}

	s.deliver(req, result)
}

// deliver serializes the result and uploads it to the originating channel.
// A delivery failure is logged only: the search itself succeeded and the
// user never receives a second message for a best-effort notification.
func (s *SearchService) deliver(req chat.RequestContext, result contract.SearchResult) {
	for i := range result.Hits {
		result.Hits[i].Content = s.redactor.Redact(result.Hits[i].Content)
	}

	content, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		s.log.Error("Failed to serialize query results", "request", req.ID, "error", err)
		return
	}

	artifact := contract.Artifact{
		Content:  string(content),
		Channel:  req.Channel,
		Filename: fmt.Sprintf("Search results for query: `%s`", req.RawQuery),
		Filetype: artifactFiletype,
	}
	if err := s.adapter.Upload(artifact); err != nil {
		s.log.Error("Failed to send query results", "request", req.ID, "error", err)
	}
}
