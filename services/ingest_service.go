package services

import (
	"log/slog"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/google/uuid"

	"search-bot/domain/chat"
	"search-bot/infrastructure/storage"
)

// IIndexer is the write side of the local search backend.
//
//go:generate go run go.uber.org/mock/mockgen -source=ingest_service.go -destination=../mocks/mock_ingest_service.go -package=mocks
type IIndexer interface {
	Index(message storage.StoredMessage) error
}

type IIngestService interface {
	Ingest(msg chat.Message) error
}

// IngestService turns ordinary (non-command) chat messages into indexed,
// persisted documents. Persistence is the source of truth; the index is
// derived and rebuildable.
type IngestService struct {
	log     *slog.Logger
	repo    storage.IMessageRepository
	indexer IIndexer
}

func NewIngestService(log *slog.Logger, repo storage.IMessageRepository, indexer IIndexer) *IngestService {
	return &IngestService{log: log, repo: repo, indexer: indexer}
}

func (s *IngestService) Ingest(msg chat.Message) error {
	at := msg.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	info := whatlanggo.Detect(msg.Text)
	stored := storage.StoredMessage{
		ID:       uuid.New(),
		Team:     msg.Team,
		Channel:  msg.Channel,
		Author:   msg.User,
		Content:  msg.Text,
		Language: info.Lang.Iso6391(),
		At:       at,
	}

	if err := s.repo.Store(stored); err != nil {
		return err
	}
	if err := s.indexer.Index(stored); err != nil {
		return err
	}

	s.log.Debug("Message ingested", "id", stored.ID, "team", stored.Team, "lang", stored.Language)
	return nil
}
