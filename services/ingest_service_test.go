package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"search-bot/domain/chat"
	"search-bot/infrastructure/storage"
	"search-bot/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestService_StoresThenIndexes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIMessageRepository(ctrl)
	indexer := mocks.NewMockIIndexer(ctrl)
	svc := NewIngestService(slog.Default(), repo, indexer)

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	msg := chat.Message{
		Text:    "the deployment finished without incident",
		User:    "alice",
		Team:    "acme",
		Channel: "ops",
		At:      at,
	}

	var stored storage.StoredMessage
	repo.EXPECT().
		Store(gomock.Any()).
		Do(func(m storage.StoredMessage) { stored = m }).
		Return(nil).
		Times(1)
	indexer.EXPECT().
		Index(gomock.Any()).
		Do(func(m storage.StoredMessage) {
			// The exact same document goes to both sides.
			require.Equal(t, stored, m)
		}).
		Return(nil).
		Times(1)

	req.NoError(svc.Ingest(msg))

	req.NotEqual(uuid.Nil, stored.ID)
	req.Equal("acme", stored.Team)
	req.Equal("ops", stored.Channel)
	req.Equal("alice", stored.Author)
	req.Equal(msg.Text, stored.Content)
	req.Equal("en", stored.Language)
	req.Equal(at, stored.At)
}

func TestIngestService_DefaultsMissingTimestamp(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIMessageRepository(ctrl)
	indexer := mocks.NewMockIIndexer(ctrl)
	svc := NewIngestService(slog.Default(), repo, indexer)

	var stored storage.StoredMessage
	repo.EXPECT().Store(gomock.Any()).Do(func(m storage.StoredMessage) { stored = m }).Return(nil)
	indexer.EXPECT().Index(gomock.Any()).Return(nil)

	before := time.Now().UTC()
	req.NoError(svc.Ingest(chat.Message{Text: "hello", User: "u", Team: "t", Channel: "c"}))

	req.False(stored.At.IsZero())
	req.False(stored.At.Before(before))
}

func TestIngestService_StoreFailureSkipsIndex(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockIMessageRepository(ctrl)
	indexer := mocks.NewMockIIndexer(ctrl)
	svc := NewIngestService(slog.Default(), repo, indexer)

	repo.EXPECT().Store(gomock.Any()).Return(fmt.Errorf("disk full")).Times(1)
	indexer.EXPECT().Index(gomock.Any()).Times(0)

	err := svc.Ingest(chat.Message{Text: "hello", User: "u", Team: "t", Channel: "c"})
	req.Error(err)
}
