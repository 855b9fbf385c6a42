package storage

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func storedMessage(team string, at time.Time, content string) StoredMessage {
	return StoredMessage{
		ID:       uuid.New(),
		Team:     team,
		Channel:  "general",
		Author:   "alice",
		Content:  content,
		Language: "en",
		At:       at,
	}
}

func TestMessageRepository_StoreAndRecent(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, log, nil)

	// Given: 3 messages in chronological order
	base := time.Now().UTC()
	var inserted []StoredMessage
	for i := 0; i < 3; i++ {
		message := storedMessage("acme", base.Add(time.Duration(i)*time.Second), fmt.Sprintf("Message %d", i))
		inserted = append(inserted, message)
		req.NoError(repo.Store(message))
	}

	// When: Fetching without a cursor
	messages, _, err := repo.Recent("acme", nil)

	// Then: Newest first
	req.NoError(err)
	req.Len(messages, 3)
	req.Equal(inserted[2].ID, messages[0].ID, "Newest should be first")
	req.Equal(inserted[1].ID, messages[1].ID)
	req.Equal(inserted[0].ID, messages[2].ID)
	req.Equal("Message 2", messages[0].Content)
	req.Equal("en", messages[0].Language)
}

func TestMessageRepository_Recent_Pagination(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, log, lo.ToPtr(2))

	// Given: 5 messages
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		req.NoError(repo.Store(storedMessage("acme", base.Add(time.Duration(i)*time.Second), fmt.Sprintf("Msg %d", i))))
	}

	// When: Fetching all pages
	page1, cursor1, err := repo.Recent("acme", nil)
	req.NoError(err)
	req.Len(page1, 2)
	req.NotNil(cursor1)

	page2, cursor2, err := repo.Recent("acme", cursor1)
	req.NoError(err)
	req.Len(page2, 2)
	req.NotNil(cursor2)

	page3, _, err := repo.Recent("acme", cursor2)
	req.NoError(err)
	req.Len(page3, 1) // Remainder

	// Then: No duplicates across pages
	seen := make(map[uuid.UUID]bool)
	for _, message := range append(append(page1, page2...), page3...) {
		req.False(seen[message.ID], "duplicate message %s", message.ID)
		seen[message.ID] = true
	}
	req.Len(seen, 5)
}

func TestMessageRepository_Recent_TeamIsolation(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, log, nil)

	// Given: Same content in different teams
	now := time.Now().UTC()
	req.NoError(repo.Store(storedMessage("team-1", now, "Secret project alpha")))
	req.NoError(repo.Store(storedMessage("team-2", now, "Secret project beta")))

	// When: Fetching team-1
	messages, _, err := repo.Recent("team-1", nil)

	// Then: Only team-1 messages come back
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal("team-1", messages[0].Team)
	req.Contains(messages[0].Content, "alpha")
}

func TestMessageRepository_Recent_EmptyTeam(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, log, nil)

	// When: Scanning a team with no messages
	messages, cursor, err := repo.Recent("nonexistent-team", nil)

	// Then: Empty result, no cursor
	req.NoError(err)
	req.Empty(messages)
	req.Nil(cursor)
}

func TestMessageRepository_Store_SameNanosecond(t *testing.T) {
	req := require.New(t)
	_, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	repo := NewMessageRepository(badgerDB, log, nil)

	// Given: Two messages sharing the exact same timestamp
	at := time.Now().UTC()
	req.NoError(repo.Store(storedMessage("acme", at, "first")))
	req.NoError(repo.Store(storedMessage("acme", at, "second")))

	// Then: The UUID suffix keeps both keys distinct
	messages, _, err := repo.Recent("acme", nil)
	req.NoError(err)
	req.Len(messages, 2)
}
