package index

import (
	"encoding/json"
	"testing"
	"time"

	"search-bot/domain/search"
	"search-bot/infrastructure/storage"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/database"
	"github.com/stretchr/testify/require"
)

func document(team string, at time.Time, content string) storage.StoredMessage {
	return storage.StoredMessage{
		ID:       uuid.New(),
		Team:     team,
		Channel:  "general",
		Author:   "alice",
		Content:  content,
		Language: "en",
		At:       at,
	}
}

func buildQuery(t *testing.T, configure func(*search.Builder) *search.Builder) search.Query {
	t.Helper()
	query, err := configure(search.NewBuilder()).Build()
	require.NoError(t, err)
	return query
}

func TestClient_SearchDefaultWindow(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 25)

	// Given: Two recent matches and one outside the default window
	now := time.Now().UTC()
	req.NoError(client.Index(document("acme", now.Add(-2*time.Minute), "error 500 on checkout")))
	req.NoError(client.Index(document("acme", now.Add(-10*time.Minute), "error 500 confirmed")))
	req.NoError(client.Index(document("acme", now.Add(-2*time.Hour), "stale error 500")))
	time.Sleep(50 * time.Millisecond)

	// When: Searching with no explicit window
	result, err := client.Search(ctx, "acme", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("error 500")
	}))

	// Then: Only the last 15 minutes match
	req.NoError(err)
	req.Equal(uint64(2), result.Total)
	req.Len(result.Hits, 2)
	for _, hit := range result.Hits {
		req.Equal("acme", hit.Team)
		req.Equal("alice", hit.Author)
		req.NotZero(hit.At)
		req.Greater(hit.Score, 0.0)
	}
}

func TestClient_SearchRelativeWindow(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 25)

	now := time.Now().UTC()
	req.NoError(client.Index(document("acme", now.Add(-30*time.Minute), "timeout on gateway")))
	req.NoError(client.Index(document("acme", now.Add(-3*time.Hour), "timeout from yesterday")))
	time.Sleep(50 * time.Millisecond)

	// When: Searching the last 2 hours
	result, err := client.Search(ctx, "acme", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("timeout").WithRelativeTime("2", search.Hours)
	}))

	req.NoError(err)
	req.Equal(uint64(1), result.Total)
	req.Len(result.Hits, 1)
	req.Contains(result.Hits[0].Content, "gateway")
}

func TestClient_SearchAbsoluteWindow(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 25)

	inside := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	outside := time.Date(2024, 1, 6, 12, 0, 0, 0, time.UTC)
	req.NoError(client.Index(document("acme", inside, "memory leak in worker")))
	req.NoError(client.Index(document("acme", outside, "memory leak fixed")))
	time.Sleep(50 * time.Millisecond)

	result, err := client.Search(ctx, "acme", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("leak").WithExactTime("2024-01-01T00:00", "2024-01-02T00:00")
	}))

	req.NoError(err)
	req.Equal(uint64(1), result.Total)
	req.Len(result.Hits, 1)
	req.Contains(result.Hits[0].Content, "worker")
	req.WithinDuration(inside, result.Hits[0].At, time.Second)
}

func TestClient_SearchTeamIsolation(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 25)

	now := time.Now().UTC()
	req.NoError(client.Index(document("team-1", now, "secret project alpha")))
	req.NoError(client.Index(document("team-2", now, "secret project beta")))
	time.Sleep(50 * time.Millisecond)

	result, err := client.Search(ctx, "team-1", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("secret")
	}))

	req.NoError(err)
	req.Equal(uint64(1), result.Total)
	req.Len(result.Hits, 1)
	req.Equal("team-1", result.Hits[0].Team)
	req.Contains(result.Hits[0].Content, "alpha")
}

func TestClient_SearchRespectsLimit(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 3)

	now := time.Now().UTC()
	for i := 0; i < 7; i++ {
		req.NoError(client.Index(document("acme", now.Add(-time.Duration(i)*time.Second), "repeated failure")))
	}
	time.Sleep(50 * time.Millisecond)

	result, err := client.Search(ctx, "acme", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("failure")
	}))

	// The total counts every match even when the hit list is capped.
	req.NoError(err)
	req.Equal(uint64(7), result.Total)
	req.Len(result.Hits, 3)
}

func TestClient_SearchNoMatches(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 25)

	result, err := client.Search(ctx, "acme", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("nothing here")
	}))

	req.NoError(err)
	req.Equal(uint64(0), result.Total)
	req.Empty(result.Hits)

	// The empty result must serialize as a list, not null.
	req.NotNil(result.Hits)
	content, err := json.Marshal(result)
	req.NoError(err)
	req.Contains(string(content), `"hits":[]`)
}

// Unparseable absolute bounds widen the window instead of matching nothing.
func TestClient_SearchUnparseableBoundFallsBack(t *testing.T) {
	req := require.New(t)
	ctx, log, badgerDB, blugeWriter, err := database.SetupBenchmark(database.DefaultPath)
	req.NoError(err)
	defer database.CleanupDB(badgerDB, blugeWriter)

	client := NewClient(blugeWriter, log, 25)

	req.NoError(client.Index(document("acme", time.Now().UTC().Add(-time.Minute), "error in prod")))
	time.Sleep(50 * time.Millisecond)

	result, err := client.Search(ctx, "acme", buildQuery(t, func(b *search.Builder) *search.Builder {
		return b.WithQueryString("error").WithExactTime("yesterday", "tomorrow")
	}))

	req.NoError(err)
	req.Equal(uint64(1), result.Total)
}
