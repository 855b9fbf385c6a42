// Package index provides the local search backend: ingested chat messages
// are indexed in Bluge and queried per team with an optional time window.
package index

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blugelabs/bluge"

	"search-bot/contract"
	"search-bot/domain/search"
	"search-bot/infrastructure/storage"
)

// The backend applies this window when a query carries no explicit bounds.
const defaultWindow = 15 * time.Minute

// Layouts accepted for absolute window bounds, most precise first. The
// bounds are opaque upstream; only this backend ever interprets them.
var boundLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Client indexes stored messages and serves Query executions over them.
// It implements contract.ISearchClient.
type Client struct {
	writer *bluge.Writer
	log    *slog.Logger
	limit  int
}

func NewClient(writer *bluge.Writer, log *slog.Logger, limit int) *Client {
	return &Client{writer: writer, log: log, limit: limit}
}

// Index makes a stored message searchable. The timestamp is indexed twice:
// as a datetime field for range queries and as a stored keyword for
// retrieval.
func (c *Client) Index(message storage.StoredMessage) error {
	doc := bluge.NewDocument(message.ID.String()).
		AddField(bluge.NewTextField("content", message.Content).StoreValue()).
		AddField(bluge.NewKeywordField("team", message.Team).StoreValue()).
		AddField(bluge.NewKeywordField("channel", message.Channel).StoreValue()).
		AddField(bluge.NewKeywordField("author", message.Author).StoreValue()).
		AddField(bluge.NewKeywordField("lang", message.Language).StoreValue()).
		AddField(bluge.NewDateTimeField("at", message.At)).
		AddField(bluge.NewKeywordField("at_text", message.At.UTC().Format(time.RFC3339Nano)).StoreValue())

	return c.writer.Update(doc.ID(), doc)
}

// Search runs one query against the index, restricted to the team and the
// query's time window, best matches first up to the configured limit.
func (c *Client) Search(ctx context.Context, teamID string, query search.Query) (contract.SearchResult, error) {
	reader, err := c.writer.Reader()
	if err != nil {
		return contract.SearchResult{}, fmt.Errorf("index reader: %w", err)
	}
	defer func() {
		_ = reader.Close()
	}()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query.Text).SetField("content")).
		AddMust(bluge.NewTermQuery(teamID).SetField("team"))

	from, to := c.bounds(query.Window)
	boolean.AddMust(bluge.NewDateRangeInclusiveQuery(from, to, true, true).SetField("at"))

	request := bluge.NewTopNSearch(c.limit, boolean).WithStandardAggregations()
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return contract.SearchResult{}, fmt.Errorf("index search: %w", err)
	}

	// Never nil: an empty search must serialize as an empty list, not null.
	hits := []contract.SearchHit{}
	for {
		match, err := iterator.Next()
		if err != nil {
			return contract.SearchResult{}, fmt.Errorf("index iteration: %w", err)
		}
		if match == nil {
			break
		}

		hit := contract.SearchHit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.ID = string(value)
			case "team":
				hit.Team = string(value)
			case "channel":
				hit.Channel = string(value)
			case "author":
				hit.Author = string(value)
			case "content":
				hit.Content = string(value)
			case "lang":
				hit.Language = string(value)
			case "at_text":
				if at, err := time.Parse(time.RFC3339Nano, string(value)); err == nil {
					hit.At = at
				}
			}
			return true
		})
		if err != nil {
			return contract.SearchResult{}, fmt.Errorf("stored fields: %w", err)
		}
		hits = append(hits, hit)
	}

	return contract.SearchResult{
		Total: iterator.Aggregations().Count(),
		Hits:  hits,
	}, nil
}

// bounds translates the window into concrete range limits. Absolute bounds
// that cannot be parsed fall back to an open end, so an unintelligible
// marker widens the window instead of silently matching nothing.
func (c *Client) bounds(window search.TimeWindow) (time.Time, time.Time) {
	now := time.Now().UTC()
	switch window.Kind {
	case search.WindowRelative:
		return now.Add(-window.Unit.Span(window.Amount)), now
	case search.WindowAbsolute:
		return c.parseBound(window.From, time.Time{}), c.parseBound(window.To, now)
	default:
		return now.Add(-defaultWindow), now
	}
}

func (c *Client) parseBound(marker string, fallback time.Time) time.Time {
	for _, layout := range boundLayouts {
		if t, err := time.Parse(layout, marker); err == nil {
			return t.UTC()
		}
	}
	c.log.Warn("Unparseable time bound, leaving window open", "marker", marker)
	return fallback
}
