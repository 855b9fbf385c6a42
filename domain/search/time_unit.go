package search

import (
	"fmt"
	"strings"
	"time"

	"search-bot/errors"
)

// TimeUnit is the canonical granularity of a relative time window.
// Values are produced exclusively by ParseTimeUnit.
type TimeUnit string

const (
	Minutes TimeUnit = "MINUTES"
	Hours   TimeUnit = "HOURS"
)

// ParseTimeUnit maps a free-text unit token to its canonical TimeUnit.
// Matching is case-insensitive. The accepted vocabulary must stay in sync
// with the unit group of the relative-window route pattern; a token that
// reaches this function without matching either family fails with
// errors.ErrInvalidTimeUnit.
func ParseTimeUnit(token string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "minute", "minutes", "min", "mins", "m":
		return Minutes, nil
	case "hour", "hours", "h":
		return Hours, nil
	default:
		return "", fmt.Errorf("%w: %q", errors.ErrInvalidTimeUnit, token)
	}
}

// Span converts an amount of this unit into a time.Duration.
func (u TimeUnit) Span(amount int) time.Duration {
	if u == Hours {
		return time.Duration(amount) * time.Hour
	}
	return time.Duration(amount) * time.Minute
}
