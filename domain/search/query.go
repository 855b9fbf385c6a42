package search

import (
	"fmt"
	"strconv"
	"strings"

	"search-bot/errors"
)

// WindowKind discriminates the active TimeWindow variant.
type WindowKind string

const (
	WindowDefault  WindowKind = "default"
	WindowRelative WindowKind = "relative"
	WindowAbsolute WindowKind = "absolute"
)

// TimeWindow is a tagged choice of default, relative or absolute bounds.
// Exactly one variant is active; Kind tells which of the remaining fields
// carry meaning. Default has no bounds at all: the backend applies its own.
// From and To are opaque markers, stored untouched.
type TimeWindow struct {
	Kind   WindowKind
	Amount int
	Unit   TimeUnit
	From   string
	To     string
}

func DefaultWindow() TimeWindow {
	return TimeWindow{Kind: WindowDefault}
}

func RelativeWindow(amount int, unit TimeUnit) TimeWindow {
	return TimeWindow{Kind: WindowRelative, Amount: amount, Unit: unit}
}

func AbsoluteWindow(from, to string) TimeWindow {
	return TimeWindow{Kind: WindowAbsolute, From: from, To: to}
}

// Query is the immutable value handed to the search backend:
// a non-empty text plus the time window chosen at construction.
type Query struct {
	Text   string
	Window TimeWindow
}

// Builder accumulates query parts and validates them at Build time.
// One route maps to exactly one window setter, so conflicting setter calls
// follow a last-call-wins convention rather than being detected.
type Builder struct {
	text   string
	window *TimeWindow
	err    error
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithQueryString stores the trimmed query text. Last write wins.
func (b *Builder) WithQueryString(s string) *Builder {
	b.text = strings.TrimSpace(s)
	return b
}

// WithRelativeTime parses amountText as a positive integer and selects the
// relative window. A non-numeric or non-positive amount fails the build
// with errors.ErrInvalidAmount.
func (b *Builder) WithRelativeTime(amountText string, unit TimeUnit) *Builder {
	amount, err := strconv.Atoi(strings.TrimSpace(amountText))
	if err != nil || amount <= 0 {
		b.fail(fmt.Errorf("%w: %q", errors.ErrInvalidAmount, amountText))
		return b
	}
	window := RelativeWindow(amount, unit)
	b.window = &window
	return b
}

// WithExactTime selects the absolute window. The markers are opaque and
// kept as-is beyond a non-empty check.
func (b *Builder) WithExactTime(from, to string) *Builder {
	if from == "" || to == "" {
		b.fail(fmt.Errorf("%w: absolute bounds must be non-empty", errors.ErrInvalidAmount))
		return b
	}
	window := AbsoluteWindow(from, to)
	b.window = &window
	return b
}

// Build validates the accumulated parts and returns the immutable Query.
// A missing or blank query text fails with errors.ErrEmptyQueryText.
// When no window setter was called the default window applies.
func (b *Builder) Build() (Query, error) {
	if b.err != nil {
		return Query{}, b.err
	}
	if b.text == "" {
		return Query{}, errors.ErrEmptyQueryText
	}
	window := DefaultWindow()
	if b.window != nil {
		window = *b.window
	}
	return Query{Text: b.text, Window: window}, nil
}

// fail records the first error only; later setter calls cannot mask it.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
