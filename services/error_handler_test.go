package services

import (
	"fmt"
	"log/slog"
	"testing"

	apperrors "search-bot/errors"

	"github.com/stretchr/testify/require"
)

func TestErrorHandler_RecognizedErrorIsSilent(t *testing.T) {
	req := require.New(t)
	handler := NewErrorHandler(slog.Default(), apperrors.ErrInvalidAmount)

	called := false
	wrapped := fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, "0")
	handler.Handle(testMessage(), wrapped, func(error) { called = true })

	req.False(called, "recognized errors must not reach the fallback")
}

func TestErrorHandler_UnrecognizedErrorHitsFallback(t *testing.T) {
	req := require.New(t)
	handler := NewErrorHandler(slog.Default(), apperrors.ErrInvalidAmount)

	var got error
	boom := fmt.Errorf("index unavailable")
	handler.Handle(testMessage(), boom, func(err error) { got = err })

	req.Equal(boom, got)
}

func TestErrorHandler_EmptyRegistryForwardsEverything(t *testing.T) {
	req := require.New(t)
	handler := NewErrorHandler(slog.Default())

	calls := 0
	for _, err := range []error{
		apperrors.ErrInvalidAmount,
		apperrors.ErrInvalidTimeUnit,
		apperrors.ErrEmptyQueryText,
		fmt.Errorf("anything else"),
	} {
		handler.Handle(testMessage(), err, func(error) { calls++ })
	}

	req.Equal(4, calls)
}
