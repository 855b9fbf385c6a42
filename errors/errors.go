package errors

import "fmt"

var (
	// ErrInvalidTimeUnit means a route pattern accepted a unit token the
	// normalizer does not know. That is a contract violation between the
	// two vocabularies, not a user mistake.
	ErrInvalidTimeUnit = fmt.Errorf("unrecognized time unit")
	ErrInvalidAmount   = fmt.Errorf("relative time amount must be a positive integer")
	ErrEmptyQueryText  = fmt.Errorf("query text is empty")
	ErrWorkerPanic     = fmt.Errorf("worker panic")
)
