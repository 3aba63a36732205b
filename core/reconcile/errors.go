package reconcile

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when dateFrom is after dateTo.
	// The range is never silently swapped.
	ErrInvalidRange = errors.New("invalid range: dateFrom is after dateTo")

	// ErrTimeout is returned when a run exceeds the caller-supplied
	// deadline. It is distinct from SourceError so callers can decide
	// whether a retry makes sense.
	ErrTimeout = errors.New("reconciliation run timed out")
)

// SourceError reports that one of the two datasets could not be fetched.
// A failed fetch is fatal for the whole run; the engine never produces a
// partial report.
type SourceError struct {
	// Source names the failed dataset: "orders" or "ledger".
	Source string
	// Err is the underlying fetch failure.
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s source unavailable: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// classifyFetchError maps a fetch failure to the run-level taxonomy.
func classifyFetchError(source string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return &SourceError{Source: source, Err: err}
}
