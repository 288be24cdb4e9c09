package algorithms

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm indicates an identifier missing from the catalog.
	ErrUnknownAlgorithm = errors.New("algorithms: unknown algorithm")

	// ErrNegativeKey indicates negative input to a sort that indexes by value.
	ErrNegativeKey = errors.New("algorithms: negative key for non-negative sort")
)

// TraceError wraps a dispatch failure with the requested identifier.
type TraceError struct {
	Algorithm ID
	Wrapped   error
}

func (e *TraceError) Error() string {
	return fmt.Sprintf("%v: %q", e.Wrapped, string(e.Algorithm))
}

func (e *TraceError) Unwrap() error {
	return e.Wrapped
}
