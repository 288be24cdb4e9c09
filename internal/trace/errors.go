package trace

import (
	"errors"
	"fmt"
)

// Invariant violations reported by Validate.
var (
	// ErrEmptyTrace indicates a trace without frames.
	ErrEmptyTrace = errors.New("trace: no frames")

	// ErrLengthChanged indicates a frame whose array length differs from the input.
	ErrLengthChanged = errors.New("trace: array length changed")

	// ErrCounterDecreased indicates a comparison or swap counter going backwards.
	ErrCounterDecreased = errors.New("trace: counter decreased")

	// ErrNotSorted indicates a converged trace whose last frame is out of order.
	ErrNotSorted = errors.New("trace: final frame not sorted")

	// ErrMultisetChanged indicates the final values differ from the input values.
	ErrMultisetChanged = errors.New("trace: final values differ from input")

	// ErrInvalidState indicates an element tagged with an unknown state.
	ErrInvalidState = errors.New("trace: invalid element state")
)

// FrameError wraps an invariant violation with the offending frame index.
type FrameError struct {
	Frame   int
	Wrapped error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("frame %d: %v", e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
