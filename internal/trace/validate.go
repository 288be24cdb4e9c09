package trace

import "slices"

// Validate checks t against input. When requireSorted is false the final
// frame may be out of order (the capped random shuffle case), but every
// other invariant still applies.
func Validate(input Array, t Trace, requireSorted bool) error {
	if len(t) == 0 {
		return ErrEmptyTrace
	}

	n := len(input)
	for i, f := range t {
		if len(f.Array) != n {
			return &FrameError{Frame: i, Wrapped: ErrLengthChanged}
		}
		for _, e := range f.Array {
			if !e.State.Valid() {
				return &FrameError{Frame: i, Wrapped: ErrInvalidState}
			}
		}
		if i == 0 {
			continue
		}
		prev := t[i-1]
		if f.Comparisons < prev.Comparisons || f.Swaps < prev.Swaps {
			return &FrameError{Frame: i, Wrapped: ErrCounterDecreased}
		}
	}

	last := t.Last()
	if requireSorted && !last.Array.IsSorted() {
		return &FrameError{Frame: len(t) - 1, Wrapped: ErrNotSorted}
	}
	if !sameMultiset(input.Values(), last.Array.Values()) {
		return &FrameError{Frame: len(t) - 1, Wrapped: ErrMultisetChanged}
	}
	return nil
}

func sameMultiset(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	x := slices.Clone(a)
	y := slices.Clone(b)
	slices.Sort(x)
	slices.Sort(y)
	return slices.Equal(x, y)
}
