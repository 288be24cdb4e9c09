package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Selection scans the unsorted suffix for its minimum and performs at most
// one swap per pass.
func Selection(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	for i := 0; i < n-1; i++ {
		minIdx := i
		arr[i].State = trace.Active
		rec.Emitf(arr, "Finding minimum element starting from index %d", i)

		for j := i + 1; j < n; j++ {
			arr[j].State = trace.Comparing
			smaller := rec.Compare(arr[minIdx], arr[j])
			rec.Emitf(arr, "Comparing with element at index %d", j)

			if !smaller {
				arr[j].State = trace.Default
				continue
			}
			if minIdx != i {
				arr[minIdx].State = trace.Default
			}
			minIdx = j
			arr[minIdx].State = trace.Active
			rec.Emitf(arr, "Found new minimum at index %d", j)
		}

		if minIdx != i {
			rec.Swap(arr, i, minIdx)
			arr[minIdx].State = trace.Default
			rec.Emitf(arr, "Swapping elements at indices %d and %d", i, minIdx)
		}

		arr[i].State = trace.Sorted
		rec.Emitf(arr, "Element at index %d is now in its sorted position", i)
	}

	return rec.Complete(arr)
}
