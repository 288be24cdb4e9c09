package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Bubble sweeps adjacent pairs, pushing the largest unsorted value to the
// end of the shrinking unsorted range. A pass without swaps ends the sort.
func Bubble(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			arr[j].State, arr[j+1].State = trace.Comparing, trace.Comparing
			greater := rec.Compare(arr[j], arr[j+1])
			rec.Emitf(arr, "Comparing elements at indices %d and %d", j, j+1)

			if greater {
				rec.Swap(arr, j, j+1)
				swapped = true
				rec.Emitf(arr, "Swapping elements at indices %d and %d", j, j+1)
			}
			arr[j].State, arr[j+1].State = trace.Default, trace.Default
		}

		arr[n-i-1].State = trace.Sorted
		rec.Emitf(arr, "Element at index %d is now in its sorted position", n-i-1)
		if !swapped {
			break
		}
	}

	return rec.Complete(arr)
}
