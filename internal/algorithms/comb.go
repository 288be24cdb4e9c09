package algorithms

import "github.com/san-kum/sortviz/internal/trace"

const combShrink = 1.3

// Comb is bubble sort over a gap that shrinks by 1.3 each pass. It stops
// after a swap-free pass at gap 1.
func Comb(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	gap := n
	swapped := true
	for gap > 1 || swapped {
		gap = int(float64(gap) / combShrink)
		if gap < 1 {
			gap = 1
		}
		rec.Emitf(arr, "Using gap size of %d", gap)

		swapped = false
		for i := 0; i+gap < n; i++ {
			arr[i].State, arr[i+gap].State = trace.Comparing, trace.Comparing
			greater := rec.Compare(arr[i], arr[i+gap])
			rec.Emitf(arr, "Comparing elements at indices %d and %d", i, i+gap)
			if greater {
				rec.Swap(arr, i, i+gap)
				swapped = true
				rec.Emitf(arr, "Swapping elements at indices %d and %d", i, i+gap)
			}
			arr[i].State, arr[i+gap].State = trace.Default, trace.Default
		}
	}

	return rec.Complete(arr)
}
