package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Quick is recursive quicksort with a Lomuto partition around the last
// element of each range.
func Quick(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * 8)

	partition := func(low, high int) int {
		pivot := arr[high]
		arr[high].State = trace.Pivot
		rec.Emitf(arr, "Choosing pivot at index %d", high)

		i := low - 1
		for j := low; j < high; j++ {
			arr[j].State = trace.Comparing
			greater := rec.Compare(arr[j], pivot)
			rec.Emitf(arr, "Comparing element at index %d with pivot", j)

			if !greater {
				i++
				if i != j {
					rec.Swap(arr, i, j)
					rec.Emitf(arr, "Swapping elements at indices %d and %d", i, j)
				}
				arr[i].State = trace.Default
			}
			arr[j].State = trace.Default
		}

		p := i + 1
		if p != high {
			rec.Swap(arr, p, high)
		}
		arr[high].State = trace.Default
		arr[p].State = trace.Sorted
		rec.Emitf(arr, "Placing pivot at its correct position (index %d)", p)
		return p
	}

	var sortRange func(low, high int)
	sortRange = func(low, high int) {
		switch {
		case low < high:
			p := partition(low, high)
			sortRange(low, p-1)
			sortRange(p+1, high)
		case low == high:
			arr[low].State = trace.Sorted
			rec.Emitf(arr, "Element at index %d is in its sorted position", low)
		}
	}

	sortRange(0, n-1)
	return rec.Complete(arr)
}
