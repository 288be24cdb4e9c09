package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Cocktail alternates a forward pass that pushes the maximum to end with a
// backward pass that pushes the minimum to start.
func Cocktail(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	start, end := 0, n-1
	swapped := true
	for swapped {
		swapped = false
		for i := start; i < end; i++ {
			arr[i].State, arr[i+1].State = trace.Comparing, trace.Comparing
			greater := rec.Compare(arr[i], arr[i+1])
			rec.Emitf(arr, "Forward pass: Comparing elements at indices %d and %d", i, i+1)
			if greater {
				rec.Swap(arr, i, i+1)
				swapped = true
				rec.Emitf(arr, "Forward pass: Swapping elements at indices %d and %d", i, i+1)
			}
			arr[i].State, arr[i+1].State = trace.Default, trace.Default
		}

		if !swapped {
			break
		}

		arr[end].State = trace.Sorted
		rec.Emitf(arr, "Element at index %d is now in its sorted position", end)
		end--

		swapped = false
		for i := end; i > start; i-- {
			arr[i-1].State, arr[i].State = trace.Comparing, trace.Comparing
			greater := rec.Compare(arr[i-1], arr[i])
			rec.Emitf(arr, "Backward pass: Comparing elements at indices %d and %d", i-1, i)
			if greater {
				rec.Swap(arr, i-1, i)
				swapped = true
				rec.Emitf(arr, "Backward pass: Swapping elements at indices %d and %d", i-1, i)
			}
			arr[i-1].State, arr[i].State = trace.Default, trace.Default
		}

		arr[start].State = trace.Sorted
		rec.Emitf(arr, "Element at index %d is now in its sorted position", start)
		start++
	}

	return rec.Complete(arr)
}
