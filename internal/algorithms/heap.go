package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Heap builds a max-heap in place and repeatedly swaps the root behind the
// shrinking heap boundary.
func Heap(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * 8)

	var heapify func(size, i int)
	heapify = func(size, i int) {
		largest := i
		left, right := 2*i+1, 2*i+2
		arr[i].State = trace.Active

		if left < size {
			arr[left].State = trace.Comparing
			if rec.Compare(arr[left], arr[largest]) {
				largest = left
			}
			rec.Emitf(arr, "Comparing parent at index %d with left child at index %d", i, left)
			arr[left].State = trace.Default
		}
		if right < size {
			arr[right].State = trace.Comparing
			if rec.Compare(arr[right], arr[largest]) {
				largest = right
			}
			rec.Emitf(arr, "Comparing parent at index %d with right child at index %d", i, right)
			arr[right].State = trace.Default
		}

		if largest == i {
			arr[i].State = trace.Default
			return
		}
		rec.Swap(arr, i, largest)
		rec.Emitf(arr, "Swapping elements at indices %d and %d", i, largest)
		arr[i].State = trace.Default
		arr[largest].State = trace.Default
		heapify(size, largest)
	}

	for i := n/2 - 1; i >= 0; i-- {
		heapify(n, i)
	}

	for i := n - 1; i > 0; i-- {
		rec.Swap(arr, 0, i)
		arr[i].State = trace.Sorted
		rec.Emitf(arr, "Moving largest element to index %d", i)
		heapify(i, 0)
	}

	return rec.Complete(arr)
}
