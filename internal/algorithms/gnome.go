package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Gnome walks a single index forward while neighbours are in order and
// swaps and steps back on an inversion.
func Gnome(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	index := 0
	for index < n {
		if index == 0 {
			index++
			rec.Emitf(arr, "Gnome moving forward to index %d", index)
			continue
		}

		arr[index-1].State, arr[index].State = trace.Comparing, trace.Comparing
		inverted := rec.Compare(arr[index-1], arr[index])
		rec.Emitf(arr, "Comparing %d with %d", arr[index].Value, arr[index-1].Value)

		if !inverted {
			arr[index-1].State, arr[index].State = trace.Default, trace.Default
			index++
			rec.Emitf(arr, "Gnome moving forward to index %d", index)
			continue
		}

		rec.Swap(arr, index-1, index)
		rec.Emitf(arr, "Swapping %d with %d", arr[index].Value, arr[index-1].Value)
		arr[index-1].State, arr[index].State = trace.Default, trace.Default
		index--
		rec.Emitf(arr, "Gnome moving backward to index %d", index)
	}

	return rec.Complete(arr)
}
