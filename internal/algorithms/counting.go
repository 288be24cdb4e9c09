package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Counting tallies each value into a table sized max+1, prefix-sums the
// table and places elements from last to first so equal values keep their
// input order. Every placement counts as one swap. Values must be
// non-negative.
func Counting(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(4 * n)

	maxValue := arr[0].Value
	for i := 1; i < n; i++ {
		arr[i].State = trace.Comparing
		rec.Emitf(arr, "Finding maximum value, checking element at index %d", i)
		if rec.Greater(arr[i].Value, maxValue) {
			maxValue = arr[i].Value
			rec.Emitf(arr, "New maximum value found: %d", maxValue)
		}
		arr[i].State = trace.Default
	}

	count := make([]int, maxValue+1)
	for i := range arr {
		arr[i].State = trace.Active
		count[arr[i].Value]++
		rec.Emitf(arr, "Counting occurrences of value %d", arr[i].Value)
		arr[i].State = trace.Default
	}

	for v := 1; v <= maxValue; v++ {
		count[v] += count[v-1]
		rec.Emitf(arr, "Calculating cumulative count for value %d: %d", v, count[v])
	}

	output := make(trace.Array, n)
	placed := make([]bool, n)
	for i := n - 1; i >= 0; i-- {
		e := arr[i]
		count[e.Value]--
		index := count[e.Value]
		e.State = trace.Sorted
		output[index] = e
		placed[index] = true
		rec.Move()

		rec.Emitf(overlay(arr, output, placed, i), "Placing value %d at index %d in sorted array", e.Value, index)
	}

	copy(arr, output)
	return rec.Complete(arr)
}

// overlay renders the pending input with already placed output slots drawn
// on top, highlighting the input element at cursor.
func overlay(arr, output trace.Array, placed []bool, cursor int) trace.Array {
	view := arr.Reset()
	view[cursor].State = trace.Active
	for j, ok := range placed {
		if ok {
			view[j] = output[j]
		}
	}
	return view
}
