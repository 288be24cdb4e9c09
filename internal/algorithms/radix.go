package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Radix is least-significant-digit radix sort in base 10, running a stable
// counting pass per digit. Values must be non-negative.
func Radix(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(8 * n)

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

	for exp := 1; maxValue/exp > 0; exp *= 10 {
		rec.Emitf(arr, "Sorting by digit position: %d", exp)

		var count [10]int
		for i := range arr {
			digit := arr[i].Value / exp % 10
			count[digit]++
			arr[i].State = trace.Active
			rec.Emitf(arr, "Counting occurrences of digit %d at position %d", digit, exp)
			arr[i].State = trace.Default
		}

		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
			rec.Emitf(arr, "Calculating cumulative count for digit %d: %d", d, count[d])
		}

		output := make(trace.Array, n)
		placed := make([]bool, n)
		for i := n - 1; i >= 0; i-- {
			e := arr[i]
			digit := e.Value / exp % 10
			count[digit]--
			index := count[digit]
			e.State = trace.Comparing
			output[index] = e
			placed[index] = true
			rec.Move()
			rec.Emitf(overlay(arr, output, placed, i), "Placing value %d (digit %d) at index %d", e.Value, digit, index)
		}

		copy(arr, output.Reset())
		rec.Emitf(arr, "Completed sorting by digit position: %d", exp)

		// No higher digit remains; stop before exp*10 can overflow.
		if exp > maxValue/10 {
			break
		}
	}

	return rec.Complete(arr)
}
