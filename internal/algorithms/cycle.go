package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Cycle decomposes the permutation into cycles and writes every value
// directly to its final index. Values equal to the one being placed are
// skipped so duplicates cannot loop forever.
func Cycle(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	// position counts the values right of start that are smaller than item.
	// Slots already holding their final value stay sorted.
	position := func(start int, item trace.Element, format string) int {
		pos := start
		for i := start + 1; i < n; i++ {
			prev := arr[i].State
			if prev != trace.Sorted {
				arr[i].State = trace.Comparing
			}
			if rec.Compare(item, arr[i]) {
				pos++
			}
			rec.Emitf(arr, format, item.Value, arr[i].Value)
			arr[i].State = prev
		}
		return pos
	}

	// skipEqual advances past values equal to item.
	skipEqual := func(pos int, item trace.Element) int {
		for pos < n-1 && rec.Equal(item, arr[pos]) {
			pos++
		}
		return pos
	}

	place := func(pos int, item trace.Element) trace.Element {
		item.State = trace.Sorted
		displaced := arr[pos]
		arr[pos] = item
		rec.Move()
		rec.Emitf(arr, "Placing %d in its correct position at index %d", item.Value, pos)
		displaced.State = trace.Default
		return displaced
	}

	for start := 0; start < n-1; start++ {
		item := arr[start]
		if arr[start].State != trace.Sorted {
			arr[start].State = trace.Active
		}

		pos := position(start, item, "Comparing %d with %d")
		if pos == start {
			arr[start].State = trace.Sorted
			rec.Emitf(arr, "Element %d is already in the correct position", item.Value)
			continue
		}

		pos = skipEqual(pos, item)
		item = place(pos, item)

		for pos != start {
			pos = position(start, item, "Finding position for %d, comparing with %d")
			pos = skipEqual(pos, item)
			item = place(pos, item)
		}
	}

	return rec.Complete(arr)
}
