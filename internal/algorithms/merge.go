package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Merge is top-down merge sort. Only the outermost merge tags placed
// elements sorted; inner merges leave them default.
func Merge(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * 8)

	merge := func(l, m, r int) {
		left := arr[l : m+1].Clone()
		right := arr[m+1 : r+1].Clone()

		for k := l; k <= r; k++ {
			if k <= m {
				arr[k].State = trace.Comparing
			} else {
				arr[k].State = trace.Active
			}
		}
		rec.Emitf(arr, "Merging subarrays from index %d to %d and %d to %d", l, m, m+1, r)

		placed := trace.Default
		if l == 0 && r == n-1 {
			placed = trace.Sorted
		}

		i, j, k := 0, 0, l
		for i < len(left) && j < len(right) {
			if rec.Compare(left[i], right[j]) {
				arr[k] = right[j]
				j++
				rec.Move()
			} else {
				arr[k] = left[i]
				i++
			}
			arr[k].State = placed
			rec.Emitf(arr, "Placing element at index %d", k)
			k++
		}

		for ; i < len(left); i++ {
			arr[k] = left[i]
			arr[k].State = placed
			rec.Emitf(arr, "Copying remaining element from left subarray to index %d", k)
			k++
		}
		for ; j < len(right); j++ {
			arr[k] = right[j]
			arr[k].State = placed
			rec.Emitf(arr, "Copying remaining element from right subarray to index %d", k)
			k++
		}
	}

	var sortRange func(l, r int)
	sortRange = func(l, r int) {
		if l >= r {
			return
		}
		m := (l + r) / 2
		sortRange(l, m)
		sortRange(m+1, r)
		merge(l, m, r)
	}

	sortRange(0, n-1)
	return rec.Complete(arr)
}
