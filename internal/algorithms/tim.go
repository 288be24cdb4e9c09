package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// timRun is the fixed run length sorted by insertion before merging.
const timRun = 32

// Tim is a simplified timsort: insertion-sort fixed-size runs, then merge
// them bottom-up, doubling the width each pass.
func Tim(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * 8)

	for lo := 0; lo < n; lo += timRun {
		hi := min(lo+timRun-1, n-1)
		rec.Emitf(arr, "Sorting subarray from index %d to %d using insertion sort", lo, hi)

		for i := lo + 1; i <= hi; i++ {
			key := arr[i]
			arr[i].State = trace.Active
			k := i - 1
			for k >= lo {
				arr[k].State = trace.Comparing
				greater := rec.Compare(arr[k], key)
				rec.Emitf(arr, "Comparing %d with %d", key.Value, arr[k].Value)
				arr[k].State = trace.Default
				if !greater {
					break
				}
				arr[k+1] = arr[k]
				rec.Move()
				rec.Emitf(arr, "Moving %d to index %d", arr[k].Value, k+1)
				k--
			}
			key.State = trace.Default
			arr[k+1] = key
			rec.Emitf(arr, "Placing %d at index %d", key.Value, k+1)
		}
	}

	for size := timRun; size < n; size *= 2 {
		for left := 0; left < n; left += 2 * size {
			mid := left + size - 1
			if mid >= n-1 {
				continue
			}
			right := min(left+2*size-1, n-1)
			rec.Emitf(arr, "Merging subarrays from index %d to %d and %d to %d", left, mid, mid+1, right)

			merged := make(trace.Array, 0, right-left+1)
			i, j := left, mid+1
			for i <= mid && j <= right {
				arr[i].State = trace.Comparing
				arr[j].State = trace.Comparing
				greater := rec.Compare(arr[i], arr[j])
				rec.Emitf(arr, "Comparing %d with %d", arr[i].Value, arr[j].Value)
				arr[i].State = trace.Default
				arr[j].State = trace.Default
				if greater {
					merged = append(merged, arr[j])
					j++
				} else {
					merged = append(merged, arr[i])
					i++
				}
			}
			merged = append(merged, arr[i:mid+1]...)
			merged = append(merged, arr[j:right+1]...)

			for k, e := range merged {
				arr[left+k] = e
				rec.Move()
			}
			rec.Emit(arr, "Copying merged elements back to the original array")
		}
	}

	return rec.Complete(arr)
}
