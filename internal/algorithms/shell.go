package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Shell runs gapped insertion sort with Shell's original sequence n/2,
// n/4, ..., 1.
func Shell(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	for gap := n / 2; gap > 0; gap /= 2 {
		rec.Emitf(arr, "Using gap size of %d", gap)

		for i := gap; i < n; i++ {
			temp := arr[i]
			arr[i].State = trace.Active
			rec.Emitf(arr, "Considering element at index %d", i)

			j := i
			for ; j >= gap; j -= gap {
				arr[j-gap].State = trace.Comparing
				greater := rec.Compare(arr[j-gap], temp)
				rec.Emitf(arr, "Comparing with element at index %d", j-gap)
				if !greater {
					arr[j-gap].State = trace.Default
					break
				}

				arr[j] = arr[j-gap]
				arr[j].State = trace.Default
				rec.Move()
				rec.Emitf(arr, "Moving element from index %d to index %d", j-gap, j)
				arr[j-gap].State = trace.Default
			}

			temp.State = trace.Default
			arr[j] = temp
			rec.Emitf(arr, "Placing element at index %d", j)
		}
	}

	return rec.Complete(arr)
}
