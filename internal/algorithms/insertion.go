package algorithms

import "github.com/san-kum/sortviz/internal/trace"

// Insertion grows a sorted prefix, shifting larger values right until the
// next key fits.
func Insertion(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * n)

	arr[0].State = trace.Sorted
	rec.Emit(arr, "First element is already sorted")

	for i := 1; i < n; i++ {
		key := arr[i]
		arr[i].State = trace.Active
		rec.Emitf(arr, "Inserting element at index %d", i)

		j := i - 1
		for j >= 0 {
			arr[j].State = trace.Comparing
			greater := rec.Compare(arr[j], key)
			rec.Emitf(arr, "Comparing with element at index %d", j)
			if !greater {
				arr[j].State = trace.Sorted
				break
			}

			arr[j+1] = arr[j]
			arr[j+1].State = trace.Sorted
			arr[j].State = trace.Active
			rec.Move()
			rec.Emitf(arr, "Moving element at index %d to index %d", j, j+1)
			j--
		}

		key.State = trace.Sorted
		arr[j+1] = key
		rec.Emitf(arr, "Inserted element at index %d", j+1)
	}

	return rec.Complete(arr)
}
