package algorithms

import (
	"math"

	"github.com/san-kum/sortviz/internal/trace"
)

// Bucket partitions the value range into floor(sqrt(n)) equal-width
// buckets, insertion-sorts each bucket and concatenates them. Every
// placement back into the array counts as one swap.
func Bucket(input trace.Array) trace.Trace {
	if len(input) < 2 {
		return trace.Trivial(input)
	}
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(8 * n)

	minValue, maxValue := arr[0].Value, arr[0].Value
	for i := 1; i < n; i++ {
		arr[i].State = trace.Comparing
		rec.Emitf(arr, "Finding min/max values, checking element at index %d", i)
		if rec.Greater(arr[i].Value, maxValue) {
			maxValue = arr[i].Value
		}
		if rec.Greater(minValue, arr[i].Value) {
			minValue = arr[i].Value
		}
		arr[i].State = trace.Default
	}

	bucketCount := max(int(math.Sqrt(float64(n))), 1)
	// Offsets from minValue are taken in uint64 so the full int range fits.
	// bucketSize is ceil((maxValue-minValue+1)/bucketCount), saturating.
	bucketSize := offset(maxValue, minValue) / uint64(bucketCount)
	if bucketSize < math.MaxUint64 {
		bucketSize++
	}
	buckets := make([]trace.Array, bucketCount)
	rec.Emitf(arr, "Created %d buckets with size %d", bucketCount, bucketSize)

	for i := range arr {
		arr[i].State = trace.Active
		b := int(min(offset(arr[i].Value, minValue)/bucketSize, uint64(bucketCount-1)))
		e := arr[i]
		e.State = trace.Default
		buckets[b] = append(buckets[b], e)
		rec.Emitf(arr, "Placing value %d in bucket %d", arr[i].Value, b)
		arr[i].State = trace.Default
	}

	index := 0
	for b, bucket := range buckets {
		rec.Emitf(arr, "Sorting bucket %d with %d elements", b, len(bucket))

		for j := 1; j < len(bucket); j++ {
			key := bucket[j]
			k := j - 1
			for k >= 0 && rec.Compare(bucket[k], key) {
				bucket[k+1] = bucket[k]
				k--
			}
			bucket[k+1] = key
		}

		for _, e := range bucket {
			e.State = trace.Sorted
			arr[index] = e
			rec.Move()
			rec.Emitf(arr, "Placing sorted element from bucket %d at index %d", b, index)
			index++
		}
	}

	return rec.Complete(arr)
}

// offset returns v-lo for v >= lo without overflow.
func offset(v, lo int) uint64 {
	return uint64(v) - uint64(lo)
}
