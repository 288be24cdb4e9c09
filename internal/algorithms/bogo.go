package algorithms

import (
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/trace"
)

// DefaultBogoAttempts bounds the number of shuffles before giving up.
const DefaultBogoAttempts = 20

// GiveUpDescription is the final description of a bogo trace that hit its
// shuffle cap. Such a trace ends unsorted.
const GiveUpDescription = "Maximum iterations reached, stopping Bogo Sort"

// NewBogo returns a bogo sort drawing shuffles from rng and giving up after
// maxAttempts shuffles. A nil rng is seeded from the clock.
func NewBogo(rng *rand.Rand, maxAttempts int) Func {
	if maxAttempts < 0 {
		maxAttempts = 0
	}
	return func(input trace.Array) trace.Trace {
		if len(input) < 2 {
			return trace.Trivial(input)
		}
		r := rng
		if r == nil {
			r = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		return bogo(input, r, maxAttempts)
	}
}

// Bogo shuffles until sorted, at most DefaultBogoAttempts times.
func Bogo(input trace.Array) trace.Trace {
	return NewBogo(nil, DefaultBogoAttempts)(input)
}

func bogo(input trace.Array, rng *rand.Rand, maxAttempts int) trace.Trace {
	arr := trace.Begin(input)
	n := len(arr)
	rec := trace.NewRecorder(n * (maxAttempts + 1) * 2)

	for attempt := 0; ; attempt++ {
		sorted := true
		for i := 1; i < n; i++ {
			arr[i-1].State = trace.Comparing
			arr[i].State = trace.Comparing
			inverted := rec.Compare(arr[i-1], arr[i])
			rec.Emitf(arr, "Checking if array is sorted, comparing %d with %d", arr[i-1].Value, arr[i].Value)
			arr[i-1].State = trace.Default
			arr[i].State = trace.Default
			if inverted {
				sorted = false
				break
			}
		}

		if sorted {
			return rec.Complete(arr)
		}
		if attempt == maxAttempts {
			rec.Emit(arr, GiveUpDescription)
			return rec.Trace()
		}

		for i := range arr {
			arr[i].State = trace.Active
		}
		rec.Emitf(arr, "Array not sorted, performing random shuffle (attempt %d)", attempt+1)
		for i := n - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			if i != j {
				rec.Swap(arr, i, j)
			}
		}
		for i := range arr {
			arr[i].State = trace.Default
		}
		rec.Emitf(arr, "Completed random shuffle (attempt %d)", attempt+1)
	}
}
