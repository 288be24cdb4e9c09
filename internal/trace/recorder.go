package trace

import "fmt"

// CompleteDescription is the description of the final frame of every
// converged trace.
const CompleteDescription = "Sorting complete"

// Recorder accumulates frames for a single run. It owns the running
// comparison and swap counters so every emitted frame carries them.
type Recorder struct {
	frames      Trace
	Comparisons int
	Swaps       int
}

func NewRecorder(capacity int) *Recorder {
	return &Recorder{frames: make(Trace, 0, capacity)}
}

// Emit appends a snapshot of arr. The array is deep-copied; later
// mutations of arr never reach the stored frame.
func (r *Recorder) Emit(arr Array, description string) {
	r.frames = append(r.frames, Frame{
		Array:       arr.Clone(),
		Comparisons: r.Comparisons,
		Swaps:       r.Swaps,
		Description: description,
	})
}

func (r *Recorder) Emitf(arr Array, format string, args ...any) {
	r.Emit(arr, fmt.Sprintf(format, args...))
}

// Compare counts one comparison and returns a > b.
func (r *Recorder) Compare(a, b Element) bool {
	return r.Greater(a.Value, b.Value)
}

// Greater counts one comparison and returns a > b.
func (r *Recorder) Greater(a, b int) bool {
	r.Comparisons++
	return a > b
}

// Equal counts one comparison and returns whether a and b hold equal values.
func (r *Recorder) Equal(a, b Element) bool {
	r.Comparisons++
	return a.Value == b.Value
}

// Move counts one relocation that is not a two-way exchange, such as a
// shift or a write into an output buffer.
func (r *Recorder) Move() {
	r.Swaps++
}

// Swap exchanges arr[i] and arr[j] and counts one swap.
func (r *Recorder) Swap(arr Array, i, j int) {
	arr[i], arr[j] = arr[j], arr[i]
	r.Swaps++
}

// Complete tags every element sorted and emits the terminal frame.
func (r *Recorder) Complete(arr Array) Trace {
	for i := range arr {
		arr[i].State = Sorted
	}
	r.Emit(arr, CompleteDescription)
	return r.frames
}

// Trace returns the frames recorded so far without a terminal frame.
func (r *Recorder) Trace() Trace {
	return r.frames
}

// Begin deep-copies the caller's input and resets every state, so the
// working array never aliases the input.
func Begin(input Array) Array {
	return input.Reset()
}

// Trivial returns the single-frame trace of an input with at most one
// element.
func Trivial(input Array) Trace {
	r := NewRecorder(1)
	return r.Complete(Begin(input))
}
