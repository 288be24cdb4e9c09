// Package algorithms implements the sixteen trace-producing sorts.
//
// Every algorithm is a pure [Func]: it deep-copies its input, sorts the
// copy, and returns a [trace.Trace] with one frame per comparison, move,
// or structural milestone (gap change, pivot choice, merge, completion).
// Algorithms share no state, so traces for different algorithms may be
// computed on separate goroutines without coordination.
//
// # Catalog
//
// [Catalog] returns the static descriptors in canonical order:
//
//	bubble, selection, insertion, quick, merge, heap, shell, counting,
//	radix, bucket, cocktail, comb, cycle, gnome, tim, bogo
//
// [Trace] dispatches by identifier and rejects unknown ids with
// [ErrUnknownAlgorithm].
//
// # Counting
//
// comparisons grows by one for every value comparison that steers control
// flow. swaps grows by one for every relocation of a value, including
// writes into an output buffer in the distribution sorts.
//
// # Preconditions
//
// Counting and radix sort index tables by value and require non-negative
// keys. [Trace] checks this and returns [ErrNegativeKey]; calling
// [Counting] or [Radix] directly with negative values panics.
package algorithms
