// Package trace defines the replayable record produced by a sorting run.
//
// A run is described by three types:
//
//   - [Element]: one array slot (value, visualization state, identity)
//   - [Frame]: an immutable snapshot of the whole array plus counters
//   - [Trace]: the ordered list of frames returned by one run
//
// Algorithms build traces through a [Recorder], which deep-copies the
// working array on every [Recorder.Emit]. Frames never share backing
// arrays, so a consumer may hold any number of them while scrubbing.
//
// # Thread Safety
//
// A Recorder belongs to a single run and is NOT safe for concurrent use.
// Finished traces are read-only and may be shared freely.
package trace
