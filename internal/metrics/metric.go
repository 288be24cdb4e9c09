// Package metrics summarizes traces through frame observers.
package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Metric observes frames in order and reports a single number.
type Metric interface {
	Name() string
	Observe(f trace.Frame)
	Value() float64
	Reset()
}

// Standard returns a fresh set of the metrics reported by every run.
func Standard() []Metric {
	return []Metric{
		NewComparisons(),
		NewSwaps(),
		NewFrames(),
		NewInversions(),
		NewProgress(),
	}
}

// Collect feeds every frame of t to each metric and returns their values
// by name. Metrics are reset first.
func Collect(t trace.Trace, ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for _, f := range t {
		for _, m := range ms {
			m.Observe(f)
		}
	}
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
