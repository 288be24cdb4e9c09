package metrics

import "github.com/san-kum/sortviz/internal/trace"

type Comparisons struct {
	name string
	last int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string { return c.name }

func (c *Comparisons) Observe(f trace.Frame) { c.last = f.Comparisons }

func (c *Comparisons) Value() float64 { return float64(c.last) }

func (c *Comparisons) Reset() { c.last = 0 }

type Swaps struct {
	name string
	last int
}

func NewSwaps() *Swaps {
	return &Swaps{name: "swaps"}
}

func (s *Swaps) Name() string { return s.name }

func (s *Swaps) Observe(f trace.Frame) { s.last = f.Swaps }

func (s *Swaps) Value() float64 { return float64(s.last) }

func (s *Swaps) Reset() { s.last = 0 }

// Frames counts observed frames.
type Frames struct {
	name    string
	samples int
}

func NewFrames() *Frames {
	return &Frames{name: "frames"}
}

func (f *Frames) Name() string { return f.name }

func (f *Frames) Observe(trace.Frame) { f.samples++ }

func (f *Frames) Value() float64 { return float64(f.samples) }

func (f *Frames) Reset() { f.samples = 0 }
