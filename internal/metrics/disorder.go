package metrics

import "github.com/san-kum/sortviz/internal/trace"

// Inversions reports the number of out-of-order pairs in the latest frame.
// It is zero for a sorted frame and n(n-1)/2 for a strictly descending one.
type Inversions struct {
	name  string
	value int
}

func NewInversions() *Inversions {
	return &Inversions{name: "inversions"}
}

func (m *Inversions) Name() string { return m.name }

func (m *Inversions) Observe(f trace.Frame) {
	m.value = CountInversions(f.Array.Values())
}

func (m *Inversions) Value() float64 { return float64(m.value) }

func (m *Inversions) Reset() { m.value = 0 }

// CountInversions counts pairs i<j with v[i] > v[j] by merge sort.
func CountInversions(v []int) int {
	buf := make([]int, len(v))
	work := append([]int(nil), v...)
	return countInversions(work, buf)
}

func countInversions(v, buf []int) int {
	if len(v) < 2 {
		return 0
	}
	mid := len(v) / 2
	n := countInversions(v[:mid], buf[:mid]) + countInversions(v[mid:], buf[mid:])

	i, j, k := 0, mid, 0
	for i < mid && j < len(v) {
		if v[i] <= v[j] {
			buf[k] = v[i]
			i++
		} else {
			buf[k] = v[j]
			j++
			n += mid - i
		}
		k++
	}
	k += copy(buf[k:], v[i:mid])
	copy(buf[k:], v[j:])
	copy(v, buf[:len(v)])
	return n
}

// Progress reports the fraction of elements tagged sorted in the latest
// frame.
type Progress struct {
	name  string
	value float64
}

func NewProgress() *Progress {
	return &Progress{name: "progress"}
}

func (p *Progress) Name() string { return p.name }

func (p *Progress) Observe(f trace.Frame) {
	if len(f.Array) == 0 {
		p.value = 1
		return
	}
	sorted := 0
	for _, e := range f.Array {
		if e.State == trace.Sorted {
			sorted++
		}
	}
	p.value = float64(sorted) / float64(len(f.Array))
}

func (p *Progress) Value() float64 { return p.value }

func (p *Progress) Reset() { p.value = 0 }
