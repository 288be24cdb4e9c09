package trace

import "fmt"

// State is the transient visualization tag of an element.
type State string

const (
	Default   State = "default"
	Comparing State = "comparing"
	Sorted    State = "sorted"
	Pivot     State = "pivot"
	Active    State = "active"
)

func (s State) Valid() bool {
	switch s {
	case Default, Comparing, Sorted, Pivot, Active:
		return true
	}
	return false
}

type Element struct {
	Value int   `json:"value"`
	State State `json:"state"`
	// ID is the element's position in the generated input. It is carried
	// along every move so replays can follow individual bars.
	ID int `json:"id"`
}

// Array is an ordered sequence of elements.
type Array []Element

func (a Array) Clone() Array {
	c := make(Array, len(a))
	copy(c, a)
	return c
}

// Values returns the element values in order.
func (a Array) Values() []int {
	v := make([]int, len(a))
	for i, e := range a {
		v[i] = e.Value
	}
	return v
}

// IsSorted reports whether values are non-decreasing.
func (a Array) IsSorted() bool {
	for i := 1; i < len(a); i++ {
		if a[i-1].Value > a[i].Value {
			return false
		}
	}
	return true
}

// Reset returns a copy with every state set to Default.
func (a Array) Reset() Array {
	c := a.Clone()
	for i := range c {
		c[i].State = Default
	}
	return c
}

// FromValues wraps raw values as default elements, using the index as ID.
func FromValues(values []int) Array {
	a := make(Array, len(values))
	for i, v := range values {
		a[i] = Element{Value: v, State: Default, ID: i}
	}
	return a
}

type Frame struct {
	Array       Array  `json:"array"`
	Comparisons int    `json:"comparisons"`
	Swaps       int    `json:"swaps"`
	Description string `json:"description"`
}

func (f Frame) String() string {
	return fmt.Sprintf("cmp=%d swp=%d %s", f.Comparisons, f.Swaps, f.Description)
}

// Trace is the full, ordered frame list of one run.
type Trace []Frame

// Last returns the final frame. It panics on an empty trace, which no
// algorithm produces.
func (t Trace) Last() Frame {
	return t[len(t)-1]
}

func (t Trace) Comparisons() int {
	if len(t) == 0 {
		return 0
	}
	return t.Last().Comparisons
}

func (t Trace) Swaps() int {
	if len(t) == 0 {
		return 0
	}
	return t.Last().Swaps
}

// Converged reports whether the final frame is sorted and fully tagged.
func (t Trace) Converged() bool {
	if len(t) == 0 {
		return false
	}
	last := t.Last().Array
	if !last.IsSorted() {
		return false
	}
	for _, e := range last {
		if e.State != Sorted {
			return false
		}
	}
	return true
}
