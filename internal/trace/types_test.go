package trace

import (
	"errors"
	"testing"
)

func TestArray_IsSorted(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		sorted bool
	}{
		{"empty", nil, true},
		{"single", []int{7}, true},
		{"ascending", []int{1, 2, 3}, true},
		{"duplicates", []int{1, 1, 2, 2}, true},
		{"descending", []int{3, 2, 1}, false},
		{"one inversion", []int{1, 3, 2, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromValues(tt.values).IsSorted(); got != tt.sorted {
				t.Errorf("IsSorted() = %v, want %v", got, tt.sorted)
			}
		})
	}
}

func TestArray_CloneIndependent(t *testing.T) {
	a := FromValues([]int{1, 2, 3})
	c := a.Clone()
	c[0].Value = 99
	c[1].State = Sorted

	if a[0].Value == 99 || a[1].State == Sorted {
		t.Error("Clone did not create independent copy")
	}
}

func TestArray_Reset(t *testing.T) {
	a := Array{{Value: 1, State: Sorted, ID: 4}, {Value: 2, State: Pivot, ID: 5}}
	r := a.Reset()

	for i, e := range r {
		if e.State != Default {
			t.Errorf("element %d: state %s, want default", i, e.State)
		}
		if e.ID != a[i].ID {
			t.Errorf("element %d: id %d, want %d", i, e.ID, a[i].ID)
		}
	}
	if a[0].State != Sorted {
		t.Error("Reset mutated its receiver")
	}
}

func TestRecorder_EmitCopies(t *testing.T) {
	r := NewRecorder(4)
	arr := FromValues([]int{3, 1})

	r.Emit(arr, "first")
	r.Swap(arr, 0, 1)
	arr[0].State = Comparing
	r.Emit(arr, "second")

	tr := r.Trace()
	if len(tr) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(tr))
	}
	if tr[0].Array[0].Value != 3 || tr[0].Array[0].State != Default {
		t.Errorf("first frame was mutated: %+v", tr[0].Array)
	}
	if tr[0].Swaps != 0 || tr[1].Swaps != 1 {
		t.Errorf("unexpected swap counters %d, %d", tr[0].Swaps, tr[1].Swaps)
	}
}

func TestRecorder_Compare(t *testing.T) {
	r := NewRecorder(0)
	a, b := Element{Value: 5}, Element{Value: 3}

	if !r.Compare(a, b) {
		t.Error("expected 5 > 3")
	}
	if r.Compare(b, a) {
		t.Error("expected 3 > 5 to be false")
	}
	if r.Comparisons != 2 {
		t.Errorf("expected 2 comparisons, got %d", r.Comparisons)
	}
}

func TestTrivial(t *testing.T) {
	for _, values := range [][]int{nil, {42}} {
		tr := Trivial(FromValues(values))
		if len(tr) != 1 {
			t.Fatalf("expected 1 frame, got %d", len(tr))
		}
		if tr[0].Comparisons != 0 || tr[0].Swaps != 0 {
			t.Errorf("expected zero counters, got %s", tr[0])
		}
		if !tr.Converged() {
			t.Error("trivial trace should be converged")
		}
	}
}

func TestValidate(t *testing.T) {
	input := FromValues([]int{2, 1})
	sorted := Array{{Value: 1, State: Sorted}, {Value: 2, State: Sorted}}

	good := Trace{
		{Array: input.Clone(), Comparisons: 1},
		{Array: sorted, Comparisons: 1, Swaps: 1},
	}
	if err := Validate(input, good, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		tr    Trace
		want  error
		force bool
	}{
		{"empty", Trace{}, ErrEmptyTrace, true},
		{"length", Trace{{Array: Array{{Value: 1, State: Sorted}}}}, ErrLengthChanged, true},
		{"counter", Trace{{Array: input, Swaps: 2}, {Array: sorted, Swaps: 1}}, ErrCounterDecreased, true},
		{"unsorted", Trace{{Array: input}}, ErrNotSorted, true},
		{"multiset", Trace{{Array: Array{{Value: 1, State: Sorted}, {Value: 1, State: Sorted}}}}, ErrMultisetChanged, true},
		{"state", Trace{{Array: Array{{Value: 1, State: "bogus"}, {Value: 2}}}}, ErrInvalidState, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(input, tt.tr, tt.force)
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}

	if err := Validate(input, Trace{{Array: input}}, false); err != nil {
		t.Errorf("unsorted final frame should pass when sorting is not required: %v", err)
	}
}
