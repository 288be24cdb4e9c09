package algorithms

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/sortviz/internal/trace"
)

var fixtures = map[string][]int{
	"random":    {42, 7, 93, 15, 61, 8, 77, 30, 54, 22, 99, 5, 68, 41, 13},
	"sorted":    {1, 2, 3, 4, 5, 6, 7, 8},
	"reversed":  {9, 8, 7, 6, 5, 4, 3, 2, 1},
	"equal":     {7, 7, 7, 7, 7},
	"two":       {2, 1},
	"zeros":     {0, 3, 0, 1},
	"duplicate": {5, 1, 5, 3, 1, 5, 2, 3},
	"wide":      {1000, 3, 250, 47, 999, 0, 12},
}

func TestAlgorithms_SortAndConserve(t *testing.T) {
	for _, d := range Catalog() {
		if d.ID == BogoID {
			continue
		}
		for name, values := range fixtures {
			t.Run(string(d.ID)+"/"+name, func(t *testing.T) {
				input := trace.FromValues(values)
				tr, err := d.Trace(input, nil)
				if err != nil {
					t.Fatalf("trace failed: %v", err)
				}
				if err := trace.Validate(input, tr, true); err != nil {
					t.Fatalf("invalid trace: %v", err)
				}
				if !tr.Converged() {
					t.Errorf("final frame not fully sorted: %v", tr.Last().Array)
				}
				if tr.Last().Description != trace.CompleteDescription {
					t.Errorf("final description %q", tr.Last().Description)
				}
			})
		}
	}
}

func TestAlgorithms_InputUntouched(t *testing.T) {
	for _, d := range Catalog() {
		input := trace.FromValues([]int{4, 2, 3, 1})
		input[0].State = trace.Pivot
		_, _ = d.Trace(input, rand.New(rand.NewSource(1)))

		if input[0].Value != 4 || input[0].State != trace.Pivot || input[3].Value != 1 {
			t.Errorf("%s mutated its input: %v", d.ID, input)
		}
	}
}

func TestAlgorithms_Trivial(t *testing.T) {
	for _, d := range Catalog() {
		for _, values := range [][]int{nil, {17}} {
			tr, err := d.Trace(trace.FromValues(values), nil)
			if err != nil {
				t.Fatalf("%s: %v", d.ID, err)
			}
			if len(tr) != 1 {
				t.Errorf("%s on %v: expected 1 frame, got %d", d.ID, values, len(tr))
				continue
			}
			if tr[0].Comparisons != 0 || tr[0].Swaps != 0 {
				t.Errorf("%s on %v: expected zero counters, got %s", d.ID, values, tr[0])
			}
		}
	}
}

func TestAlgorithms_Stability(t *testing.T) {
	g := NewWithT(t)
	values := []int{3, 1, 3, 2, 1, 3, 2, 2, 1, 3, 0, 1}

	for _, d := range Catalog() {
		if !d.Stable {
			continue
		}
		tr, err := d.Trace(trace.FromValues(values), nil)
		g.Expect(err).NotTo(HaveOccurred())

		final := tr.Last().Array
		for i := 1; i < len(final); i++ {
			if final[i-1].Value == final[i].Value {
				g.Expect(final[i-1].ID).To(BeNumerically("<", final[i].ID),
					"%s reordered equal values at %d", d.ID, i)
			}
		}
	}
}

func TestAlgorithms_ResortIsCheap(t *testing.T) {
	g := NewWithT(t)
	values := fixtures["random"]

	for _, id := range []ID{BubbleID, InsertionID, CocktailID, GnomeID} {
		first, err := Trace(id, trace.FromValues(values))
		g.Expect(err).NotTo(HaveOccurred())

		again, err := Trace(id, first.Last().Array.Reset())
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(again.Swaps()).To(BeZero(), "%s swapped sorted input", id)
		g.Expect(again.Comparisons()).To(BeNumerically("<=", len(values)), string(id))
	}
}

func TestBubble_Scenario(t *testing.T) {
	g := NewWithT(t)
	tr := Bubble(trace.FromValues([]int{5, 3, 8, 1}))

	g.Expect(tr.Last().Array.Values()).To(Equal([]int{1, 3, 5, 8}))
	g.Expect(tr.Comparisons()).To(Equal(6))

	var compared [][2]int
	for _, f := range tr {
		var pair []int
		for i, e := range f.Array {
			if e.State == trace.Comparing {
				pair = append(pair, i)
			}
		}
		if len(pair) == 2 && (len(compared) == 0 || compared[len(compared)-1] != [2]int{pair[0], pair[1]}) {
			compared = append(compared, [2]int{pair[0], pair[1]})
		}
	}
	g.Expect(len(compared)).To(BeNumerically(">=", 3))
	g.Expect(compared[:3]).To(Equal([][2]int{{0, 1}, {1, 2}, {2, 3}}))
}

func TestCounting_Scenario(t *testing.T) {
	g := NewWithT(t)
	tr := Counting(trace.FromValues([]int{4, 4, 1, 2}))

	final := tr.Last().Array
	g.Expect(final.Values()).To(Equal([]int{1, 2, 4, 4}))
	g.Expect(tr.Swaps()).To(Equal(4))
	g.Expect(final[2].ID).To(Equal(0))
	g.Expect(final[3].ID).To(Equal(1))
}

func TestQuick_Trivial(t *testing.T) {
	for _, values := range [][]int{{1}, {}} {
		tr := Quick(trace.FromValues(values))
		if len(tr) != 1 || !tr.Converged() {
			t.Errorf("quick on %v: unexpected trace %v", values, tr)
		}
	}
}

func TestCycle_Duplicates(t *testing.T) {
	input := trace.FromValues([]int{2, 2, 2, 1, 1, 3, 3, 2})
	tr := Cycle(input)
	if err := trace.Validate(input, tr, true); err != nil {
		t.Fatalf("invalid trace: %v", err)
	}
}

// firstRevisit returns the first frame in which a slot tagged sorted in
// the previous frame carries another state, or -1.
func firstRevisit(tr trace.Trace) int {
	for f := 1; f < len(tr); f++ {
		for i, e := range tr[f].Array {
			if tr[f-1].Array[i].State == trace.Sorted && e.State != trace.Sorted {
				return f
			}
		}
	}
	return -1
}

func TestCycle_SortedIsTerminal(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	inputs := make([][]int, 0, len(fixtures)+50)
	for _, values := range fixtures {
		inputs = append(inputs, values)
	}
	for range 50 {
		values := make([]int, 2+rng.Intn(14))
		for i := range values {
			values[i] = rng.Intn(8)
		}
		inputs = append(inputs, values)
	}

	for _, values := range inputs {
		input := trace.FromValues(values)
		tr := Cycle(input)
		if err := trace.Validate(input, tr, true); err != nil {
			t.Fatalf("%v: invalid trace: %v", values, err)
		}
		if f := firstRevisit(tr); f >= 0 {
			t.Errorf("%v: sorted slot retagged in frame %d (%q)", values, f, tr[f].Description)
		}
	}
}

func TestTim_PartialRuns(t *testing.T) {
	for _, n := range []int{31, 32, 33, 64, 65, 100} {
		values := make([]int, n)
		for i := range values {
			values[i] = (i * 37) % 23
		}
		input := trace.FromValues(values)
		if err := trace.Validate(input, Tim(input), true); err != nil {
			t.Errorf("n=%d: %v", n, err)
		}
	}
}

func TestBucket_SingleValueRange(t *testing.T) {
	input := trace.FromValues([]int{5, 5, 5, 5, 5, 5, 5, 5, 5})
	tr := Bucket(input)
	if err := trace.Validate(input, tr, true); err != nil {
		t.Fatalf("invalid trace: %v", err)
	}
	if tr.Swaps() != len(input) {
		t.Errorf("expected one swap per placement, got %d", tr.Swaps())
	}
}

func TestBucket_ExtremeRange(t *testing.T) {
	for _, values := range [][]int{
		{-1 << 62, 1 << 62, 0},
		{math.MaxInt, math.MinInt},
		{math.MaxInt, math.MinInt, 0, -1, 1},
		{math.MinInt, math.MinInt + 1, math.MaxInt, math.MaxInt - 1},
	} {
		input := trace.FromValues(values)
		tr, err := Trace(BucketID, input)
		if err != nil {
			t.Fatalf("%v: %v", values, err)
		}
		if err := trace.Validate(input, tr, true); err != nil {
			t.Errorf("%v: invalid trace: %v", values, err)
		}
	}
}

func TestBogo_GivesUp(t *testing.T) {
	g := NewWithT(t)
	input := trace.FromValues([]int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1})

	tr := NewBogo(rand.New(rand.NewSource(7)), DefaultBogoAttempts)(input)

	g.Expect(tr.Last().Description).To(Equal(GiveUpDescription))
	g.Expect(tr.Last().Array.IsSorted()).To(BeFalse())
	g.Expect(trace.Validate(input, tr, false)).To(Succeed())

	shuffles := 0
	for _, f := range tr {
		if f.Description == "Completed random shuffle (attempt 1)" {
			shuffles++
		}
	}
	g.Expect(shuffles).To(Equal(1))
}

func TestBogo_SortedInput(t *testing.T) {
	g := NewWithT(t)
	tr := NewBogo(rand.New(rand.NewSource(1)), DefaultBogoAttempts)(trace.FromValues([]int{1, 2, 3}))

	g.Expect(tr.Converged()).To(BeTrue())
	g.Expect(tr.Comparisons()).To(Equal(2))
	g.Expect(tr.Swaps()).To(BeZero())
}

func TestBogo_Deterministic(t *testing.T) {
	g := NewWithT(t)
	input := trace.FromValues([]int{3, 1, 2, 5, 4})

	a, err := TraceSeeded(BogoID, input, rand.New(rand.NewSource(99)))
	g.Expect(err).NotTo(HaveOccurred())
	b, err := TraceSeeded(BogoID, input, rand.New(rand.NewSource(99)))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(a).To(Equal(b))
}

func TestTrace_Errors(t *testing.T) {
	_, err := Trace("shuffle", trace.FromValues([]int{1}))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
	var te *TraceError
	if !errors.As(err, &te) || te.Algorithm != "shuffle" {
		t.Errorf("expected TraceError for shuffle, got %v", err)
	}

	for _, id := range []ID{CountingID, RadixID} {
		_, err := Trace(id, trace.FromValues([]int{3, -1, 2}))
		if !errors.Is(err, ErrNegativeKey) {
			t.Errorf("%s: expected ErrNegativeKey, got %v", id, err)
		}
	}

	input := trace.FromValues([]int{3, -1, 2})
	for _, id := range []ID{QuickID, BucketID, MergeID, CycleID} {
		tr, err := Trace(id, input)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		if err := trace.Validate(input, tr, true); err != nil {
			t.Errorf("%s with negatives: %v", id, err)
		}
	}
}

func TestResolve_FallsBack(t *testing.T) {
	d, err := Resolve("nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if d.ID != DefaultID {
		t.Errorf("expected fallback %s, got %s", DefaultID, d.ID)
	}
}

func TestCatalog_Order(t *testing.T) {
	g := NewWithT(t)
	want := []ID{
		BubbleID, SelectionID, InsertionID, QuickID, MergeID, HeapID, ShellID, CountingID,
		RadixID, BucketID, CocktailID, CombID, CycleID, GnomeID, TimID, BogoID,
	}
	g.Expect(IDs()).To(Equal(want))

	stable := 0
	for _, d := range Catalog() {
		g.Expect(d.Sort).NotTo(BeNil())
		g.Expect(d.Name).NotTo(BeEmpty())
		if d.Stable {
			stable++
		}
	}
	g.Expect(stable).To(Equal(9))
}

func BenchmarkQuick(b *testing.B) {
	input := trace.FromValues(fixtures["random"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Quick(input)
	}
}

func BenchmarkMerge(b *testing.B) {
	input := trace.FromValues(fixtures["random"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Merge(input)
	}
}
