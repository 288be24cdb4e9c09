package algorithms

import (
	"math/rand"
	"slices"

	"github.com/san-kum/sortviz/internal/trace"
)

// Func produces the trace of sorting input. It never mutates input.
type Func func(input trace.Array) trace.Trace

type ID string

const (
	BubbleID    ID = "bubble"
	SelectionID ID = "selection"
	InsertionID ID = "insertion"
	QuickID     ID = "quick"
	MergeID     ID = "merge"
	HeapID      ID = "heap"
	ShellID     ID = "shell"
	CountingID  ID = "counting"
	RadixID     ID = "radix"
	BucketID    ID = "bucket"
	CocktailID  ID = "cocktail"
	CombID      ID = "comb"
	CycleID     ID = "cycle"
	GnomeID     ID = "gnome"
	TimID       ID = "tim"
	BogoID      ID = "bogo"
)

// DefaultID is the fallback for callers that recover from an unknown id.
const DefaultID = BubbleID

type Category string

const (
	Comparison    Category = "comparison"
	NonComparison Category = "non-comparison"
)

// Complexity holds asymptotic notation strings for display.
type Complexity struct {
	Best    string `json:"best" yaml:"best"`
	Average string `json:"average" yaml:"average"`
	Worst   string `json:"worst" yaml:"worst"`
}

// Descriptor is the static catalog record of one algorithm.
type Descriptor struct {
	ID          ID         `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description" yaml:"description"`
	Time        Complexity `json:"timeComplexity" yaml:"time"`
	Space       string     `json:"spaceComplexity" yaml:"space"`
	Stable      bool       `json:"stable" yaml:"stable"`
	Category    Category   `json:"type" yaml:"category"`
	// NonNegative marks sorts that index tables by value.
	NonNegative bool `json:"nonNegative" yaml:"non_negative"`

	Sort Func `json:"-" yaml:"-"`
}

var catalog = []Descriptor{
	{
		ID:          BubbleID,
		Name:        "Bubble Sort",
		Description: "A simple comparison-based algorithm that repeatedly steps through the list, compares adjacent elements, and swaps them if they are in the wrong order.",
		Time:        Complexity{"O(n)", "O(n²)", "O(n²)"},
		Space:       "O(1)",
		Stable:      true,
		Category:    Comparison,
		Sort:        Bubble,
	},
	{
		ID:          SelectionID,
		Name:        "Selection Sort",
		Description: "A simple comparison-based algorithm that divides the input into a sorted and an unsorted region, and repeatedly moves the smallest element of the unsorted region to the end of the sorted region.",
		Time:        Complexity{"O(n²)", "O(n²)", "O(n²)"},
		Space:       "O(1)",
		Category:    Comparison,
		Sort:        Selection,
	},
	{
		ID:          InsertionID,
		Name:        "Insertion Sort",
		Description: "A simple comparison-based algorithm that builds the sorted array one item at a time, inserting each element into its correct position in the sorted prefix.",
		Time:        Complexity{"O(n)", "O(n²)", "O(n²)"},
		Space:       "O(1)",
		Stable:      true,
		Category:    Comparison,
		Sort:        Insertion,
	},
	{
		ID:          QuickID,
		Name:        "Quick Sort",
		Description: "An efficient divide-and-conquer algorithm that selects a pivot element and partitions the array around it.",
		Time:        Complexity{"O(n log n)", "O(n log n)", "O(n²)"},
		Space:       "O(log n)",
		Category:    Comparison,
		Sort:        Quick,
	},
	{
		ID:          MergeID,
		Name:        "Merge Sort",
		Description: "An efficient divide-and-conquer algorithm that splits the list into single-element sublists and repeatedly merges them into larger sorted sublists.",
		Time:        Complexity{"O(n log n)", "O(n log n)", "O(n log n)"},
		Space:       "O(n)",
		Stable:      true,
		Category:    Comparison,
		Sort:        Merge,
	},
	{
		ID:          HeapID,
		Name:        "Heap Sort",
		Description: "A comparison-based algorithm that builds a binary max-heap and sorts by repeatedly extracting the largest element.",
		Time:        Complexity{"O(n log n)", "O(n log n)", "O(n log n)"},
		Space:       "O(1)",
		Category:    Comparison,
		Sort:        Heap,
	},
	{
		ID:          ShellID,
		Name:        "Shell Sort",
		Description: "An in-place generalization of insertion sort that first sorts elements far apart and progressively shrinks the gap between compared elements.",
		Time:        Complexity{"O(n log n)", "O(n log n)", "O(n²)"},
		Space:       "O(1)",
		Category:    Comparison,
		Sort:        Shell,
	},
	{
		ID:          CountingID,
		Name:        "Counting Sort",
		Description: "A non-comparison sort that counts the occurrences of each key and uses prefix sums to compute each key's position in the output.",
		Time:        Complexity{"O(n+k)", "O(n+k)", "O(n+k)"},
		Space:       "O(n+k)",
		Stable:      true,
		Category:    NonComparison,
		NonNegative: true,
		Sort:        Counting,
	},
	{
		ID:          RadixID,
		Name:        "Radix Sort",
		Description: "A non-comparison sort that orders integer keys digit by digit, starting from the least significant digit.",
		Time:        Complexity{"O(nk)", "O(nk)", "O(nk)"},
		Space:       "O(n+k)",
		Stable:      true,
		Category:    NonComparison,
		NonNegative: true,
		Sort:        Radix,
	},
	{
		ID:          BucketID,
		Name:        "Bucket Sort",
		Description: "A distribution sort that scatters elements into value-range buckets, sorts each bucket and concatenates the results.",
		Time:        Complexity{"O(n+k)", "O(n+k)", "O(n²)"},
		Space:       "O(n+k)",
		Stable:      true,
		Category:    NonComparison,
		Sort:        Bucket,
	},
	{
		ID:          CocktailID,
		Name:        "Cocktail Shaker Sort",
		Description: "A bidirectional variant of bubble sort that alternates forward and backward passes, moving small values near the end quickly.",
		Time:        Complexity{"O(n)", "O(n²)", "O(n²)"},
		Space:       "O(1)",
		Stable:      true,
		Category:    Comparison,
		Sort:        Cocktail,
	},
	{
		ID:          CombID,
		Name:        "Comb Sort",
		Description: "An improvement over bubble sort that compares elements a shrinking gap apart to eliminate small values near the end of the list.",
		Time:        Complexity{"O(n log n)", "O(n²/2^p)", "O(n²)"},
		Space:       "O(1)",
		Category:    Comparison,
		Sort:        Comb,
	},
	{
		ID:          CycleID,
		Name:        "Cycle Sort",
		Description: "An in-place sort that minimizes memory writes by rotating each cycle of the permutation into place.",
		Time:        Complexity{"O(n²)", "O(n²)", "O(n²)"},
		Space:       "O(1)",
		Category:    Comparison,
		Sort:        Cycle,
	},
	{
		ID:          GnomeID,
		Name:        "Gnome Sort",
		Description: "A simple sort similar to insertion sort that moves each element into place through a series of adjacent swaps.",
		Time:        Complexity{"O(n)", "O(n²)", "O(n²)"},
		Space:       "O(1)",
		Stable:      true,
		Category:    Comparison,
		Sort:        Gnome,
	},
	{
		ID:          TimID,
		Name:        "Tim Sort",
		Description: "A hybrid stable sort that insertion-sorts small runs and merges them bottom-up.",
		Time:        Complexity{"O(n)", "O(n log n)", "O(n log n)"},
		Space:       "O(n)",
		Stable:      true,
		Category:    Comparison,
		Sort:        Tim,
	},
	{
		ID:          BogoID,
		Name:        "Bogo Sort",
		Description: "A deliberately inefficient sort that shuffles the input at random until it happens to be sorted. This one gives up after a fixed number of shuffles.",
		Time:        Complexity{"O(n)", "O(n × n!)", "O(∞)"},
		Space:       "O(1)",
		Category:    Comparison,
		Sort:        Bogo,
	},
}

var byID = func() map[ID]int {
	m := make(map[ID]int, len(catalog))
	for i, d := range catalog {
		m[d.ID] = i
	}
	return m
}()

// Catalog returns every descriptor in canonical order. The slice is a copy.
func Catalog() []Descriptor {
	return slices.Clone(catalog)
}

// IDs returns the identifiers in canonical order.
func IDs() []ID {
	ids := make([]ID, len(catalog))
	for i, d := range catalog {
		ids[i] = d.ID
	}
	return ids
}

func Lookup(id ID) (Descriptor, error) {
	i, ok := byID[id]
	if !ok {
		return Descriptor{}, &TraceError{Algorithm: id, Wrapped: ErrUnknownAlgorithm}
	}
	return catalog[i], nil
}

// Trace runs the algorithm registered under id on input.
func Trace(id ID, input trace.Array) (trace.Trace, error) {
	return TraceSeeded(id, input, nil)
}

// TraceSeeded is Trace with an explicit random source for the randomized
// sorts, making their traces reproducible. A nil rng uses the clock.
func TraceSeeded(id ID, input trace.Array, rng *rand.Rand) (trace.Trace, error) {
	d, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return d.Trace(input, rng)
}

// Trace checks preconditions and runs d on input.
func (d Descriptor) Trace(input trace.Array, rng *rand.Rand) (trace.Trace, error) {
	if d.NonNegative {
		for _, e := range input {
			if e.Value < 0 {
				return nil, &TraceError{Algorithm: d.ID, Wrapped: ErrNegativeKey}
			}
		}
	}
	if d.ID == BogoID && rng != nil {
		return NewBogo(rng, DefaultBogoAttempts)(input), nil
	}
	return d.Sort(input), nil
}

// Resolve returns the descriptor for id, or the default descriptor and the
// lookup error when id is unknown.
func Resolve(id ID) (Descriptor, error) {
	d, err := Lookup(id)
	if err != nil {
		fallback, _ := Lookup(DefaultID)
		return fallback, err
	}
	return d, nil
}
