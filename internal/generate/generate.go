// Package generate builds input arrays with shapes that exercise the best,
// worst and average cases of the sorts.
package generate

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/sortviz/internal/trace"
)

type Kind string

const (
	Random       Kind = "random"
	NearlySorted Kind = "nearly-sorted"
	Reversed     Kind = "reversed"
	FewUnique    Kind = "few-unique"
	Custom       Kind = "custom"
)

// Kinds lists every generator kind in display order.
var Kinds = []Kind{Random, NearlySorted, Reversed, FewUnique, Custom}

var ErrUnknownKind = errors.New("generate: unknown kind")

const (
	DefaultMin    = 5
	DefaultMax    = 100
	DefaultSwaps  = 5
	DefaultUnique = 5
)

// Params carries the secondary parameters of every kind. Zero fields take
// their defaults.
type Params struct {
	Min    int   `json:"min,omitempty" yaml:"min,omitempty"`
	Max    int   `json:"max,omitempty" yaml:"max,omitempty"`
	Swaps  int   `json:"swaps,omitempty" yaml:"swaps,omitempty"`
	Unique int   `json:"unique,omitempty" yaml:"unique,omitempty"`
	Values []int `json:"values,omitempty" yaml:"values,omitempty"`
}

func (p Params) withDefaults() Params {
	if p.Min == 0 && p.Max == 0 {
		p.Min, p.Max = DefaultMin, DefaultMax
	}
	if p.Max < p.Min {
		p.Min, p.Max = p.Max, p.Min
	}
	if p.Swaps == 0 {
		p.Swaps = DefaultSwaps
	}
	if p.Unique <= 0 {
		p.Unique = DefaultUnique
	}
	return p
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Generator draws arrays from its own random source. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed, or with the clock when seed is
// zero.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand shares rng, so the caller must not use it concurrently.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Uniform draws each value independently from [min, max].
func (g *Generator) Uniform(n, min, max int) trace.Array {
	values := make([]int, n)
	for i := range values {
		values[i] = g.rng.Intn(max-min+1) + min
	}
	return trace.FromValues(values)
}

// NearlySorted returns i+5 for every index with swaps random transpositions
// applied.
func (g *Generator) NearlySorted(n, swaps int) trace.Array {
	values := make([]int, n)
	for i := range values {
		values[i] = i + 5
	}
	if n > 0 {
		for range swaps {
			a, b := g.rng.Intn(n), g.rng.Intn(n)
			values[a], values[b] = values[b], values[a]
		}
	}
	return trace.FromValues(values)
}

// Reversed returns the strictly descending sequence n+5-i.
func (g *Generator) Reversed(n int) trace.Array {
	values := make([]int, n)
	for i := range values {
		values[i] = n + 5 - i
	}
	return trace.FromValues(values)
}

// FewUnique draws from unique evenly spaced values in (0, 100].
func (g *Generator) FewUnique(n, unique int) trace.Array {
	pool := make([]int, unique)
	for i := range pool {
		pool[i] = (i + 1) * 100 / unique
	}
	values := make([]int, n)
	for i := range values {
		values[i] = pool[g.rng.Intn(unique)]
	}
	return trace.FromValues(values)
}

// FromLiteral wraps values as elements. An empty list falls back to a
// uniform array of length n.
func (g *Generator) FromLiteral(values []int, n int) trace.Array {
	if len(values) == 0 {
		return g.Uniform(n, DefaultMin, DefaultMax)
	}
	return trace.FromValues(values)
}

// Generate dispatches on kind. Negative n is treated as zero.
func (g *Generator) Generate(kind Kind, n int, p Params) (trace.Array, error) {
	n = max(n, 0)
	p = p.withDefaults()

	switch kind {
	case Random:
		return g.Uniform(n, p.Min, p.Max), nil
	case NearlySorted:
		return g.NearlySorted(n, p.Swaps), nil
	case Reversed:
		return g.Reversed(n), nil
	case FewUnique:
		return g.FewUnique(n, p.Unique), nil
	case Custom:
		return g.FromLiteral(p.Values, n), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// ParseLiteral extracts integers from a comma separated list. Each token
// contributes its leading integer, so "12px" yields 12; tokens without one
// are dropped.
func ParseLiteral(s string) []int {
	var values []int
	for _, tok := range strings.Split(s, ",") {
		if v, ok := leadingInt(strings.TrimSpace(tok)); ok {
			values = append(values, v)
		}
	}
	return values
}

func leadingInt(s string) (int, bool) {
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
