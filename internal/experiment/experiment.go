package experiment

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/generate"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/trace"
)

type Config struct {
	Algorithm algorithms.ID
	Kind      generate.Kind
	Size      int
	// Seed drives both the generator and randomized sorts. Zero uses the
	// clock.
	Seed   int64
	Params generate.Params
}

type Result struct {
	Algorithm algorithms.ID      `json:"algorithm"`
	Input     trace.Array        `json:"input"`
	Trace     trace.Trace        `json:"frames"`
	Metrics   map[string]float64 `json:"metrics"`
	Converged bool               `json:"converged"`
}

type Experiment struct {
	cfg     Config
	desc    algorithms.Descriptor
	gen     *generate.Generator
	metrics []metrics.Metric
	ready   bool
}

func New(cfg Config) *Experiment {
	return &Experiment{
		cfg: cfg,
		gen: generate.New(cfg.Seed),
	}
}

// Setup resolves the algorithm and attaches metrics. Standard metrics are
// used when none are given.
func (e *Experiment) Setup(ms ...metrics.Metric) error {
	d, err := algorithms.Lookup(e.cfg.Algorithm)
	if err != nil {
		return err
	}
	if len(ms) == 0 {
		ms = metrics.Standard()
	}
	e.desc = d
	e.metrics = ms
	e.ready = true
	return nil
}

// Input generates the configured input array.
func (e *Experiment) Input() (trace.Array, error) {
	return e.gen.Generate(e.cfg.Kind, e.cfg.Size, e.cfg.Params)
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if !e.ready {
		return nil, fmt.Errorf("experiment not setup")
	}
	input, err := e.Input()
	if err != nil {
		return nil, err
	}
	return e.RunOn(ctx, input)
}

// RunOn traces a caller-supplied input instead of generating one.
func (e *Experiment) RunOn(ctx context.Context, input trace.Array) (*Result, error) {
	if !e.ready {
		return nil, fmt.Errorf("experiment not setup")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := e.desc.Trace(input, seededRand(e.cfg.Seed))
	if err != nil {
		return nil, err
	}

	return &Result{
		Algorithm: e.desc.ID,
		Input:     input,
		Trace:     t,
		Metrics:   metrics.Collect(t, e.metrics...),
		Converged: t.Converged(),
	}, nil
}

func seededRand(seed int64) *rand.Rand {
	if seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(seed))
}
