package experiment

import (
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/generate"
	"github.com/san-kum/sortviz/internal/trace"
)

func TestExperimentRun(t *testing.T) {
	e := New(Config{Algorithm: algorithms.HeapID, Kind: generate.Reversed, Size: 12, Seed: 3})
	if err := e.Setup(); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	r, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !r.Converged {
		t.Error("expected converged trace")
	}
	if r.Metrics["frames"] != float64(len(r.Trace)) {
		t.Errorf("frames metric %v, trace length %d", r.Metrics["frames"], len(r.Trace))
	}
	if r.Metrics["comparisons"] != float64(r.Trace.Comparisons()) {
		t.Errorf("comparisons metric %v, trace %d", r.Metrics["comparisons"], r.Trace.Comparisons())
	}
}

func TestExperimentNotSetup(t *testing.T) {
	e := New(Config{Algorithm: algorithms.BubbleID})
	if _, err := e.Run(context.Background()); err == nil {
		t.Error("expected error before setup")
	}
}

func TestExperimentUnknownAlgorithm(t *testing.T) {
	e := New(Config{Algorithm: "sleep"})
	if err := e.Setup(); !errors.Is(err, algorithms.ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestExperimentCancelled(t *testing.T) {
	e := New(Config{Algorithm: algorithms.BubbleID, Kind: generate.Random, Size: 5, Seed: 1})
	if err := e.Setup(); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := e.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestCompare(t *testing.T) {
	input := trace.FromValues([]int{9, 4, 7, 1, 8, 2})
	ids := []algorithms.ID{algorithms.BubbleID, algorithms.MergeID, algorithms.CountingID}

	results, err := Compare(context.Background(), ids, input, 1)
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	for i, r := range results {
		if r.Algorithm != ids[i] {
			t.Errorf("result %d: expected %s, got %s", i, ids[i], r.Algorithm)
		}
		if got := r.Trace.Last().Array.Values(); got[0] != 1 || got[5] != 9 {
			t.Errorf("%s: unsorted result %v", r.Algorithm, got)
		}
	}
}

func TestCompare_PropagatesErrors(t *testing.T) {
	input := trace.FromValues([]int{3, -2, 1})
	_, err := Compare(context.Background(), []algorithms.ID{algorithms.BubbleID, algorithms.RadixID}, input, 1)
	if !errors.Is(err, algorithms.ErrNegativeKey) {
		t.Errorf("expected ErrNegativeKey, got %v", err)
	}
}

func TestSweep(t *testing.T) {
	points, err := Sweep(context.Background(), algorithms.InsertionID, generate.Reversed, []int{4, 8, 16}, 1, 2)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for i, p := range points {
		n := p.Size
		if p.Comparisons != n*(n-1)/2 {
			t.Errorf("size %d: expected %d comparisons on reversed input, got %d", n, n*(n-1)/2, p.Comparisons)
		}
		if i > 0 && p.Frames <= points[i-1].Frames {
			t.Errorf("frames should grow with size: %+v", points)
		}
	}
}

func TestSweepWorkers(t *testing.T) {
	tests := []struct {
		workers int
		want    int
	}{
		{0, runtime.NumCPU()},
		{-3, runtime.NumCPU()},
		{1, 1},
		{4, 4},
	}
	for _, tt := range tests {
		if got := sweepWorkers(tt.workers); got != tt.want {
			t.Errorf("sweepWorkers(%d) = %d, want %d", tt.workers, got, tt.want)
		}
	}
}

func TestSweep_DefaultWorkers(t *testing.T) {
	points, err := Sweep(context.Background(), algorithms.BubbleID, generate.Random, []int{2, 4, 8, 16, 32}, 7, 0)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i, p := range points {
		if p.Size == 0 || p.Frames == 0 {
			t.Errorf("point %d not measured: %+v", i, p)
		}
	}
}
