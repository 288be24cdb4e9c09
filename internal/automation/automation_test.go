package automation

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/generate"
)

const scenarioYAML = `
name: demo
description: classroom walk-through
steps:
  - algorithm: bubble
    kind: custom
    params:
      values: [5, 3, 8, 1]
    save_as: bubble.json
  - algorithm: merge
    kind: reversed
    size: 10
`

func quiet() *log.Logger { return log.New(io.Discard) }

func TestParseScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if sc.Name != "demo" || len(sc.Steps) != 2 {
		t.Fatalf("unexpected scenario %+v", sc)
	}
	if got := sc.Steps[0].Params.Values; len(got) != 4 || got[0] != 5 {
		t.Errorf("unexpected values %v", got)
	}
}

func TestParseScenario_Empty(t *testing.T) {
	if _, err := ParseScenario([]byte("name: nothing\n")); err == nil {
		t.Error("expected error for scenario without steps")
	}
}

func TestRunScenario(t *testing.T) {
	sc, err := ParseScenario([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()

	results, err := RunScenario(context.Background(), sc, dir, quiet())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Trace.Comparisons() != 6 {
		t.Errorf("expected 6 comparisons for the classroom input, got %d", results[0].Trace.Comparisons())
	}

	f, err := os.Open(filepath.Join(dir, "bubble.json"))
	if err != nil {
		t.Fatalf("saved trace missing: %v", err)
	}
	defer f.Close()
	doc, err := export.ReadJSON(f)
	if err != nil {
		t.Fatalf("saved trace unreadable: %v", err)
	}
	if doc.Algorithm != algorithms.BubbleID {
		t.Errorf("expected bubble, got %s", doc.Algorithm)
	}
}

func TestRunScenario_UnknownAlgorithm(t *testing.T) {
	sc := &Scenario{Steps: []ScenarioStep{
		{Algorithm: "heap", Size: 4},
		{Algorithm: "stooge", Size: 4},
	}}
	results, err := RunScenario(context.Background(), sc, t.TempDir(), quiet())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(results) != 1 {
		t.Errorf("expected the completed step to be returned, got %d", len(results))
	}
}

func TestRunTrials(t *testing.T) {
	results, err := RunTrials(context.Background(), TrialConfig{
		Algorithm: algorithms.QuickID,
		Kind:      generate.Random,
		Size:      12,
		NumTrials: 5,
		Seed:      10,
	}, quiet())
	if err != nil {
		t.Fatalf("trials failed: %v", err)
	}

	s := Stats(results)
	if s.Trials != 5 || s.Converged != 5 {
		t.Errorf("unexpected stats %+v", s)
	}
	if s.MinComparisons > s.MaxComparisons || s.MeanComparisons < float64(s.MinComparisons) {
		t.Errorf("inconsistent stats %+v", s)
	}
}

func TestStats_Empty(t *testing.T) {
	if s := Stats(nil); s.Trials != 0 {
		t.Errorf("expected zero stats, got %+v", s)
	}
}
