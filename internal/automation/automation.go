package automation

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/generate"
)

// Scenario defines a scripted sequence of traced runs
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single run in a scenario
type ScenarioStep struct {
	Algorithm string          `yaml:"algorithm"`
	Kind      string          `yaml:"kind"`
	Size      int             `yaml:"size"`
	Seed      int64           `yaml:"seed"`
	Params    generate.Params `yaml:"params"`
	SaveAs    string          `yaml:"save_as"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenario(data)
}

func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// RunScenario executes all steps in order. Documents for steps with
// save_as are written under outDir. On error the results of the completed
// steps are returned with it.
func RunScenario(ctx context.Context, scenario *Scenario, outDir string, logger *log.Logger) ([]*experiment.Result, error) {
	if logger == nil {
		logger = log.Default()
	}
	results := make([]*experiment.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		logger.Info("running step", "step", i+1, "of", len(scenario.Steps), "algorithm", step.Algorithm)

		kind := generate.Random
		if step.Kind != "" {
			k, err := generate.ParseKind(step.Kind)
			if err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			kind = k
		}

		exp := experiment.New(experiment.Config{
			Algorithm: algorithms.ID(step.Algorithm),
			Kind:      kind,
			Size:      step.Size,
			Seed:      step.Seed,
			Params:    step.Params,
		})
		if err := exp.Setup(); err != nil {
			return results, fmt.Errorf("step %d setup: %w", i+1, err)
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		logger.Debug("step finished", "step", i+1, "frames", len(result.Trace), "converged", result.Converged)

		if step.SaveAs != "" {
			path := filepath.Join(outDir, step.SaveAs)
			if err := export.ExportJSON(path, result); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			logger.Info("saved trace", "path", path)
		}

		results = append(results, result)
	}

	return results, nil
}

// TrialConfig repeats one algorithm over freshly generated inputs.
type TrialConfig struct {
	Algorithm algorithms.ID
	Kind      generate.Kind
	Size      int
	NumTrials int
	Seed      int64
}

// TrialResult holds the outcome of one trial
type TrialResult struct {
	TrialID     int
	Comparisons int
	Swaps       int
	Frames      int
	Converged   bool
}

// RunTrials executes NumTrials runs with seeds Seed, Seed+1, ...
func RunTrials(ctx context.Context, cfg TrialConfig, logger *log.Logger) ([]TrialResult, error) {
	if logger == nil {
		logger = log.Default()
	}
	results := make([]TrialResult, 0, cfg.NumTrials)

	for trial := 0; trial < cfg.NumTrials; trial++ {
		exp := experiment.New(experiment.Config{
			Algorithm: cfg.Algorithm,
			Kind:      cfg.Kind,
			Size:      cfg.Size,
			Seed:      cfg.Seed + int64(trial) + 1,
		})
		if err := exp.Setup(); err != nil {
			return nil, err
		}

		result, err := exp.Run(ctx)
		if err != nil {
			return nil, err
		}

		results = append(results, TrialResult{
			TrialID:     trial,
			Comparisons: result.Trace.Comparisons(),
			Swaps:       result.Trace.Swaps(),
			Frames:      len(result.Trace),
			Converged:   result.Converged,
		})

		if (trial+1)%10 == 0 {
			logger.Info("trials complete", "done", trial+1, "total", cfg.NumTrials)
		}
	}

	return results, nil
}

// TrialStats summarizes comparison counts and convergence over trials.
type TrialStats struct {
	Trials          int
	Converged       int
	MinComparisons  int
	MaxComparisons  int
	MeanComparisons float64
	MeanSwaps       float64
}

func Stats(results []TrialResult) TrialStats {
	if len(results) == 0 {
		return TrialStats{}
	}
	s := TrialStats{
		Trials:         len(results),
		MinComparisons: math.MaxInt,
	}
	var cmp, swp int
	for _, r := range results {
		if r.Converged {
			s.Converged++
		}
		s.MinComparisons = min(s.MinComparisons, r.Comparisons)
		s.MaxComparisons = max(s.MaxComparisons, r.Comparisons)
		cmp += r.Comparisons
		swp += r.Swaps
	}
	s.MeanComparisons = float64(cmp) / float64(len(results))
	s.MeanSwaps = float64(swp) / float64(len(results))
	return s
}
