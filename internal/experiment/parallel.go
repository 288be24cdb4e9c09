package experiment

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/generate"
	"github.com/san-kum/sortviz/internal/trace"
)

// Compare traces every algorithm on the same input concurrently. Results
// keep the order of ids.
func Compare(ctx context.Context, ids []algorithms.ID, input trace.Array, seed int64) ([]*Result, error) {
	results := make([]*Result, len(ids))
	g, ctx := errgroup.WithContext(ctx)

	for i, id := range ids {
		g.Go(func() error {
			e := New(Config{Algorithm: id, Seed: seed})
			if err := e.Setup(); err != nil {
				return err
			}
			r, err := e.RunOn(ctx, input)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Point is one measurement of a size sweep.
type Point struct {
	Size        int `json:"size"`
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
	Frames      int `json:"frames"`
}

// DefaultSizes doubles from 8 to 128.
var DefaultSizes = []int{8, 16, 32, 64, 128}

// Sweep measures id across sizes with inputs of the given kind. At most
// workers traces are held in memory at once, one per CPU when workers is
// not positive. Size i draws its input from seed+i; zero seeds from the
// clock.
func Sweep(ctx context.Context, id algorithms.ID, kind generate.Kind, sizes []int, seed int64, workers int) ([]Point, error) {
	d, err := algorithms.Lookup(id)
	if err != nil {
		return nil, err
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	points := make([]Point, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sweepWorkers(workers))

	for i, n := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			input, err := generate.New(seed+int64(i)).Generate(kind, n, generate.Params{})
			if err != nil {
				return err
			}
			t, err := d.Trace(input, seededRand(seed))
			if err != nil {
				return err
			}
			points[i] = Point{
				Size:        n,
				Comparisons: t.Comparisons(),
				Swaps:       t.Swaps(),
				Frames:      len(t),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}

func sweepWorkers(workers int) int {
	if workers <= 0 {
		return runtime.NumCPU()
	}
	return workers
}
