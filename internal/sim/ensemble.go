package sim

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"github.com/san-kum/lifesim/internal/config"
	"golang.org/x/sync/errgroup"
)

// Ensemble runs the same configuration over consecutive seeds, one grid
// per goroutine.
type Ensemble struct {
	base    *config.Config
	numRuns int
}

func NewEnsemble(base *config.Config, numRuns int) *Ensemble {
	return &Ensemble{base: base, numRuns: numRuns}
}

// Run returns results in seed order. The first failing run cancels the
// rest.
func (e *Ensemble) Run(ctx context.Context, maxGen int) ([]*Result, error) {
	results := make([]*Result, e.numRuns)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())

	for i := range e.numRuns {
		eg.Go(func() error {
			cfg := *e.base
			cfg.Seed = e.base.Seed + int64(i)
			r, err := New(&cfg).Run(ctx, maxGen)
			if err != nil {
				return errors.Wrapf(err, "seed %d", cfg.Seed)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
