// Package sim runs grids headless, without a surface or frame pacing.
package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/san-kum/lifesim/internal/anim"
	"github.com/san-kum/lifesim/internal/config"
	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/metrics"
)

// ctxCheckEvery is how many generations pass between context checks.
const ctxCheckEvery = 64

type Result struct {
	Seed        int64
	Generations int
	Living      int
	Period      int // 0 when the run ended without a cycle
	Elapsed     time.Duration
}

// Simulator advances one grid until it dies out, repeats a recent
// generation or reaches the generation cap.
type Simulator struct {
	cfg       *config.Config
	observers []anim.Observer
}

func New(cfg *config.Config) *Simulator {
	return &Simulator{cfg: cfg}
}

func (s *Simulator) AddObserver(o anim.Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) Run(ctx context.Context, maxGen int) (*Result, error) {
	w, h := s.cfg.GridSize()
	g, err := life.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(s.cfg.Seed))
	if err := life.Populate(g, s.cfg.Pattern, rng, s.cfg.Limit); err != nil {
		return nil, err
	}

	cycle := metrics.NewCycleDetector(2)
	start := time.Now()
	gen := 0
	living := g.Living()
	for ; gen < maxGen && living > 0; gen++ {
		if gen%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		cycle.OnGeneration(gen, living, g)
		for _, o := range s.observers {
			o.OnGeneration(gen, living, g)
		}
		if cycle.Stagnant() {
			break
		}
		life.AdvanceGeneration(g)
		living = g.Living()
	}

	return &Result{
		Seed:        s.cfg.Seed,
		Generations: gen,
		Living:      living,
		Period:      cycle.Period(),
		Elapsed:     time.Since(start),
	}, nil
}

// GensPerSecond is the simulation rate of the run.
func (r *Result) GensPerSecond() float64 {
	secs := r.Elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(r.Generations) / secs
}
