package anim

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/san-kum/lifesim/internal/life"
)

// State is the controller's lifecycle state.
type State int

const (
	Running State = iota
	Paused
	Halted
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Halted:
		return "halted"
	}
	return "unknown"
}

// Signal tells the host whether to request another frame.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// Config holds the pacing and rendering parameters.
type Config struct {
	CellSize int // side of a cell in pixels
	Speed    int // frames per generation
}

// Controller owns the simulation context: the grid, the frame counter and
// the pause flag.
type Controller struct {
	grid     *life.Grid
	surface  Surface
	cellSize int
	speed    int

	counter    int
	frame      int
	generation int
	living     int
	computed   bool
	paused     bool
	state      State

	observers []Observer
}

// NewController validates cfg against the grid and surface.
func NewController(g *life.Grid, s Surface, cfg Config) (*Controller, error) {
	if cfg.CellSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidCellSize, "got %d", cfg.CellSize)
	}
	if cfg.Speed < 1 {
		return nil, errors.Wrapf(ErrInvalidSpeed, "got %d", cfg.Speed)
	}
	w, h := s.Size()
	if w != g.Width*cfg.CellSize || h != g.Height*cfg.CellSize {
		return nil, errors.Wrapf(ErrSurfaceMismatch, "surface %dx%d, grid %dx%d at %dpx",
			w, h, g.Width, g.Height, cfg.CellSize)
	}
	return &Controller{
		grid:     g,
		surface:  s,
		cellSize: cfg.CellSize,
		speed:    cfg.Speed,
		living:   g.Living(),
		state:    Running,
	}, nil
}

func (c *Controller) AddObserver(o Observer) { c.observers = append(c.observers, o) }

func (c *Controller) State() State     { return c.state }
func (c *Controller) Grid() *life.Grid { return c.grid }
func (c *Controller) Generation() int  { return c.generation }
func (c *Controller) Living() int      { return c.living }
func (c *Controller) Frame() int       { return c.frame }

// Pause requests a pause. It takes effect on the next frame.
func (c *Controller) Pause() {
	if c.state != Halted {
		c.paused = true
	}
}

// Resume clears the pause flag. It reports true when the controller was
// Paused and the host must request a frame again.
func (c *Controller) Resume() bool {
	c.paused = false
	if c.state != Paused {
		return false
	}
	c.state = Running
	return true
}

// Reseed starts over from a random population. It reports true when the
// previous run had stopped requesting frames.
func (c *Controller) Reseed(rng *rand.Rand, limit int) bool {
	stopped, _ := c.Restart(func(g *life.Grid) error {
		life.Seed(g, rng, limit)
		return nil
	})
	return stopped
}

// Restart repopulates the grid and starts over at generation 0. It reports
// true when the previous run had stopped requesting frames. On error the
// run state is left as it was.
func (c *Controller) Restart(populate func(*life.Grid) error) (bool, error) {
	if err := populate(c.grid); err != nil {
		return false, errors.Wrap(err, "[Restart] failed to populate grid")
	}
	stopped := c.state != Running
	c.counter = 0
	c.generation = 0
	c.computed = false
	c.paused = false
	c.living = c.grid.Living()
	c.state = Running
	return stopped, nil
}

// OnFrame runs one host tick.
func (c *Controller) OnFrame() (State, Signal) {
	if c.state != Running {
		return c.state, Stop
	}
	c.frame++
	c.counter++

	if c.counter < c.speed {
		drawCells(c.surface, c.grid, c.cellSize)
		return c.checkPause()
	}

	c.counter = 0
	c.advance()

	if c.living == 0 {
		c.state = Halted
		clearSurface(c.surface)
		w, h := c.surface.Size()
		drawGrid(c.surface, w, h, c.cellSize)
		return c.state, Stop
	}
	return c.checkPause()
}

// advance runs a generation boundary: commit, render, compute the
// following generation and tally the population.
func (c *Controller) advance() {
	clearSurface(c.surface)
	if c.computed {
		c.grid.Commit()
		c.generation++
	}

	living := 0
	for i := range c.grid.Cells {
		cell := c.grid.Cells[i]
		drawCell(c.surface, cell, c.cellSize)
		if cell.Alive {
			living++
		}
	}
	c.grid.ComputeNext()
	c.computed = true
	c.living = living

	for _, o := range c.observers {
		o.OnGeneration(c.generation, c.living, c.grid)
	}
}

func (c *Controller) checkPause() (State, Signal) {
	if c.paused {
		c.state = Paused
		return c.state, Stop
	}
	return c.state, Continue
}
