package life

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Grid is a fixed-size board stored as a flat row-major slice.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewGrid creates an all-dead grid of width x height cells.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}
	cells := make([]Cell, width*height)
	for i := range cells {
		cells[i] = Cell{X: i % width, Y: i / width}
	}
	return &Grid{Width: width, Height: height, Cells: cells}, nil
}

// Index maps grid coordinates to a slice index. The result is -1 when the
// coordinates fall outside the grid.
func (g *Grid) Index(x, y int) int {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return -1
	}
	return x + y*g.Width
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) (*Cell, bool) {
	i := g.Index(x, y)
	if i < 0 {
		return nil, false
	}
	return &g.Cells[i], true
}

// Set sets a cell to alive (true) or dead (false). Out-of-range
// coordinates are ignored.
func (g *Grid) Set(x, y int, alive bool) {
	if c, ok := g.At(x, y); ok {
		c.Alive = alive
		c.Next = Unset
	}
}

// Clear kills every cell and drops pending states.
func (g *Grid) Clear() {
	for i := range g.Cells {
		g.Cells[i].Alive = false
		g.Cells[i].Next = Unset
	}
}

// Living returns the number of alive cells.
func (g *Grid) Living() (count int) {
	for i := range g.Cells {
		if g.Cells[i].Alive {
			count++
		}
	}
	return
}

// ComputeNext stores every cell's next state. Neighbour counts read only
// Alive, which this pass never writes.
func (g *Grid) ComputeNext() {
	for i := range g.Cells {
		c := &g.Cells[i]
		c.setNext(NextState(c.Alive, CountLiveNeighbors(g, *c)))
	}
}

// Commit applies every pending state computed by ComputeNext.
func (g *Grid) Commit() {
	for i := range g.Cells {
		g.Cells[i].commit()
	}
}

// Hash returns a digest of the alive flags.
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.Cells))
	for i := range g.Cells {
		if g.Cells[i].Alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// AdvanceGeneration moves the grid forward one generation: all next states
// are computed from the current snapshot before any of them is committed.
func AdvanceGeneration(g *Grid) {
	g.ComputeNext()
	g.Commit()
}

// Seed replaces the population with a random one where each cell is alive
// with probability limit percent.
func Seed(g *Grid, rng *rand.Rand, limit int) {
	for i := range g.Cells {
		g.Cells[i].Alive = rng.Intn(100) < limit
		g.Cells[i].Next = Unset
	}
}
