package life

import (
	"math/rand"
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named seed made of live cell offsets.
type Pattern struct {
	Name   string
	Descr  string
	Coords [][2]int
}

var patterns = map[string]Pattern{
	"blinker": {
		Name:   "blinker",
		Descr:  "period 2 oscillator",
		Coords: [][2]int{{0, 0}, {1, 0}, {2, 0}},
	},
	"tub": {
		Name:   "tub",
		Descr:  "still life, four cells around an empty centre",
		Coords: [][2]int{{1, 0}, {0, 1}, {2, 1}, {1, 2}},
	},
	"block": {
		Name:   "block",
		Descr:  "2x2 still life",
		Coords: [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	"beacon": {
		Name:   "beacon",
		Descr:  "period 2 oscillator made of two blocks",
		Coords: [][2]int{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}},
	},
	"glider": {
		Name:   "glider",
		Descr:  "diagonal spaceship",
		Coords: [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}},
	},
}

// PatternByName looks a pattern up in the registry.
func PatternByName(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return p, nil
}

// PatternNames lists registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for k := range patterns {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Bounds returns the pattern's bounding box size.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Coords {
		w = max(w, c[0]+1)
		h = max(h, c[1]+1)
	}
	return
}

// Place sets the pattern's cells alive with its top-left corner at
// (x0, y0).
func Place(g *Grid, p Pattern, x0, y0 int) error {
	w, h := p.Bounds()
	if x0 < 0 || y0 < 0 || x0+w > g.Width || y0+h > g.Height {
		return errors.Wrapf(ErrPatternTooLarge, "%s at (%d,%d) on %dx%d", p.Name, x0, y0, g.Width, g.Height)
	}
	for _, c := range p.Coords {
		g.Set(x0+c[0], y0+c[1], true)
	}
	return nil
}

// PlaceCentered places the pattern in the middle of the grid.
func PlaceCentered(g *Grid, p Pattern) error {
	w, h := p.Bounds()
	return Place(g, p, (g.Width-w)/2, (g.Height-h)/2)
}

// Populate clears the grid and fills it with the named pattern, or with a
// random population of limit percent when name is empty.
func Populate(g *Grid, name string, rng *rand.Rand, limit int) error {
	if name == "" {
		Seed(g, rng, limit)
		return nil
	}
	p, err := PatternByName(name)
	if err != nil {
		return err
	}
	g.Clear()
	return PlaceCentered(g, p)
}
