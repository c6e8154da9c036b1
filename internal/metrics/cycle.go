package metrics

import "github.com/san-kum/lifesim/internal/life"

// CycleDetector flags a population stuck in a still life or short
// oscillation by comparing grid hashes of recent generations.
type CycleDetector struct {
	window  int
	history []string
	period  int
	since   int
}

// NewCycleDetector tracks the last window generations. Periods up to
// window are detected.
func NewCycleDetector(window int) *CycleDetector {
	if window < 1 {
		window = 1
	}
	return &CycleDetector{window: window}
}

func (d *CycleDetector) OnGeneration(gen, living int, g *life.Grid) {
	hash := g.Hash()

	d.period = 0
	for back := 1; back <= len(d.history); back++ {
		if d.history[len(d.history)-back] == hash {
			d.period = back
			break
		}
	}
	if d.period > 0 && d.since == 0 {
		d.since = gen
	} else if d.period == 0 {
		d.since = 0
	}

	d.history = append(d.history, hash)
	if len(d.history) > d.window {
		d.history = d.history[1:]
	}
}

// Period returns the detected cycle length, 0 when none. A still life has
// period 1.
func (d *CycleDetector) Period() int { return d.period }

// Stagnant reports whether the last generation repeated an earlier one.
func (d *CycleDetector) Stagnant() bool { return d.period > 0 }

// Since returns the generation at which the current cycle was first seen.
func (d *CycleDetector) Since() int { return d.since }

func (d *CycleDetector) Reset() {
	d.history = d.history[:0]
	d.period = 0
	d.since = 0
}
