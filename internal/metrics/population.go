package metrics

import "github.com/san-kum/lifesim/internal/life"

// Population records the living-cell count of every generation.
type Population struct {
	name       string
	history    []int
	capacity   int
	peak       int
	peakGen    int
	total      int
	samples    int
	extinctGen int
}

// NewPopulation keeps at most capacity samples of history; 0 keeps all.
// Peak and mean always cover the whole run.
func NewPopulation(capacity int) *Population {
	return &Population{name: "population", capacity: capacity, extinctGen: -1}
}

func (p *Population) Name() string { return p.name }

func (p *Population) OnGeneration(gen, living int, g *life.Grid) {
	p.history = append(p.history, living)
	if p.capacity > 0 && len(p.history) > p.capacity {
		p.history = p.history[1:]
	}
	if living > p.peak || p.samples == 0 {
		p.peak, p.peakGen = living, gen
	}
	p.total += living
	p.samples++
	if living == 0 && p.extinctGen < 0 {
		p.extinctGen = gen
	}
}

func (p *Population) History() []int { return p.history }

// Series returns the history as floats for plotting and spectral analysis.
func (p *Population) Series() []float64 {
	out := make([]float64, len(p.history))
	for i, v := range p.history {
		out[i] = float64(v)
	}
	return out
}

func (p *Population) Peak() (living, gen int) { return p.peak, p.peakGen }

func (p *Population) Mean() float64 {
	if p.samples == 0 {
		return 0
	}
	return float64(p.total) / float64(p.samples)
}

// Extinction returns the generation where the population first hit zero.
func (p *Population) Extinction() (int, bool) {
	return p.extinctGen, p.extinctGen >= 0
}

func (p *Population) Reset() {
	p.history = p.history[:0]
	p.peak, p.peakGen = 0, 0
	p.total, p.samples = 0, 0
	p.extinctGen = -1
}
