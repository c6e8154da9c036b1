package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// minSamples is the shortest series with a meaningful spectrum.
const minSamples = 4

// PowerSpectrum returns the magnitude of the first half of the spectrum of
// the mean-removed series.
func PowerSpectrum(series []float64) []float64 {
	if len(series) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centred := make([]float64, len(series))
	for i, v := range series {
		centred[i] = v - mean
	}

	spectrum := fft.FFTReal(centred)
	ps := make([]float64, len(spectrum)/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in samples, of the strongest
// non-constant component. ok is false for short or flat series.
func DominantPeriod(series []float64) (period float64, ok bool) {
	n := len(series)
	if n < minSamples {
		return 0, false
	}
	ps := PowerSpectrum(series)

	best, bestK := 0.0, 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > best {
			best, bestK = ps[k], k
		}
	}
	if bestK == 0 || best < 1e-9*float64(n) || math.IsNaN(best) {
		return 0, false
	}
	return float64(n) / float64(bestK), true
}
