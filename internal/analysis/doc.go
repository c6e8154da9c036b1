// Package analysis provides spectral tools for population time series.
//
// [DominantPeriod] finds the strongest oscillation in a series, which for a
// settled Life board is usually the period of its dominant oscillators.
package analysis
