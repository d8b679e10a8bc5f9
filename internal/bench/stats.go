// SPDX-License-Identifier: MPL-2.0

package bench

import "math"

type (
	// Stats is the finished summary of a stream of per-batch observations.
	// Observations are batch wall times in seconds.
	Stats struct {
		// Samples is the number of batches measured.
		Samples int
		// Mean is the arithmetic mean of the observations.
		Mean float64
		// Variance is the population variance (divided by Samples, not Samples-1).
		Variance float64
		// Stddev is sqrt(Variance).
		Stddev float64
		// RelStddev is 100*Stddev/Mean. It stays 0 when Mean is 0.
		RelStddev float64
	}

	// Accumulator maintains a running mean and the raw sum of squared-deviation
	// products using Welford's online algorithm. The zero value is ready to use.
	Accumulator struct {
		n    int
		mean float64
		m2   float64
	}
)

// Add feeds one observation.
func (a *Accumulator) Add(x float64) {
	a.n++
	if a.n == 1 {
		a.mean = x
		return
	}
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	delta2 := x - a.mean
	a.m2 += delta * delta2
}

// Count returns the number of observations fed so far.
func (a *Accumulator) Count() int {
	return a.n
}

// Mean returns the running mean.
func (a *Accumulator) Mean() float64 {
	return a.mean
}

// Reset discards all observations.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Stats finishes the stream. The variance sum is divided once, here.
func (a *Accumulator) Stats() Stats {
	if a.n == 0 {
		return Stats{}
	}
	variance := a.m2 / float64(a.n)
	if variance < 0 {
		// rounding on near-identical observations
		variance = 0
	}
	s := Stats{
		Samples:  a.n,
		Mean:     a.mean,
		Variance: variance,
		Stddev:   math.Sqrt(variance),
	}
	if s.Mean != 0 {
		s.RelStddev = 100 * s.Stddev / s.Mean
	}
	return s
}
