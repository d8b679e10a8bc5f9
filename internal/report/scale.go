// SPDX-License-Identifier: MPL-2.0

package report

import "math"

// magnitude is one tier of the throughput/time-per-op display ladder.
type magnitude struct {
	// below is the exclusive upper bound of the rate for this tier.
	below float64
	// divisor scales the rate for display.
	divisor float64
	suffix  string
	// perOp is the numerator for time per op in unit.
	perOp float64
	unit  string
}

var magnitudes = []magnitude{
	{below: 1e3, divisor: 1, suffix: " ", perOp: 1, unit: "s "},
	{below: 1e6, divisor: 1e3, suffix: "k", perOp: 1e3, unit: "ms"},
	{below: 1e9, divisor: 1e6, suffix: "M", perOp: 1e6, unit: "us"},
	{below: math.Inf(1), divisor: 1e9, suffix: "G", perOp: 1e9, unit: "ns"},
}

// magnitudeFor picks the tier whose bound the rate is below.
func magnitudeFor(rate float64) magnitude {
	for _, m := range magnitudes {
		if rate < m.below {
			return m
		}
	}
	return magnitudes[len(magnitudes)-1]
}
