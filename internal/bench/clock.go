// SPDX-License-Identifier: MPL-2.0

package bench

import "time"

type (
	// Clock supplies monotonic timestamps. Elapsed time is always computed
	// with time.Time.Sub, which uses the monotonic reading when present.
	Clock interface {
		Now() time.Time
	}

	systemClock struct{}
)

// SystemClock returns the process wall clock backed by time.Now.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// elapsed times a single invocation of op. The init hook runs first and is
// not part of the measured interval.
func elapsed(clock Clock, init, op func()) time.Duration {
	init()
	start := clock.Now()
	op()
	return clock.Now().Sub(start)
}
