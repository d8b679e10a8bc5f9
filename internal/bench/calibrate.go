// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"context"
	"time"
)

// decisecond is the target duration of one measured batch.
const decisecond = 100 * time.Millisecond

// Calibrate runs single timed invocations of op until the warm-up budget is
// spent and returns how many invocations fit in one decisecond at the observed
// rate. The result is never below 1. A non-positive budget runs nothing.
//
// The budget is checked only between invocations, so a slow op overshoots by
// at most one call.
func Calibrate(ctx context.Context, clock Clock, init, op func(), warmup time.Duration) (int, error) {
	var (
		count int
		total time.Duration
	)
	for remaining := warmup; remaining > 0; {
		if err := ctx.Err(); err != nil {
			return cyclesFor(count, total), err
		}
		d := elapsed(clock, init, op)
		total += d
		remaining -= d
		count++
	}
	return cyclesFor(count, total), nil
}

// cyclesFor computes floor(count / total-in-deciseconds), floored at 1.
func cyclesFor(count int, total time.Duration) int {
	if count == 0 {
		return 1
	}
	if total <= 0 {
		return count
	}
	cycles := int(float64(count) / (float64(total) / float64(decisecond)))
	return max(1, cycles)
}
