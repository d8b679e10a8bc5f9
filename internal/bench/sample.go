// SPDX-License-Identifier: MPL-2.0

package bench

import (
	"context"
	"time"
)

// Sample measures whole batches of cycles invocations and feeds each batch's
// wall time, in seconds, into acc. It measures first and checks the budget
// afterwards, so at least one batch is always recorded even for a
// non-positive budget. Only op calls count towards a batch; init is excluded.
func Sample(ctx context.Context, clock Clock, init, op func(), cycles int, measure time.Duration, acc *Accumulator) error {
	cycles = max(1, cycles)
	remaining := measure
	for {
		var batch time.Duration
		for range cycles {
			batch += elapsed(clock, init, op)
		}
		remaining -= batch
		acc.Add(batch.Seconds())

		if remaining <= 0 {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
