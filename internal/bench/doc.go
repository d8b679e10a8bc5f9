// SPDX-License-Identifier: MPL-2.0

// Package bench implements the calibration-and-measurement engine.
//
// A Suite owns an ordered list of Task records that share one init hook. For
// each task in order the Suite:
//   - resets the task's statistics,
//   - calibrates a batch size (Cycles) from a warm-up budget so that one batch
//     takes roughly a tenth of a second,
//   - samples whole batches until the measurement budget is spent, feeding each
//     batch's wall time in seconds into a Welford Accumulator,
//   - hands every task processed so far to a Reporter.
//
// Execution is single-threaded. The only cancellation points are between
// warm-up invocations and between batches.
package bench
