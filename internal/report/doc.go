// SPDX-License-Identifier: MPL-2.0

// Package report renders the comparison table for a bench.Suite.
//
// Each row shows a task's throughput scaled by powers of 1000, the matching
// time per operation, the relative standard deviation of its batches and how
// much slower it is than the task that collected the most samples:
//
//	  selection sort   2.41  (414.93ms) (± 0.87%) 1234.50× slower
//	        std sort   2.98k (335.68us) (± 1.02%)          fastest
//
// Rows are recomputed from scratch on every redraw. Whether previous rows are
// overwritten in place or new rows are appended is decided by a Redrawer
// chosen from the interactivity of the output.
package report
