// SPDX-License-Identifier: MPL-2.0

// Package workload provides the built-in demonstration suite: several ways of
// sorting the same shuffled integer array. The suite's init hook refills the
// array with 0..n-1 and shuffles it before every single call, so each sort
// always starts from an unsorted input.
package workload
