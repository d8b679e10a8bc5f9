// SPDX-License-Identifier: MPL-2.0

// Package benchmark holds Go benchmarks for the hot paths of ipsbench itself:
// statistics accumulation, the built-in sorting workloads, report rendering,
// shell task execution and configuration loading.
//
// They double as input for profile-guided optimization:
//
//	go test -run='^$' -bench=. -cpuprofile=default.pgo ./internal/benchmark
package benchmark
