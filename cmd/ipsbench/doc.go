// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the ipsbench CLI: cobra commands executed through fang
// that wire configuration, the benchmark engine and the reporter together.
package cmd
