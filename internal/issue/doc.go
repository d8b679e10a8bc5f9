// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable, user-facing errors for the ipsbench CLI
// and a small catalog of markdown guidance for well-known failures, rendered
// with glamour.
package issue
