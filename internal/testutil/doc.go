// SPDX-License-Identifier: MPL-2.0

// Package testutil provides deterministic test doubles shared by the engine,
// reporter and CLI tests.
package testutil
