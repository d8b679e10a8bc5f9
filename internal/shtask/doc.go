// SPDX-License-Identifier: MPL-2.0

// Package shtask turns POSIX shell snippets into bench tasks. Snippets are
// parsed once up front and run by the embedded mvdan/sh interpreter, so
// comparing e.g. two ways of building a string costs no process spawn per
// call unless the snippet itself runs external programs.
package shtask
