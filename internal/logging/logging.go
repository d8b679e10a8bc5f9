// SPDX-License-Identifier: MPL-2.0

// Package logging builds the charmbracelet/log loggers used by the CLI and
// handed to the bench engine. Logs always go to stderr so the report table on
// stdout stays clean.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Prefix labels every log line.
const Prefix = "ipsbench"

// Options configures New.
type Options struct {
	// Verbose lowers the level to debug and adds timestamps.
	Verbose bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

// New creates a logger. Without Verbose only warnings and errors are shown.
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(out, log.Options{
		Prefix:          Prefix,
		Level:           level,
		ReportTimestamp: opts.Verbose,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
