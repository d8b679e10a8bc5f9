// SPDX-License-Identifier: MPL-2.0

package report

import (
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

type (
	// Redrawer prepares the output before a table is written. prevRows is the
	// number of rows the previous redraw printed.
	Redrawer interface {
		Begin(w io.Writer, prevRows int) error
	}

	// InPlace moves the cursor up over the previous table so the new one
	// overwrites it.
	InPlace struct{}

	// Append leaves previous output alone; every redraw prints a full table
	// below the last one.
	Append struct{}

	fdWriter interface {
		Fd() uintptr
	}
)

// Begin implements Redrawer.
func (InPlace) Begin(w io.Writer, prevRows int) error {
	if prevRows <= 0 {
		return nil
	}
	_, err := io.WriteString(w, ansi.CursorUp(prevRows))
	return err
}

// Begin implements Redrawer.
func (Append) Begin(io.Writer, int) error {
	return nil
}

// RedrawerFor returns InPlace for interactive output and Append otherwise.
func RedrawerFor(interactive bool) Redrawer {
	if interactive {
		return InPlace{}
	}
	return Append{}
}

// IsInteractive reports whether w is a terminal. Writers without a file
// descriptor are never interactive.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// StdoutIsInteractive reports whether the process stdout is a terminal.
func StdoutIsInteractive() bool {
	return IsInteractive(os.Stdout)
}
