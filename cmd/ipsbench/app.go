// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ipsbench/internal/bench"
	"ipsbench/internal/config"
	"ipsbench/internal/issue"
	"ipsbench/internal/logging"
	"ipsbench/internal/report"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root of the CLI layer: every cobra handler receives an App and writes
	// only through its writers.
	App struct {
		Config ConfigProvider
		Clock  bench.Clock
		// Detect decides whether "auto" interactivity redraws in place.
		Detect func(io.Writer) bool
		stdout io.Writer
		stderr io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Clock  bench.Clock
		Detect func(io.Writer) bool
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// rootFlags holds the persistent flags shared by every subcommand.
	rootFlags struct {
		verbose    bool
		configPath string
	}
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Clock == nil {
		deps.Clock = bench.SystemClock()
	}
	if deps.Detect == nil {
		deps.Detect = report.IsInteractive
	}

	return &App{
		Config: deps.Config,
		Clock:  deps.Clock,
		Detect: deps.Detect,
		stdout: deps.Stdout,
		stderr: deps.Stderr,
	}, nil
}

// loadConfig loads configuration honoring --config and folds --verbose in.
func (a *App) loadConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	cfg, err := a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: flags.configPath})
	if err != nil {
		return nil, err
	}
	if flags.verbose {
		cfg.Verbose = true
	}
	return cfg, nil
}

// logger returns the stderr logger for one command invocation.
func (a *App) logger(verbose bool) *log.Logger {
	return logging.New(logging.Options{Verbose: verbose, Output: a.stderr})
}

// interactive resolves the redraw strategy for stdout. Verbose logs on a
// terminal stderr share the screen with the table and would throw off the
// cursor movement of an in-place redraw, so those runs append instead.
func (a *App) interactive(cfg *config.Config) bool {
	if !cfg.Interactive.Resolve(func() bool { return a.Detect(a.stdout) }) {
		return false
	}
	return !cfg.Verbose || !a.Detect(a.stderr)
}

// style binds s to a renderer for w so colors follow the writer's capabilities.
func style(w io.Writer, s lipgloss.Style) lipgloss.Style {
	return lipgloss.NewRenderer(w).NewStyle().Inherit(s)
}

// fail renders err to stderr, silences cobra's own printing and returns the
// matching ExitError. Interrupts are reported as a plain warning.
func (a *App) fail(cmd *cobra.Command, err error, verbose bool) error {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(a.stderr, style(a.stderr, WarningStyle).Render("interrupted"))
		return &ExitError{Code: exitInterrupted, Err: err}
	}

	fmt.Fprintln(a.stderr, style(a.stderr, ErrorStyle).Render("Error: ")+formatErrorForDisplay(err, verbose))

	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if guidance := ae.Guidance(); guidance != nil {
			if rendered, rerr := guidance.Render(glamourStyle(a.stderr)); rerr == nil {
				fmt.Fprint(a.stderr, rendered)
			}
		}
	}

	code := exitFailure
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
	}
	return &ExitError{Code: code, Err: err}
}

// formatErrorForDisplay uses the ActionableError format when available.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// glamourStyle picks a glamour style that suits the writer.
func glamourStyle(w io.Writer) string {
	if report.IsInteractive(w) {
		return "dark"
	}
	return "notty"
}
