// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "ipsbench",
		Short: "Compare the throughput of competing implementations",
		Long: TitleStyle.Render("ipsbench") + SubtitleStyle.Render(" - iterations per second, side by side") + `

ipsbench calibrates each task so a batch of calls takes about a tenth of a
second, measures batches for a fixed time budget, and prints a table ranking
the tasks from fastest to slowest.

` + SubtitleStyle.Render("Examples:") + `
  ipsbench run                          Run the built-in sorting suite
  ipsbench run "std sort" "slices sort" Compare two built-in tasks
  ipsbench sh 'date=date' 'true=true'   Benchmark shell snippets
  ipsbench list                         List built-in tasks
  ipsbench config show                  Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/ipsbench/config.cue)")

	rootCmd.AddCommand(newRunCommand(app, flags))
	rootCmd.AddCommand(newShCommand(app, flags))
	rootCmd.AddCommand(newListCommand(app))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)
	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute builds the production App and runs the CLI. It is called by main.main.
func Execute() {
	app, err := NewApp(Dependencies{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		NewRootCommand(app),
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(exitFailure)
	}
}
