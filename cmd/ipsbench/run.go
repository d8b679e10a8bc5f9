// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ipsbench/internal/bench"
	"ipsbench/internal/config"
	"ipsbench/internal/issue"
	"ipsbench/internal/report"
	"ipsbench/internal/workload"
)

type (
	// budgetFlags are the measurement flags shared by run and sh. They only
	// override configuration when set explicitly.
	budgetFlags struct {
		warmup      time.Duration
		measure     time.Duration
		interactive string
	}

	runFlags struct {
		budgetFlags
		size int
		seed uint64
	}
)

func (b *budgetFlags) register(fs *pflag.FlagSet) {
	fs.DurationVar(&b.warmup, "warmup", bench.DefaultWarmup, "calibration budget per task")
	fs.DurationVar(&b.measure, "measure", bench.DefaultMeasure, "measurement budget per task")
	fs.StringVar(&b.interactive, "interactive", string(config.InteractiveAuto), "redraw the table in place: auto, always or never")
}

func (b *budgetFlags) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("warmup") {
		cfg.Warmup = b.warmup
	}
	if fs.Changed("measure") {
		cfg.Measure = b.measure
	}
	if fs.Changed("interactive") {
		mode := config.InteractiveMode(b.interactive)
		if err := mode.Validate(); err != nil {
			return usageError(issue.NewErrorContext().
				WithOperation("parse --interactive").
				WithResource(b.interactive).
				WithSuggestion("Use auto, always or never").
				WithIssue(issue.InvalidFlagId).
				Wrap(err).
				BuildError())
		}
		cfg.Interactive = mode
	}
	return nil
}

func newRunCommand(app *App, root *rootFlags) *cobra.Command {
	rf := &runFlags{}

	cmd := &cobra.Command{
		Use:   "run [task...]",
		Short: "Benchmark the built-in sorting tasks",
		Long: `Benchmark the built-in sorting tasks.

Before every call the shared array is refilled with 0..size-1 and shuffled,
so every task sorts the same kind of input. Name tasks to run a subset in the
order given; run 'ipsbench list' to see the names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runBuiltin(cmd.Context(), cmd.Flags(), app, root, rf, args); err != nil {
				return app.fail(cmd, err, root.verbose)
			}
			return nil
		},
	}

	rf.register(cmd.Flags())
	cmd.Flags().IntVar(&rf.size, "size", workload.DefaultSize, "number of elements to sort")
	cmd.Flags().Uint64Var(&rf.seed, "seed", 1, "shuffle seed")

	return cmd
}

func runBuiltin(ctx context.Context, fs *pflag.FlagSet, app *App, root *rootFlags, rf *runFlags, names []string) error {
	cfg, err := app.loadConfig(ctx, root)
	if err != nil {
		return err
	}
	if err := rf.apply(fs, cfg); err != nil {
		return err
	}
	if fs.Changed("size") {
		cfg.Workload.Size = rf.size
	}
	if fs.Changed("seed") {
		cfg.Workload.Seed = rf.seed
	}

	suite, err := workload.NewSuite(cfg.Workload.Size, cfg.Workload.Seed)
	if err != nil {
		return usageError(issue.NewErrorContext().
			WithOperation("build the sorting suite").
			WithSuggestion("--size must be a positive integer").
			WithIssue(issue.InvalidFlagId).
			Wrap(err).
			BuildError())
	}

	suite, err = suite.Select(names...)
	if err != nil {
		var unknown *bench.UnknownTaskError
		if errors.As(err, &unknown) {
			return usageError(issue.NewErrorContext().
				WithOperation("select tasks").
				WithResource(strings.Join(unknown.Names, ", ")).
				WithSuggestion("Available tasks: " + strings.Join(unknown.Available, ", ")).
				WithIssue(issue.UnknownTaskId).
				Wrap(err).
				BuildError())
		}
		return err
	}

	return app.runSuite(ctx, suite, cfg)
}

// runSuite measures suite and streams the table to stdout.
func (a *App) runSuite(ctx context.Context, suite *bench.Suite, cfg *config.Config) error {
	if suite.Len() == 0 {
		return issue.NewErrorContext().
			WithOperation("run benchmarks").
			WithIssue(issue.NoTasksId).
			Wrap(errors.New("no tasks to run")).
			BuildError()
	}

	logger := a.logger(cfg.Verbose)
	interactive := a.interactive(cfg)
	logger.Debug("starting suite", "tasks", suite.Len(), "warmup", cfg.Warmup,
		"measure", cfg.Measure, "interactive", interactive)

	return suite.Run(ctx, bench.RunOptions{
		Warmup:   cfg.Warmup,
		Measure:  cfg.Measure,
		Clock:    a.Clock,
		Reporter: report.New(a.stdout, report.Options{Interactive: interactive}),
		Logger:   logger,
	})
}

// usageError marks err as a command-line mistake.
func usageError(err error) error {
	return &ExitError{Code: exitUsage, Err: err}
}
