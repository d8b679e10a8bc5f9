// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ipsbench/internal/issue"
	"ipsbench/internal/shtask"
)

type shFlags struct {
	budgetFlags
	init string
	dir  string
}

func newShCommand(app *App, root *rootFlags) *cobra.Command {
	sf := &shFlags{}

	cmd := &cobra.Command{
		Use:   "sh [--init SCRIPT] [NAME=]SCRIPT...",
		Short: "Benchmark shell snippets",
		Long: `Benchmark shell snippets with an in-process POSIX shell interpreter.

Each argument is NAME=SCRIPT, or a bare SCRIPT labelled by its own text. Snippets are parsed up front; the --init script
runs before every call and is not timed. Snippet output is discarded.

Every snippet and the --init script run in a fresh shell of their own, so
shell variables do not carry over between them. Only side effects such as
files do.`,
		Example: `  ipsbench sh 'subshell=(:)' 'builtin=:'
  ipsbench sh --init 'printf "b\na\n" > in.txt' 'sort=sort in.txt' 'cat=cat in.txt'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runShell(cmd.Context(), cmd.Flags(), app, root, sf, args); err != nil {
				return app.fail(cmd, err, root.verbose)
			}
			return nil
		},
	}

	sf.register(cmd.Flags())
	cmd.Flags().StringVar(&sf.init, "init", "", "script run before every call, excluded from timing")
	cmd.Flags().StringVar(&sf.dir, "dir", "", "working directory for the snippets")

	return cmd
}

func runShell(ctx context.Context, fs *pflag.FlagSet, app *App, root *rootFlags, sf *shFlags, args []string) error {
	cfg, err := app.loadConfig(ctx, root)
	if err != nil {
		return err
	}
	if err := sf.apply(fs, cfg); err != nil {
		return err
	}

	scripts := make([]shtask.Script, 0, len(args))
	for _, arg := range args {
		s, err := shtask.ParseArg(arg)
		if err != nil {
			return usageError(issue.NewErrorContext().
				WithOperation("parse task").
				WithResource(arg).
				WithSuggestion("Write each task as NAME=SCRIPT with a non-empty SCRIPT").
				WithIssue(issue.ShellParseFailedId).
				Wrap(err).
				BuildError())
		}
		scripts = append(scripts, s)
	}

	suite, err := shtask.NewSuite(ctx, sf.init, scripts, shtask.Options{Dir: sf.dir})
	if err != nil {
		var perr *shtask.ParseError
		resource := ""
		if errors.As(err, &perr) {
			resource = perr.Name
		}
		return usageError(issue.NewErrorContext().
			WithOperation("compile shell snippet").
			WithResource(resource).
			WithIssue(issue.ShellParseFailedId).
			Wrap(err).
			BuildError())
	}

	if err := app.runSuite(ctx, suite.Suite, cfg); err != nil {
		return err
	}

	if err := suite.Err(); err != nil {
		return issue.NewErrorContext().
			WithOperation("run shell snippets").
			WithSuggestion("The table above measured failing commands").
			WithIssue(issue.ShellScriptFailedId).
			Wrap(err).
			BuildError()
	}
	return nil
}
