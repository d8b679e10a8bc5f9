// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ipsbench/internal/config"
	"ipsbench/internal/issue"
)

const (
	formatCUE  = "cue"
	formatTOML = "toml"
)

// newConfigCommand creates the `ipsbench config` command tree.
func newConfigCommand(app *App, root *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ipsbench configuration",
		Long: `Manage ipsbench configuration.

Configuration is stored in:
  - Linux: ~/.config/ipsbench/config.cue
  - macOS: ~/Library/Application Support/ipsbench/config.cue
  - Windows: %APPDATA%\ipsbench\config.cue

A config.cue in the current directory is used when none of those exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	var format string
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := showConfig(cmd.Context(), app, root, format); err != nil {
				return app.fail(cmd, err, root.verbose)
			}
			return nil
		},
	}
	showCmd.Flags().StringVar(&format, "format", formatCUE, "output format: cue or toml")
	cfgCmd.AddCommand(showCmd)

	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(app, dir); err != nil {
				return app.fail(cmd, err, root.verbose)
			}
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to write config.cue to (default is the user config directory)")
	cfgCmd.AddCommand(initCmd)

	return cfgCmd
}

func showConfig(ctx context.Context, app *App, root *rootFlags, format string) error {
	if format != formatCUE && format != formatTOML {
		return usageError(issue.NewErrorContext().
			WithOperation("show configuration").
			WithResource(format).
			WithSuggestion("Use --format cue or --format toml").
			WithIssue(issue.InvalidFlagId).
			Wrap(fmt.Errorf("unknown format %q", format)).
			BuildError())
	}

	cfg, err := app.loadConfig(ctx, root)
	if err != nil {
		return err
	}

	source, err := config.Resolve(config.LoadOptions{ConfigFilePath: root.configPath})
	if err != nil {
		return err
	}
	if source == "" {
		source = "(using defaults)"
	}

	var body string
	comment := "//"
	switch format {
	case formatTOML:
		comment = "#"
		if body, err = config.GenerateTOML(cfg); err != nil {
			return err
		}
	default:
		body = config.GenerateCUE(cfg)
	}

	// The source line is a comment so the output stays loadable.
	fmt.Fprintf(app.stdout, "%s source: %s\n", comment, source)
	fmt.Fprint(app.stdout, body)
	return nil
}

func initConfig(app *App, dir string) error {
	path := filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
	if dir == "" {
		p, err := config.ConfigFilePath()
		if err != nil {
			return err
		}
		path = p
	}
	existed := fileExists(path)

	written, err := config.CreateDefaultConfig(dir)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("create configuration").
			WithResource(dir).
			WithSuggestion("Check the directory is writable").
			Wrap(err).
			BuildError()
	}

	if existed {
		fmt.Fprintf(app.stdout, "%s %s\n", style(app.stdout, WarningStyle).Render("Configuration already exists:"), written)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s %s\n", style(app.stdout, SuccessStyle).Render("Configuration written to"), written)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
