// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"ipsbench/internal/workload"
)

func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := style(app.stdout, CmdStyle)
			for _, n := range workload.Names() {
				fmt.Fprintln(app.stdout, name.Render(n))
			}
			return nil
		},
	}
}
