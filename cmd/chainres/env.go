// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"chainres/internal/toolchain"

	"github.com/spf13/cobra"
)

// newEnvCommand creates the `chainres env` command, which prints the
// environment variable consulted as an override for a tool kind.
func newEnvCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "env <kind>",
		Short: "Print the override environment variable for a kind",
		Long: `Print the override environment variable for a kind.

The variable name is the upper-cased kind truncated at the first
hyphen: "cc" uses CC, "c-compiler" uses C. Setting the variable to an
executable name or path overrides probing, unless a cross prefix is
configured.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := toolchain.Kind(args[0])
			if err := kind.Validate(); err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, toolchain.EnvHint(kind))
			return nil
		},
	}
}
