// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `chainres config` command tree for
// inspecting and overriding the resolution store. `config set` is the
// remediation path named by fatal SDK errors.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the resolution store",
		Long: `Manage the resolution store.

Values are stored per build configuration in:
  - Linux: ~/.config/chainres/<name>.toml
  - macOS: ~/Library/Application Support/chainres/<name>.toml
  - Windows: %APPDATA%\chainres\<name>.toml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show all cached resolution values",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStore(app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Print one cached value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getStoreValue(app, args[0])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Override a value, skipping future probes for it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStoreValue(app, args[0], args[1])
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a value so the next check re-probes it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return unsetStoreValue(app, args[0])
		},
	})

	return cfgCmd
}

func showStore(app *App) error {
	name, err := sessionName()
	if err != nil {
		return err
	}
	session, err := app.OpenSession(name)
	if err != nil {
		return err
	}

	fmt.Fprintln(app.stdout, TitleStyle.Render(string(session.Name()))+
		SubtitleStyle.Render(" ("+session.Path()+")"))
	for _, key := range session.Keys() {
		val, _ := session.Get(key)
		fmt.Fprintf(app.stdout, "%s = %s\n", key, SuccessStyle.Render(val))
	}
	return nil
}

func getStoreValue(app *App, key string) error {
	name, err := sessionName()
	if err != nil {
		return err
	}
	session, err := app.OpenSession(name)
	if err != nil {
		return err
	}
	val, ok := session.Get(key)
	if !ok {
		return &ExitError{Code: 1, Err: fmt.Errorf("%s is not set", key)}
	}
	fmt.Fprintln(app.stdout, val)
	return nil
}

func setStoreValue(app *App, key, value string) error {
	name, err := sessionName()
	if err != nil {
		return err
	}
	session, err := app.OpenSession(name)
	if err != nil {
		return err
	}
	session.Set(key, value)
	if err := session.Save(); err != nil {
		return err
	}
	fmt.Fprintf(app.stdout, "%s = %s\n", key, SuccessStyle.Render(value))
	return nil
}

func unsetStoreValue(app *App, key string) error {
	name, err := sessionName()
	if err != nil {
		return err
	}
	session, err := app.OpenSession(name)
	if err != nil {
		return err
	}
	session.Delete(key)
	return session.Save()
}
