// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"chainres/internal/config"
	"chainres/internal/issue"

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

	// verbose enables per-check trace output
	verbose bool
	// storeDir overrides the store directory
	storeDir string
	// configuration selects the build configuration session
	configuration string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "chainres",
		Short: "A toolchain resolution engine",
		Long: TitleStyle.Render("chainres") + SubtitleStyle.Render(" - A toolchain resolution engine") + `

chainres resolves abstract tool kinds (a C compiler, a linker, an SDK)
to concrete executables on the current machine, honoring explicit
overrides, environment hints, cross-compilation prefixes, and custom
validators. Resolved values are cached per build configuration so
repeated runs skip re-probing.

` + SubtitleStyle.Render("Examples:") + `
  chainres check                 Resolve the builtin tool kinds
  chainres check cc ld           Resolve only cc and ld
  chainres check --table t.cue   Resolve kinds from a table file
  chainres config show           Show the cached resolution values
  chainres env cc                Print the override variable for cc`,
	}
)

func init() {
	cobra.OnInitialize(initStoreDir)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print a line per check")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "override the resolution store directory")
	rootCmd.PersistentFlags().StringVarP(&configuration, "configuration", "c", string(config.DefaultSessionName), "build configuration name")

	app := NewApp(Dependencies{})

	// Add subcommands
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newEnvCommand(app))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initStoreDir applies the --store-dir flag before any command runs.
func initStoreDir() {
	if storeDir != "" {
		config.SetStoreDirOverride(storeDir)
	}
}

// sessionName returns the selected configuration as a validated name.
func sessionName() (config.SessionName, error) {
	name := config.SessionName(configuration)
	if err := name.Validate(); err != nil {
		return "", err
	}
	return name, nil
}

// formatErrorForDisplay renders err for the terminal, expanding
// actionable errors into their suggestion lists.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}
