// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"

	"chainres/internal/issue"
	"chainres/internal/sdk"
	"chainres/internal/toolchain"

	"github.com/spf13/cobra"
)

// checkOptions captures the inputs of one `chainres check` invocation.
type checkOptions struct {
	// Kinds restricts resolution to the named kinds; empty means all
	// kinds in the table.
	Kinds []string
	// TableFile is a CUE toolchain table path; empty uses the builtin
	// table.
	TableFile string
	// WithSDK also runs the architecture and Xcode checks.
	WithSDK bool
	// Arch is the --arch default for the architecture check.
	Arch string
}

func newCheckCommand(app *App) *cobra.Command {
	opts := checkOptions{}

	checkCmd := &cobra.Command{
		Use:   "check [kinds...]",
		Short: "Resolve tool kinds to concrete executables",
		Long: `Resolve tool kinds to concrete executables.

Each kind is tried against its candidate list in order; within a
candidate the engine tries the cached value, an environment override,
a custom validator, the toolchain directory, the search path, and
finally the bare name. The first hit is cached in the configuration's
resolution store.

Kinds that cannot be resolved are reported but are not errors; a
failed SDK check (--with-sdk) is fatal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Kinds = args
			return runCheck(cmd.Context(), app, opts)
		},
	}

	checkCmd.Flags().StringVarP(&opts.TableFile, "table", "t", "", "CUE toolchain table file")
	checkCmd.Flags().BoolVar(&opts.WithSDK, "with-sdk", false, "also resolve arch and Xcode SDK values")
	checkCmd.Flags().StringVar(&opts.Arch, "arch", "", "architecture default for --with-sdk (default: host)")

	return checkCmd
}

func runCheck(ctx context.Context, app *App, opts checkOptions) error {
	name, err := sessionName()
	if err != nil {
		return err
	}
	session, err := app.OpenSession(name)
	if err != nil {
		return err
	}
	sink := app.NewSink(verbose)

	var src toolchain.Source = defaultSource
	if opts.TableFile != "" {
		table, err := toolchain.LoadTableFile(opts.TableFile)
		if err != nil {
			return err
		}
		src = toolchain.StaticSource(table)
	}

	if opts.WithSDK {
		checks := sdk.NewChecks(session, sink, app.Locator)
		checks.CheckArch(opts.Arch)
		if _, err := checks.CheckXcodeDir(ctx); err != nil {
			return app.reportFatal(err)
		}
		if _, err := checks.CheckSDKVersion(ctx); err != nil {
			return app.reportFatal(err)
		}
	}

	checker := toolchain.NewChecker(session, sink)
	if len(opts.Kinds) > 0 {
		table := src.Table(session)
		for _, raw := range opts.Kinds {
			checker.Check(ctx, toolchain.Kind(raw), table[toolchain.Kind(raw)])
		}
		return session.Save()
	}
	return checker.CheckAll(ctx, src)
}

// reportFatal renders a fatal resolution error with its remediation
// block and converts it to a non-zero exit. No session state is saved:
// a partially configured pass is not a valid configuration.
func (app *App) reportFatal(err error) error {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		if out, rerr := issue.RenderRemediation(ae, ""); rerr == nil {
			fmt.Fprintln(app.stderr, out)
			return &ExitError{Code: 1, Err: err}
		}
	}
	fmt.Fprintln(app.stderr, ErrorStyle.Render(formatErrorForDisplay(err, verbose)))
	return &ExitError{Code: 1, Err: err}
}
