// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"
	"os"

	"chainres/internal/config"
	"chainres/internal/sdk"
	"chainres/internal/trace"
)

type (
	// App wires CLI services and shared dependencies. It is the
	// composition root for the CLI layer: all cobra handlers receive an
	// App reference and delegate through its fields.
	App struct {
		OpenSession func(config.SessionName) (*config.Session, error)
		NewSink     func(verbose bool) trace.Sink
		Locator     sdk.Locator
		stdout      io.Writer
		stderr      io.Writer
	}

	// Dependencies defines the injection points for building an App.
	// Nil fields are replaced with production defaults by NewApp; tests
	// supply fakes to isolate handler behavior.
	Dependencies struct {
		OpenSession func(config.SessionName) (*config.Session, error)
		NewSink     func(verbose bool) trace.Sink
		Locator     sdk.Locator
		Stdout      io.Writer
		Stderr      io.Writer
	}
)

// NewApp builds an App, filling nil dependencies with production
// defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		OpenSession: deps.OpenSession,
		NewSink:     deps.NewSink,
		Locator:     deps.Locator,
		stdout:      deps.Stdout,
		stderr:      deps.Stderr,
	}
	if app.OpenSession == nil {
		app.OpenSession = config.Open
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}
	if app.NewSink == nil {
		app.NewSink = func(verbose bool) trace.Sink {
			return trace.NewStyledSink(app.stderr, verbose)
		}
	}
	if app.Locator == nil {
		app.Locator = sdk.XcodeLocator{}
	}
	return app
}
