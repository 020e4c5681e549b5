// SPDX-License-Identifier: MPL-2.0

package trace

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Color palette for check output, shared with the CLI layer's styles.
// Designed for dark terminal backgrounds with good contrast.
const (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
)

var (
	passStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	failStyle = lipgloss.NewStyle().Foreground(colorError)
	kindStyle = lipgloss.NewStyle().Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

// Sink receives check status lines. Implementations must be side-effect
// free with respect to resolution: the engine never reads anything back.
type Sink interface {
	// Pass reports a successful resolution of kind to path.
	Pass(kind, path string)
	// Fail reports that kind could not be resolved; name is the last
	// candidate name attempted.
	Fail(kind, name string)
	// Errorf reports a hard failure line ahead of a fatal error.
	Errorf(format string, args ...any)
}

// StyledSink writes colored check lines to a writer when verbose is set,
// and always mirrors them at debug level on a charmbracelet logger.
type StyledSink struct {
	Out     io.Writer
	Verbose bool
	Logger  *log.Logger
}

// NewStyledSink creates the production sink. A nil out defaults to stderr.
func NewStyledSink(out io.Writer, verbose bool) *StyledSink {
	if out == nil {
		out = os.Stderr
	}
	return &StyledSink{
		Out:     out,
		Verbose: verbose,
		Logger: log.NewWithOptions(out, log.Options{
			Prefix: "chainres",
		}),
	}
}

// Pass implements Sink.
func (s *StyledSink) Pass(kind, path string) {
	s.Logger.Debug("check passed", "kind", kind, "path", path)
	if !s.Verbose {
		return
	}
	fmt.Fprintf(s.Out, "checking for %s ... %s %s\n",
		kindStyle.Render(kind), passStyle.Render("ok"), pathStyle.Render(path))
}

// Fail implements Sink.
func (s *StyledSink) Fail(kind, name string) {
	s.Logger.Debug("check failed", "kind", kind, "name", name)
	if !s.Verbose {
		return
	}
	fmt.Fprintf(s.Out, "checking for %s ... %s %s\n",
		kindStyle.Render(kind), failStyle.Render("no"), pathStyle.Render(name))
}

// Errorf implements Sink. Error lines print regardless of verbosity:
// they always precede a fatal abort.
func (s *StyledSink) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Out, "%s\n", failStyle.Render(fmt.Sprintf(format, args...)))
}

// Discard is a Sink that drops everything. Useful for embedders that
// only care about resolved values.
type Discard struct{}

func (Discard) Pass(string, string)   {}
func (Discard) Fail(string, string)   {}
func (Discard) Errorf(string, ...any) {}
