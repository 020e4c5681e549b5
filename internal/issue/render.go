// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// render is a seam for tests; production always goes through glamour.
var render = glamour.Render

// RenderRemediation renders an ActionableError as a styled markdown block
// for terminal display. Used for fatal SDK misses, where a plain one-line
// error would bury the override command the user needs to run. An empty
// stylePath auto-detects the terminal style.
func RenderRemediation(ae *ActionableError, stylePath string) (string, error) {
	if stylePath == "" {
		stylePath = styles.AutoStyle
	}

	var md strings.Builder

	md.WriteString("# Configuration cannot continue\n\n")
	md.WriteString("Failed to " + ae.Operation)
	if ae.Resource != "" {
		md.WriteString(" (`" + ae.Resource + "`)")
	}
	md.WriteString(".\n")

	if ae.Cause != nil {
		md.WriteString("\n~~~\n" + ae.Cause.Error() + "\n~~~\n")
	}

	if len(ae.Suggestions) > 0 {
		md.WriteString("\n## Things you can try\n")
		for _, sug := range ae.Suggestions {
			md.WriteString("- " + sug + "\n")
		}
	}

	return render(md.String(), stylePath)
}
