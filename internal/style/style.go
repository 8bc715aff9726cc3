// Package style holds the message styles and fixed-width tables used by cz
// commands. Colours come from internal/ui.
package style

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/collatzlab/cz/internal/ui"
)

// Message styles. The bold ones prefix status lines.
var (
	Success = ui.PassStyle.Bold(true)
	Warning = ui.WarnStyle.Bold(true)
	Error   = ui.FailStyle.Bold(true)
	Info    = ui.AccentStyle
	Dim     = ui.MutedStyle
	Bold    = lipgloss.NewStyle().Bold(true)
)

// Line prefixes.
var (
	SuccessPrefix = Success.Render(ui.IconPass)
	WarningPrefix = Warning.Render(ui.IconWarn)
	ErrorPrefix   = Error.Render(ui.IconFail)
	ArrowPrefix   = Info.Render("→")
)

// PrintWarning writes "⚠ Warning: msg" to w.
func PrintWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", Warning.Render(ui.IconWarn+" Warning:"), fmt.Sprintf(format, args...))
}
