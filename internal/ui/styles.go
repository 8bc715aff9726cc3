// Package ui provides terminal styling for cz output.
// Colours come from the Ayu palette with adaptive light/dark variants; each
// ladder outcome has one fixed colour so tables read at a glance.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/collatzlab/cz/internal/ladder"
)

func init() {
	if !ShouldUseColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	} else {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

// ApplyThemeMode pushes the resolved background to lipgloss.
func ApplyThemeMode() {
	if !ShouldUseColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetHasDarkBackground(HasDarkBackground())
}

var (
	ColorPass = lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	}
	ColorWarn = lipgloss.AdaptiveColor{
		Light: "#f2ae49",
		Dark:  "#ffb454",
	}
	ColorFail = lipgloss.AdaptiveColor{
		Light: "#f07171",
		Dark:  "#f07178",
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	}
	ColorAccent = lipgloss.AdaptiveColor{
		Light: "#399ee6",
		Dark:  "#59c2ff",
	}
	// purple marks stems that never branch
	ColorStem = lipgloss.AdaptiveColor{
		Light: "#a37acc",
		Dark:  "#d2a6ff",
	}
)

var (
	PassStyle   = lipgloss.NewStyle().Foreground(ColorPass)
	WarnStyle   = lipgloss.NewStyle().Foreground(ColorWarn)
	FailStyle   = lipgloss.NewStyle().Foreground(ColorFail)
	MutedStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(ColorAccent)
	StemStyle   = lipgloss.NewStyle().Foreground(ColorStem)

	CategoryStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	BoldStyle     = lipgloss.NewStyle().Bold(true)
)

const (
	IconPass = "✓"
	IconWarn = "⚠"
	IconFail = "✖"
	IconInfo = "ℹ"
	IconStop = "■"
)

// SeparatorLight is 42 columns wide.
const SeparatorLight = "──────────────────────────────────────────"

func RenderPass(s string) string   { return PassStyle.Render(s) }
func RenderWarn(s string) string   { return WarnStyle.Render(s) }
func RenderFail(s string) string   { return FailStyle.Render(s) }
func RenderMuted(s string) string  { return MutedStyle.Render(s) }
func RenderAccent(s string) string { return AccentStyle.Render(s) }
func RenderBold(s string) string   { return BoldStyle.Render(s) }

// RenderCategory renders a section header in upper case.
func RenderCategory(s string) string {
	return CategoryStyle.Render(strings.ToUpper(s))
}

// RenderSeparator renders the light separator in muted colour.
func RenderSeparator() string {
	return MutedStyle.Render(SeparatorLight)
}

// OutcomeStyle returns the colour used for o.
func OutcomeStyle(o ladder.Outcome) lipgloss.Style {
	switch o {
	case ladder.Completed:
		return PassStyle
	case ladder.BranchlessStop:
		return AccentStyle
	case ladder.InvalidStop:
		return FailStyle
	case ladder.BranchlessStem:
		return StemStyle
	case ladder.EndsAtR:
		return WarnStyle
	default:
		return lipgloss.NewStyle()
	}
}

// OutcomeIcon returns the unstyled glyph for o.
func OutcomeIcon(o ladder.Outcome) string {
	switch o {
	case ladder.Completed:
		return IconPass
	case ladder.BranchlessStop:
		return IconStop
	case ladder.InvalidStop:
		return IconFail
	case ladder.BranchlessStem, ladder.EndsAtR:
		return IconWarn
	default:
		return "?"
	}
}

// RenderOutcome renders the outcome name in its colour, prefixed by its icon
// when emoji output is enabled.
func RenderOutcome(o ladder.Outcome) string {
	label := o.String()
	if ShouldUseEmoji() {
		label = OutcomeIcon(o) + " " + label
	}
	return OutcomeStyle(o).Render(label)
}

// RenderPassIcon renders the pass icon with styling.
func RenderPassIcon() string { return PassStyle.Render(IconPass) }

// RenderWarnIcon renders the warning icon with styling.
func RenderWarnIcon() string { return WarnStyle.Render(IconWarn) }

// RenderFailIcon renders the fail icon with styling.
func RenderFailIcon() string { return FailStyle.Render(IconFail) }

// RenderInfoIcon renders the info icon with styling.
func RenderInfoIcon() string { return AccentStyle.Render(IconInfo) }
