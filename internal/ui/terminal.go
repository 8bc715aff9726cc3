package ui

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/collatzlab/cz/internal/constants"
)

// ThemeMode is the CLI colour scheme.
type ThemeMode string

const (
	ThemeModeAuto  ThemeMode = "auto"
	ThemeModeDark  ThemeMode = "dark"
	ThemeModeLight ThemeMode = "light"
)

var (
	themeMode         = ThemeModeAuto
	hasDarkBackground = true
)

// InitTheme resolves the theme from CZ_THEME and the configured value and
// applies it to lipgloss. Call once before rendering.
func InitTheme(configTheme string) {
	themeMode = resolveThemeMode(configTheme)
	hasDarkBackground = detectDarkBackground(themeMode)
	ApplyThemeMode()
}

// GetThemeMode returns the mode chosen by InitTheme.
func GetThemeMode() ThemeMode {
	return themeMode
}

// HasDarkBackground reports whether dark-background colours are in use.
func HasDarkBackground() bool {
	return hasDarkBackground
}

func parseThemeMode(s string) (ThemeMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dark":
		return ThemeModeDark, true
	case "light":
		return ThemeModeLight, true
	case "auto":
		return ThemeModeAuto, true
	}
	return "", false
}

// resolveThemeMode prefers a valid CZ_THEME, then the config value, then auto.
func resolveThemeMode(configTheme string) ThemeMode {
	if m, ok := parseThemeMode(os.Getenv(constants.EnvTheme)); ok {
		return m
	}
	if m, ok := parseThemeMode(configTheme); ok {
		return m
	}
	return ThemeModeAuto
}

func detectDarkBackground(mode ThemeMode) bool {
	switch mode {
	case ThemeModeDark:
		return true
	case ThemeModeLight:
		return false
	default:
		return termenv.HasDarkBackground()
	}
}

// IsTerminal returns true if stdout is a TTY.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// ShouldUseColor follows the NO_COLOR, CLICOLOR and CLICOLOR_FORCE conventions.
func ShouldUseColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}
	if os.Getenv("CLICOLOR") == "0" {
		return false
	}
	if _, exists := os.LookupEnv("CLICOLOR_FORCE"); exists {
		return true
	}
	return IsTerminal()
}

// ShouldUseEmoji reports whether icon glyphs should decorate output.
func ShouldUseEmoji() bool {
	if _, exists := os.LookupEnv(constants.EnvNoEmoji); exists {
		return false
	}
	return IsTerminal()
}

// TerminalWidth returns the stdout width, or fallback when it is not a TTY.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
