package ui

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// maxMarkdownWidth keeps prose readable on wide terminals.
const maxMarkdownWidth = 100

// RenderMarkdown renders md for the terminal. Without colour, or if glamour
// fails, md is returned unchanged.
func RenderMarkdown(md string) string {
	if !ShouldUseColor() {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(min(TerminalWidth(80), maxMarkdownWidth)),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// markdownStyle picks the glamour style matching the resolved theme.
func markdownStyle() string {
	if HasDarkBackground() {
		return styles.DarkStyle
	}
	return styles.LightStyle
}
