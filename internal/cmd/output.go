package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/message"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/style"
	"github.com/collatzlab/cz/internal/ui"
)

// numbers groups thousands in counts.
var numbers = message.NewPrinter(message.MatchLanguage("en"))

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// statLine is one label/value pair in a stats block.
type statLine struct {
	label string
	value string
}

func renderStatLines(title string, lines []statLine) string {
	width := 0
	for _, l := range lines {
		width = max(width, len(l.label))
	}

	var b strings.Builder
	b.WriteString(ui.RenderCategory(title))
	b.WriteString("\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, l.label, l.value)
	}
	return b.String()
}

// formatStats renders the summary block printed under a search table.
func formatStats(t *ladder.Table) string {
	s := t.Stats
	pct := 0
	if s.Total > 0 {
		pct = s.Correct * 100 / s.Total
	}

	lines := []statLine{
		{"Rows", numbers.Sprintf("%d", s.Total)},
		{"Even results", numbers.Sprintf("%d", s.Even)},
		{"Correct (odd heuristic)", numbers.Sprintf("%d", s.Correct) + "  " + style.Dim.Render(style.ProgressBar(pct, 10))},
		{"Completed", numbers.Sprintf("%d", s.Completed)},
		{"Branchless stops", numbers.Sprintf("%d", s.BranchlessStops)},
		{"Invalid stops", numbers.Sprintf("%d", s.InvalidStops)},
		{"Longest ladder", numbers.Sprintf("%d steps", s.LongestSteps)},
		{"Max stopping time", numbers.Sprintf("%d", t.MaxStoppingTime)},
		{"Orderings", fmt.Sprintf("%s visited, %s distinct of %d! = %s",
			numbers.Sprintf("%d", t.Visited), t.Distinct, t.K(), t.Factorial)},
	}
	return renderStatLines("Stats", lines)
}
