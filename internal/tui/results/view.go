package results

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/collatzlab/cz/internal/style"
	"github.com/collatzlab/cz/internal/ui"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorAccent)

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#e7e8e9", Dark: "#2d3640"}).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorMuted).
			Padding(0, 1)
)

// View renders the model.
func (m Model) View() string {
	var b strings.Builder

	t := m.table
	b.WriteString(titleStyle.Render(fmt.Sprintf("Stem %s · k=%d · %d rows of %d visited",
		t.Stem, t.K(), len(t.Rows), t.Visited)))
	b.WriteString("\n\n")

	if t.StemOutcome.IsStemClass() {
		b.WriteString(style.RenderLadderTable(t, style.LadderOptions{}))
		b.WriteString("\n")
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	if len(m.rows) == 0 {
		b.WriteString("  No rows match the filter.\n")
	} else {
		b.WriteString(m.renderRows())
	}

	end := min(m.offset+m.pageSize, len(m.rows))
	status := fmt.Sprintf("  rows %d-%d of %d · filter: %s", min(m.offset+1, end), end, len(m.rows), m.FilterLabel())
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if m.showDetail {
		b.WriteString(detailStyle.Render(m.detail.View()))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return b.String()
}

// renderRows renders the current page with the cursor row highlighted.
func (m Model) renderRows() string {
	end := min(m.offset+m.pageSize, len(m.rows))
	page := m.rows[m.offset:end]

	rendered := style.RenderLadderTable(m.table, style.LadderOptions{
		Rows:    page,
		Decoded: page[0].Path != nil,
	})
	lines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")

	// two header lines precede the rows
	sel := m.cursor - m.offset + 2
	if sel >= 2 && sel < len(lines) {
		lines[sel] = selectedStyle.Render(ui.RenderMuted("▶") + lines[sel][1:])
	}
	return strings.Join(lines, "\n") + "\n"
}
