package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Alignment specifies column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
)

// Column is one fixed-width table column. Style, when set, colours every
// data cell in the column.
type Column struct {
	Name  string
	Width int
	Align Alignment
	Style lipgloss.Style
}

// cell fits val into the column: text wider than Width is cut with an
// ellipsis, then styled and padded by printed width.
func (c Column) cell(val string) string {
	if lipgloss.Width(val) > c.Width {
		val = ansi.Truncate(ansi.Strip(val), c.Width, "…")
	}
	if styled(c.Style) {
		val = c.Style.Render(val)
	}
	return pad(val, c.Width, c.Align)
}

// Table lays rows out in fixed-width columns separated by one space.
type Table struct {
	columns   []Column
	rows      [][]string
	headerSep bool
	indent    string
}

// NewTable returns a table with a header separator and a two-space indent.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns, headerSep: true, indent: "  "}
}

func (t *Table) SetIndent(indent string) *Table {
	t.indent = indent
	return t
}

func (t *Table) SetHeaderSeparator(enabled bool) *Table {
	t.headerSep = enabled
	return t
}

// AddRow appends one row. Missing trailing cells render empty; extra cells are ignored.
func (t *Table) AddRow(values ...string) *Table {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Width returns the printed width of one line, excluding the indent.
func (t *Table) Width() int {
	if len(t.columns) == 0 {
		return 0
	}
	total := len(t.columns) - 1
	for _, c := range t.columns {
		total += c.Width
	}
	return total
}

// Render returns the header, the optional separator and every row.
func (t *Table) Render() string {
	if len(t.columns) == 0 {
		return ""
	}
	var sb strings.Builder

	header := make([]string, len(t.columns))
	for i, c := range t.columns {
		header[i] = pad(Bold.Render(c.Name), c.Width, c.Align)
	}
	t.writeLine(&sb, strings.Join(header, " "))

	if t.headerSep {
		t.writeLine(&sb, Dim.Render(strings.Repeat("─", t.Width())))
	}

	cells := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, c := range t.columns {
			cells[i] = c.cell(row[i])
		}
		t.writeLine(&sb, strings.TrimRight(strings.Join(cells, " "), " "))
	}
	return sb.String()
}

func (t *Table) writeLine(sb *strings.Builder, line string) {
	sb.WriteString(t.indent)
	sb.WriteString(line)
	sb.WriteByte('\n')
}

// styled reports whether s changes how text looks.
func styled(s lipgloss.Style) bool {
	_, plain := s.GetForeground().(lipgloss.NoColor)
	return !plain || s.GetBold()
}

// pad pads text to width by printed width, ignoring escape sequences.
func pad(text string, width int, align Alignment) string {
	gap := width - lipgloss.Width(text)
	if gap <= 0 {
		return text
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + text
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + text + strings.Repeat(" ", gap-left)
	default:
		return text + strings.Repeat(" ", gap)
	}
}

// ProgressBar renders "[████░░░░] 50%" with width cells.
func ProgressBar(percent, width int) string {
	percent = max(0, min(percent, 100))
	filled := percent * width / 100
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("█", filled), strings.Repeat("░", width-filled), percent)
}
