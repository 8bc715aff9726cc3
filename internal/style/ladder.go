package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/ui"
)

// LadderOptions controls RenderLadderTable.
type LadderOptions struct {
	// Decoded adds a column with each row's decoded path vector.
	Decoded bool
	// Rows overrides t.Rows, e.g. to show only the longest rows.
	Rows []ladder.Row
}

// LadderColumns returns the columns for a search table with k positions:
// m1..mk, Result, Outcome, Stopping Time and optionally Decoded.
func LadderColumns(t *ladder.Table, rows []ladder.Row, decoded bool) []Column {
	k := t.K()
	expWidth := 2
	for _, e := range t.Exponents {
		expWidth = max(expWidth, len(strconv.Itoa(e)))
	}

	resultWidth := len("Result")
	decodedWidth := len("Decoded")
	for _, r := range rows {
		resultWidth = max(resultWidth, len(r.Node.String()))
		if decoded && r.Path != nil {
			decodedWidth = max(decodedWidth, len(FormatVector(r.Path)))
		}
	}

	cols := make([]Column, 0, k+4)
	for i := 1; i <= k; i++ {
		name := "m" + strconv.Itoa(i)
		cols = append(cols, Column{Name: name, Width: max(expWidth, len(name)), Align: AlignRight})
	}
	cols = append(cols,
		Column{Name: "Result", Width: resultWidth, Align: AlignRight},
		Column{Name: "Outcome", Width: len("branchless-stop") + 2},
		Column{Name: "Stopping Time", Width: len("Stopping Time"), Align: AlignRight},
	)
	if decoded {
		cols = append(cols, Column{Name: "Decoded", Width: decodedWidth, Style: Dim})
	}
	return cols
}

// RenderLadderTable renders the rows of a search table. A stem-class table
// renders as a single line naming the classification.
func RenderLadderTable(t *ladder.Table, opts LadderOptions) string {
	if t.StemOutcome.IsStemClass() {
		node := ""
		if t.StemNode != nil {
			node = " (node " + t.StemNode.String() + ")"
		}
		return fmt.Sprintf("  %s stem %s is %s%s: no branches to search\n",
			WarningPrefix, t.Stem, ui.RenderOutcome(t.StemOutcome), node)
	}

	rows := opts.Rows
	if rows == nil {
		rows = t.Rows
	}

	tbl := NewTable(LadderColumns(t, rows, opts.Decoded)...)
	for _, r := range rows {
		cells := make([]string, 0, len(r.Exponents)+4)
		for _, e := range r.Exponents {
			cells = append(cells, strconv.Itoa(e))
		}
		cells = append(cells,
			r.Node.String(),
			ui.RenderOutcome(r.Outcome),
			strconv.Itoa(r.StoppingTime),
		)
		if opts.Decoded {
			cells = append(cells, FormatVector(r.Path))
		}
		tbl.AddRow(cells...)
	}
	return tbl.Render()
}

// FormatVector renders a decoded path as [2^e, e_m-1, ..., e_1].
func FormatVector(p *ladder.Path) string {
	if p == nil {
		return "-"
	}
	parts := make([]string, 0, p.Len()+1)
	for _, v := range p.Vector() {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
