// Package results is an interactive browser for permutation search tables.
package results

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/collatzlab/cz/internal/ladder"
)

// filters is the cycle order of the outcome filter; nil shows every row.
var filters = []*ladder.Outcome{nil, ptr(ladder.Completed), ptr(ladder.BranchlessStop), ptr(ladder.InvalidStop)}

func ptr(o ladder.Outcome) *ladder.Outcome { return &o }

// Model is the bubbletea model for the results browser.
type Model struct {
	table *ladder.Table
	rows  []ladder.Row // rows after filtering

	cursor   int
	offset   int
	pageSize int

	filter      int // index into filters
	longestOnly bool

	showDetail bool
	detail     viewport.Model

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New creates a browser over t showing pageSize rows at a time.
func New(t *ladder.Table, pageSize int) Model {
	m := Model{
		table:    t,
		pageSize: max(pageSize, 1),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		detail:   viewport.New(80, 10),
	}
	m.applyFilter()
	return m
}

// Run starts the browser on the alternate screen and blocks until it quits.
func Run(t *ladder.Table, pageSize int) error {
	_, err := tea.NewProgram(New(t, pageSize), tea.WithAltScreen()).Run()
	return err
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Rows returns the rows currently shown.
func (m Model) Rows() []ladder.Row {
	return m.rows
}

// Selected returns the row under the cursor.
func (m Model) Selected() (ladder.Row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return ladder.Row{}, false
	}
	return m.rows[m.cursor], true
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height/3, 5)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.showDetail && msg.String() == "esc" {
				m.showDetail = false
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.move(-1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.keys.PageUp):
			m.move(-m.pageSize)
			return m, nil

		case key.Matches(msg, m.keys.PageDown):
			m.move(m.pageSize)
			return m, nil

		case key.Matches(msg, m.keys.Top):
			m.move(-len(m.rows))
			return m, nil

		case key.Matches(msg, m.keys.Bottom):
			m.move(len(m.rows))
			return m, nil

		case key.Matches(msg, m.keys.Detail):
			m.showDetail = !m.showDetail
			m.refreshDetail()
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filter = (m.filter + 1) % len(filters)
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Longest):
			m.longestOnly = !m.longestOnly
			m.applyFilter()
			return m, nil
		}
	}

	if m.showDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

// move shifts the cursor by delta, clamped, and scrolls the page to keep it visible.
func (m *Model) move(delta int) {
	if len(m.rows) == 0 {
		m.cursor, m.offset = 0, 0
		return
	}
	m.cursor = max(0, min(m.cursor+delta, len(m.rows)-1))
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.pageSize {
		m.offset = m.cursor - m.pageSize + 1
	}
	m.refreshDetail()
}

// applyFilter rebuilds the visible rows and resets the cursor.
func (m *Model) applyFilter() {
	rows := m.table.Rows
	if m.longestOnly {
		rows = m.table.Longest()
	}
	want := filters[m.filter]

	filtered := make([]ladder.Row, 0, len(rows))
	for _, r := range rows {
		if want == nil || r.Outcome == *want {
			filtered = append(filtered, r)
		}
	}
	m.rows = filtered
	m.cursor, m.offset = 0, 0
	m.refreshDetail()
}

// FilterLabel describes the active filters.
func (m Model) FilterLabel() string {
	var parts []string
	if want := filters[m.filter]; want != nil {
		parts = append(parts, want.String())
	} else {
		parts = append(parts, "all")
	}
	if m.longestOnly {
		parts = append(parts, "longest")
	}
	return strings.Join(parts, ", ")
}

// refreshDetail re-evaluates the selected row to fill the trace pane.
func (m *Model) refreshDetail() {
	if !m.showDetail {
		return
	}
	row, ok := m.Selected()
	if !ok {
		m.detail.SetContent("no row selected")
		return
	}
	m.detail.SetContent(traceText(m.table.Stem, row))
	m.detail.GotoTop()
}

// traceText renders the step-by-step evaluation of row.
func traceText(stem *big.Int, row ladder.Row) string {
	var b strings.Builder

	used := row.Exponents[:row.Used]
	fmt.Fprintf(&b, "stem %s, exponents %v\n", stem, used)

	res, err := ladder.Evaluate(stem, used)
	if err != nil {
		fmt.Fprintf(&b, "error: %v\n", err)
		return b.String()
	}
	for i, s := range res.Trace {
		fmt.Fprintf(&b, "%2d. ×2^%d = %s → %s (%s)\n", i+1, s.Exponent, s.Product, s.Node, s.Outcome)
	}
	fmt.Fprintf(&b, "node %s, %s, stopping time %d\n", res.Node, res.Outcome, row.StoppingTime)
	if row.Path != nil {
		fmt.Fprintf(&b, "decoded: stem %s, exponents %v\n", row.Path.Stem, row.Path.Exponents)
	}
	return b.String()
}
