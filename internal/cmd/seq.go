package cmd

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/runlog"
	"github.com/collatzlab/cz/internal/style"
	"github.com/collatzlab/cz/internal/ui"
)

// maxStepsRange bounds 'cz steps' output.
const maxStepsRange = 1_000_000

var seqJSON bool

var seqCmd = &cobra.Command{
	Use:     "seq n",
	GroupID: GroupForward,
	Short:   "Print the forward Collatz sequence of n",
	Long: `Print n, f(n), f(f(n)), ... down to 1, where f halves even numbers and
maps odd n to 3n+1, followed by the stopping time.

Examples:
  cz seq 27
  cz seq 97 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSeq,
}

var (
	stepsJSON bool
	stepsTop  int
)

var stepsCmd = &cobra.Command{
	Use:     "steps lo hi",
	GroupID: GroupForward,
	Short:   "Print stopping times for a range of starting values",
	Long: `Print the number of steps each n in [lo, hi] takes to reach 1.

Examples:
  cz steps 1 30
  cz steps 1 100000 --top 5`,
	Args: cobra.ExactArgs(2),
	RunE: runSteps,
}

func init() {
	seqCmd.Flags().BoolVar(&seqJSON, "json", false, "Output the sequence as JSON")

	stepsCmd.Flags().BoolVar(&stepsJSON, "json", false, "Output stopping times as JSON")
	stepsCmd.Flags().IntVar(&stepsTop, "top", 0, "Show only the n values with the longest stopping times")

	rootCmd.AddCommand(seqCmd)
	rootCmd.AddCommand(stepsCmd)
}

func runSeq(cmd *cobra.Command, args []string) error {
	n, err := parseUint("n", args[0])
	if err != nil {
		return err
	}
	seq, err := ladder.Sequence(n)
	if err != nil {
		return fmt.Errorf("sequence: %w", err)
	}
	logEvent(cmd, runlog.EventSeq, "n=%d steps=%d", n, len(seq)-1)

	out := cmd.OutOrStdout()
	if seqJSON {
		return writeJSON(out, struct {
			N        uint64   `json:"n"`
			Steps    int      `json:"steps"`
			Sequence []uint64 `json:"sequence"`
		}{n, len(seq) - 1, seq})
	}

	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = strconv.FormatUint(v, 10)
	}
	content := strings.Join(parts, " → ") + "\n" +
		style.Dim.Render(numbers.Sprintf("%d steps", len(seq)-1)) + "\n"
	return ui.ToPager(out, content, ui.PagerOptions{NoPager: noPager})
}

func runSteps(cmd *cobra.Command, args []string) error {
	lo, err := parseUint("lo", args[0])
	if err != nil {
		return err
	}
	hi, err := parseUint("hi", args[1])
	if err != nil {
		return err
	}
	if hi >= lo && hi-lo >= maxStepsRange {
		return invalidArg("range %d..%d has more than %d values", lo, hi, maxStepsRange)
	}

	times, err := ladder.StoppingTimeRange(lo, hi)
	if err != nil {
		return fmt.Errorf("stopping times: %w", err)
	}
	logEvent(cmd, runlog.EventSeq, "range=%d..%d", lo, hi)

	if stepsTop > 0 {
		times = longestStopping(times, stepsTop)
	}

	out := cmd.OutOrStdout()
	if stepsJSON {
		return writeJSON(out, times)
	}

	nWidth := len(strconv.FormatUint(hi, 10))
	tbl := style.NewTable(
		style.Column{Name: "n", Width: max(nWidth, 1), Align: style.AlignRight},
		style.Column{Name: "Steps", Width: 5, Align: style.AlignRight},
	)
	for _, s := range times {
		tbl.AddRow(strconv.FormatUint(s.N, 10), strconv.Itoa(s.Steps))
	}
	return ui.ToPager(out, tbl.Render(), ui.PagerOptions{NoPager: noPager})
}

// longestStopping returns the top entries by stopping time, ties broken by
// smaller n, in descending order of steps.
func longestStopping(times []ladder.Stopping, top int) []ladder.Stopping {
	sorted := make([]ladder.Stopping, len(times))
	copy(sorted, times)
	slices.SortStableFunc(sorted, func(a, b ladder.Stopping) int {
		return cmp.Compare(b.Steps, a.Steps)
	})
	if len(sorted) > top {
		sorted = sorted[:top]
	}
	return sorted
}
