package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/runlog"
	"github.com/collatzlab/cz/internal/style"
	"github.com/collatzlab/cz/internal/ui"
)

var (
	evalStem  string
	evalJSON  bool
	evalCheck bool
)

var evalCmd = &cobra.Command{
	Use:     "eval --stem R exponent...",
	GroupID: GroupLadder,
	Short:   "Evaluate one ladder and show each step",
	Long: `Evaluate the ladder from stem R with the exponents in the given order.

Each step multiplies by 2^e and divides by three. The ladder stops early
when a product is a branchless node (p-1 divisible by 9) or cannot be
divided (p-1 not divisible by 3).

With --check the command prints nothing and exits 0 when every exponent
was applied, 1 otherwise.

Examples:
  cz eval --stem 16 3 2 1
  cz eval --stem 13 1,2,3 --json
  cz eval --stem 16 1 2 3 --check && echo completed`,
	Args: cobra.ArbitraryArgs,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().StringVarP(&evalStem, "stem", "r", "", "Base stem R (required)")
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "Output the result as JSON")
	evalCmd.Flags().BoolVar(&evalCheck, "check", false, "Exit 1 unless every exponent was applied; print nothing")
	_ = evalCmd.MarkFlagRequired("stem")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	stem, err := parseBig("stem", evalStem)
	if err != nil {
		return err
	}
	exps, err := parseExponents(args)
	if err != nil {
		return err
	}

	res, err := ladder.Evaluate(stem, exps)
	if err != nil {
		return fmt.Errorf("evaluating: %w", err)
	}
	logEvent(cmd, runlog.EventEval, "stem=%s exponents=%v node=%s outcome=%s", stem, exps, res.Node, res.Outcome)

	if evalCheck {
		if res.Outcome != ladder.Completed {
			return NewSilentExit(ExitFailure)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if evalJSON {
		return writeJSON(out, res)
	}
	fmt.Fprint(out, formatResult(res))
	return nil
}

// formatResult renders a step trace followed by a summary.
func formatResult(res ladder.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s stem %s, exponents %v\n\n", style.ArrowPrefix, res.Stem, res.Used)

	if res.Outcome.IsStemClass() {
		fmt.Fprintf(&b, "  stem is %s, node %s\n", ui.RenderOutcome(res.Outcome), res.Node)
		return b.String()
	}

	if len(res.Trace) > 0 {
		prodWidth, nodeWidth := len("Product"), len("Node")
		for _, s := range res.Trace {
			prodWidth = max(prodWidth, len(s.Product.String()))
			nodeWidth = max(nodeWidth, len(s.Node.String()))
		}
		tbl := style.NewTable(
			style.Column{Name: "#", Width: max(2, len(strconv.Itoa(len(res.Trace)))), Align: style.AlignRight},
			style.Column{Name: "2^e", Width: 4, Align: style.AlignRight},
			style.Column{Name: "Product", Width: prodWidth, Align: style.AlignRight},
			style.Column{Name: "Node", Width: nodeWidth, Align: style.AlignRight},
			style.Column{Name: "Step", Width: len("branchless")},
		)
		for i, s := range res.Trace {
			tbl.AddRow(strconv.Itoa(i+1), strconv.Itoa(s.Exponent), s.Product.String(), s.Node.String(), s.Outcome.String())
		}
		b.WriteString(tbl.Render())
		b.WriteString("\n")
	}

	b.WriteString(renderStatLines("Result", []statLine{
		{"Outcome", ui.RenderOutcome(res.Outcome)},
		{"Node", res.Node.String()},
		{"Divisions", strconv.Itoa(res.Steps)},
		{"Exponents used", fmt.Sprintf("%d", len(res.Used))},
		{"Stopping time", strconv.Itoa(res.StoppingTime())},
	}))
	return b.String()
}
