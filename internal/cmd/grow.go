package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/runlog"
)

var (
	growStem  string
	growSteps int
	growJSON  bool
)

var growCmd = &cobra.Command{
	Use:     "grow --stem R --steps n",
	GroupID: GroupLadder,
	Short:   "Extend a ladder greedily with the smallest valid exponents",
	Long: `Grow builds a ladder from stem R one step at a time, choosing at each
node the smallest exponent (1 to 6) that keeps the ladder on a branch,
and prints the evaluated result.

Examples:
  cz grow --stem 16 --steps 5
  cz grow --stem 4 --steps 10 --json`,
	Args: cobra.NoArgs,
	RunE: runGrow,
}

func init() {
	growCmd.Flags().StringVarP(&growStem, "stem", "r", "", "Base stem R (required)")
	growCmd.Flags().IntVarP(&growSteps, "steps", "n", 10, "Number of steps to grow")
	growCmd.Flags().BoolVar(&growJSON, "json", false, "Output the result as JSON")
	_ = growCmd.MarkFlagRequired("stem")

	rootCmd.AddCommand(growCmd)
}

func runGrow(cmd *cobra.Command, _ []string) error {
	stem, err := parseBig("stem", growStem)
	if err != nil {
		return err
	}
	res, err := ladder.Grow(stem, growSteps)
	if err != nil {
		return fmt.Errorf("growing: %w", err)
	}
	logEvent(cmd, runlog.EventGrow, "stem=%s steps=%d node=%s", stem, res.Steps, res.Node)

	if growJSON {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	fmt.Fprint(cmd.OutOrStdout(), formatResult(res))
	return nil
}
