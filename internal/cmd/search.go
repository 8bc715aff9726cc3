package cmd

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/runlog"
	"github.com/collatzlab/cz/internal/style"
	"github.com/collatzlab/cz/internal/tui/results"
	"github.com/collatzlab/cz/internal/ui"
	"github.com/collatzlab/cz/internal/util"
)

var (
	searchStem    string
	searchJSON    bool
	searchOut     string
	searchLongest bool
	searchBrowse  bool
	searchDecode  bool
)

var searchCmd = &cobra.Command{
	Use:     "search [--stem R] [exponent...]",
	GroupID: GroupLadder,
	Short:   "Evaluate every distinct ordering of a set of exponents (start here)",
	Long: `Evaluate the ladder from stem R for every distinct ordering of the
exponents and print one row per distinct outcome.

Each row shows the ordering (zero-padded past the point where the ladder
stopped), the terminal node, how the ladder ended and its stopping-time
estimate. Stems with (R-1) not divisible by 3, or divisible by 9, have no
branches and are reported as such with no rows.

With no arguments the stem and exponents are read interactively.

Examples:
  cz search --stem 16 3 1 2
  cz search --stem 16 3,1,2 --decode
  cz search --stem 22 2 3 1 2 --longest
  cz search --stem 40 1 2 3 4 5 --json --out table.json
  cz search                       # prompt for k, R and each exponent`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchStem, "stem", "r", "", "Base stem R")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output the table as JSON")
	searchCmd.Flags().StringVarP(&searchOut, "out", "o", "", "Also write the table as JSON to this file")
	searchCmd.Flags().BoolVar(&searchLongest, "longest", false, "Show only the rows that stayed valid longest")
	searchCmd.Flags().BoolVarP(&searchBrowse, "browse", "b", false, "Browse the table interactively")
	searchCmd.Flags().BoolVar(&searchDecode, "decode", false, "Decode each row's node back to a ladder path")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	stem, exps, err := searchInput(cmd, args)
	if err != nil {
		return err
	}
	if len(exps) > appConfig.MaxPositions {
		return tooManyPositions(len(exps), appConfig.MaxPositions)
	}

	var opts []ladder.SearchOption
	if searchDecode || appConfig.DecodePaths {
		opts = append(opts, ladder.WithDecodedPaths())
	}

	tab, err := ladder.Search(stem, exps, opts...)
	if err != nil {
		return fmt.Errorf("searching: %w", err)
	}
	logEvent(cmd, runlog.EventSearch, "stem=%s k=%d rows=%d visited=%d outcome=%s",
		tab.Stem, tab.K(), len(tab.Rows), tab.Visited, tab.StemOutcome)

	if searchOut != "" {
		if err := util.AtomicWriteJSON(searchOut, tab); err != nil {
			return fmt.Errorf("writing %s: %w", searchOut, err)
		}
	}

	out := cmd.OutOrStdout()
	switch {
	case searchJSON:
		return writeJSON(out, tab)
	case searchBrowse:
		if !ui.IsTerminal() {
			return errors.New("--browse needs an interactive terminal")
		}
		return results.Run(tab, appConfig.PageSize)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s stem %s, exponents %v\n\n", style.ArrowPrefix, tab.Stem, tab.Exponents)

	lo := style.LadderOptions{Decoded: searchDecode || appConfig.DecodePaths}
	if searchLongest {
		lo.Rows = tab.Longest()
	}
	b.WriteString(style.RenderLadderTable(tab, lo))

	if !tab.StemOutcome.IsStemClass() {
		b.WriteString("\n")
		b.WriteString(formatStats(tab))
	}
	if searchOut != "" {
		fmt.Fprintf(&b, "\n%s wrote %s\n", style.SuccessPrefix, searchOut)
	}
	return ui.ToPager(out, b.String(), ui.PagerOptions{NoPager: noPager})
}

// searchInput takes the stem and exponents from flags and arguments, or
// prompts for them when neither is given.
func searchInput(cmd *cobra.Command, args []string) (*big.Int, []int, error) {
	if searchStem == "" && len(args) == 0 {
		return promptSearch(newPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()), appConfig.MaxPositions)
	}
	if searchStem == "" {
		return nil, nil, invalidArg("--stem is required when exponents are given")
	}
	stem, err := parseBig("stem", searchStem)
	if err != nil {
		return nil, nil, err
	}
	exps, err := parseExponents(args)
	if err != nil {
		return nil, nil, err
	}
	return stem, exps, nil
}
