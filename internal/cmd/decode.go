package cmd

import (
	"fmt"
	"io"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/collatzlab/cz/internal/ladder"
	"github.com/collatzlab/cz/internal/runlog"
	"github.com/collatzlab/cz/internal/style"
)

var (
	decodeJSON   bool
	decodeVerify bool
)

var decodeCmd = &cobra.Command{
	Use:     "decode node...",
	GroupID: GroupLadder,
	Short:   "Find the stem and exponents that lead to a node",
	Long: `Decode walks from a node back to the stem of its ladder by repeating
n -> 3n+1 and stripping factors of two until it reaches 1.

The result is printed as a vector [2^e, e_m-1, ..., e_1]: the stem value
followed by the exponents in the order they are applied. Evaluating the
stem with those exponents returns the node; --verify (on by default)
checks that.

Node 1 decodes to stem 4 with no exponents.

Examples:
  cz decode 7
  cz decode 11 27 97
  cz decode 984613330210959244682848468471207253 --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "Output paths as JSON")
	decodeCmd.Flags().BoolVar(&decodeVerify, "verify", true, "Evaluate each path and check it returns the node")

	rootCmd.AddCommand(decodeCmd)
}

// decoded pairs a node with its path for JSON output.
type decoded struct {
	Node *big.Int    `json:"node"`
	Path ladder.Path `json:"path"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var all []decoded
	for _, arg := range args {
		node, err := parseBig("node", arg)
		if err != nil {
			return err
		}
		p, err := ladder.Decode(node)
		if err != nil {
			return fmt.Errorf("decoding: %w", err)
		}
		if decodeVerify {
			if err := verifyPath(node, p); err != nil {
				return err
			}
		}
		logEvent(cmd, runlog.EventDecode, "node=%s stem=%s steps=%d", node, p.Stem, p.Len())

		if decodeJSON {
			all = append(all, decoded{Node: node, Path: p})
			continue
		}
		printPath(out, node, p)
	}

	if decodeJSON {
		return writeJSON(out, all)
	}
	return nil
}

// verifyPath evaluates p and checks that it ends at node. Multiples of 3
// are reached by a branchless stop, or by a branchless stem when the path
// has no exponents.
func verifyPath(node *big.Int, p ladder.Path) error {
	res, err := ladder.Evaluate(p.Stem, p.Exponents)
	if err != nil {
		return fmt.Errorf("verifying %s: %w", node, err)
	}
	ok := false
	switch res.Outcome {
	case ladder.Completed, ladder.BranchlessStop:
		ok = true
	case ladder.BranchlessStem:
		ok = p.Len() == 0
	}
	if !ok || res.Node.Cmp(node) != 0 {
		return fmt.Errorf("verifying %s: path evaluates to %s (%s)", node, res.Node, res.Outcome)
	}
	return nil
}

func printPath(w io.Writer, node *big.Int, p ladder.Path) {
	fmt.Fprintf(w, "%s %s ← stem %s (2^%d), %d steps\n", style.ArrowPrefix, node, p.Stem, p.StemExponent, p.Len())
	fmt.Fprintf(w, "  %s\n", style.FormatVector(&p))
}
