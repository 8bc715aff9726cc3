package cmd

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/collatzlab/cz/internal/ladder"
)

// invalidArg reports a malformed command-line value.
func invalidArg(format string, args ...any) error {
	return &ladder.Error{Kind: ladder.KindInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// parseBig parses a base-10 integer of any size. Underscores are allowed as
// digit separators.
func parseBig(name, s string) (*big.Int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, invalidArg("%s %q is not an integer", name, s)
	}
	return n, nil
}

// parseUint parses a positive integer that fits in 64 bits.
func parseUint(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 10, 64)
	if err != nil {
		return 0, invalidArg("%s %q is not a positive 64-bit integer", name, s)
	}
	return n, nil
}

// parseExponents accepts exponents as separate arguments, comma lists or both:
// "3 1 2", "3,1,2" and "3, 1 2" are equivalent.
func parseExponents(args []string) ([]int, error) {
	var exps []int
	for _, arg := range args {
		for _, field := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ' ' }) {
			e, err := strconv.Atoi(field)
			if err != nil {
				return nil, invalidArg("exponent %q is not an integer", field)
			}
			exps = append(exps, e)
		}
	}
	return exps, nil
}

// prompter reads answers to interactive questions, one per line.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the next non-empty line.
func (p *prompter) ask(question string) (string, error) {
	for {
		fmt.Fprint(p.out, question)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", fmt.Errorf("reading input: %w", err)
			}
			return "", invalidArg("unexpected end of input")
		}
		if line := strings.TrimSpace(p.in.Text()); line != "" {
			return line, nil
		}
	}
}

// promptSearch asks for the number of positions, the stem and each exponent.
func promptSearch(p *prompter, maxPositions int) (*big.Int, []int, error) {
	line, err := p.ask("Number of positions (k): ")
	if err != nil {
		return nil, nil, err
	}
	k, err := strconv.Atoi(line)
	if err != nil || k < 0 {
		return nil, nil, invalidArg("number of positions %q must be a non-negative integer", line)
	}
	if k > maxPositions {
		return nil, nil, tooManyPositions(k, maxPositions)
	}

	line, err = p.ask("Base stem (R): ")
	if err != nil {
		return nil, nil, err
	}
	stem, err := parseBig("stem", line)
	if err != nil {
		return nil, nil, err
	}

	exps := make([]int, 0, k)
	for i := 1; i <= k; i++ {
		line, err := p.ask(fmt.Sprintf("Exponent m%d: ", i))
		if err != nil {
			return nil, nil, err
		}
		e, err := strconv.Atoi(line)
		if err != nil {
			return nil, nil, invalidArg("exponent %q is not an integer", line)
		}
		exps = append(exps, e)
	}
	return stem, exps, nil
}

func tooManyPositions(k, limit int) error {
	return invalidArg("%d positions exceeds max_positions=%d (k! orderings); raise it in the config file", k, limit)
}
