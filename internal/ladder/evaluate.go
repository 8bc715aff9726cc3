// Package ladder implements the division-ladder form of the Collatz process.
//
// A ladder starts from a base stem R with R-1 divisible by 3. The first node is
// t = (R-1)/3, and each exponent e moves the ladder with t <- (t*2^e - 1)/3.
// A step is valid when t*2^e - 1 is divisible by 3; when it is also divisible
// by 9 the new node is a multiple of 3, has no odd predecessors, and the ladder
// stops cleanly ("branchless").
//
// All ladder values are *big.Int. Only the plain forward helpers (Sequence,
// StoppingTime) work on uint64 and report ErrOverflow.
package ladder

import (
	"math/big"
)

// MaxExponentSum bounds the total shift applied by one evaluation. Beyond it the
// intermediate values are millions of bits wide and evaluation fails with ErrOverflow.
const MaxExponentSum = 1 << 20

var (
	one   = big.NewInt(1)
	three = big.NewInt(3)
	nine  = big.NewInt(9)
)

// Step records one applied exponent.
type Step struct {
	Exponent int         `json:"exponent"`
	Product  *big.Int    `json:"product"` // t * 2^e before subtracting one
	Node     *big.Int    `json:"node"`    // node after the step; the product on an invalid stop
	Outcome  StepOutcome `json:"outcome"`
}

// Result is one evaluated exponent ordering. It is not modified after Evaluate returns.
type Result struct {
	Stem    *big.Int `json:"stem"`
	Used    []int    `json:"used"`  // exponents applied, including one that caused an invalid stop
	Steps   int      `json:"steps"` // divisions actually performed
	Node    *big.Int `json:"node"`
	Outcome Outcome  `json:"outcome"`
	Trace   []Step   `json:"trace,omitempty"`
}

// StoppingTime estimates the forward stopping time of the terminal node from
// the exponents consumed and the stem.
func (r Result) StoppingTime() int {
	return stoppingEstimate(r.Stem, r.Used)
}

// Evaluate walks the ladder from stem applying exponents in the given order.
// The ladder's first node is (stem-1)/3, so with no exponents a valid stem
// completes at (stem-1)/3, not at stem. Only EndsAtR reports stem itself.
// Step products are copies; mutating a returned Trace leaves Node intact.
func Evaluate(stem *big.Int, exponents []int) (Result, error) {
	if err := checkInputs("evaluate", stem, exponents); err != nil {
		return Result{}, err
	}

	res := Result{Stem: new(big.Int).Set(stem)}
	if class, node := classifyStem(stem); class != Completed {
		res.Outcome = class
		res.Node = node
		return res, nil
	}

	t := new(big.Int).Sub(stem, one)
	t.Quo(t, three)
	var rem big.Int

	for _, e := range exponents {
		product := new(big.Int).Lsh(t, uint(e))
		dividend := new(big.Int).Sub(product, one)
		res.Used = append(res.Used, e)

		step := Step{Exponent: e, Product: new(big.Int).Set(product)}
		switch {
		case rem.Mod(dividend, nine).Sign() == 0:
			t = dividend.Quo(dividend, three)
			res.Steps++
			step.Outcome = StepBranchless
			res.Outcome = BranchlessStop
		case rem.Mod(dividend, three).Sign() != 0:
			t = product
			step.Outcome = StepInvalid
			res.Outcome = InvalidStop
		default:
			t = dividend.Quo(dividend, three)
			res.Steps++
			step.Outcome = Continue
		}
		step.Node = new(big.Int).Set(t)
		res.Trace = append(res.Trace, step)

		if step.Outcome != Continue {
			break
		}
	}

	res.Node = t
	return res, nil
}

// classifyStem returns BranchlessStem or EndsAtR with the terminal node those
// imply, or Completed and nil when a ladder can start from stem.
func classifyStem(stem *big.Int) (Outcome, *big.Int) {
	rm1 := new(big.Int).Sub(stem, one)
	var rem big.Int
	switch {
	case rem.Mod(rm1, nine).Sign() == 0:
		return BranchlessStem, rm1.Quo(rm1, three)
	case rem.Mod(rm1, three).Sign() != 0:
		return EndsAtR, new(big.Int).Set(stem)
	default:
		return Completed, nil
	}
}

func checkInputs(op string, stem *big.Int, exponents []int) error {
	if stem == nil || stem.Sign() <= 0 {
		return invalidInput(op, stem, "base stem must be positive")
	}
	sum := 0
	for i, e := range exponents {
		if e < 0 {
			return invalidInput(op, e, "exponent at position %d is negative", i+1)
		}
		if e > MaxExponentSum-sum {
			return overflow(op, e, "exponent sum exceeds %d", MaxExponentSum)
		}
		sum += e
	}
	return nil
}

// stoppingEstimate is sum(used) + len(used) + floor(log2 stem) + 1.
func stoppingEstimate(stem *big.Int, used []int) int {
	sum := 0
	for _, e := range used {
		sum += e
	}
	return sum + len(used) + stem.BitLen()
}
