package ladder

import "math/big"

// maxGrowExponent is the largest exponent Grow ever needs: 2 has order 6 mod 9,
// so for a node not divisible by 3 some e in 1..6 gives t*2^e = 4 or 7 mod 9.
const maxGrowExponent = 6

// Grow extends a ladder from stem for up to steps steps, choosing at every node
// the smallest exponent that continues validly (t*2^e - 1 divisible by 3 but
// not by 9). The chosen exponents are evaluated and returned as a Result.
func Grow(stem *big.Int, steps int) (Result, error) {
	if steps < 0 {
		return Result{}, invalidInput("grow", steps, "step count must not be negative")
	}
	if steps > MaxExponentSum/maxGrowExponent {
		return Result{}, overflow("grow", steps, "step count exceeds %d", MaxExponentSum/maxGrowExponent)
	}
	if err := checkInputs("grow", stem, nil); err != nil {
		return Result{}, err
	}
	if class, _ := classifyStem(stem); class != Completed {
		return Evaluate(stem, nil)
	}

	t := new(big.Int).Sub(stem, one)
	t.Quo(t, three)

	exps := make([]int, 0, steps)
	var product big.Int
	for len(exps) < steps {
		e := nextGrowExponent(t)
		if e == 0 {
			break
		}
		exps = append(exps, e)
		product.Lsh(t, uint(e))
		t.Sub(&product, one).Quo(t, three)
	}
	return Evaluate(stem, exps)
}

// nextGrowExponent returns the smallest e in 1..6 that continues the ladder
// from t, or 0 when t is a multiple of 3.
func nextGrowExponent(t *big.Int) int {
	var m big.Int
	r := m.Mod(t, nine).Int64()
	if r%3 == 0 {
		return 0
	}
	for e := 1; e <= maxGrowExponent; e++ {
		r = r * 2 % 9
		if r == 4 || r == 7 {
			return e
		}
	}
	return 0
}
