package ladder

import (
	"math/big"
	"slices"
)

// Path is a decoded ladder: evaluating Exponents from Stem ends at the decoded node.
type Path struct {
	Stem         *big.Int `json:"stem"`          // 2^StemExponent
	StemExponent int      `json:"stem_exponent"` // exponent of the final halving run
	Exponents    []int    `json:"exponents"`     // forward order, first applied first
}

// Vector returns the flat form [2^e_last, e_{m-1}, ..., e_1] where the first
// slot holds the stem value rather than an exponent. A single-element vector
// means the stem reaches the node with no ladder steps.
func (p Path) Vector() []*big.Int {
	v := make([]*big.Int, 0, len(p.Exponents)+1)
	v = append(v, new(big.Int).Set(p.Stem))
	for _, e := range p.Exponents {
		v = append(v, big.NewInt(int64(e)))
	}
	return v
}

// Len is the number of ladder steps on the path.
func (p Path) Len() int {
	return len(p.Exponents)
}

// Decode inverts the ladder: it runs node <- 3*node + 1 and strips factors of
// two, recording each run length, until node reaches 1.
//
// Node 1 decodes to stem 4 with no exponents: 3*1 + 1 = 4 and (4-1)/3 = 1,
// which keeps Evaluate(Decode(n)) == n for every n >= 1.
func Decode(node *big.Int) (Path, error) {
	if node == nil || node.Sign() <= 0 {
		return Path{}, invalidInput("decode", node, "node must be positive")
	}

	n := new(big.Int).Set(node)
	var counts []int
	for {
		n.Mul(n, three).Add(n, one)
		c := int(n.TrailingZeroBits())
		n.Rsh(n, uint(c))
		counts = append(counts, c)
		if n.Cmp(one) == 0 {
			break
		}
	}

	last := counts[len(counts)-1]
	exps := counts[:len(counts)-1]
	slices.Reverse(exps)

	return Path{
		Stem:         new(big.Int).Lsh(one, uint(last)),
		StemExponent: last,
		Exponents:    exps,
	}, nil
}
