package ladder

import (
	"iter"
	"math/big"
	"slices"
)

// Permutations yields every distinct ordering of exponents in lexicographic
// order, from the ascending ordering to the descending one. Repeated values are
// not visited twice. Each yielded slice is a fresh copy owned by the caller.
// An empty input yields one empty ordering.
//
// The sequence is finite but its length grows as k!, so callers choose k.
func Permutations(exponents []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		p := slices.Clone(exponents)
		slices.Sort(p)
		for {
			if !yield(slices.Clone(p)) {
				return
			}
			if !nextPermutation(p) {
				return
			}
		}
	}
}

// nextPermutation rearranges p into the next lexicographically greater
// ordering and reports whether one existed.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])
	return true
}

// Factorial returns k!.
func Factorial(k int) *big.Int {
	if k < 2 {
		return big.NewInt(1)
	}
	return new(big.Int).MulRange(1, int64(k))
}

// DistinctPermutations returns k! / prod(multiplicity!) for the multiset.
func DistinctPermutations(exponents []int) *big.Int {
	counts := make(map[int]int, len(exponents))
	for _, e := range exponents {
		counts[e]++
	}
	n := Factorial(len(exponents))
	for _, c := range counts {
		n.Quo(n, Factorial(c))
	}
	return n
}
