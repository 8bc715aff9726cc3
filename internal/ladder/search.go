package ladder

import (
	"cmp"
	"math/big"
	"slices"
)

// Row is one distinct evaluated ordering in a search table.
type Row struct {
	Exponents    []int    `json:"exponents"` // length k, zero past Used
	Used         int      `json:"used"`
	Steps        int      `json:"steps"`
	Node         *big.Int `json:"node"`
	Outcome      Outcome  `json:"outcome"`
	StoppingTime int      `json:"stopping_time"`
	Path         *Path    `json:"path,omitempty"`
}

// CompareRows orders rows by content: exponents, then the number used, then
// node, stopping time, steps and outcome.
func CompareRows(a, b Row) int {
	if c := slices.Compare(a.Exponents, b.Exponents); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Used, b.Used); c != 0 {
		return c
	}
	if c := a.Node.Cmp(b.Node); c != 0 {
		return c
	}
	if c := cmp.Compare(a.StoppingTime, b.StoppingTime); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Steps, b.Steps); c != 0 {
		return c
	}
	return cmp.Compare(a.Outcome, b.Outcome)
}

// Table is the outcome of one permutation search.
type Table struct {
	Stem      *big.Int `json:"stem"`
	Exponents []int    `json:"exponents"` // ascending

	// StemOutcome is Completed when a ladder can start from Stem. Otherwise it
	// is BranchlessStem or EndsAtR, StemNode holds the implied node and Rows is empty.
	StemOutcome Outcome  `json:"stem_outcome"`
	StemNode    *big.Int `json:"stem_node,omitempty"`

	Rows            []Row    `json:"rows"`
	Visited         int      `json:"visited"`   // distinct orderings evaluated
	Factorial       *big.Int `json:"factorial"` // k!
	Distinct        *big.Int `json:"distinct"`  // k! / prod(multiplicity!)
	MaxStoppingTime int      `json:"max_stopping_time"`
	Stats           Stats    `json:"stats"`
}

// Empty reports whether the search produced no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// K is the number of exponents searched.
func (t *Table) K() int {
	return len(t.Exponents)
}

// Longest returns the rows that performed the most valid divisions.
func (t *Table) Longest() []Row {
	var out []Row
	for _, r := range t.Rows {
		if r.Steps == t.Stats.LongestSteps {
			out = append(out, r)
		}
	}
	return out
}

// SearchOption configures Search.
type SearchOption func(*searchOptions)

type searchOptions struct {
	decode bool
}

// WithDecodedPaths decodes each row's terminal node back into a Path.
func WithDecodedPaths() SearchOption {
	return func(o *searchOptions) {
		o.decode = true
	}
}

// Search evaluates every distinct ordering of exponents from stem and returns
// the deduplicated, sorted table with its statistics. It is a pure function of
// its inputs; its cost grows as k!.
func Search(stem *big.Int, exponents []int, opts ...SearchOption) (*Table, error) {
	if err := checkInputs("search", stem, exponents); err != nil {
		return nil, err
	}
	var o searchOptions
	for _, opt := range opts {
		opt(&o)
	}

	sorted := slices.Clone(exponents)
	slices.Sort(sorted)
	k := len(sorted)

	tbl := &Table{
		Stem:      new(big.Int).Set(stem),
		Exponents: sorted,
		Factorial: Factorial(k),
		Distinct:  DistinctPermutations(sorted),
	}

	if class, node := classifyStem(stem); class != Completed {
		tbl.StemOutcome = class
		tbl.StemNode = node
		return tbl, nil
	}
	tbl.MaxStoppingTime = stoppingEstimate(stem, sorted)

	capacity := 1
	if tbl.Distinct.IsInt64() && tbl.Distinct.Int64() < 1<<16 {
		capacity = int(tbl.Distinct.Int64())
	}
	rows := make([]Row, 0, capacity)

	for perm := range Permutations(sorted) {
		res, err := Evaluate(stem, perm)
		if err != nil {
			return nil, err
		}
		padded := make([]int, k)
		copy(padded, res.Used)
		rows = append(rows, Row{
			Exponents:    padded,
			Used:         len(res.Used),
			Steps:        res.Steps,
			Node:         res.Node,
			Outcome:      res.Outcome,
			StoppingTime: res.StoppingTime(),
		})
		tbl.Visited++
	}

	// Orderings sharing the prefix consumed before an early stop produce equal
	// rows; compaction only merges neighbours, so sort first.
	slices.SortFunc(rows, CompareRows)
	rows = slices.CompactFunc(rows, func(a, b Row) bool {
		return CompareRows(a, b) == 0
	})

	if o.decode {
		for i := range rows {
			if rows[i].Node.Sign() <= 0 {
				continue
			}
			p, err := Decode(rows[i].Node)
			if err != nil {
				return nil, err
			}
			rows[i].Path = &p
		}
	}

	tbl.Rows = rows
	tbl.Stats = computeStats(rows)
	return tbl, nil
}
