package ladder

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowString renders a row as "exponents used node stopping outcome".
func rowString(r Row) string {
	return fmt.Sprintf("%v %d %s %d %s", r.Exponents, r.Used, r.Node, r.StoppingTime, r.Outcome)
}

func rowStrings(tbl *Table) []string {
	out := make([]string, 0, len(tbl.Rows))
	for _, r := range tbl.Rows {
		out = append(out, rowString(r))
	}
	return out
}

func TestSearch_DistinctExponents(t *testing.T) {
	tbl, err := Search(big.NewInt(16), []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, tbl.Exponents)
	assert.Equal(t, Completed, tbl.StemOutcome)
	assert.Nil(t, tbl.StemNode)
	assert.Equal(t, 6, tbl.Visited)
	assert.Equal(t, "6", tbl.Factorial.String())
	assert.Equal(t, "6", tbl.Distinct.String())
	assert.Equal(t, 14, tbl.MaxStoppingTime)

	assert.Equal(t, []string{
		"[1 0 0] 1 3 7 branchless-stop",
		"[2 0 0] 1 20 8 invalid-stop",
		"[3 1 0] 2 26 11 invalid-stop",
		"[3 2 1] 3 11 14 completed",
	}, rowStrings(tbl))

	assert.Equal(t, Stats{
		Total:           4,
		Even:            2,
		Correct:         2,
		Completed:       1,
		BranchlessStops: 1,
		InvalidStops:    2,
		LongestSteps:    3,
	}, tbl.Stats)

	longest := tbl.Longest()
	require.Len(t, longest, 1)
	assert.Equal(t, []int{3, 2, 1}, longest[0].Exponents)
}

func TestSearch_RepeatedExponents(t *testing.T) {
	tbl, err := Search(big.NewInt(22), []int{2, 3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, 12, tbl.Visited)
	assert.Equal(t, "24", tbl.Factorial.String())
	assert.Equal(t, "12", tbl.Distinct.String())
	assert.Equal(t, []string{
		"[1 0 0 0] 1 14 7 invalid-stop",
		"[2 0 0 0] 1 9 8 branchless-stop",
		"[3 0 0 0] 1 56 9 invalid-stop",
	}, rowStrings(tbl))
	assert.Equal(t, 3, tbl.Stats.Total)
	assert.Equal(t, 2, tbl.Stats.Even)
	assert.Equal(t, 1, tbl.Stats.Correct)
}

func TestSearch_ZeroPaddingDoesNotMergeRealZeros(t *testing.T) {
	tbl, err := Search(big.NewInt(4), []int{0, 2})
	require.NoError(t, err)

	for i := 1; i < len(tbl.Rows); i++ {
		assert.NotZero(t, CompareRows(tbl.Rows[i-1], tbl.Rows[i]))
	}
	for _, r := range tbl.Rows {
		assert.LessOrEqual(t, r.Used, len(r.Exponents))
		for _, e := range r.Exponents[r.Used:] {
			assert.Zero(t, e)
		}
	}
}

func TestSearch_RowsUniqueAndSorted(t *testing.T) {
	inputs := []struct {
		stem int64
		exps []int
	}{
		{16, []int{1, 2, 3}},
		{16, []int{2, 2, 4}},
		{4, []int{2, 4, 6}},
		{22, []int{1, 2, 2, 3}},
		{40, []int{1, 1, 2, 2, 3, 5}},
		{256, []int{2, 2, 4, 4, 6, 1}},
	}

	for _, in := range inputs {
		t.Run(fmt.Sprint(in.stem, in.exps), func(t *testing.T) {
			tbl, err := Search(big.NewInt(in.stem), in.exps)
			require.NoError(t, err)

			assert.Equal(t, tbl.Distinct.Int64(), int64(tbl.Visited))
			for i := 1; i < len(tbl.Rows); i++ {
				assert.Negative(t, CompareRows(tbl.Rows[i-1], tbl.Rows[i]),
					"rows %d and %d out of order or duplicated", i-1, i)
			}
			assert.Equal(t, tbl.Stats.Total, len(tbl.Rows))
			assert.Equal(t, tbl.Stats.Total-tbl.Stats.Even, tbl.Stats.Correct)
		})
	}
}

func TestSearch_StemGuard(t *testing.T) {
	tests := []struct {
		name    string
		stem    int64
		outcome Outcome
		node    string
	}{
		{"branchless stem", 10, BranchlessStem, "3"},
		{"stem of one", 1, BranchlessStem, "0"},
		{"ends at R", 5, EndsAtR, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := Search(big.NewInt(tt.stem), []int{1, 1, 2})
			require.NoError(t, err)

			assert.True(t, tbl.Empty())
			assert.Equal(t, tt.outcome, tbl.StemOutcome)
			assert.Equal(t, tt.node, tbl.StemNode.String())
			assert.Zero(t, tbl.Visited)
			assert.Equal(t, Stats{}, tbl.Stats)
			assert.Equal(t, "3", tbl.Distinct.String())
		})
	}
}

func TestSearch_EmptyExponents(t *testing.T) {
	tbl, err := Search(big.NewInt(16), nil)
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, 1, tbl.Visited)
	r := tbl.Rows[0]
	assert.Equal(t, "5", r.Node.String())
	assert.Zero(t, r.Steps)
	assert.Empty(t, r.Exponents)
	assert.Equal(t, Completed, r.Outcome)
}

func TestSearch_Idempotent(t *testing.T) {
	a, err := Search(big.NewInt(40), []int{1, 1, 2, 2, 3, 5}, WithDecodedPaths())
	require.NoError(t, err)
	b, err := Search(big.NewInt(40), []int{1, 1, 2, 2, 3, 5}, WithDecodedPaths())
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestSearch_DecodedPathsRoundTrip(t *testing.T) {
	tbl, err := Search(big.NewInt(16), []int{1, 2, 3}, WithDecodedPaths())
	require.NoError(t, err)

	for _, r := range tbl.Rows {
		require.NotNil(t, r.Path, "row %s", rowString(r))
		res, err := Evaluate(r.Path.Stem, r.Path.Exponents)
		require.NoError(t, err)
		assert.Equal(t, 0, res.Node.Cmp(r.Node))
	}
}

func TestSearch_InvalidInput(t *testing.T) {
	_, err := Search(big.NewInt(0), []int{1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Search(big.NewInt(16), []int{1, -1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Search(big.NewInt(16), []int{2, math.MaxInt})
	assert.ErrorIs(t, err, ErrOverflow)
}
