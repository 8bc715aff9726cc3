package ladder

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrow(t *testing.T) {
	tests := []struct {
		name  string
		stem  int64
		steps int
		used  []int
		node  string
	}{
		{"two steps from 16", 16, 2, []int{3, 2}, "17"},
		{"five steps from 16", 16, 5, []int{3, 2, 1, 1, 4}, "37"},
		{"trivial cycle from 4", 4, 4, []int{2, 2, 2, 2}, "1"},
		{"zero steps", 16, 0, nil, "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Grow(big.NewInt(tt.stem), tt.steps)
			require.NoError(t, err)

			assert.Equal(t, Completed, res.Outcome)
			assert.Equal(t, tt.used, res.Used)
			assert.Equal(t, tt.steps, res.Steps)
			assert.Equal(t, tt.node, res.Node.String())
		})
	}
}

func TestGrow_NeverStopsEarlyOnValidStem(t *testing.T) {
	for _, stem := range []int64{4, 7, 13, 16, 22, 40, 256, 1024} {
		res, err := Grow(big.NewInt(stem), 50)
		require.NoError(t, err)
		assert.Equal(t, Completed, res.Outcome, "stem %d", stem)
		assert.Equal(t, 50, res.Steps, "stem %d", stem)
		for _, e := range res.Used {
			assert.True(t, e >= 1 && e <= maxGrowExponent)
		}
	}
}

func TestGrow_StemClasses(t *testing.T) {
	res, err := Grow(big.NewInt(10), 3)
	require.NoError(t, err)
	assert.Equal(t, BranchlessStem, res.Outcome)

	res, err = Grow(big.NewInt(5), 3)
	require.NoError(t, err)
	assert.Equal(t, EndsAtR, res.Outcome)
}

func TestGrow_Errors(t *testing.T) {
	_, err := Grow(big.NewInt(16), -1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Grow(big.NewInt(0), 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Grow(big.NewInt(16), MaxExponentSum)
	assert.ErrorIs(t, err, ErrOverflow)
}
