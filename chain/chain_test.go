package chain_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/chainorder/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solver is the common cost(p) contract shared by the three strategies.
type solver struct {
	name string
	fn   func(p []int64) (int64, error)
}

var solvers = []solver{
	{"Tabulation", chain.Tabulation},
	{"Backtracking", chain.Backtracking},
	{"DivideAndConquer", chain.DivideAndConquer},
}

// TestSolvers_KnownFixtures checks textbook chains against hand-computed costs.
func TestSolvers_KnownFixtures(t *testing.T) {
	cases := []struct {
		name string
		p    []int64
		want int64
	}{
		{"four_dims", []int64{1, 2, 3, 4}, 18},
		{"clrs_small", []int64{40, 20, 30, 10, 30}, 26000},
		{"two_matrices", []int64{10, 20, 30}, 6000},
		{"clrs_six", []int64{30, 35, 15, 5, 10, 20, 25}, 15125},
		{"square_chain", []int64{5, 5, 5, 5, 5}, 375},
	}

	for _, s := range solvers {
		for _, tc := range cases {
			t.Run(s.name+"/"+tc.name, func(t *testing.T) {
				got, err := s.fn(tc.p)
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

// TestSolvers_SingleMatrix verifies that n = 1 costs nothing.
func TestSolvers_SingleMatrix(t *testing.T) {
	for _, s := range solvers {
		got, err := s.fn([]int64{7, 9})
		require.NoError(t, err, s.name)
		assert.Zero(t, got, "%s: a single matrix needs no multiplication", s.name)
	}
}

// TestSolvers_InvalidInput verifies degenerate and non-positive chains.
func TestSolvers_InvalidInput(t *testing.T) {
	for _, s := range solvers {
		_, err := s.fn(nil)
		assert.ErrorIs(t, err, chain.ErrTooFewDimensions, s.name)
		assert.ErrorIs(t, err, chain.ErrInvalidInput, s.name)

		_, err = s.fn([]int64{4})
		assert.ErrorIs(t, err, chain.ErrTooFewDimensions, s.name)

		_, err = s.fn([]int64{4, 0, 3})
		assert.ErrorIs(t, err, chain.ErrNonPositiveDimension, s.name)
		assert.ErrorIs(t, err, chain.ErrInvalidInput, s.name)

		_, err = s.fn([]int64{4, 3, -2})
		assert.ErrorIs(t, err, chain.ErrNonPositiveDimension, s.name)
	}
}

// TestSolvers_Overflow verifies that oversized products surface ErrOverflow
// instead of a wrapped value.
func TestSolvers_Overflow(t *testing.T) {
	big := int64(1) << 31
	fixtures := [][]int64{
		{big, big, big, big},
		{math.MaxInt64, 2, 3},
		{1 << 21, 1 << 21, 1 << 21},
	}

	for _, s := range solvers {
		for _, p := range fixtures {
			got, err := s.fn(p)
			assert.ErrorIs(t, err, chain.ErrOverflow, "%s on %v", s.name, p)
			assert.NotErrorIs(t, err, chain.ErrInvalidInput)
			assert.Zero(t, got)
		}
	}
}

// TestSolvers_LargestFittingProduct checks the boundary right below overflow.
func TestSolvers_LargestFittingProduct(t *testing.T) {
	// 2^20 · 2^21 · 2^21 = 2^62 fits in int64.
	p := []int64{1 << 20, 1 << 21, 1 << 21}
	for _, s := range solvers {
		got, err := s.fn(p)
		require.NoError(t, err, s.name)
		assert.Equal(t, int64(1)<<62, got, s.name)
	}
}

// TestSolvers_CrossValidation runs all strategies on seeded random chains and
// requires identical answers.
func TestSolvers_CrossValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(9)
		p := make([]int64, n+1)
		for i := range p {
			p[i] = 1 + rng.Int63n(60)
		}

		want, err := chain.Tabulation(p)
		require.NoError(t, err)

		bt, err := chain.Backtracking(p)
		require.NoError(t, err)
		dc, err := chain.DivideAndConquer(p)
		require.NoError(t, err)

		assert.Equal(t, want, bt, "Backtracking disagrees on %v", p)
		assert.Equal(t, want, dc, "DivideAndConquer disagrees on %v", p)
	}
}

// TestSolvers_OrderSensitive shows that permuting dimensions changes the cost.
func TestSolvers_OrderSensitive(t *testing.T) {
	for _, s := range solvers {
		a, err := s.fn([]int64{1, 2, 3, 4})
		require.NoError(t, err)
		b, err := s.fn([]int64{2, 1, 3, 4})
		require.NoError(t, err)

		assert.Equal(t, int64(18), a)
		assert.Equal(t, int64(20), b)
		assert.NotEqual(t, a, b, s.name)
	}
}

// TestSolvers_Idempotent verifies repeated calls yield the same value and do
// not mutate the input.
func TestSolvers_Idempotent(t *testing.T) {
	p := []int64{30, 35, 15, 5, 10, 20, 25}
	orig := append([]int64(nil), p...)

	for _, s := range solvers {
		first, err := s.fn(p)
		require.NoError(t, err)
		for i := 0; i < 3; i++ {
			again, err := s.fn(p)
			require.NoError(t, err)
			assert.Equal(t, first, again, s.name)
		}
	}
	assert.Equal(t, orig, p, "input must stay untouched")
}

// TestRange_Subchains checks the 1-indexed inclusive range contract.
func TestRange_Subchains(t *testing.T) {
	p := []int64{40, 20, 30, 10, 30}
	ranged := map[string]func([]int64, int, int) (int64, error){
		"BacktrackingRange":     chain.BacktrackingRange,
		"DivideAndConquerRange": chain.DivideAndConquerRange,
	}

	for name, fn := range ranged {
		got, err := fn(p, 2, 4)
		require.NoError(t, err, name)
		assert.Equal(t, int64(12000), got, name)

		got, err = fn(p, 1, 3)
		require.NoError(t, err, name)
		assert.Equal(t, int64(14000), got, name)

		got, err = fn(p, 3, 3)
		require.NoError(t, err, name)
		assert.Zero(t, got, name)

		got, err = fn(p, 1, 4)
		require.NoError(t, err, name)
		assert.Equal(t, int64(26000), got, name)

		for _, r := range [][2]int{{0, 2}, {3, 2}, {1, 5}, {-1, -1}} {
			_, err = fn(p, r[0], r[1])
			assert.ErrorIs(t, err, chain.ErrRangeOutOfBounds, "%s %v", name, r)
		}

		_, err = fn([]int64{3}, 1, 1)
		assert.ErrorIs(t, err, chain.ErrTooFewDimensions, name)
	}
}
