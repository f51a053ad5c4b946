// SPDX-License-Identifier: MIT
// Package chain - the interval cost recurrence.
//
//	cost(i,j) = min_{i≤k<j} cost(i,k) + cost(k+1,j) + p[i-1]·p[k]·p[j]
//
// splitCost is the only place the formula is written down. The bottom-up
// driver (tabulation.go) and both top-down drivers (backtracking.go, memo.go)
// call it for every (i, k, j) they visit, so all three evaluate exactly the
// same products and sums and therefore fail with ErrOverflow on exactly the
// same inputs.

package chain

import (
	"math"
	"math/bits"
)

// unsolved marks a memo cell that has not been resolved yet.
// Valid costs are never negative.
const unsolved int64 = -1

// splitCost returns left + right + p[i-1]·p[k]·p[j], where left and right are
// the already known costs of the subchains [i,k] and [k+1,j].
//
// Complexity: O(1).
func splitCost(p []int64, left, right int64, i, k, j int) (int64, error) {
	prod, err := mulChecked(p[i-1], p[k])
	if err != nil {
		return 0, err
	}
	if prod, err = mulChecked(prod, p[j]); err != nil {
		return 0, err
	}

	sum, err := addChecked(left, right)
	if err != nil {
		return 0, err
	}

	return addChecked(sum, prod)
}

// mulChecked multiplies two non-negative int64 values, reporting ErrOverflow
// instead of wrapping.
func mulChecked(a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(lo), nil
}

// addChecked adds two non-negative int64 values, reporting ErrOverflow
// instead of wrapping.
func addChecked(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrOverflow
	}

	return a + b, nil
}

// newTable allocates an (n+1)x(n+1) table with every cell set to fill.
// Row and column 0 are unused so indices match the 1-indexed matrices.
func newTable(n int, fill int64) [][]int64 {
	t := make([][]int64, n+1)
	for i := range t {
		t[i] = make([]int64, n+1)
		if fill != 0 {
			for j := range t[i] {
				t[i][j] = fill
			}
		}
	}

	return t
}
