// SPDX-License-Identifier: MIT

package chain

// DivideAndConquer computes the minimum multiplication cost of the whole
// chain p top-down, caching every resolved subchain in a memo table owned by
// this call. Equivalent to DivideAndConquerRange(p, 1, n).
//
// Complexity:
//
//	Time   = O(n³) (each of the O(n²) ranges is resolved once over O(n) splits)
//	Memory = O(n²)
func DivideAndConquer(p []int64) (int64, error) {
	n, err := validateDimensions(p)
	if err != nil {
		return 0, chainErrorf("DivideAndConquer", err)
	}

	c, err := resolve(p, 1, n, newTable(n, unsolved))
	if err != nil {
		return 0, chainErrorf("DivideAndConquer", err)
	}

	return c, nil
}

// DivideAndConquerRange computes the minimum cost of the subchain Ai..Aj
// (1-indexed, inclusive) with memoization.
//
// Errors:
//   - ErrTooFewDimensions, ErrNonPositiveDimension — invalid p.
//   - ErrRangeOutOfBounds — not 1 ≤ i ≤ j ≤ n.
//   - ErrOverflow — some evaluated product or sum exceeds int64.
func DivideAndConquerRange(p []int64, i, j int) (int64, error) {
	n, err := validateDimensions(p)
	if err != nil {
		return 0, chainErrorf("DivideAndConquerRange", err)
	}
	if err = validateRange(n, i, j); err != nil {
		return 0, chainErrorf("DivideAndConquerRange", err)
	}

	c, err := resolve(p, i, j, newTable(n, unsolved))
	if err != nil {
		return 0, chainErrorf("DivideAndConquerRange", err)
	}

	return c, nil
}

// resolve evaluates the recurrence for [i, j], consulting memo first.
// The minimum is stored after the split loop completes, whatever its value,
// so a resolved range is never evaluated twice.
func resolve(p []int64, i, j int, memo [][]int64) (int64, error) {
	if i == j {
		return 0, nil
	}
	if memo[i][j] != unsolved {
		return memo[i][j], nil
	}

	best := int64(-1)
	for k := i; k < j; k++ {
		left, err := resolve(p, i, k, memo)
		if err != nil {
			return 0, err
		}
		right, err := resolve(p, k+1, j, memo)
		if err != nil {
			return 0, err
		}
		c, err := splitCost(p, left, right, i, k, j)
		if err != nil {
			return 0, err
		}
		if best < 0 || c < best {
			best = c
		}
	}
	memo[i][j] = best

	return best, nil
}
