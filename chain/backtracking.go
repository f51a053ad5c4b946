// SPDX-License-Identifier: MIT

package chain

// Backtracking computes the minimum multiplication cost of the whole chain p
// by trying every split recursively. Equivalent to BacktrackingRange(p, 1, n).
//
// Identical subchains are recomputed on every occurrence, so running time
// grows exponentially with n. Use Tabulation or DivideAndConquer for
// anything beyond a couple of dozen matrices.
func Backtracking(p []int64) (int64, error) {
	n, err := validateDimensions(p)
	if err != nil {
		return 0, chainErrorf("Backtracking", err)
	}

	c, err := backtrack(p, 1, n)
	if err != nil {
		return 0, chainErrorf("Backtracking", err)
	}

	return c, nil
}

// BacktrackingRange computes the minimum cost of the subchain Ai..Aj
// (1-indexed, inclusive) without memoization.
//
// Errors:
//   - ErrTooFewDimensions, ErrNonPositiveDimension — invalid p.
//   - ErrRangeOutOfBounds — not 1 ≤ i ≤ j ≤ n.
//   - ErrOverflow — some evaluated product or sum exceeds int64.
func BacktrackingRange(p []int64, i, j int) (int64, error) {
	n, err := validateDimensions(p)
	if err != nil {
		return 0, chainErrorf("BacktrackingRange", err)
	}
	if err = validateRange(n, i, j); err != nil {
		return 0, chainErrorf("BacktrackingRange", err)
	}

	c, err := backtrack(p, i, j)
	if err != nil {
		return 0, chainErrorf("BacktrackingRange", err)
	}

	return c, nil
}

// backtrack evaluates the recurrence for [i, j] with no caching.
func backtrack(p []int64, i, j int) (int64, error) {
	if i == j {
		return 0, nil // single matrix
	}

	best := int64(-1)
	for k := i; k < j; k++ {
		left, err := backtrack(p, i, k)
		if err != nil {
			return 0, err
		}
		right, err := backtrack(p, k+1, j)
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

	return best, nil
}
