// SPDX-License-Identifier: MIT

package chain

// Tabulation computes the minimum multiplication cost of the chain p with
// bottom-up dynamic programming.
//
// Algorithm Outline:
//  1. n = len(p)-1. Allocate cost[0..n][0..n]; cost[i][i] = 0.
//  2. For L = 2..n (interval length):
//     For i = 1..n-L+1, j = i+L-1:
//     cost[i][j] = min over k in [i, j-1] of splitCost(cost[i][k], cost[k+1][j])
//  3. Return cost[1][n].
//
// Intervals are filled by increasing length, so both halves of every split
// are final before they are read.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²)
//
// Errors:
//   - ErrTooFewDimensions, ErrNonPositiveDimension — invalid p.
//   - ErrOverflow — some evaluated product or sum exceeds int64.
func Tabulation(p []int64) (int64, error) {
	n, err := validateDimensions(p)
	if err != nil {
		return 0, chainErrorf("Tabulation", err)
	}

	cost, _, err := tabulate(p, n, false)
	if err != nil {
		return 0, chainErrorf("Tabulation", err)
	}

	return cost[1][n], nil
}

// tabulate fills the cost table for a validated p. When withSplits is true it
// also records, for every (i, j), the leftmost split k achieving the minimum.
func tabulate(p []int64, n int, withSplits bool) ([][]int64, [][]int, error) {
	cost := newTable(n, 0)

	var split [][]int
	if withSplits {
		split = make([][]int, n+1)
		for i := range split {
			split[i] = make([]int, n+1)
		}
	}

	var (
		L, i, j, k int
		best, c    int64
		bestK      int
		err        error
	)
	for L = 2; L <= n; L++ { // interval length
		for i = 1; i <= n-L+1; i++ { // interval start
			j = i + L - 1
			best, bestK = -1, i
			for k = i; k < j; k++ { // split point
				c, err = splitCost(p, cost[i][k], cost[k+1][j], i, k, j)
				if err != nil {
					return nil, nil, err
				}
				if best < 0 || c < best {
					best, bestK = c, k
				}
			}
			cost[i][j] = best
			if withSplits {
				split[i][j] = bestK
			}
		}
	}

	return cost, split, nil
}
