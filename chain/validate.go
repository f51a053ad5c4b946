// SPDX-License-Identifier: MIT
// Package chain - validation helpers shared by every strategy.
//
// Deterministic, side-effect free, allocation free. They return plain
// sentinels; public entry points tag them with chainErrorf.

package chain

// validateDimensions checks that p describes at least one matrix and that
// every dimension is strictly positive. It returns n, the number of matrices.
//
// Complexity: O(n).
func validateDimensions(p []int64) (int, error) {
	if len(p) < 2 {
		return 0, ErrTooFewDimensions
	}
	for _, d := range p {
		if d <= 0 {
			return 0, ErrNonPositiveDimension
		}
	}

	return len(p) - 1, nil
}

// validateRange checks 1 ≤ i ≤ j ≤ n for a 1-indexed inclusive subchain.
//
// Complexity: O(1).
func validateRange(n, i, j int) error {
	if i < 1 || j > n || i > j {
		return ErrRangeOutOfBounds
	}

	return nil
}
