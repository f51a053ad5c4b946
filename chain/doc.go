// SPDX-License-Identifier: MIT

// Package chain computes the minimum number of scalar multiplications needed
// to evaluate a product of matrices A1·A2·…·An, choosing only the order
// (parenthesization) in which the pairwise products are performed.
//
// 🚀 What is the matrix-chain problem?
//
//	A chain is described by a dimension sequence p[0..n]: matrix Ai has shape
//	p[i-1] x p[i]. Multiplying an a x b matrix by a b x c matrix costs a·b·c
//	scalar multiplications, and different groupings of the same chain can
//	differ in cost by orders of magnitude:
//
//	  p = [40, 20, 30, 10, 30]
//	  ((A1A2)A3)A4 → 24000 + 12000 + 12000 = 48000
//	  (A1(A2A3))A4 →  6000 +  8000 + 12000 = 26000  ← optimal
//
// ✨ Three strategies over one recurrence:
//
//	cost(i,i) = 0
//	cost(i,j) = min_{i≤k<j} cost(i,k) + cost(k+1,j) + p[i-1]·p[k]·p[j]
//
//   - Tabulation        — bottom-up DP by interval length.      O(n³) time, O(n²) memory.
//   - Backtracking      — plain recursion, no caching.           exponential time.
//   - DivideAndConquer  — top-down recursion with a memo table.  O(n³) time, O(n²) memory.
//
// All three return identical costs for the same input; Backtracking exists
// as the baseline the other two improve on.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/chainorder/chain"
//
//	p, err := chain.ParseDimensions("40, 20, 30, 10, 30")
//	if err != nil {
//	  // errors.Is(err, chain.ErrInvalidInput)
//	}
//
//	opts := chain.DefaultOptions()
//	opts.Method = chain.MethodDivideAndConquer
//	opts.ReturnOrder = true
//
//	res, err := chain.Solve(p, opts)
//	// res.Cost == 26000, res.Order == "((A1(A2A3))A4)"
//
// Arithmetic:
//
//	Every product and sum is checked against the int64 range. Overflow is
//	reported as ErrOverflow and never wraps.
//
// Errors:
//   - ErrInvalidInput (ErrMalformedInput, ErrTooFewDimensions, ErrNonPositiveDimension)
//   - ErrOverflow
//   - ErrRangeOutOfBounds
//   - ErrUnknownMethod
//
// See example_test.go for runnable examples.
package chain
