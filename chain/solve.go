// SPDX-License-Identifier: MIT
// Package chain - dispatcher over the three strategies.
//
// Solve is the single entry point front ends use: route on opts.Method with a
// plain switch, optionally recover the parenthesization.

package chain

// Solve validates p and computes its minimum multiplication cost with
// opts.Method. If opts.ReturnOrder is set, Result.Order carries an optimal
// parenthesization (recovered bottom-up regardless of the chosen method; the
// cost is the same for all three).
//
// Errors:
//   - ErrInvalidInput family — invalid p.
//   - ErrOverflow            — cost or an intermediate product exceeds int64.
//   - ErrUnknownMethod       — opts.Method is not one of Methods.
//
// Complexity: per method (see Tabulation, Backtracking, DivideAndConquer).
func Solve(p []int64, opts Options) (Result, error) {
	var (
		res = Result{Method: opts.Method}
		err error
	)

	switch opts.Method {
	case MethodTabulation:
		res.Cost, err = Tabulation(p)
	case MethodBacktracking:
		res.Cost, err = Backtracking(p)
	case MethodDivideAndConquer:
		res.Cost, err = DivideAndConquer(p)
	default:
		return Result{}, chainErrorf("Solve", ErrUnknownMethod)
	}
	if err != nil {
		return Result{}, chainErrorf("Solve", err)
	}

	if opts.ReturnOrder {
		if res.Order, err = Parenthesize(p); err != nil {
			return Result{}, chainErrorf("Solve", err)
		}
	}

	return res, nil
}
