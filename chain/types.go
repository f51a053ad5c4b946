// SPDX-License-Identifier: MIT

package chain

import "strings"

// Method selects the strategy used to evaluate the cost recurrence.
//
//   - MethodTabulation       — bottom-up table filled by increasing interval length.
//     Time: O(n³). Memory: O(n²).
//
//   - MethodBacktracking     — exhaustive recursion over every split, no caching.
//     Time: exponential in n. Memory: O(n) stack.
//
//   - MethodDivideAndConquer — top-down recursion with a per-call memo table.
//     Time: O(n³). Memory: O(n²).
type Method int

const (
	// MethodTabulation is bottom-up dynamic programming (see Tabulation).
	MethodTabulation Method = iota

	// MethodBacktracking is the naive recursive baseline (see Backtracking).
	MethodBacktracking

	// MethodDivideAndConquer is recursion with memoization (see DivideAndConquer).
	MethodDivideAndConquer
)

// Methods lists every supported strategy in display order.
var Methods = []Method{MethodTabulation, MethodBacktracking, MethodDivideAndConquer}

// String returns the display label of m.
func (m Method) String() string {
	switch m {
	case MethodTabulation:
		return "DP Tabulation"
	case MethodBacktracking:
		return "Backtracking"
	case MethodDivideAndConquer:
		return "Divide & Conquer"
	default:
		return "Unknown"
	}
}

// ParseMethod resolves a method name. Matching ignores case, surrounding
// spaces, and the separators ' ', '-', '_' and '&', so "DP Tabulation",
// "tabulation", "Divide & Conquer" and "divide-and-conquer" all resolve.
// Short aliases: "dp", "bt", "dc", "memo".
func ParseMethod(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "", "-", "", "_", "", "&", "and").Replace(key)

	switch key {
	case "dptabulation", "tabulation", "dp", "bottomup":
		return MethodTabulation, nil
	case "backtracking", "bt", "naive", "recursive":
		return MethodBacktracking, nil
	case "divideandconquer", "dc", "memo", "memoization", "topdown":
		return MethodDivideAndConquer, nil
	}

	return 0, chainErrorf("ParseMethod", ErrUnknownMethod)
}

// Options configures Solve.
//
// Fields:
//   - Method      — strategy used for the cost.
//   - ReturnOrder — if true, Solve also recovers an optimal parenthesization
//     and stores it in Result.Order.
type Options struct {
	Method      Method
	ReturnOrder bool
}

// DefaultOptions returns MethodTabulation without order recovery.
func DefaultOptions() Options {
	return Options{Method: MethodTabulation}
}

// Result holds the outcome of Solve.
type Result struct {
	// Method is the strategy that produced Cost.
	Method Method

	// Cost is the minimum number of scalar multiplications.
	Cost int64

	// Order is an optimal parenthesization such as "((A1(A2A3))A4)".
	// Empty unless Options.ReturnOrder was set.
	Order string
}
