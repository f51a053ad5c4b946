// Package chainorder answers one question about a product of matrices
// A1·A2·…·An: in which order should the pairwise multiplications happen so
// that the total number of scalar multiplications is minimal?
//
// 🚀 What is inside?
//
//	• chain/               — the cost recurrence and three strategies over it:
//	                         Tabulation (bottom-up DP), Backtracking (naive
//	                         recursion) and DivideAndConquer (memoized recursion),
//	                         plus dimension parsing and parenthesization recovery
//	• internal/form/       — request → result text, shared by every front end
//	• internal/tui/        — interactive terminal form
//	• internal/cli/        — `chainorder solve|compare|form|version`
//	• internal/config/     — chainorder.yaml + CHAINORDER_* overrides
//	• internal/logging/    — slog + tint logger
//
// ✨ Why three strategies?
//
//   - They return identical costs, so each cross-checks the others.
//   - Backtracking shows why the problem needs dynamic programming.
//   - Tabulation and DivideAndConquer reach O(n³) from opposite directions.
//
// Quick example:
//
//	p = [40, 20, 30, 10, 30]   // A1 40x20, A2 20x30, A3 30x10, A4 10x30
//	((A1(A2A3))A4)             // 26000 scalar multiplications
//
//	go install github.com/katalvlaran/chainorder/cmd/chainorder@latest
//	chainorder solve 40,20,30,10,30 --order
package chainorder
