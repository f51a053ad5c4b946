// SPDX-License-Identifier: MIT

package chain

import (
	"strconv"
	"strings"
)

// Parenthesize returns an optimal full parenthesization of the chain p, e.g.
// "((A1(A2A3))A4)" for p = [40, 20, 30, 10, 30]. A single matrix renders as
// "A1". When several splits reach the minimum, the leftmost one is used.
//
// Errors: same as Tabulation.
func Parenthesize(p []int64) (string, error) {
	n, err := validateDimensions(p)
	if err != nil {
		return "", chainErrorf("Parenthesize", err)
	}

	_, split, err := tabulate(p, n, true)
	if err != nil {
		return "", chainErrorf("Parenthesize", err)
	}

	var sb strings.Builder
	writeOrder(&sb, split, 1, n)

	return sb.String(), nil
}

// writeOrder renders the subchain [i, j] using the split table.
func writeOrder(sb *strings.Builder, split [][]int, i, j int) {
	if i == j {
		sb.WriteByte('A')
		sb.WriteString(strconv.Itoa(i))
		return
	}

	k := split[i][j]
	sb.WriteByte('(')
	writeOrder(sb, split, i, k)
	writeOrder(sb, split, k+1, j)
	sb.WriteByte(')')
}
