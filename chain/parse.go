// SPDX-License-Identifier: MIT

package chain

import (
	"strconv"
	"strings"
)

// dimensionSep separates values in a dimension list.
const dimensionSep = ","

// ParseDimensions turns free-form text such as "40, 20, 30, 10, 30" into a
// validated dimension sequence.
//
// Tokens are split on commas and trimmed of surrounding whitespace before
// base-10 parsing. The returned slice is freshly allocated.
//
// Errors (all wrap ErrInvalidInput):
//   - ErrMalformedInput       — empty text, empty token or non-integer token.
//   - ErrNonPositiveDimension — a value ≤ 0.
//   - ErrTooFewDimensions     — fewer than two values.
func ParseDimensions(text string) ([]int64, error) {
	if strings.TrimSpace(text) == "" {
		return nil, chainErrorf("ParseDimensions", ErrMalformedInput)
	}

	tokens := strings.Split(text, dimensionSep)
	p := make([]int64, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, chainErrorf("ParseDimensions", ErrMalformedInput)
		}
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, chainErrorf("ParseDimensions", ErrMalformedInput)
		}
		p = append(p, v)
	}

	if _, err := validateDimensions(p); err != nil {
		return nil, chainErrorf("ParseDimensions", err)
	}

	return p, nil
}

// FormatDimensions renders p in the form ParseDimensions accepts.
func FormatDimensions(p []int64) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, ", ")
}
