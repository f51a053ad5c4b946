// SPDX-License-Identifier: MIT
// Package chain: sentinel error set.
//
// Every algorithm returns one of the sentinels below (possibly wrapped with a
// method tag) and tests match them via errors.Is. No function in this package
// panics on user-supplied input.

package chain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella for every "the caller gave us something we
// cannot compute on" condition. The more specific input sentinels wrap it, so
// errors.Is(err, ErrInvalidInput) holds for all of them.
var ErrInvalidInput = errors.New("chain: invalid input")

var (
	// ErrMalformedInput indicates the dimension text did not decompose into
	// integers (empty text, empty token, non-numeric token).
	ErrMalformedInput = fmt.Errorf("%w: malformed dimension list", ErrInvalidInput)

	// ErrTooFewDimensions indicates fewer than two dimension values, i.e. no matrix.
	ErrTooFewDimensions = fmt.Errorf("%w: need at least two dimensions", ErrInvalidInput)

	// ErrNonPositiveDimension indicates a dimension value <= 0.
	ErrNonPositiveDimension = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidInput)
)

var (
	// ErrOverflow indicates that a split product or an accumulated cost does
	// not fit in int64.
	ErrOverflow = errors.New("chain: cost exceeds int64 range")

	// ErrRangeOutOfBounds indicates a subchain range [i, j] outside 1 ≤ i ≤ j ≤ n.
	ErrRangeOutOfBounds = errors.New("chain: subchain range out of bounds")

	// ErrUnknownMethod indicates a Method value or name this package does not implement.
	ErrUnknownMethod = errors.New("chain: unknown method")
)

// chainErrorf tags err with the public entry point that produced it.
// The sentinel stays reachable through errors.Is.
func chainErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
