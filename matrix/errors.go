// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Shape failures wrap ErrMalformedInput; callers that only care about
// "the input cannot be solved as given" match that one sentinel.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingInput is returned when the designated input source does not exist.
	ErrMissingInput = errors.New("matrix: input not found")

	// ErrMalformedInput is the umbrella for every shape or content violation.
	ErrMalformedInput = errors.New("matrix: malformed input")

	// ErrNonSquare signals that the number of columns differs from the number of rows.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrMalformedInput)

	// ErrRagged signals rows of different lengths.
	ErrRagged = fmt.Errorf("%w: rows have different lengths", ErrMalformedInput)

	// ErrNaN signals a NaN weight; NaN has no ordering so no tour could be compared.
	ErrNaN = fmt.Errorf("%w: NaN weight", ErrMalformedInput)

	// ErrOutOfRange indicates a row or column index outside [0, N).
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// matrixErrorf wraps err with the failing operation and position.
func matrixErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("matrix.%s(%d,%d): %w", op, row, col, err)
}
