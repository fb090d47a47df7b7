// Package tsp - precondition checks shared by the solvers.
//
// Every failure here happens before any search starts; once these pass the
// solvers cannot fail except through cancellation.
package tsp

import (
	"github.com/katalvlaran/hamcycle/matrix"
)

// validateOptions checks Options without looking at the matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrInvalidOptions
	}
	if _, ok := boundNames[opts.Bound]; !ok {
		return ErrInvalidOptions
	}

	return nil
}

// validateMatrix returns the order of m after checking it is present, square
// and within limit. An empty matrix is ErrEmptyMatrix.
//
// Complexity: O(1).
func validateMatrix[W matrix.Weight](m *matrix.Matrix[W], limit int) (int, error) {
	if m == nil || !m.IsSquare() {
		return 0, matrix.ErrMalformedInput
	}
	var n = m.Order()
	if n < 1 {
		return 0, ErrEmptyMatrix
	}
	if n > limit {
		return 0, ErrTooManyVertices
	}

	return n, nil
}

// validateStartVertex verifies that start ∈ [0, n).
//
// Complexity: O(1).
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return ErrInvalidStartVertex
	}

	return nil
}
