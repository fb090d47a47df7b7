// Package tsp: cost of an explicit route.
package tsp

import "github.com/katalvlaran/hamcycle/matrix"

// TourCost sums m.At(route[i], route[i+1]) over the route.
// The route must be a closed Hamiltonian cycle on m (see ValidateTour), with
// route[0] as its start. A single-vertex self-cycle costs zero; the diagonal
// is never read.
//
// Errors: matrix.ErrMalformedInput for a nil matrix, ErrInvalidTour for a
// route that does not fit m.
//
// Complexity: O(n).
func TourCost[W matrix.Weight](m *matrix.Matrix[W], route []int) (W, error) {
	var sum W
	if m == nil || !m.IsSquare() {
		return sum, matrix.ErrMalformedInput
	}
	if len(route) == 0 {
		return sum, ErrInvalidTour
	}
	if err := ValidateTour(route, m.Order(), route[0]); err != nil {
		return sum, ErrInvalidTour
	}
	if m.Order() == 1 {
		return sum, nil
	}

	var i int
	for i = 0; i+1 < len(route); i++ {
		sum += m.At(route[i], route[i+1])
	}

	return sum, nil
}
