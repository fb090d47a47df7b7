// Package tsp: tour utilities.
//
// Helpers that look only at the structure of a route:
//   - ValidateTour: Hamiltonian-cycle invariants for a closed route.
//   - Tour.String / Tour.OneBased: the human (1-based) rendering.
//   - Tour.Clone: an independent copy.
package tsp

import (
	"strconv"
	"strings"
)

// RouteSeparator joins vertices in Tour.String.
const RouteSeparator = " -> "

// ValidateTour enforces the closed-cycle invariants:
//
//	len(route) == n+1, route[0] == route[n] == start,
//	each vertex of [0, n) appears exactly once in route[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(route []int, n int, start int) error {
	if n <= 0 || len(route) != n+1 {
		return ErrInvalidTour
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if route[0] != start || route[n] != start {
		return ErrInvalidTour
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = route[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// OneBased returns Route with every index shifted by one.
func (t Tour[W]) OneBased() []int {
	out := make([]int, len(t.Route))
	for i, v := range t.Route {
		out[i] = v + 1
	}

	return out
}

// String renders the route 1-based, e.g. "1 -> 3 -> 2 -> 1".
// An empty route renders as "".
func (t Tour[W]) String() string {
	var b strings.Builder
	for i, v := range t.Route {
		if i > 0 {
			b.WriteString(RouteSeparator)
		}
		b.WriteString(strconv.Itoa(v + 1))
	}

	return b.String()
}

// Clone returns a copy of t that shares no memory with it.
func (t Tour[W]) Clone() Tour[W] {
	var route []int
	if t.Route != nil {
		route = append(make([]int, 0, len(t.Route)), t.Route...)
	}

	return Tour[W]{Cost: t.Cost, Route: route}
}
