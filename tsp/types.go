package tsp

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/hamcycle/matrix"
)

var (
	// ErrEmptyMatrix is returned when the graph has no vertices, so no cycle exists.
	ErrEmptyMatrix = errors.New("tsp: empty cost matrix")

	// ErrInvalidStartVertex is returned when the start vertex is outside [0, n).
	ErrInvalidStartVertex = errors.New("tsp: start vertex out of range")

	// ErrTooManyVertices is returned when n exceeds what a solver can index.
	ErrTooManyVertices = errors.New("tsp: too many vertices")

	// ErrInvalidOptions is returned for a negative time limit or an unknown bound policy.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrInvalidTour is returned by ValidateTour and TourCost for a route that
	// is not a closed Hamiltonian cycle.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrTimeLimit is returned when Options.TimeLimit (or a context deadline)
	// expires before the search space is exhausted.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrCanceled is returned when the caller's context is canceled mid-search.
	ErrCanceled = errors.New("tsp: search canceled")
)

// MaxVertices is the largest order FindMinimumCycle accepts.
const MaxVertices = 64

// Tour is a closed Hamiltonian cycle and its total cost.
type Tour[W matrix.Weight] struct {
	// Cost is the sum of Route's consecutive edge costs, closing edge included.
	Cost W

	// Route holds n+1 vertex indices with Route[0] == Route[n] == start;
	// Route[0:n] is a permutation of 0..n-1.
	Route []int
}

// Stats counts what one branch-and-bound search did.
type Stats struct {
	Nodes        uint64 // recursive frames entered
	Pruned       uint64 // frames cut by the bound check
	Leaves       uint64 // complete tours whose closing edge was evaluated
	Improvements uint64 // leaves that became the new best tour
}

// Result is the outcome of Solve.
type Result[W matrix.Weight] struct {
	Tour  Tour[W]
	Stats Stats

	// Bound is the policy actually used; IncumbentBound is upgraded to
	// MinOutBound when the matrix has negative weights.
	Bound BoundPolicy
}

// BoundPolicy selects how a partial route is compared against the best tour.
// Every policy prunes only when a branch is strictly worse, so the returned
// tour is the same under all of them; only Stats differ.
type BoundPolicy int

const (
	// IncumbentBound prunes when the partial cost already exceeds the best
	// complete tour. It assumes non-negative weights.
	IncumbentBound BoundPolicy = iota

	// NoBound never prunes: plain exhaustive enumeration.
	NoBound

	// MinOutBound adds, for the current vertex and every unvisited vertex, its
	// cheapest outgoing edge to the partial cost. Admissible for any sign.
	MinOutBound
)

var boundNames = map[BoundPolicy]string{
	IncumbentBound: "incumbent",
	NoBound:        "none",
	MinOutBound:    "minout",
}

// String returns the policy's flag name.
func (b BoundPolicy) String() string {
	if s, ok := boundNames[b]; ok {
		return s
	}

	return fmt.Sprintf("BoundPolicy(%d)", int(b))
}

// ParseBoundPolicy maps a flag name ("incumbent", "none", "minout") to a policy.
func ParseBoundPolicy(s string) (BoundPolicy, error) {
	for b, name := range boundNames {
		if name == s {
			return b, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown bound policy %q", ErrInvalidOptions, s)
}

// Options tunes Solve. The zero value is valid: start at vertex 0,
// IncumbentBound, no time limit.
type Options struct {
	// StartVertex is the 0-based vertex the cycle starts and ends at.
	StartVertex int

	// Bound selects the pruning policy.
	Bound BoundPolicy

	// TimeLimit bounds the search wall time; 0 means unlimited.
	TimeLimit time.Duration
}

// DefaultOptions returns the options FindMinimumCycle uses.
func DefaultOptions() Options {
	return Options{
		StartVertex: 0,
		Bound:       IncumbentBound,
	}
}
