// Package tsp: Branch-and-Bound (exact depth-first search).
//
// FindMinimumCycle enumerates Hamiltonian cycles through a start vertex by
// depth-first search and abandons a branch as soon as it cannot beat the best
// complete tour found so far (the incumbent).
//
// Search outline (one call of step per frame):
//  1. Bound check: with a known incumbent, a frame whose bound is strictly
//     above it returns nothing. The bound is the partial cost
//     (IncumbentBound), nothing (NoBound), or the partial cost plus the
//     cheapest outgoing edge of every vertex that still has to leave
//     (MinOutBound).
//  2. Base case: no vertex left, close the cycle back to start. Only a total
//     strictly below the incumbent is an improvement.
//  3. Recursive case: try unvisited vertices in ascending index order. Every
//     improvement a child returns tightens the bound passed to the next
//     sibling, and the frame writes its own vertex in front of the child's route.
//
// The incumbent is a value: it is passed down as an argument and handed back
// up as a return value, never kept in shared state. Strict comparisons make
// ties keep the earlier tour, so the answer is the first minimal tour in
// ascending depth-first order, whatever the policy.
//
// Representation:
//   - unvisited is a uint64 bitmask; ascending order is TrailingZeros64 over it.
//   - The route is a single n+1 buffer filled back-to-front while the recursion
//     unwinds: a frame at depth d that accepts a candidate writes route[d].
//     Every improvement propagates to the root, so the buffer always ends up
//     holding exactly the final tour.
//
// Cancellation is cooperative: the context is polled every 4096 frames.
package tsp

import (
	"context"
	"errors"
	"fmt"
	"math/bits"

	"github.com/katalvlaran/hamcycle/matrix"
)

// pollMask sets how often the context is polled (every pollMask+1 frames).
const pollMask = 4095

// incumbent is the best complete-tour cost known to a frame.
// known == false means no complete tour has been found yet.
type incumbent[W matrix.Weight] struct {
	cost  W
	known bool
}

// improvedBy reports whether a complete tour of cost c replaces b.
func (b incumbent[W]) improvedBy(c W) bool { return !b.known || c < b.cost }

// exceededBy reports whether a lower bound lb rules out every completion.
func (b incumbent[W]) exceededBy(lb W) bool { return b.known && lb > b.cost }

// bbSearch holds the read-only inputs and the output buffer of one search.
type bbSearch[W matrix.Weight] struct {
	m     *matrix.Matrix[W]
	start int
	bound BoundPolicy

	minOut []W // per-vertex cheapest outgoing edge (MinOutBound only)

	route []int // n+1, written back-to-front
	stats Stats

	done  <-chan struct{}
	steps uint64
	stop  bool
}

// FindMinimumCycle returns the minimum-cost Hamiltonian cycle of m that starts
// and ends at start, using DefaultOptions.
//
// Preconditions are reported as errors before any search:
//   - matrix.ErrMalformedInput for a nil or non-square matrix,
//   - ErrEmptyMatrix for n == 0,
//   - ErrTooManyVertices for n > MaxVertices,
//   - ErrInvalidStartVertex for start ∉ [0, n).
//
// For n == 1 the result is the self-cycle [start, start] with cost 0.
func FindMinimumCycle[W matrix.Weight](m *matrix.Matrix[W], start int) (Tour[W], error) {
	opts := DefaultOptions()
	opts.StartVertex = start

	res, err := Solve(context.Background(), m, opts)
	if err != nil {
		return Tour[W]{}, err
	}

	return res.Tour, nil
}

// Solve runs the branch-and-bound search with explicit options and returns
// the tour together with search statistics.
//
// Errors: the preconditions of FindMinimumCycle, ErrInvalidOptions,
// ErrTimeLimit when opts.TimeLimit or a ctx deadline expires, and ErrCanceled
// (wrapping ctx.Err()) when ctx is canceled.
func Solve[W matrix.Weight](ctx context.Context, m *matrix.Matrix[W], opts Options) (Result[W], error) {
	if err := validateOptions(opts); err != nil {
		return Result[W]{}, err
	}
	n, err := validateMatrix(m, MaxVertices)
	if err != nil {
		return Result[W]{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return Result[W]{}, err
	}
	if err = interruption(ctx); err != nil {
		return Result[W]{}, err
	}

	policy := opts.Bound
	if policy == IncumbentBound && m.HasNegative() {
		policy = MinOutBound
	}

	if n == 1 {
		return Result[W]{
			Tour:  Tour[W]{Route: []int{opts.StartVertex, opts.StartVertex}},
			Stats: Stats{Nodes: 1, Leaves: 1, Improvements: 1},
			Bound: policy,
		}, nil
	}

	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	s := &bbSearch[W]{
		m:     m,
		start: opts.StartVertex,
		bound: policy,
		route: make([]int, n+1),
		done:  ctx.Done(),
	}
	if policy == MinOutBound {
		s.minOut = minOutgoing(m)
	}

	// Every vertex except start is still to be placed.
	var unvisited uint64
	if n == 64 {
		unvisited = ^uint64(0)
	} else {
		unvisited = uint64(1)<<uint(n) - 1
	}
	unvisited &^= 1 << uint(s.start)

	best, found := s.step(s.start, 0, 0, incumbent[W]{}, unvisited)
	if s.stop {
		return Result[W]{}, interruption(ctx)
	}
	if !found {
		// Unreachable for a complete graph: the first leaf always improves on
		// an unknown incumbent.
		return Result[W]{}, ErrInvalidTour
	}

	return Result[W]{
		Tour:  Tour[W]{Cost: best.cost, Route: s.route},
		Stats: s.stats,
		Bound: policy,
	}, nil
}

// step explores every completion of the partial route ending at from.
// It returns the improved incumbent and true when a tour strictly better than
// best was found below this frame (its route is then in s.route[depth:]), or
// best and false otherwise.
func (s *bbSearch[W]) step(from, depth int, acc W, best incumbent[W], unvisited uint64) (incumbent[W], bool) {
	s.stats.Nodes++
	if s.interrupted() {
		return best, false
	}

	// 1) Bound check.
	if s.bound != NoBound && best.exceededBy(s.lowerBound(from, acc, unvisited)) {
		s.stats.Pruned++

		return best, false
	}

	// 2) Base case: close the cycle.
	if unvisited == 0 {
		s.stats.Leaves++
		total := acc + s.m.At(from, s.start)
		if !best.improvedBy(total) {
			return best, false
		}
		s.stats.Improvements++
		s.route[depth] = from
		s.route[depth+1] = s.start

		return incumbent[W]{cost: total, known: true}, true
	}

	// 3) Recursive case: ascending vertex order.
	var (
		found bool
		rest  uint64
		v     int
	)
	for rest = unvisited; rest != 0; rest &= rest - 1 {
		v = bits.TrailingZeros64(rest)
		cand, ok := s.step(v, depth+1, acc+s.m.At(from, v), best, unvisited&^(1<<uint(v)))
		if s.stop {
			return best, false
		}
		if ok {
			best = cand
			s.route[depth] = from
			found = true
		}
	}

	return best, found
}

// lowerBound returns the policy's bound on any completion of the partial route.
// It is not consulted under NoBound.
func (s *bbSearch[W]) lowerBound(from int, acc W, unvisited uint64) W {
	switch s.bound {
	case MinOutBound:
		// Remaining edges: one out of from, one out of each unvisited vertex.
		lb := acc + s.minOut[from]
		for rest := unvisited; rest != 0; rest &= rest - 1 {
			lb += s.minOut[bits.TrailingZeros64(rest)]
		}

		return lb
	default:
		return acc
	}
}

// interrupted polls the context every pollMask+1 frames and latches s.stop.
func (s *bbSearch[W]) interrupted() bool {
	if s.stop {
		return true
	}
	s.steps++
	if s.done == nil || s.steps&pollMask != 0 {
		return false
	}
	select {
	case <-s.done:
		s.stop = true
	default:
	}

	return s.stop
}

// minOutgoing returns, for every vertex, its cheapest edge to another vertex.
//
// Complexity: O(n²).
func minOutgoing[W matrix.Weight](m *matrix.Matrix[W]) []W {
	var (
		n   = m.Order()
		out = make([]W, n)
		u   int
		v   int
		w   W
	)
	for u = 0; u < n; u++ {
		first := true
		for v = 0; v < n; v++ {
			if u == v {
				continue
			}
			w = m.At(u, v)
			if first || w < out[u] {
				out[u] = w
				first = false
			}
		}
	}

	return out
}

// interruption maps a done context to the package sentinels; nil if ctx is live.
func interruption(ctx context.Context) error {
	err := ctx.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeLimit
	default:
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
}
