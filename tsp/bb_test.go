// Package tsp_test validates the branch-and-bound solver.
// Focus:
//  1. Worked examples and the n = 1, 2 edge cases.
//  2. Optimality and tie-break against unpruned enumeration (n ≤ 7).
//  3. Route invariants and determinism.
//  4. Policy equivalence (NoBound / IncumbentBound / MinOutBound).
//  5. Precondition sentinels, time limit and cancellation.
package tsp_test

import (
	"context"
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/katalvlaran/hamcycle/tsp"
)

var allPolicies = []tsp.BoundPolicy{tsp.IncumbentBound, tsp.NoBound, tsp.MinOutBound}

func TestFindMinimumCycle_Classic4(t *testing.T) {
	tour, err := tsp.FindMinimumCycle(classic4(), 0)
	require.NoError(t, err)
	require.Equal(t, 80, tour.Cost)
	// 0→2→3→1→0 also costs 80 but is found later; ties never replace.
	require.Equal(t, []int{0, 1, 3, 2, 0}, tour.Route)
	require.Equal(t, "1 -> 2 -> 4 -> 3 -> 1", tour.String())
}

func TestFindMinimumCycle_TwoVertices(t *testing.T) {
	m := matrix.MustNew([][]int{{0, 5}, {7, 0}})

	tour, err := tsp.FindMinimumCycle(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, tour.Cost)
	assert.Equal(t, "1 -> 2 -> 1", tour.String())

	tour, err = tsp.FindMinimumCycle(m, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, tour.Cost)
	assert.Equal(t, []int{1, 0, 1}, tour.Route)
}

func TestFindMinimumCycle_SingleVertex(t *testing.T) {
	// The diagonal is never read, even when it is not zero.
	m := matrix.MustNew([][]int{{42}})
	tour, err := tsp.FindMinimumCycle(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, tour.Cost)
	assert.Equal(t, []int{0, 0}, tour.Route)
	assert.Equal(t, "1 -> 1", tour.String())
}

func TestFindMinimumCycle_MaxVertices(t *testing.T) {
	// Ring i→i+1 is free, every other edge costs 1: the first leaf is optimal
	// and the incumbent cuts every other branch after one edge.
	n := tsp.MaxVertices
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = make([]int, n)
		for j := range rows[i] {
			if i != j && j != (i+1)%n {
				rows[i][j] = 1
			}
		}
	}
	m := matrix.MustNew(rows)

	for _, start := range []int{0, n - 1} {
		tour, err := tsp.FindMinimumCycle(m, start)
		require.NoError(t, err)
		assert.Equal(t, 0, tour.Cost)
		require.NoError(t, tsp.ValidateTour(tour.Route, n, start))
		for k := 0; k < n; k++ {
			assert.Equal(t, (start+k)%n, tour.Route[k])
		}
	}
}

func TestFindMinimumCycle_Preconditions(t *testing.T) {
	_, err := tsp.FindMinimumCycle[int](nil, 0)
	require.ErrorIs(t, err, matrix.ErrMalformedInput)

	_, err = tsp.FindMinimumCycle(matrix.MustNew[int](nil), 0)
	require.ErrorIs(t, err, tsp.ErrEmptyMatrix)

	for _, start := range []int{-1, 4, 99} {
		_, err = tsp.FindMinimumCycle(classic4(), start)
		require.ErrorIs(t, err, tsp.ErrInvalidStartVertex, "start=%d", start)
	}

	big := make([][]int, tsp.MaxVertices+1)
	for i := range big {
		big[i] = make([]int, tsp.MaxVertices+1)
	}
	_, err = tsp.FindMinimumCycle(matrix.MustNew(big), 0)
	require.ErrorIs(t, err, tsp.ErrTooManyVertices)
}

func TestSolve_InvalidOptions(t *testing.T) {
	ctx := context.Background()

	_, err := tsp.Solve(ctx, classic4(), tsp.Options{TimeLimit: -time.Second})
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	_, err = tsp.Solve(ctx, classic4(), tsp.Options{Bound: tsp.BoundPolicy(42)})
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)
}

func TestFindMinimumCycle_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var n, start, trial int
	for n = 2; n <= maxBruteN; n++ {
		for trial = 0; trial < 6; trial++ {
			// Narrow range on odd trials to force many equal-cost tours.
			hi := 100
			if trial%2 == 1 {
				hi = 4
			}
			m := randomMatrix(rng, n, 0, hi)
			for start = 0; start < n; start++ {
				wantCost, wantRoute := bruteForce(t, m, start)
				tour, err := tsp.FindMinimumCycle(m, start)
				require.NoError(t, err)
				require.Equal(t, wantCost, tour.Cost, "n=%d trial=%d start=%d", n, trial, start)
				require.Equal(t, wantRoute, tour.Route, "tie-break n=%d trial=%d start=%d", n, trial, start)
				require.NoError(t, tsp.ValidateTour(tour.Route, n, start))

				got, err := tsp.TourCost(m, tour.Route)
				require.NoError(t, err)
				require.Equal(t, tour.Cost, got)
			}
		}
	}
}

func TestSolve_PoliciesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	ctx := context.Background()
	var n int
	for n = 3; n <= 8; n++ {
		m := randomMatrix(rng, n, 1, 30)

		results := make(map[tsp.BoundPolicy]tsp.Result[int], len(allPolicies))
		for _, b := range allPolicies {
			res, err := tsp.Solve(ctx, m, tsp.Options{StartVertex: n - 1, Bound: b})
			require.NoError(t, err, "policy=%s", b)
			require.Equal(t, b, res.Bound)
			results[b] = res
		}

		base := results[tsp.NoBound]
		for _, b := range allPolicies {
			assert.Equal(t, base.Tour, results[b].Tour, "n=%d policy=%s", n, b)
		}

		// Exhaustive enumeration visits every leaf; pruning only removes nodes.
		assert.Zero(t, base.Stats.Pruned)
		assert.Equal(t, factorial(n-1), base.Stats.Leaves)
		inc, mo := results[tsp.IncumbentBound].Stats, results[tsp.MinOutBound].Stats
		assert.LessOrEqual(t, inc.Nodes, base.Stats.Nodes)
		assert.LessOrEqual(t, mo.Nodes, inc.Nodes)
		assert.GreaterOrEqual(t, inc.Improvements, uint64(1))
	}
}

func TestSolve_NegativeWeightsUpgradeBound(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 2))
	var n int
	for n = 3; n <= maxBruteN; n++ {
		m := randomMatrix(rng, n, -20, 20)
		if !m.HasNegative() {
			continue
		}
		res, err := tsp.Solve(context.Background(), m, tsp.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, tsp.MinOutBound, res.Bound)

		wantCost, wantRoute := bruteForce(t, m, 0)
		assert.Equal(t, wantCost, res.Tour.Cost, "n=%d", n)
		assert.Equal(t, wantRoute, res.Tour.Route, "n=%d", n)
	}
}

func TestFindMinimumCycle_FloatWeights(t *testing.T) {
	m := matrix.MustNew([][]float64{
		{0, 1.5, 9, 2.25},
		{2, 0, 1.25, 8},
		{7, 3, 0, 0.5},
		{0.75, 6, 4, 0},
	})
	tour, err := tsp.FindMinimumCycle(m, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5+1.25+0.5+0.75, tour.Cost, 1e-12)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour.Route)

	// +Inf edges are simply never worth taking.
	inf := math.Inf(1)
	m = matrix.MustNew([][]float64{
		{0, inf, 1},
		{1, 0, inf},
		{inf, 1, 0},
	})
	tour, err = tsp.FindMinimumCycle(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, tour.Cost)
	assert.Equal(t, []int{0, 2, 1, 0}, tour.Route)
}

func TestFindMinimumCycle_Determinism(t *testing.T) {
	m := randomMatrix(rand.New(rand.NewSource(seedDet+3)), 9, 0, 5)
	first, err := tsp.FindMinimumCycle(m, 4)
	require.NoError(t, err)

	Repeat(t, 4, func(t *testing.T) {
		tour, err := tsp.FindMinimumCycle(m, 4)
		require.NoError(t, err)
		require.Equal(t, first, tour)
	})
}

func TestSolve_ResultDoesNotAlias(t *testing.T) {
	m := classic4()
	a, err := tsp.FindMinimumCycle(m, 0)
	require.NoError(t, err)
	a.Route[1] = 99

	b, err := tsp.FindMinimumCycle(m, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2, 0}, b.Route)
}

func TestSolve_TimeLimit(t *testing.T) {
	// 12! leaves without pruning cannot finish within a millisecond.
	m := randomMatrix(rand.New(rand.NewSource(seedDet+4)), 13, 1, 100)
	opts := tsp.Options{Bound: tsp.NoBound, TimeLimit: time.Millisecond}

	_, err := tsp.Solve(context.Background(), m, opts)
	require.ErrorIs(t, err, tsp.ErrTimeLimit)
}

func TestSolve_Canceled(t *testing.T) {
	m := randomMatrix(rand.New(rand.NewSource(seedDet+5)), 13, 1, 100)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := tsp.Solve(ctx, m, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrCanceled)
	require.ErrorIs(t, err, context.Canceled)

	ctx, cancel = context.WithCancel(context.Background())
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	_, err = tsp.Solve(ctx, m, tsp.Options{Bound: tsp.NoBound})
	require.ErrorIs(t, err, tsp.ErrCanceled)
}

func TestBoundPolicy_ParseAndString(t *testing.T) {
	for _, b := range allPolicies {
		got, err := tsp.ParseBoundPolicy(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, got)
	}
	_, err := tsp.ParseBoundPolicy("lagrangian")
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)
	assert.Equal(t, "BoundPolicy(9)", tsp.BoundPolicy(9).String())
}
