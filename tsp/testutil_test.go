// Package tsp_test helpers shared across *_test.go files: deterministic random
// cost tables and an unpruned reference enumeration.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/hamcycle/matrix"
)

const (
	// seedDet is the base seed for random instances; every run sees the same tables.
	seedDet = int64(20240601)

	// maxBruteN bounds reference enumeration: (n-1)! tours per start.
	maxBruteN = 7
)

// classic4 is the worked 4-city example: optimum 80 via 1 -> 2 -> 4 -> 3 -> 1,
// with its reverse as an equal-cost alternative found later.
func classic4() *matrix.Matrix[int] {
	return matrix.MustNew([][]int{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
}

// randomMatrix returns an n×n table with off-diagonal weights in [lo, hi)
// and zeros on the diagonal. A narrow range makes ties common.
func randomMatrix(rng *rand.Rand, n, lo, hi int) *matrix.Matrix[int] {
	rows := make([][]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]int, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = lo + rng.Intn(hi-lo)
			}
		}
	}

	return matrix.MustNew(rows)
}

// bruteForce enumerates every tour through start in lexicographic order of
// the interior and keeps the first one of minimum cost. It prunes nothing.
func bruteForce(t *testing.T, m *matrix.Matrix[int], start int) (int, []int) {
	t.Helper()
	n := m.Order()
	if n > maxBruteN {
		t.Fatalf("bruteForce: n=%d exceeds %d", n, maxBruteN)
	}

	var (
		used      = make([]bool, n)
		perm      = make([]int, 0, n+1)
		best      int
		bestRoute []int
		known     bool
		walk      func()
	)
	used[start] = true
	perm = append(perm, start)

	walk = func() {
		if len(perm) == n {
			route := append(append([]int(nil), perm...), start)
			cost := 0
			for i := 0; i+1 < len(route); i++ {
				cost += m.At(route[i], route[i+1])
			}
			if !known || cost < best {
				best, bestRoute, known = cost, route, true
			}

			return
		}
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			used[v] = true
			perm = append(perm, v)
			walk()
			perm = perm[:len(perm)-1]
			used[v] = false
		}
	}
	walk()

	return best, bestRoute
}

// factorial returns k! for the small k used in leaf-count checks.
func factorial(k int) uint64 {
	var f uint64 = 1
	for i := 2; i <= k; i++ {
		f *= uint64(i)
	}

	return f
}

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}
