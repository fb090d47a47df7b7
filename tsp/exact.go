package tsp

import "github.com/katalvlaran/hamcycle/matrix"

// HeldKarpMaxVertices is the largest order HeldKarp accepts; the tables grow as n·2ⁿ.
const HeldKarpMaxVertices = 16

// HeldKarp solves the same problem as FindMinimumCycle with the Held–Karp
// dynamic-programming algorithm. It shares no code with the search and is
// meant as an independent cross-check of the optimal cost; among several
// optimal tours it may return a different one than FindMinimumCycle.
//
// The returned Tour starts and ends at start, len(Route) == n+1.
//
// Time complexity:  O(n² · 2ⁿ)
// Memory complexity: O(n · 2ⁿ)
//
// Subsets are bitmasks over 0…n-1 that always contain start.
// dp[mask][j] = minimum cost to leave start, visit exactly the vertices in
// mask, and stop at j. After filling dp we close the tour from j back to start.
func HeldKarp[W matrix.Weight](m *matrix.Matrix[W], start int) (Tour[W], error) {
	n, err := validateMatrix(m, HeldKarpMaxVertices)
	if err != nil {
		return Tour[W]{}, err
	}
	if err = validateStartVertex(n, start); err != nil {
		return Tour[W]{}, err
	}
	if n == 1 {
		return Tour[W]{Route: []int{start, start}}, nil
	}

	var (
		size      = 1 << n
		allMask   = size - 1
		startMask = 1 << start
	)

	// --- 1. Allocate flat DP tables; reach marks cells that hold a real cost ---
	dp := make([]W, size*n)
	reach := make([]bool, size*n)
	parent := make([]int, size*n)
	at := func(mask, j int) int { return mask*n + j }

	reach[at(startMask, start)] = true

	// --- 2. Fill DP for all masks that include start, in increasing order ---
	var (
		mask, prevMask int
		j, k           int
		cand           W
	)
	for mask = startMask; mask <= allMask; mask++ {
		if mask&startMask == 0 {
			continue
		}
		for j = 0; j < n; j++ {
			if j == start || mask&(1<<j) == 0 {
				continue // j must be a non-start member of mask
			}
			prevMask = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prevMask&(1<<k) == 0 || !reach[at(prevMask, k)] {
					continue
				}
				cand = dp[at(prevMask, k)] + m.At(k, j)
				if !reach[at(mask, j)] || cand < dp[at(mask, j)] {
					dp[at(mask, j)] = cand
					reach[at(mask, j)] = true
					parent[at(mask, j)] = k
				}
			}
		}
	}

	// --- 3. Close the tour back to start ---
	var (
		best  W
		last  = -1
		total W
	)
	for j = 0; j < n; j++ {
		if j == start || !reach[at(allMask, j)] {
			continue
		}
		total = dp[at(allMask, j)] + m.At(j, start)
		if last < 0 || total < best {
			best = total
			last = j
		}
	}

	// --- 4. Reconstruct the route from the parent table ---
	route := make([]int, n+1)
	route[0], route[n] = start, start
	mask = allMask
	j = last
	for i := n - 1; i >= 1; i-- {
		route[i] = j
		k = parent[at(mask, j)]
		mask ^= 1 << j
		j = k
	}

	return Tour[W]{Cost: best, Route: route}, nil
}
