// Package tsp finds minimum-cost Hamiltonian cycles on complete directed graphs.
//
// The graph is a matrix.Matrix[W]: every ordered pair (i, j), i≠j, has a cost.
// Two exact solvers are provided:
//
//   - FindMinimumCycle / Solve: depth-first branch-and-bound. Candidates are
//     tried in ascending vertex order, the best complete tour found so far is
//     the pruning threshold, and only a strictly cheaper tour replaces it, so
//     the first minimal tour in depth-first order is returned.
//     O((n−1)!) worst case, O(n) memory, n ≤ 64 (uint64 bitmask).
//   - HeldKarp: bitmask dynamic programming, used as an independent check.
//     O(n²·2ⁿ) time and O(n·2ⁿ) memory, n ≤ 16.
//
// Tours are closed: for n vertices Route has n+1 entries and starts and ends at
// the start vertex. Vertices are 0-based in the API; Tour.String renders them
// 1-based ("1 -> 3 -> 2 -> 1") for people.
//
// The package never logs and never panics on user input; failures are the
// sentinels in types.go (plus matrix.ErrMalformedInput for shape errors).
package tsp
