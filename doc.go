// Package hamcycle finds the cheapest closed tour through every vertex of a
// complete, weighted, directed graph.
//
// 🚀 What is hamcycle?
//
//	A small, dependency-light toolkit around one exact algorithm:
//		• matrix/: immutable N×N cost tables + the plain-text loader
//		• tsp/   : depth-first branch-and-bound search, Held–Karp cross-check,
//		            tour validation and rendering
//		• cli/   : the hamcycle command (flags, TOML config, prompt, output)
//
// ✨ Guarantees
//
//   - Exact: the returned tour is optimal, not a heuristic.
//   - Deterministic: ties keep the first minimal tour in ascending depth-first order.
//   - Quiet core: matrix/ and tsp/ never log and never panic on user input.
//
// Quick example (vertices are 0-based in the API, 1-based when printed):
//
//	m := matrix.MustNew([][]int{{0, 5}, {7, 0}})
//	tour, _ := tsp.FindMinimumCycle(m, 0)
//	fmt.Println(tour.Cost, tour) // 12 1 -> 2 -> 1
//
//	go install github.com/katalvlaran/hamcycle/cmd/hamcycle@latest
package hamcycle
