// SPDX-License-Identifier: MIT
// Package matrix holds the cost table consumed by the tsp solvers.
//
// A Matrix[W] is an immutable N×N table of edge weights where At(i, j) is the
// cost of the directed edge i→j. Construction copies the caller's rows and
// validates the shape once, so the search can read entries without checks.
//
// What lives here:
//   - Weight: the numeric constraint (every Go integer and float kind).
//   - New / MustNew: validated construction from [][]W.
//   - IsSquare, Order, At, Cost, Row, Rows: read-only accessors.
//   - Decode / LoadFile: the plain-text format, one row per line with
//     whitespace-separated integers.
//
// Error policy:
//   - Only sentinels from errors.go; callers match them with errors.Is.
//   - ErrNonSquare, ErrRagged and ErrNaN all wrap ErrMalformedInput, so a
//     single errors.Is(err, ErrMalformedInput) covers every shape failure.
//   - A missing input file is ErrMissingInput.
//
// Example:
//
//	m, err := matrix.New([][]int{{0, 5}, {7, 0}})
//	if err != nil {
//		return err
//	}
//	w := m.At(1, 0) // 7
package matrix
