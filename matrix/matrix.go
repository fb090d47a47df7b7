// SPDX-License-Identifier: MIT
// Package matrix: the square cost table.
//
// Matrix[W] stores N×N weights in one flat row-major slice. The value is
// immutable after New returns, so a single *Matrix can be shared by any number
// of concurrent readers without locking.

package matrix

// Weight is the set of numeric types a cost table may hold.
// The solvers only need addition and ordering.
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is an immutable N×N table of directed edge costs.
// At(i, j) is the cost of the edge i→j.
type Matrix[W Weight] struct {
	n    int // order (rows == cols)
	data []W // row-major, len == n*n
}

// IsSquare reports whether every row of rows has exactly len(rows) entries.
// An empty table is square (N = 0).
//
// Complexity: O(N).
func IsSquare[W Weight](rows [][]W) bool {
	var n = len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return false
		}
	}

	return true
}

// New validates rows and copies them into a fresh Matrix.
//
// Contract:
//   - all rows share one length (else ErrRagged),
//   - that length equals the number of rows (else ErrNonSquare),
//   - no entry is NaN (else ErrNaN).
//
// Zero rows yield an empty matrix; the solvers reject it themselves.
//
// Complexity: O(N²) time and memory.
func New[W Weight](rows [][]W) (*Matrix[W], error) {
	var n = len(rows)
	if n > 0 {
		var width = len(rows[0])
		for i := 1; i < n; i++ {
			if len(rows[i]) != width {
				return nil, matrixErrorf("New", i, len(rows[i]), ErrRagged)
			}
		}
		if width != n {
			return nil, matrixErrorf("New", n, width, ErrNonSquare)
		}
	}

	var (
		data = make([]W, n*n)
		i, j int
		x    W
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x = rows[i][j]
			if x != x { // only NaN compares unequal to itself
				return nil, matrixErrorf("New", i, j, ErrNaN)
			}
			data[i*n+j] = x
		}
	}

	return &Matrix[W]{n: n, data: data}, nil
}

// MustNew is New for literals in tests and examples; it panics on error.
func MustNew[W Weight](rows [][]W) *Matrix[W] {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}

	return m
}

// Order returns N. A nil matrix has order 0.
func (m *Matrix[W]) Order() int {
	if m == nil {
		return 0
	}

	return m.n
}

// IsSquare reports whether the stored table is N×N.
// Always true for a Matrix built by New; false for nil or a zero value
// that was tampered with.
func (m *Matrix[W]) IsSquare() bool {
	return m != nil && len(m.data) == m.n*m.n
}

// At returns the cost of i→j without bounds checks.
// Callers must guarantee 0 ≤ i, j < Order().
//
// Complexity: O(1).
func (m *Matrix[W]) At(i, j int) W { return m.data[i*m.n+j] }

// Cost is the bounds-checked form of At.
//
// Complexity: O(1).
func (m *Matrix[W]) Cost(i, j int) (W, error) {
	var zero W
	if m == nil || i < 0 || i >= m.n || j < 0 || j >= m.n {
		return zero, matrixErrorf("Cost", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Row returns a copy of row i.
func (m *Matrix[W]) Row(i int) ([]W, error) {
	if m == nil || i < 0 || i >= m.n {
		return nil, matrixErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]W, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out, nil
}

// Rows returns a deep copy of the table as [][]W.
//
// Complexity: O(N²).
func (m *Matrix[W]) Rows() [][]W {
	var n = m.Order()
	out := make([][]W, n)
	for i := 0; i < n; i++ {
		out[i] = make([]W, n)
		copy(out[i], m.data[i*n:(i+1)*n])
	}

	return out
}

// HasNegative reports whether any off-diagonal weight is below zero.
// The diagonal is never read by a tour of length ≥ 2, so it is ignored.
//
// Complexity: O(N²).
func (m *Matrix[W]) HasNegative() bool {
	var (
		n    = m.Order()
		zero W
	)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && m.data[i*n+j] < zero {
				return true
			}
		}
	}

	return false
}
