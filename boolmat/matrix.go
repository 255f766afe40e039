// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: sparse boolean matrix storage and elementwise/shape operations.
// Policy:
//   - No algorithm-specific logic here beyond elementwise boolean algebra
//     (Or, Mul, Kron, BlockDiag) — RowNormalize lives in rownormalize.go
//     since it encodes RPQ-specific semantics, not a
//     generic linear-algebra primitive.
package boolmat

import (
	"fmt"
	"sort"
)

// Matrix is a sparse boolean matrix in coordinate form: data[i] is the
// set of column indices j for which M[i,j] is true. A row absent from
// data is entirely false — this is how the "symbol absent from the
// mapping is equivalent to the zero matrix" invariant is
// realized at the storage layer.
type Matrix struct {
	rows, cols int
	data       map[int]map[int]struct{}
}

// wrapErr renders "boolmat.Method(i,j): boolmat: <sentinel>".
func wrapErr(method string, i, j int, err error) error {
	return fmt.Errorf("boolmat.%s(%d,%d): %w", method, i, j, err)
}

// New allocates an empty rows×cols boolean matrix (all entries false).
//
// Complexity: O(1) — the coordinate map starts empty and grows lazily.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	return &Matrix{rows: rows, cols: cols, data: make(map[int]map[int]struct{})}, nil
}

// MustNew is New without the error return, for callers that already
// validated rows/cols (e.g. internal constructors working from a known
// BooleanDecomposition.n). It panics on invalid shape, which indicates
// a programmer error, not a user-triggered one.
func MustNew(rows, cols int) *Matrix {
	m, err := New(rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Matrix {
	m := MustNew(n, n)
	for i := 0; i < n; i++ {
		m.setTrue(i, i)
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// At reports whether M[i,j] is true; out-of-range indices read as
// false. Only the mutating indexer (Set) returns sentinel errors.
func (m *Matrix) At(i, j int) bool {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return false
	}
	row, ok := m.data[i]
	if !ok {
		return false
	}
	_, ok = row[j]
	return ok
}

// Set assigns M[i,j] = v. Returns ErrOutOfRange for invalid indices.
//
// Complexity: O(1) amortized.
func (m *Matrix) Set(i, j int, v bool) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return wrapErr("Set", i, j, ErrOutOfRange)
	}
	if v {
		m.setTrue(i, j)
	} else {
		m.setFalse(i, j)
	}
	return nil
}

func (m *Matrix) setTrue(i, j int) {
	row, ok := m.data[i]
	if !ok {
		row = make(map[int]struct{})
		m.data[i] = row
	}
	row[j] = struct{}{}
}

func (m *Matrix) setFalse(i, j int) {
	row, ok := m.data[i]
	if !ok {
		return
	}
	delete(row, j)
	if len(row) == 0 {
		delete(m.data, i)
	}
}

// RowIndices returns the sorted set-column indices of row i. The
// returned slice is a fresh copy; callers may not mutate it back into
// the matrix.
func (m *Matrix) RowIndices(i int) []int {
	row, ok := m.data[i]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(row))
	for j := range row {
		out = append(out, j)
	}
	// Deterministic order, matching core.Graph's sorted-ID iteration
	// guarantee (core/methods_vertices.go).
	sort.Ints(out)
	return out
}

// Clone returns a deep, independent copy of m.
//
// Complexity: O(nnz(m)).
func (m *Matrix) Clone() *Matrix {
	out := MustNew(m.rows, m.cols)
	for i, row := range m.data {
		newRow := make(map[int]struct{}, len(row))
		for j := range row {
			newRow[j] = struct{}{}
		}
		out.data[i] = newRow
	}
	return out
}

// Equal reports whether m and other have identical dimensions and
// identical set entries.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	if m.NNZ() != other.NNZ() {
		return false
	}
	for i, row := range m.data {
		orow, ok := other.data[i]
		if !ok || len(orow) != len(row) {
			return false
		}
		for j := range row {
			if _, ok := orow[j]; !ok {
				return false
			}
		}
	}
	return true
}

// NNZ returns the number of true entries.
func (m *Matrix) NNZ() int {
	n := 0
	for _, row := range m.data {
		n += len(row)
	}
	return n
}

// Or returns the elementwise boolean OR of m and other. Both operands
// must share dimensions; otherwise ErrDimensionMismatch.
//
// Complexity: O(nnz(m) + nnz(other)).
func (m *Matrix) Or(other *Matrix) (*Matrix, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("boolmat.Or: %w", ErrDimensionMismatch)
	}
	out := m.Clone()
	out.orInPlace(other)
	return out, nil
}

// OrInPlace ORs other into m, mutating m. Used by the fixed-point
// drivers in rpq/cfpq so they can test "did anything change" without
// reallocating a fresh matrix every iteration.
func (m *Matrix) OrInPlace(other *Matrix) error {
	if m.rows != other.rows || m.cols != other.cols {
		return fmt.Errorf("boolmat.OrInPlace: %w", ErrDimensionMismatch)
	}
	m.orInPlace(other)
	return nil
}

func (m *Matrix) orInPlace(other *Matrix) {
	for i, row := range other.data {
		for j := range row {
			m.setTrue(i, j)
		}
	}
}

// Mul returns the boolean matrix product m·other: result[i,j] = OR_k
// (m[i,k] AND other[k,j]). Requires m.Cols() == other.Rows().
//
// Complexity: O(nnz(m) * avg-row-density(other)) in the worst case;
// sparse inputs make this far cheaper than the dense O(n^3) bound.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("boolmat.Mul: %w", ErrDimensionMismatch)
	}
	out := MustNew(m.rows, other.cols)
	for i, row := range m.data {
		for k := range row {
			orow, ok := other.data[k]
			if !ok {
				continue
			}
			for j := range orow {
				out.setTrue(i, j)
			}
		}
	}
	return out, nil
}

// Kron returns the Kronecker product a⊗b. The result is
// (a.rows*b.rows)×(a.cols*b.cols); entry at row i1*b.rows+i2, column
// j1*b.cols+j2 equals a[i1,j1] AND b[i2,j2].
//
// Complexity: O(nnz(a) * nnz(b)) — only the Cartesian
// product of a's and b's *set* entries is ever visited.
func Kron(a, b *Matrix) (*Matrix, error) {
	out := MustNew(a.rows*b.rows, a.cols*b.cols)
	for i1, row := range a.data {
		for j1 := range row {
			for i2, brow := range b.data {
				for j2 := range brow {
					out.setTrue(i1*b.rows+i2, j1*b.cols+j2)
				}
			}
		}
	}
	return out, nil
}

// BlockDiag stacks square matrices along the diagonal of a larger
// square matrix, zero elsewhere. Every input must be square;
// mixed-size blocks are fine, only squareness is required.
func BlockDiag(mats ...*Matrix) (*Matrix, error) {
	n := 0
	for _, mt := range mats {
		if mt.rows != mt.cols {
			return nil, fmt.Errorf("boolmat.BlockDiag: %w", ErrDimensionMismatch)
		}
		n += mt.rows
	}
	out := MustNew(n, n)
	offset := 0
	for _, mt := range mats {
		for i, row := range mt.data {
			for j := range row {
				out.setTrue(offset+i, offset+j)
			}
		}
		offset += mt.rows
	}
	return out, nil
}
