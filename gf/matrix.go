package gf

import "errors"

// Sentinel errors for matrix construction and access.
var (
	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("gf: matrix dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("gf: matrix index out of range")

	// ErrShapeMismatch indicates incompatible operand dimensions.
	ErrShapeMismatch = errors.New("gf: matrix shape mismatch")

	// ErrFieldMismatch indicates operands built over different field orders.
	ErrFieldMismatch = errors.New("gf: field order mismatch")
)

// Matrix is a dense row-major matrix over GF(q). All access is
// bounds-checked; entries are always reduced residues.
type Matrix struct {
	f    Field
	r, c int
	data []Element
}

// NewMatrix creates an r×c zero matrix over f.
// Complexity: O(r·c).
func NewMatrix(f Field, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Matrix{f: f, r: rows, c: cols, data: make([]Element, rows*cols)}, nil
}

// NewMatrixFromRows creates a matrix from row slices, reducing every entry.
func NewMatrixFromRows(f Field, rows [][]int) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	m, err := NewMatrix(f, len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, ErrShapeMismatch
		}
		for j, v := range row {
			m.data[i*m.c+j] = f.Reduce(v)
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix over f.
func Identity(f Field, n int) (*Matrix, error) {
	m, err := NewMatrix(f, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// Field returns the field the matrix is built over.
func (m *Matrix) Field() Field { return m.f }

// At returns m[i,j], or ErrOutOfRange for invalid indices.
func (m *Matrix) At(i, j int) (Element, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set assigns m[i,j] = v (reduced), or ErrOutOfRange for invalid indices.
func (m *Matrix) Set(i, j int, v Element) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = m.f.Reduce(int(v))

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{f: m.f, r: m.r, c: m.c, data: make([]Element, len(m.data))}
	copy(out.data, m.data)

	return out
}

// Equal reports whether m and b have the same field, shape and entries.
func (m *Matrix) Equal(b *Matrix) bool {
	if b == nil || m.f.q != b.f.q || m.r != b.r || m.c != b.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Mul returns the product a×b over the common field.
// Fixed i→k→j loop order with zero-skip; deterministic.
// Complexity: O(r·n·c).
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.f.q != b.f.q {
		return nil, ErrFieldMismatch
	}
	if a.c != b.r {
		return nil, ErrShapeMismatch
	}
	res, err := NewMatrix(a.f, a.r, b.c)
	if err != nil {
		return nil, err
	}
	f := a.f
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if av == 0 {
				continue
			}
			for j := 0; j < b.c; j++ {
				idx := i*b.c + j
				res.data[idx] = f.Add(res.data[idx], f.Mul(av, b.data[k*b.c+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh matrix.
func Transpose(m *Matrix) *Matrix {
	out := &Matrix{f: m.f, r: m.c, c: m.r, data: make([]Element, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// MulVec returns m·x as a column vector.
func (m *Matrix) MulVec(x Vector) (Vector, error) {
	if len(x) != m.c {
		return nil, ErrShapeMismatch
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		acc := Element(0)
		for j := 0; j < m.c; j++ {
			acc = m.f.Add(acc, m.f.Mul(m.data[i*m.c+j], x[j]))
		}
		out[i] = acc
	}

	return out, nil
}

// Rank computes the rank of m by Gaussian elimination over GF(q).
// The input is not mutated; elimination runs on a working copy.
//
// Steps:
//  1. For each column, find the first nonzero pivot at or below the
//     current rank row; no pivot → next column.
//  2. Swap the pivot row up, scale it to a unit pivot, eliminate the
//     column everywhere else.
//
// Exact: no tolerance is involved. Complexity: O(r·c·min(r,c)).
func (m *Matrix) Rank() int {
	w := m.Clone()
	f := w.f
	rank := 0
	for col := 0; col < w.c && rank < w.r; col++ {
		// Find pivot.
		pivot := -1
		for i := rank; i < w.r; i++ {
			if w.data[i*w.c+col] != 0 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		// Swap pivot row into position.
		if pivot != rank {
			for j := 0; j < w.c; j++ {
				w.data[rank*w.c+j], w.data[pivot*w.c+j] = w.data[pivot*w.c+j], w.data[rank*w.c+j]
			}
		}
		// Scale the pivot row to a unit pivot.
		inv, err := f.Inverse(w.data[rank*w.c+col])
		if err != nil {
			continue // unreachable: pivot is nonzero
		}
		for j := col; j < w.c; j++ {
			w.data[rank*w.c+j] = f.Mul(w.data[rank*w.c+j], inv)
		}
		// Eliminate the column in every other row.
		for i := 0; i < w.r; i++ {
			if i == rank || w.data[i*w.c+col] == 0 {
				continue
			}
			factor := w.data[i*w.c+col]
			for j := col; j < w.c; j++ {
				w.data[i*w.c+j] = f.Sub(w.data[i*w.c+j], f.Mul(factor, w.data[rank*w.c+j]))
			}
		}
		rank++
	}

	return rank
}

// IsZero reports whether every entry of m is zero.
func (m *Matrix) IsZero() bool {
	for _, e := range m.data {
		if e != 0 {
			return false
		}
	}

	return true
}
