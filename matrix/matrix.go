// SPDX-License-Identifier: MIT

// Package matrix provides the float64 dense kernels the invariant and
// homology pipelines need: row-major storage, multiplication, transpose,
// symmetric eigendecomposition (Jacobi), and row-reduction rank under an
// explicit tolerance.
//
// Design goals:
//   - Deterministic behavior: fixed loop and pivot-scan orders, no global
//     state, no randomness.
//   - Fail-fast validation: public indexers return sentinels, never panic.
//   - Explicit numeric policy: every comparison against zero goes through a
//     caller-supplied tolerance; there is no hidden epsilon.
//
// Exact arithmetic lives elsewhere: integer boundary matrices are ranked
// here via tolerance-guarded elimination, and cross-checked mod p by the
// gf package when exactness matters.
//
// Errors:
//
//	ErrInvalidDimensions - requested dimensions are non-positive.
//	ErrOutOfRange        - row/column index outside valid bounds.
//	ErrDimensionMismatch - incompatible operand shapes.
//	ErrNonSquare         - square input required.
//	ErrAsymmetry         - symmetric input required (within tolerance).
//	ErrEigenFailed       - Jacobi sweeps did not converge within maxIter.
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors. Tests match these via errors.Is; facades may wrap them
// once with fmt.Errorf("Op: %w", err) for context.
var (
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a symmetric matrix was required.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrEigenFailed indicates the Jacobi routine failed to converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)

// matrixErrorf wraps err with an operation tag, preserving errors.Is matching.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Dense is a row-major matrix of float64 values.
type Dense struct {
	r, c int       // rows and columns
	data []float64 // flat backing storage, length r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Complexity: O(r·c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns m[i,j], or ErrOutOfRange for invalid indices.
func (m *Dense) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}

	return m.data[i*m.c+j], nil
}

// Set assigns m[i,j] = v, or ErrOutOfRange for invalid indices.
func (m *Dense) Set(i, j int, v float64) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy sharing no storage with m.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}
