// SPDX-License-Identifier: MIT

package matrix

import "math"

// Operation tags for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opEigen     = "Eigen"
	opRank      = "RankTol"
)

// Mul performs standard matrix multiplication C = A × B.
// Deterministic i→k→j loop order with zero-skip on A[i,k].
// Complexity: O(r·n·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrInvalidDimensions)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		rowA := i * a.c
		rowR := i * b.c
		for k := 0; k < a.c; k++ {
			av := a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB := k * b.c
			for j := 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a freshly allocated Dense.
// Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrInvalidDimensions)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[base+j]
		}
	}

	return res, nil
}

// RankTol computes the rank of m by Gaussian elimination with partial
// pivoting, treating any pivot with |pivot| ≤ tol as zero.
//
// Steps:
//  1. For each column, pick the row with the largest absolute entry at or
//     below the current rank row (partial pivot, deterministic ties: first).
//  2. If the best pivot is ≤ tol, the column contributes nothing; move on.
//  3. Otherwise swap it up and eliminate below.
//
// The input is not mutated. For integer-entried matrices (boundary
// operators) any tol well below 0.5 yields the exact integer rank because
// intermediate values stay rational with small denominators.
// Complexity: O(r·c·min(r,c)).
func RankTol(m *Dense, tol float64) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrInvalidDimensions)
	}
	if tol < 0 || math.IsNaN(tol) {
		return 0, matrixErrorf(opRank, ErrDimensionMismatch)
	}
	w := m.Clone()
	rank := 0
	for col := 0; col < w.c && rank < w.r; col++ {
		// Partial pivot: largest |entry| at or below the rank row.
		best, bestAbs := -1, tol
		for i := rank; i < w.r; i++ {
			if a := math.Abs(w.data[i*w.c+col]); a > bestAbs {
				best, bestAbs = i, a
			}
		}
		if best < 0 {
			continue
		}
		if best != rank {
			for j := 0; j < w.c; j++ {
				w.data[rank*w.c+j], w.data[best*w.c+j] = w.data[best*w.c+j], w.data[rank*w.c+j]
			}
		}
		pivot := w.data[rank*w.c+col]
		for i := rank + 1; i < w.r; i++ {
			factor := w.data[i*w.c+col] / pivot
			if factor == 0 {
				continue
			}
			for j := col; j < w.c; j++ {
				w.data[i*w.c+j] -= factor * w.data[rank*w.c+j]
			}
		}
		rank++
	}

	return rank, nil
}

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via
// Jacobi rotations with a deterministic largest-off-diagonal pivot scan.
//
// Inputs: m symmetric within tol; tol the convergence threshold
// (typ. 1e-9..1e-12); maxIter a safety cap on rotations.
// Returns the eigenvalues (diagonal of the rotated matrix, unsorted) and Q
// whose columns are the corresponding eigenvectors.
//
// Errors: ErrNonSquare, ErrAsymmetry, ErrEigenFailed (max off-diagonal
// still ≥ tol after maxIter rotations).
// Complexity: O(maxIter·n²) scan + O(n) per rotation, Space O(n²).
func Eigen(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if m == nil {
		return nil, nil, matrixErrorf(opEigen, ErrInvalidDimensions)
	}
	if m.r != m.c {
		return nil, nil, matrixErrorf(opEigen, ErrNonSquare)
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return nil, nil, matrixErrorf(opEigen, ErrAsymmetry)
			}
		}
	}

	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for i := 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	offMax := func() (float64, int, int) {
		var maxOff float64
		p, r := 0, 1
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if off := math.Abs(a.data[base+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}

		return maxOff, p, r
	}

	for iter := 0; iter < maxIter; iter++ {
		maxOff, p, r := offMax()
		if maxOff < tol {
			break
		}
		app, arr, apr := a.data[p*n+p], a.data[r*n+r], a.data[p*n+r]
		theta := (arr - app) / (2 * apr)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		for i := 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip, air := a.data[i*n+p], a.data[i*n+r]
			nip := c*aip - s*air
			nir := s*aip + c*air
			a.data[i*n+p], a.data[p*n+i] = nip, nip
			a.data[i*n+r], a.data[r*n+i] = nir, nir
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i := 0; i < n; i++ {
			qip, qir := q.data[i*n+p], q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if maxOff, _, _ := offMax(); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		eigs[i] = a.data[i*n+i]
	}

	return eigs, q, nil
}
