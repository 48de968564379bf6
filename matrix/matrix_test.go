// Package matrix_test contains black-box tests for the dense float64 kernels.
package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/symplect/matrix"
	"github.com/stretchr/testify/require"
)

// fill populates a Dense from row slices.
func fill(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// TestNewDenseInvalidDimensions ensures non-positive dimensions are rejected.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetBounds ensures indexers return ErrOutOfRange, never panic.
func TestAtSetBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone shares no storage.
func TestCloneIndependence(t *testing.T) {
	m := fill(t, [][]float64{{1, 0}, {0, 2}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}

// TestMulKnownProduct verifies a hand-computed 2×2 product.
func TestMulKnownProduct(t *testing.T) {
	a := fill(t, [][]float64{{1, 2}, {3, 4}})
	b := fill(t, [][]float64{{0, 1}, {1, 0}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	want := [][]float64{{2, 1}, {4, 3}}
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.Equal(t, want[i][j], v)
		}
	}
}

// TestMulDimensionMismatch ensures inner-dimension validation.
func TestMulDimensionMismatch(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestTransposeRoundTrip verifies (Aᵀ)ᵀ = A.
func TestTransposeRoundTrip(t *testing.T) {
	a := fill(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	back, err := matrix.Transpose(tr)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			av, _ := a.At(i, j)
			bv, _ := back.At(i, j)
			require.Equal(t, av, bv)
		}
	}
}

// TestRankTol covers full-rank, rank-deficient and zero matrices.
func TestRankTol(t *testing.T) {
	full := fill(t, [][]float64{{1, 0}, {0, 1}})
	r, err := matrix.RankTol(full, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 2, r)

	dep := fill(t, [][]float64{{1, 2}, {2, 4}})
	r, err = matrix.RankTol(dep, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 1, r)

	zero, _ := matrix.NewDense(3, 4)
	r, err = matrix.RankTol(zero, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 0, r)
}

// TestRankTolDoesNotMutate ensures elimination runs on a working copy.
func TestRankTolDoesNotMutate(t *testing.T) {
	m := fill(t, [][]float64{{1, 2}, {3, 4}})
	_, err := matrix.RankTol(m, 1e-9)
	require.NoError(t, err)
	v, _ := m.At(1, 0)
	require.Equal(t, 3.0, v)
}

// TestEigenDiagonal checks eigenvalues of a diagonal matrix are its entries.
func TestEigenDiagonal(t *testing.T) {
	m := fill(t, [][]float64{{3, 0}, {0, -1}})
	eigs, q, err := matrix.Eigen(m, 1e-10, 100)
	require.NoError(t, err)
	require.NotNil(t, q)
	sort.Float64s(eigs)
	require.InDelta(t, -1, eigs[0], 1e-9)
	require.InDelta(t, 3, eigs[1], 1e-9)
}

// TestEigenSymmetric checks a known 2×2 symmetric spectrum {1, 3}.
func TestEigenSymmetric(t *testing.T) {
	m := fill(t, [][]float64{{2, 1}, {1, 2}})
	eigs, _, err := matrix.Eigen(m, 1e-10, 100)
	require.NoError(t, err)
	sort.Float64s(eigs)
	require.InDelta(t, 1, eigs[0], 1e-9)
	require.InDelta(t, 3, eigs[1], 1e-9)
}

// TestEigenRejectsAsymmetric ensures asymmetry is detected up front.
func TestEigenRejectsAsymmetric(t *testing.T) {
	m := fill(t, [][]float64{{0, 1}, {2, 0}})
	_, _, err := matrix.Eigen(m, 1e-10, 100)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

// TestEigenRejectsNonSquare ensures the shape check fires first.
func TestEigenRejectsNonSquare(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	_, _, err := matrix.Eigen(m, 1e-10, 100)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestEigenvectorResidual checks A·v ≈ λ·v for each eigenpair.
func TestEigenvectorResidual(t *testing.T) {
	m := fill(t, [][]float64{{4, 1, 0}, {1, 4, 1}, {0, 1, 4}})
	eigs, q, err := matrix.Eigen(m, 1e-12, 300)
	require.NoError(t, err)
	n := 3
	for col := 0; col < n; col++ {
		for i := 0; i < n; i++ {
			var av float64
			for k := 0; k < n; k++ {
				mv, _ := m.At(i, k)
				qv, _ := q.At(k, col)
				av += mv * qv
			}
			qv, _ := q.At(i, col)
			require.True(t, math.Abs(av-eigs[col]*qv) < 1e-8)
		}
	}
}
