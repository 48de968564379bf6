// Package gf_test contains black-box tests for prime-field scalar and
// vector arithmetic.
package gf_test

import (
	"testing"

	"github.com/katalvlaran/symplect/gf"
	"github.com/stretchr/testify/require"
)

// TestNewRejectsComposite ensures composite and undersized orders fail.
func TestNewRejectsComposite(t *testing.T) {
	for _, q := range []int{-1, 0, 1, 4, 6, 9, 12} {
		_, err := gf.New(q)
		require.ErrorIs(t, err, gf.ErrNotPrime, "order %d", q)
	}
}

// TestNewRejectsOversized ensures orders above MaxOrder fail.
func TestNewRejectsOversized(t *testing.T) {
	_, err := gf.New(17)
	require.ErrorIs(t, err, gf.ErrOrderTooLarge)
}

// TestScalarArithmetic verifies add/sub/mul/neg stay reduced in [0, q).
func TestScalarArithmetic(t *testing.T) {
	for _, q := range []int{2, 3, 5} {
		f, err := gf.New(q)
		require.NoError(t, err)
		for a := 0; a < q; a++ {
			for b := 0; b < q; b++ {
				ea, eb := gf.Element(a), gf.Element(b)
				require.Equal(t, gf.Element((a+b)%q), f.Add(ea, eb))
				require.Equal(t, f.Reduce(a-b), f.Sub(ea, eb))
				require.Equal(t, gf.Element((a*b)%q), f.Mul(ea, eb))
				require.NoError(t, f.Check(f.Add(ea, eb)))
			}
			require.Equal(t, gf.Element(0), f.Add(gf.Element(a), f.Neg(gf.Element(a))))
		}
	}
}

// TestInverse checks a·a⁻¹ = 1 for every nonzero element, and that zero fails.
func TestInverse(t *testing.T) {
	for _, q := range []int{2, 3, 5, 7} {
		f, err := gf.New(q)
		require.NoError(t, err)

		_, err = f.Inverse(0)
		require.ErrorIs(t, err, gf.ErrDivisionByZero)

		for a := 1; a < q; a++ {
			inv, err := f.Inverse(gf.Element(a))
			require.NoError(t, err)
			require.Equal(t, gf.Element(1), f.Mul(gf.Element(a), inv), "a=%d q=%d", a, q)
		}
	}
}

// TestReduceNegative verifies negative integers reduce into [0, q).
func TestReduceNegative(t *testing.T) {
	f, err := gf.New(5)
	require.NoError(t, err)
	require.Equal(t, gf.Element(4), f.Reduce(-1))
	require.Equal(t, gf.Element(0), f.Reduce(-10))
	require.Equal(t, gf.Element(3), f.Reduce(-7))
}

// TestNormalizeCanonical checks that scalar multiples normalize to the same
// representative with a leading 1.
func TestNormalizeCanonical(t *testing.T) {
	f, err := gf.New(3)
	require.NoError(t, err)

	v := gf.Vector{0, 2, 1, 2}
	n1, err := f.Normalize(v)
	require.NoError(t, err)
	require.Equal(t, gf.Element(1), n1[1], "first nonzero coordinate must be 1")

	// Every nonzero scalar multiple lands on the same point.
	for s := 1; s < 3; s++ {
		n2, err := f.Normalize(f.Scale(gf.Element(s), v))
		require.NoError(t, err)
		require.True(t, n1.Equal(n2), "scale %d", s)
	}
}

// TestNormalizeIdempotent checks normalize(normalize(v)) == normalize(v).
func TestNormalizeIdempotent(t *testing.T) {
	f, err := gf.New(5)
	require.NoError(t, err)

	v := gf.Vector{0, 0, 3, 4}
	once, err := f.Normalize(v)
	require.NoError(t, err)
	twice, err := f.Normalize(once)
	require.NoError(t, err)
	require.True(t, once.Equal(twice))
}

// TestNormalizeZeroVector ensures the all-zero vector is rejected.
func TestNormalizeZeroVector(t *testing.T) {
	f, err := gf.New(3)
	require.NoError(t, err)
	_, err = f.Normalize(gf.Vector{0, 0, 0, 0})
	require.ErrorIs(t, err, gf.ErrZeroVector)
}

// TestVectorKeyDistinguishesPoints checks Key is injective on reduced vectors.
func TestVectorKeyDistinguishesPoints(t *testing.T) {
	a := gf.Vector{1, 0, 2, 1}
	b := gf.Vector{1, 0, 2, 2}
	require.NotEqual(t, a.Key(), b.Key())
	require.Equal(t, a.Key(), a.Clone().Key())
}
