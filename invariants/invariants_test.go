// Package invariants_test checks the degree, SRG and spectral invariants of
// the polar graphs against their known closed forms.
package invariants_test

import (
	"testing"

	"github.com/katalvlaran/symplect/invariants"
	"github.com/katalvlaran/symplect/polar"
	"github.com/stretchr/testify/require"
)

// TestSRGParametersQ3 verifies W(3,3) is SRG(40, 12, 2, 4).
func TestSRGParametersQ3(t *testing.T) {
	s, err := polar.Build(polar.WithOrder(3))
	require.NoError(t, err)

	srg, err := invariants.SRGParameters(s.Graph())
	require.NoError(t, err)
	require.Equal(t, invariants.SRG{N: 40, K: 12, Lambda: 2, Mu: 4}, srg)
}

// TestSRGParametersQ2 verifies W(3,2) is SRG(15, 6, 1, 3).
func TestSRGParametersQ2(t *testing.T) {
	s, err := polar.Build(polar.WithOrder(2))
	require.NoError(t, err)

	srg, err := invariants.SRGParameters(s.Graph())
	require.NoError(t, err)
	require.Equal(t, invariants.SRG{N: 15, K: 6, Lambda: 1, Mu: 3}, srg)
}

// TestDegreeSequenceRegular checks regularity for q ∈ {2, 3}.
func TestDegreeSequenceRegular(t *testing.T) {
	for _, q := range []int{2, 3} {
		s, err := polar.Build(polar.WithOrder(q))
		require.NoError(t, err)
		k, ok := invariants.IsRegular(s.Graph())
		require.True(t, ok, "q=%d", q)
		require.Equal(t, q*q+q, k, "q=%d", q)

		seq := invariants.DegreeSequence(s.Graph())
		require.Len(t, seq, s.Graph().N())
	}
}

// TestEigenvaluesQ3 checks the known spectrum of SRG(40,12,2,4):
// eigenvalue 12 (×1), 2 (×24), −4 (×15).
func TestEigenvaluesQ3(t *testing.T) {
	s, err := polar.Build(polar.WithOrder(3))
	require.NoError(t, err)

	eigs, err := invariants.Eigenvalues(s.Graph(), invariants.Options{Tolerance: 1e-8})
	require.NoError(t, err)
	require.Len(t, eigs, 3)

	// Ascending order: −4, 2, 12.
	require.InDelta(t, -4, eigs[0].Value, 1e-6)
	require.Equal(t, 15, eigs[0].Multiplicity)
	require.InDelta(t, 2, eigs[1].Value, 1e-6)
	require.Equal(t, 24, eigs[1].Multiplicity)
	require.InDelta(t, 12, eigs[2].Value, 1e-6)
	require.Equal(t, 1, eigs[2].Multiplicity)
}

// TestEigenvaluesQ2 checks the spectrum of SRG(15,6,1,3): 6, 1 (×9), −3 (×5).
func TestEigenvaluesQ2(t *testing.T) {
	s, err := polar.Build(polar.WithOrder(2))
	require.NoError(t, err)

	eigs, err := invariants.Eigenvalues(s.Graph(), invariants.Options{})
	require.NoError(t, err)
	require.Len(t, eigs, 3)
	require.InDelta(t, -3, eigs[0].Value, 1e-6)
	require.Equal(t, 5, eigs[0].Multiplicity)
	require.InDelta(t, 1, eigs[1].Value, 1e-6)
	require.Equal(t, 9, eigs[1].Multiplicity)
	require.InDelta(t, 6, eigs[2].Value, 1e-6)
	require.Equal(t, 1, eigs[2].Multiplicity)
}

// TestEulerCharacteristic checks alternating sums including empty input.
func TestEulerCharacteristic(t *testing.T) {
	require.Equal(t, 0, invariants.EulerCharacteristic(nil))
	require.Equal(t, 2, invariants.EulerCharacteristic([]int{4, 6, 4})) // tetrahedron boundary
	require.Equal(t, 0, invariants.EulerCharacteristic([]int{9, 27, 18})) // torus-like
	require.Equal(t, 1, invariants.EulerCharacteristic([]int{1}))
}
