// Package autom_test exercises form screening, group closure and orbit
// computation on W(3,2), whose full automorphism group Sp(4,2) has order 720.
package autom_test

import (
	"testing"

	"github.com/katalvlaran/symplect/autom"
	"github.com/katalvlaran/symplect/gf"
	"github.com/katalvlaran/symplect/polar"
	"github.com/stretchr/testify/require"
)

func buildSpace(t *testing.T, q int) (*polar.Space, *gf.Matrix) {
	t.Helper()
	s, err := polar.Build(polar.WithOrder(q))
	require.NoError(t, err)
	omega, err := polar.Omega(s.Field(), s.Dim())
	require.NoError(t, err)

	return s, omega
}

// TestPermutationBasics covers compose, inverse and validity.
func TestPermutationBasics(t *testing.T) {
	id := autom.Identity(4)
	require.True(t, id.IsValid())

	p := autom.Permutation{1, 2, 3, 0}
	q := autom.Permutation{3, 2, 1, 0}
	pq, err := p.Compose(q)
	require.NoError(t, err)
	// p∘q applies q first: 0→3→0, 1→2→3, 2→1→2, 3→0→1.
	require.True(t, pq.Equal(autom.Permutation{0, 3, 2, 1}))

	inv, err := p.Compose(p.Inverse())
	require.NoError(t, err)
	require.True(t, inv.Equal(id))

	_, err = p.Compose(autom.Permutation{0, 1})
	require.ErrorIs(t, err, autom.ErrSizeMismatch)

	require.False(t, autom.Permutation{0, 0, 1}.IsValid())
}

// TestVerifyFormAcceptsIdentityAndTransvections checks the form test.
func TestVerifyFormAcceptsIdentityAndTransvections(t *testing.T) {
	s, omega := buildSpace(t, 2)
	id, err := gf.Identity(s.Field(), s.Dim())
	require.NoError(t, err)
	require.NoError(t, autom.VerifyForm(id, omega))

	cands, err := autom.Transvections(s, omega)
	require.NoError(t, err)
	require.Len(t, cands, 15) // one point per transvection at q=2
	for i, c := range cands {
		require.NoError(t, autom.VerifyForm(c, omega), "transvection %d", i)
	}
}

// TestVerifyFormRejectsNonSymplectic ensures a non-form-preserving map fails.
func TestVerifyFormRejectsNonSymplectic(t *testing.T) {
	s, omega := buildSpace(t, 3)
	// Diagonal map x ↦ 2x scales the form by 4 ≡ 1 (mod 3)? No: by 2·2 = 4 ≡ 1.
	// Use a shear that is not symplectic instead: swap of e0 and e1 only.
	m, err := gf.NewMatrixFromRows(s.Field(), [][]int{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)
	require.ErrorIs(t, autom.VerifyForm(m, omega), autom.ErrNotFormPreserving)
}

// TestScreenDropsBadCandidates checks rejection is local, not fatal.
func TestScreenDropsBadCandidates(t *testing.T) {
	s, omega := buildSpace(t, 2)
	good, err := gf.Identity(s.Field(), s.Dim())
	require.NoError(t, err)
	bad, err := gf.NewMatrixFromRows(s.Field(), [][]int{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)

	gens, rejected, err := autom.Screen([]*gf.Matrix{good, bad}, omega, s)
	require.NoError(t, err)
	require.Len(t, gens, 1)
	require.Len(t, rejected, 1)
	require.Equal(t, 1, rejected[0].Index)
	require.ErrorIs(t, rejected[0].Reason, autom.ErrNotFormPreserving)
}

// TestCloseSp4q2 closes the transvection catalog of W(3,2) to Sp(4,2),
// order 720, and verifies every element preserves adjacency.
func TestCloseSp4q2(t *testing.T) {
	s, omega := buildSpace(t, 2)
	cands, err := autom.Transvections(s, omega)
	require.NoError(t, err)
	gens, rejected, err := autom.Screen(cands, omega, s)
	require.NoError(t, err)
	require.Empty(t, rejected)

	grp, err := autom.Close(gens)
	require.NoError(t, err)
	require.Equal(t, 720, grp.Order())
	require.True(t, grp.Contains(autom.Identity(15)))

	g := s.Graph()
	for _, p := range grp.Elements() {
		require.True(t, p.IsValid())
		for u := 0; u < g.N(); u++ {
			for v := u + 1; v < g.N(); v++ {
				require.Equal(t, g.Adjacent(u, v), g.Adjacent(p[u], p[v]))
			}
		}
	}
}

// TestOrbitStabilizer verifies |G| = |Orbit|·|Stabilizer| on vertices,
// edges and lines of W(3,2).
func TestOrbitStabilizer(t *testing.T) {
	s, omega := buildSpace(t, 2)
	cands, err := autom.Transvections(s, omega)
	require.NoError(t, err)
	gens, _, err := autom.Screen(cands, omega, s)
	require.NoError(t, err)
	grp, err := autom.Close(gens)
	require.NoError(t, err)

	// Vertex orbit: the group is transitive on the 15 points.
	res, err := grp.Orbit([]int{0})
	require.NoError(t, err)
	require.Len(t, res.Orbit, 15)
	require.Equal(t, 48, res.StabilizerOrder)

	// Edge orbit: transitive on the 45 edges.
	edge := s.Graph().Edges()[0]
	res, err = grp.Orbit([]int{edge[0], edge[1]})
	require.NoError(t, err)
	require.Len(t, res.Orbit, 45)
	require.Equal(t, 16, res.StabilizerOrder)

	// Line orbit: transitive on the 15 lines.
	res, err = grp.Orbit(s.Lines()[0])
	require.NoError(t, err)
	require.Len(t, res.Orbit, 15)
	require.Equal(t, 48, res.StabilizerOrder)
}

// TestCloseRejectsInvalidGenerator ensures defective input is fatal.
func TestCloseRejectsInvalidGenerator(t *testing.T) {
	_, err := autom.Close(nil)
	require.ErrorIs(t, err, autom.ErrSizeMismatch)

	_, err = autom.Close([]autom.Permutation{{0, 0, 1}})
	require.ErrorIs(t, err, autom.ErrInvariantMismatch)

	_, err = autom.Close([]autom.Permutation{{0, 1}, {0, 1, 2}})
	require.ErrorIs(t, err, autom.ErrSizeMismatch)
}
