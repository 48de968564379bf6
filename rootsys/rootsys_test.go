// Package rootsys_test verifies the E8 construction against the classical
// counts and the Weyl-reflection closure properties.
package rootsys_test

import (
	"testing"

	"github.com/katalvlaran/symplect/rootsys"
	"github.com/stretchr/testify/require"
)

// TestE8Counts checks 240 roots total: 112 integer + 128 spinor.
func TestE8Counts(t *testing.T) {
	s := rootsys.E8()
	require.Equal(t, 240, s.Len())
	require.Equal(t, 8, s.Dim())

	integer := s.SubsystemWhere(rootsys.IsIntegerRoot)
	require.Len(t, integer, 112)
	spinor := s.SubsystemWhere(func(r []int) bool { return !rootsys.IsIntegerRoot(r) })
	require.Len(t, spinor, 128)
}

// TestE8Norms checks every doubled root has squared length 8.
func TestE8Norms(t *testing.T) {
	s := rootsys.E8()
	for i := 0; i < s.Len(); i++ {
		d, err := s.Dot(i, i)
		require.NoError(t, err)
		require.Equal(t, 8, d, "root %d", i)
	}
}

// TestE8DotValues checks inner products of distinct non-antipodal roots
// stay in {0, ±4}; ±8 only on the diagonal and antipodes.
func TestE8DotValues(t *testing.T) {
	s := rootsys.E8()
	for i := 0; i < s.Len(); i++ {
		anti, err := s.Antipode(i)
		require.NoError(t, err)
		for j := 0; j < s.Len(); j++ {
			d, err := s.Dot(i, j)
			require.NoError(t, err)
			switch j {
			case i:
				require.Equal(t, 8, d)
			case anti:
				require.Equal(t, -8, d)
			default:
				require.Contains(t, []int{-4, 0, 4}, d, "dot(%d,%d)", i, j)
			}
		}
	}
}

// TestReflectIsInvolutivePermutation checks s_α² = id and bijectivity, and
// that reflections preserve inner products.
func TestReflectIsInvolutivePermutation(t *testing.T) {
	s := rootsys.E8()
	// A handful of representative roots: integer, spinor, first, last.
	for _, i := range []int{0, 57, 111, 112, 239} {
		perm, err := s.Reflect(i)
		require.NoError(t, err)
		require.Len(t, perm, s.Len())

		seen := make([]bool, s.Len())
		for j, img := range perm {
			require.False(t, seen[img], "reflection must be injective")
			seen[img] = true
			require.Equal(t, j, perm[img], "reflection must be an involution")
		}

		// α itself maps to −α.
		anti, err := s.Antipode(i)
		require.NoError(t, err)
		require.Equal(t, anti, perm[i])

		// Inner products are preserved on a sample.
		for a := 0; a < 20; a++ {
			for b := 0; b < 20; b++ {
				d1, _ := s.Dot(a, b)
				d2, _ := s.Dot(perm[a], perm[b])
				require.Equal(t, d1, d2)
			}
		}
	}
}

// TestSimpleRootsCartan checks the base yields a valid E8 Cartan matrix:
// 2 on the diagonal, {0, −1} off it, symmetric, exactly 7 diagram edges.
func TestSimpleRootsCartan(t *testing.T) {
	s := rootsys.E8()
	base, err := s.SimpleRoots()
	require.NoError(t, err)
	require.Len(t, base, 8)

	a, err := s.CartanMatrix(base)
	require.NoError(t, err)
	edges := 0
	for i := 0; i < 8; i++ {
		require.Equal(t, 2, a[i][i])
		for j := i + 1; j < 8; j++ {
			require.Equal(t, a[i][j], a[j][i])
			require.Contains(t, []int{0, -1}, a[i][j])
			if a[i][j] == -1 {
				edges++
			}
		}
	}
	require.Equal(t, 7, edges)
}

// TestPairs checks the 120 antipodal pairs partition the root set.
func TestPairs(t *testing.T) {
	s := rootsys.E8()
	pairs, err := s.Pairs()
	require.NoError(t, err)
	require.Len(t, pairs, 120)

	covered := make(map[int]bool)
	for _, p := range pairs {
		require.Less(t, p[0], p[1])
		anti, err := s.Antipode(p[0])
		require.NoError(t, err)
		require.Equal(t, p[1], anti)
		covered[p[0]] = true
		covered[p[1]] = true
	}
	require.Len(t, covered, 240)
}

// TestIndexOfRoundTrip checks root coordinates resolve to their index.
func TestIndexOfRoundTrip(t *testing.T) {
	s := rootsys.E8()
	for i := 0; i < s.Len(); i++ {
		r, err := s.Root(i)
		require.NoError(t, err)
		idx, ok := s.IndexOf(r)
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
	_, err := s.Root(240)
	require.ErrorIs(t, err, rootsys.ErrOutOfRange)
}
