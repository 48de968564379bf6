package autom

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/symplect/gf"
	"github.com/katalvlaran/symplect/polar"
)

// VerifyForm checks MᵀΩM = Ω exactly over the field.
// Returns ErrNotFormPreserving on any deviation; no tolerance is involved,
// the arithmetic is exact. Complexity: O(d³).
func VerifyForm(m, omega *gf.Matrix) error {
	mt := gf.Transpose(m)
	left, err := gf.Mul(mt, omega)
	if err != nil {
		return err
	}
	left, err = gf.Mul(left, m)
	if err != nil {
		return err
	}
	if !left.Equal(omega) {
		return ErrNotFormPreserving
	}

	return nil
}

// Induce applies the linear map m to every projective point of s and
// returns the induced vertex permutation.
//
// Steps:
//  1. For each vertex, map its coordinates through m and normalize.
//  2. The image must be a vertex of the space (ErrNotWellDefined).
//  3. The induced map must be a bijection (ErrNotWellDefined).
//
// Complexity: O(n·d²).
func Induce(m *gf.Matrix, s *polar.Space) (Permutation, error) {
	n := s.Graph().N()
	perm := make(Permutation, n)
	hit := make([]bool, n)
	for v, p := range s.Points() {
		img, err := m.MulVec(p)
		if err != nil {
			return nil, err
		}
		idx, ok := s.IndexOf(img)
		if !ok {
			return nil, fmt.Errorf("vertex %d: %w", v, ErrNotWellDefined)
		}
		if hit[idx] {
			return nil, fmt.Errorf("vertex %d collides on %d: %w", v, idx, ErrNotWellDefined)
		}
		hit[idx] = true
		perm[v] = idx
	}

	return perm, nil
}

// preservesAdjacency checks adjacency(u,v) ⟺ adjacency(p(u),p(v)) for all pairs.
func preservesAdjacency(p Permutation, g *polar.Graph) bool {
	for u := 0; u < g.N(); u++ {
		for v := u + 1; v < g.N(); v++ {
			if g.Adjacent(u, v) != g.Adjacent(p[u], p[v]) {
				return false
			}
		}
	}

	return true
}

// Admit screens one candidate: form verification, induced permutation, and
// an adjacency round-trip on the result. A form-preserving map always
// preserves adjacency, so a round-trip failure is ErrInvariantMismatch
// (defect), not a rejection.
func Admit(m, omega *gf.Matrix, s *polar.Space) (Permutation, error) {
	if err := VerifyForm(m, omega); err != nil {
		return nil, err
	}
	perm, err := Induce(m, s)
	if err != nil {
		return nil, err
	}
	if !preservesAdjacency(perm, s.Graph()) {
		return nil, ErrInvariantMismatch
	}

	return perm, nil
}

// Rejection records a dropped candidate and the reason.
type Rejection struct {
	Index  int
	Reason error
}

// Screen admits every candidate in the catalog, collecting accepted
// generators and per-candidate rejections. Rejections are data, not
// failures; only an ErrInvariantMismatch aborts.
func Screen(cands []*gf.Matrix, omega *gf.Matrix, s *polar.Space) ([]Permutation, []Rejection, error) {
	gens := make([]Permutation, 0, len(cands))
	rejected := make([]Rejection, 0)
	for i, c := range cands {
		perm, err := Admit(c, omega, s)
		if err != nil {
			if errors.Is(err, ErrInvariantMismatch) {
				return nil, nil, fmt.Errorf("candidate %d: %w", i, err)
			}
			rejected = append(rejected, Rejection{Index: i, Reason: err})
			continue
		}
		gens = append(gens, perm)
	}

	return gens, rejected, nil
}

// Transvections builds the catalog of symplectic transvections of s:
//
//	T_{v,λ}(x) = x + λ·form(x, v)·v    for every point v, λ ∈ 1..q-1.
//
// Every transvection preserves the form, and together they generate the
// full symplectic group, which makes this the canonical generator catalog
// for Close. Matrix entries: M[j][i] = δ_ji + λ·form(e_i, v)·v_j.
func Transvections(s *polar.Space, omega *gf.Matrix) ([]*gf.Matrix, error) {
	f := s.Field()
	d := s.Dim()
	cands := make([]*gf.Matrix, 0, len(s.Points())*(f.Q()-1))
	for _, v := range s.Points() {
		// form(e_i, v) = e_iᵀ·Ω·v: one matrix-vector product per point.
		omegaV, err := omega.MulVec(v)
		if err != nil {
			return nil, err
		}
		for lam := 1; lam < f.Q(); lam++ {
			m, err := gf.Identity(f, d)
			if err != nil {
				return nil, err
			}
			for i := 0; i < d; i++ {
				coef := f.Mul(gf.Element(lam), omegaV[i])
				if coef == 0 {
					continue
				}
				for j := 0; j < d; j++ {
					cur, _ := m.At(j, i)
					_ = m.Set(j, i, f.Add(cur, f.Mul(coef, v[j])))
				}
			}
			cands = append(cands, m)
		}
	}

	return cands, nil
}
