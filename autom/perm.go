// Package autom discovers the automorphisms of a polar space: it screens a
// catalog of candidate linear maps for exact form preservation, induces the
// vertex permutations they define, and closes the accepted generators into
// the full permutation group by breadth-first composition. Orbits and
// stabilizers come with a mandatory orbit–stabilizer post-condition.
//
// Candidate rejection is local and non-fatal: a candidate that fails the
// form check or does not induce a well-defined vertex bijection is simply
// dropped from the catalog, with its reason recorded. Invariant failures
// (orbit–stabilizer, adjacency round-trip) are fatal: they signal a defect,
// never a data condition.
//
// Errors:
//
//	ErrNotFormPreserving  - candidate M fails MᵀΩM = Ω (candidate dropped).
//	ErrNotWellDefined     - candidate does not map vertices to vertices
//	                        bijectively (candidate dropped).
//	ErrSizeMismatch       - permutations over different vertex counts mixed.
//	ErrInvariantMismatch  - a required post-condition failed (fatal).
package autom

import "errors"

// Sentinel errors.
var (
	// ErrNotFormPreserving indicates a candidate fails MᵀΩM = Ω.
	ErrNotFormPreserving = errors.New("autom: candidate does not preserve the form")

	// ErrNotWellDefined indicates a candidate does not induce a vertex bijection.
	ErrNotWellDefined = errors.New("autom: candidate does not act on the vertex set")

	// ErrSizeMismatch indicates permutations over different domains were mixed.
	ErrSizeMismatch = errors.New("autom: permutation size mismatch")

	// ErrInvariantMismatch indicates a required post-condition failed.
	// Always fatal: it signals an implementation defect.
	ErrInvariantMismatch = errors.New("autom: invariant post-condition failed")
)

// Permutation is a bijection on 0..n-1: p[i] is the image of i.
type Permutation []int

// Identity returns the identity permutation on n points.
func Identity(n int) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// IsValid reports whether p is a bijection on its index range.
func (p Permutation) IsValid() bool {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}

// Compose returns p∘q: the permutation applying q first, then p.
func (p Permutation) Compose(q Permutation) (Permutation, error) {
	if len(p) != len(q) {
		return nil, ErrSizeMismatch
	}
	out := make(Permutation, len(p))
	for i := range q {
		out[i] = p[q[i]]
	}

	return out, nil
}

// Inverse returns p⁻¹.
func (p Permutation) Inverse() Permutation {
	out := make(Permutation, len(p))
	for i, v := range p {
		out[v] = i
	}

	return out
}

// Equal reports pointwise equality.
func (p Permutation) Equal(q Permutation) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string form for set membership in closures.
func (p Permutation) Key() string {
	buf := make([]byte, 0, len(p)*2)
	for _, v := range p {
		buf = append(buf, byte(v>>8), byte(v))
	}

	return string(buf)
}
