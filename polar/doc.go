// Package polar constructs polar-space graphs over small prime fields: the
// points of projective 3-space (or any configured dimension) with adjacency
// given by a bilinear form, together with the totally isotropic lines.
//
// For the default symplectic form over GF(q) in dimension 4 this is the
// point graph of the generalized quadrangle W(3,q):
//
//	vertices  (q⁴−1)/(q−1)      projective points
//	adjacency form(p,r) = 0     p ≠ r
//	lines     (q+1)(q²+1)       maximal cliques of size q+1
//	degree    q² + q            regular
//
// Construction (see Build):
//  1. Enumerate all nonzero vectors of GF(q)^d, normalize each to its
//     canonical projective representative, deduplicate in enumeration order.
//  2. Adjacency: p ≠ r and form(p, r) = 0.
//  3. Lines: for every adjacent pair, form the 2-dimensional span (all q²
//     combinations a·p + b·r, normalized, deduplicated); accept the span iff
//     it holds exactly q+1 distinct points that are pairwise adjacent.
//     Duplicate spans are removed by their sorted point-set signature.
//
// The resulting Graph is immutable: a fixed vertex set 0..n-1 with a dense,
// bounds-checked adjacency table. Space bundles the graph with the point
// coordinates and the discovered lines.
//
// Errors:
//
//	ErrBadOrder     - field order is not a supported small prime.
//	ErrBadDimension - dimension is not a positive even number.
//	ErrNilForm      - a nil bilinear form was injected.
//	ErrOutOfRange   - vertex index outside 0..n-1.
//	ErrBadEdge      - a self-loop or out-of-range endpoint given to NewGraph.
package polar
