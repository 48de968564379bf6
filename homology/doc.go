// Package homology computes simplicial homology of the clique complex a
// polar graph generates: Betti numbers, Euler characteristic consistency,
// and a fundamental-group presentation.
//
// # Model
//
// BuildComplex takes a graph plus its lines (maximal cliques of uniform
// size) and produces the downward-closed simplicial complex: vertices,
// edges, triangles, the lines as top cells, and every face in between.
// Cells of each dimension are sorted by a fixed total order (ascending
// vertex lists, lexicographic), so boundary matrices are deterministic.
//
// # Boundary operators
//
// ∂k maps k-cells to (k-1)-cells with the alternating-sum convention:
// column σ has entry (-1)^i in the row of the face dropping σ's i-th
// vertex. Operators exist in two forms: float64 (matrix.Dense) and mod-p
// (gf.Matrix) for exact ranks. The chain-complex identity ∂k∘∂k+1 = 0 is
// verified at construction; a violation is ErrInvariantMismatch, fatal.
//
// # Betti numbers
//
// b0 is the connected-component count (union-find over the 1-skeleton);
// bk = dim ker ∂k − rank ∂k+1 for k ≥ 1. The alternating sum of cell
// counts must equal the alternating sum of Betti numbers (the Euler
// characteristic, two ways); a mismatch is ErrInvariantMismatch.
//
// # Fundamental group
//
// FundamentalGroup presents π1 of a connected complex: a spanning tree of
// the 1-skeleton contributes nothing, each non-tree edge is a generator,
// and each triangle contributes the relator spelled by its boundary loop
// with tree edges collapsed. No normal form is guaranteed.
//
// Errors: ErrNilGraph, ErrBadCell, ErrOutOfRange, ErrInvariantMismatch,
// ErrDisconnected.
package homology
