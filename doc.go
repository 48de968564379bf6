// Package symplect is a toolkit for exact combinatorial computation on
// finite-geometry graphs — building symplectic polar-space graphs over small
// prime fields, discovering the mappings that relate them to other
// combinatorial objects, and computing the homology of their clique
// complexes.
//
// 🚀 What is symplect?
//
//	A deterministic, single-process computational engine that brings together:
//		• Finite-field primitives: GF(q) scalars, vectors, projective points
//		• Polar graphs: W(3,q) point graphs with their totally isotropic lines
//		• Invariants: degree sequences, spectra, strongly-regular parameters
//		• Automorphisms: form-preserving linear maps, group closure, orbits
//		• Search: a backtracking CSP engine for isomorphism, embedding and
//		  exact cover, with a seeded annealing fallback for large spaces
//		• Homology: boundary operators, Betti numbers, π₁ presentations
//
// ✨ Why choose symplect?
//
//   - Exact by default – integer and mod-p arithmetic wherever possible,
//     explicit tolerances where floating point is unavoidable
//   - Deterministic – fixed iteration orders, seeded randomness, no globals
//   - Checked – every pipeline ends in mandatory invariant post-conditions
//     (∂∘∂ = 0, Euler consistency, orbit–stabilizer) that fail loudly
//
// Everything is organized under flat topic subpackages:
//
//	gf/          — GF(q) scalars, vectors, projective normalization, matrices
//	matrix/      — float64 dense kernels: multiply, eigenvalues, rank
//	polar/       — polar-space graph construction (points, adjacency, lines)
//	invariants/  — degrees, spectra, SRG parameters, Euler characteristic
//	rootsys/     — E8 and sub-root-systems, Weyl reflections
//	autom/       — automorphism verification, group closure, orbits
//	search/      — backtracking CSP + simulated annealing
//	homology/    — chain complexes, Betti numbers, fundamental group
//	report/      — flat and hierarchical interchange records (YAML)
//
// Quick ASCII example (q = 2: the 15 points and 15 lines of W(3,2)):
//
//	    point ── point        every line is a triangle {p,q,r}
//	      │        │          with form(p,q) = form(q,r) = form(p,r) = 0
//	    point ── point
//
// Each analysis is a standalone computation: scalar parameters in, one
// interchange record out. See cmd/symplect for the CLI surface.
package symplect
