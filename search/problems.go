package search

// AdjacencyGraph is the minimal graph view the problem builders need.
// *polar.Graph satisfies it; tests may use any fixture implementing it.
type AdjacencyGraph interface {
	// N returns the vertex count.
	N() int

	// Adjacent reports whether two vertices are adjacent.
	Adjacent(u, v int) bool
}

// degrees computes the degree of every vertex through the interface.
func degrees(g AdjacencyGraph) []int {
	out := make([]int, g.N())
	for u := 0; u < g.N(); u++ {
		for v := 0; v < g.N(); v++ {
			if g.Adjacent(u, v) {
				out[u]++
			}
		}
	}

	return out
}

// NewIsomorphism builds the CSP whose solutions are the isomorphisms
// g → h: variables are vertices of g, values vertices of h, domains
// prefiltered by equal degree (the cheapest invariant signature), the
// constraint is exact adjacency equality, and the assignment is injective.
//
// Graphs with different degree multisets produce a problem whose
// inconsistency propagation alone detects: some domain is empty or loses
// all support before any branching.
func NewIsomorphism(g, h AdjacencyGraph) (*Problem, error) {
	if g.N() != h.N() {
		return nil, ErrSizeMismatch
	}
	if g.N() == 0 {
		return nil, ErrBadProblem
	}
	dg, dh := degrees(g), degrees(h)
	domains := make([][]int, g.N())
	for x := range domains {
		for a := 0; a < h.N(); a++ {
			if dg[x] == dh[a] {
				domains[x] = append(domains[x], a)
			}
		}
	}

	return New(domains, true, func(x, a, y, b int) bool {
		return g.Adjacent(x, y) == h.Adjacent(a, b)
	})
}

// NewEmbedding builds the CSP whose solutions are injective maps
// sub → host carrying every edge of sub to an edge of host (subgraph
// embedding, not necessarily induced). Domains are prefiltered by
// degree(host image) ≥ degree(sub vertex).
func NewEmbedding(sub, host AdjacencyGraph) (*Problem, error) {
	if sub.N() == 0 || sub.N() > host.N() {
		return nil, ErrBadProblem
	}
	ds, dh := degrees(sub), degrees(host)
	domains := make([][]int, sub.N())
	for x := range domains {
		for a := 0; a < host.N(); a++ {
			if dh[a] >= ds[x] {
				domains[x] = append(domains[x], a)
			}
		}
	}

	return New(domains, true, func(x, a, y, b int) bool {
		if sub.Adjacent(x, y) {
			return host.Adjacent(a, b)
		}

		return true
	})
}

// NewExactCover builds the CSP whose solutions are exact covers: each
// element of the universe 0..universe-1 is assigned one covering block
// from blocks (given as element lists), such that elements sharing a block
// agree on it and elements of different chosen blocks never overlap.
// A solution's chosen block set partitions the universe.
func NewExactCover(universe int, blocks [][]int) (*Problem, error) {
	if universe <= 0 || len(blocks) == 0 {
		return nil, ErrBadProblem
	}
	member := make([]map[int]bool, len(blocks))
	for i, blk := range blocks {
		member[i] = make(map[int]bool, len(blk))
		for _, e := range blk {
			if e < 0 || e >= universe {
				return nil, ErrBadProblem
			}
			member[i][e] = true
		}
	}
	domains := make([][]int, universe)
	for e := 0; e < universe; e++ {
		for i := range blocks {
			if member[i][e] {
				domains[e] = append(domains[e], i)
			}
		}
		if len(domains[e]) == 0 {
			return nil, ErrBadProblem // element not coverable at all
		}
	}

	return New(domains, false, func(x, a, y, b int) bool {
		// If y lies in x's chosen block they must choose the same block,
		// and symmetrically.
		if member[a][y] && b != a {
			return false
		}
		if member[b][x] && a != b {
			return false
		}

		return true
	})
}

// NewEquivariant builds the CSP choosing, per orbit representative, one
// local option index from choices such that the injected pairwise
// compatibility predicate holds globally (typically: "the local choices at
// two representatives commute with every generator of the acting group").
// The predicate receives representative indices and choice indices.
func NewEquivariant(choices [][]int, compatible Constraint) (*Problem, error) {
	return New(choices, false, compatible)
}
