package polar

import (
	"errors"
	"sort"
)

// ErrOutOfRange indicates a vertex index outside 0..n-1.
var ErrOutOfRange = errors.New("polar: vertex index out of range")

// ErrBadEdge indicates a self-loop or an endpoint outside 0..n-1.
var ErrBadEdge = errors.New("polar: bad edge")

// Graph is an immutable simple graph on vertices 0..n-1 with a dense
// adjacency table. The relation is symmetric and irreflexive by
// construction; there is no mutation API past the package-internal build.
type Graph struct {
	n   int
	adj []bool // n*n dense table, adj[u*n+v]
	deg []int
}

// newGraph allocates an empty graph on n vertices.
func newGraph(n int) *Graph {
	return &Graph{n: n, adj: make([]bool, n*n), deg: make([]int, n)}
}

// NewGraph builds an immutable graph on n vertices from an undirected edge
// list. Duplicate edges are ignored; self-loops and out-of-range endpoints
// return ErrBadEdge. Intended for comparison targets (permuted copies,
// embedding hosts) — polar spaces themselves come from Build.
func NewGraph(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, ErrOutOfRange
	}
	g := newGraph(n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u == v || u < 0 || u >= n || v < 0 || v >= n {
			return nil, ErrBadEdge
		}
		if !g.adj[u*n+v] {
			g.addEdge(u, v)
		}
	}

	return g, nil
}

// addEdge records the undirected edge {u, v}. Internal: callers guarantee
// valid distinct indices, and never add an edge twice.
func (g *Graph) addEdge(u, v int) {
	g.adj[u*g.n+v] = true
	g.adj[v*g.n+u] = true
	g.deg[u]++
	g.deg[v]++
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// Adjacent reports whether u and v are adjacent. Indices outside 0..n-1
// are never adjacent to anything (the table is bounds-checked, not trusted).
func (g *Graph) Adjacent(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}

	return g.adj[u*g.n+v]
}

// Degree returns the degree of u, or ErrOutOfRange.
func (g *Graph) Degree(u int) (int, error) {
	if u < 0 || u >= g.n {
		return 0, ErrOutOfRange
	}

	return g.deg[u], nil
}

// Neighbors returns the ascending neighbor list of u, or ErrOutOfRange.
// Complexity: O(n).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, ErrOutOfRange
	}
	out := make([]int, 0, g.deg[u])
	for v := 0; v < g.n; v++ {
		if g.adj[u*g.n+v] {
			out = append(out, v)
		}
	}

	return out, nil
}

// Edges returns all edges as ascending [u, v] pairs with u < v, ordered
// lexicographically. Complexity: O(n²).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0)
	for u := 0; u < g.n; u++ {
		base := u * g.n
		for v := u + 1; v < g.n; v++ {
			if g.adj[base+v] {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, d := range g.deg {
		total += d
	}

	return total / 2
}

// Triangles enumerates all 3-cliques as ascending triples u < v < w,
// ordered lexicographically. Complexity: O(n·m) over edges.
func (g *Graph) Triangles() [][]int {
	out := make([][]int, 0)
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if !g.adj[u*g.n+v] {
				continue
			}
			for w := v + 1; w < g.n; w++ {
				if g.adj[u*g.n+w] && g.adj[v*g.n+w] {
					out = append(out, []int{u, v, w})
				}
			}
		}
	}

	return out
}

// IsClique reports whether the given vertices are pairwise adjacent and
// pairwise distinct.
func (g *Graph) IsClique(vs []int) bool {
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			if vs[i] == vs[j] || !g.Adjacent(vs[i], vs[j]) {
				return false
			}
		}
	}

	return true
}

// cliqueKey returns the canonical sorted signature of a vertex set.
func cliqueKey(vs []int) string {
	s := make([]int, len(vs))
	copy(s, vs)
	sort.Ints(s)
	key := make([]byte, 0, len(s)*3)
	for _, v := range s {
		key = append(key, byte(v>>8), byte(v), ',')
	}

	return string(key)
}
