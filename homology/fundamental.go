package homology

import "fmt"

// Presentation is a fundamental-group presentation: one generator per
// non-tree edge of the 1-skeleton, relators spelled by triangle boundaries.
// Words are slices of nonzero signed generator numbers: +g means the g-th
// generator (1-based), −g its inverse. No normal form is guaranteed.
type Presentation struct {
	// Generators lists the non-tree edges, one per generator, in the fixed
	// edge order. Generator g corresponds to Generators[g-1].
	Generators [][2]int

	// Relators holds one boundary word per triangle, tree edges collapsed
	// and empty words dropped.
	Relators [][]int
}

// Rank returns the number of generators.
func (p *Presentation) Rank() int { return len(p.Generators) }

// FundamentalGroup presents π1 of a connected complex.
//
// Steps:
//  1. Grow a spanning tree over the edges in the fixed total order
//     (union-find; an edge joining two components is a tree edge).
//  2. Each non-tree edge becomes a generator; tree edges are the identity.
//  3. Each triangle [a,b,c] contributes the loop a→b→c→a read as the word
//     e(a,b)·e(b,c)·e(a,c)⁻¹ with tree edges dropped.
//
// A complex with more than one component has no single fundamental group;
// that is ErrDisconnected. Complexity: O(E·α(V) + T).
func (c *Complex) FundamentalGroup() (*Presentation, error) {
	if c.components() != 1 {
		return nil, fmt.Errorf("FundamentalGroup: %w", ErrDisconnected)
	}

	p := &Presentation{}
	if c.Dim() < 1 {
		return p, nil // a point: trivial group
	}

	// Spanning tree; gen[e] is the 1-based generator number of edge e,
	// zero for tree edges.
	d := newDSU(len(c.cells[0]))
	gen := make([]int, len(c.cells[1]))
	for e, cell := range c.cells[1] {
		if !d.union(cell[0], cell[1]) {
			p.Generators = append(p.Generators, [2]int{cell[0], cell[1]})
			gen[e] = len(p.Generators)
		}
	}

	if c.Dim() < 2 {
		return p, nil
	}
	for _, tri := range c.cells[2] {
		a, b, cc := tri[0], tri[1], tri[2]
		word := make([]int, 0, 3)
		if g := gen[c.index[1][cellKey([]int{a, b})]]; g != 0 {
			word = append(word, g)
		}
		if g := gen[c.index[1][cellKey([]int{b, cc})]]; g != 0 {
			word = append(word, g)
		}
		if g := gen[c.index[1][cellKey([]int{a, cc})]]; g != 0 {
			word = append(word, -g)
		}
		if len(word) > 0 {
			p.Relators = append(p.Relators, word)
		}
	}

	return p, nil
}
