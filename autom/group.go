package autom

import (
	"fmt"
	"sort"
)

// Group is the frozen closure of a generator set: every element is a
// vertex permutation, the identity is always present, and the set is
// closed under composition (hence under inverse, generators having finite
// order). Grown only inside Close; immutable afterwards.
type Group struct {
	n     int
	elems []Permutation
	index map[string]int
	gens  []Permutation
}

// Close computes the group generated by gens via breadth-first closure:
// start from the identity and the generators, compose every frontier
// element with every generator, and stop when no new permutation appears.
//
// Every generator must be a valid bijection on the common domain
// (ErrSizeMismatch / ErrInvariantMismatch otherwise — an invalid generator
// at this stage is a defect, screening happens earlier).
// Complexity: O(|G|·|gens|·n).
func Close(gens []Permutation) (*Group, error) {
	if len(gens) == 0 {
		return nil, fmt.Errorf("empty generator set: %w", ErrSizeMismatch)
	}
	n := len(gens[0])
	for i, g := range gens {
		if len(g) != n {
			return nil, fmt.Errorf("generator %d: %w", i, ErrSizeMismatch)
		}
		if !g.IsValid() {
			return nil, fmt.Errorf("generator %d is not a bijection: %w", i, ErrInvariantMismatch)
		}
	}

	grp := &Group{n: n, index: make(map[string]int), gens: gens}
	grp.push(Identity(n))
	frontier := []Permutation{Identity(n)}
	for _, g := range gens {
		if grp.push(g) {
			frontier = append(frontier, g)
		}
	}

	for len(frontier) > 0 {
		next := make([]Permutation, 0)
		for _, cur := range frontier {
			for _, g := range gens {
				prod, err := g.Compose(cur)
				if err != nil {
					return nil, err
				}
				if grp.push(prod) {
					next = append(next, prod)
				}
			}
		}
		frontier = next
	}

	return grp, nil
}

// push records p if unseen; reports whether it was new.
func (g *Group) push(p Permutation) bool {
	key := p.Key()
	if _, seen := g.index[key]; seen {
		return false
	}
	g.index[key] = len(g.elems)
	g.elems = append(g.elems, p)

	return true
}

// Order returns |G|.
func (g *Group) Order() int { return len(g.elems) }

// Degree returns the number of points acted on.
func (g *Group) Degree() int { return g.n }

// Elements returns all group elements in closure discovery order.
// The slice must not be mutated.
func (g *Group) Elements() []Permutation { return g.elems }

// Generators returns the generator set Close was called with.
func (g *Group) Generators() []Permutation { return g.gens }

// Contains reports membership.
func (g *Group) Contains(p Permutation) bool {
	_, ok := g.index[p.Key()]

	return ok
}

// applySet maps an unordered vertex set through p and returns it sorted.
// Sets (edges, cliques) are the canonical combinatorial objects here;
// orientation is never significant.
func applySet(p Permutation, obj []int) []int {
	out := make([]int, len(obj))
	for i, v := range obj {
		out[i] = p[v]
	}
	sort.Ints(out)

	return out
}

func setKey(obj []int) string {
	buf := make([]byte, 0, len(obj)*2)
	for _, v := range obj {
		buf = append(buf, byte(v>>8), byte(v))
	}

	return string(buf)
}

// OrbitResult is the orbit of an object under the group action together
// with its stabilizer order. Produced only after the orbit–stabilizer
// post-condition has been verified.
type OrbitResult struct {
	// Orbit lists the distinct images (sorted vertex sets) in BFS order.
	Orbit [][]int

	// StabilizerOrder is the number of group elements fixing the object.
	StabilizerOrder int
}

// Orbit computes the orbit of an unordered vertex set (a vertex is a
// 1-element set, an edge a 2-element set, a clique any size) under the
// group, plus the stabilizer order, and checks the orbit–stabilizer
// identity |G| = |Orbit|·|Stabilizer| as a required post-condition —
// a mismatch returns ErrInvariantMismatch and signals a defect.
//
// The orbit is the closure of {obj} under the generator action (BFS);
// the stabilizer is counted over the full element list.
func (g *Group) Orbit(obj []int) (*OrbitResult, error) {
	for _, v := range obj {
		if v < 0 || v >= g.n {
			return nil, fmt.Errorf("object vertex %d out of range: %w", v, ErrSizeMismatch)
		}
	}
	start := applySet(Identity(g.n), obj)

	seen := map[string]struct{}{setKey(start): {}}
	orbit := [][]int{start}
	frontier := [][]int{start}
	for len(frontier) > 0 {
		next := make([][]int, 0)
		for _, cur := range frontier {
			for _, gen := range g.gens {
				img := applySet(gen, cur)
				key := setKey(img)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				orbit = append(orbit, img)
				next = append(next, img)
			}
		}
		frontier = next
	}

	stab := 0
	startKey := setKey(start)
	for _, e := range g.elems {
		if setKey(applySet(e, start)) == startKey {
			stab++
		}
	}

	if len(orbit)*stab != len(g.elems) {
		return nil, fmt.Errorf("|G|=%d |orbit|=%d |stab|=%d: %w",
			len(g.elems), len(orbit), stab, ErrInvariantMismatch)
	}

	return &OrbitResult{Orbit: orbit, StabilizerOrder: stab}, nil
}
