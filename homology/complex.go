package homology

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/symplect/gf"
	"github.com/katalvlaran/symplect/matrix"
	"github.com/katalvlaran/symplect/polar"
)

// Sentinel errors of the package; wrapped once at the exported facades.
var (
	// ErrNilGraph indicates BuildComplex received a nil graph.
	ErrNilGraph = errors.New("homology: nil graph")

	// ErrBadCell indicates a supplied line is out of range or not a clique.
	ErrBadCell = errors.New("homology: cell is not a clique of the graph")

	// ErrOutOfRange indicates a dimension outside [1, Dim()].
	ErrOutOfRange = errors.New("homology: dimension out of range")

	// ErrInvariantMismatch indicates a failed post-condition (boundary of
	// boundary nonzero, Euler characteristic disagreement, negative Betti
	// number). Always an implementation defect, never recovered.
	ErrInvariantMismatch = errors.New("homology: invariant mismatch")

	// ErrDisconnected indicates FundamentalGroup was asked to present a
	// complex with more than one connected component.
	ErrDisconnected = errors.New("homology: complex is not connected")
)

// Complex is the downward-closed simplicial complex generated by a graph's
// vertices, edges, triangles and lines. Immutable after BuildComplex.
type Complex struct {
	cells [][][]int        // cells[k] = k-cells, each an ascending vertex list
	index []map[string]int // per dimension: cellKey → position in cells[k]
	bnd   []*matrix.Dense  // bnd[k] = ∂k for k ≥ 1; bnd[0] is nil
}

// cellKey encodes an ascending vertex list as a stable map key.
func cellKey(cell []int) string {
	parts := make([]string, len(cell))
	for i, v := range cell {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, ",")
}

// BuildComplex constructs the clique complex of g with the given lines as
// top cells.
//
// Steps:
//  1. Validate every line: vertices in range, pairwise adjacent.
//  2. Seed the cell sets with vertices, edges, triangles and lines, then
//     close downward: every face of every cell is a cell.
//  3. Sort each dimension lexicographically (the fixed total order).
//  4. Assemble boundary matrices and verify ∂k∘∂k+1 = 0 exactly.
//
// Complexity: O(Σ_k 2^(k+1)·|lines|) for the closure (cells are tiny) plus
// the boundary products.
func BuildComplex(g *polar.Graph, lines [][]int) (*Complex, error) {
	if g == nil {
		return nil, fmt.Errorf("BuildComplex: %w", ErrNilGraph)
	}

	maxDim := 0
	byDim := []map[string][]int{make(map[string][]int)}

	// add inserts a sorted copy of cell and, recursively, all its faces.
	var add func(cell []int)
	add = func(cell []int) {
		k := len(cell) - 1
		for len(byDim) <= k {
			byDim = append(byDim, make(map[string][]int))
		}
		if k > maxDim {
			maxDim = k
		}
		key := cellKey(cell)
		if _, ok := byDim[k][key]; ok {
			return
		}
		byDim[k][key] = append([]int(nil), cell...)
		if k == 0 {
			return
		}
		face := make([]int, k)
		for drop := 0; drop <= k; drop++ {
			copy(face, cell[:drop])
			copy(face[drop:], cell[drop+1:])
			add(face)
		}
	}

	for v := 0; v < g.N(); v++ {
		add([]int{v})
	}
	for _, e := range g.Edges() {
		add([]int{e[0], e[1]})
	}
	for _, tri := range g.Triangles() {
		add(tri)
	}
	for _, line := range lines {
		cell := append([]int(nil), line...)
		sort.Ints(cell)
		if !g.IsClique(cell) {
			return nil, fmt.Errorf("BuildComplex: line %v: %w", line, ErrBadCell)
		}
		add(cell)
	}

	c := &Complex{
		cells: make([][][]int, maxDim+1),
		index: make([]map[string]int, maxDim+1),
		bnd:   make([]*matrix.Dense, maxDim+1),
	}
	for k := 0; k <= maxDim; k++ {
		keys := make([]string, 0, len(byDim[k]))
		for key := range byDim[k] {
			keys = append(keys, key)
		}
		cellsOf := make([][]int, 0, len(keys))
		for _, key := range keys {
			cellsOf = append(cellsOf, byDim[k][key])
		}
		sort.Slice(cellsOf, func(i, j int) bool { return lessCells(cellsOf[i], cellsOf[j]) })
		c.cells[k] = cellsOf
		c.index[k] = make(map[string]int, len(cellsOf))
		for i, cell := range cellsOf {
			c.index[k][cellKey(cell)] = i
		}
	}

	for k := 1; k <= maxDim; k++ {
		b, err := c.buildBoundary(k)
		if err != nil {
			return nil, fmt.Errorf("BuildComplex: %w", err)
		}
		c.bnd[k] = b
	}
	if err := c.checkChain(); err != nil {
		return nil, fmt.Errorf("BuildComplex: %w", err)
	}

	return c, nil
}

// lessCells orders ascending vertex lists lexicographically.
func lessCells(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// Dim returns the top dimension of the complex.
func (c *Complex) Dim() int { return len(c.cells) - 1 }

// Counts returns the number of cells per dimension, index = dimension.
func (c *Complex) Counts() []int {
	out := make([]int, len(c.cells))
	for k, cs := range c.cells {
		out[k] = len(cs)
	}

	return out
}

// Cells returns a copy of the k-cells in the fixed total order.
func (c *Complex) Cells(k int) ([][]int, error) {
	if k < 0 || k > c.Dim() {
		return nil, fmt.Errorf("Cells: %w", ErrOutOfRange)
	}
	out := make([][]int, len(c.cells[k]))
	for i, cell := range c.cells[k] {
		out[i] = append([]int(nil), cell...)
	}

	return out, nil
}

// buildBoundary assembles ∂k: rows are (k-1)-cells, columns k-cells, with
// entry (-1)^i for the face dropping the i-th vertex.
func (c *Complex) buildBoundary(k int) (*matrix.Dense, error) {
	rows, cols := len(c.cells[k-1]), len(c.cells[k])
	b, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	face := make([]int, k)
	for j, cell := range c.cells[k] {
		sign := 1.0
		for drop := 0; drop <= k; drop++ {
			copy(face, cell[:drop])
			copy(face[drop:], cell[drop+1:])
			i, ok := c.index[k-1][cellKey(face)]
			if !ok {
				return nil, fmt.Errorf("missing face %v of %v: %w", face, cell, ErrInvariantMismatch)
			}
			if err = b.Set(i, j, sign); err != nil {
				return nil, err
			}
			sign = -sign
		}
	}

	return b, nil
}

// checkChain verifies ∂k∘∂k+1 = 0 exactly for every consecutive pair.
// Entries are small integers held in float64, so equality is exact.
func (c *Complex) checkChain() error {
	for k := 1; k < c.Dim(); k++ {
		prod, err := matrix.Mul(c.bnd[k], c.bnd[k+1])
		if err != nil {
			return err
		}
		for i := 0; i < prod.Rows(); i++ {
			for j := 0; j < prod.Cols(); j++ {
				v, _ := prod.At(i, j)
				if v != 0 {
					return fmt.Errorf("∂%d∘∂%d nonzero at (%d,%d): %w", k, k+1, i, j, ErrInvariantMismatch)
				}
			}
		}
	}

	return nil
}

// Boundary returns a copy of ∂k as a float matrix, k in [1, Dim()].
func (c *Complex) Boundary(k int) (*matrix.Dense, error) {
	if k < 1 || k > c.Dim() {
		return nil, fmt.Errorf("Boundary: %w", ErrOutOfRange)
	}

	return c.bnd[k].Clone(), nil
}

// BoundaryMod returns ∂k over GF(q), k in [1, Dim()]. Signs reduce mod q.
func (c *Complex) BoundaryMod(k int, f gf.Field) (*gf.Matrix, error) {
	if k < 1 || k > c.Dim() {
		return nil, fmt.Errorf("BoundaryMod: %w", ErrOutOfRange)
	}
	b, err := gf.NewMatrix(f, len(c.cells[k-1]), len(c.cells[k]))
	if err != nil {
		return nil, fmt.Errorf("BoundaryMod: %w", err)
	}
	face := make([]int, k)
	for j, cell := range c.cells[k] {
		sign := 1
		for drop := 0; drop <= k; drop++ {
			copy(face, cell[:drop])
			copy(face[drop:], cell[drop+1:])
			i := c.index[k-1][cellKey(face)]
			if err = b.Set(i, j, gf.Element(sign)); err != nil {
				return nil, fmt.Errorf("BoundaryMod: %w", err)
			}
			sign = -sign
		}
	}

	return b, nil
}
