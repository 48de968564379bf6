package polar

import (
	"errors"
	"sort"

	"github.com/katalvlaran/symplect/gf"
)

// Sentinel errors for geometry construction. All are fatal: a malformed
// order, dimension or form aborts the pipeline immediately (no retry).
var (
	// ErrBadOrder indicates the field order is not a supported small prime.
	ErrBadOrder = errors.New("polar: bad field order")

	// ErrBadDimension indicates the dimension is not a positive even number.
	ErrBadDimension = errors.New("polar: dimension must be positive and even")

	// ErrNilForm indicates a nil bilinear form was injected.
	ErrNilForm = errors.New("polar: nil bilinear form")
)

// Defaults for Build. The observed geometry is W(3,3): order 3, dimension 4.
const (
	// DefaultOrder is the default field order.
	DefaultOrder = 3

	// DefaultDimension is the default ambient vector-space dimension.
	DefaultDimension = 4
)

// BilinearForm evaluates a bilinear form on two vectors over f.
// Implementations must be bilinear; alternating forms yield polar spaces.
type BilinearForm func(f gf.Field, x, y gf.Vector) gf.Element

// SymplecticForm is the standard alternating form in even dimension d:
//
//	form(x, y) = Σ_{i<d/2} x_i·y_{i+d/2} − x_{i+d/2}·y_i  (mod q)
//
// For d = 4 this is x0y2 − x2y0 + x1y3 − x3y1.
func SymplecticForm(f gf.Field, x, y gf.Vector) gf.Element {
	half := len(x) / 2
	acc := gf.Element(0)
	for i := 0; i < half; i++ {
		acc = f.Add(acc, f.Sub(f.Mul(x[i], y[i+half]), f.Mul(x[i+half], y[i])))
	}

	return acc
}

// Omega returns the Gram matrix of SymplecticForm in dimension dim,
// so that form(x, y) = xᵀ·Ω·y. Used by the automorphism engine to verify
// MᵀΩM = Ω for candidate linear maps.
func Omega(f gf.Field, dim int) (*gf.Matrix, error) {
	if dim <= 0 || dim%2 != 0 {
		return nil, ErrBadDimension
	}
	m, err := gf.NewMatrix(f, dim, dim)
	if err != nil {
		return nil, err
	}
	half := dim / 2
	for i := 0; i < half; i++ {
		_ = m.Set(i, i+half, 1)
		_ = m.Set(i+half, i, f.Neg(1))
	}

	return m, nil
}

// Option configures Build.
type Option func(*options)

type options struct {
	order int
	dim   int
	form  BilinearForm
}

// WithOrder sets the field order (small prime; default DefaultOrder).
func WithOrder(q int) Option { return func(o *options) { o.order = q } }

// WithDimension sets the ambient dimension (positive even; default 4).
func WithDimension(d int) Option { return func(o *options) { o.dim = d } }

// WithForm injects a custom bilinear form (default SymplecticForm).
func WithForm(form BilinearForm) Option { return func(o *options) { o.form = form } }

// Space is a built polar space: the point graph, the projective coordinates
// of every vertex, and the totally isotropic lines. Immutable after Build.
type Space struct {
	field  gf.Field
	dim    int
	form   BilinearForm
	graph  *Graph
	points []gf.Vector
	index  map[string]int
	lines  [][]int
}

// Build constructs the polar space for the configured order, dimension and
// form.
//
// Steps:
//  1. Validate order (prime, small), dimension (positive even), form (non-nil).
//  2. Enumerate all q^d − 1 nonzero vectors in lexicographic order,
//     normalize, deduplicate → the projective point list.
//  3. Fill the dense adjacency table: p ≠ r and form(p, r) = 0.
//  4. Discover lines from spans of adjacent pairs (see package doc).
//
// Complexity: O(q^d · d) enumeration + O(n²·d) adjacency + O(m·q²·d) lines.
func Build(opts ...Option) (*Space, error) {
	cfg := options{order: DefaultOrder, dim: DefaultDimension, form: SymplecticForm}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.form == nil {
		return nil, ErrNilForm
	}
	if cfg.dim <= 0 || cfg.dim%2 != 0 {
		return nil, ErrBadDimension
	}
	field, err := gf.New(cfg.order)
	if err != nil {
		return nil, errors.Join(ErrBadOrder, err)
	}

	s := &Space{field: field, dim: cfg.dim, form: cfg.form, index: make(map[string]int)}
	if err := s.enumeratePoints(); err != nil {
		return nil, err
	}
	s.fillAdjacency()
	s.discoverLines()

	return s, nil
}

// enumeratePoints walks all nonzero vectors of GF(q)^d in lexicographic
// order, normalizes each and records the first occurrence of every point.
func (s *Space) enumeratePoints() error {
	q, d := s.field.Q(), s.dim
	total := 1
	for i := 0; i < d; i++ {
		total *= q
	}
	v := make(gf.Vector, d)
	for counter := 1; counter < total; counter++ {
		rest := counter
		for i := d - 1; i >= 0; i-- {
			v[i] = gf.Element(rest % q)
			rest /= q
		}
		p, err := s.field.Normalize(v)
		if err != nil {
			return err // unreachable: counter ≥ 1 guarantees a nonzero vector
		}
		key := p.Key()
		if _, seen := s.index[key]; seen {
			continue
		}
		s.index[key] = len(s.points)
		s.points = append(s.points, p)
	}

	return nil
}

// fillAdjacency builds the dense adjacency table from the form.
func (s *Space) fillAdjacency() {
	n := len(s.points)
	s.graph = newGraph(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if s.form(s.field, s.points[u], s.points[v]) == 0 {
				s.graph.addEdge(u, v)
			}
		}
	}
}

// discoverLines finds the totally isotropic lines: for each adjacent pair,
// the normalized 2-dimensional span, accepted iff it has exactly q+1
// distinct points and is a clique, deduplicated by point-set signature.
func (s *Space) discoverLines() {
	q := s.field.Q()
	seen := make(map[string]struct{})
	for _, e := range s.graph.Edges() {
		span := s.span(e[0], e[1])
		if len(span) != q+1 || !s.graph.IsClique(span) {
			continue
		}
		sort.Ints(span)
		key := cliqueKey(span)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		s.lines = append(s.lines, span)
	}
}

// span returns the distinct projective points of the plane a·p_u + b·p_v,
// (a, b) ≠ (0, 0), as vertex indices in discovery order.
func (s *Space) span(u, v int) []int {
	q := s.field.Q()
	out := make([]int, 0, q+1)
	local := make(map[int]struct{}, q+1)
	for a := 0; a < q; a++ {
		for b := 0; b < q; b++ {
			if a == 0 && b == 0 {
				continue
			}
			w := s.field.AddVec(
				s.field.Scale(gf.Element(a), s.points[u]),
				s.field.Scale(gf.Element(b), s.points[v]),
			)
			p, err := s.field.Normalize(w)
			if err != nil {
				continue // a·p_u + b·p_v = 0 cannot happen for independent points
			}
			idx, ok := s.index[p.Key()]
			if !ok {
				continue // not a projective point of the space; span is not a line
			}
			if _, dup := local[idx]; dup {
				continue
			}
			local[idx] = struct{}{}
			out = append(out, idx)
		}
	}

	return out
}

// Field returns the underlying prime field.
func (s *Space) Field() gf.Field { return s.field }

// Dim returns the ambient vector-space dimension.
func (s *Space) Dim() int { return s.dim }

// Graph returns the point graph. The graph is immutable.
func (s *Space) Graph() *Graph { return s.graph }

// Points returns the projective coordinates of every vertex, indexed by
// vertex. The slice and its vectors must not be mutated.
func (s *Space) Points() []gf.Vector { return s.points }

// IndexOf returns the vertex index of a (not necessarily normalized)
// nonzero vector, or ok=false if it does not name a point of the space.
func (s *Space) IndexOf(v gf.Vector) (int, bool) {
	p, err := s.field.Normalize(v)
	if err != nil {
		return 0, false
	}
	idx, ok := s.index[p.Key()]

	return idx, ok
}

// Lines returns the totally isotropic lines as ascending vertex-index
// slices, in discovery order. Each line is a maximal clique of size q+1.
func (s *Space) Lines() [][]int { return s.lines }
