// Package invariants computes the combinatorial and spectral invariants of
// a built graph: degree sequences, strongly-regular parameters, adjacency
// eigenvalues with multiplicities, and the Euler characteristic of a
// simplex-count vector.
//
// Numeric policy: spectra come from a floating Jacobi decomposition, so
// eigenvalue equality is decided by an explicit tolerance. Comparisons that
// land in the ambiguous band [tol, BandFactor·tol) fail closed — the values
// are kept distinct — and are logged through the injected slog.Logger
// rather than silently resolved either way.
//
// Errors:
//
//	ErrNotRegular         - a regular graph was required.
//	ErrNotStronglyRegular - λ or μ is not constant across pairs.
package invariants

import (
	"errors"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/symplect/matrix"
	"github.com/katalvlaran/symplect/polar"
)

// Sentinel errors.
var (
	// ErrNotRegular indicates the graph is not regular.
	ErrNotRegular = errors.New("invariants: graph is not regular")

	// ErrNotStronglyRegular indicates λ or μ varies across vertex pairs.
	ErrNotStronglyRegular = errors.New("invariants: graph is not strongly regular")
)

// Defaults for the numeric policy.
const (
	// DefaultTolerance is the zero/equality threshold for spectral values.
	// Observed call sites in this problem family range 1e-6..1e-10; 1e-9 is
	// the package default and every consumer may override it.
	DefaultTolerance = 1e-9

	// BandFactor widens the tolerance into an ambiguous band: gaps inside
	// [tol, BandFactor·tol) fail closed and are logged.
	BandFactor = 10.0

	// DefaultMaxIter caps Jacobi rotations for the spectra computed here.
	// Classical Jacobi on an n×n matrix needs a few sweeps of n(n−1)/2
	// rotations; the cap leaves generous headroom for n ≤ 160.
	DefaultMaxIter = 200000

	// convergenceRatio tightens Jacobi convergence below the grouping
	// tolerance, so numerical scatter inside one eigenvalue cluster stays
	// well under the cluster-merging threshold.
	convergenceRatio = 1e-3

	// minConvergence floors the Jacobi threshold near float64 precision.
	minConvergence = 1e-13
)

// Options configures spectral computations. The zero value is usable:
// defaults are applied to zero fields, and a nil Logger means silent.
type Options struct {
	// Tolerance is the equality/zero threshold (default DefaultTolerance).
	Tolerance float64

	// MaxIter caps Jacobi rotations (default DefaultMaxIter).
	MaxIter int

	// Logger receives tolerance-band warnings; nil disables logging.
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIter <= 0 {
		o.MaxIter = DefaultMaxIter
	}

	return o
}

// DegreeSequence returns the degree of every vertex, indexed by vertex.
func DegreeSequence(g *polar.Graph) []int {
	out := make([]int, g.N())
	for u := 0; u < g.N(); u++ {
		out[u], _ = g.Degree(u) // u is in range by construction
	}

	return out
}

// IsRegular reports whether every vertex has the same degree, and that degree.
func IsRegular(g *polar.Graph) (int, bool) {
	if g.N() == 0 {
		return 0, true
	}
	seq := DegreeSequence(g)
	k := seq[0]
	for _, d := range seq[1:] {
		if d != k {
			return 0, false
		}
	}

	return k, true
}

// SRG holds strongly-regular-graph parameters (n, k, λ, μ).
type SRG struct {
	N      int // vertices
	K      int // common degree
	Lambda int // common neighbors of adjacent pairs
	Mu     int // common neighbors of non-adjacent pairs
}

// SRGParameters extracts (n, k, λ, μ), verifying constancy across all pairs.
// Returns ErrNotRegular or ErrNotStronglyRegular when the graph fails the
// definition. Complexity: O(n³) via the dense adjacency table.
func SRGParameters(g *polar.Graph) (SRG, error) {
	k, regular := IsRegular(g)
	if !regular {
		return SRG{}, ErrNotRegular
	}
	n := g.N()
	lambda, mu := -1, -1
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			common := 0
			for w := 0; w < n; w++ {
				if g.Adjacent(u, w) && g.Adjacent(v, w) {
					common++
				}
			}
			if g.Adjacent(u, v) {
				if lambda < 0 {
					lambda = common
				} else if lambda != common {
					return SRG{}, ErrNotStronglyRegular
				}
			} else {
				if mu < 0 {
					mu = common
				} else if mu != common {
					return SRG{}, ErrNotStronglyRegular
				}
			}
		}
	}

	return SRG{N: n, K: k, Lambda: lambda, Mu: mu}, nil
}

// AdjacencyMatrix returns the n×n 0/1 adjacency matrix of g.
func AdjacencyMatrix(g *polar.Graph) (*matrix.Dense, error) {
	n := g.N()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if g.Adjacent(u, v) {
				_ = m.Set(u, v, 1)
			}
		}
	}

	return m, nil
}

// Eigenvalue is a distinct adjacency eigenvalue with its multiplicity.
type Eigenvalue struct {
	Value        float64
	Multiplicity int
}

// Eigenvalues computes the distinct adjacency eigenvalues of g with
// multiplicities, grouping raw Jacobi output under opts.Tolerance.
//
// Grouping walks the sorted spectrum once: a gap below tol merges, a gap of
// at least BandFactor·tol splits, and a gap inside the band splits too
// (fail closed) with a warning on opts.Logger. Results are ascending.
func Eigenvalues(g *polar.Graph, opts Options) ([]Eigenvalue, error) {
	opts = opts.withDefaults()
	adj, err := AdjacencyMatrix(g)
	if err != nil {
		return nil, err
	}
	convTol := opts.Tolerance * convergenceRatio
	if convTol < minConvergence {
		convTol = minConvergence
	}
	raw, _, err := matrix.Eigen(adj, convTol, opts.MaxIter)
	if err != nil {
		return nil, err
	}
	sort.Float64s(raw)

	out := make([]Eigenvalue, 0, 4)
	for _, v := range raw {
		if len(out) > 0 {
			gap := math.Abs(v - out[len(out)-1].Value)
			if gap < opts.Tolerance {
				out[len(out)-1].Multiplicity++
				continue
			}
			if gap < BandFactor*opts.Tolerance && opts.Logger != nil {
				opts.Logger.Warn("eigenvalue gap inside ambiguous tolerance band; keeping values distinct",
					slog.Float64("gap", gap),
					slog.Float64("tolerance", opts.Tolerance))
			}
		}
		out = append(out, Eigenvalue{Value: v, Multiplicity: 1})
	}

	return out, nil
}

// EulerCharacteristic returns the alternating sum Σ (−1)^k · counts[k] of a
// simplex-count vector (counts[0] = vertices, counts[1] = edges, …).
func EulerCharacteristic(counts []int) int {
	chi := 0
	for k, c := range counts {
		if k%2 == 0 {
			chi += c
		} else {
			chi -= c
		}
	}

	return chi
}
