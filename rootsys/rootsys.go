// Package rootsys builds classical root systems — E8 and its subsystems —
// as explicit integer root lists with Cartan inner products and Weyl
// reflections realized as index permutations.
//
// Coordinates are stored DOUBLED: every root vector is 2·α, so the 128
// half-integer spinor roots of E8 stay integral. All inner products scale
// by 4 uniformly, so reflection formulas are unchanged; the doubled norm of
// every E8 root is 8.
//
// Orientation convention (applied uniformly across the module): roots are
// stored as oriented vectors, and every set-level operation downstream —
// reflection closure, correspondence search — works on antipodal PAIRS via
// Pairs(). The unordered pair is the canonical unit; the oriented vector is
// only the representative.
//
// Errors:
//
//	ErrOutOfRange - root index outside 0..Len()-1.
//	ErrNotClosed  - a reflection image left the root set (defect: the
//	                system under construction is not actually closed).
package rootsys

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrOutOfRange indicates a root index outside 0..Len()-1.
	ErrOutOfRange = errors.New("rootsys: root index out of range")

	// ErrNotClosed indicates a Weyl reflection mapped a root outside the
	// system. Always a construction defect, never recoverable.
	ErrNotClosed = errors.New("rootsys: reflection image not in root system")
)

// E8Rank is the rank (ambient dimension) of E8.
const E8Rank = 8

// e8Norm is the doubled squared length of every E8 root: (2α, 2α) = 8.
const e8Norm = 8

// System is an immutable root system: a deterministic list of doubled
// integer root vectors plus an index for membership queries.
type System struct {
	dim   int
	roots [][]int
	index map[string]int
}

func rootKey(r []int) string {
	var sb strings.Builder
	for i, v := range r {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// E8 constructs the 240 roots of E8 in a fixed deterministic order:
// first the 112 integer roots ±e_i ± e_j (i < j, sign pairs in (+,+),
// (+,−), (−,+), (−,−) order; doubled entries ±2), then the 128 spinor
// roots (all entries ±1 doubled, even number of minus signs, enumerated by
// ascending sign mask).
func E8() *System {
	s := &System{dim: E8Rank, index: make(map[string]int, 240)}

	// Integer roots: ±2·e_i ± 2·e_j.
	signs := [4][2]int{{2, 2}, {2, -2}, {-2, 2}, {-2, -2}}
	for i := 0; i < E8Rank; i++ {
		for j := i + 1; j < E8Rank; j++ {
			for _, sg := range signs {
				r := make([]int, E8Rank)
				r[i], r[j] = sg[0], sg[1]
				s.add(r)
			}
		}
	}

	// Spinor roots: entries ±1, even number of −1. Bit k of the mask set
	// means coordinate k is negative.
	for mask := 0; mask < 1<<E8Rank; mask++ {
		if popcount(mask)%2 != 0 {
			continue
		}
		r := make([]int, E8Rank)
		for k := 0; k < E8Rank; k++ {
			if mask&(1<<k) != 0 {
				r[k] = -1
			} else {
				r[k] = 1
			}
		}
		s.add(r)
	}

	return s
}

func popcount(n int) int {
	c := 0
	for ; n != 0; n &= n - 1 {
		c++
	}

	return c
}

func (s *System) add(r []int) {
	s.index[rootKey(r)] = len(s.roots)
	s.roots = append(s.roots, r)
}

// Len returns the number of roots.
func (s *System) Len() int { return len(s.roots) }

// Dim returns the ambient dimension.
func (s *System) Dim() int { return s.dim }

// Root returns the doubled coordinates of root i. The slice must not be
// mutated.
func (s *System) Root(i int) ([]int, error) {
	if i < 0 || i >= len(s.roots) {
		return nil, ErrOutOfRange
	}

	return s.roots[i], nil
}

// IndexOf returns the index of a doubled root vector, or ok=false.
func (s *System) IndexOf(r []int) (int, bool) {
	idx, ok := s.index[rootKey(r)]

	return idx, ok
}

// Dot returns the doubled inner product (2α_i, 2α_j) = 4·(α_i, α_j).
// For E8 the possible values are 0, ±4, ±8.
func (s *System) Dot(i, j int) (int, error) {
	if i < 0 || i >= len(s.roots) || j < 0 || j >= len(s.roots) {
		return 0, ErrOutOfRange
	}
	acc := 0
	for k := 0; k < s.dim; k++ {
		acc += s.roots[i][k] * s.roots[j][k]
	}

	return acc, nil
}

// Reflect returns the Weyl reflection s_α for root α = roots[i], as a
// permutation of root indices: perm[j] is the index of
// β_j − 2(β_j, α)/(α, α)·α.
//
// In doubled coordinates with (α, α) = e8Norm the coefficient
// 2·dot/e8Norm is always integral for E8. Returns ErrNotClosed if any
// image is missing from the system. Complexity: O(|roots|·dim).
func (s *System) Reflect(i int) ([]int, error) {
	if i < 0 || i >= len(s.roots) {
		return nil, ErrOutOfRange
	}
	alpha := s.roots[i]
	perm := make([]int, len(s.roots))
	img := make([]int, s.dim)
	for j, beta := range s.roots {
		dot := 0
		for k := 0; k < s.dim; k++ {
			dot += beta[k] * alpha[k]
		}
		coef := 2 * dot / e8Norm
		for k := 0; k < s.dim; k++ {
			img[k] = beta[k] - coef*alpha[k]
		}
		target, ok := s.index[rootKey(img)]
		if !ok {
			return nil, ErrNotClosed
		}
		perm[j] = target
	}

	return perm, nil
}

// SimpleRoots returns the indices of a standard simple-root base of E8:
// ½(e1−e2−…−e7+e8), e1+e2, e2−e1, e3−e2, …, e7−e6 (doubled coordinates).
func (s *System) SimpleRoots() ([]int, error) {
	base := [][]int{
		{1, -1, -1, -1, -1, -1, -1, 1},
		{2, 2, 0, 0, 0, 0, 0, 0},
		{-2, 2, 0, 0, 0, 0, 0, 0},
		{0, -2, 2, 0, 0, 0, 0, 0},
		{0, 0, -2, 2, 0, 0, 0, 0},
		{0, 0, 0, -2, 2, 0, 0, 0},
		{0, 0, 0, 0, -2, 2, 0, 0},
		{0, 0, 0, 0, 0, -2, 2, 0},
	}
	out := make([]int, len(base))
	for i, r := range base {
		idx, ok := s.index[rootKey(r)]
		if !ok {
			return nil, ErrNotClosed
		}
		out[i] = idx
	}

	return out, nil
}

// CartanMatrix returns A[i][j] = 2(α_i, α_j)/(α_j, α_j) for the given base
// indices. For E8 all roots share the same length, so A[i][j] = dot/4 in
// doubled coordinates.
func (s *System) CartanMatrix(base []int) ([][]int, error) {
	a := make([][]int, len(base))
	for i := range base {
		a[i] = make([]int, len(base))
		for j := range base {
			dot, err := s.Dot(base[i], base[j])
			if err != nil {
				return nil, err
			}
			a[i][j] = dot / (e8Norm / 2)
		}
	}

	return a, nil
}

// SubsystemWhere returns the indices of roots satisfying pred, in system
// order. Filtering the 112 integer roots yields a D8 subsystem.
func (s *System) SubsystemWhere(pred func(root []int) bool) []int {
	out := make([]int, 0)
	for i, r := range s.roots {
		if pred(r) {
			out = append(out, i)
		}
	}

	return out
}

// IsIntegerRoot reports whether a doubled root has all-even coordinates,
// i.e. the underlying root is integral (the D8-type roots of E8).
func IsIntegerRoot(r []int) bool {
	for _, v := range r {
		if v%2 != 0 {
			return false
		}
	}

	return true
}

// Antipode returns the index of −α_i.
func (s *System) Antipode(i int) (int, error) {
	if i < 0 || i >= len(s.roots) {
		return 0, ErrOutOfRange
	}
	neg := make([]int, s.dim)
	for k, v := range s.roots[i] {
		neg[k] = -v
	}
	idx, ok := s.index[rootKey(neg)]
	if !ok {
		return 0, ErrNotClosed
	}

	return idx, nil
}

// Pairs returns the antipodal pairs {α, −α} as [i, j] with i < j, ordered
// by ascending i. This is the canonical unordered unit used by every
// downstream correspondence search.
func (s *System) Pairs() ([][2]int, error) {
	seen := make([]bool, len(s.roots))
	out := make([][2]int, 0, len(s.roots)/2)
	for i := range s.roots {
		if seen[i] {
			continue
		}
		j, err := s.Antipode(i)
		if err != nil {
			return nil, err
		}
		seen[i], seen[j] = true, true
		if i < j {
			out = append(out, [2]int{i, j})
		} else {
			out = append(out, [2]int{j, i})
		}
	}

	return out, nil
}
