package search

import (
	"errors"
	"log/slog"
)

// Sentinel errors for problem construction. Search outcomes are Status
// values, not errors.
var (
	// ErrBadProblem indicates an empty or inconsistent problem definition.
	ErrBadProblem = errors.New("search: bad problem definition")

	// ErrSizeMismatch indicates two graphs of different order were given to
	// the isomorphism builder.
	ErrSizeMismatch = errors.New("search: graph size mismatch")
)

// DefaultNodeBudget caps branch nodes for exhaustive search.
const DefaultNodeBudget = 1 << 20

// Constraint answers whether variable x taking value a is consistent with
// variable y taking value b, for x ≠ y. It must be symmetric in effect:
// the engine may query either orientation.
type Constraint func(x, a, y, b int) bool

// Problem is a finite-domain CSP in the shape every search in this module
// reduces to. Construct via the New* builders or New for custom problems.
type Problem struct {
	// Domains holds the candidate values of each variable; its length is
	// the variable count.
	Domains [][]int

	// Injective adds an implicit all-different constraint over values.
	Injective bool

	// Compatible is the pairwise constraint; nil means unconstrained.
	Compatible Constraint
}

// New builds a custom Problem. Domain slices are copied.
func New(domains [][]int, injective bool, c Constraint) (*Problem, error) {
	if len(domains) == 0 {
		return nil, ErrBadProblem
	}
	own := make([][]int, len(domains))
	for i, d := range domains {
		own[i] = append([]int(nil), d...)
	}

	return &Problem{Domains: own, Injective: injective, Compatible: c}, nil
}

// compatible folds the injectivity requirement into the user constraint.
func (p *Problem) compatible(x, a, y, b int) bool {
	if p.Injective && a == b {
		return false
	}
	if p.Compatible == nil {
		return true
	}

	return p.Compatible(x, a, y, b)
}

// Status classifies a search outcome.
type Status int

const (
	// StatusSolved means a complete consistent assignment was found.
	StatusSolved Status = iota

	// StatusUnsatisfiable means the search space was exhausted with no
	// solution: a proof of impossibility.
	StatusUnsatisfiable

	// StatusExhausted means the node budget ran out first. NOT a proof.
	StatusExhausted
)

// String returns the stable textual form used in interchange records.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusUnsatisfiable:
		return "unsatisfiable"
	case StatusExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Options configures Solve. The zero value is usable.
type Options struct {
	// NodeBudget caps branch nodes (default DefaultNodeBudget).
	NodeBudget int

	// Logger receives progress diagnostics at Debug; nil disables logging.
	Logger *slog.Logger
}

// Result is the outcome of an exhaustive search.
type Result struct {
	// Status classifies the outcome.
	Status Status

	// Assignment maps variable → value when Status == StatusSolved.
	Assignment []int

	// Nodes is the number of branch nodes expanded.
	Nodes int
}

// frame is one level of the explicit branching stack: the variable chosen
// at this depth, the value sequence to try, the next position in it, and a
// snapshot of the domains before any of those values was applied.
type frame struct {
	x      int
	values []int
	next   int
	saved  [][]int
}

// solver carries the mutable state of a single Solve call. It is created
// per invocation and never shared (the engine is single-threaded by
// contract).
type solver struct {
	p       *Problem
	domains [][]int
	stack   []frame
	nodes   int
	budget  int
	log     *slog.Logger
}

// Solve runs exhaustive backtracking with propagation on p.
//
// Policy (fixed, documented):
//   - variable selection: smallest remaining domain, ties by smallest index;
//   - value order: domain order (deterministic);
//   - propagation: pairwise support filtering to a fixed point before the
//     first branch and after every assignment;
//   - budget: each attempted value assignment counts one node; exceeding
//     opts.NodeBudget returns StatusExhausted immediately.
//
// A problem whose inconsistency is visible to propagation alone (e.g.
// mismatched degree multisets after domain prefiltering) reports
// StatusUnsatisfiable with Nodes == 0 — pruning, not branching.
func Solve(p *Problem, opts Options) Result {
	budget := opts.NodeBudget
	if budget <= 0 {
		budget = DefaultNodeBudget
	}
	s := &solver{p: p, domains: cloneDomains(p.Domains), budget: budget, log: opts.Logger}

	if !s.propagate() {
		return Result{Status: StatusUnsatisfiable, Nodes: s.nodes}
	}

	for {
		x := s.selectVariable()
		if x < 0 {
			// Every domain is a singleton and propagation holds: solved.
			return Result{Status: StatusSolved, Assignment: s.extract(), Nodes: s.nodes}
		}
		s.push(x)

		// Advance the top frame to its next consistent value, popping
		// exhausted frames as needed.
		for {
			if len(s.stack) == 0 {
				return Result{Status: StatusUnsatisfiable, Nodes: s.nodes}
			}
			top := &s.stack[len(s.stack)-1]
			if top.next >= len(top.values) {
				s.stack = s.stack[:len(s.stack)-1]
				continue
			}
			val := top.values[top.next]
			top.next++

			s.nodes++
			if s.nodes > s.budget {
				if s.log != nil {
					s.log.Debug("node budget exceeded", slog.Int("nodes", s.nodes))
				}
				return Result{Status: StatusExhausted, Nodes: s.nodes}
			}

			s.domains = cloneDomains(top.saved)
			s.domains[top.x] = []int{val}
			if s.propagate() {
				break
			}
		}
	}
}

// push opens a branching frame for variable x.
func (s *solver) push(x int) {
	s.stack = append(s.stack, frame{
		x:      x,
		values: append([]int(nil), s.domains[x]...),
		saved:  cloneDomains(s.domains),
	})
}

// selectVariable returns the unassigned variable with the smallest domain,
// ties broken by smallest index, or -1 when all domains are singletons.
func (s *solver) selectVariable() int {
	best, bestSize := -1, int(^uint(0)>>1)
	for x, d := range s.domains {
		if len(d) > 1 && len(d) < bestSize {
			best, bestSize = x, len(d)
		}
	}

	return best
}

// propagate filters every domain to values that have a compatible partner
// in every other variable's domain, repeating until a fixed point.
// Returns false if any domain empties. Complexity per pass: O(n²·d²).
func (s *solver) propagate() bool {
	for changed := true; changed; {
		changed = false
		for x := range s.domains {
			kept := s.domains[x][:0]
			for _, a := range s.domains[x] {
				if s.supported(x, a) {
					kept = append(kept, a)
				} else {
					changed = true
				}
			}
			s.domains[x] = kept
			if len(kept) == 0 {
				return false
			}
		}
	}

	return true
}

// supported reports whether x=a has at least one compatible partner value
// in every other variable's domain.
func (s *solver) supported(x, a int) bool {
	for y := range s.domains {
		if y == x {
			continue
		}
		ok := false
		for _, b := range s.domains[y] {
			if s.p.compatible(x, a, y, b) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}

	return true
}

// extract reads the solved assignment out of singleton domains.
func (s *solver) extract() []int {
	out := make([]int, len(s.domains))
	for x, d := range s.domains {
		out[x] = d[0]
	}

	return out
}

func cloneDomains(d [][]int) [][]int {
	out := make([][]int, len(d))
	for i, row := range d {
		out[i] = append([]int(nil), row...)
	}

	return out
}
