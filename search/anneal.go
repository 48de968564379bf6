package search

import (
	"log/slog"
	"math"
	"math/rand"
)

// Annealing defaults.
const (
	// DefaultStepBudget is the hard step ceiling for Anneal.
	DefaultStepBudget = 100000

	// defaultStartTemp and defaultEndTemp bound the geometric cooling
	// schedule in objective units (one mismatch ≈ one unit).
	defaultStartTemp = 2.0
	defaultEndTemp   = 0.01
)

// AnnealOptions configures local search. The zero value is usable.
type AnnealOptions struct {
	// StepBudget is the hard step ceiling (default DefaultStepBudget).
	// Anneal terminates unconditionally at the budget regardless of
	// convergence.
	StepBudget int

	// Seed initializes the pseudo-random generator; runs with equal seeds
	// and inputs are identical.
	Seed int64

	// Logger receives progress at Debug; nil disables logging.
	Logger *slog.Logger
}

// AnnealResult is the best-found (possibly imperfect) assignment and its
// mismatch objective. Objective 0 means every constraint holds.
type AnnealResult struct {
	Assignment []int
	Objective  int
	Steps      int
}

// Anneal minimizes the number of violated variable pairs by simulated
// annealing over full assignments drawn from the domains.
//
// This is the DECLARED degradation mode for search spaces too large to
// exhaust: it never raises, always returns its best assignment with the
// objective value, and must never be silently substituted for Solve —
// callers choose it explicitly.
//
// Moves: reassign one uniformly random variable to a uniformly random
// domain value; accept improvements always, regressions with probability
// exp(−Δ/T) under a geometric cooling schedule. Complexity: O(budget·n)
// with incremental objective deltas.
func Anneal(p *Problem, opts AnnealOptions) AnnealResult {
	budget := opts.StepBudget
	if budget <= 0 {
		budget = DefaultStepBudget
	}
	rng := rand.New(rand.NewSource(opts.Seed))
	n := len(p.Domains)

	// Random initial assignment.
	cur := make([]int, n)
	for x, d := range p.Domains {
		cur[x] = d[rng.Intn(len(d))]
	}
	curObj := totalMismatch(p, cur)
	best := append([]int(nil), cur...)
	bestObj := curObj

	cooling := math.Pow(defaultEndTemp/defaultStartTemp, 1/math.Max(1, float64(budget)))
	temp := defaultStartTemp

	steps := 0
	for ; steps < budget && bestObj > 0; steps++ {
		x := rng.Intn(n)
		d := p.Domains[x]
		candidate := d[rng.Intn(len(d))]
		if candidate == cur[x] {
			temp *= cooling
			continue
		}
		delta := pairMismatch(p, cur, x, candidate) - pairMismatch(p, cur, x, cur[x])
		if delta <= 0 || rng.Float64() < math.Exp(-float64(delta)/temp) {
			cur[x] = candidate
			curObj += delta
			if curObj < bestObj {
				bestObj = curObj
				copy(best, cur)
				if opts.Logger != nil {
					opts.Logger.Debug("annealing improved",
						slog.Int("objective", bestObj), slog.Int("step", steps))
				}
			}
		}
		temp *= cooling
	}

	return AnnealResult{Assignment: best, Objective: bestObj, Steps: steps}
}

// totalMismatch counts violated unordered pairs under assignment a.
func totalMismatch(p *Problem, a []int) int {
	obj := 0
	for x := 0; x < len(a); x++ {
		for y := x + 1; y < len(a); y++ {
			if !p.compatible(x, a[x], y, a[y]) {
				obj++
			}
		}
	}

	return obj
}

// pairMismatch counts violations of pairs involving x if x were assigned v.
func pairMismatch(p *Problem, a []int, x, v int) int {
	obj := 0
	for y := 0; y < len(a); y++ {
		if y == x {
			continue
		}
		if !p.compatible(x, v, y, a[y]) {
			obj++
		}
	}

	return obj
}
