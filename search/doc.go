// Package search is a generic backtracking constraint-satisfaction engine
// with invariant-based domain pruning, used for graph isomorphism, subgraph
// embedding, exact-cover partitioning, and equivariance-constrained
// assignment.
//
// # Model
//
// A Problem is a set of integer variables 0..n-1, a candidate-value domain
// per variable, an optional all-different (injectivity) requirement, and a
// single pairwise constraint predicate Compatible(x, a, y, b) answering
// "may x=a coexist with y=b". Every concrete search in this module — two
// graphs, a graph inside a bigger graph, blocks covering a universe — is
// expressed in exactly this shape by the New* builders.
//
// # State machine
//
//	UNASSIGNED → PROPAGATING → (BRANCHING | SOLVED | FAILED)
//
// Propagation removes from each domain every value with no compatible
// partner in some other variable's domain, repeated to a fixed point; an
// empty domain fails the branch. Branching picks the unassigned variable
// with the smallest domain (ties: smallest index), tries its values in
// domain order, and restores state on backtrack. The search runs on an
// explicit iterative frame stack — recursion depth never grows with the
// search tree.
//
// # Exhaustion is data
//
// Exceeding the node budget yields StatusExhausted, which is NOT the same
// as StatusUnsatisfiable: "ran out of budget" and "proven impossible" must
// never be conflated. Neither is a Go error.
//
// # Local search
//
// For spaces too large to exhaust, Anneal performs seeded simulated
// annealing with a hard step budget and an explicit mismatch-count
// objective. It is a distinct, declared mode: it always returns its
// best-found assignment with a quality score and is never silently
// substituted for exhaustive search.
package search
