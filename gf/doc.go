// Package gf implements arithmetic over prime fields GF(q) for small q,
// together with the vector and matrix primitives the rest of the module
// builds on: fixed-length vectors, projective normalization, and dense
// matrices with exact Gaussian-elimination rank.
//
// Scope is deliberately narrow: q is a small prime (2, 3, 5 and a little
// headroom), elements are plain integers in [0, q), and every operation
// re-reduces its result into that range. Multiplicative inverses are
// computed by Fermat exponentiation a^(q-2); for fields this small a
// lookup table buys nothing.
//
// Projective points: two nonzero vectors denote the same point of
// projective space iff one is a scalar multiple of the other. Normalize
// picks the canonical representative by scaling so the first nonzero
// coordinate equals 1; it is deterministic and idempotent.
//
// Errors:
//
//	ErrNotPrime        - field order is not a prime.
//	ErrOrderTooLarge   - field order exceeds MaxOrder.
//	ErrDivisionByZero  - multiplicative inverse of zero requested.
//	ErrZeroVector      - projective normalization of the all-zero vector.
//	ErrElementRange    - element value outside [0, q).
//	ErrBadShape        - non-positive matrix dimensions.
//	ErrOutOfRange      - matrix index outside valid bounds.
//	ErrShapeMismatch   - incompatible operand dimensions.
//	ErrFieldMismatch   - operands built over different field orders.
//
// All operations are pure; no global state, no hidden randomness.
package gf
