package gf

import (
	"errors"
	"strconv"
	"strings"
)

// ErrZeroVector indicates projective normalization of the all-zero vector,
// which names no projective point.
var ErrZeroVector = errors.New("gf: zero vector has no projective point")

// Vector is a fixed-length tuple of field elements. Length is the ambient
// dimension (4 or 8 in the geometries this module builds).
type Vector []Element

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Equal reports whether v and w have identical length and entries.
func (v Vector) Equal(w Vector) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i] != w[i] {
			return false
		}
	}

	return true
}

// Key returns a canonical string signature of v, used to deduplicate
// projective points in maps. Entries are comma-joined decimal residues.
func (v Vector) Key() string {
	var sb strings.Builder
	for i, e := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(e)))
	}

	return sb.String()
}

// Normalize returns the canonical projective representative of v: the scalar
// multiple whose first nonzero coordinate equals 1. Two vectors denote the
// same projective point iff their normalized forms are equal.
//
// Steps:
//  1. Locate the first nonzero coordinate; all-zero → ErrZeroVector.
//  2. Scale every coordinate by its inverse.
//
// Idempotent: normalizing an already-normalized vector returns an equal copy.
// The input is never mutated. Complexity: O(len(v)).
func (f Field) Normalize(v Vector) (Vector, error) {
	pivot := -1
	for i, e := range v {
		if f.Reduce(int(e)) != 0 {
			pivot = i
			break
		}
	}
	if pivot < 0 {
		return nil, ErrZeroVector
	}

	inv, err := f.Inverse(v[pivot])
	if err != nil {
		return nil, err // unreachable: pivot is nonzero by construction
	}
	out := make(Vector, len(v))
	for i, e := range v {
		out[i] = f.Mul(e, inv)
	}

	return out, nil
}

// Scale returns s·v without mutating v.
func (f Field) Scale(s Element, v Vector) Vector {
	out := make(Vector, len(v))
	for i, e := range v {
		out[i] = f.Mul(s, e)
	}

	return out
}

// AddVec returns v + w entrywise. Panics are avoided by design: mismatched
// lengths return nil, which callers treat as a programmer error.
func (f Field) AddVec(v, w Vector) Vector {
	if len(v) != len(w) {
		return nil
	}
	out := make(Vector, len(v))
	for i := range v {
		out[i] = f.Add(v[i], w[i])
	}

	return out
}
