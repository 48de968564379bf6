package gf

import "errors"

// Sentinel errors for field construction and scalar arithmetic.
var (
	// ErrNotPrime indicates the requested field order is not a prime number.
	ErrNotPrime = errors.New("gf: field order is not prime")

	// ErrOrderTooLarge indicates the requested order exceeds MaxOrder.
	ErrOrderTooLarge = errors.New("gf: field order exceeds supported maximum")

	// ErrDivisionByZero indicates a multiplicative inverse of zero was requested.
	ErrDivisionByZero = errors.New("gf: division by zero")

	// ErrElementRange indicates an element value outside [0, q).
	ErrElementRange = errors.New("gf: element outside field range")
)

// MaxOrder bounds the supported field order. The geometries in this module
// use q ∈ {2, 3, 5}; the bound leaves headroom without inviting overflow in
// int arithmetic anywhere downstream.
const MaxOrder = 13

// Element is a scalar of GF(q), an integer in [0, q).
// The field it belongs to is carried by the Field value operating on it;
// Element itself is just the reduced residue.
type Element int

// Field is a prime field GF(q). The zero value is unusable; construct via New.
type Field struct {
	q int
}

// New constructs GF(q) for a small prime q.
// Returns ErrNotPrime if q is composite or < 2, ErrOrderTooLarge if q > MaxOrder.
// Complexity: O(√q).
func New(q int) (Field, error) {
	if q < 2 {
		return Field{}, ErrNotPrime
	}
	if q > MaxOrder {
		return Field{}, ErrOrderTooLarge
	}
	for d := 2; d*d <= q; d++ {
		if q%d == 0 {
			return Field{}, ErrNotPrime
		}
	}

	return Field{q: q}, nil
}

// Q returns the field order.
func (f Field) Q() int { return f.q }

// Reduce maps an arbitrary integer into its residue in [0, q).
// Negative inputs reduce correctly (Go's % keeps the dividend's sign).
func (f Field) Reduce(n int) Element {
	r := n % f.q
	if r < 0 {
		r += f.q
	}

	return Element(r)
}

// Add returns a + b (mod q).
func (f Field) Add(a, b Element) Element { return f.Reduce(int(a) + int(b)) }

// Sub returns a - b (mod q).
func (f Field) Sub(a, b Element) Element { return f.Reduce(int(a) - int(b)) }

// Neg returns -a (mod q).
func (f Field) Neg(a Element) Element { return f.Reduce(-int(a)) }

// Mul returns a * b (mod q).
func (f Field) Mul(a, b Element) Element { return f.Reduce(int(a) * int(b)) }

// Inverse returns a⁻¹ via Fermat exponentiation a^(q-2) (q prime).
// Returns ErrDivisionByZero when a ≡ 0.
// Complexity: O(log q) multiplications.
func (f Field) Inverse(a Element) (Element, error) {
	if f.Reduce(int(a)) == 0 {
		return 0, ErrDivisionByZero
	}

	return f.Pow(a, f.q-2), nil
}

// Pow returns a^n (mod q) for n ≥ 0 by binary exponentiation.
func (f Field) Pow(a Element, n int) Element {
	result := Element(1)
	base := f.Reduce(int(a))
	for n > 0 {
		if n&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		n >>= 1
	}

	return result
}

// Check validates that e is a reduced residue of this field.
func (f Field) Check(e Element) error {
	if int(e) < 0 || int(e) >= f.q {
		return ErrElementRange
	}

	return nil
}
