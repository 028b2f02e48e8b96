// Package field declares the generic contracts the constraint-system
// core is parameterized over: a prime field element type and an FFT
// domain over that field. Neither contract performs curve arithmetic;
// per the core's scope, curve selection only pins the base field.
//
// Element mirrors the self-mutating, pointer-receiver-returns-self
// method shape used throughout gnark-crypto's generated field types
// (e.g. ecc/bls12-377/fr.Element): every mutator is called on the
// receiver and also returns it, which is what lets generic code chain
// field operations without knowing the concrete type.
package field

import (
	"fmt"
	"io"
	"math/big"
)

// Element is satisfied by a concrete field element type E (typically a
// curve's fr.Element from gnark-crypto) via its pointer type *E.
type Element[E any] interface {
	*E

	Add(a, b *E) *E
	Sub(a, b *E) *E
	Mul(a, b *E) *E
	Neg(a *E) *E
	Square(a *E) *E
	Inverse(a *E) *E

	SetOne() *E
	SetZero() *E
	SetUint64(v uint64) *E
	SetInt64(v int64) *E
	SetBigInt(v *big.Int) *E

	IsZero() bool
	Equal(a *E) bool
	String() string
	BigInt(res *big.Int) *big.Int
	SetBytes(buf []byte) *E
}

// Zero returns the additive identity of E.
func Zero[E any, PE Element[E]]() E {
	var e E
	PE(&e).SetZero()
	return e
}

// One returns the multiplicative identity of E.
func One[E any, PE Element[E]]() E {
	var e E
	PE(&e).SetOne()
	return e
}

// FromUint64 embeds a uint64 into E.
func FromUint64[E any, PE Element[E]](v uint64) E {
	var e E
	PE(&e).SetUint64(v)
	return e
}

// FromInt64 embeds an int64 into E.
func FromInt64[E any, PE Element[E]](v int64) E {
	var e E
	PE(&e).SetInt64(v)
	return e
}

// Add returns a+b without mutating either argument.
func Add[E any, PE Element[E]](a, b E) E {
	var out E
	PE(&out).Add(&a, &b)
	return out
}

// Sub returns a-b without mutating either argument.
func Sub[E any, PE Element[E]](a, b E) E {
	var out E
	PE(&out).Sub(&a, &b)
	return out
}

// Mul returns a*b without mutating either argument.
func Mul[E any, PE Element[E]](a, b E) E {
	var out E
	PE(&out).Mul(&a, &b)
	return out
}

// Neg returns -a without mutating a.
func Neg[E any, PE Element[E]](a E) E {
	var out E
	PE(&out).Neg(&a)
	return out
}

// Inverse returns a^-1. Callers must not call this on the zero element;
// unlike the Rust source's `unwrap_or_else(F::one)` fallback, this core
// keeps that fallback local to the gadgets that need it (is_zero_with_output)
// rather than baking it into the generic helper.
func Inverse[E any, PE Element[E]](a E) E {
	var out E
	PE(&out).Inverse(&a)
	return out
}

// IsZero reports whether a is the additive identity.
func IsZero[E any, PE Element[E]](a E) bool {
	return PE(&a).IsZero()
}

// Equal reports whether a and b represent the same field element.
func Equal[E any, PE Element[E]](a, b E) bool {
	return PE(&a).Equal(&b)
}

// Random draws a field element by reading 48 bytes (enough to reduce
// with negligible bias for any field used in practice) from rng and
// embedding them with SetBytes, which gnark-crypto's generated field
// types reduce modulo the field's characteristic.
func Random[E any, PE Element[E]](rng io.Reader) (E, error) {
	var buf [48]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		var zero E
		return zero, fmt.Errorf("field: draw randomness: %w", err)
	}
	var e E
	PE(&e).SetBytes(buf[:])
	return e, nil
}

// Domain is the external-collaborator contract for an FFT domain over
// E: a multiplicative subgroup of size n with generator omega, and an
// inverse FFT usable to interpolate a length-n evaluation vector into
// coefficient form. The core never constructs a domain and never
// performs an FFT on its own; it only consumes one, as spec'd in §6.
type Domain[E any] interface {
	// Cardinality returns the domain size n.
	Cardinality() uint64

	// Generator returns omega, the n-th root of unity generating the
	// domain's multiplicative subgroup.
	Generator() E

	// InverseFFT interpolates a length-n vector of evaluations over the
	// domain into coefficient form. It does not mutate its argument.
	InverseFFT(evaluations []E) []E

	// CosetShift returns u, the domain's multiplicative-generator coset
	// shift (gnark-crypto's fft.Domain.FrMultiplicativeGen). The four
	// wire columns are separated onto the disjoint cosets <g>, u<g>,
	// u^2<g>, u^3<g>, generalizing the classic 3-coset permutation
	// support construction to the canonical fan-in-4 form.
	CosetShift() E
}
