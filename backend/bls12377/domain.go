package bls12377

import (
	"math/bits"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr/fft"

	"github.com/plonkcore/plonkcore/circuit"
	"github.com/plonkcore/plonkcore/field"
)

// Domain adapts gnark-crypto's fft.Domain to field.Domain[fr.Element],
// the external-collaborator contract the core consumes but never
// constructs on its own.
type Domain struct {
	inner *fft.Domain
}

var _ field.Domain[fr.Element] = (*Domain)(nil)

// NewDomain wraps an fft.Domain of the given cardinality. size must be
// a power of two; anything else is circuit.ErrInvalidEvalDomainSize,
// since this is the external domain allocator that error's doc
// comment refers to.
func NewDomain(size uint64) (*Domain, error) {
	if size == 0 || size&(size-1) != 0 {
		return nil, circuit.ErrInvalidEvalDomainSize
	}
	return &Domain{inner: fft.NewDomain(size)}, nil
}

// Cardinality returns the domain size.
func (d *Domain) Cardinality() uint64 { return d.inner.Cardinality }

// Generator returns the domain's primitive root of unity.
func (d *Domain) Generator() fr.Element { return d.inner.Generator }

// CosetShift returns the domain's multiplicative generator, separating
// the four wire columns onto the cosets <g>, u<g>, u^2<g>, u^3<g>.
func (d *Domain) CosetShift() fr.Element { return d.inner.FrMultiplicativeGen }

// InverseFFT interpolates evaluations into coefficient form without
// mutating the argument, using bit-reversed decimation-in-frequency.
func (d *Domain) InverseFFT(evaluations []fr.Element) []fr.Element {
	out := make([]fr.Element, len(evaluations))
	copy(out, evaluations)
	d.inner.FFTInverse(out, fft.DIF)
	fft.BitReverse(out)
	return out
}

// log2Ceil returns ceil(log2(n)), and 0 for n <= 1; CeilPow2 uses it
// to size a domain from a gate count rather than an exact power of two.
func log2Ceil(n int) uint64 {
	if n <= 1 {
		return 0
	}
	return uint64(bits.Len(uint(n - 1)))
}

// CeilPow2 rounds n up to the next power of two, the sizing rule a
// prover uses to pick a circuit's evaluation domain from its gate
// count.
func CeilPow2(n int) uint64 {
	return 1 << log2Ceil(n)
}
