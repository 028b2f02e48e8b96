// Package permutation implements the copy-constraint permutation
// engine: it tracks every wire position each variable occupies and
// later derives the four sigma permutations the permutation argument
// needs to weld co-occurring wires together.
package permutation

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/variable"
)

// occurrenceCapacityHint is the per-variable occurrence-slice capacity
// used when a variable is first allocated; ported from the source's
// Vec::with_capacity(16) best-guess estimate.
const occurrenceCapacityHint = 16

// Permutation tracks, for every allocated Variable, the ordered
// sequence of WireData positions it occupies. It is an arena keyed by
// the variable's small integer id; there are no back-references from
// wire positions to variables, per design note §9.
type Permutation struct {
	variableMap map[variable.Variable][]variable.WireData
	nextID      int
}

// New creates an empty Permutation.
func New() *Permutation {
	return WithCapacity(0)
}

// WithCapacity creates an empty Permutation, preallocating the
// variable-map for expectedSize variables.
func WithCapacity(expectedSize int) *Permutation {
	return &Permutation{
		variableMap: make(map[variable.Variable][]variable.WireData, expectedSize),
	}
}

// NewVariable allocates a fresh Variable and initializes its occurrence
// sequence to empty (capacity-hinted). Variables are allocated
// monotonically: the k-th call returns the variable with index k.
func (p *Permutation) NewVariable() variable.Variable {
	v := variable.Variable(p.nextID)
	p.nextID++
	p.variableMap[v] = make([]variable.WireData, 0, occurrenceCapacityHint)
	return v
}

func (p *Permutation) validVariables(vars ...variable.Variable) bool {
	for _, v := range vars {
		if _, ok := p.variableMap[v]; !ok {
			return false
		}
	}
	return true
}

// AddVariablesToMap registers one occurrence of each of a, b, c, d at
// gateIndex, in their respective wire columns (Left, Right, Output,
// Fourth). It panics if any variable was not previously allocated by
// this Permutation.
func (p *Permutation) AddVariablesToMap(a, b, c, d variable.Variable, gateIndex int) {
	p.addOne(a, variable.MakeLeft(gateIndex))
	p.addOne(b, variable.MakeRight(gateIndex))
	p.addOne(c, variable.MakeOutput(gateIndex))
	p.addOne(d, variable.MakeFourth(gateIndex))
}

func (p *Permutation) addOne(v variable.Variable, w variable.WireData) {
	if !p.validVariables(v) {
		panic(fmt.Sprintf("permutation: unallocated variable %s referenced at %s", v, w))
	}
	p.variableMap[v] = append(p.variableMap[v], w)
}

// Occurrences returns the recorded wire positions for v, in insertion
// order. It does not copy defensively; callers must not mutate the
// returned slice.
func (p *Permutation) Occurrences(v variable.Variable) []variable.WireData {
	return p.variableMap[v]
}

// NumVariables returns the number of variables allocated so far.
func (p *Permutation) NumVariables() int {
	return p.nextID
}

// ComputeSigmaPermutations produces the four sigma vectors (one per
// wire column) of length n each. Each sigma column starts as the
// identity mapping i -> Column(i); then, for every variable's
// occurrence sequence, each position's image is replaced with the
// cyclically-next occurrence. The result is that every variable's
// occurrences form a single cycle in the combined sigma, which is the
// invariant the permutation argument requires.
func (p *Permutation) ComputeSigmaPermutations(n int) [4][]variable.WireData {
	sigmaL := make([]variable.WireData, n)
	sigmaR := make([]variable.WireData, n)
	sigmaO := make([]variable.WireData, n)
	sigma4 := make([]variable.WireData, n)
	for i := 0; i < n; i++ {
		sigmaL[i] = variable.MakeLeft(i)
		sigmaR[i] = variable.MakeRight(i)
		sigmaO[i] = variable.MakeOutput(i)
		sigma4[i] = variable.MakeFourth(i)
	}
	sigmas := [4][]variable.WireData{sigmaL, sigmaR, sigmaO, sigma4}

	// Iterate variables in a deterministic order so ComputeSigmaPermutations
	// is a pure function of the variable map, rather than depending on
	// Go's randomized map iteration order.
	ids := make([]variable.Variable, 0, len(p.variableMap))
	for v := range p.variableMap {
		ids = append(ids, v)
	}
	slices.Sort(ids)

	for _, v := range ids {
		occ := p.variableMap[v]
		for idx, cur := range occ {
			nextIdx := idx + 1
			if nextIdx == len(occ) {
				nextIdx = 0
			}
			next := occ[nextIdx]
			sigmas[columnOf(cur)][cur.Index] = next
		}
	}
	return sigmas
}

func columnOf(w variable.WireData) int {
	switch w.Kind {
	case variable.Left:
		return 0
	case variable.Right:
		return 1
	case variable.Output:
		return 2
	case variable.Fourth:
		return 3
	default:
		panic(fmt.Sprintf("permutation: unknown wire kind in %s", w))
	}
}

// ComputeSigmaPolynomials computes the sigma polynomials used to build
// the permutation polynomial, generalizing the classic 3-coset support
// construction to the canonical 4-wire form: WireData is encoded as a
// field element on one of the four disjoint cosets <g>, u<g>, u^2<g>,
// u^3<g> of the domain (u = domain.CosetShift()), then each length-n
// column is interpolated with an inverse FFT to obtain its
// coefficient-form polynomial.
func ComputeSigmaPolynomials[E any, PE field.Element[E]](p *Permutation, n int, domain field.Domain[E]) [4][]E {
	sigmas := p.ComputeSigmaPermutations(n)
	return computeSigmaPolynomialsFromMappings[E, PE](sigmas, domain)
}

// computeSigmaPolynomialsFromMappings is split out from
// ComputeSigmaPolynomials purely so the Lagrange-encoding step
// (compute_permutation_lagrange in the source) reads as its own
// function, the way the Rust source keeps it as a separate method.
func computeSigmaPolynomialsFromMappings[E any, PE field.Element[E]](sigmas [4][]variable.WireData, domain field.Domain[E]) [4][]E {
	u := domain.CosetShift()
	k1 := u
	var k2, k3 E
	PE(&k2).Mul(&k1, &u)
	PE(&k3).Mul(&k2, &u)

	n := int(domain.Cardinality())
	roots := make([]E, n)
	var cur E
	PE(&cur).SetOne()
	gen := domain.Generator()
	for i := 0; i < n; i++ {
		roots[i] = cur
		var next E
		PE(&next).Mul(&cur, &gen)
		cur = next
	}

	lagrange := func(mapping []variable.WireData) []E {
		out := make([]E, len(mapping))
		for i, w := range mapping {
			root := roots[w.Index]
			switch w.Kind {
			case variable.Left:
				out[i] = root
			case variable.Right:
				var r E
				PE(&r).Mul(&k1, &root)
				out[i] = r
			case variable.Output:
				var r E
				PE(&r).Mul(&k2, &root)
				out[i] = r
			case variable.Fourth:
				var r E
				PE(&r).Mul(&k3, &root)
				out[i] = r
			}
		}
		return out
	}

	var result [4][]E
	for i, mapping := range sigmas {
		evals := lagrange(mapping)
		result[i] = domain.InverseFFT(evals)
	}
	return result
}
