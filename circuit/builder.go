// Package circuit implements the top-level circuit composer: the
// mutable owner of the six selector vectors, four wire vectors, the
// lookup table, the permutation engine, public inputs, and the
// variable-to-value map. It exposes gadget methods that emit one or
// several gates.
package circuit

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/gate"
	"github.com/plonkcore/plonkcore/lookup"
	"github.com/plonkcore/plonkcore/permutation"
	"github.com/plonkcore/plonkcore/variable"
)

// Builder is the circuit's mutable composer. C is a phantom curve tag
// carried but never referenced by the core, mirroring the Rust source's
// CircuitBuilder<F, P> where P: TEModelParameters<BaseField = F> pins
// the base field without introducing any curve arithmetic here.
type Builder[E any, PE field.Element[E], C any] struct {
	n int

	qm, ql, qr, qo, q4, qc []E
	qLookup                []E

	wl, wr, wo, w4 []variable.Variable

	lookupTable *lookup.Table[E, PE]
	perm        *permutation.Permutation

	publicInputs *publicInputs[E]
	encoder      PublicInputEncoder[E]

	values  map[variable.Variable]E
	zeroVar variable.Variable

	rnd io.Reader
	log zerolog.Logger
}

// New creates a circuit builder, preallocating every vector with
// capacity circuitSize, and allocates the zero variable bound to the
// field's zero element.
func New[E any, PE field.Element[E], C any](circuitSize int, opts ...Option[E]) *Builder[E, PE, C] {
	cfg := defaultConfig[E](circuitSize)
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = rand.Reader
	}

	b := &Builder[E, PE, C]{
		qm:           make([]E, 0, circuitSize),
		ql:           make([]E, 0, circuitSize),
		qr:           make([]E, 0, circuitSize),
		qo:           make([]E, 0, circuitSize),
		q4:           make([]E, 0, circuitSize),
		qc:           make([]E, 0, circuitSize),
		qLookup:      make([]E, 0, circuitSize),
		wl:           make([]variable.Variable, 0, circuitSize),
		wr:           make([]variable.Variable, 0, circuitSize),
		wo:           make([]variable.Variable, 0, circuitSize),
		w4:           make([]variable.Variable, 0, circuitSize),
		lookupTable:  lookup.New[E, PE](),
		perm:         permutation.WithCapacity(circuitSize),
		publicInputs: newPublicInputs[E](),
		encoder:      cfg.encoder,
		values:       make(map[variable.Variable]E, circuitSize),
		rnd:          cfg.rand,
		log:          cfg.logger,
	}
	if b.encoder == nil {
		b.encoder = identityEncoder[E]()
	}

	b.zeroVar = b.perm.NewVariable()
	b.values[b.zeroVar] = field.Zero[E, PE]()

	return b
}

func identityEncoder[E any]() PublicInputEncoder[E] {
	return func(item any) ([]E, error) {
		if v, ok := item.(E); ok {
			return []E{v}, nil
		}
		return nil, fmt.Errorf("circuit: cannot encode item of type %T without a configured PublicInputEncoder", item)
	}
}

// N returns the current gate count.
func (b *Builder[E, PE, C]) N() int { return b.n }

// ZeroVar returns the distinguished zero variable.
func (b *Builder[E, PE, C]) ZeroVar() variable.Variable { return b.zeroVar }

// Value returns the field value bound to v.
func (b *Builder[E, PE, C]) Value(v variable.Variable) (E, bool) {
	val, ok := b.values[v]
	return val, ok
}

// Values exposes the variable-to-value map for read-only access by the
// external prover. Callers must not mutate the returned map.
func (b *Builder[E, PE, C]) Values() map[variable.Variable]E {
	return b.values
}

// AddInput allocates a fresh variable and binds it to s.
func (b *Builder[E, PE, C]) AddInput(s E) variable.Variable {
	v := b.perm.NewVariable()
	b.values[v] = s
	return v
}

// Selectors returns the six selector vectors, in parallel order
// (q_m, q_l, q_r, q_o, q_4, q_c).
func (b *Builder[E, PE, C]) Selectors() (qm, ql, qr, qo, q4, qc []E) {
	return b.qm, b.ql, b.qr, b.qo, b.q4, b.qc
}

// LookupSelector returns q_lookup.
func (b *Builder[E, PE, C]) LookupSelector() []E { return b.qLookup }

// Wires returns the four wire vectors.
func (b *Builder[E, PE, C]) Wires() (wl, wr, wo, w4 []variable.Variable) {
	return b.wl, b.wr, b.wo, b.w4
}

// Permutation exposes the permutation engine for σ-polynomial
// derivation by the external prover.
func (b *Builder[E, PE, C]) Permutation() *permutation.Permutation { return b.perm }

// LookupTable exposes the lookup table for multiset projection by the
// external prover.
func (b *Builder[E, PE, C]) LookupTable() *lookup.Table[E, PE] { return b.lookupTable }

// PublicInputAt returns the public-input value bound at a gate index,
// if any.
func (b *Builder[E, PE, C]) PublicInputAt(pos int) (E, bool) {
	return b.publicInputs.at(pos)
}

// PublicInputPositions returns the ordered set of intended public
// input positions.
func (b *Builder[E, PE, C]) PublicInputPositions() []int {
	return b.publicInputs.positions()
}

// AddPI encodes item via the configured PublicInputEncoder and inserts
// the resulting field elements starting at pos.
func (b *Builder[E, PE, C]) AddPI(pos int, item any) error {
	values, err := b.encoder(item)
	if err != nil {
		return fmt.Errorf("circuit: encode public input: %w", err)
	}
	_, err = b.publicInputs.add(pos, values)
	return err
}

// appendRow is the shared tail of every gate-emission path: push the
// six selectors, q_lookup, and four wires, register the occurrence
// with the permutation engine, and advance n. Every public gate
// emission method (PolyGate, the arithmetic-gate materializer, the
// dummy/blinding gadgets) funnels through here so every selector and
// wire vector stays the same length at every externally observable
// point.
func (b *Builder[E, PE, C]) appendRow(qm, ql, qr, qo, q4, qc, qLookupVal E, wl, wr, wo, w4 variable.Variable, pi *E) {
	b.qm = append(b.qm, qm)
	b.ql = append(b.ql, ql)
	b.qr = append(b.qr, qr)
	b.qo = append(b.qo, qo)
	b.q4 = append(b.q4, q4)
	b.qc = append(b.qc, qc)
	b.qLookup = append(b.qLookup, qLookupVal)

	b.wl = append(b.wl, wl)
	b.wr = append(b.wr, wr)
	b.wo = append(b.wo, wo)
	b.w4 = append(b.w4, w4)

	if pi != nil {
		if _, err := b.publicInputs.add(b.n, []E{*pi}); err != nil {
			panic(fmt.Sprintf("circuit: could not insert PI %v at %d: %v", *pi, b.n, err))
		}
	}

	b.perm.AddVariablesToMap(wl, wr, wo, w4, b.n)
	b.n++

	if b.n%gateLogMilestone == 0 {
		b.log.Debug().Int("n", b.n).Msg("gate emission milestone")
	}
}

// gateLogMilestone controls how often gate emission is logged; it is
// not a correctness knob.
const gateLogMilestone = 1 << 16
