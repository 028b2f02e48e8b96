package circuit

import (
	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/gate"
	"github.com/plonkcore/plonkcore/variable"
)

// ConstrainToConstant enforces a = constant by emitting
// q_l=1, q_c=-constant, wire a on all three positions.
func (b *Builder[E, PE, C]) ConstrainToConstant(a variable.Variable, constant E, pi *E) {
	var zero, one E
	PE(&one).SetOne()
	neg := field.Neg[E, PE](constant)
	b.PolyGate(a, a, a, zero, one, zero, zero, neg, pi)
}

// AssertEqual enforces a - b = 0.
func (b *Builder[E, PE, C]) AssertEqual(a, other variable.Variable) {
	var zero, one E
	PE(&one).SetOne()
	negOne := field.Neg[E, PE](one)
	b.PolyGate(a, other, b.zeroVar, zero, one, negOne, zero, zero, nil)
}

// IsZeroWithOutput returns a variable bound to 1 if a's value is zero,
// 0 otherwise, emitting two gates:
//
//	(i)  a*b  = 0
//	(ii) a*y + b - 1 = 0
//
// where y = a^-1 (or 1 if a is zero) is an auxiliary witness.
func (b *Builder[E, PE, C]) IsZeroWithOutput(a variable.Variable) variable.Variable {
	aVal, ok := b.Value(a)
	if !ok {
		panic("circuit: unallocated variable referenced in IsZeroWithOutput")
	}

	var one E
	PE(&one).SetOne()

	var yVal E
	if field.IsZero[E, PE](aVal) {
		yVal = one
	} else {
		yVal = field.Inverse[E, PE](aVal)
	}

	bVal := field.Sub[E, PE](one, field.Mul[E, PE](aVal, yVal))

	y := b.AddInput(yVal)
	bit := b.AddInput(bVal)
	zero := b.ZeroVar()

	b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(a, bit, &zero).Mul(one)
	})

	negOne := field.Neg[E, PE](one)
	b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(a, y, &zero).Mul(one).FanIn3(one, bit).Constant(negOne)
	})

	return bit
}

// IsEqWithOutput returns a variable bound to 1 iff a and b hold equal
// values.
func (b *Builder[E, PE, C]) IsEqWithOutput(a, other variable.Variable) variable.Variable {
	var one E
	PE(&one).SetOne()
	negOne := field.Neg[E, PE](one)

	difference := b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(a, other, nil).Add(one, negOne)
	})
	return b.IsZeroWithOutput(difference)
}

// ConditionalSelect returns bit*choiceA + (1-bit)*choiceB via four
// gates. The caller is responsible for constraining bit to {0,1}.
func (b *Builder[E, PE, C]) ConditionalSelect(bit, choiceA, choiceB variable.Variable) variable.Variable {
	var zero, one E
	PE(&one).SetOne()
	negOne := field.Neg[E, PE](one)
	zeroVar := b.ZeroVar()

	bitTimesA := b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(bit, choiceA, nil).Mul(one)
	})

	oneMinusBit := b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(bit, zeroVar, nil).Add(negOne, zero).Constant(one)
	})

	oneMinusBitChoiceB := b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(oneMinusBit, choiceB, nil).Mul(one)
	})

	return b.ArithmeticGate(func(g *gate.Gate[E, PE]) *gate.Gate[E, PE] {
		return g.Witness(oneMinusBitChoiceB, bitTimesA, nil).Add(one, one)
	})
}

// AddDummyConstraints appends two gates guaranteed to satisfy the gate
// equation and to participate in the lookup argument (q_lookup=1),
// preventing the witness polynomials from being identically zero even
// in a trivial circuit.
func (b *Builder[E, PE, C]) AddDummyConstraints() {
	six := b.AddInput(field.FromUint64[E, PE](6))
	one := b.AddInput(field.FromUint64[E, PE](1))
	seven := b.AddInput(field.FromUint64[E, PE](7))
	minusTwenty := b.AddInput(field.Neg[E, PE](field.FromUint64[E, PE](20)))

	oneE := field.FromUint64[E, PE](1)

	b.appendRow(
		field.FromUint64[E, PE](1), field.FromUint64[E, PE](2), field.FromUint64[E, PE](3),
		field.FromUint64[E, PE](4), field.FromUint64[E, PE](1), field.FromUint64[E, PE](4),
		oneE,
		six, seven, minusTwenty, one, nil,
	)

	b.appendRow(
		field.FromUint64[E, PE](1), field.FromUint64[E, PE](1), field.FromUint64[E, PE](1),
		field.FromUint64[E, PE](1), field.FromUint64[E, PE](1), field.FromUint64[E, PE](127),
		oneE,
		minusTwenty, six, seven, b.zeroVar, nil,
	)
}

// AddDummyLookupTable inserts three rows matching AddDummyConstraints'
// witnesses, giving the lookup argument nonempty table support even in
// a trivial circuit.
func (b *Builder[E, PE, C]) AddDummyLookupTable() {
	t := b.lookupTable
	t.InsertRow(
		field.FromUint64[E, PE](6), field.FromUint64[E, PE](7),
		field.Neg[E, PE](field.FromUint64[E, PE](20)), field.FromUint64[E, PE](1),
	)
	t.InsertRow(
		field.Neg[E, PE](field.FromUint64[E, PE](20)), field.FromUint64[E, PE](6),
		field.FromUint64[E, PE](7), field.Zero[E, PE](),
	)
	t.InsertRow(
		field.FromUint64[E, PE](3), field.FromUint64[E, PE](1),
		field.FromUint64[E, PE](4), field.FromUint64[E, PE](9),
	)
}

// AddBlindingFactors appends the blinding gates that give the witness
// and permutation polynomials at least 3 degrees of freedom at the
// blinded end of each wire polynomial: two gates of fresh random
// witnesses with every selector zero, then one further gate reusing
// two of those randoms in w_l, w_r with the zero variable on w_o, w_4.
func (b *Builder[E, PE, C]) AddBlindingFactors() error {
	var zero E
	var randL, randR variable.Variable

	for i := 0; i < 2; i++ {
		vl, err := field.Random[E, PE](b.rnd)
		if err != nil {
			return err
		}
		vr, err := field.Random[E, PE](b.rnd)
		if err != nil {
			return err
		}
		vo, err := field.Random[E, PE](b.rnd)
		if err != nil {
			return err
		}
		v4, err := field.Random[E, PE](b.rnd)
		if err != nil {
			return err
		}

		randL = b.AddInput(vl)
		randR = b.AddInput(vr)
		randO := b.AddInput(vo)
		rand4 := b.AddInput(v4)

		b.appendRow(zero, zero, zero, zero, zero, zero, zero, randL, randR, randO, rand4, nil)
	}

	b.appendRow(zero, zero, zero, zero, zero, zero, zero, randL, randR, b.zeroVar, b.zeroVar, nil)
	return nil
}
