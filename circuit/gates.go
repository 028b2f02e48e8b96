package circuit

import (
	"fmt"

	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/gate"
	"github.com/plonkcore/plonkcore/variable"
)

// PolyGate emits one raw 3-wire gate satisfying
//
//	q_m*(a*b) + q_l*a + q_r*b + q_o*c + q_c + pi = 0
//
// The fourth wire is filled with the zero variable and q_4 with zero,
// so every gate shares the same canonical 4-wire shape even for this
// 3-wire-shaped raw entry point.
func (b *Builder[E, PE, C]) PolyGate(a, rw, c variable.Variable, qm, ql, qr, qo, qc E, pi *E) (variable.Variable, variable.Variable, variable.Variable) {
	var zero E
	b.appendRow(qm, ql, qr, qo, zero, qc, zero, a, rw, c, b.zeroVar, pi)
	return a, rw, c
}

// ArithmeticGate materializes a gate.Gate descriptor built by fn: if
// the descriptor's output wire is absent, the output value is solved
// from the gate equation and bound to a fresh variable. It returns the
// output variable.
func (b *Builder[E, PE, C]) ArithmeticGate(fn func(*gate.Gate[E, PE]) *gate.Gate[E, PE]) variable.Variable {
	g := fn(gate.New[E, PE]())

	w := g.WitnessWires()
	if w == nil {
		panic("circuit: arithmetic gate descriptor has no witness wires")
	}

	var d variable.Variable
	var q4 E
	if g.HasFanIn3() {
		q4, d = g.FanIn3Selector()
	} else {
		d = b.zeroVar
	}

	qm := g.MulSelector()
	ql, qr := g.AddSelectors()
	qo := g.OutSelector()
	qc := g.ConstSelector()
	pi := g.PublicInput()

	var c variable.Variable
	if w.C != nil {
		c = *w.C
	} else {
		c = b.solveOutput(w.A, w.B, d, qm, ql, qr, qo, q4, qc, pi)
	}

	var zero E
	b.appendRow(qm, ql, qr, qo, q4, qc, zero, w.A, w.B, c, d, pi)
	return c
}

// solveOutput computes the output value that makes the gate equation
// hold and binds it to a fresh variable, given q_o != 0; a nil c with
// q_o == 0 is an underdetermined descriptor, a fatal error.
func (b *Builder[E, PE, C]) solveOutput(a, rw, d variable.Variable, qm, ql, qr, qo, q4, qc E, pi *E) variable.Variable {
	if field.IsZero[E, PE](qo) {
		panic("circuit: invalid gate descriptor: output wire absent and q_o is zero")
	}

	va, ok := b.Value(a)
	if !ok {
		panic(fmt.Sprintf("circuit: unallocated variable %s referenced as left wire", a))
	}
	vb, ok := b.Value(rw)
	if !ok {
		panic(fmt.Sprintf("circuit: unallocated variable %s referenced as right wire", rw))
	}
	vd, ok := b.Value(d)
	if !ok {
		panic(fmt.Sprintf("circuit: unallocated variable %s referenced as fourth wire", d))
	}

	sum := field.Mul[E, PE](field.Mul[E, PE](qm, va), vb)
	sum = field.Add[E, PE](sum, field.Mul[E, PE](ql, va))
	sum = field.Add[E, PE](sum, field.Mul[E, PE](qr, vb))
	sum = field.Add[E, PE](sum, field.Mul[E, PE](q4, vd))
	sum = field.Add[E, PE](sum, qc)
	if pi != nil {
		sum = field.Add[E, PE](sum, *pi)
	}

	qoInv := field.Inverse[E, PE](qo)
	out := field.Neg[E, PE](field.Mul[E, PE](sum, qoInv))

	return b.AddInput(out)
}
