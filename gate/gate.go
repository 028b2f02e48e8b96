// Package gate implements the fluent arithmetic-gate descriptor: pure
// data that accumulates selector and witness state, materialized by
// the circuit package into one row of the constraint matrix.
package gate

import (
	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/variable"
)

// Witness holds the gate's left/right/output wire references. Output
// is optional: if absent, the circuit builder infers it from the gate
// equation.
type Witness struct {
	A, B variable.Variable
	C    *variable.Variable
}

// Gate is the fluent arithmetic-gate descriptor. It is pure data: it
// accumulates state and is materialized elsewhere. The zero value
// is usable directly except for OutSelector, which New sets to -1.
type Gate[E any, PE field.Element[E]] struct {
	witness    *Witness
	hasFanIn3  bool
	q4         E
	w4         variable.Variable
	mulSel     E
	addSelL    E
	addSelR    E
	outSel     E
	constSel   E
	pi         *E
}

// New returns a descriptor with the default selectors:
// q_m=0, q_l=0, q_r=0, q_o=-1, q_c=0, no fourth term, no PI.
func New[E any, PE field.Element[E]]() *Gate[E, PE] {
	g := &Gate[E, PE]{}
	PE(&g.outSel).SetOne()
	PE(&g.outSel).Neg(&g.outSel)
	return g
}

// Witness sets the left and right wires and, optionally, the output
// wire. If c is nil the circuit builder infers it from the gate
// equation.
func (g *Gate[E, PE]) Witness(a, b variable.Variable, c *variable.Variable) *Gate[E, PE] {
	g.witness = &Witness{A: a, B: b, C: c}
	return g
}

// FanIn3 enables the fourth wire, setting its selector q4 and its
// variable w4.
func (g *Gate[E, PE]) FanIn3(q4 E, w4 variable.Variable) *Gate[E, PE] {
	g.hasFanIn3 = true
	g.q4 = q4
	g.w4 = w4
	return g
}

// Mul sets the multiplication selector q_m.
func (g *Gate[E, PE]) Mul(qm E) *Gate[E, PE] {
	g.mulSel = qm
	return g
}

// Add sets the linear selectors q_l and q_r.
func (g *Gate[E, PE]) Add(ql, qr E) *Gate[E, PE] {
	g.addSelL = ql
	g.addSelR = qr
	return g
}

// Out sets the output selector q_o.
func (g *Gate[E, PE]) Out(qo E) *Gate[E, PE] {
	g.outSel = qo
	return g
}

// Constant sets the constant selector q_c.
func (g *Gate[E, PE]) Constant(qc E) *Gate[E, PE] {
	g.constSel = qc
	return g
}

// PI sets the gate's public-input contribution.
func (g *Gate[E, PE]) PI(pi E) *Gate[E, PE] {
	g.pi = &pi
	return g
}

// WitnessWires returns the accumulated witness wires, or nil if Witness was
// never called.
func (g *Gate[E, PE]) WitnessWires() *Witness {
	return g.witness
}

// HasFanIn3 reports whether FanIn3 was called.
func (g *Gate[E, PE]) HasFanIn3() bool { return g.hasFanIn3 }

// FanIn3Selector returns (q4, w4); only meaningful if HasFanIn3.
func (g *Gate[E, PE]) FanIn3Selector() (E, variable.Variable) { return g.q4, g.w4 }

// MulSelector returns q_m.
func (g *Gate[E, PE]) MulSelector() E { return g.mulSel }

// AddSelectors returns (q_l, q_r).
func (g *Gate[E, PE]) AddSelectors() (E, E) { return g.addSelL, g.addSelR }

// OutSelector returns q_o.
func (g *Gate[E, PE]) OutSelector() E { return g.outSel }

// ConstSelector returns q_c.
func (g *Gate[E, PE]) ConstSelector() E { return g.constSel }

// PublicInput returns the gate's PI contribution, or nil if PI was
// never called.
func (g *Gate[E, PE]) PublicInput() *E { return g.pi }
