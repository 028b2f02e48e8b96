package gate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkcore/plonkcore/backend/bls12377"
	"github.com/plonkcore/plonkcore/gate"
	"github.com/plonkcore/plonkcore/variable"
)

type element = bls12377.Element

func feFromInt(v int64) element {
	var e element
	e.SetInt64(v)
	return e
}

func TestNewDefaultsOutSelectorToMinusOne(t *testing.T) {
	g := gate.New[element, *element]()
	want := feFromInt(-1)
	got := g.OutSelector()
	require.True(t, got.Equal(&want))
}

func TestWitnessWiresNilUntilSet(t *testing.T) {
	g := gate.New[element, *element]()
	require.Nil(t, g.WitnessWires())

	a, b := variable.Variable(0), variable.Variable(1)
	g.Witness(a, b, nil)
	w := g.WitnessWires()
	require.NotNil(t, w)
	require.Equal(t, a, w.A)
	require.Equal(t, b, w.B)
	require.Nil(t, w.C)
}

func TestFanIn3SetsSelectorAndWire(t *testing.T) {
	g := gate.New[element, *element]()
	require.False(t, g.HasFanIn3())

	four := variable.Variable(4)
	q4 := feFromInt(7)
	g.FanIn3(q4, four)

	require.True(t, g.HasFanIn3())
	gotQ4, gotW4 := g.FanIn3Selector()
	require.True(t, gotQ4.Equal(&q4))
	require.Equal(t, four, gotW4)
}

func TestFluentChainAccumulatesSelectors(t *testing.T) {
	qm := feFromInt(2)
	ql := feFromInt(3)
	qr := feFromInt(5)
	qo := feFromInt(7)
	qc := feFromInt(11)

	g := gate.New[element, *element]().Mul(qm).Add(ql, qr).Out(qo).Constant(qc)

	gotQm := g.MulSelector()
	gotQl, gotQr := g.AddSelectors()
	gotQo := g.OutSelector()
	gotQc := g.ConstSelector()

	require.True(t, gotQm.Equal(&qm))
	require.True(t, gotQl.Equal(&ql))
	require.True(t, gotQr.Equal(&qr))
	require.True(t, gotQo.Equal(&qo))
	require.True(t, gotQc.Equal(&qc))
}

func TestPublicInputNilUntilSet(t *testing.T) {
	g := gate.New[element, *element]()
	require.Nil(t, g.PublicInput())

	pi := feFromInt(42)
	g.PI(pi)
	got := g.PublicInput()
	require.NotNil(t, got)
	require.True(t, got.Equal(&pi))
}
