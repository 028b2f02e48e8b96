package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkcore/plonkcore/backend/bls12377"
	"github.com/plonkcore/plonkcore/circuit"
	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/variable"
)

type element = bls12377.Element
type builder = circuit.Builder[element, *element, struct{}]

func newBuilder(size int) *builder {
	return circuit.New[element, *element, struct{}](size)
}

func fe(v uint64) element { return field.FromUint64[element, *element](v) }

func TestZeroVarIsBoundToZero(t *testing.T) {
	b := newBuilder(8)
	val, ok := b.Value(b.ZeroVar())
	require.True(t, ok)
	require.True(t, field.IsZero[element, *element](val))
}

func TestConstrainToConstantSatisfiesGateEquation(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(7))
	b.ConstrainToConstant(a, fe(7), nil)

	require.Equal(t, 1, b.N())
	requireAllGatesSatisfied(t, b)
}

func TestConstrainToConstantRejectsWrongValue(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(7))
	b.ConstrainToConstant(a, fe(8), nil)

	require.False(t, allGatesSatisfied(b))
}

func TestAssertEqualSatisfiedWhenValuesMatch(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(9))
	other := b.AddInput(fe(9))
	b.AssertEqual(a, other)

	requireAllGatesSatisfied(t, b)
}

func TestIsZeroWithOutputOnNonzeroInput(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(5))
	out := b.IsZeroWithOutput(a)

	val, ok := b.Value(out)
	require.True(t, ok)
	require.True(t, field.IsZero[element, *element](val))
	require.Equal(t, 2, b.N())
	requireAllGatesSatisfied(t, b)
}

func TestIsZeroWithOutputOnZeroInput(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(0))
	out := b.IsZeroWithOutput(a)

	val, ok := b.Value(out)
	require.True(t, ok)
	one := field.One[element, *element]()
	require.True(t, field.Equal[element, *element](val, one))
	requireAllGatesSatisfied(t, b)
}

func TestIsEqWithOutput(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(3))
	other := b.AddInput(fe(3))
	out := b.IsEqWithOutput(a, other)

	val, ok := b.Value(out)
	require.True(t, ok)
	one := field.One[element, *element]()
	require.True(t, field.Equal[element, *element](val, one))
	requireAllGatesSatisfied(t, b)
}

func TestConditionalSelect(t *testing.T) {
	b := newBuilder(8)
	bitOne := b.AddInput(field.One[element, *element]())
	choiceA := b.AddInput(fe(100))
	choiceB := b.AddInput(fe(200))

	result := b.ConditionalSelect(bitOne, choiceA, choiceB)
	val, ok := b.Value(result)
	require.True(t, ok)
	want := fe(100)
	require.True(t, field.Equal[element, *element](val, want))
	requireAllGatesSatisfied(t, b)
}

func TestAddDummyConstraintsAndLookupTableAreConsistent(t *testing.T) {
	b := newBuilder(8)
	b.AddDummyConstraints()
	b.AddDummyLookupTable()

	require.Equal(t, 2, b.N())
	require.Equal(t, 3, b.LookupTable().Size())
	requireAllGatesSatisfied(t, b)
}

func TestAddPIRejectsDuplicatePosition(t *testing.T) {
	b := newBuilder(8)
	require.NoError(t, b.AddPI(0, fe(1)))
	err := b.AddPI(0, fe(2))
	require.ErrorIs(t, err, circuit.ErrPositionAlreadyTaken)
}

func TestAddPIPositionsPreserveInsertionOrder(t *testing.T) {
	b := newBuilder(8)
	require.NoError(t, b.AddPI(3, fe(1)))
	require.NoError(t, b.AddPI(1, fe(2)))
	require.Equal(t, []int{3, 1}, b.PublicInputPositions())
}

func TestPermutationRegistersFourOccurrencesPerGate(t *testing.T) {
	b := newBuilder(8)
	a := b.AddInput(fe(1))
	b.ConstrainToConstant(a, fe(1), nil)

	n := b.Permutation().NumVariables()
	total := 0
	for i := 0; i < n; i++ {
		total += len(b.Permutation().Occurrences(variable.Variable(i)))
	}
	require.Equal(t, 4*b.N(), total)
}

func TestAddBlindingFactorsAppendsThreeZeroSelectorGates(t *testing.T) {
	b := newBuilder(8)
	require.NoError(t, b.AddBlindingFactors())
	require.Equal(t, 3, b.N())
	requireAllGatesSatisfied(t, b)
}

func allGatesSatisfied(b *builder) bool {
	qm, ql, qr, qo, q4, qc := b.Selectors()
	wl, wr, wo, w4 := b.Wires()
	for i := 0; i < b.N(); i++ {
		va, _ := b.Value(wl[i])
		vb, _ := b.Value(wr[i])
		vc, _ := b.Value(wo[i])
		vd, _ := b.Value(w4[i])

		sum := field.Mul[element, *element](field.Mul[element, *element](qm[i], va), vb)
		sum = field.Add[element, *element](sum, field.Mul[element, *element](ql[i], va))
		sum = field.Add[element, *element](sum, field.Mul[element, *element](qr[i], vb))
		sum = field.Add[element, *element](sum, field.Mul[element, *element](qo[i], vc))
		sum = field.Add[element, *element](sum, field.Mul[element, *element](q4[i], vd))
		sum = field.Add[element, *element](sum, qc[i])

		if pi, ok := b.PublicInputAt(i); ok {
			sum = field.Add[element, *element](sum, pi)
		}

		if !field.IsZero[element, *element](sum) {
			return false
		}
	}
	return true
}

func requireAllGatesSatisfied(t *testing.T, b *builder) {
	t.Helper()
	require.True(t, allGatesSatisfied(b), "not every gate satisfies the gate equation")
}
