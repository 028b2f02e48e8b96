package bls12377_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkcore/plonkcore/backend/bls12377"
	"github.com/plonkcore/plonkcore/circuit"
)

func TestNewDomainRejectsNonPowerOfTwo(t *testing.T) {
	_, err := bls12377.NewDomain(3)
	require.ErrorIs(t, err, circuit.ErrInvalidEvalDomainSize)
}

func TestNewDomainRejectsZero(t *testing.T) {
	_, err := bls12377.NewDomain(0)
	require.ErrorIs(t, err, circuit.ErrInvalidEvalDomainSize)
}

func TestNewDomainCardinality(t *testing.T) {
	d, err := bls12377.NewDomain(8)
	require.NoError(t, err)
	require.Equal(t, uint64(8), d.Cardinality())
}

func TestInverseFFTDoesNotMutateInput(t *testing.T) {
	d, err := bls12377.NewDomain(4)
	require.NoError(t, err)

	in := make([]bls12377.Element, 4)
	for i := range in {
		in[i].SetUint64(uint64(i + 1))
	}
	snapshot := make([]bls12377.Element, len(in))
	copy(snapshot, in)

	_ = d.InverseFFT(in)
	for i := range in {
		require.True(t, in[i].Equal(&snapshot[i]))
	}
}

func TestCeilPow2(t *testing.T) {
	cases := map[int]uint64{1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 17: 32}
	for n, want := range cases {
		require.Equal(t, want, bls12377.CeilPow2(n), "n=%d", n)
	}
}
