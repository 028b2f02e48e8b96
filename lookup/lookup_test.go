package lookup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/plonkcore/plonkcore/backend/bls12377"
	"github.com/plonkcore/plonkcore/lookup"
)

type element = bls12377.Element

func TestInsertRowAndLookupRoundTrip(t *testing.T) {
	tbl := lookup.New[element, *element]()
	tbl.InsertRow(
		fe(1), fe(2), fe(3), fe(0),
	)

	got, err := tbl.Lookup(fe(1), fe(2), fe(0))
	require.NoError(t, err)
	require.True(t, got.Equal(ptr(fe(3))))
}

func TestLookupMissReturnsElementNotIndexed(t *testing.T) {
	tbl := lookup.New[element, *element]()
	tbl.InsertRow(fe(1), fe(2), fe(3), fe(0))

	_, err := tbl.Lookup(fe(9), fe(9), fe(0))
	require.ErrorIs(t, err, lookup.ErrElementNotIndexed)
}

func TestInsertAddRowMatchesLookup(t *testing.T) {
	tbl := lookup.New[element, *element]()
	require.NoError(t, tbl.InsertAddRow(6, 7, 1<<16))

	got, err := tbl.Lookup(fe(6), fe(7), feOp(lookup.OpAdd))
	require.NoError(t, err)
	require.True(t, got.Equal(ptr(fe(13))))
}

func TestInsertAddRowOverflowIsError(t *testing.T) {
	tbl := lookup.New[element, *element]()
	maxU64 := ^uint64(0)
	err := tbl.InsertAddRow(maxU64, 1, 1<<16)
	require.Error(t, err)
}

func TestInsertXorRow(t *testing.T) {
	tbl := lookup.New[element, *element]()
	tbl.InsertXorRow(6, 3, 1<<8)

	got, err := tbl.Lookup(fe(6), fe(3), feOp(lookup.OpXor))
	require.NoError(t, err)
	require.True(t, got.Equal(ptr(fe(5))))
}

func TestVecToMultisetProjectsEveryColumn(t *testing.T) {
	tbl := lookup.New[element, *element]()
	tbl.InsertRow(fe(1), fe(2), fe(3), fe(4))
	tbl.InsertRow(fe(5), fe(6), fe(7), fe(8))

	cols := tbl.VecToMultiset()
	require.Len(t, cols, 4)
	for _, c := range cols {
		require.Equal(t, 2, c.Len())
	}
	require.True(t, cols[0][0].Equal(ptr(fe(1))))
	require.True(t, cols[2][1].Equal(ptr(fe(7))))
}

func TestInsertMultiOpGeneratesFullGrid(t *testing.T) {
	tbl, err := lookup.AddTable[element, *element](0, 3)
	require.NoError(t, err)
	require.Equal(t, 1<<3*1<<3, tbl.Size())

	got, err := tbl.Lookup(fe(2), fe(3), feOp(lookup.OpAdd))
	require.NoError(t, err)
	require.True(t, got.Equal(ptr(fe(5))))
}

func fe(v uint64) element {
	var e element
	e.SetUint64(v)
	return e
}

func feOp(v int64) element {
	var e element
	e.SetInt64(v)
	return e
}

func ptr(e element) *element { return &e }
