// Package lookup implements the plookup-style lookup table: an
// ordered sequence of 4-column relation rows, constructors for the
// arithmetic/bitwise relation families, a query operation, and the
// per-column multiset projection the prover consumes.
package lookup

import (
	"errors"
	"fmt"

	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/internal/bulklookup"
)

// ErrElementNotIndexed is returned by Lookup when no row matches the
// queried (a, b, d) triple.
var ErrElementNotIndexed = errors.New("lookup: element not indexed")

// Operation tags a relation family; callers may use any domain code,
// but the four row constructors below use the classic plookup tags.
const (
	OpAdd = 0
	OpMul = 1
	OpXor = -1
	OpAnd = 2
)

// Row is a single 4-tuple [a, b, c, d]: the first two columns are
// inputs, the third is the output, the fourth tags the operation
// family.
type Row[E any] [4]E

// MultiSet is an ordered multiset over E: one projected column of a
// Table, in row order.
type MultiSet[E any] []E

// Push appends e to the multiset.
func (m *MultiSet[E]) Push(e E) {
	*m = append(*m, e)
}

// Len returns the number of elements.
func (m MultiSet[E]) Len() int { return len(m) }

// Table is an ordered sequence of 4-tuples of field elements.
// Insertion never deduplicates.
type Table[E any, PE field.Element[E]] struct {
	rows []Row[E]
}

// New creates an empty, arity-4 lookup table.
func New[E any, PE field.Element[E]]() *Table[E, PE] {
	return &Table[E, PE]{}
}

// Size returns the number of rows currently in the table.
func (t *Table[E, PE]) Size() int {
	return len(t.rows)
}

// Rows returns the table's rows in insertion order. Callers must not
// mutate the returned slice.
func (t *Table[E, PE]) Rows() []Row[E] {
	return t.rows
}

func (t *Table[E, PE]) push(row Row[E]) {
	t.rows = append(t.rows, row)
}

// InsertRow appends an arbitrary row [a, b, c, d].
func (t *Table[E, PE]) InsertRow(a, b, c, d E) {
	t.push(Row[E]{a, b, c, d})
}

// InsertAddRow appends [a, b, (a+b) mod bound, OpAdd], field-embedded.
// If a+b overflows uint64, it returns an error and inserts no row; it
// does not panic.
func (t *Table[E, PE]) InsertAddRow(a, b, bound uint64) error {
	c, err := addModDirect(a, b, bound)
	if err != nil {
		return err
	}
	t.InsertRow(
		field.FromUint64[E, PE](a),
		field.FromUint64[E, PE](b),
		field.FromUint64[E, PE](c),
		field.FromInt64[E, PE](OpAdd),
	)
	return nil
}

// InsertMulRow appends [a, b, (a*b) mod bound, OpMul], field-embedded.
func (t *Table[E, PE]) InsertMulRow(a, b, bound uint64) error {
	c, err := mulMod(a, b, bound)
	if err != nil {
		return err
	}
	t.InsertRow(
		field.FromUint64[E, PE](a),
		field.FromUint64[E, PE](b),
		field.FromUint64[E, PE](c),
		field.FromInt64[E, PE](OpMul),
	)
	return nil
}

// InsertXorRow appends [a, b, (a^b) mod bound, OpXor], field-embedded.
func (t *Table[E, PE]) InsertXorRow(a, b, bound uint64) {
	c := (a ^ b) % bound
	t.InsertRow(
		field.FromUint64[E, PE](a),
		field.FromUint64[E, PE](b),
		field.FromUint64[E, PE](c),
		field.FromInt64[E, PE](OpXor),
	)
}

// InsertAndRow appends [a, b, (a&b) mod bound, OpAnd], field-embedded.
func (t *Table[E, PE]) InsertAndRow(a, b, bound uint64) {
	c := (a & b) % bound
	t.InsertRow(
		field.FromUint64[E, PE](a),
		field.FromUint64[E, PE](b),
		field.FromUint64[E, PE](c),
		field.FromInt64[E, PE](OpAnd),
	)
}

// InsertMultiOp inserts every row for a, b in [lower, 2^n) for the
// given operation, generating the grid concurrently via
// internal/bulklookup and then field-embedding each row in insertion
// order (row order is a-major, b-minor, matching the nested-loop order
// of the source this was distilled from).
func (t *Table[E, PE]) InsertMultiOp(op bulklookup.Op, lower uint64, n uint32) error {
	upper := uint64(1) << n
	compressed, err := bulklookup.Generate(op, lower, upper)
	if err != nil {
		return err
	}
	rows := compressed.Rows()
	tag := opTag(op)
	t.rows = append(t.rows, make([]Row[E], len(rows))...)
	base := len(t.rows) - len(rows)
	for i, r := range rows {
		t.rows[base+i] = Row[E]{
			field.FromUint64[E, PE](r.A),
			field.FromUint64[E, PE](r.B),
			field.FromUint64[E, PE](r.Result),
			field.FromInt64[E, PE](tag),
		}
	}
	return nil
}

func opTag(op bulklookup.Op) int64 {
	switch op {
	case bulklookup.Add:
		return OpAdd
	case bulklookup.Mul:
		return OpMul
	case bulklookup.Xor:
		return OpXor
	case bulklookup.And:
		return OpAnd
	default:
		panic(fmt.Sprintf("lookup: unknown op %d", op))
	}
}

// Lookup finds the first row whose first, second and fourth columns
// match (a, b, d) and returns its third column. Returning the first
// match is required so callers may rely on insertion order.
func (t *Table[E, PE]) Lookup(a, b, d E) (E, error) {
	for _, row := range t.rows {
		if field.Equal[E, PE](row[0], a) && field.Equal[E, PE](row[1], b) && field.Equal[E, PE](row[3], d) {
			return row[2], nil
		}
	}
	var zero E
	return zero, ErrElementNotIndexed
}

// VecToMultiset projects the table into four multisets, one per
// column, in row order.
func (t *Table[E, PE]) VecToMultiset() [4]MultiSet[E] {
	var result [4]MultiSet[E]
	for i := range result {
		result[i] = make(MultiSet[E], 0, len(t.rows))
	}
	for _, row := range t.rows {
		for i := 0; i < 4; i++ {
			result[i].Push(row[i])
		}
	}
	return result
}

// AddTable creates a table populated with every addition row for
// addends in [lower, 2^n).
func AddTable[E any, PE field.Element[E]](lower uint64, n uint32) (*Table[E, PE], error) {
	t := New[E, PE]()
	if err := t.InsertMultiOp(bulklookup.Add, lower, n); err != nil {
		return nil, err
	}
	return t, nil
}

// MulTable creates a table populated with every multiplication row for
// factors in [lower, 2^n).
func MulTable[E any, PE field.Element[E]](lower uint64, n uint32) (*Table[E, PE], error) {
	t := New[E, PE]()
	if err := t.InsertMultiOp(bulklookup.Mul, lower, n); err != nil {
		return nil, err
	}
	return t, nil
}

// XorTable creates a table populated with every XOR row for operands
// in [lower, 2^n).
func XorTable[E any, PE field.Element[E]](lower uint64, n uint32) (*Table[E, PE], error) {
	t := New[E, PE]()
	if err := t.InsertMultiOp(bulklookup.Xor, lower, n); err != nil {
		return nil, err
	}
	return t, nil
}

func addModDirect(a, b, bound uint64) (uint64, error) {
	sum := a + b
	if sum < a {
		return 0, fmt.Errorf("lookup: a+b overflows uint64 (a=%d, b=%d)", a, b)
	}
	return sum % bound, nil
}

func mulMod(a, b, bound uint64) (uint64, error) {
	if a != 0 && b > (^uint64(0))/a {
		return 0, fmt.Errorf("lookup: a*b overflows uint64 (a=%d, b=%d)", a, b)
	}
	return (a * b) % bound, nil
}
