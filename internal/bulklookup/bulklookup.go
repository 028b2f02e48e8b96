// Package bulklookup materializes the row grid for LookupTable's
// InsertMultiOp: for a..b pairs over [lower, upper), it computes the
// (a, b, result) triples for a chosen arithmetic/bitwise relation.
// Row generation for distinct 'a' values is independent, so rows are
// computed concurrently in row-chunks with golang.org/x/sync/errgroup.
// Generate returns the grid still delta+bitpack compressed with
// ronanh/intcomp; the caller holds that compressed form and only pays
// the decompression cost in Rows, when it actually needs the triples
// for field embedding.
package bulklookup

import (
	"fmt"
	"math/bits"

	"github.com/ronanh/intcomp"
	"golang.org/x/sync/errgroup"
)

// Op identifies the relation a row grid is generated for.
type Op int

const (
	Add Op = iota
	Mul
	Xor
	And
)

// Row is a single (a, b, result) triple, still in native uint64 form;
// the caller (lookup.Table) is responsible for embedding these into
// the field and tagging the operation family.
type Row struct {
	A, B, Result uint64
}

// CompressedRows is a row grid staged through intcomp's delta+bitpack
// column codec. It holds no plain (a, b, result) triples; Rows
// decompresses them on demand.
type CompressedRows struct {
	n          int
	as, bs, cs []uint64
}

// Len returns the number of rows without decompressing them.
func (c *CompressedRows) Len() int {
	if c == nil {
		return 0
	}
	return c.n
}

// Rows decompresses the grid back into (a, b, result) triples.
func (c *CompressedRows) Rows() []Row {
	if c == nil {
		return nil
	}
	as := intcomp.UncompressUint64(c.as, nil)
	bs := intcomp.UncompressUint64(c.bs, nil)
	cs := intcomp.UncompressUint64(c.cs, nil)
	out := make([]Row, len(as))
	for i := range out {
		out[i] = Row{A: as[i], B: bs[i], Result: cs[i]}
	}
	return out
}

// Generate computes every row for op over a, b in [lower, upper). It
// returns an error if an addition or multiplication overflows uint64
// before the modular reduction can be applied.
func Generate(op Op, lower, upper uint64) (*CompressedRows, error) {
	if upper <= lower {
		return nil, nil
	}
	width := upper - lower
	rows := make([]Row, width*width)

	var g errgroup.Group
	for chunkStart := uint64(0); chunkStart < width; chunkStart++ {
		a := lower + chunkStart
		base := chunkStart * width
		g.Go(func() error {
			for j := uint64(0); j < width; j++ {
				b := lower + j
				result, err := apply(op, a, b, upper)
				if err != nil {
					return err
				}
				rows[base+j] = Row{A: a, B: b, Result: result}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compress(rows), nil
}

func apply(op Op, a, b, bound uint64) (uint64, error) {
	switch op {
	case Add:
		sum, carry := bits.Add64(a, b, 0)
		if carry != 0 {
			return 0, fmt.Errorf("bulklookup: a+b overflows uint64 (a=%d, b=%d)", a, b)
		}
		return sum % bound, nil
	case Mul:
		hi, lo := bits.Mul64(a, b)
		if hi != 0 {
			return 0, fmt.Errorf("bulklookup: a*b overflows uint64 (a=%d, b=%d)", a, b)
		}
		return lo % bound, nil
	case Xor:
		return (a ^ b) % bound, nil
	case And:
		return (a & b) % bound, nil
	default:
		return 0, fmt.Errorf("bulklookup: unknown op %d", op)
	}
}

// compress stages each column through intcomp's delta+bitpack codec,
// returning the compressed form without decoding it back; callers hold
// the compact representation until Rows actually needs the triples.
func compress(rows []Row) *CompressedRows {
	as := make([]uint64, len(rows))
	bs := make([]uint64, len(rows))
	cs := make([]uint64, len(rows))
	for i, r := range rows {
		as[i], bs[i], cs[i] = r.A, r.B, r.Result
	}

	return &CompressedRows{
		n:  len(rows),
		as: intcomp.CompressUint64(as, nil),
		bs: intcomp.CompressUint64(bs, nil),
		cs: intcomp.CompressUint64(cs, nil),
	}
}
