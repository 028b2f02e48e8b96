// Package snapshot implements a debug/test-fixture export of a
// finalized circuit trace: FromBuilder reads a circuit.Builder's
// selectors, wires, q_lookup participation and lookup-table rows into
// a Trace, which Encode/Decode carry as fxamacker/cbor, always
// compressed with consensys/compress/lzss, and checksummed with
// blake2b so two snapshots can be compared without diffing raw bytes.
//
// This is not verifier-key or proof serialization — it is a debug view
// over the builder's own intermediate arrays, used by tests to assert
// a circuit's shape without re-deriving it by hand.
package snapshot

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/consensys/compress/lzss"
	"github.com/fxamacker/cbor/v2"
	"github.com/icza/bitio"
	"golang.org/x/crypto/blake2b"

	"github.com/plonkcore/plonkcore/circuit"
	"github.com/plonkcore/plonkcore/field"
	"github.com/plonkcore/plonkcore/internal/buildinfo"
	"github.com/plonkcore/plonkcore/variable"
)

// Trace is the point-in-time dump of a finalized circuit builder. All
// field elements are stored as their big-endian byte encoding so the
// format does not depend on any particular curve's Go type.
type Trace struct {
	Version string

	N int

	QM, QL, QR, QO, Q4, QC [][]byte
	QLookup                []bool

	WL, WR, WO, W4 []int

	LookupRows [][4][]byte
}

// FromBuilder dumps a circuit builder's selectors, wires, q_lookup
// participation and lookup-table rows into a Trace, big-endian
// byte-encoding every field element so the result does not depend on
// the builder's curve type.
func FromBuilder[E any, PE field.Element[E], C any](b *circuit.Builder[E, PE, C]) *Trace {
	qm, ql, qr, qo, q4, qc := b.Selectors()
	wl, wr, wo, w4 := b.Wires()
	qLookup := b.LookupSelector()

	t := &Trace{
		N:       b.N(),
		QM:      encodeColumn[E, PE](qm),
		QL:      encodeColumn[E, PE](ql),
		QR:      encodeColumn[E, PE](qr),
		QO:      encodeColumn[E, PE](qo),
		Q4:      encodeColumn[E, PE](q4),
		QC:      encodeColumn[E, PE](qc),
		QLookup: make([]bool, len(qLookup)),
		WL:      encodeWires(wl),
		WR:      encodeWires(wr),
		WO:      encodeWires(wo),
		W4:      encodeWires(w4),
	}
	for i, v := range qLookup {
		t.QLookup[i] = !field.IsZero[E, PE](v)
	}

	rows := b.LookupTable().Rows()
	t.LookupRows = make([][4][]byte, len(rows))
	for i, row := range rows {
		for col := 0; col < 4; col++ {
			t.LookupRows[i][col] = elementBytes[E, PE](row[col])
		}
	}
	return t
}

func encodeColumn[E any, PE field.Element[E]](column []E) [][]byte {
	out := make([][]byte, len(column))
	for i, e := range column {
		out[i] = elementBytes[E, PE](e)
	}
	return out
}

func encodeWires(wires []variable.Variable) []int {
	out := make([]int, len(wires))
	for i, w := range wires {
		out[i] = int(w)
	}
	return out
}

func elementBytes[E any, PE field.Element[E]](e E) []byte {
	var bi big.Int
	PE(&e).BigInt(&bi)
	return bi.Bytes()
}

// Encode cbor-marshals t, then compresses the result with lzss.
func Encode(t *Trace) ([]byte, error) {
	t.Version = buildinfo.String()

	raw, err := cbor.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("snapshot: cbor marshal: %w", err)
	}

	compressor, err := lzss.NewCompressor(defaultDictionary)
	if err != nil {
		return nil, fmt.Errorf("snapshot: build compressor: %w", err)
	}
	compressed, err := compressor.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("snapshot: compress: %w", err)
	}
	return compressed, nil
}

// Decode reverses Encode.
func Decode(compressed []byte) (*Trace, error) {
	raw, err := lzss.Decompress(compressed, defaultDictionary)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decompress: %w", err)
	}
	var t Trace
	if err := cbor.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("snapshot: cbor unmarshal: %w", err)
	}
	return &t, nil
}

// Checksum returns the blake2b-256 digest of an encoded snapshot, for
// cheap regression comparison between two trace dumps.
func Checksum(encoded []byte) ([32]byte, error) {
	return blake2b.Sum256(encoded), nil
}

// defaultDictionary is the (empty) lzss dictionary used for snapshot
// compression; traces are self-contained and don't share a corpus
// across circuits, so no precomputed dictionary is warranted.
var defaultDictionary = []byte{}

// PackLookupSelector packs the q_lookup boolean vector into a bitio
// bitstream, one bit per gate. It is a standalone helper: FromBuilder
// and Encode do not call it, and Trace.QLookup keeps the booleans
// unpacked. The builder's field-element q_lookup column is not changed.
func PackLookupSelector(qLookup []bool) ([]byte, error) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	for _, bit := range qLookup {
		if err := w.WriteBool(bit); err != nil {
			return nil, fmt.Errorf("snapshot: pack q_lookup: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("snapshot: close q_lookup writer: %w", err)
	}
	return buf.Bytes(), nil
}

// UnpackLookupSelector is the inverse of PackLookupSelector.
func UnpackLookupSelector(packed []byte, n int) ([]bool, error) {
	r := bitio.NewReader(bytes.NewReader(packed))
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("snapshot: unpack q_lookup: %w", err)
		}
		out[i] = bit
	}
	return out, nil
}
