// Package variable implements the two smallest building blocks of the
// constraint system: Variable, an opaque handle into the witness, and
// WireData, a tag identifying one of the four wire positions at a gate.
package variable

import "fmt"

// Variable is a reference to a value that has been added to the
// constraint system. Identity is by index; the k-th allocated variable
// has index k. Variables are allocated by
// permutation.Permutation.NewVariable.
type Variable int

// String implements fmt.Stringer.
func (v Variable) String() string {
	return fmt.Sprintf("%d", int(v))
}

// Kind identifies which of the four wire columns a WireData occupies.
type Kind uint8

const (
	Left Kind = iota
	Right
	Output
	Fourth
)

func (k Kind) String() string {
	switch k {
	case Left:
		return "L"
	case Right:
		return "R"
	case Output:
		return "O"
	case Fourth:
		return "4"
	default:
		return "?"
	}
}

// WireData identifies one of the 4n wire slots of a circuit: a column
// (Left/Right/Output/Fourth) and a gate index. Two WireData values are
// equal iff their Kind and Index agree.
type WireData struct {
	Kind  Kind
	Index int
}

func (w WireData) String() string {
	return fmt.Sprintf("%s(%d)", w.Kind, w.Index)
}

// MakeLeft, MakeRight, MakeOutput and MakeFourth are the canonical
// constructors for the four WireData variants, mirroring the
// WireData::Left(i)/Right(i)/Output(i)/Fourth(i) constructors of the
// Rust source.
func MakeLeft(i int) WireData   { return WireData{Kind: Left, Index: i} }
func MakeRight(i int) WireData  { return WireData{Kind: Right, Index: i} }
func MakeOutput(i int) WireData { return WireData{Kind: Output, Index: i} }
func MakeFourth(i int) WireData { return WireData{Kind: Fourth, Index: i} }
