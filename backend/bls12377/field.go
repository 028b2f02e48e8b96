// Package bls12377 wires the generic core in field and circuit to a
// concrete curve: gnark-crypto's bls12-377 scalar field and FFT
// domain, the same pair a plonk-style prover builds a proof against.
package bls12377

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"

	"github.com/plonkcore/plonkcore/field"
)

// Element is bls12-377's scalar field element, aliased so importers
// can instantiate the generic core without naming gnark-crypto
// directly.
type Element = fr.Element

// ptrElement documents, at the type level, that *fr.Element satisfies
// field.Element[fr.Element]: gnark-crypto's generated field types
// already expose exactly the self-mutating method shape the core's
// generic contract requires.
var _ field.Element[fr.Element] = (*fr.Element)(nil)
