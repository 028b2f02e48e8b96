package circuit

import (
	"errors"

	"github.com/plonkcore/plonkcore/lookup"
)

// Structural errors: returned values, state left unchanged.
var (
	// ErrPositionAlreadyTaken is returned by AddPI when a target
	// position is already bound to a public input value.
	ErrPositionAlreadyTaken = errors.New("circuit: public input position already taken")

	// ErrElementNotIndexed is returned by the lookup table when a query
	// has no matching row. Alias of lookup.ErrElementNotIndexed so
	// callers can use errors.Is against either package's sentinel.
	ErrElementNotIndexed = lookup.ErrElementNotIndexed

	// ErrInvalidEvalDomainSize is surfaced from an external domain
	// allocator and propagated upward unchanged.
	ErrInvalidEvalDomainSize = errors.New("circuit: invalid evaluation domain size")
)
