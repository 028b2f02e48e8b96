package circuit

import (
	"github.com/bits-and-blooms/bitset"
)

// publicInputs maps a gate index to a field value, plus an ordered set
// of "intended" positions. The bitset gives O(1) duplicate detection;
// the parallel slice preserves insertion order for the producer-side
// surface.
type publicInputs[E any] struct {
	values   map[int]E
	occupied *bitset.BitSet
	order    []int
}

func newPublicInputs[E any]() *publicInputs[E] {
	return &publicInputs[E]{
		values:   make(map[int]E),
		occupied: bitset.New(0),
	}
}

// add inserts values at consecutive positions starting at pos. It
// returns the number of positions occupied, or ErrPositionAlreadyTaken
// if any target position is already bound; on error no state is
// mutated.
func (p *publicInputs[E]) add(pos int, values []E) (int, error) {
	for i := range values {
		if p.occupied.Test(uint(pos + i)) {
			return 0, ErrPositionAlreadyTaken
		}
	}
	for i, v := range values {
		p.values[pos+i] = v
		p.occupied.Set(uint(pos + i))
		p.order = append(p.order, pos+i)
	}
	return len(values), nil
}

// at returns the value bound at position pos, if any.
func (p *publicInputs[E]) at(pos int) (E, bool) {
	v, ok := p.values[pos]
	return v, ok
}

// positions returns the intended positions in insertion order.
func (p *publicInputs[E]) positions() []int {
	out := make([]int, len(p.order))
	copy(out, p.order)
	return out
}

// PublicInputEncoder converts an arbitrary item into one or more field
// elements for AddPI, treating item-encoding as an external
// collaborator. The returned slice's length is the number of
// consecutive positions the item occupies.
type PublicInputEncoder[E any] func(item any) ([]E, error)
