package stamp

import "sync/atomic"

// Generation identifies one incarnation of a brush's stamp image.
// Zero is never issued.
type Generation uint64

// Generations is a monotonically increasing source of Generation values.
//
// Every time a brush discards its stamp image it takes a new value, so an
// external cache keyed on (brush, generation) can detect stale entries.
// A Generations value is safe for concurrent use.
type Generations struct {
	last atomic.Uint64
}

// NewGenerations creates a generation source whose first value is 1.
func NewGenerations() *Generations {
	return &Generations{}
}

// Next returns a value never returned before by this source.
func (g *Generations) Next() Generation {
	return Generation(g.last.Add(1))
}

// Last returns the most recently issued value, or zero.
func (g *Generations) Last() Generation {
	return Generation(g.last.Load())
}

// defaultGenerations serves brushes created without WithGenerations.
var defaultGenerations = NewGenerations()
