package dp

import (
	"github.com/arborea/superdtlx/algebra"
	"github.com/arborea/superdtlx/event"
)

// Algebra bundles a concrete [algebra.Semiring] with the domain-specific
// factory the recurrence needs to turn a primitive [event.Event] into a
// value of that semiring's carrier type — the Go equivalent of the
// original source's Semiring classes each exposing their own `make`
// classmethod alongside null/unit/add/mul.
type Algebra[T any] struct {
	Semiring algebra.Semiring[T]
	Make     func(event.Event) T
}

func (a Algebra[T]) null() T            { return a.Semiring.Null() }
func (a Algebra[T]) add(x, y T) T       { return a.Semiring.Add(x, y) }
func (a Algebra[T]) mul(x, y T) T       { return a.Semiring.Mul(x, y) }
func (a Algebra[T]) make(e event.Event) T { return a.Make(e) }
