// Package algebra provides the generic semiring algebra the reconciliation
// recurrence is written against. A Semiring[T] is a carrier type T plus four
// operations — Null (additive identity), Unit (multiplicative identity), Add,
// Mul — satisfying the usual semiring laws:
//
//	Add is associative and commutative, Null is its identity
//	Mul is associative, Unit is its identity
//	Mul distributes over Add: x.Mul(y.Add(z)) == x.Mul(y).Add(x.Mul(z))
//	Null is absorbing for Mul: x.Mul(Null) == Null
//
// The recurrence driver (package dp) is written once against Semiring[T] for
// an unbound T; swapping which concrete Semiring it is given changes what
// the recurrence computes without touching a single line of the recurrence
// itself. Each concrete semiring is a type satisfying Semiring[T] for one
// concrete T (the scalar cost semirings and [Pareto] are empty structs;
// [Product], [SingleSelect] and [MultiSelect] hold their component
// semirings as Semiring interface values). The recurrence is generic over
// T and calls the semiring through the Semiring[T] interface, and a single
// computation uses one semiring throughout.
//
// Concrete cost semirings ([MinPlus], [MaxPlus], [Viterbi], [Boolean],
// [Count]) answer "what is the best/any/how-many" over a scalar carrier.
// [Pareto] answers "what are all the non-dominated cost trade-offs" over a
// vector carrier satisfying [Vector]. [Product] runs two semirings side by
// side. [SingleSelect] and [MultiSelect] couple a cost semiring to a second
// "payload" semiring and retain only the payload of cost-optimal solutions —
// the generalization of plain argmin to richer payloads (a solution count, a
// built solution, a set of solutions). [UnitChoice] and [Solutions] lift a
// [Magma] (a single composable "solution builder") into, respectively, a
// semiring that keeps one solution and one that keeps the set of all of
// them.
package algebra
