package algebra

// Pair is the carrier of [Product]: two values tracked side by side.
type Pair[TA, TB any] struct {
	First  TA
	Second TB
}

// Product runs two semirings in lockstep over the same recurrence, pairing
// their results. Every operation is applied componentwise. Typical use: pair
// a cost semiring with [Count] to get both the minimum cost and how many
// distinct event histories attain it, without a second pass over the
// recurrence.
type Product[TA, TB any] struct {
	A Semiring[TA]
	B Semiring[TB]
}

func (p Product[TA, TB]) Null() Pair[TA, TB] {
	return Pair[TA, TB]{p.A.Null(), p.B.Null()}
}

func (p Product[TA, TB]) Unit() Pair[TA, TB] {
	return Pair[TA, TB]{p.A.Unit(), p.B.Unit()}
}

func (p Product[TA, TB]) Add(x, y Pair[TA, TB]) Pair[TA, TB] {
	return Pair[TA, TB]{p.A.Add(x.First, y.First), p.B.Add(x.Second, y.Second)}
}

func (p Product[TA, TB]) Mul(x, y Pair[TA, TB]) Pair[TA, TB] {
	return Pair[TA, TB]{p.A.Mul(x.First, y.First), p.B.Mul(x.Second, y.Second)}
}
