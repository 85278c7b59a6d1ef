package algebra

import "math"

// Semiring is a carrier type T together with the four operations the
// recurrence driver composes solutions with. Null is the additive identity
// (the cost/value of "no solution"), Unit is the multiplicative identity
// (the cost/value of "the empty composition"), Add combines alternative
// solutions, and Mul combines solutions to sub-problems into one solution to
// the combined problem.
type Semiring[T any] interface {
	Null() T
	Unit() T
	Add(a, b T) T
	Mul(a, b T) T
}

// MinPlus is the tropical (min, +) semiring over float64: Add keeps the
// cheaper of two costs, Mul adds costs along a path. Null is +Inf (no
// solution costs infinitely much), Unit is 0 (an empty path costs nothing).
// Used for ordinary minimum-cost reconciliation.
type MinPlus struct{}

func (MinPlus) Null() float64           { return math.Inf(1) }
func (MinPlus) Unit() float64           { return 0 }
func (MinPlus) Add(a, b float64) float64 { return math.Min(a, b) }
func (MinPlus) Mul(a, b float64) float64 { return a + b }

// MaxPlus is the dual (max, +) semiring: Add keeps the larger of two
// scores. Null is -Inf, Unit is 0.
type MaxPlus struct{}

func (MaxPlus) Null() float64           { return math.Inf(-1) }
func (MaxPlus) Unit() float64           { return 0 }
func (MaxPlus) Add(a, b float64) float64 { return math.Max(a, b) }
func (MaxPlus) Mul(a, b float64) float64 { return a + b }

// Viterbi is the (max, x) semiring over probabilities in [0, 1]: Add keeps
// the more likely of two alternatives, Mul multiplies probabilities along a
// path. Null is 0 (impossible), Unit is 1 (certain).
type Viterbi struct{}

func (Viterbi) Null() float64            { return 0 }
func (Viterbi) Unit() float64            { return 1 }
func (Viterbi) Add(a, b float64) float64 { return math.Max(a, b) }
func (Viterbi) Mul(a, b float64) float64 { return a * b }

// Boolean is the (or, and) semiring: Add is logical-or, Mul is logical-and.
// Answers reachability questions ("does any valid solution exist").
type Boolean struct{}

func (Boolean) Null() bool         { return false }
func (Boolean) Unit() bool         { return true }
func (Boolean) Add(a, b bool) bool { return a || b }
func (Boolean) Mul(a, b bool) bool { return a && b }

// Count is the (+, x) semiring over non-negative integers: Add sums
// alternative counts, Mul multiplies independent sub-problem counts. Null is
// 0, Unit is 1. Answers "how many solutions" questions; combined with
// [SingleSelect] it answers "how many solutions attain the minimum cost".
type Count struct{}

func (Count) Null() uint64             { return 0 }
func (Count) Unit() uint64             { return 1 }
func (Count) Add(a, b uint64) uint64   { return a + b }
func (Count) Mul(a, b uint64) uint64   { return a * b }
