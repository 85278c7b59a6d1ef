package algebra

// Selection is the carrier of [SingleSelect]: the cost of the best solutions
// seen so far, paired with the payload accumulated over exactly those
// solutions.
type Selection[TC comparable, TV any] struct {
	Cost    TC
	Payload TV
}

// SingleSelect couples a cost semiring Cost (required to be additively
// idempotent: Cost.Add(x, x) == x, as [MinPlus], [MaxPlus], [Viterbi] and
// [Boolean] are, but [Count] is not) to a payload semiring Payload. Add keeps the payload of
// whichever side has the strictly better cost, and merges payloads when
// costs tie; Mul always combines both cost and payload. This generalizes
// plain argmin bookkeeping: instantiate Payload with [Count] to additionally
// count how many solutions attain the minimum, or with [Solutions] to
// additionally build every co-optimal solution.
type SingleSelect[TC comparable, TV any] struct {
	Cost    Semiring[TC]
	Payload Semiring[TV]
}

func (s SingleSelect[TC, TV]) Null() Selection[TC, TV] {
	return Selection[TC, TV]{s.Cost.Null(), s.Payload.Null()}
}

func (s SingleSelect[TC, TV]) Unit() Selection[TC, TV] {
	return Selection[TC, TV]{s.Cost.Unit(), s.Payload.Unit()}
}

func (s SingleSelect[TC, TV]) Add(a, b Selection[TC, TV]) Selection[TC, TV] {
	best := s.Cost.Add(a.Cost, b.Cost)
	switch {
	case a.Cost != best:
		return b
	case b.Cost != best:
		return a
	default:
		return Selection[TC, TV]{best, s.Payload.Add(a.Payload, b.Payload)}
	}
}

func (s SingleSelect[TC, TV]) Mul(a, b Selection[TC, TV]) Selection[TC, TV] {
	return Selection[TC, TV]{s.Cost.Mul(a.Cost, b.Cost), s.Payload.Mul(a.Payload, b.Payload)}
}

// Frontier is the carrier of [MultiSelect]: a mapping from a non-dominated
// cost vector to the payload accumulated over solutions attaining exactly
// that vector.
type Frontier[TK Vector[TK], TV any] map[TK]TV

// MultiSelect is [SingleSelect]'s multi-objective generalization: instead of
// retaining one best scalar cost, it retains one payload per vector on the
// Pareto frontier of TK. Add merges two frontiers key-by-key (summing
// payloads of equal vectors via Payload.Add) and drops dominated vectors;
// Mul takes the Minkowski sum of every pair of vectors drawn from the two
// frontiers, combining payloads with Payload.Mul, and again drops dominated
// vectors.
type MultiSelect[TK Vector[TK], TV any] struct {
	Payload Semiring[TV]
}

func (s MultiSelect[TK, TV]) Null() Frontier[TK, TV] {
	return Frontier[TK, TV]{}
}

func (s MultiSelect[TK, TV]) Unit() Frontier[TK, TV] {
	var zero TK
	return Frontier[TK, TV]{zero: s.Payload.Unit()}
}

func (s MultiSelect[TK, TV]) Add(a, b Frontier[TK, TV]) Frontier[TK, TV] {
	merged := make(map[TK]TV, len(a)+len(b))
	for k, v := range a {
		merged[k] = v
	}
	for k, v := range b {
		if existing, ok := merged[k]; ok {
			merged[k] = s.Payload.Add(existing, v)
		} else {
			merged[k] = v
		}
	}
	return s.pruneDominated(merged)
}

func (s MultiSelect[TK, TV]) Mul(a, b Frontier[TK, TV]) Frontier[TK, TV] {
	merged := make(map[TK]TV, len(a)*len(b))
	for ka, va := range a {
		for kb, vb := range b {
			k := ka.Add(kb)
			v := s.Payload.Mul(va, vb)
			if existing, ok := merged[k]; ok {
				merged[k] = s.Payload.Add(existing, v)
			} else {
				merged[k] = v
			}
		}
	}
	return s.pruneDominated(merged)
}

func (s MultiSelect[TK, TV]) pruneDominated(frontier Frontier[TK, TV]) Frontier[TK, TV] {
	out := make(Frontier[TK, TV], len(frontier))
	for k, v := range frontier {
		dominated := false
		for other := range frontier {
			if other != k && other.LessEq(k) {
				dominated = true
				break
			}
		}
		if !dominated {
			out[k] = v
		}
	}
	return out
}
