package algebra

// Vector is the constraint a cost vector must satisfy to serve as the
// carrier of [Pareto] or as the key type of [MultiSelect]: vectors can be
// summed componentwise (Add) and compared for componentwise domination
// (LessEq, "at least as good in every dimension").
type Vector[V any] interface {
	comparable
	Add(other V) V
	LessEq(other V) bool
}

// Pareto is the semiring of Pareto frontiers over a vector type V: its
// carrier is the set of vectors in a collection with every dominated vector
// removed. Add merges two frontiers and re-prunes; Mul takes the Minkowski
// sum of every pair drawn from the two frontiers and re-prunes. Null is the
// empty frontier, Unit is the frontier containing only the zero vector.
//
// Used in place of a scalar cost semiring when a reconciliation should
// report every non-dominated trade-off between event kinds instead of
// collapsing them to a single weighted total.
type Pareto[V Vector[V]] struct{}

func (Pareto[V]) Null() map[V]struct{} {
	return map[V]struct{}{}
}

func (Pareto[V]) Unit() map[V]struct{} {
	var zero V
	return map[V]struct{}{zero: {}}
}

func (Pareto[V]) Add(a, b map[V]struct{}) map[V]struct{} {
	merged := make(map[V]struct{}, len(a)+len(b))
	for v := range a {
		merged[v] = struct{}{}
	}
	for v := range b {
		merged[v] = struct{}{}
	}
	return pruneDominated(merged)
}

func (Pareto[V]) Mul(a, b map[V]struct{}) map[V]struct{} {
	merged := make(map[V]struct{}, len(a)*len(b))
	for va := range a {
		for vb := range b {
			merged[va.Add(vb)] = struct{}{}
		}
	}
	return pruneDominated(merged)
}

// pruneDominated drops every vector that some other, distinct vector in the
// set dominates (is at least as good in every dimension).
func pruneDominated[V Vector[V]](set map[V]struct{}) map[V]struct{} {
	out := make(map[V]struct{}, len(set))
	for v := range set {
		dominated := false
		for other := range set {
			if other != v && other.LessEq(v) {
				dominated = true
				break
			}
		}
		if !dominated {
			out[v] = struct{}{}
		}
	}
	return out
}
