package event

// Vector counts events per cost category, mirroring [Costs]'s fields. It is
// the carrier the Pareto semiring (package algebra) uses to report
// non-dominated cost trade-offs instead of collapsing every event kind into
// one scalar.
type Vector struct {
	Speciation          int
	Duplication         int
	TransferDuplication int
	Cut                 int
	TransferCut         int
	Loss                int
}

// Add returns the componentwise sum of two vectors, satisfying
// algebra.Vector's Add requirement.
func (v Vector) Add(o Vector) Vector {
	return Vector{
		Speciation:          v.Speciation + o.Speciation,
		Duplication:         v.Duplication + o.Duplication,
		TransferDuplication: v.TransferDuplication + o.TransferDuplication,
		Cut:                 v.Cut + o.Cut,
		TransferCut:         v.TransferCut + o.TransferCut,
		Loss:                v.Loss + o.Loss,
	}
}

// LessEq reports whether v is at least as good as o in every dimension,
// satisfying algebra.Vector's domination-order requirement.
func (v Vector) LessEq(o Vector) bool {
	return v.Speciation <= o.Speciation &&
		v.Duplication <= o.Duplication &&
		v.TransferDuplication <= o.TransferDuplication &&
		v.Cut <= o.Cut &&
		v.TransferCut <= o.TransferCut &&
		v.Loss <= o.Loss
}

// VectorOf returns the one-hot event-count vector for a single event: a 1
// in whichever cost category the event belongs to (0 for Extant, Gain, and
// bare Transfer, which carry no cost of their own).
func VectorOf(e Event) Vector {
	switch ev := e.(type) {
	case Codiverge:
		return Vector{Speciation: 1}
	case Diverge:
		switch {
		case !ev.Cut && !ev.Transfer:
			return Vector{Duplication: 1}
		case !ev.Cut && ev.Transfer:
			return Vector{TransferDuplication: 1}
		case ev.Cut && !ev.Transfer:
			return Vector{Cut: 1}
		default:
			return Vector{TransferCut: 1}
		}
	case Loss:
		return Vector{Loss: 1}
	default:
		return Vector{}
	}
}
