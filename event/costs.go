package event

// Costs is the per-event-kind cost table: the only external input the
// reconciliation recurrence's cost semirings need beyond the trees
// themselves. Recognized keys exactly match the six event categories; the
// zero value is NOT a sensible default (it costs every event 0), so callers
// should start from [DefaultCosts].
type Costs struct {
	Speciation          float64
	Duplication         float64
	TransferDuplication float64
	Cut                 float64
	TransferCut         float64
	Loss                float64
}

// DefaultCosts returns the unit-cost table: speciation is free, every other
// event kind costs 1.
func DefaultCosts() Costs {
	return Costs{
		Speciation:          0,
		Duplication:         1,
		TransferDuplication: 1,
		Cut:                 1,
		TransferCut:         1,
		Loss:                1,
	}
}

// Cost returns the cost of a single event under this table. Extant, Gain,
// and Transfer carry no cost of their own: an observed leaf is not an
// event to pay for, a gain is free (the model charges only for losing or
// rearranging existing contents), and a bare Transfer is never constructed
// by the recurrence, only Diverge{Transfer: true}.
func (c Costs) Cost(e Event) float64 {
	switch ev := e.(type) {
	case Codiverge:
		return c.Speciation
	case Diverge:
		switch {
		case !ev.Cut && !ev.Transfer:
			return c.Duplication
		case !ev.Cut && ev.Transfer:
			return c.TransferDuplication
		case ev.Cut && !ev.Transfer:
			return c.Cut
		default:
			return c.TransferCut
		}
	case Loss:
		return c.Loss
	default:
		return 0
	}
}
