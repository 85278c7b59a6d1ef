package event

import "github.com/arborea/superdtlx/contents"

// Event is a single node of a reconciliation history: an evolutionary event
// together with the host and associate contents it occurred at. Every
// concrete variant implements Arity, the number of children the event
// requires in the history tree.
type Event interface {
	Host() string
	Contents() contents.Contents
	Arity() int
}

// Extant is a terminal, observed associate: an arity-0 leaf of the history.
type Extant struct {
	HostName      string
	ContentsValue contents.Contents

	// Name identifies which input associate leaf this is, for round-
	// tripping through Compress.
	Name string
}

func (e Extant) Host() string             { return e.HostName }
func (e Extant) Contents() contents.Contents { return e.ContentsValue }
func (e Extant) Arity() int               { return 0 }

// Codiverge is the event where an associate follows a divergence of its
// host: both children continue, one per host child, each inheriting the
// parent's contents verbatim.
type Codiverge struct {
	HostName      string
	ContentsValue contents.Contents
}

func (e Codiverge) Host() string               { return e.HostName }
func (e Codiverge) Contents() contents.Contents { return e.ContentsValue }
func (e Codiverge) Arity() int                 { return 2 }

// Diverge is an in-host event producing two lineages from one: duplication
// (Cut == false, both children keep the full parent contents logically,
// one narrowed to Segment) or cut (Cut == true, the contents are
// partitioned between the children). When Transfer is true, the Result
// child's host differs from the parent's (a transfer-duplication or
// transfer-cut); otherwise both children stay in the same host.
type Diverge struct {
	HostName      string
	ContentsValue contents.Contents

	// Segment is the contents targeted by the event; Result names which
	// child (0 or 1) receives exactly Segment as its contents.
	Segment contents.Contents
	Result  int
	Cut     bool
	Transfer bool
}

func (e Diverge) Host() string               { return e.HostName }
func (e Diverge) Contents() contents.Contents { return e.ContentsValue }
func (e Diverge) Arity() int                 { return 2 }

// Transfer is the event where an associate moves to an incomparable host
// without diverging: the single child keeps the same contents at a
// different host. The reconciliation recurrence never constructs this
// variant directly (every transfer it models is a Diverge with Transfer ==
// true); Transfer exists for parity with the full event model so that
// Compress and Validate can round-trip histories built another way, and so
// the "reach a host via two transfers" open question (spec.md's design
// notes) has a variant to eventually use.
type Transfer struct {
	HostName      string
	ContentsValue contents.Contents
}

func (e Transfer) Host() string               { return e.HostName }
func (e Transfer) Contents() contents.Contents { return e.ContentsValue }
func (e Transfer) Arity() int                 { return 1 }

// Gain is the event where an associate acquires new contents; the host is
// unchanged. The single child's contents equal the parent's contents with
// Gained inserted.
type Gain struct {
	HostName      string
	ContentsValue contents.Contents
	Gained        contents.Contents
}

func (e Gain) Host() string               { return e.HostName }
func (e Gain) Contents() contents.Contents { return e.ContentsValue }
func (e Gain) Arity() int                 { return 1 }

// Loss is the event where an associate loses part or all of its contents.
// Arity is 1 if any contents remain after removing Segment, 0 if the event
// leaves nothing observable.
type Loss struct {
	HostName      string
	ContentsValue contents.Contents
	Segment       contents.Contents
}

func (e Loss) Host() string               { return e.HostName }
func (e Loss) Contents() contents.Contents { return e.ContentsValue }

func (e Loss) Arity() int {
	_, remainder := e.ContentsValue.ExtractSegment(e.Segment)
	if remainder.IsEmpty() {
		return 0
	}
	return 1
}
