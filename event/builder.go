package event

import (
	"fmt"
	"strings"

	"github.com/arborea/superdtlx/tree"
)

// Builder is a history fragment under construction: a node of Event data
// together with the children accumulated onto it so far. A zero Builder (nil
// node) is the empty composition, [algebra.Magma]'s Unit — joining it with
// anything returns that thing unchanged, the same way appending nothing to a
// history leaves the history as is.
//
// Builder implements algebra.Magma[Builder], so [algebra.UnitChoice] and
// [algebra.Solutions] can lift it into a semiring that materializes one
// history, or every history, attaining a given cost.
type Builder struct {
	node *tree.Node[Event]
}

// MakeBuilder wraps a single event as a fresh, childless Builder. Children
// are attached afterwards by Mul, one per call, in the order the event's
// arity expects them.
func MakeBuilder(e Event) Builder {
	return Builder{node: tree.Leaf(e)}
}

// Unit returns the empty composition.
func (Builder) Unit() Builder {
	return Builder{}
}

// Mul appends other as the next child of n, unless either side is the empty
// composition, in which case the other side passes through unchanged.
func (n Builder) Mul(other Builder) Builder {
	if n.node == nil {
		return other
	}
	if other.node == nil {
		return n
	}
	return Builder{node: n.node.Add(other.node)}
}

// Node returns the built history tree, or nil if nothing was ever composed.
func (n Builder) Node() *tree.Node[Event] {
	return n.node
}

// Key returns a string uniquely determined by the shape and content of the
// built tree, suitable for deduplicating structurally-equal histories inside
// [algebra.Solutions].
func (n Builder) Key() string {
	var b strings.Builder
	writeBuilderKey(&b, n.node)
	return b.String()
}

func writeBuilderKey(b *strings.Builder, n *tree.Node[Event]) {
	if n == nil {
		b.WriteString("_")
		return
	}
	b.WriteString(eventKey(n.Data()))
	b.WriteByte('(')
	for i, child := range n.Children() {
		if i > 0 {
			b.WriteByte(',')
		}
		writeBuilderKey(b, child)
	}
	b.WriteByte(')')
}

func eventKey(e Event) string {
	switch ev := e.(type) {
	case Extant:
		return fmt.Sprintf("Extant{%s,%s,%s}", ev.Name, ev.HostName, ev.ContentsValue.Key())
	case Codiverge:
		return fmt.Sprintf("Codiverge{%s,%s}", ev.HostName, ev.ContentsValue.Key())
	case Diverge:
		return fmt.Sprintf("Diverge{%s,%s,seg=%s,cut=%v,xfer=%v,res=%d}",
			ev.HostName, ev.ContentsValue.Key(), ev.Segment.Key(), ev.Cut, ev.Transfer, ev.Result)
	case Transfer:
		return fmt.Sprintf("Transfer{%s,%s}", ev.HostName, ev.ContentsValue.Key())
	case Gain:
		return fmt.Sprintf("Gain{%s,%s,gained=%s}", ev.HostName, ev.ContentsValue.Key(), ev.Gained.Key())
	case Loss:
		return fmt.Sprintf("Loss{%s,%s,seg=%s}", ev.HostName, ev.ContentsValue.Key(), ev.Segment.Key())
	default:
		return fmt.Sprintf("%T", e)
	}
}
