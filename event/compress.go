package event

import (
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/tree"
)

// Assoc is the plain association between an associate and a host, stripped
// of the events that produced it: the output of [Compress], and the shape
// downstream consumers (rendering, cost reporting against an externally
// given mapping) expect instead of a full history.
type Assoc struct {
	Host     string
	Contents contents.Contents

	// Name is the associate leaf's identifier, carried through from the
	// Extant event that produced it; empty on internal nodes.
	Name string
}

// Compress reduces a built history to the associate tree it implies,
// discarding the events themselves. sampled reports whether a host was
// actually observed; arity-0 events are dropped when they are a Loss or sit
// at an unsampled host, and every arity-1 event is spliced out
// (disappearing entirely if its child was dropped). Arity-2 events are
// kept with whichever children survive, so the result can contain unary
// nodes, and an arity-2 event whose children were both dropped remains as
// a leaf. Compress returns nil if nothing survives.
//
// Pruning is a single bottom-up [tree.FoldPostorder] pass over the history:
// at each node, f is handed a cursor whose children have already been
// pruned (and dropped, where nil), so deciding this node's own fate only
// ever needs to look at its own event and its already-resolved children —
// exactly the "localized replacement" a zipper cursor exists for. The
// pruned event tree is then projected field-by-field into the plain
// Assoc shape callers want.
func Compress(root *tree.Node[Event], sampled func(host string) bool) *tree.Node[Assoc] {
	if root == nil {
		return nil
	}
	pruned := tree.FoldPostorder(root, func(c tree.Cursor[Event]) *tree.Node[Event] {
		n := c.Node()
		switch e := n.Data(); e.Arity() {
		case 0:
			_, isLoss := e.(Loss)
			if sampled(e.Host()) && !isLoss {
				return n
			}
			return nil
		case 1:
			// Splice through: this event contributes nothing, promote its
			// (already pruned, possibly nil) child in its place.
			return n.Child(0)
		default:
			return n
		}
	})
	if pruned == nil {
		return nil
	}
	return projectAssoc(pruned)
}

func projectAssoc(n *tree.Node[Event]) *tree.Node[Assoc] {
	assoc := assocOf(n.Data())
	if n.IsLeaf() {
		return tree.Leaf(assoc)
	}
	kids := make([]*tree.Node[Assoc], n.Arity())
	for i, child := range n.Children() {
		kids[i] = projectAssoc(child)
	}
	return tree.New(assoc, kids...)
}

func assocOf(e Event) Assoc {
	name := ""
	if ex, ok := e.(Extant); ok {
		name = ex.Name
	}
	return Assoc{Host: e.Host(), Contents: e.Contents(), Name: name}
}
