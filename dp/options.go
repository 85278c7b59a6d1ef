package dp

import (
	"context"

	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// Options configures one Recur call.
type Options struct {
	// Ctx is checked between associate nodes; a cancelled context aborts
	// the recurrence early with ctx.Err(). Defaults to context.Background
	// if left nil.
	Ctx context.Context

	// OnNode, if set, is called once per associate node visited, in
	// postorder, for progress reporting.
	OnNode func(node *tree.Node[event.Assoc])
}

func (o Options) context() context.Context {
	if o.Ctx != nil {
		return o.Ctx
	}
	return context.Background()
}

func (o Options) onNode(n *tree.Node[event.Assoc]) {
	if o.OnNode != nil {
		o.OnNode(n)
	}
}
