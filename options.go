package superdtlx

import (
	"context"

	"github.com/arborea/superdtlx/dp"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// Options configures one [Reconcile] call. A nil *Options uses every
// default: GOMAXPROCS workers, no progress callback.
type Options struct {
	// Workers bounds how many binarization branches run concurrently.
	// Zero or negative uses runtime.GOMAXPROCS(0).
	Workers int

	// OnNode, if set, is called once per associate node visited across
	// every binarization branch, for progress reporting. It may be
	// called concurrently from multiple goroutines.
	OnNode func(node *tree.Node[event.Assoc])
}

func (o *Options) workers() int {
	if o == nil || o.Workers <= 0 {
		return defaultWorkers()
	}
	return o.Workers
}

func (o *Options) dpOptions(ctx context.Context) dp.Options {
	opts := dp.Options{Ctx: ctx}
	if o != nil {
		opts.OnNode = o.OnNode
	}
	return opts
}
