package superdtlx

import (
	"context"
	"runtime"
	"sync"

	"github.com/arborea/superdtlx/binarize"
	"github.com/arborea/superdtlx/dp"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// Structure is the semiring plus event-to-value factory the recurrence is
// evaluated under — the quantity [Reconcile] computes (minimum cost, a
// boolean feasibility check, a Pareto front, the set of optimal
// histories, ...) is entirely determined by which concrete Structure[T]
// the caller passes in.
type Structure[T any] = dp.Algebra[T]

// Reconcile runs the SuperDTLX recurrence over setting under structure,
// returning one value of structure's semiring.
//
// Complexity: O(R · |associate| · H³) where R is the number of binary
// resolutions enumerated for a multifurcating associate tree (1 if it is
// already binary) and H is the number of host nodes, run across
// opts.workers() goroutines.
func Reconcile[T any](ctx context.Context, setting Setting, structure Structure[T], opts *Options) (T, error) {
	var zero T

	if err := setting.Validate(); err != nil {
		return zero, err
	}

	hostTree := setting.HostTree
	if setting.AugmentUnsampled {
		hostTree = GraftUnsampled(hostTree)
	}
	hostIndex := tree.NewIndex(hostTree, func(h event.Host) string { return h.Name })

	resolutions := binarize.Binarize(setting.AssociateTree)

	results := make([]T, len(resolutions))
	errs := make([]error, len(resolutions))

	var wg sync.WaitGroup
	sem := make(chan struct{}, opts.workers())

	for i, resolution := range resolutions {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, resolution *tree.Node[event.Assoc]) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = dp.Recur(resolution, hostIndex, structure, opts.dpOptions(ctx))
		}(i, resolution)
	}
	wg.Wait()

	total := structure.Semiring.Null()
	for i := range resolutions {
		if errs[i] != nil {
			return zero, errs[i]
		}
		total = structure.Semiring.Add(total, results[i])
	}

	return total, nil
}

func defaultWorkers() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}
