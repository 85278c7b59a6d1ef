package superdtlx_test

import (
	"context"
	"fmt"

	"github.com/arborea/superdtlx"
	"github.com/arborea/superdtlx/algebra"
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/dp"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// ExampleReconcile computes the minimum event cost reconciling a
// two-leaf associate tree against a two-leaf host tree, under unit
// costs.
func ExampleReconcile() {
	x := contents.NewUnordered("x")

	setting := superdtlx.Setting{
		HostTree: tree.New(event.Host{Name: "c"},
			tree.Leaf(event.Host{Name: "a"}),
			tree.Leaf(event.Host{Name: "b"}),
		),
		AssociateTree: tree.New(event.Assoc{},
			tree.Leaf(event.Assoc{Host: "a", Contents: x, Name: "1"}),
			tree.Leaf(event.Assoc{Host: "b", Contents: x, Name: "2"}),
		),
		Costs: event.DefaultCosts(),
	}

	costs := event.DefaultCosts()
	minCost := dp.Algebra[float64]{
		Semiring: algebra.MinPlus{},
		Make:     func(e event.Event) float64 { return costs.Cost(e) },
	}

	total, err := superdtlx.Reconcile(context.Background(), setting, minCost, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(total)
	// Output: 0
}
