package superdtlx_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborea/superdtlx"
	"github.com/arborea/superdtlx/algebra"
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/dp"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

func costStructure(costs event.Costs) superdtlx.Structure[float64] {
	return dp.Algebra[float64]{
		Semiring: algebra.MinPlus{},
		Make:     func(e event.Event) float64 { return costs.Cost(e) },
	}
}

// Scenario S1 from the recurrence's own test suite: host (a,b)c;,
// associate 1@a{x}, 2@b{x}, unit costs, expected min cost 0.
func TestReconcileScenarioS1SimpleSpeciation(t *testing.T) {
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

	got, err := superdtlx.Reconcile(context.Background(), setting, costStructure(event.DefaultCosts()), nil)
	require.NoError(t, err)
	require.Equal(t, float64(0), got)
}

func TestReconcileRejectsInvalidSetting(t *testing.T) {
	_, err := superdtlx.Reconcile(context.Background(), superdtlx.Setting{}, costStructure(event.DefaultCosts()), nil)
	require.ErrorIs(t, err, superdtlx.ErrNilHostTree)
}

// Scenario S4 (factorized loss): host (((a,b)c,d)e,f)g, associate leaves
// 1@a{x,y}, 2@b{y,z}, 3@d{w,x,y,z}, 4@f{w,x,y,z}, submitted as a flat
// polytomy so Reconcile searches every binary resolution rather than
// committing to one. Expected min cost 2.
func TestReconcileScenarioS4FactorizedLoss(t *testing.T) {
	costs := event.Costs{
		Speciation:          0,
		Duplication:         2,
		TransferDuplication: 4,
		Cut:                 2.5,
		TransferCut:         4.5,
		Loss:                1,
	}

	xy := contents.NewUnordered("x", "y")
	yz := contents.NewUnordered("y", "z")
	wxyz := contents.NewUnordered("w", "x", "y", "z")

	setting := superdtlx.Setting{
		HostTree: tree.New(event.Host{Name: "g"},
			tree.New(event.Host{Name: "e"},
				tree.New(event.Host{Name: "c"},
					tree.Leaf(event.Host{Name: "a"}),
					tree.Leaf(event.Host{Name: "b"}),
				),
				tree.Leaf(event.Host{Name: "d"}),
			),
			tree.Leaf(event.Host{Name: "f"}),
		),
		AssociateTree: tree.New(event.Assoc{},
			tree.Leaf(event.Assoc{Host: "a", Contents: xy, Name: "1"}),
			tree.Leaf(event.Assoc{Host: "b", Contents: yz, Name: "2"}),
			tree.Leaf(event.Assoc{Host: "d", Contents: wxyz, Name: "3"}),
			tree.Leaf(event.Assoc{Host: "f", Contents: wxyz, Name: "4"}),
		),
		Costs: costs,
	}

	got, err := superdtlx.Reconcile(context.Background(), setting, costStructure(costs), nil)
	require.NoError(t, err)
	require.Equal(t, float64(2), got)
}

// Scenario S6 (transfer): host ((a,b)c,(d,e)f)g, associate 1@a{x,y,z},
// 2@d{x}, 3@b{x,y,z}, built as ((1,2),3). Expected min cost 4: a free
// codivergence at c plus a transfer-duplication of cost 4 sending {x} from
// a to d. (Submitted as a flat polytomy instead, the ((1,3),2) resolution
// reaches cost 1: a codivergence at g and a single loss of the e-lineage.)
func TestReconcileScenarioS6Transfer(t *testing.T) {
	costs := event.Costs{
		Speciation:          0,
		Duplication:         2,
		TransferDuplication: 4,
		Cut:                 2.5,
		TransferCut:         4.5,
		Loss:                1,
	}

	xyz := contents.NewUnordered("x", "y", "z")
	x := contents.NewUnordered("x")

	setting := superdtlx.Setting{
		HostTree: tree.New(event.Host{Name: "g"},
			tree.New(event.Host{Name: "c"},
				tree.Leaf(event.Host{Name: "a"}),
				tree.Leaf(event.Host{Name: "b"}),
			),
			tree.New(event.Host{Name: "f"},
				tree.Leaf(event.Host{Name: "d"}),
				tree.Leaf(event.Host{Name: "e"}),
			),
		),
		AssociateTree: tree.New(event.Assoc{},
			tree.New(event.Assoc{},
				tree.Leaf(event.Assoc{Host: "a", Contents: xyz, Name: "1"}),
				tree.Leaf(event.Assoc{Host: "d", Contents: x, Name: "2"}),
			),
			tree.Leaf(event.Assoc{Host: "b", Contents: xyz, Name: "3"}),
		),
		Costs: costs,
	}

	got, err := superdtlx.Reconcile(context.Background(), setting, costStructure(costs), nil)
	require.NoError(t, err)
	require.Equal(t, float64(4), got)
}

func TestReconcileHonorsWorkerOption(t *testing.T) {
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

	got, err := superdtlx.Reconcile(context.Background(), setting, costStructure(event.DefaultCosts()), &superdtlx.Options{Workers: 1})
	require.NoError(t, err)
	require.Equal(t, float64(0), got)
}
