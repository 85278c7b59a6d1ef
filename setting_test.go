package superdtlx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborea/superdtlx"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

func threeHostTree() *tree.Node[event.Host] {
	return tree.New(event.Host{Name: "c"},
		tree.Leaf(event.Host{Name: "a"}),
		tree.Leaf(event.Host{Name: "b"}),
	)
}

func TestSettingValidateRejectsNilTrees(t *testing.T) {
	assert.ErrorIs(t, superdtlx.Setting{}.Validate(), superdtlx.ErrNilHostTree)

	assert.ErrorIs(t, superdtlx.Setting{
		HostTree: threeHostTree(),
	}.Validate(), superdtlx.ErrNilAssociateTree)
}

func TestSettingValidateRejectsNonBinaryHostTree(t *testing.T) {
	triHost := tree.New(event.Host{Name: "c"},
		tree.Leaf(event.Host{Name: "a"}),
		tree.Leaf(event.Host{Name: "b"}),
		tree.Leaf(event.Host{Name: "d"}),
	)
	s := superdtlx.Setting{
		HostTree:      triHost,
		AssociateTree: tree.Leaf(event.Assoc{Host: "a", Name: "1"}),
	}
	assert.ErrorIs(t, s.Validate(), superdtlx.ErrHostTreeNotBinary)
}

func TestSettingValidateAcceptsWellFormedSetting(t *testing.T) {
	s := superdtlx.Setting{
		HostTree:      threeHostTree(),
		AssociateTree: tree.Leaf(event.Assoc{Host: "a", Name: "1"}),
		Costs:         event.DefaultCosts(),
	}
	assert.NoError(t, s.Validate())
}

func TestSettingValidateRejectsUnknownHost(t *testing.T) {
	s := superdtlx.Setting{
		HostTree:      threeHostTree(),
		AssociateTree: tree.Leaf(event.Assoc{Host: "z", Name: "1"}),
	}
	assert.ErrorIs(t, s.Validate(), superdtlx.ErrUnknownHost)
}

func TestSettingValidateRejectsNonTerminalLeafHost(t *testing.T) {
	s := superdtlx.Setting{
		HostTree:      threeHostTree(),
		AssociateTree: tree.Leaf(event.Assoc{Host: "c", Name: "1"}),
	}
	assert.ErrorIs(t, s.Validate(), superdtlx.ErrLeafHostNotTerminal)
}

func TestSettingValidateChecksEveryAssociateLeaf(t *testing.T) {
	s := superdtlx.Setting{
		HostTree: threeHostTree(),
		AssociateTree: tree.New(event.Assoc{},
			tree.Leaf(event.Assoc{Host: "a", Name: "1"}),
			tree.Leaf(event.Assoc{Host: "z", Name: "2"}),
		),
	}
	assert.ErrorIs(t, s.Validate(), superdtlx.ErrUnknownHost)
}
