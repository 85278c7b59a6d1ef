package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/dp"
	"github.com/arborea/superdtlx/event"
)

func TestComputeChoicesAtOffersIncomingHostIncomingContents(t *testing.T) {
	hostIndex := threeHostIndex()
	alg := costAlgebra(event.DefaultCosts())
	x := contents.NewUnordered("x")

	leaf := twoLeafAssociateTree("a", "b", x, x, "1", "2").Child(0)
	table := make(dp.Table[float64])

	choices := dp.ComputeChoicesAt(leaf, "a", x, x, hostIndex, alg, table)

	got, ok := choices[dp.ChoiceKey{Host: dp.HostIncoming, Contents: dp.ContentsIncoming}]
	assert.True(t, ok)
	assert.GreaterOrEqual(t, got, float64(0))
}

func TestComputeChoicesAtSeparateHostUsesIncomparableHosts(t *testing.T) {
	hostIndex := threeHostIndex()
	alg := costAlgebra(event.DefaultCosts())
	x := contents.NewUnordered("x")

	leaf := twoLeafAssociateTree("a", "b", x, x, "1", "2").Child(0)
	table := make(dp.Table[float64])

	choices := dp.ComputeChoicesAt(leaf, "a", x, x, hostIndex, alg, table)

	// b is incomparable to a in host tree (a,b)c, so a HostSeparate entry
	// reaching b must exist.
	_, ok := choices[dp.ChoiceKey{Host: dp.HostSeparate, Contents: dp.ContentsMinimal}]
	assert.True(t, ok)
}
