package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/tree"
)

func allSampled(string) bool { return true }

func TestCompressCodivergeKeepsBothLeaves(t *testing.T) {
	c := contents.NewUnordered("g1")
	root := tree.New(Event(Codiverge{HostName: "H0", ContentsValue: c}),
		tree.Leaf(Event(Extant{HostName: "H1", ContentsValue: c, Name: "a"})),
		tree.Leaf(Event(Extant{HostName: "H2", ContentsValue: c, Name: "b"})),
	)

	out := Compress(root, allSampled)
	require.NotNil(t, out)
	assert.Equal(t, "H0", out.Data().Host)
	require.Equal(t, 2, out.Arity())
	assert.Equal(t, "a", out.Child(0).Data().Name)
	assert.Equal(t, "b", out.Child(1).Data().Name)
}

func TestCompressDropsUnsampledLeaf(t *testing.T) {
	c := contents.NewUnordered("g1")
	root := tree.New(Event(Codiverge{HostName: "H0", ContentsValue: c}),
		tree.Leaf(Event(Extant{HostName: "H1", ContentsValue: c, Name: "a"})),
		tree.Leaf(Event(Extant{HostName: "GHOST", ContentsValue: c, Name: "b"})),
	)

	unsampled := func(h string) bool { return h != "GHOST" }
	out := Compress(root, unsampled)
	require.NotNil(t, out)
	require.Equal(t, 1, out.Arity())
	assert.Equal(t, "a", out.Child(0).Data().Name)
}

func TestCompressSplicesUnaryGain(t *testing.T) {
	c := contents.NewUnordered("g1")
	bigger := contents.NewUnordered("g1", "g2")
	gain := tree.New(Event(Gain{HostName: "H1", ContentsValue: c, Gained: contents.NewUnordered("g2")}),
		tree.Leaf(Event(Extant{HostName: "H1", ContentsValue: bigger, Name: "a"})),
	)

	out := Compress(gain, allSampled)
	require.NotNil(t, out)
	assert.Equal(t, "a", out.Data().Name)
	assert.True(t, out.Data().Contents.Equal(bigger))
}

func TestCompressDropsTerminalLoss(t *testing.T) {
	c := contents.NewUnordered("g1")
	loss := tree.Leaf(Event(Loss{HostName: "H1", ContentsValue: c, Segment: c}))

	out := Compress(loss, allSampled)
	assert.Nil(t, out)
}
