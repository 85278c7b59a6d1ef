package superdtlx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborea/superdtlx"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

func TestGraftUnsampledAddsGhostAtLeaf(t *testing.T) {
	leaf := tree.Leaf(event.Host{Name: "a"})

	augmented := superdtlx.GraftUnsampled(leaf)

	require.Equal(t, 2, augmented.Arity())
	assert.Equal(t, "a", augmented.Data().Name)

	ghost, subtree := augmented.Child(0), augmented.Child(1)
	assert.Equal(t, "a[U]", ghost.Data().Name)
	assert.False(t, ghost.Data().Sampled())
	assert.Equal(t, "a[P]", subtree.Data().Name)
	assert.True(t, subtree.Data().Sampled())
}

func TestGraftUnsampledRecursesIntoChildren(t *testing.T) {
	root := tree.New(event.Host{Name: "c"},
		tree.Leaf(event.Host{Name: "a"}),
		tree.Leaf(event.Host{Name: "b"}),
	)

	augmented := superdtlx.GraftUnsampled(root)

	require.Equal(t, 2, augmented.Arity())
	assert.Equal(t, "c", augmented.Data().Name)

	subtree := augmented.Child(1)
	require.Equal(t, 2, subtree.Arity())
	assert.Equal(t, "c[P]", subtree.Data().Name)

	leftGrafted := subtree.Child(0)
	require.Equal(t, 2, leftGrafted.Arity())
	assert.Equal(t, "a[U]", leftGrafted.Child(0).Data().Name)
	assert.Equal(t, "a[P]", leftGrafted.Child(1).Data().Name)
}

func TestGraftUnsampledPreservesExistingProps(t *testing.T) {
	leaf := tree.Leaf(event.Host{Name: "a", Props: map[string]string{"region": "north"}})

	augmented := superdtlx.GraftUnsampled(leaf)

	ghostProps := augmented.Child(0).Data().Props
	assert.Equal(t, "north", ghostProps["region"])
	assert.Equal(t, "false", ghostProps["sampled"])
}
