package contents_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborea/superdtlx/contents"
)

func TestUnorderedSetOperations(t *testing.T) {
	a := contents.NewUnordered("x", "y")
	b := contents.NewUnordered("y", "z")

	require.ElementsMatch(t, []string{"x", "y", "z"}, a.Union(b).Tokens())
	require.ElementsMatch(t, []string{"y"}, a.Intersect(b).Tokens())
	require.ElementsMatch(t, []string{"x"}, a.Difference(b).Tokens())
	require.False(t, a.SubsetOf(b))
	require.True(t, contents.NewUnordered("y").SubsetOf(a))
}

func TestUnorderedExtra(t *testing.T) {
	plain := contents.NewUnordered("x")
	require.False(t, plain.HasExtra())

	withExtra := plain.Union(contents.NewUnordered(contents.Extra))
	require.True(t, withExtra.HasExtra())
}

func TestUnorderedExtractSegment(t *testing.T) {
	whole := contents.NewUnordered("x", "y", "z")
	segment := contents.NewUnordered("x", "y")

	result, remainder := whole.ExtractSegment(segment)
	require.ElementsMatch(t, []string{"x", "y"}, result.Tokens())
	require.ElementsMatch(t, []string{"z"}, remainder.Tokens())
}

func TestUnorderedKeyIsOrderIndependent(t *testing.T) {
	require.Equal(t, contents.NewUnordered("x", "y").Key(), contents.NewUnordered("y", "x").Key())
}

func TestOrderedPreservesSequenceOnUnion(t *testing.T) {
	a := contents.NewOrdered("x", "y")
	b := contents.NewOrdered("y", "z")
	require.Equal(t, []string{"x", "y", "z"}, a.Union(b).Tokens())
}

func TestOrderedExtractSegmentPreservesOrder(t *testing.T) {
	whole := contents.NewOrdered("x", "y", "z")
	segment := contents.NewOrdered("z", "x")

	result, remainder := whole.ExtractSegment(segment)
	require.Equal(t, []string{"x", "z"}, result.Tokens())
	require.Equal(t, []string{"y"}, remainder.Tokens())
}

func TestEqualIgnoresConstructionOrder(t *testing.T) {
	require.True(t, contents.NewUnordered("x", "y").Equal(contents.NewUnordered("y", "x")))
	require.False(t, contents.NewUnordered("x").Equal(contents.NewUnordered("x", "y")))
}
