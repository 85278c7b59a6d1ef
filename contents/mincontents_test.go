package contents_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/tree"
)

type leafData struct {
	key      string
	contents contents.Contents
}

func leaf(key string, tokens ...string) *tree.Node[leafData] {
	return tree.Leaf(leafData{key: key, contents: contents.NewUnordered(tokens...)})
}

func internal(key string, children ...*tree.Node[leafData]) *tree.Node[leafData] {
	return tree.New(leafData{key: key}, children...)
}

func TestMinContentsTwoPassAnalysis(t *testing.T) {
	one := leaf("1", "x", "y")
	two := leaf("2", "y", "z")
	three := leaf("3", "w", "x", "y", "z")
	four := leaf("4", "w", "x", "y", "z")

	node12 := internal("12", one, two)
	node34 := internal("34", three, four)
	root := internal("root", node12, node34)

	annotationOf := func(d leafData) (contents.Contents, bool) {
		if d.contents == nil {
			return nil, false
		}
		return d.contents, true
	}

	analysis := contents.MinContents(root, annotationOf)

	require.ElementsMatch(t, []string{"x", "y"}, analysis.Min[one].Tokens())
	require.ElementsMatch(t, []string{"y", "z"}, analysis.Min[two].Tokens())
	require.ElementsMatch(t, []string{"w", "x", "y", "z"}, analysis.Min[three].Tokens())
	require.ElementsMatch(t, []string{"w", "x", "y", "z"}, analysis.Min[four].Tokens())
	require.ElementsMatch(t, []string{"x", "y", "z"}, analysis.Min[node12].Tokens())
	require.ElementsMatch(t, []string{"w", "x", "y", "z"}, analysis.Min[node34].Tokens())
	require.ElementsMatch(t, []string{"x", "y", "z"}, analysis.Min[root].Tokens())

	require.ElementsMatch(t, []string{"x", "y", "z"}, analysis.Gains[root].Tokens())
	require.Empty(t, analysis.Gains[node12].Tokens())
	require.ElementsMatch(t, []string{"w"}, analysis.Gains[node34].Tokens())
}
