package superdtlx

import (
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

// GraftUnsampled augments a host tree so every existing host can also be
// reached via an unsampled intermediate: each original host H (leaf or
// internal) becomes an internal join node retaining H's own data, with
// two children — an unsampled leaf named "H[U]" and H's original subtree
// renamed to "H[P]".
func GraftUnsampled(host *tree.Node[event.Host]) *tree.Node[event.Host] {
	data := host.Data()

	var subtreeChildren []*tree.Node[event.Host]
	for _, child := range host.Children() {
		subtreeChildren = append(subtreeChildren, GraftUnsampled(child))
	}

	renamed := data
	renamed.Name = data.Name + "[P]"
	var subtree *tree.Node[event.Host]
	if len(subtreeChildren) == 0 {
		subtree = tree.Leaf(renamed)
	} else {
		subtree = tree.New(renamed, subtreeChildren...)
	}

	ghost := tree.Leaf(event.Host{
		Name:  data.Name + "[U]",
		Props: unsampledProps(data.Props),
	})

	return tree.New(data, ghost, subtree)
}

func unsampledProps(props map[string]string) map[string]string {
	out := make(map[string]string, len(props)+1)
	for k, v := range props {
		out[k] = v
	}
	out["sampled"] = "false"
	return out
}
