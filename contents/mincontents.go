package contents

import "github.com/arborea/superdtlx/tree"

// Analysis is the result of [MinContents]: the smallest contents set every
// associate node's subtree must carry, and the contents newly introduced
// (by an implicit Gain) right above each node's lowest point of need. Both
// maps are keyed by node identity, not by any derived label, since internal
// associate nodes commonly carry no annotation distinguishing them from one
// another.
type Analysis[A any] struct {
	Min   map[*tree.Node[A]]Contents
	Gains map[*tree.Node[A]]Contents
}

// MinContents computes, for every node of an associate tree, the smallest
// contents set that must pass through it. annotationOf returns a node's own
// explicitly annotated contents and whether it carries one at all (every
// leaf must; internal nodes may or may not).
//
// Steps:
//  1. Postorder: a leaf's minimum is its own annotated contents (always
//     present); an internal node's minimum is the union of its children's
//     minimums, plus its own annotation if it carries one.
//  2. Preorder, starting from the root's minimum as "everything gained
//     above the root": at each internal node, split what's gained into the
//     part needed by both children (kept at this node), the part needed
//     only by the left child (pushed down to it), and the part needed only
//     by the right child (pushed down to it); subtract the pushed-down
//     parts from this node's own minimum, since they are now accounted for
//     strictly below it.
//
// Only binary associate trees are supported; binarize multifurcating trees
// before calling MinContents.
//
// Complexity: O(N) node visits, each doing O(1) Contents-sized set
// operations.
func MinContents[A any](
	root *tree.Node[A],
	annotationOf func(A) (Contents, bool),
) *Analysis[A] {
	min := make(map[*tree.Node[A]]Contents)

	tree.WalkPostorder(root, func(c tree.Cursor[A]) {
		n := c.Node()
		var val Contents
		if n.IsLeaf() {
			val = emptyLike(annotationOf, n.Data())
		} else {
			left := min[n.Child(0)]
			right := min[n.Child(1)]
			val = left.Union(right)
		}
		if own, ok := annotationOf(n.Data()); ok {
			val = val.Union(own)
		}
		min[n] = val
	})

	gains := make(map[*tree.Node[A]]Contents)
	gains[root] = min[root]

	tree.WalkPreorder(root, func(c tree.Cursor[A]) {
		n := c.Node()
		if n.IsLeaf() {
			return
		}
		gainedBelow := gains[n]

		leftChild, rightChild := n.Child(0), n.Child(1)
		left, right := min[leftChild], min[rightChild]

		gains[n] = gainedBelow.Intersect(left).Intersect(right)
		gains[leftChild] = gainedBelow.Intersect(left.Difference(right))
		gains[rightChild] = gainedBelow.Intersect(right.Difference(left))

		min[n] = min[n].Difference(gains[leftChild].Union(gains[rightChild]))
	})

	return &Analysis[A]{Min: min, Gains: gains}
}

// emptyLike returns an empty Contents value of the same representation the
// tree uses, inferred from the first annotation found. A leaf is always
// annotated, so this is only ever invoked where one exists.
func emptyLike[A any](annotationOf func(A) (Contents, bool), data A) Contents {
	if own, ok := annotationOf(data); ok {
		return own.Difference(own)
	}
	return NewUnordered()
}
