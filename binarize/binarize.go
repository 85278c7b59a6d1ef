package binarize

import "github.com/arborea/superdtlx/tree"

// IsBinary reports whether every internal node of n has exactly two
// children.
func IsBinary[D any](n *tree.Node[D]) bool {
	if n.IsLeaf() {
		return true
	}
	if n.Arity() != 2 {
		return false
	}
	return IsBinary(n.Child(0)) && IsBinary(n.Child(1))
}

// Graft generates every binary tree obtained by inserting leaf at some
// position of the already-binary tree t: as t's new sibling, or recursively
// inside one of t's two children. zero fills the data of each freshly
// created join node (the grafted position itself carries no meaningful
// annotation, matching the unnamed internal nodes produced by the
// polytomy expansion in [Binarize]).
func Graft[D any](t, leaf *tree.Node[D], zero D) []*tree.Node[D] {
	results := []*tree.Node[D]{tree.New(zero, leaf, t)}

	if !t.IsLeaf() {
		left, right := t.Child(0), t.Child(1)

		for _, graftedLeft := range Graft(left, leaf, zero) {
			results = append(results, tree.New(zero, graftedLeft, right))
		}
		for _, graftedRight := range Graft(right, leaf, zero) {
			results = append(results, tree.New(zero, left, graftedRight))
		}
	}

	return results
}

// ArrangeLeaves generates every binary tree that displays exactly the
// given leaves, in the order given, by grafting leaves one at a time onto
// every arrangement of the rest.
func ArrangeLeaves[D any](leaves []*tree.Node[D], zero D) []*tree.Node[D] {
	if len(leaves) == 0 {
		return nil
	}
	if len(leaves) == 1 {
		return []*tree.Node[D]{leaves[0]}
	}

	var results []*tree.Node[D]
	for _, rest := range ArrangeLeaves(leaves[1:], zero) {
		results = append(results, Graft(rest, leaves[0], zero)...)
	}
	return results
}

// Binarize generates every (partially) binary tree obtained by expanding
// the polytomies of root. Leaves pass through unchanged; each internal
// node's children are binarized independently first, the cartesian
// product of their refinements is arranged with [ArrangeLeaves], and the
// original node's data is stamped onto the top of every resulting
// refinement so downstream consumers (e.g. the host-node lookups in
// package dp) still see it at the expected position.
func Binarize[D any](root *tree.Node[D]) []*tree.Node[D] {
	var zero D
	memo := make(map[*tree.Node[D]][]*tree.Node[D])

	// Each node needs every refinement of its children already computed, so
	// a plain bottom-up visit drives the memo; refinements fan out into a
	// list per node rather than a single replacement, so FoldPostorder's
	// one-node-in-one-node-out shape doesn't fit here, unlike
	// event.Compress's prune.
	tree.WalkPostorder(root, func(c tree.Cursor[D]) {
		n := c.Node()
		if n.IsLeaf() {
			memo[n] = []*tree.Node[D]{n}
			return
		}

		childOptions := make([][]*tree.Node[D], n.Arity())
		for i, child := range n.Children() {
			childOptions[i] = memo[child]
		}

		var refinements []*tree.Node[D]
		for _, combo := range cartesianProduct(childOptions) {
			refinements = append(refinements, ArrangeLeaves(combo, zero)...)
		}

		data := n.Data()
		for i, r := range refinements {
			refinements[i] = r.Replace(data)
		}
		memo[n] = refinements
	})

	return memo[root]
}

// cartesianProduct returns every combination obtained by picking one
// element from each slice in options, in order.
func cartesianProduct[D any](options [][]*tree.Node[D]) [][]*tree.Node[D] {
	combos := [][]*tree.Node[D]{{}}

	for _, choices := range options {
		var next [][]*tree.Node[D]
		for _, combo := range combos {
			for _, choice := range choices {
				grown := make([]*tree.Node[D], len(combo)+1)
				copy(grown, combo)
				grown[len(combo)] = choice
				next = append(next, grown)
			}
		}
		combos = next
	}

	return combos
}
