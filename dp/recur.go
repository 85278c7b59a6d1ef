package dp

import (
	"github.com/arborea/superdtlx/contents"
	"github.com/arborea/superdtlx/event"
	"github.com/arborea/superdtlx/tree"
)

func assocAnnotation(a event.Assoc) (contents.Contents, bool) {
	if a.Contents == nil {
		return nil, false
	}
	return a.Contents, true
}

// Recur runs the reconciliation recurrence over one binary associate tree
// against an indexed host tree, returning the chosen semiring's value for
// the whole tree. Non-binary associate trees must be resolved into binary
// arrangements by the caller (see package binarize) and the per-arrangement
// results combined with the semiring's Add.
func Recur[T any](
	root *tree.Node[event.Assoc],
	hostIndex *tree.Indexed[event.Host],
	alg Algebra[T],
	opts Options,
) (T, error) {
	var zero T
	analysis := contents.MinContents(root, assocAnnotation)
	table := make(Table[T])

	ctx := opts.context()
	var walkErr error

	// The recurrence only ever needs each node's children already resolved
	// in table, so a plain bottom-up visit (no tree rewriting) is exactly
	// what tree.WalkPostorder provides; the cursor's Node() stands in for
	// the hand-rolled n parameter.
	tree.WalkPostorder(root, func(c tree.Cursor[event.Assoc]) {
		if walkErr != nil {
			return
		}
		if err := ctx.Err(); err != nil {
			walkErr = err
			return
		}
		n := c.Node()
		opts.onNode(n)

		if n.IsLeaf() {
			a := n.Data()
			key := keyFor(n, a.Host, a.Contents)
			val := alg.make(event.Extant{HostName: a.Host, ContentsValue: a.Contents, Name: a.Name})
			table[key] = alg.add(table.Get(key, alg), val)
			return
		}

		left, right := n.Child(0), n.Child(1)
		minHere := analysis.Min[n]
		minLeft := analysis.Min[left]
		minRight := analysis.Min[right]
		contentsGrid := []contents.Contents{minHere, minHere.WithExtra()}

		for _, host := range hostIndex.Keys() {
			for _, cts := range contentsGrid {
				leftChoices := ComputeChoicesAt(left, host, cts, minLeft, hostIndex, alg, table)
				rightChoices := ComputeChoicesAt(right, host, cts, minRight, hostIndex, alg, table)

				leftContents := minLeft.Intersect(cts)
				rightContents := minRight.Intersect(cts)

				val := JoinBinaryEvent(host, cts, leftContents, rightContents, alg, leftChoices, rightChoices)
				key := keyFor(n, host, cts)
				table[key] = alg.add(table.Get(key, alg), val)
			}
		}
	})

	if walkErr != nil {
		return zero, walkErr
	}

	rootContents := analysis.Min[root]
	noContents := rootContents.Difference(rootContents)

	result := alg.null()
	for _, host := range hostIndex.Keys() {
		key := keyFor(root, host, rootContents)
		result = alg.add(result, MakePath(host, host, noContents, rootContents, hostIndex, alg, table.Get(key, alg)))
	}

	return result, nil
}
