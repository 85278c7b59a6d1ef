package tree

// WalkPreorder visits every node of the tree rooted at root, parent before
// children, left to right, calling visit with a cursor at each position.
//
// Complexity: O(N) in the number of nodes.
func WalkPreorder[D any](root *Node[D], visit func(Cursor[D])) {
	walkPreorder(NewCursor(root), visit)
}

func walkPreorder[D any](c Cursor[D], visit func(Cursor[D])) {
	visit(c)
	for i := range c.Node().Children() {
		walkPreorder(c.Down(i), visit)
	}
}

// WalkPostorder visits every node of the tree rooted at root, children
// before parent, left to right, calling visit with a cursor at each
// position. This is the order the recurrence driver and the min-contents
// analysis both require, since a node's value depends on its children's.
//
// Complexity: O(N) in the number of nodes.
func WalkPostorder[D any](root *Node[D], visit func(Cursor[D])) {
	walkPostorder(NewCursor(root), visit)
}

func walkPostorder[D any](c Cursor[D], visit func(Cursor[D])) {
	for i := range c.Node().Children() {
		walkPostorder(c.Down(i), visit)
	}
	visit(c)
}

// FoldPostorder rebuilds a tree bottom-up: f is called at every node with a
// cursor whose children have already been folded (i.e. c.Node()'s children
// are the post-fold versions), and the Node it returns replaces the
// original at that position. Returning nil drops the node: if it was a
// child, the parent will have one fewer child; dropping the root yields nil.
//
// Complexity: O(N).
func FoldPostorder[D any](root *Node[D], f func(Cursor[D]) *Node[D]) *Node[D] {
	return foldPostorder(NewCursor(root), f)
}

func foldPostorder[D any](c Cursor[D], f func(Cursor[D]) *Node[D]) *Node[D] {
	n := c.Node()
	if n.Arity() > 0 {
		newChildren := make([]*Node[D], 0, n.Arity())
		for i := range n.Children() {
			folded := foldPostorder(c.Down(i), f)
			if folded != nil {
				newChildren = append(newChildren, folded)
			}
		}
		n = n.WithChildren(newChildren...)
		c = c.Replace(n)
	}
	return f(c)
}

// FoldPreorder rebuilds a tree top-down: f is called at every node before
// its children are visited, and the Node it returns is descended into (its
// children, if any, are then folded in turn and spliced back in).
//
// Complexity: O(N).
func FoldPreorder[D any](root *Node[D], f func(Cursor[D]) *Node[D]) *Node[D] {
	c := NewCursor(root)
	replaced := f(c)
	c = c.Replace(replaced)
	n := c.Node()
	if n.Arity() == 0 {
		return n
	}
	newChildren := make([]*Node[D], n.Arity())
	for i, child := range n.Children() {
		newChildren[i] = FoldPreorder(child, f)
	}
	return n.WithChildren(newChildren...)
}
