package tree

// crumb records the step taken to reach a child from its parent: the
// parent's own data and full children list, and the index of the child the
// cursor descended into. Rebuilding the parent from an edited child only
// requires replacing that one slot.
type crumb[D any] struct {
	parent   *Node[D]
	atIndex  int
}

// Cursor is a zipper into a Node[D] tree: it holds the node currently
// focused on plus enough breadcrumbs to rebuild every ancestor once the
// focused node is replaced. Cursors are immutable values; Down/Up/Replace
// all return a new Cursor rather than mutating the receiver.
type Cursor[D any] struct {
	node *Node[D]
	path []crumb[D]
}

// NewCursor returns a cursor focused on the root of a tree.
func NewCursor[D any](root *Node[D]) Cursor[D] {
	return Cursor[D]{node: root}
}

// Node returns the node currently focused on.
func (c Cursor[D]) Node() *Node[D] {
	return c.node
}

// IsLeaf reports whether the focused node has no children.
func (c Cursor[D]) IsLeaf() bool {
	return c.node.IsLeaf()
}

// IsRoot reports whether the cursor is focused on the root of the tree it
// was built from.
func (c Cursor[D]) IsRoot() bool {
	return len(c.path) == 0
}

// Depth returns the number of ancestors above the focused node (0 at root).
func (c Cursor[D]) Depth() int {
	return len(c.path)
}

// Down moves the cursor to the i-th child of the focused node. It panics if
// i is out of range, since callers are expected to check Arity first (the
// recurrence and path composer never descend blindly).
func (c Cursor[D]) Down(i int) Cursor[D] {
	child := c.node.Child(i)
	if child == nil {
		panic("tree: Down index out of range")
	}
	path := append(append([]crumb[D](nil), c.path...), crumb[D]{parent: c.node, atIndex: i})
	return Cursor[D]{node: child, path: path}
}

// Up moves the cursor to the parent of the focused node, rebuilding the
// parent with the (possibly edited) focused node spliced back in. It panics
// at the root.
func (c Cursor[D]) Up() Cursor[D] {
	if c.IsRoot() {
		panic("tree: Up called at root")
	}
	last := c.path[len(c.path)-1]
	children := append([]*Node[D](nil), last.parent.children...)
	children[last.atIndex] = c.node
	parent := last.parent.WithChildren(children...)
	return Cursor[D]{node: parent, path: c.path[:len(c.path)-1]}
}

// Sibling returns a cursor at the other child of the focused node's parent.
// It is only meaningful on binary nodes and panics otherwise.
func (c Cursor[D]) Sibling() Cursor[D] {
	if c.IsRoot() {
		panic("tree: Sibling called at root")
	}
	last := c.path[len(c.path)-1]
	if len(last.parent.children) != 2 {
		panic("tree: Sibling requires a binary parent")
	}
	return c.Up().Down(1 - last.atIndex)
}

// Replace swaps the focused node for a new one, keeping the cursor's
// position in the tree.
func (c Cursor[D]) Replace(node *Node[D]) Cursor[D] {
	return Cursor[D]{node: node, path: c.path}
}

// Unzip rebuilds the whole tree from the focused node back up to the root,
// returning the (possibly edited) root.
func (c Cursor[D]) Unzip() *Node[D] {
	for !c.IsRoot() {
		c = c.Up()
	}
	return c.node
}
