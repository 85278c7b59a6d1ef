// Package tree provides persistent, immutable rooted trees used throughout
// superdtlx to represent host phylogenies, associate phylogenies, and event
// histories.
//
// A Node[D] is a rooted tree node carrying arbitrary data D and zero or more
// children. Trees are never mutated in place: every edit (Replace,
// WithChildren, Add) returns a new Node, sharing untouched
// subtrees with the original — the same persistence discipline the teacher
// package applies to its Graph clones, but taken all the way down to single
// nodes since DP subproblems key off of shared node identity.
//
// Cursor is a zipper: a cursor into a tree that remembers the path back to
// the root, so a caller can descend with Down, ascend with Up, and splice in
// a replacement subtree with Replace without rebuilding the whole tree by
// hand. Unzip rebuilds the spine from the cursor's position back to the
// root, producing the edited tree.
//
// Indexed wraps a tree in an Euler-tour range-minimum-query structure so that
// repeated ancestor/descendant/LCA/level/distance queries between named nodes
// answer in O(1) after an O(N log N) build, following
// <https://cp-algorithms.com/graph/lca.html>.
package tree
