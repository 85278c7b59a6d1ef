// Package contents implements the associate payload carried at each node of
// an associate tree, and the minimum-contents analysis the reconciliation
// recurrence runs before it touches the tree.
//
// A [Contents] value is either an unordered set of tokens or an ordered
// sequence of tokens; the two representations satisfy the same interface
// and a single run uses exactly one of them throughout. [Extra] is not a
// separate case of the interface — it is an ordinary token that may appear
// in any Contents value, standing for "further tokens beyond what's
// recorded here, to be resolved later."
//
// [MinContents] runs the two-pass analysis described for the recurrence
// driver: a postorder pass computes, for every associate node, the smallest
// set of tokens its subtree must carry, and a preorder pass pushes gains as
// far down the tree as it can without splitting a token across siblings
// that both need it.
package contents
