// Package binarize expands a tree with polytomies (nodes of arity 3 or
// more) into every binary tree that refines it, so the reconciliation
// recurrence in package dp — which only runs over binary associate trees
// — can be evaluated once per refinement and the results combined with a
// semiring's Add.
//
// Steps:
//  1. [IsBinary] checks whether every internal node of a tree already has
//     exactly two children.
//  2. [Graft] inserts one new leaf at every possible position of an
//     already-binary tree.
//  3. [ArrangeLeaves] repeatedly grafts a list of leaves onto each other
//     to enumerate every binary tree displaying exactly that leaf set.
//  4. [Binarize] walks a whole tree bottom-up, binarizing each node's
//     children independently and combining them with [ArrangeLeaves],
//     stamping the original node's data onto the top of every resulting
//     refinement.
//
// Complexity: the number of binary refinements of an n-ary polytomy is the
// double factorial (2n-3)!!, so [Binarize] is only practical for trees
// with a small number of wide polytomies; callers with large counts should
// prefer pruning or sampling over full enumeration.
package binarize
