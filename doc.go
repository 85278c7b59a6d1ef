// Package superdtlx reconciles a host phylogeny and an associate
// phylogeny under the SuperDTLX cophylogeny event model, parameterized
// over a caller-chosen semiring.
//
// Steps (the [Reconcile] façade):
//  1. Validate the [Setting] (non-nil trees, binary host tree).
//  2. If [Setting.AugmentUnsampled] is set, run [GraftUnsampled] over the
//     host tree, inserting an unsampled ghost sibling at every existing
//     host node.
//  3. Index the (possibly augmented) host tree once with [tree.NewIndex].
//  4. Enumerate every binary resolution of the associate tree with
//     [binarize.Binarize] (a slice of one if it is already binary).
//  5. Run the recurrence over each resolution — in parallel, bounded by
//     [Options.Workers] — and combine the per-resolution values with the
//     chosen semiring's Add.
//
// Everything below the façade (packages tree, algebra, event, contents,
// dp, binarize) is pure: no I/O, no logging, no global state. Input
// parsing, history rendering, and process-pool orchestration across
// multiple Reconcile calls are the caller's job.
package superdtlx
