// Package dp implements the cophylogeny reconciliation recurrence: the
// compressible-path composer and the bottom-up dynamic-programming driver
// that folds a binary associate tree against an indexed host tree into a
// single value of a caller-chosen semiring.
//
// Steps, per associate node, bottom-up:
//  1. Leaves contribute a single Extant entry to the DP table, keyed by
//     their own (host, contents).
//  2. Internal nodes enumerate every (host, contents) key in the grid
//     dictated by [contents.MinContents], compute each child's admissible
//     (HostChoice, ContentsChoice) combinations via [ComputeChoicesAt], and
//     combine them into the node's table entries via [JoinBinaryEvent].
//  3. The root's final value sums, over every host, the compressible path
//     from that host with no contents to that host with the root's minimum
//     contents — an implicit top-level Gain.
//
// Complexity: O(|associate| · H²) table entries, each requiring O(H) path
// composition work, for O(|associate| · H³) overall (H = host tree size).
package dp
