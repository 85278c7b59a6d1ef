// Package event defines the SuperDTLX event model: the tagged union of
// evolutionary events a reconciliation history is built from, the cost and
// Pareto-vector tables the recurrence's semirings are parameterized with,
// and the two boundary operations downstream tooling needs but the
// recurrence itself never calls — [Compress] (recover the plain
// association between associate and host from a built history) and
// [Validate] (check a history's per-event-kind well-formedness).
//
// Every [Event] variant is a plain struct carrying the host it occurs in
// and the associate contents at that point, matched exhaustively wherever
// event-kind-specific behavior is needed — there is no class hierarchy or
// runtime dispatch, only a type switch over the sealed [Event] interface.
package event
