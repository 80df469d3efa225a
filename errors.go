// Package graph implements a bipartite concurrency graph — a variant of a
// Petri net used as the intermediate representation for asynchronous
// handshaking circuit synthesis — together with the relational analysis
// engine that answers how any two nodes or node sets are composed
// (parallel, choice, sequence, implication, exclusion).
//
// Graph is generic over opaque place and transition payload types; the
// engine never interprets payloads directly, only through the five hooks
// bundled in Hooks. Token and State markings live in the sibling marking
// package and are concrete, not generic: a token's only behavior is
// ordering by place index (original_source/petri/state.cpp), so there is
// no payload-polymorphism need for it here.
//
// The engine is single-threaded by contract: no goroutines, no channels,
// no sync primitives anywhere in this package. Every mutating editor
// clears the distance-ready flag and both split-group-ready flags through
// markModified, so derived caches are safe-by-construction — a query
// recomputes them lazily on first use after a mutation.
//
// Errors:
//
//	ErrInvalidNode     - a NodeId with an out-of-range or negative index.
//	ErrKindMismatch    - two endpoints expected to share a kind do not.
//	ErrNotMergeable    - Hooks.Mergeable reported false for a transition merge.
//	ErrEmptyBoundary   - sequence composition attempted with an empty source/sink.
package graph

import "errors"

// Sentinel errors for invariant violations and vacuous-input conditions.
var (
	// ErrInvalidNode indicates a NodeId referencing a non-existent place or transition.
	ErrInvalidNode = errors.New("graph: invalid node id")

	// ErrKindMismatch indicates two nodes expected to share a NodeKind do not.
	ErrKindMismatch = errors.New("graph: node kind mismatch")

	// ErrNotMergeable indicates Hooks.Mergeable rejected a transition merge.
	ErrNotMergeable = errors.New("graph: transitions not mergeable")

	// ErrEmptyBoundary indicates a sequence composition was attempted across an empty source/sink boundary.
	ErrEmptyBoundary = errors.New("graph: empty sequence boundary")
)

// Fail is the host's internal-error channel (spec'd as "the host's
// internal-error channel" for class-1 invariant violations): out-of-range
// NodeIds in Copy/Connect/combine-style operations, kind mismatches, and
// unmergeable transitions all funnel through this hook before the call
// returns its sentinel zero value. The default panics, matching a fatal
// programmer error with no recovery path; a host may override Fail (e.g.
// in tests) to capture the error instead of aborting the process.
var Fail = func(op string, err error) {
	panic(op + ": " + err.Error())
}
