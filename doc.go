// Package graph is a bipartite concurrency graph engine: places and
// transitions connected by directed arcs, annotated with the split groups
// that record which choice or parallel branch each node's tokens can have
// come from.
//
// The graph is built and edited through a small set of structural
// operators — create, erase, connect, disconnect, copy, insert, duplicate,
// pinch, consolidate — all generic over opaque place and transition
// payload types supplied by the caller via Hooks. On top of the store sits
// the split-group analyzer (computeSplitGroups), the composition query
// (Is/IsSet), the all-pairs distance matrix (Distance/IsReachable), the
// graph merger (Merge), the redundancy analysis (IsRedundantTo,
// AddRedundant, EraseRedundant), and the local-rewrite reducer (Reduce).
//
// Subpackages:
//
//	node/       — NodeId, NodeKind, Relation: the shared identity and
//	              composition vocabulary every other package speaks
//	marking/    — State, Token: ordered token sets naming source, sink,
//	              and reset markings
//	splitgroup/ — SplitGroup and its Merge/MergeInplace/Compare algebra,
//	              the propagation primitive the analyzer runs to a fixed
//	              point
//	selector/   — Bron-Kerbosch grouping over the composition relation
package graph
