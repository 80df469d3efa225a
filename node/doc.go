// Package node defines the stable identity types shared by every other
// package in this module: the two-member NodeKind enum, the (kind, index)
// NodeId pair that names a single place or transition, and the Arc directed
// edge between opposite-kind nodes.
//
// Indices are dense per kind and stable only between mutating operations on
// the owning graph (see package graph). NodeId is a plain value type with no
// owning reference back to a graph; callers that hold a NodeId across a
// mutation that may renumber (Erase, Pinch, some Merge paths) must thread it
// through the translation map those operations return.
//
// This package also carries the small set of composition and relation codes
// used throughout the module (Choice, Parallel, Sequence, Implies, Excludes),
// since they are the vocabulary every package speaks, not just graph's.
package node
