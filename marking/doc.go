// Package marking implements Token and State (marking): the data the graph
// store uses for its source/sink/reset marking sets.
//
// Per original_source/petri/state.cpp, a token's only behavior beyond
// carrying a place index is total ordering by that index, so — unlike the
// place/transition payloads in package graph — Token and State are concrete
// types here rather than a generic parameter. A State merge is a sorted
// union with duplicates removed; Collapse replaces a state's tokens with a
// single token at a given index; Convert rewrites a state's tokens through
// a translation map produced by a graph-editing operation (Erase, Pinch,
// Merge) that renumbered or fanned out the places it references.
package marking
