// Package splitgroup implements the per-node split annotation and the
// set-algebraic operators over it that the composition analyzer (package
// graph) is built on.
//
// A SplitGroup records, for one node, that the tokens reaching it
// originated on a specific subset of branches out of a specific split
// point. Group lists are kept sorted ascending by Split and hold at most
// one entry per split. The three operators here — Merge, Compare, and
// MergeInplace — all walk two sorted lists in lockstep the way a classic
// sorted-merge does, differing only in what they do when a split is
// present on one side only (the "group operator") and what they do with
// the branch sets when a split is present on both sides (the "branch
// operator"). This is a direct port of original_source/petri/node.cpp's
// merge/compare/merge_inplace functions; the truth tables there are the
// authoritative reference for every edge case below.
package splitgroup
