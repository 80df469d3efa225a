package graph

import (
	"github.com/nbingham/cgraph/node"
	"github.com/nbingham/cgraph/splitgroup"
)

// computeSplitGroups runs the fixed-point split-group propagation for
// composition c (spec.md §4.3), grounded on
// original_source/petri/graph.h's compute_split_groups(). Every
// branch-kind node starts with one seed group per split-kind predecessor
// whose out-degree exceeds one (and, for parallel, one per token of the
// first reset marking), then repeatedly absorbs the union of its
// predecessors' groups until no node's group list changes.
func (g *Graph[P, Tr]) computeSplitGroups(c node.Relation) {
	for i := range g.places {
		g.places[i].splits[c] = nil
	}
	for i := range g.transitions {
		g.transitions[i].splits[c] = nil
	}

	splitKind := node.SplitKind(c)
	branchKind := node.BranchKind(c)

	// init[i] holds the seed groups for branch-kind node i: one group per
	// split-kind predecessor whose out-degree exceeds one, recording which
	// of that split's branches node i is.
	init := make([][]splitgroup.SplitGroup, g.Size(branchKind))

	if c == node.Parallel && len(g.reset) > 0 {
		tokens := g.reset[0].Tokens
		for _, tok := range tokens {
			init[tok.Place] = append(init[tok.Place], splitgroup.Seed(-1, tok.Place, len(tokens)))
		}
	}

	splitCount := g.Size(splitKind)
	for i := 0; i < splitCount; i++ {
		splitId := node.NodeId{Kind: splitKind, Index: i}
		succs := g.Next(splitId)
		if len(succs) <= 1 {
			continue
		}
		for j, s := range succs {
			init[s.Index] = append(init[s.Index], splitgroup.Seed(i, j, len(succs)))
		}
	}

	for {
		done := true

		for tid := range g.transitions {
			self := node.NodeId{Kind: node.Transition, Index: tid}
			exclude := map[int]bool{}
			var group []splitgroup.SplitGroup
			if c == node.Choice {
				group = append([]splitgroup.SplitGroup(nil), init[tid]...)
			} else {
				exclude[tid] = true
			}

			for _, pred := range g.Prev(self) {
				splitgroup.MergeInplace(splitgroup.Union, splitgroup.Union, &group, g.places[pred.Index].splits[c], exclude)
			}

			group = g.filterSelfSplit(c, tid, group, node.Place)

			if !splitgroup.ListsEqual(g.transitions[tid].splits[c], group) {
				g.transitions[tid].splits[c] = group
				done = false
			}
		}

		for pid := range g.places {
			self := node.NodeId{Kind: node.Place, Index: pid}
			exclude := map[int]bool{}
			var group []splitgroup.SplitGroup
			if c == node.Parallel {
				group = append([]splitgroup.SplitGroup(nil), init[pid]...)
			} else {
				exclude[pid] = true
			}

			for _, pred := range g.Prev(self) {
				splitgroup.MergeInplace(splitgroup.Union, splitgroup.Union, &group, g.transitions[pred.Index].splits[c], exclude)
			}

			// The upstream places block has no analogous self-split guard
			// in its per-entry filter (unlike the transitions block's
			// `l.split != tid`); ported as-is rather than "fixed", since
			// exclude already keeps a place's own split out of its own
			// group for the composition where that matters (choice).
			group = g.filterSelfSplitPlace(c, pid, group)

			if !splitgroup.ListsEqual(g.places[pid].splits[c], group) {
				g.places[pid].splits[c] = group
				done = false
			}
		}

		if done {
			break
		}
	}

	g.splitReady[c] = true
}

// filterSelfSplit implements the transitions block's per-entry drop rule:
// a group entry is kept only if it didn't originate at this very
// transition (unless c == choice, where self-origin is allowed to
// propagate), and — for parallel — only if every predecessor place
// carries an entry with the same split, or an entry whose split
// transition's groups differ from those of the entry's split transition
// (Compare with Intersect/Difference). A group entry is always dropped once its
// branch set is complete (spec.md §4.3's "drop a group once every branch
// of its split has been accounted for").
func (g *Graph[P, Tr]) filterSelfSplit(c node.Relation, tid int, group []splitgroup.SplitGroup, predKind node.NodeKind) []splitgroup.SplitGroup {
	preds := g.Prev(node.NodeId{Kind: node.Transition, Index: tid})
	out := group[:0]
	for _, entry := range group {
		found := entry.Split != tid || c == node.Choice
		if found && c == node.Parallel {
			for _, pred := range preds {
				found = false
				for _, other := range g.places[pred.Index].splits[c] {
					if other.Split == entry.Split {
						found = true
						break
					}
					if other.Split >= 0 && entry.Split >= 0 &&
						splitgroup.Compare(splitgroup.Intersect, splitgroup.Difference,
							g.transitions[other.Split].splits[c], g.transitions[entry.Split].splits[c]) {
						found = true
						break
					}
				}
				if !found {
					break
				}
			}
		}
		if found && !entry.Complete() {
			out = append(out, entry)
		}
	}
	return out
}

// filterSelfSplitPlace mirrors filterSelfSplit for the places block, using
// the choice-side nested comparison over predecessor transitions' split
// groups instead of parallel's predecessor-places comparison.
func (g *Graph[P, Tr]) filterSelfSplitPlace(c node.Relation, pid int, group []splitgroup.SplitGroup) []splitgroup.SplitGroup {
	preds := g.Prev(node.NodeId{Kind: node.Place, Index: pid})
	out := group[:0]
	for _, entry := range group {
		found := true
		if c == node.Choice {
			for _, pred := range preds {
				found = false
				for _, other := range g.transitions[pred.Index].splits[c] {
					if other.Split == entry.Split {
						found = true
						break
					}
					if other.Split >= 0 && entry.Split >= 0 &&
						splitgroup.Compare(splitgroup.Intersect, splitgroup.Difference,
							g.places[other.Split].splits[c], g.places[entry.Split].splits[c]) {
						found = true
						break
					}
				}
				if !found {
					break
				}
			}
		}
		if found && !entry.Complete() {
			out = append(out, entry)
		}
	}
	return out
}
