package graph

import "github.com/nbingham/cgraph/node"

// IsReset reports whether place p appears as a token in the graph's reset
// marking set (spec.md §4.8). When no reset marking has been set yet, it
// falls back to the source marking (original_source/petri/graph.h's
// is_reset(): "if (reset.size() == 0) { check source } else { check reset }").
func (g *Graph[P, Tr]) IsReset(p node.NodeId) bool {
	list := g.reset
	if len(list) == 0 {
		list = g.source
	}
	for _, s := range list {
		for _, t := range s.Tokens {
			if t.Place == p.Index {
				return true
			}
		}
	}
	return false
}

// IsRedundantTo reports whether place p0 is redundant to p1: both must be
// parallel-composed, no neighbor of p0 may itself be parallel with p1, and
// unless p0 is a reset place, p1 must either also not be reset or have no
// reset place that is parallel with p0 and sequenced with p1.
func (g *Graph[P, Tr]) IsRedundantTo(p0, p1 node.NodeId) bool {
	if p0 == p1 || !g.Is(node.Parallel, p0, p1, false) {
		return false
	}

	for _, n := range g.Neighbors(p0) {
		if g.Is(node.Parallel, n, p1, false) {
			return false
		}
	}

	if !g.IsReset(p0) && g.IsReset(p1) {
		for _, s := range g.reset {
			for _, t := range s.Tokens {
				p := node.NodeId{Kind: node.Place, Index: t.Place}
				if p != p0 && p != p1 && g.Is(node.Parallel, p0, p, false) && g.Is(node.Sequence, p1, p, false) {
					return false
				}
			}
		}
	}

	return true
}

// isRedundantToSet reports whether p0 is redundant to any member of p1.
func (g *Graph[P, Tr]) isRedundantToSet(p0 node.NodeId, p1 []node.NodeId) bool {
	for _, p := range p1 {
		if g.IsRedundantTo(p0, p) {
			return true
		}
	}
	return false
}

// IsRedundant reports whether place p0 is redundant to any other place in
// the graph.
func (g *Graph[P, Tr]) IsRedundant(p0 node.NodeId) bool {
	for i := range g.places {
		candidate := node.NodeId{Kind: node.Place, Index: i}
		if g.IsRedundantTo(p0, candidate) {
			return true
		}
	}
	return false
}

// AddRedundant returns p extended with every place in the graph that is
// redundant to some member of p, sorted and deduplicated.
func (g *Graph[P, Tr]) AddRedundant(p []node.NodeId) []node.NodeId {
	out := append([]node.NodeId(nil), p...)
	for i := range g.places {
		candidate := node.NodeId{Kind: node.Place, Index: i}
		if g.isRedundantToSet(candidate, p) {
			out = append(out, candidate)
		}
	}
	return sortedUnique(out)
}

// EraseRedundant removes every place that IsRedundant reports true for,
// walking from the highest index down so earlier removals don't invalidate
// later indices.
func (g *Graph[P, Tr]) EraseRedundant() {
	for i := len(g.places) - 1; i >= 0; i-- {
		candidate := node.NodeId{Kind: node.Place, Index: i}
		if g.IsRedundant(candidate) {
			g.Erase(candidate)
		}
	}
}

// CrossesReset reports whether a sequence of positions straddles the
// initial marking's parallel split: some position before it and some
// position after it (original_source/petri/graph.h's crosses_reset()).
// This reads each position's own parallel split-group annotation rather
// than g.reset's token membership directly — the sentinel group with
// Split == -1 marks "originates from the initial marking" (spec.md §3),
// and for a place, which branch of that group it falls on decides
// before/after.
func (g *Graph[P, Tr]) CrossesReset(pos []node.NodeId) bool {
	beforeReset, afterReset := false, false
	for _, p := range pos {
		groups := g.SplitGroupsOf(node.Parallel, p)
		found := false
		if p.Kind == node.Transition {
			for _, grp := range groups {
				if grp.Split < 0 {
					found = true
					break
				}
			}
			afterReset = afterReset || found
		} else {
			for _, grp := range groups {
				if grp.Split < 0 {
					found = true
					for _, branch := range grp.Branches {
						if branch == p.Index {
							beforeReset = true
						} else {
							afterReset = true
						}
					}
				}
			}
		}
		beforeReset = beforeReset || !found
	}
	return beforeReset && afterReset
}
