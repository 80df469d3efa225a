package graph

import "github.com/nbingham/cgraph/node"

// Reduce iteratively applies local rewrites until a fixed point, reporting
// whether any rewrite fired (spec.md §4.2):
//
//  1. Give every transition missing a predecessor or successor a phantom
//     place.
//  2. Delete transitions whose payload reports IsInfeasible.
//  3. Pinch transitions whose payload reports IsVacuous, when doing so
//     doesn't violate proper nesting (or unconditionally, when
//     properNesting is false).
//  4. Erase places with no predecessors that aren't in the reset marking,
//     except a place that is the only predecessor of some transition.
//  5. Erase places that are structural duplicates of another place.
//  6. When aggressive, merge same-kind transitions that are internally
//     conditioned (identical neighbor sets, combined under choice) or
//     internally parallel (disjoint neighbor sets sharing a unique
//     predecessor-of-predecessors and successor-of-successors, combined
//     under parallel).
func (g *Graph[P, Tr]) Reduce(properNesting, aggressive bool) bool {
	any := false
	changed := true
	for changed {
		changed = false
		changed = g.addPhantomBoundaries() || changed
		changed = g.eraseInfeasible() || changed
		changed = g.pinchVacuous(properNesting) || changed
		changed = g.eraseUnreferencedPlaces() || changed
		changed = g.eraseDuplicatePlaces() || changed
		if aggressive {
			changed = g.mergeConditionedTransitions() || changed
			changed = g.mergeParallelTransitions() || changed
		}
		any = any || changed
	}
	return any
}

func (g *Graph[P, Tr]) addPhantomBoundaries() bool {
	changed := false
	for i := 0; i < len(g.transitions); i++ {
		id := node.NodeId{Kind: node.Transition, Index: i}
		if len(g.Prev(id)) == 0 {
			g.connectDirect(g.CreatePlace(), id)
			changed = true
		}
		if len(g.Next(id)) == 0 {
			g.connectDirect(id, g.CreatePlace())
			changed = true
		}
	}
	return changed
}

func (g *Graph[P, Tr]) eraseInfeasible() bool {
	changed := false
	for i := len(g.transitions) - 1; i >= 0; i-- {
		id := node.NodeId{Kind: node.Transition, Index: i}
		if g.hooks.isInfeasible(g.transitions[i].payload) {
			g.Erase(id)
			changed = true
		}
	}
	return changed
}

// pinchVacuous collapses transitions whose payload is vacuous. With
// properNesting required, a transition is only pinched when it has a
// single predecessor and successor (the local fan-out/fan-in shape the
// upstream documents as safe: a vacuous transition chaining exactly one
// place to exactly one place cannot change proper nesting since it
// introduces no new split or join).
func (g *Graph[P, Tr]) pinchVacuous(properNesting bool) bool {
	changed := false
	for i := len(g.transitions) - 1; i >= 0; i-- {
		id := node.NodeId{Kind: node.Transition, Index: i}
		if !g.hooks.isVacuous(g.transitions[i].payload) {
			continue
		}
		if properNesting && (len(g.Prev(id)) != 1 || len(g.Next(id)) != 1) {
			continue
		}
		g.Pinch(id)
		changed = true
	}
	return changed
}

func (g *Graph[P, Tr]) eraseUnreferencedPlaces() bool {
	changed := false
	for i := len(g.places) - 1; i >= 0; i-- {
		id := node.NodeId{Kind: node.Place, Index: i}
		if len(g.Prev(id)) == 0 && !g.IsReset(id) && !g.soleInputOfSuccessor(id) {
			g.Erase(id)
			changed = true
		}
	}
	return changed
}

// soleInputOfSuccessor reports whether place p is the only predecessor of
// one of its successor transitions. Erasing such a place would leave that
// transition without an input, and addPhantomBoundaries would add it back.
func (g *Graph[P, Tr]) soleInputOfSuccessor(p node.NodeId) bool {
	for _, t := range g.Next(p) {
		if len(g.Prev(t)) == 1 {
			return true
		}
	}
	return false
}

func (g *Graph[P, Tr]) eraseDuplicatePlaces() bool {
	changed := false
	for i := len(g.places) - 1; i >= 0; i-- {
		pi := node.NodeId{Kind: node.Place, Index: i}
		for j := 0; j < i; j++ {
			pj := node.NodeId{Kind: node.Place, Index: j}
			if g.IsReset(pi) != g.IsReset(pj) {
				continue
			}
			if sameNeighborSet(g.Prev(pi), g.Prev(pj)) && sameNeighborSet(g.Next(pi), g.Next(pj)) {
				g.combine(node.Choice, pj, pi)
				changed = true
				break
			}
		}
	}
	return changed
}

// mergeConditionedTransitions merges same-kind transitions that share an
// identical neighbor set (in and out), combining the pair under choice:
// they differ only in which choice branch fired, never in parallel.
func (g *Graph[P, Tr]) mergeConditionedTransitions() bool {
	changed := false
	for i := len(g.transitions) - 1; i >= 0; i-- {
		ti := node.NodeId{Kind: node.Transition, Index: i}
		for j := 0; j < i; j++ {
			tj := node.NodeId{Kind: node.Transition, Index: j}
			if sameNeighborSet(g.Prev(ti), g.Prev(tj)) && sameNeighborSet(g.Next(ti), g.Next(tj)) {
				if g.hooks.mergeable(node.Choice, g.transitions[j].payload, g.transitions[i].payload) {
					g.combine(node.Choice, tj, ti)
					changed = true
					break
				}
			}
		}
	}
	return changed
}

// mergeParallelTransitions merges same-kind transitions with disjoint
// neighbor sets that nonetheless share a single predecessor-of-
// predecessors and successor-of-successors, combining the pair under
// parallel and cutting the now-redundant original neighbors.
func (g *Graph[P, Tr]) mergeParallelTransitions() bool {
	changed := false
	for i := len(g.transitions) - 1; i >= 0; i-- {
		ti := node.NodeId{Kind: node.Transition, Index: i}
		for j := 0; j < i; j++ {
			tj := node.NodeId{Kind: node.Transition, Index: j}
			if disjointNeighborSets(g.Prev(ti), g.Prev(tj)) && disjointNeighborSets(g.Next(ti), g.Next(tj)) &&
				g.shareUniqueGrandparent(ti, tj) && g.shareUniqueGrandchild(ti, tj) {
				if g.hooks.mergeable(node.Parallel, g.transitions[j].payload, g.transitions[i].payload) {
					g.combine(node.Parallel, tj, ti)
					changed = true
					break
				}
			}
		}
	}
	return changed
}

func (g *Graph[P, Tr]) shareUniqueGrandparent(a, b node.NodeId) bool {
	ga := uniqueGrandNeighbors(g, g.Prev(a))
	gb := uniqueGrandNeighbors(g, g.Prev(b))
	return len(ga) == 1 && len(gb) == 1 && ga[0] == gb[0]
}

func (g *Graph[P, Tr]) shareUniqueGrandchild(a, b node.NodeId) bool {
	ga := uniqueGrandSuccessors(g, g.Next(a))
	gb := uniqueGrandSuccessors(g, g.Next(b))
	return len(ga) == 1 && len(gb) == 1 && ga[0] == gb[0]
}

func uniqueGrandNeighbors[P, Tr any](g *Graph[P, Tr], preds []node.NodeId) []node.NodeId {
	seen := make(map[node.NodeId]bool)
	var out []node.NodeId
	for _, p := range preds {
		for _, gp := range g.Prev(p) {
			if !seen[gp] {
				seen[gp] = true
				out = append(out, gp)
			}
		}
	}
	return out
}

func uniqueGrandSuccessors[P, Tr any](g *Graph[P, Tr], succs []node.NodeId) []node.NodeId {
	seen := make(map[node.NodeId]bool)
	var out []node.NodeId
	for _, s := range succs {
		for _, gs := range g.Next(s) {
			if !seen[gs] {
				seen[gs] = true
				out = append(out, gs)
			}
		}
	}
	return out
}

func sameNeighborSet(a, b []node.NodeId) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortedUnique(a), sortedUnique(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func disjointNeighborSets(a, b []node.NodeId) bool {
	set := make(map[node.NodeId]bool, len(a))
	for _, x := range a {
		set[x] = true
	}
	for _, y := range b {
		if set[y] {
			return false
		}
	}
	return true
}
