package graph

import "github.com/nbingham/cgraph/node"

// Duplicate is the key operation for state-variable insertion (spec.md
// §4.1). When id is a branch-kind node for composition c (a transition
// when c=choice, a place when c=parallel — node.BranchKind(c)), it simply
// forks id's arcs onto a fresh copy. Otherwise, when add is true, it
// wraps id and its copy in a local six-node sub-structure (two same-kind
// boundary nodes, four opposite-kind mediators) that composes id and the
// copy under c while preserving id's external connectivity. When add is
// false, it instead recursively duplicates every neighbor of id, guarding
// against infinite recursion on cyclic graphs with a per-call
// already-duplicated cache (spec.md §9's "bound by node count").
func (g *Graph[P, Tr]) Duplicate(c node.Relation, id node.NodeId, add bool) node.NodeId {
	return g.duplicate(c, id, add, make(map[node.NodeId]node.NodeId))
}

// DuplicateN produces count independent duplicates of id, each built the
// same way as Duplicate. count == 0 returns an empty slice.
func (g *Graph[P, Tr]) DuplicateN(c node.Relation, id node.NodeId, count int, add bool) []node.NodeId {
	dups := make([]node.NodeId, 0, count)
	for i := 0; i < count; i++ {
		dups = append(dups, g.duplicate(c, id, add, make(map[node.NodeId]node.NodeId)))
	}
	return dups
}

func (g *Graph[P, Tr]) duplicate(c node.Relation, id node.NodeId, add bool, seen map[node.NodeId]node.NodeId) node.NodeId {
	if dup, ok := seen[id]; ok {
		return dup
	}
	if !g.valid(id) {
		return g.fail("Duplicate", ErrInvalidNode)
	}

	d := g.Copy(id)
	seen[id] = d

	if id.Kind == node.BranchKind(c) {
		g.forkArcs(id, d)
		return d
	}
	if add {
		g.wrapWithMediators(c, id, d)
		return d
	}

	g.duplicateNeighborhood(c, id, d, seen)
	return d
}

// forkArcs replicates id's out-arcs and in-arcs onto d directly: id is a
// branch-kind node for c's composition, so giving d the same arcs makes
// id and d two branches of the split(s) feeding id.
func (g *Graph[P, Tr]) forkArcs(id, d node.NodeId) {
	for _, succ := range g.Next(id) {
		g.connectDirect(d, succ)
	}
	for _, pred := range g.Prev(id) {
		g.connectDirect(pred, d)
	}
}

// wrapWithMediators builds the six-node sub-structure from
// original_source/petri/graph.h's duplicate(): two boundary nodes y0/y1
// of id's own kind, four mediator nodes x0..x3 of the opposite kind. id's
// original predecessors are rerouted onto y0, its original successors
// onto y1; y0 fans out to id and d via x0/x1, and id/d fan back into y1
// via x2/x3.
func (g *Graph[P, Tr]) wrapWithMediators(c node.Relation, id, d node.NodeId) {
	opposite := id.Kind.Opposite()
	x := make([]node.NodeId, 4)
	for i := range x {
		if opposite == node.Place {
			x[i] = g.CreatePlace()
		} else {
			x[i] = g.CreateTransition()
		}
	}
	var y0, y1 node.NodeId
	if id.Kind == node.Place {
		y0, y1 = g.CreatePlace(), g.CreatePlace()
	} else {
		y0, y1 = g.CreateTransition(), g.CreateTransition()
	}

	list := g.arcs[id.Kind]
	for i := range list {
		if list[i].From == id {
			list[i].From = y1
		}
	}
	oppList := g.arcs[opposite]
	for i := range oppList {
		if oppList[i].To == id {
			oppList[i].To = y0
		}
	}

	g.connectDirect(y0, x[0])
	g.connectDirect(y0, x[1])
	g.connectDirect(x[0], id)
	g.connectDirect(x[1], d)
	g.connectDirect(id, x[2])
	g.connectDirect(d, x[3])
	g.connectDirect(x[2], y1)
	g.connectDirect(x[3], y1)
	g.markModified()
}

// duplicateNeighborhood implements the add=false recursive branch:
// id's own arcs are cut, each neighbor is recursively duplicated, the
// duplicated neighbors are wired to d, and id's original arcs are
// restored so id itself is left exactly as it was.
func (g *Graph[P, Tr]) duplicateNeighborhood(c node.Relation, id, d node.NodeId, seen map[node.NodeId]node.NodeId) {
	succs := g.Next(id)
	preds := g.Prev(id)

	// Disconnect from the highest arc index down so earlier removals don't
	// shift the ids still to be removed.
	outs := g.Out(id)
	for k := len(outs) - 1; k >= 0; k-- {
		g.Disconnect(outs[k])
	}
	ins := g.In(id)
	for k := len(ins) - 1; k >= 0; k-- {
		g.Disconnect(ins[k])
	}

	succDups := make([]node.NodeId, len(succs))
	for i, s := range succs {
		succDups[i] = g.duplicate(c, s, true, seen)
	}
	predDups := make([]node.NodeId, len(preds))
	for i, p := range preds {
		predDups[i] = g.duplicate(c, p, true, seen)
	}

	for _, pd := range predDups {
		g.Connect(pd, d)
	}
	for _, sd := range succDups {
		g.Connect(d, sd)
	}
	for _, p := range preds {
		g.Connect(p, id)
	}
	for _, s := range succs {
		g.Connect(id, s)
	}
}
