package graph

import "github.com/nbingham/cgraph/node"

// combine merges right into left under composition c and erases right,
// returning left. For places this is payload merge plus marking-reference
// duplication (any source/sink/reset token naming right also comes to
// name left); for transitions it first checks Hooks.Mergeable and fails
// per spec.md §7 if the hook rejects the merge. Both nodes must share a
// kind (spec.md §4.1 "copy_combine/combine with mismatched kinds are
// fatal").
func (g *Graph[P, Tr]) combine(c node.Relation, left, right node.NodeId) node.NodeId {
	if left.Kind != right.Kind {
		g.fail("combine", ErrKindMismatch)
		return left
	}

	if left.Kind == node.Place {
		g.places[left.Index].payload = g.hooks.mergePlace(c, g.places[left.Index].payload, g.places[right.Index].payload)
		g.duplicateMarkingReferences(right.Index, left.Index)
	} else {
		if !g.hooks.mergeable(c, g.transitions[left.Index].payload, g.transitions[right.Index].payload) {
			g.fail("combine", ErrNotMergeable)
			return left
		}
		g.transitions[left.Index].payload = g.hooks.mergeTransition(c, g.transitions[left.Index].payload, g.transitions[right.Index].payload)
	}

	g.rerouteOnto(right, left)

	survivor := left
	if left.Index > right.Index {
		survivor.Index--
	}
	g.Erase(right)
	return survivor
}

// rerouteOnto rewrites every arc referencing from so it references to
// instead, without touching index assignment (a lighter-weight sibling of
// eraseTranslation used when the caller will immediately erase from).
func (g *Graph[P, Tr]) rerouteOnto(from, to node.NodeId) {
	list := g.arcs[from.Kind]
	for i := range list {
		if list[i].From == from {
			list[i].From = to
		}
	}
	opp := g.arcs[from.Kind.Opposite()]
	for i := range opp {
		if opp[i].To == from {
			opp[i].To = to
		}
	}
	g.markModified()
}
