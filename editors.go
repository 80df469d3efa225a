package graph

import (
	"github.com/nbingham/cgraph/marking"
	"github.com/nbingham/cgraph/node"
)

// CreatePlace appends one default-payload place and returns its id.
func (g *Graph[P, Tr]) CreatePlace() node.NodeId {
	var zero P
	return g.CreatePlaceWith(zero)
}

// CreatePlaceN appends n default-payload places and returns their ids.
func (g *Graph[P, Tr]) CreatePlaceN(n int) []node.NodeId {
	ids := make([]node.NodeId, n)
	for i := range ids {
		ids[i] = g.CreatePlace()
	}
	return ids
}

// CreatePlaceWith appends a place with an explicit payload.
func (g *Graph[P, Tr]) CreatePlaceWith(payload P) node.NodeId {
	g.places = append(g.places, placeRecord[P]{payload: payload})
	g.markModified()
	return node.NodeId{Kind: node.Place, Index: len(g.places) - 1}
}

// CreateTransition appends one default-payload transition and returns its id.
func (g *Graph[P, Tr]) CreateTransition() node.NodeId {
	var zero Tr
	return g.CreateTransitionWith(zero)
}

// CreateTransitionN appends n default-payload transitions and returns their ids.
func (g *Graph[P, Tr]) CreateTransitionN(n int) []node.NodeId {
	ids := make([]node.NodeId, n)
	for i := range ids {
		ids[i] = g.CreateTransition()
	}
	return ids
}

// CreateTransitionWith appends a transition with an explicit payload.
func (g *Graph[P, Tr]) CreateTransitionWith(payload Tr) node.NodeId {
	g.transitions = append(g.transitions, transitionRecord[Tr]{payload: payload})
	g.markModified()
	return node.NodeId{Kind: node.Transition, Index: len(g.transitions) - 1}
}

// Connect adds an arc from -> to. If both endpoints share a kind, an
// anonymous intermediate node of the opposite kind is auto-inserted so the
// graph stays bipartite (spec.md §4.1); otherwise the arc is appended
// directly to arcs[from.Kind].
func (g *Graph[P, Tr]) Connect(from, to node.NodeId) {
	if !g.valid(from) || !g.valid(to) {
		g.fail("Connect", ErrInvalidNode)
		return
	}
	if from.Kind == to.Kind {
		var mediator node.NodeId
		if from.Kind == node.Place {
			mediator = g.CreateTransition()
		} else {
			mediator = g.CreatePlace()
		}
		g.connectDirect(from, mediator)
		g.connectDirect(mediator, to)
		return
	}
	g.connectDirect(from, to)
}

func (g *Graph[P, Tr]) connectDirect(from, to node.NodeId) {
	g.arcs[from.Kind] = append(g.arcs[from.Kind], node.Arc{From: from, To: to})
	g.markModified()
}

// Disconnect removes the arc identified by id.
func (g *Graph[P, Tr]) Disconnect(id ArcId) {
	list := g.arcs[id.List]
	if id.Index < 0 || id.Index >= len(list) {
		g.fail("Disconnect", ErrInvalidNode)
		return
	}
	g.arcs[id.List] = append(list[:id.Index], list[id.Index+1:]...)
	g.markModified()
}

// Erase removes node id, compacting the index range of its kind and
// remapping every reference (arcs, markings) accordingly. It returns the
// node's predecessors and successors as they stood just before removal,
// so callers can repair connectivity (e.g. by reconnecting pred to succ).
//
// Complexity: O(|arcs| + |markings|)
func (g *Graph[P, Tr]) Erase(id node.NodeId) (predecessors, successors []node.NodeId) {
	if !g.valid(id) {
		g.fail("Erase", ErrInvalidNode)
		return nil, nil
	}
	predecessors = g.Prev(id)
	successors = g.Next(id)

	translate := g.eraseTranslation(id)
	g.applyTranslation(translate)

	if id.Kind == node.Place {
		g.places = append(g.places[:id.Index], g.places[id.Index+1:]...)
	} else {
		g.transitions = append(g.transitions[:id.Index], g.transitions[id.Index+1:]...)
	}
	g.markModified()
	return predecessors, successors
}

// eraseTranslation builds the old->new id map produced by removing id:
// every other node of the same kind whose index is greater shifts down by
// one; id itself maps to nil (dropped); nodes of the other kind are
// unaffected.
func (g *Graph[P, Tr]) eraseTranslation(id node.NodeId) map[node.NodeId][]node.NodeId {
	translate := make(map[node.NodeId][]node.NodeId)
	translate[id] = nil
	for _, kind := range []node.NodeKind{node.Place, node.Transition} {
		n := g.Size(kind)
		for i := 0; i < n; i++ {
			old := node.NodeId{Kind: kind, Index: i}
			if old == id {
				continue
			}
			if kind == id.Kind && i > id.Index {
				translate[old] = []node.NodeId{{Kind: kind, Index: i - 1}}
			} else {
				translate[old] = []node.NodeId{old}
			}
		}
	}
	return translate
}

// applyTranslation rewrites every arc and marking through translate,
// dropping arcs or tokens that reference a removed node and fanning out
// references that map to more than one replacement.
func (g *Graph[P, Tr]) applyTranslation(translate map[node.NodeId][]node.NodeId) {
	for k := range g.arcs {
		var kept []node.Arc
		for _, a := range g.arcs[k] {
			froms, fok := translate[a.From]
			tos, tok := translate[a.To]
			if !fok || !tok || len(froms) == 0 || len(tos) == 0 {
				continue
			}
			for _, f := range froms {
				for _, t := range tos {
					kept = append(kept, node.Arc{From: f, To: t})
				}
			}
		}
		g.arcs[k] = kept
	}
	g.source = translateMarkings(g.source, translate)
	g.sink = translateMarkings(g.sink, translate)
	g.reset = translateMarkings(g.reset, translate)
}

func translateMarkings(states []marking.State, translate map[node.NodeId][]node.NodeId) []marking.State {
	out := make([]marking.State, 0, len(states))
	for _, s := range states {
		converted := marking.Convert(s, translate)
		out = append(out, converted)
	}
	return out
}

// Copy appends a duplicate of node id's payload and returns its id. For
// places, any source/sink/reset entry referencing id is also copied to
// reference the new index (spec.md §4.1).
func (g *Graph[P, Tr]) Copy(id node.NodeId) node.NodeId {
	if !g.valid(id) {
		return g.fail("Copy", ErrInvalidNode)
	}
	var dup node.NodeId
	if id.Kind == node.Place {
		dup = g.CreatePlaceWith(g.places[id.Index].payload)
		g.duplicateMarkingReferences(id.Index, dup.Index)
	} else {
		dup = g.CreateTransitionWith(g.transitions[id.Index].payload)
	}
	return dup
}

// CopyN appends n duplicates of node id and returns their ids.
func (g *Graph[P, Tr]) CopyN(id node.NodeId, n int) []node.NodeId {
	ids := make([]node.NodeId, n)
	for i := range ids {
		ids[i] = g.Copy(id)
	}
	return ids
}

func (g *Graph[P, Tr]) duplicateMarkingReferences(oldPlace, newPlace int) {
	g.source = duplicateReference(g.source, oldPlace, newPlace)
	g.sink = duplicateReference(g.sink, oldPlace, newPlace)
	g.reset = duplicateReference(g.reset, oldPlace, newPlace)
}

// duplicateReference gives the copy's token to every State that already
// names oldPlace, as an additional concurrent token on that same State
// (original_source/petri/graph.h's copy(): "source[j].tokens.push_back(...)"),
// not as a new, disjoint marking — the copy is concurrent with the
// original inside the marking it was duplicated from.
func duplicateReference(states []marking.State, oldPlace, newPlace int) []marking.State {
	out := make([]marking.State, len(states))
	for i, s := range states {
		for _, t := range s.Tokens {
			if t.Place == oldPlace {
				s = marking.Merge(s, marking.NewState(newPlace))
				break
			}
		}
		out[i] = s
	}
	return out
}

// InsertOn splices newNode into the middle of an existing arc: the arc's
// source now points to newNode, and newNode points to the arc's original
// target. The arc's endpoints are of opposite kinds, so newNode shares a
// kind with exactly one of them; Connect's auto-mediator logic inserts an
// opposite-kind node on that side so bipartiteness is preserved.
func (g *Graph[P, Tr]) InsertOn(id ArcId, newNode node.NodeId) {
	arc := g.arc(id)
	g.Disconnect(id)
	g.Connect(arc.From, newNode)
	g.Connect(newNode, arc.To)
}

// InsertBefore connects newNode as a fresh predecessor of to.
func (g *Graph[P, Tr]) InsertBefore(to, newNode node.NodeId) {
	g.Connect(newNode, to)
}

// InsertAfter connects newNode as a fresh successor of from.
func (g *Graph[P, Tr]) InsertAfter(from, newNode node.NodeId) {
	g.Connect(from, newNode)
}

// InsertAlongside connects newNode in parallel with the existing from->to
// path: newNode becomes both a successor of from and a predecessor of to.
func (g *Graph[P, Tr]) InsertAlongside(from, to, newNode node.NodeId) {
	g.Connect(from, newNode)
	g.Connect(newNode, to)
}
