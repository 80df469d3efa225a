package graph

import (
	"github.com/nbingham/cgraph/marking"
	"github.com/nbingham/cgraph/node"
)

// Merge composes other into g in place under composition c, returning a
// translation map from other's old node ids to their new id(s) in g
// (spec.md §4.7). The four upstream cases are preserved: an empty g simply
// adopts other; an empty other (or a sequence merge with either boundary
// marking set empty) is a no-op; otherwise other's nodes and arcs are
// appended and the boundary markings are combined per composition.
func (g *Graph[P, Tr]) Merge(c node.Relation, other *Graph[P, Tr]) map[node.NodeId][]node.NodeId {
	translate := make(map[node.NodeId][]node.NodeId)

	if len(g.places) == 0 && len(g.transitions) == 0 {
		*g = *g.adopt(other, translate)
		return translate
	}
	if len(other.places) == 0 && len(other.transitions) == 0 {
		return translate
	}
	if c == node.Sequence && (len(g.sink) == 0 || len(other.source) == 0) {
		return translate
	}

	placeOffset := len(g.places)
	transOffset := len(g.transitions)
	for i, rec := range other.places {
		g.places = append(g.places, placeRecord[P]{payload: rec.payload})
		translate[node.NodeId{Kind: node.Place, Index: i}] = []node.NodeId{{Kind: node.Place, Index: placeOffset + i}}
	}
	for i, rec := range other.transitions {
		g.transitions = append(g.transitions, transitionRecord[Tr]{payload: rec.payload})
		translate[node.NodeId{Kind: node.Transition, Index: i}] = []node.NodeId{{Kind: node.Transition, Index: transOffset + i}}
	}
	for kind := node.Place; kind <= node.Transition; kind++ {
		for _, a := range other.arcs[kind] {
			g.arcs[kind] = append(g.arcs[kind], node.Arc{
				From: translate[a.From][0],
				To:   translate[a.To][0],
			})
		}
	}

	otherSource := translateMarkings(other.source, translate)
	otherSink := translateMarkings(other.sink, translate)
	otherReset := translateMarkings(other.reset, translate)

	switch c {
	case node.Choice:
		g.source = mergeMarkingLists(g.source, otherSource)
		g.sink = mergeMarkingLists(g.sink, otherSink)
		g.reset = mergeMarkingLists(g.reset, otherReset)
	case node.Parallel:
		g.source = g.collapseAndPair(g.source, otherSource, true)
		g.sink = g.collapseAndPair(g.sink, otherSink, false)
		g.reset = pairwiseMerge(g.reset, otherReset)
	case node.Sequence:
		g.joinSequence(otherSource, otherReset)
	}

	g.markModified()
	return translate
}

func (g *Graph[P, Tr]) adopt(other *Graph[P, Tr], translate map[node.NodeId][]node.NodeId) *Graph[P, Tr] {
	for i := range other.places {
		translate[node.NodeId{Kind: node.Place, Index: i}] = []node.NodeId{{Kind: node.Place, Index: i}}
	}
	for i := range other.transitions {
		translate[node.NodeId{Kind: node.Transition, Index: i}] = []node.NodeId{{Kind: node.Transition, Index: i}}
	}
	clone := *other
	return &clone
}

// mergeMarkingLists merges two marking lists under choice: b's markings
// are appended after a's in their given order, except that a marking
// equal to one already present (same token set) is merged into that entry
// instead of duplicated.
func mergeMarkingLists(a, b []marking.State) []marking.State {
	out := append([]marking.State(nil), a...)
	for _, s := range b {
		merged := false
		for i := range out {
			if marking.Equal(out[i], s) {
				out[i] = marking.Merge(out[i], s)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, s)
		}
	}
	return out
}

// collapseAndPair implements the parallel source/sink rule: if either side
// holds more than one marking, each multi-marking side is collapsed into a
// single representative (spec.md's "synthesized place that fans out... or
// absorbs the single token"), after which the two sides are merged
// pointwise. fanOut is true for source markings (the hub feeds the
// original places) and false for sink markings (the original places feed
// the hub).
func (g *Graph[P, Tr]) collapseAndPair(a, b []marking.State, fanOut bool) []marking.State {
	a = g.collapseMarkings(a, fanOut)
	b = g.collapseMarkings(b, fanOut)
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	return []marking.State{marking.Merge(a[0], b[0])}
}

func (g *Graph[P, Tr]) collapseMarkings(states []marking.State, fanOut bool) []marking.State {
	if len(states) <= 1 {
		return states
	}
	places := placesOf(states)
	if len(places) == 1 {
		return []marking.State{marking.NewState(places[0].Index)}
	}
	mediator := g.CreateTransition()
	hub := g.CreatePlace()
	if fanOut {
		g.connectDirect(hub, mediator)
		for _, p := range places {
			g.connectDirect(mediator, p)
		}
		return []marking.State{marking.NewState(hub.Index)}
	}
	g.connectDirect(mediator, hub)
	for _, p := range places {
		g.connectDirect(p, mediator)
	}
	return []marking.State{marking.NewState(hub.Index)}
}

// pairwiseMerge computes the cross product of a and b, merging every pair
// (spec.md's reset rule "pairwise merge of this.reset x other.reset").
func pairwiseMerge(a, b []marking.State) []marking.State {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]marking.State, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			out = append(out, marking.Merge(x, y))
		}
	}
	return out
}

// joinSequence implements the sequence merge rule, stitching g's sink onto
// other's (already-translated) source. When each side names a single
// place, the two places are merged directly under sequence via combine.
// Otherwise a join place is created: each sink place feeds it through its
// own new transition, and it feeds each source place through its own new
// transition.
func (g *Graph[P, Tr]) joinSequence(otherSource, otherReset []marking.State) {
	sinkPlaces := placesOf(g.sink)
	sourcePlaces := placesOf(otherSource)

	if len(sinkPlaces) == 1 && len(sourcePlaces) == 1 {
		survivor := g.combine(node.Sequence, sinkPlaces[0], sourcePlaces[0])
		g.sink = []marking.State{marking.NewState(survivor.Index)}
		g.reset = append(g.reset, otherReset...)
		return
	}

	join := g.CreatePlace()
	for _, p := range sinkPlaces {
		in := g.CreateTransition()
		g.connectDirect(p, in)
		g.connectDirect(in, join)
	}
	for _, p := range sourcePlaces {
		out := g.CreateTransition()
		g.connectDirect(join, out)
		g.connectDirect(out, p)
	}
	g.sink = []marking.State{marking.NewState(join.Index)}
	g.reset = append(g.reset, otherReset...)
}
