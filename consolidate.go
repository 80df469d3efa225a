package graph

import (
	"github.com/nbingham/cgraph/marking"
	"github.com/nbingham/cgraph/node"
)

// Consolidate glues a set of "from" markings onto a set of "to" markings
// (spec.md §4.1), used to stitch together incomplete graphs during
// construction. When both sides reduce to a single place each, the two
// places are merged directly under choice. Otherwise a mediator
// transition is created: every place named by a "from" token becomes a
// predecessor of the mediator, every place named by a "to" token becomes
// a successor, and the mediator carries the flow between them.
func (g *Graph[P, Tr]) Consolidate(to, from []marking.State) {
	toPlaces := placesOf(to)
	fromPlaces := placesOf(from)
	if len(toPlaces) == 0 || len(fromPlaces) == 0 {
		return
	}

	if len(toPlaces) == 1 && len(fromPlaces) == 1 {
		g.combine(node.Choice, toPlaces[0], fromPlaces[0])
		return
	}

	mediator := g.CreateTransition()
	for _, p := range fromPlaces {
		g.connectDirect(p, mediator)
	}
	for _, p := range toPlaces {
		g.connectDirect(mediator, p)
	}
}

func placesOf(states []marking.State) []node.NodeId {
	seen := make(map[int]bool)
	var out []node.NodeId
	for _, s := range states {
		for _, t := range s.Tokens {
			if !seen[t.Place] {
				seen[t.Place] = true
				out = append(out, node.NodeId{Kind: node.Place, Index: t.Place})
			}
		}
	}
	return out
}
