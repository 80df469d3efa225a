package graph

import "github.com/nbingham/cgraph/node"

// unreachableDistance is both the cap applied to every relaxation step and
// the sentinel returned by Distance for a pair with no path between them,
// matching original_source/petri/graph.h's use of the node count itself
// as "effectively infinite" (no real shortest path can exceed nodes-1
// steps without revisiting a node).
func (g *Graph[P, Tr]) unreachableDistance() int {
	return g.Size(node.Place) + g.Size(node.Transition)
}

func (g *Graph[P, Tr]) combinedIndex(id node.NodeId) int {
	if id.Kind == node.Place {
		return id.Index
	}
	return g.Size(node.Place) + id.Index
}

// computeDistances runs the all-pairs relaxation from
// original_source/petri/graph.h's calculate_node_distances(): dist[to][from]
// converges to the shortest number of arcs from "from" to "to", capped at
// nodes (treated as unreachable).
func (g *Graph[P, Tr]) computeDistances() {
	nodes := g.unreachableDistance()
	g.dist = make([]int, nodes*nodes)
	for i := range g.dist {
		g.dist[i] = nodes
	}
	for i := 0; i < nodes; i++ {
		g.dist[i*nodes+i] = 0
	}

	change := true
	for change {
		change = false
		for kind := node.Place; kind <= node.Transition; kind++ {
			for _, a := range g.arcs[kind] {
				from := g.combinedIndex(a.From)
				to := g.combinedIndex(a.To)
				for k := 0; k < nodes; k++ {
					m := g.dist[from*nodes+k] + 1
					if g.dist[to*nodes+k] < m {
						m = g.dist[to*nodes+k]
					}
					if m > nodes {
						m = nodes
					}
					if g.dist[to*nodes+k] != m {
						change = true
					}
					g.dist[to*nodes+k] = m
				}
			}
		}
	}

	g.distReady = true
}

// Distance returns the shortest number of arcs from a to b, or the
// unreachable sentinel (Size(Place)+Size(Transition)) if no path exists.
func (g *Graph[P, Tr]) Distance(a, b node.NodeId) int {
	if !g.distReady {
		g.computeDistances()
	}
	nodes := g.unreachableDistance()
	return g.dist[g.combinedIndex(b)*nodes+g.combinedIndex(a)]
}

// IsReachable reports whether a can reach b by a directed path of arcs.
func (g *Graph[P, Tr]) IsReachable(a, b node.NodeId) bool {
	return g.Distance(a, b) < g.unreachableDistance()
}

// OnCycle reports whether id sits on a directed cycle: some predecessor of
// id is itself reachable from id, which together with the pred->id arc
// closes a loop through id.
func (g *Graph[P, Tr]) OnCycle(id node.NodeId) bool {
	for _, pred := range g.Prev(id) {
		if g.IsReachable(id, pred) {
			return true
		}
	}
	return false
}
