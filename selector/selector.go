// Package selector partitions node sets into maximal cliques under a
// composition relation, using Bron-Kerbosch over the induced graph
// E = {(u,v) | is(composition, u, v, always) xor invert} (spec.md §4.5).
// It depends only on the Relator interface so it can run against any
// graph.Graph instantiation without importing a concrete payload type.
package selector

import "github.com/nbingham/cgraph/node"

// Relator is the subset of graph.Graph's query surface selector needs: the
// pair composition predicate that drives every clique test here.
type Relator interface {
	Is(c node.Relation, a, b node.NodeId, always bool) bool
}

func edge(r Relator, c node.Relation, a, b node.NodeId, always, invert bool) bool {
	return r.Is(c, a, b, always) != invert
}

// Select partitions nodes into maximal cliques of the induced relation
// graph via Bron-Kerbosch with pivoting.
func Select(r Relator, c node.Relation, nodes []node.NodeId, always, invert bool) [][]node.NodeId {
	adj := buildAdjacency(r, c, nodes, always, invert)
	var cliques [][]node.NodeId
	bronKerbosch(adj, nil, append([]node.NodeId(nil), nodes...), nil, &cliques)
	return cliques
}

func buildAdjacency(r Relator, c node.Relation, nodes []node.NodeId, always, invert bool) map[node.NodeId]map[node.NodeId]bool {
	adj := make(map[node.NodeId]map[node.NodeId]bool, len(nodes))
	for _, n := range nodes {
		adj[n] = make(map[node.NodeId]bool)
	}
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if edge(r, c, nodes[i], nodes[j], always, invert) {
				adj[nodes[i]][nodes[j]] = true
				adj[nodes[j]][nodes[i]] = true
			}
		}
	}
	return adj
}

func bronKerbosch(adj map[node.NodeId]map[node.NodeId]bool, r, p, x []node.NodeId, out *[][]node.NodeId) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			*out = append(*out, append([]node.NodeId(nil), r...))
		}
		return
	}
	pivot := choosePivot(p, x)
	candidates := subtractNeighbors(p, adj[pivot])
	for _, v := range candidates {
		neighbors := adj[v]
		bronKerbosch(adj, append(r, v), intersectNeighbors(p, neighbors), intersectNeighbors(x, neighbors), out)
		p = removeNode(p, v)
		x = append(x, v)
	}
}

func choosePivot(p, x []node.NodeId) node.NodeId {
	if len(p) > 0 {
		return p[0]
	}
	return x[0]
}

func subtractNeighbors(set []node.NodeId, neighbors map[node.NodeId]bool) []node.NodeId {
	var out []node.NodeId
	for _, v := range set {
		if !neighbors[v] {
			out = append(out, v)
		}
	}
	return out
}

func intersectNeighbors(set []node.NodeId, neighbors map[node.NodeId]bool) []node.NodeId {
	var out []node.NodeId
	for _, v := range set {
		if neighbors[v] {
			out = append(out, v)
		}
	}
	return out
}

func removeNode(set []node.NodeId, v node.NodeId) []node.NodeId {
	var out []node.NodeId
	for _, n := range set {
		if n != v {
			out = append(out, n)
		}
	}
	return out
}

// Group merges already-formed groups whose every cross-pair satisfies the
// relation, lifting Bron-Kerbosch to operate over group indices: a "node"
// here is a group index, and an edge exists between two indices iff every
// member of one group relates to every member of the other.
func Group(r Relator, c node.Relation, groups [][]node.NodeId, always, invert bool) [][]node.NodeId {
	n := len(groups)
	indexAdj := make(map[node.NodeId]map[node.NodeId]bool, n)
	idx := make([]node.NodeId, n)
	for i := range groups {
		idx[i] = node.NodeId{Kind: node.Place, Index: i}
		indexAdj[idx[i]] = make(map[node.NodeId]bool)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if groupsRelate(r, c, groups[i], groups[j], always, invert) {
				indexAdj[idx[i]][idx[j]] = true
				indexAdj[idx[j]][idx[i]] = true
			}
		}
	}

	var cliques [][]node.NodeId
	bronKerbosch(indexAdj, nil, append([]node.NodeId(nil), idx...), nil, &cliques)

	var merged [][]node.NodeId
	for _, clique := range cliques {
		var combined []node.NodeId
		for _, id := range clique {
			combined = append(combined, groups[id.Index]...)
		}
		merged = append(merged, combined)
	}
	return merged
}

func groupsRelate(r Relator, c node.Relation, a, b []node.NodeId, always, invert bool) bool {
	for _, x := range a {
		for _, y := range b {
			if !edge(r, c, x, y, always, invert) {
				return false
			}
		}
	}
	return true
}

// Partials enumerates every clique (not only maximal) reachable by adding
// members of others that sustain the relation with every current member
// of nodes.
func Partials(r Relator, c node.Relation, nodes, others []node.NodeId) [][]node.NodeId {
	var results [][]node.NodeId
	results = append(results, append([]node.NodeId(nil), nodes...))
	var extend func(base []node.NodeId, remaining []node.NodeId)
	extend = func(base []node.NodeId, remaining []node.NodeId) {
		for i, cand := range remaining {
			if sustainsAll(r, c, cand, base) {
				next := append(append([]node.NodeId(nil), base...), cand)
				results = append(results, next)
				extend(next, remaining[i+1:])
			}
		}
	}
	extend(append([]node.NodeId(nil), nodes...), others)
	return results
}

func sustainsAll(r Relator, c node.Relation, cand node.NodeId, base []node.NodeId) bool {
	for _, b := range base {
		if !r.Is(c, cand, b, false) {
			return false
		}
	}
	return true
}

// Complete augments every group that is a proper subset of another with
// the choice-split-branch nodes distinguishing it from the containing
// group, i.e. the members of the superset not already present, then keeps
// only augmented groups that still cover the original subset's nodes.
// This is a direct-membership simplification of the upstream's
// split-branch-transition synthesis: rather than synthesizing and
// inserting new distinguishing transitions into the graph, it reuses the
// superset's existing extra members as the augmentation, which produces
// the same covering groups when the distinguishing nodes are already
// present in the node set Select was run over.
func Complete(groups [][]node.NodeId) [][]node.NodeId {
	var out [][]node.NodeId
	for i, g := range groups {
		augmented := append([]node.NodeId(nil), g...)
		for j, other := range groups {
			if i == j || !isProperSubset(g, other) {
				continue
			}
			for _, m := range other {
				if !contains(augmented, m) {
					augmented = append(augmented, m)
				}
			}
		}
		out = append(out, augmented)
	}
	return out
}

func isProperSubset(a, b []node.NodeId) bool {
	if len(a) >= len(b) {
		return false
	}
	for _, x := range a {
		if !contains(b, x) {
			return false
		}
	}
	return true
}

func contains(set []node.NodeId, v node.NodeId) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// Deselect removes every node in drop from nodes, preserving order.
func Deselect(nodes, drop []node.NodeId) []node.NodeId {
	var out []node.NodeId
	for _, n := range nodes {
		if !contains(drop, n) {
			out = append(out, n)
		}
	}
	return out
}
