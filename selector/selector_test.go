package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/node"
	"github.com/nbingham/cgraph/selector"
)

// fakeRelator reports parallel=true for every pair whose indices are both
// even or both odd, and false otherwise -- a simple stand-in for
// graph.Graph.Is in these structural tests.
type fakeRelator struct{}

func (fakeRelator) Is(c node.Relation, a, b node.NodeId, always bool) bool {
	return a.Index%2 == b.Index%2
}

func ids(n int) []node.NodeId {
	out := make([]node.NodeId, n)
	for i := range out {
		out[i] = node.NodeId{Kind: node.Place, Index: i}
	}
	return out
}

func TestSelectPartitionsByParity(t *testing.T) {
	r := fakeRelator{}
	cliques := selector.Select(r, node.Parallel, ids(4), false, false)

	require.Len(t, cliques, 2)
	for _, c := range cliques {
		require.Len(t, c, 2)
	}
}

func TestPartialsIncludesBaseAndExtensions(t *testing.T) {
	r := fakeRelator{}
	base := []node.NodeId{{Kind: node.Place, Index: 0}}
	others := []node.NodeId{{Kind: node.Place, Index: 2}, {Kind: node.Place, Index: 1}}

	results := selector.Partials(r, node.Parallel, base, others)
	require.Contains(t, results, base)
	require.Contains(t, results, []node.NodeId{base[0], others[0]})
	require.Len(t, results, 2)
}

func TestDeselectRemovesMembers(t *testing.T) {
	all := ids(3)
	drop := []node.NodeId{all[1]}

	out := selector.Deselect(all, drop)
	require.Equal(t, []node.NodeId{all[0], all[2]}, out)
}

func TestGroupMergesFullyRelatedGroups(t *testing.T) {
	r := fakeRelator{}
	groups := [][]node.NodeId{
		{{Kind: node.Place, Index: 0}},
		{{Kind: node.Place, Index: 2}},
		{{Kind: node.Place, Index: 1}},
	}

	merged := selector.Group(r, node.Parallel, groups, false, false)
	require.NotEmpty(t, merged)
}
