package marking_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/marking"
	"github.com/nbingham/cgraph/node"
)

func TestMergeDeduplicates(t *testing.T) {
	s0 := marking.NewState(2, 0, 1)
	s1 := marking.NewState(1, 3)

	merged := marking.Merge(s0, s1)
	require.Equal(t, []marking.Token{{Place: 0}, {Place: 1}, {Place: 2}, {Place: 3}}, merged.Tokens)
}

func TestCollapse(t *testing.T) {
	s := marking.NewState(0, 1, 2)
	collapsed := marking.Collapse(5, s)
	require.Equal(t, []marking.Token{{Place: 5}}, collapsed.Tokens)
}

func TestConvertDropsUnmapped(t *testing.T) {
	s := marking.NewState(0, 1)
	translate := map[node.NodeId][]node.NodeId{
		{Kind: node.Place, Index: 0}: {{Kind: node.Place, Index: 10}, {Kind: node.Place, Index: 11}},
	}
	out := marking.Convert(s, translate)
	require.Equal(t, []marking.Token{{Place: 10}, {Place: 11}}, out.Tokens)
}

func TestEqual(t *testing.T) {
	require.True(t, marking.Equal(marking.NewState(1, 2), marking.NewState(2, 1)))
	require.False(t, marking.Equal(marking.NewState(1, 2), marking.NewState(1, 3)))
}
