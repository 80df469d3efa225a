package node_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/node"
)

func TestNodeKindOpposite(t *testing.T) {
	require.Equal(t, node.Transition, node.Place.Opposite())
	require.Equal(t, node.Place, node.Transition.Opposite())
}

func TestNodeIdLess(t *testing.T) {
	p0 := node.NodeId{Kind: node.Place, Index: 0}
	p1 := node.NodeId{Kind: node.Place, Index: 1}
	t0 := node.NodeId{Kind: node.Transition, Index: 0}

	require.True(t, p0.Less(p1))
	require.False(t, p1.Less(p0))
	require.True(t, p1.Less(t0), "places sort before transitions regardless of index")
	require.False(t, t0.Less(p1))
}

func TestSplitAndBranchKind(t *testing.T) {
	require.Equal(t, node.Transition, node.SplitKind(node.Parallel))
	require.Equal(t, node.Place, node.BranchKind(node.Parallel))
	require.Equal(t, node.Place, node.SplitKind(node.Choice))
	require.Equal(t, node.Transition, node.BranchKind(node.Choice))
}

func TestRelationOpposite(t *testing.T) {
	require.Equal(t, node.Parallel, node.Choice.Opposite())
	require.Equal(t, node.Choice, node.Parallel.Opposite())
}

func TestInvalidNodeId(t *testing.T) {
	require.False(t, node.Invalid.IsValid())
	require.True(t, node.NodeId{Index: 0}.IsValid())
}
