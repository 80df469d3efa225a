package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/node"
)

func TestMergeAdoptsEmptyGraphWholesale(t *testing.T) {
	g := newTestGraph()
	other := newTestGraph()
	other.CreatePlace()
	other.CreatePlaceWith(struct{}{})

	translate := g.Merge(node.Choice, other)
	require.Equal(t, 2, g.Size(node.Place))
	require.NotEmpty(t, translate)
}

func TestMergeNoopOnEmptyOther(t *testing.T) {
	g := newTestGraph()
	g.CreatePlace()
	other := newTestGraph()

	translate := g.Merge(node.Choice, other)
	require.Equal(t, 1, g.Size(node.Place))
	require.Empty(t, translate)
}

func TestMergeSequenceNoopWithoutSourceOrSink(t *testing.T) {
	g := newTestGraph()
	g.CreatePlace()
	other := newTestGraph()
	other.CreatePlace()

	translate := g.Merge(node.Sequence, other)
	require.Equal(t, 1, g.Size(node.Place))
	require.Empty(t, translate)
}

func TestMergeChoiceAppendsNodesAndArcs(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	g.Connect(p0, t0)

	other := newTestGraph()
	p1 := other.CreatePlace()
	t1 := other.CreateTransition()
	other.Connect(p1, t1)

	translate := g.Merge(node.Choice, other)
	require.Equal(t, 2, g.Size(node.Place))
	require.Equal(t, 2, g.Size(node.Transition))
	require.Contains(t, translate, node.NodeId{Kind: node.Place, Index: 0})
}
