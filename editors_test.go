package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/node"
)

func TestConnectSameKindInsertsMediator(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	p1 := g.CreatePlace()

	g.Connect(p0, p1)

	require.Equal(t, 1, g.Size(node.Transition))
	require.Equal(t, []node.NodeId{g.Next(p0)[0]}, []node.NodeId{{Kind: node.Transition, Index: 0}})
}

func TestEraseCompactsIndicesAndReturnsBoundary(t *testing.T) {
	g, t0, p1, p2, t3 := parallelDiamond(t)

	preds, succs := g.Erase(p1)
	require.Equal(t, []node.NodeId{t0}, preds)
	require.Equal(t, []node.NodeId{t3}, succs)
	require.Equal(t, 1, g.Size(node.Place))
	require.Equal(t, p2, g.Next(t0)[0])
}

func TestCopyDuplicatesPayload(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlaceWith(struct{}{})

	dup := g.Copy(p0)
	require.NotEqual(t, p0, dup)
	require.Equal(t, 2, g.Size(node.Place))
}

func TestInsertOnSplicesArc(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	g.Connect(p0, t0)

	mid := g.CreateTransition()
	arc := g.Out(p0)[0]
	g.InsertOn(arc, mid)

	require.NotContains(t, g.Next(p0), t0)
	require.True(t, g.IsReachable(p0, t0))
}
