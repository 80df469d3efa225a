package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph"
	"github.com/nbingham/cgraph/node"
)

func newTestGraph() *graph.Graph[struct{}, struct{}] {
	return graph.NewGraph[struct{}, struct{}](graph.Hooks[struct{}, struct{}]{})
}

// choiceDiamond builds p0 -> {t1, t2} -> p3: a place with two enabled
// output transitions, a mutually-exclusive choice between them that
// reconverges at p3.
func choiceDiamond(t *testing.T) (g *graph.Graph[struct{}, struct{}], p0, t1, t2, p3 node.NodeId) {
	g = newTestGraph()
	p0 = g.CreatePlace()
	t1 = g.CreateTransition()
	t2 = g.CreateTransition()
	p3 = g.CreatePlace()
	g.Connect(p0, t1)
	g.Connect(p0, t2)
	g.Connect(t1, p3)
	g.Connect(t2, p3)
	return
}

func TestSplitGroupsOfChoiceBranches(t *testing.T) {
	g, p0, t1, t2, _ := choiceDiamond(t)

	g1 := g.SplitGroupsOf(node.Choice, t1)
	g2 := g.SplitGroupsOf(node.Choice, t2)
	require.Len(t, g1, 1)
	require.Len(t, g2, 1)
	require.Equal(t, p0.Index, g1[0].Split)
	require.Equal(t, []int{0}, g1[0].Branches)
	require.Equal(t, []int{1}, g2[0].Branches)
}

func TestIsAlwaysChoiceForDiamondBranches(t *testing.T) {
	g, _, t1, t2, _ := choiceDiamond(t)

	require.True(t, g.Is(node.Choice, t1, t2, false))
	require.True(t, g.Is(node.Choice, t1, t2, true))
}

// parallelDiamond builds t0 -> {p1, p2} -> t3: a transition that fires
// into two concurrent places, a fork/join.
func parallelDiamond(t *testing.T) (g *graph.Graph[struct{}, struct{}], t0, p1, p2, t3 node.NodeId) {
	g = newTestGraph()
	t0 = g.CreateTransition()
	p1 = g.CreatePlace()
	p2 = g.CreatePlace()
	t3 = g.CreateTransition()
	g.Connect(t0, p1)
	g.Connect(t0, p2)
	g.Connect(p1, t3)
	g.Connect(p2, t3)
	return
}

func TestIsAlwaysParallelForDiamondBranches(t *testing.T) {
	g, _, p1, p2, _ := parallelDiamond(t)

	require.True(t, g.Is(node.Parallel, p1, p2, false))
	require.True(t, g.Is(node.Parallel, p1, p2, true))
}

func TestIsSequenceAcrossDiamond(t *testing.T) {
	g, t0, p1, _, t3 := parallelDiamond(t)

	require.True(t, g.Is(node.Sequence, t0, p1, false))
	require.True(t, g.Is(node.Sequence, p1, t3, false))
}

func TestSplitReadyCacheInvalidatedOnMutation(t *testing.T) {
	g, _, t1, t2, _ := choiceDiamond(t)

	require.True(t, g.Is(node.Choice, t1, t2, false))

	extra := g.CreatePlace()
	g.Connect(t1, extra)

	// Mutation clears the cache; recomputing should still agree.
	require.True(t, g.Is(node.Choice, t1, t2, false))
}
