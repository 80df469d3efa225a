package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistanceAlongChain(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t1 := g.CreateTransition()
	p2 := g.CreatePlace()

	g.Connect(p0, t1)
	g.Connect(t1, p2)

	require.Equal(t, 0, g.Distance(p0, p0))
	require.Equal(t, 1, g.Distance(p0, t1))
	require.Equal(t, 2, g.Distance(p0, p2))
	require.True(t, g.IsReachable(p0, p2))
}

func TestDistanceUnreachable(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	p1 := g.CreatePlace()

	require.False(t, g.IsReachable(p0, p1))
}

func TestOnCycleDetectsLoop(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t1 := g.CreateTransition()
	p2 := g.CreatePlace()
	t3 := g.CreateTransition()

	g.Connect(p0, t1)
	g.Connect(t1, p2)
	g.Connect(p2, t3)
	g.Connect(t3, p0)

	require.True(t, g.OnCycle(p0))
}

func TestOnCycleFalseForDag(t *testing.T) {
	g, p0, t1, _, p3 := choiceDiamond(t)
	require.False(t, g.OnCycle(p0))
	require.False(t, g.OnCycle(t1))
	require.False(t, g.OnCycle(p3))
}
