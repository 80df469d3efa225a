package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/node"
)

// TestPinchCollapsesCrossProductAndErasesOriginal builds a transition with
// two predecessors and two successors (a fork/join) and pinches it,
// checking the documented cross-product/sequence-merge/erase shape rather
// than exact node identities.
func TestPinchCollapsesCrossProductAndErasesOriginal(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	p1 := g.CreatePlace()
	mid := g.CreateTransition()
	p2 := g.CreatePlace()
	p3 := g.CreatePlace()

	g.Connect(p0, mid)
	g.Connect(p1, mid)
	g.Connect(mid, p2)
	g.Connect(mid, p3)

	beforePlaces := g.Size(node.Place)
	beforeTransitions := g.Size(node.Transition)

	result := g.Pinch(mid)

	require.Equal(t, beforeTransitions-1, g.Size(node.Transition))
	require.Equal(t, beforePlaces+4, g.Size(node.Place))
	require.Len(t, result, 4)
	for _, survivors := range result {
		require.Len(t, survivors, 1)
	}
}

func TestPinchOnNodeWithoutBothSidesIsNoop(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	mid := g.CreateTransition()
	g.Connect(p0, mid)

	beforePlaces := g.Size(node.Place)

	result := g.Pinch(mid)

	require.Empty(t, result)
	require.Equal(t, beforePlaces, g.Size(node.Place))
}
