package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nbingham/cgraph/marking"
	"github.com/nbingham/cgraph/node"
)

// TestAlwaysChoiceDiamond grounds spec.md §8 scenario 1 on
// original_source/tests/composition.cpp's "always_choice" fixture:
//
//	          ->t0-->p1-->t1-           .
//	         /               \          .
//	  t5-->p0                 >p3-->t4  .
//	         \               /          .
//	          ->t2-->p2-->t3-           .
func TestAlwaysChoiceDiamond(t *testing.T) {
	g := newTestGraph()
	t5 := g.CreateTransition()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	p1 := g.CreatePlace()
	t1 := g.CreateTransition()
	t2 := g.CreateTransition()
	p2 := g.CreatePlace()
	t3 := g.CreateTransition()
	p3 := g.CreatePlace()
	t4 := g.CreateTransition()

	g.Connect(t5, p0)
	g.Connect(p0, t0)
	g.Connect(t0, p1)
	g.Connect(p1, t1)
	g.Connect(t1, p3)
	g.Connect(p3, t4)

	g.Connect(p0, t2)
	g.Connect(t2, p2)
	g.Connect(p2, t3)
	g.Connect(t3, p3)

	require.True(t, g.Is(node.Choice, t0, t2, true))
	require.True(t, g.Is(node.Choice, t2, t0, true))
	require.True(t, g.Is(node.Sequence, t5, p0, true))
	require.True(t, g.Is(node.Sequence, t0, p1, true))
	require.True(t, g.Is(node.Sequence, p3, t4, true))

	require.True(t, g.IsSet(node.Implies, []node.NodeId{t0, p1, t1}, []node.NodeId{p3, t4}, true))
	require.True(t, g.IsSet(node.Implies, []node.NodeId{t2, p2, t3}, []node.NodeId{p3, t4}, true))
	require.True(t, g.IsSet(node.Implies, []node.NodeId{t5}, []node.NodeId{p0}, true))

	require.True(t, g.IsSet(node.Excludes, []node.NodeId{t5, p0, t4, p3}, []node.NodeId{t0, p1, t1}, false))
	require.True(t, g.IsSet(node.Implies, []node.NodeId{t5, p0, t4, p3}, []node.NodeId{t0, p1, t1}, false))
}

// TestAlwaysParallelDiamond grounds spec.md §8 scenario 2 on
// original_source/tests/composition.cpp's "always_parallel" fixture:
//
//	          ->p0-->t1-->p1-           .
//	         /               \          .
//	  p5-->t0                 >t3-->p4  .
//	         \               /          .
//	          ->p2-->t2-->p3-           .
func TestAlwaysParallelDiamond(t *testing.T) {
	g := newTestGraph()
	p5 := g.CreatePlace()
	t0 := g.CreateTransition()
	p0 := g.CreatePlace()
	t1 := g.CreateTransition()
	p1 := g.CreatePlace()
	t3 := g.CreateTransition()
	p4 := g.CreatePlace()
	p2 := g.CreatePlace()
	t2 := g.CreateTransition()
	p3 := g.CreatePlace()

	g.Connect(p5, t0)
	g.Connect(t0, p0)
	g.Connect(p0, t1)
	g.Connect(t1, p1)
	g.Connect(p1, t3)
	g.Connect(t3, p4)

	g.Connect(t0, p2)
	g.Connect(p2, t2)
	g.Connect(t2, p3)
	g.Connect(p3, t3)

	require.True(t, g.Is(node.Parallel, p0, p2, true))
	require.True(t, g.Is(node.Parallel, p2, p0, true))
	require.True(t, g.Is(node.Sequence, p5, t0, true))
	require.True(t, g.Is(node.Sequence, t3, p4, true))

	require.True(t, g.IsSet(node.Implies, []node.NodeId{p0, t1, p1}, []node.NodeId{p2, t2, p3}, true))
	require.True(t, g.IsSet(node.Implies, []node.NodeId{p2, t2, p3}, []node.NodeId{p0, t1, p1}, true))
	require.False(t, g.IsSet(node.Excludes, []node.NodeId{p0, t1, p1}, []node.NodeId{p2, t2, p3}, false))
}

// TestRegularInterleaved grounds spec.md §8 scenario 3 on
// original_source/tests/composition.cpp's "regular_interleaved" fixture,
// the non-proper-nesting case a literal order/membership test cannot
// distinguish from a true reset-originated parallel split:
//
//	=->*p0-->t0-->p1-->t1-=  .
//	     \ /  \ /            .
//	      X    X             .
//	     / \  / \            .
//	=->*p2-->t2-->p3-->t3-=  .
//
// Both rings share a reset marking {p0, p2}, and each ring's transition
// also feeds the other ring's place (t0->p3, t2->p1), so the two rings
// are genuinely concurrent despite interleaving arcs.
func TestRegularInterleaved(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	p1 := g.CreatePlace()
	t1 := g.CreateTransition()
	p2 := g.CreatePlace()
	t2 := g.CreateTransition()
	p3 := g.CreatePlace()
	t3 := g.CreateTransition()

	g.Connect(p0, t0)
	g.Connect(t0, p1)
	g.Connect(p1, t1)
	g.Connect(t1, p0)

	g.Connect(p2, t2)
	g.Connect(t2, p3)
	g.Connect(p3, t3)
	g.Connect(t3, p2)

	g.Connect(p0, t2)
	g.Connect(p2, t0)

	g.Connect(t0, p3)
	g.Connect(t2, p1)

	g.AddReset(marking.NewState(p0.Index, p2.Index))

	require.True(t, g.Is(node.Sequence, p0, t0, true))
	require.True(t, g.Is(node.Sequence, p1, t1, true))
	require.True(t, g.Is(node.Sequence, p2, t2, true))
	require.True(t, g.Is(node.Sequence, p3, t3, true))
	require.True(t, g.Is(node.Sequence, p0, t2, true))
	require.True(t, g.Is(node.Sequence, p2, t0, true))

	require.True(t, g.IsSet(node.Parallel,
		[]node.NodeId{p1, t1, p0}, []node.NodeId{p3, t3, p2}, true))
	require.True(t, g.Is(node.Choice, t0, t2, true))

	require.False(t, g.IsSet(node.Parallel,
		[]node.NodeId{p1, t1, p0, p3, t3, p2}, []node.NodeId{t0, t2}, false))

	require.True(t, g.CrossesReset([]node.NodeId{p0, p1}))
	require.True(t, g.CrossesReset([]node.NodeId{p2, p3}))
}

// TestParallelWithinChoice grounds spec.md §8 scenario 4 on
// original_source/tests/composition.cpp's "choice_parallel" fixture: a
// choice split where one branch itself contains a parallel split.
//
//	          -->p1-->t1-->p2           .
//	         /               \          .
//	     ->t0-->p3-->t2-->p4-->t3-      .
//	    /                         \     .
//	  p0                           >p6  .
//	    \                         /     .
//	     ->t4-->p5-->t5-----------      .
func TestParallelWithinChoice(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	p1 := g.CreatePlace()
	t1 := g.CreateTransition()
	p2 := g.CreatePlace()
	t3 := g.CreateTransition()
	p3 := g.CreatePlace()
	t2 := g.CreateTransition()
	p4 := g.CreatePlace()
	p6 := g.CreatePlace()
	t4 := g.CreateTransition()
	p5 := g.CreatePlace()
	t5 := g.CreateTransition()

	g.Connect(p0, t0)
	g.Connect(t0, p1)
	g.Connect(p1, t1)
	g.Connect(t1, p2)
	g.Connect(p2, t3)
	g.Connect(t3, p6)

	g.Connect(t0, p3)
	g.Connect(p3, t2)
	g.Connect(t2, p4)
	g.Connect(p4, t3)

	g.Connect(p0, t4)
	g.Connect(t4, p5)
	g.Connect(p5, t5)
	g.Connect(t5, p6)

	require.True(t, g.IsSet(node.Sequence, []node.NodeId{p0, t0, p1, t1, p2, t3}, []node.NodeId{p6}, true))
	require.True(t, g.IsSet(node.Sequence, []node.NodeId{p0, t4, p5, t5}, []node.NodeId{p6}, true))
	require.True(t, g.IsSet(node.Parallel, []node.NodeId{p1, t1, p2}, []node.NodeId{p3, t2, p4}, true))
	require.True(t, g.IsSet(node.Choice, []node.NodeId{t4, p5, t5},
		[]node.NodeId{t0, p1, t1, p2, p3, t2, p4, t3}, true))

	require.True(t, g.IsSet(node.Implies, []node.NodeId{p0}, []node.NodeId{p6}, true))
	require.True(t, g.IsSet(node.Implies, []node.NodeId{p6}, []node.NodeId{p0}, true))
	require.True(t, g.IsSet(node.Excludes, []node.NodeId{t4, p5, t5},
		[]node.NodeId{t0, p1, t1, p2, p3, t2, p4, t3}, true))
}

// TestNonProperChoiceSharing grounds spec.md §8 scenario 5 on
// original_source/tests/composition.cpp's "nonproper_choice" fixture,
// followed over the literal prose description since the original's own
// topology shares endpoints p0 (start) and p5 (join) between both
// sequences, with the shortcut p1->t6->p4 spec.md describes threaded
// between them:
//
//	     ->t0-->p1-->t1-->p2-->t2-      .
//	    /         \               \     .
//	  p0           ->t6-           >p5  .
//	    \               \         /     .
//	     ->t3-->p3-->t4-->p4-->t5-      .
func TestNonProperChoiceSharing(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	p1 := g.CreatePlace()
	t1 := g.CreateTransition()
	p2 := g.CreatePlace()
	t2 := g.CreateTransition()
	p5 := g.CreatePlace()
	t3 := g.CreateTransition()
	p3 := g.CreatePlace()
	t4 := g.CreateTransition()
	p4 := g.CreatePlace()
	t5 := g.CreateTransition()
	t6 := g.CreateTransition()

	g.Connect(p0, t0)
	g.Connect(t0, p1)
	g.Connect(p1, t1)
	g.Connect(t1, p2)
	g.Connect(p2, t2)
	g.Connect(t2, p5)

	g.Connect(p0, t3)
	g.Connect(t3, p3)
	g.Connect(p3, t4)
	g.Connect(t4, p4)
	g.Connect(p4, t5)
	g.Connect(t5, p5)

	g.Connect(p1, t6)
	g.Connect(t6, p4)

	// The two whole chains choose between each other...
	require.True(t, g.IsSet(node.Choice,
		[]node.NodeId{t0, p1, t1, p2, t2}, []node.NodeId{t3, p3, t4}, true))
	// ...and so does the shortcut against the tail it bypasses.
	require.True(t, g.IsSet(node.Choice,
		[]node.NodeId{t1, p2, t2}, []node.NodeId{t6, p4, t5}, true))
	require.True(t, g.Is(node.Choice, t6, t3, true))

	// The shortcut makes {t3,p3,t4} and {p4,t5} at least a sometimes-implies:
	// some tokens from the main chain arrive at p4 via the shortcut instead.
	require.True(t, g.IsSet(node.Implies, []node.NodeId{t3, p3, t4}, []node.NodeId{p4, t5}, false))
}

// TestResetDistance grounds spec.md §8 scenario 6 on
// original_source/tests/dist.cpp's "distance.choice" fixture: a single
// cycle with a choice shortcut, exercising branching distance relaxation
// rather than a trivial chain.
//
//	             ->t0-->p1-->t1-        .
//	            /               \       .
//	  =->t3-->p0                 >p2-=  .
//	            \               /       .
//	             ->t2-----------        .
func TestResetDistance(t *testing.T) {
	g := newTestGraph()
	p0 := g.CreatePlace()
	t0 := g.CreateTransition()
	p1 := g.CreatePlace()
	t1 := g.CreateTransition()
	p2 := g.CreatePlace()
	t3 := g.CreateTransition()
	t2 := g.CreateTransition()

	g.Connect(t3, p0)
	g.Connect(p0, t0)
	g.Connect(t0, p1)
	g.Connect(p1, t1)
	g.Connect(t1, p2)
	g.Connect(p2, t3)

	g.Connect(p0, t2)
	g.Connect(t2, p2)

	require.Equal(t, 0, g.Distance(t0, t0))
	require.Equal(t, 1, g.Distance(t0, p1))
	require.Equal(t, 2, g.Distance(t0, t1))
	require.Equal(t, 3, g.Distance(t0, p2))
	require.Equal(t, 4, g.Distance(t0, t3))
	require.Equal(t, 5, g.Distance(t0, p0))
	require.Equal(t, 6, g.Distance(t0, t2))

	require.True(t, g.OnCycle(p0))
	require.True(t, g.OnCycle(t0))
}
