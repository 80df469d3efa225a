package graph

import (
	"github.com/nbingham/cgraph/marking"
	"github.com/nbingham/cgraph/node"
	"github.com/nbingham/cgraph/splitgroup"
)

// Hooks bundles the five user-supplied payload behaviors spec'd as the
// node payload contract: merge for places and transitions (one per
// node kind), mergeability for transitions, and the two
// transition predicates the reducer consults. A nil hook defaults to the
// behavior documented on its field — a graph of inert payloads (e.g.
// struct{}) needs to supply none of these.
type Hooks[P, Tr any] struct {
	// MergePlace combines two place payloads under a composition. Defaults
	// to returning a, i.e. "keep the first operand".
	MergePlace func(c node.Relation, a, b P) P

	// MergeTransition combines two transition payloads under a
	// composition. Defaults to returning a.
	MergeTransition func(c node.Relation, a, b Tr) Tr

	// Mergeable reports whether two transitions may be merged under a
	// composition. Defaults to true.
	Mergeable func(c node.Relation, a, b Tr) bool

	// IsInfeasible reports whether a transition payload can never fire.
	// Defaults to false.
	IsInfeasible func(t Tr) bool

	// IsVacuous reports whether a transition payload never changes the
	// marking. Defaults to false.
	IsVacuous func(t Tr) bool
}

func (h Hooks[P, Tr]) mergePlace(c node.Relation, a, b P) P {
	if h.MergePlace == nil {
		return a
	}
	return h.MergePlace(c, a, b)
}

func (h Hooks[P, Tr]) mergeTransition(c node.Relation, a, b Tr) Tr {
	if h.MergeTransition == nil {
		return a
	}
	return h.MergeTransition(c, a, b)
}

func (h Hooks[P, Tr]) mergeable(c node.Relation, a, b Tr) bool {
	if h.Mergeable == nil {
		return true
	}
	return h.Mergeable(c, a, b)
}

func (h Hooks[P, Tr]) isInfeasible(t Tr) bool {
	if h.IsInfeasible == nil {
		return false
	}
	return h.IsInfeasible(t)
}

func (h Hooks[P, Tr]) isVacuous(t Tr) bool {
	if h.IsVacuous == nil {
		return false
	}
	return h.IsVacuous(t)
}

// numSplitKinds counts the two composition kinds a split-group annotation is
// kept for. node.Choice and node.Parallel already equal 0 and 1, so they
// double as the slot index directly.
const numSplitKinds = 2

type placeRecord[P any] struct {
	payload P
	splits  [numSplitKinds][]splitgroup.SplitGroup
}

type transitionRecord[Tr any] struct {
	payload Tr
	splits  [numSplitKinds][]splitgroup.SplitGroup
}

// ArcId addresses one directed arc by the list it lives in (arcs[List],
// keyed by the arc's From.Kind, per spec.md §3) and its position there.
type ArcId struct {
	List  node.NodeKind
	Index int
}

// Option configures a Graph before or after construction.
type Option[P, Tr any] func(g *Graph[P, Tr])

// WithHooks installs the payload hooks at construction time. Equivalent to
// passing Hooks to NewGraph directly; provided for symmetry with the
// other Option constructors.
func WithHooks[P, Tr any](h Hooks[P, Tr]) Option[P, Tr] {
	return func(g *Graph[P, Tr]) { g.hooks = h }
}

// WithCapacity pre-sizes the place and transition slices, avoiding
// reallocation for callers that know their graph's approximate size.
func WithCapacity[P, Tr any](places, transitions int) Option[P, Tr] {
	return func(g *Graph[P, Tr]) {
		g.places = make([]placeRecord[P], 0, places)
		g.transitions = make([]transitionRecord[Tr], 0, transitions)
	}
}

// Graph is the core bipartite concurrency graph: places, transitions, the
// two arc lists, the three marking sets (source, sink, reset), and the
// lazily-computed split-group and distance caches. Graph is generic over
// opaque place and transition payload types — parametric polymorphism
// standing in for the original's template-over-payload design.
type Graph[P, Tr any] struct {
	hooks Hooks[P, Tr]

	places      []placeRecord[P]
	transitions []transitionRecord[Tr]

	// arcs[node.Place] holds Place->Transition arcs; arcs[node.Transition]
	// holds Transition->Place arcs. Within arcs[k], every arc has
	// From.Kind == k (spec.md §3's arc-homogeneity invariant).
	arcs [2][]node.Arc

	source []marking.State
	sink   []marking.State
	reset  []marking.State

	splitReady [numSplitKinds]bool
	distReady  bool
	dist       []int
}

// NewGraph constructs an empty Graph with the given hooks and options.
//
// Complexity: O(1)
func NewGraph[P, Tr any](hooks Hooks[P, Tr], opts ...Option[P, Tr]) *Graph[P, Tr] {
	g := &Graph[P, Tr]{hooks: hooks}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Graph[P, Tr]) valid(id node.NodeId) bool {
	if id.Index < 0 {
		return false
	}
	if id.Kind == node.Place {
		return id.Index < len(g.places)
	}
	return id.Index < len(g.transitions)
}

func (g *Graph[P, Tr]) fail(op string, err error) node.NodeId {
	Fail(op, err)
	return node.Invalid
}

// Size returns the number of nodes of the given kind.
func (g *Graph[P, Tr]) Size(kind node.NodeKind) int {
	if kind == node.Place {
		return len(g.places)
	}
	return len(g.transitions)
}

// Out returns the ids of the arcs leaving node id.
//
// Complexity: O(out-degree of id's arc list)
func (g *Graph[P, Tr]) Out(id node.NodeId) []ArcId {
	if !g.valid(id) {
		g.fail("Out", ErrInvalidNode)
		return nil
	}
	var out []ArcId
	for i, a := range g.arcs[id.Kind] {
		if a.From == id {
			out = append(out, ArcId{List: id.Kind, Index: i})
		}
	}
	return out
}

// In returns the ids of the arcs entering node id.
//
// Complexity: O(in-degree of id's opposite arc list)
func (g *Graph[P, Tr]) In(id node.NodeId) []ArcId {
	if !g.valid(id) {
		g.fail("In", ErrInvalidNode)
		return nil
	}
	opp := id.Kind.Opposite()
	var in []ArcId
	for i, a := range g.arcs[opp] {
		if a.To == id {
			in = append(in, ArcId{List: opp, Index: i})
		}
	}
	return in
}

// NextArcs returns the arc ids sharing arc's From node (its out-arcs).
func (g *Graph[P, Tr]) NextArcs(a ArcId) []ArcId {
	arc := g.arc(a)
	return g.Out(arc.From)
}

// PrevArcs returns the arc ids sharing arc's To node (its in-arcs).
func (g *Graph[P, Tr]) PrevArcs(a ArcId) []ArcId {
	arc := g.arc(a)
	return g.In(arc.To)
}

func (g *Graph[P, Tr]) arc(a ArcId) node.Arc {
	return g.arcs[a.List][a.Index]
}

// Next returns id's out-neighbors.
func (g *Graph[P, Tr]) Next(id node.NodeId) []node.NodeId {
	if !g.valid(id) {
		g.fail("Next", ErrInvalidNode)
		return nil
	}
	var out []node.NodeId
	for _, a := range g.arcs[id.Kind] {
		if a.From == id {
			out = append(out, a.To)
		}
	}
	return out
}

// Prev returns id's in-neighbors.
func (g *Graph[P, Tr]) Prev(id node.NodeId) []node.NodeId {
	if !g.valid(id) {
		g.fail("Prev", ErrInvalidNode)
		return nil
	}
	opp := id.Kind.Opposite()
	var in []node.NodeId
	for _, a := range g.arcs[opp] {
		if a.To == id {
			in = append(in, a.From)
		}
	}
	return in
}

// Neighbors returns the union of id's predecessors and successors.
func (g *Graph[P, Tr]) Neighbors(id node.NodeId) []node.NodeId {
	return append(g.Prev(id), g.Next(id)...)
}

// Place returns the payload for a place id.
func (g *Graph[P, Tr]) Place(id node.NodeId) P {
	return g.places[id.Index].payload
}

// Transition returns the payload for a transition id.
func (g *Graph[P, Tr]) Transition(id node.NodeId) Tr {
	return g.transitions[id.Index].payload
}

// Source returns the graph's source marking set.
func (g *Graph[P, Tr]) Source() []marking.State { return g.source }

// Sink returns the graph's sink marking set.
func (g *Graph[P, Tr]) Sink() []marking.State { return g.sink }

// Reset returns the graph's reset (initial) marking set.
func (g *Graph[P, Tr]) Reset() []marking.State { return g.reset }

// AddSource appends a marking to the graph's source set, the Go mutator
// for what the original (original_source/petri/graph.h) exposes as
// direct pushes onto its public "source" member.
func (g *Graph[P, Tr]) AddSource(s marking.State) {
	g.source = append(g.source, s)
	g.markModified()
}

// AddSink appends a marking to the graph's sink set, mirroring AddSource.
func (g *Graph[P, Tr]) AddSink(s marking.State) {
	g.sink = append(g.sink, s)
	g.markModified()
}

// AddReset appends a marking to the graph's reset set (spec.md §4.8),
// the Go mutator for the original's direct "reset.push_back(...)" calls
// (original_source/tests/composition.cpp seeds its interleaving fixtures
// this way before computing split groups).
func (g *Graph[P, Tr]) AddReset(s marking.State) {
	g.reset = append(g.reset, s)
	g.markModified()
}

// markModified clears the distance-ready and both split-group-ready
// flags. Every mutating editor must call this (spec.md §5); derived
// caches are recomputed lazily on the next query.
func (g *Graph[P, Tr]) markModified() {
	g.distReady = false
	g.splitReady[node.Choice] = false
	g.splitReady[node.Parallel] = false
}
