package marking

import (
	"sort"

	"github.com/nbingham/cgraph/node"
)

// Token carries a place index. It is ordered solely by that index (no other
// field participates in ordering or equality), matching the upstream
// token::operator< (original_source/petri/state.cpp).
type Token struct {
	Place int
}

// Less orders tokens by Place index.
func (t Token) Less(other Token) bool {
	return t.Place < other.Place
}

// State is an ordered, deduplicated sequence of tokens: a marking. The
// zero value is the empty marking.
type State struct {
	Tokens []Token
}

// NewState builds a State from place indices, sorting and deduplicating
// them the way Merge does.
func NewState(places ...int) State {
	s := State{Tokens: make([]Token, len(places))}
	for i, p := range places {
		s.Tokens[i] = Token{Place: p}
	}
	return s.sorted()
}

func (s State) sorted() State {
	out := State{Tokens: append([]Token(nil), s.Tokens...)}
	sort.Slice(out.Tokens, func(i, j int) bool { return out.Tokens[i].Less(out.Tokens[j]) })
	dedup := out.Tokens[:0]
	for i, tok := range out.Tokens {
		if i == 0 || tok != out.Tokens[i-1] {
			dedup = append(dedup, tok)
		}
	}
	out.Tokens = dedup
	return out
}

// Merge returns the sorted union of s0's and s1's tokens with duplicates
// removed.
func Merge(s0, s1 State) State {
	merged := State{Tokens: append(append([]Token(nil), s0.Tokens...), s1.Tokens...)}
	return merged.sorted()
}

// Collapse replaces a state's token list with a single token at index,
// discarding every other token. index is typically the place a graph
// editor collapsed this marking's places into.
func Collapse(index int, _ State) State {
	return State{Tokens: []Token{{Place: index}}}
}

// Convert rewrites a state's tokens through a translation map from an old
// NodeId to its replacement(s), as produced by Graph.Erase, Graph.Pinch, or
// Graph.Merge. A token whose place has no entry in translate is dropped: it
// named a place that no longer exists and the caller did not map it
// forward.
func Convert(s State, translate map[node.NodeId][]node.NodeId) State {
	result := State{}
	for _, tok := range s.Tokens {
		repl, ok := translate[node.NodeId{Kind: node.Place, Index: tok.Place}]
		if !ok {
			continue
		}
		for _, r := range repl {
			result.Tokens = append(result.Tokens, Token{Place: r.Index})
		}
	}
	return result.sorted()
}

// Equal reports whether s0 and s1 carry the same sorted token sequence.
func Equal(s0, s1 State) bool {
	if len(s0.Tokens) != len(s1.Tokens) {
		return false
	}
	for i := range s0.Tokens {
		if s0.Tokens[i] != s1.Tokens[i] {
			return false
		}
	}
	return true
}
