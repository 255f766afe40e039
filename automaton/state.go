// SPDX-License-Identifier: MIT
package automaton

import "fmt"

// State is an opaque automaton-state identifier. It is either atomic
// (wraps a user-supplied label, e.g. a graph vertex ID or a regex
// subset-construction index) or a composite Pair produced by
// Intersect's Cartesian-product construction.
//
// State is a thin wrapper around a pointer, so two States compare
// equal (via ==, and as map keys) iff they were produced by the same
// NewState/PairState call: equality by identity. Callers that need two independently
// constructed States for "the same" vertex to compare equal must intern
// them once (see pgraph, which keeps one State per Vertex.ID) and reuse
// that value thereafter.
type State struct {
	n *stateNode
}

type stateNode struct {
	atom        string
	left, right *State // nil,nil for atomic states
}

// NewState wraps label as a fresh atomic State.
func NewState(label string) State {
	return State{n: &stateNode{atom: label}}
}

// PairState builds the composite state (a, b), as produced by
// Intersect's Cartesian-product construction.
func PairState(a, b State) State {
	return State{n: &stateNode{left: &a, right: &b}}
}

// IsValid reports whether s was produced by NewState or PairState
// (as opposed to the zero State{}).
func (s State) IsValid() bool { return s.n != nil }

// IsPair reports whether s is a composite state.
func (s State) IsPair() bool { return s.n != nil && s.n.left != nil }

// Atom returns the wrapped label and true if s is atomic.
func (s State) Atom() (string, bool) {
	if s.n == nil || s.n.left != nil {
		return "", false
	}
	return s.n.atom, true
}

// Parts returns the two components of a composite state and true, or
// the zero value and false if s is atomic.
func (s State) Parts() (State, State, bool) {
	if s.n == nil || s.n.left == nil {
		return State{}, State{}, false
	}
	return *s.n.left, *s.n.right, true
}

// String renders s for diagnostics; it is not parsed back by anything.
func (s State) String() string {
	if s.n == nil {
		return "<invalid>"
	}
	if s.n.left != nil {
		return fmt.Sprintf("(%s,%s)", s.n.left.String(), s.n.right.String())
	}
	return s.n.atom
}
