// SPDX-License-Identifier: MIT
//
// File: fa.go
// Role: FiniteAutomaton type and its mutation/query surface.
// Policy (mirrors core/api.go's "thin, deterministic public facade"):
//   - Construction-time helpers only here; Decompose/TransitiveClosure/
//     Intersect/regex-compilation live in their own files.
//   - states is ordered (insertion order) because that order defines the
//     BooleanDecomposition index numbering.
package automaton

import "github.com/katalvlaran/pathql/symbol"

// FA is a nondeterministic finite automaton over Symbol labels,
// possibly still carrying epsilon transitions (symbol.Epsilon) prior
// to RemoveEpsilon/decomposition. Invariants: start/final are subsets
// of states, and every transition endpoint is a known state.
type FA struct {
	states []State // insertion order == decomposition index order
	known  map[State]struct{}

	start map[State]struct{}
	final map[State]struct{}

	// trans[src][sym] = set of destination states.
	trans map[State]map[symbol.Symbol]map[State]struct{}
}

// New returns an empty FA ready for AddState/AddTransition calls.
func New() *FA {
	return &FA{
		known: make(map[State]struct{}),
		start: make(map[State]struct{}),
		final: make(map[State]struct{}),
		trans: make(map[State]map[symbol.Symbol]map[State]struct{}),
	}
}

// AddState registers s if it hasn't been seen before. Re-adding an
// already-known state is a no-op, matching core.Graph's idempotent
// AddVertex semantics (core/methods_vertices.go).
func (fa *FA) AddState(s State) {
	if _, ok := fa.known[s]; ok {
		return
	}
	fa.known[s] = struct{}{}
	fa.states = append(fa.states, s)
}

// AddStart marks s as a start state, adding it to states first if
// necessary.
func (fa *FA) AddStart(s State) {
	fa.AddState(s)
	fa.start[s] = struct{}{}
}

// AddFinal marks s as a final state, adding it to states first if
// necessary.
func (fa *FA) AddFinal(s State) {
	fa.AddState(s)
	fa.final[s] = struct{}{}
}

// AddTransition records src --sym--> dst, registering both endpoints
// as states if needed. sym may be symbol.Epsilon in intermediate
// (pre-decomposition) automata.
func (fa *FA) AddTransition(src State, sym symbol.Symbol, dst State) {
	fa.AddState(src)
	fa.AddState(dst)
	bySym, ok := fa.trans[src]
	if !ok {
		bySym = make(map[symbol.Symbol]map[State]struct{})
		fa.trans[src] = bySym
	}
	dsts, ok := bySym[sym]
	if !ok {
		dsts = make(map[State]struct{})
		bySym[sym] = dsts
	}
	dsts[dst] = struct{}{}
}

// States returns the automaton's states in insertion order.
func (fa *FA) States() []State {
	out := make([]State, len(fa.states))
	copy(out, fa.states)
	return out
}

// IsStart reports whether s is a start state.
func (fa *FA) IsStart(s State) bool { _, ok := fa.start[s]; return ok }

// IsFinal reports whether s is a final state.
func (fa *FA) IsFinal(s State) bool { _, ok := fa.final[s]; return ok }

// StartStates returns the start-state set as a slice. The order is
// unspecified; callers must not depend on it.
func (fa *FA) StartStates() []State {
	out := make([]State, 0, len(fa.start))
	for s := range fa.start {
		out = append(out, s)
	}
	return out
}

// FinalStates returns the final-state set as a slice.
func (fa *FA) FinalStates() []State {
	out := make([]State, 0, len(fa.final))
	for s := range fa.final {
		out = append(out, s)
	}
	return out
}

// Transitions calls visit for every (src, sym, dst) triple.
func (fa *FA) Transitions(visit func(src State, sym symbol.Symbol, dst State)) {
	for src, bySym := range fa.trans {
		for sym, dsts := range bySym {
			for dst := range dsts {
				visit(src, sym, dst)
			}
		}
	}
}

// Next returns the destination set for src on sym (nil if none).
func (fa *FA) Next(src State, sym symbol.Symbol) map[State]struct{} {
	bySym, ok := fa.trans[src]
	if !ok {
		return nil
	}
	return bySym[sym]
}

// Alphabet returns the set of symbols (excluding Epsilon) actually
// used by some transition.
func (fa *FA) Alphabet() map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{})
	for _, bySym := range fa.trans {
		for sym := range bySym {
			if sym != symbol.Epsilon {
				out[sym] = struct{}{}
			}
		}
	}
	return out
}

// HasEpsilon reports whether any transition is labeled symbol.Epsilon.
func (fa *FA) HasEpsilon() bool {
	for _, bySym := range fa.trans {
		if _, ok := bySym[symbol.Epsilon]; ok {
			return true
		}
	}
	return false
}
