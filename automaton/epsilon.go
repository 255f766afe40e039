// SPDX-License-Identifier: MIT
package automaton

import "github.com/katalvlaran/pathql/symbol"

// RemoveEpsilon returns an epsilon-free FA equivalent to fa, computed
// via the standard epsilon-closure construction: for every state p and
// every state r in p's epsilon-closure, copy all of r's non-epsilon
// transitions onto p (so r--a-->q yields p--a-->q); a state becomes
// final if its epsilon-closure contains an original final state.
//
// Complexity: O(|states|^2 * |alphabet|) in the worst case (closures
// computed once per state, transitions replayed per closure member) —
// acceptable here since this runs once before decomposition, never in
// the fixed-point hot loops.
func RemoveEpsilon(fa *FA) *FA {
	closures := make(map[State][]State, len(fa.states))
	for _, s := range fa.states {
		closures[s] = epsilonClosure(fa, s)
	}

	out := New()
	for _, s := range fa.states {
		out.AddState(s)
	}
	for _, s := range fa.StartStates() {
		out.AddStart(s)
	}
	for _, s := range fa.states {
		for _, r := range closures[s] {
			if fa.IsFinal(r) {
				out.AddFinal(s)
			}
			bySym, ok := fa.trans[r]
			if !ok {
				continue
			}
			for sym, dsts := range bySym {
				if sym == symbol.Epsilon {
					continue
				}
				for dst := range dsts {
					out.AddTransition(s, sym, dst)
				}
			}
		}
	}
	return out
}

// epsilonClosure returns s plus every state reachable from s via one
// or more epsilon transitions.
func epsilonClosure(fa *FA, s State) []State {
	seen := map[State]struct{}{s: {}}
	stack := []State{s}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dst := range fa.Next(cur, symbol.Epsilon) {
			if _, ok := seen[dst]; !ok {
				seen[dst] = struct{}{}
				stack = append(stack, dst)
			}
		}
	}
	out := make([]State, 0, len(seen))
	for st := range seen {
		out = append(out, st)
	}
	return out
}
