// SPDX-License-Identifier: MIT
package automaton

import "github.com/katalvlaran/pathql/symbol"

// Accepts reports whether fa accepts word, by simulating fa as an NFA
// (so it works whether fa is epsilon-carrying, nondeterministic, or a
// minimized DFA). Not part of the RPQ/CFPQ evaluation path, which
// never materializes witness words; this exists purely to let tests
// assert the language a compiled regex accepts.
func Accepts(fa *FA, word []symbol.Symbol) bool {
	current := make(map[State]struct{})
	for _, s := range fa.StartStates() {
		for _, r := range epsilonClosure(fa, s) {
			current[r] = struct{}{}
		}
	}
	for _, sym := range word {
		next := make(map[State]struct{})
		for s := range current {
			for d := range fa.Next(s, sym) {
				for _, r := range epsilonClosure(fa, d) {
					next[r] = struct{}{}
				}
			}
		}
		current = next
	}
	for s := range current {
		if fa.IsFinal(s) {
			return true
		}
	}
	return false
}
