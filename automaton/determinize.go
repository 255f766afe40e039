// SPDX-License-Identifier: MIT
package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Determinize converts an epsilon-free NFA into an equivalent DFA via
// the standard subset construction: each DFA state is the (canonicalized)
// set of NFA states reachable by the same input prefix. nfa's own
// states are indexed once (insertion order) to build a collision-free
// set key, mirroring Decompose's indexing discipline.
//
// The result is total: any state lacking a transition on some symbol
// gets one into a shared dead state, so Minimize sees a uniform
// per-symbol signature for every state and produces the conventional
// minimal DFA (dead state included) rather than a partial automaton
// that happens to collapse it away.
//
// Complexity: O(2^|states|) worst case, as for any subset construction;
// in practice the reachable-subset frontier explored here is far
// smaller for the query regexes this engine targets.
func Determinize(nfa *FA) *FA {
	idx := make(map[State]int, len(nfa.states))
	for i, s := range nfa.states {
		idx[s] = i
	}
	alphabet := nfa.Alphabet()

	keyOf := func(set map[State]struct{}) string {
		ids := make([]int, 0, len(set))
		for s := range set {
			ids = append(ids, idx[s])
		}
		sort.Ints(ids)
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.Itoa(id)
		}
		return strings.Join(parts, ",")
	}
	hasFinal := func(set map[State]struct{}) bool {
		for s := range set {
			if nfa.IsFinal(s) {
				return true
			}
		}
		return false
	}

	dfa := New()
	startSet := make(map[State]struct{})
	for _, s := range nfa.StartStates() {
		startSet[s] = struct{}{}
	}
	startKey := keyOf(startSet)
	startState := NewState("d:" + startKey)
	visited := map[string]State{startKey: startState}
	dfa.AddStart(startState)
	if hasFinal(startSet) {
		dfa.AddFinal(startState)
	}

	type pending struct {
		set map[State]struct{}
		key string
	}
	queue := []pending{{startSet, startKey}}

	var dead State
	hasDead := false
	needDead := func() State {
		if !hasDead {
			dead = NewState("d:dead")
			dfa.AddState(dead)
			hasDead = true
		}
		return dead
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curState := visited[cur.key]

		for sym := range alphabet {
			next := make(map[State]struct{})
			for s := range cur.set {
				for d := range nfa.Next(s, sym) {
					next[d] = struct{}{}
				}
			}
			if len(next) == 0 {
				dfa.AddTransition(curState, sym, needDead())
				continue
			}
			nk := keyOf(next)
			nState, ok := visited[nk]
			if !ok {
				nState = NewState("d:" + nk)
				visited[nk] = nState
				if hasFinal(next) {
					dfa.AddFinal(nState)
				}
				queue = append(queue, pending{next, nk})
			}
			dfa.AddTransition(curState, sym, nState)
		}
	}

	// Total automaton: the dead state absorbs every symbol, including
	// from itself, so no state is ever left without a transition.
	if hasDead {
		for sym := range alphabet {
			dfa.AddTransition(dead, sym, dead)
		}
	}
	return dfa
}
