// SPDX-License-Identifier: MIT
package automaton

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathql/symbol"
)

// Minimize reduces a (possibly partial) DFA dfa to its minimal
// equivalent via Moore's partition-refinement algorithm: start by
// splitting states into final/non-final, then repeatedly refine each
// group by each state's per-symbol transition signature until no group
// splits further. A missing transition is its own signature class
// ("dead"), so states that differ only by having no outgoing edge on
// some symbol are correctly kept apart from states that loop back to
// an accepting group on that symbol.
//
// Complexity: O(|states|^2 * |alphabet|) — adequate for the regex
// sizes this engine compiles; Hopcroft's O(n log n) refinement is not
// needed at this scale.
func Minimize(dfa *FA) *FA {
	states := dfa.states
	if len(states) == 0 {
		return dfa
	}
	alphabet := dfa.Alphabet()
	idx := make(map[State]int, len(states))
	for i, s := range states {
		idx[s] = i
	}

	group := make([]int, len(states))
	for i, s := range states {
		if dfa.IsFinal(s) {
			group[i] = 1
		} else {
			group[i] = 0
		}
	}

	for {
		sig := make([]string, len(states))
		for i, s := range states {
			var sb strings.Builder
			sb.WriteString(strconv.Itoa(group[i]))
			for _, sym := range sortedAlphabet(alphabet) {
				sb.WriteByte('|')
				dsts := dfa.Next(s, sym)
				if len(dsts) == 0 {
					sb.WriteString("-")
					continue
				}
				// A DFA has at most one destination per symbol; take it.
				for d := range dsts {
					sb.WriteString(strconv.Itoa(group[idx[d]]))
					break
				}
			}
			sig[i] = sb.String()
		}

		newGroup, numGroups := renumber(sig)
		changed := numGroups != countDistinct(group)
		group = newGroup
		if !changed {
			break
		}
	}

	// Build the minimized FA: one state per group.
	out := New()
	repState := make(map[int]State)
	groupState := func(g int) State {
		if s, ok := repState[g]; ok {
			return s
		}
		s := NewState("m" + strconv.Itoa(g))
		repState[g] = s
		return s
	}

	startGroup := -1
	for _, s := range dfa.StartStates() {
		startGroup = group[idx[s]]
		break
	}
	out.AddStart(groupState(startGroup))

	seenFinal := make(map[int]bool)
	for i, s := range states {
		if dfa.IsFinal(s) && !seenFinal[group[i]] {
			seenFinal[group[i]] = true
			out.AddFinal(groupState(group[i]))
		}
	}

	seenTrans := make(map[[2]int]map[symbol.Symbol]bool)
	for i, s := range states {
		g := group[i]
		for _, sym := range sortedAlphabet(alphabet) {
			dsts := dfa.Next(s, sym)
			for d := range dsts {
				dg := group[idx[d]]
				key := [2]int{g, dg}
				if seenTrans[key] == nil {
					seenTrans[key] = make(map[symbol.Symbol]bool)
				}
				if seenTrans[key][sym] {
					continue
				}
				seenTrans[key][sym] = true
				out.AddTransition(groupState(g), sym, groupState(dg))
				break // DFA: only one destination per symbol
			}
		}
	}

	return out
}

func sortedAlphabet(alphabet map[symbol.Symbol]struct{}) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(alphabet))
	for s := range alphabet {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// renumber assigns a dense [0,k) group id to each distinct signature
// string, preserving first-seen order, and returns the new group slice
// plus the number of distinct groups.
func renumber(sig []string) ([]int, int) {
	ids := make(map[string]int)
	out := make([]int, len(sig))
	for i, s := range sig {
		id, ok := ids[s]
		if !ok {
			id = len(ids)
			ids[s] = id
		}
		out[i] = id
	}
	return out, len(ids)
}

func countDistinct(group []int) int {
	seen := make(map[int]struct{})
	for _, g := range group {
		seen[g] = struct{}{}
	}
	return len(seen)
}
