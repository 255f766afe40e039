// SPDX-License-Identifier: MIT
//
// File: allpairs.go
// Role: tensor-product RPQ evaluator.
package rpq

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/pgraph"
)

// AllPairs evaluates regexSrc over g, restricted to paths starting in
// starts and ending in finals (nil means "all vertices", per
// pgraph.Graph.ToAutomaton), via tensor-product intersection and
// transitive closure.
//
// Complexity: O(log(q*g)) boolean matrix multiplications of size
// (q*g)x(q*g), where q is the regex DFA's state count and g is |V(g)|.
func AllPairs(regexSrc string, g *pgraph.Graph, starts, finals []string) ([][2]string, error) {
	q, err := automaton.CompileRegex(regexSrc)
	if err != nil {
		return nil, fmt.Errorf("rpq.AllPairs: %w", err)
	}
	h := g.ToAutomaton(starts, finals)

	inter, err := automaton.Intersect(q, h)
	if err != nil {
		return nil, fmt.Errorf("rpq.AllPairs: %w", err)
	}
	d, err := automaton.Decompose(inter)
	if err != nil {
		return nil, fmt.Errorf("rpq.AllPairs: %w", err)
	}
	closure, err := automaton.TransitiveClosure(d)
	if err != nil {
		if errors.Is(err, automaton.ErrEmptyDecomposition) {
			return nil, nil
		}
		return nil, fmt.Errorf("rpq.AllPairs: %w", err)
	}

	seen := make(map[[2]string]struct{})
	for _, ps := range inter.StartStates() {
		_, gStart, ok := ps.Parts()
		if !ok {
			continue
		}
		u, ok := gStart.Atom()
		if !ok {
			continue
		}
		pi := d.Index[ps]
		for _, pf := range inter.FinalStates() {
			_, gFinal, ok := pf.Parts()
			if !ok {
				continue
			}
			v, ok := gFinal.Atom()
			if !ok {
				continue
			}
			if closure.At(pi, d.Index[pf]) {
				seen[[2]string{u, v}] = struct{}{}
			}
		}
	}

	out := make([][2]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out, nil
}
