// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only summary (Stats) and the ToAutomaton conversion that
// feeds the RPQ evaluators.
package pgraph

import "github.com/katalvlaran/pathql/automaton"

// Stats is a read-only snapshot of a Graph's size.
type Stats struct {
	VertexCount int
	EdgeCount   int
}

// Stats produces a point-in-time size summary.
//
// Complexity: O(1) (VertexCount/EdgeCount are themselves O(1)).
func (g *Graph) Stats() *Stats {
	return &Stats{VertexCount: g.VertexCount(), EdgeCount: g.EdgeCount()}
}

// ToAutomaton converts g into an NFA whose states are exactly g's
// vertex IDs (wrapped via automaton.NewState) and whose transitions
// mirror g's edges one-for-one, with start/final subsets given by
// starts/finals. A nil starts or finals slice means "all vertices
// currently in g".
//
// Complexity: O(V+E).
func (g *Graph) ToAutomaton(starts, finals []string) *automaton.FA {
	fa := automaton.New()
	state := make(map[string]automaton.State, g.VertexCount())
	for _, id := range g.Vertices() {
		s := automaton.NewState(id)
		state[id] = s
		fa.AddState(s)
	}

	if starts == nil {
		starts = g.Vertices()
	}
	if finals == nil {
		finals = g.Vertices()
	}
	for _, id := range starts {
		if s, ok := state[id]; ok {
			fa.AddStart(s)
		}
	}
	for _, id := range finals {
		if s, ok := state[id]; ok {
			fa.AddFinal(s)
		}
	}

	for _, e := range g.Edges() {
		fa.AddTransition(state[e.From], e.Label, state[e.To])
	}
	return fa
}
