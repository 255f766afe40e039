// SPDX-License-Identifier: MIT
//
// File: common.go
// Role: shared setup both evaluators need: a fixed vertex numbering and
// the (Head, i, j) facts contributed directly by terminal and epsilon
// productions, before any fixed-point iteration begins.
package cfpq

import (
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/pgraph"
)

// seedFact is one (variable, start, end) fact derivable in zero
// propagation steps: either an epsilon production applied at every
// vertex, or a terminal production applied at every edge whose label
// matches.
type seedFact struct {
	head     grammar.Variable
	from, to int
}

// indexVertices returns g's vertices (already sorted by pgraph.Graph.
// Vertices) paired with a string->index lookup.
func indexVertices(g *pgraph.Graph) ([]string, map[string]int) {
	vs := g.Vertices()
	idx := make(map[string]int, len(vs))
	for i, v := range vs {
		idx[v] = i
	}
	return vs, idx
}

// seedFacts computes every fact contributable without propagation:
// A -> ε contributes (A, i, i) for every vertex i; A -> a contributes
// (A, i, j) for every edge i-a->j.
func seedFacts(wcnf *grammar.WCNF, g *pgraph.Graph, idx map[string]int) []seedFact {
	var out []seedFact
	n := len(idx)
	for _, p := range wcnf.Productions {
		switch p.Kind {
		case grammar.ProdEpsilon:
			for i := 0; i < n; i++ {
				out = append(out, seedFact{head: p.Head, from: i, to: i})
			}
		case grammar.ProdTerminal:
			for _, e := range g.Edges() {
				if e.Label != p.Terminal {
					continue
				}
				out = append(out, seedFact{head: p.Head, from: idx[e.From], to: idx[e.To]})
			}
		}
	}
	return out
}

// binaryProductions returns only the Head -> B C productions (the ones
// that drive fixed-point propagation in both evaluators).
func binaryProductions(wcnf *grammar.WCNF) []grammar.WCNFProduction {
	var out []grammar.WCNFProduction
	for _, p := range wcnf.Productions {
		if p.Kind == grammar.ProdBinary {
			out = append(out, p)
		}
	}
	return out
}
