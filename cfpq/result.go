// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: the shared output shape of both CFPQ evaluators: one
// boolean matrix per grammar variable, indexed against a fixed,
// sorted vertex ordering (mirrors pgraph.Graph.Vertices()'s
// determinism guarantee).
package cfpq

import (
	"github.com/katalvlaran/pathql/boolmat"
	"github.com/katalvlaran/pathql/grammar"
)

// Result is the outcome of evaluating a WCNF over a graph: for every
// variable A, Result.T[A].At(i, j) holds iff there is a path from
// Vertices[i] to Vertices[j] whose label word is derivable from A.
type Result struct {
	Vertices []string
	index    map[string]int
	T        map[grammar.Variable]*boolmat.Matrix
}

func newResult(vertices []string) *Result {
	idx := make(map[string]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}
	return &Result{Vertices: vertices, index: idx, T: make(map[grammar.Variable]*boolmat.Matrix)}
}

// Holds reports whether u ~A~> w, i.e. (u, w) ∈ Rel(A). Unknown
// vertices report false rather than erroring, matching
// boolmat.Matrix.At's out-of-range convention.
func (r *Result) Holds(a grammar.Variable, u, w string) bool {
	m, ok := r.T[a]
	if !ok {
		return false
	}
	i, iok := r.index[u]
	j, jok := r.index[w]
	if !iok || !jok {
		return false
	}
	return m.At(i, j)
}

// Pairs returns every (u, w) with u ~A~> w, sorted by (u, w).
func (r *Result) Pairs(a grammar.Variable) [][2]string {
	m, ok := r.T[a]
	if !ok {
		return nil
	}
	var out [][2]string
	for i, u := range r.Vertices {
		for _, j := range m.RowIndices(i) {
			out = append(out, [2]string{u, r.Vertices[j]})
		}
	}
	return out
}
