// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: matrix-based CFPQ evaluator: one boolmat.Matrix
// per variable, related by the fixed point T[Head] |= T[B] * T[C] for
// every binary production Head -> B C, iterated to convergence.
package cfpq

import (
	"github.com/katalvlaran/pathql/boolmat"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/pgraph"
)

// Matrix evaluates wcnf over g using the matrix fixed-point method.
//
// Complexity: O(k * n^3) where k is the number of fixed-point rounds
// (bounded by the number of distinct (variable, i, j) facts, i.e.
// O(|V| * n^2)) and each round is a sparse boolean matrix multiply per
// binary production.
func Matrix(wcnf *grammar.WCNF, g *pgraph.Graph) (*Result, error) {
	vertices, idx := indexVertices(g)
	n := len(vertices)
	res := newResult(vertices)
	if n == 0 {
		return res, nil
	}

	matrixFor := func(v grammar.Variable) *boolmat.Matrix {
		m, ok := res.T[v]
		if !ok {
			m = boolmat.MustNew(n, n)
			res.T[v] = m
		}
		return m
	}

	for _, f := range seedFacts(wcnf, g, idx) {
		if err := matrixFor(f.head).Set(f.from, f.to, true); err != nil {
			return nil, err
		}
	}

	binaries := binaryProductions(wcnf)
	for changed := true; changed; {
		changed = false
		for _, p := range binaries {
			bm, bok := res.T[p.B]
			cm, cok := res.T[p.C]
			if !bok || !cok {
				continue
			}
			prod, err := bm.Mul(cm)
			if err != nil {
				return nil, err
			}
			if prod.NNZ() == 0 {
				continue
			}
			head := matrixFor(p.Head)
			before := head.NNZ()
			if err := head.OrInPlace(prod); err != nil {
				return nil, err
			}
			if head.NNZ() != before {
				changed = true
			}
		}
	}
	return res, nil
}
