// SPDX-License-Identifier: MIT
package automaton

import (
	"github.com/katalvlaran/pathql/boolmat"
	"github.com/katalvlaran/pathql/symbol"
)

// BooleanDecomposition is an FA re-expressed as a family of per-symbol
// boolean adjacency matrices over a shared dense state indexing.
// A symbol absent from M is equivalent to the zero
// matrix, enforced by At rather than by populating every symbol.
type BooleanDecomposition struct {
	N      int
	Index  map[State]int
	States []State // States[i] is the State at index i; inverse of Index
	M      map[symbol.Symbol]*boolmat.Matrix
}

// At reports whether M[sym][i,j] is set, treating an absent symbol as
// the all-zero matrix.
func (d *BooleanDecomposition) At(sym symbol.Symbol, i, j int) bool {
	m, ok := d.M[sym]
	if !ok {
		return false
	}
	return m.At(i, j)
}

// Decompose assigns dense indices to fa's states in insertion order
// and populates one boolean matrix per symbol actually used by a
// transition. fa must be epsilon-free; see RemoveEpsilon.
func Decompose(fa *FA) (*BooleanDecomposition, error) {
	if fa.HasEpsilon() {
		return nil, ErrEpsilonInDecomposition
	}

	n := len(fa.states)
	index := make(map[State]int, n)
	for i, s := range fa.states {
		index[s] = i
	}

	d := &BooleanDecomposition{
		N:      n,
		Index:  index,
		States: fa.States(),
		M:      make(map[symbol.Symbol]*boolmat.Matrix),
	}
	if n == 0 {
		return d, nil
	}

	fa.Transitions(func(src State, sym symbol.Symbol, dst State) {
		mat, ok := d.M[sym]
		if !ok {
			mat = boolmat.MustNew(n, n)
			d.M[sym] = mat
		}
		i, j := index[src], index[dst]
		_ = mat.Set(i, j, true)
	})

	return d, nil
}
