// SPDX-License-Identifier: MIT
package automaton

import "github.com/katalvlaran/pathql/boolmat"

// Intersect builds the tensor-product automaton of a and b. Both
// operands must already be epsilon-free (decomposable).
// States of the result are PairState(sa, sb) at composite index
// i1*db.N+i2, matching the Kronecker-product row/column formula so
// later RPQ code can project a composite State straight back to its
// graph-side component.
//
// Start/final states of the result are the Cartesian product of the
// operands' start/final sets. Symbols present in only one operand
// contribute no transitions, since their Kronecker factor against the
// other operand's (absent, i.e. zero) matrix is zero everywhere.
func Intersect(a, b *FA) (*FA, error) {
	da, err := Decompose(a)
	if err != nil {
		return nil, err
	}
	db, err := Decompose(b)
	if err != nil {
		return nil, err
	}

	out := New()
	states := make([]State, da.N*db.N)
	for i1, s1 := range da.States {
		for i2, s2 := range db.States {
			ps := PairState(s1, s2)
			states[i1*db.N+i2] = ps
			out.AddState(ps)
		}
	}

	for _, s1 := range a.StartStates() {
		i1, ok := da.Index[s1]
		if !ok {
			continue
		}
		for _, s2 := range b.StartStates() {
			i2, ok := db.Index[s2]
			if !ok {
				continue
			}
			out.AddStart(states[i1*db.N+i2])
		}
	}
	for _, s1 := range a.FinalStates() {
		i1, ok := da.Index[s1]
		if !ok {
			continue
		}
		for _, s2 := range b.FinalStates() {
			i2, ok := db.Index[s2]
			if !ok {
				continue
			}
			out.AddFinal(states[i1*db.N+i2])
		}
	}

	for sym, ma := range da.M {
		mb, ok := db.M[sym]
		if !ok {
			continue // symbol only in a: contributes nothing
		}
		kr, err := boolmat.Kron(ma, mb)
		if err != nil {
			return nil, err
		}
		for row := 0; row < kr.Rows(); row++ {
			for _, col := range kr.RowIndices(row) {
				out.AddTransition(states[row], sym, states[col])
			}
		}
	}

	return out, nil
}
