// SPDX-License-Identifier: MIT
//
// File: grammar_fixture.go
// Role: the balanced a/b CFG fixture ("S -> AB | AS1; S1 -> SB;
// A -> a; B -> b"), used by the cfpq tests together with TwoCycles
// graphs labeled with the same terminals.
package builder

import (
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/symbol"
)

// Scenario5Grammar returns the grammar S -> A B | A S1; S1 -> S B;
// A -> a; B -> b, with terminals interned under labelA/labelB (so
// callers can pair it with a TwoCycles(n, m, labelA, labelB) graph).
func Scenario5Grammar(labelA, labelB string) *grammar.CFG {
	a, b := symbol.Intern(labelA), symbol.Intern(labelB)
	g := grammar.NewCFG("S")
	g.AddProduction("S", grammar.VarSym("A"), grammar.VarSym("B"))
	g.AddProduction("S", grammar.VarSym("A"), grammar.VarSym("S1"))
	g.AddProduction("S1", grammar.VarSym("S"), grammar.VarSym("B"))
	g.AddProduction("A", grammar.TermSym(a))
	g.AddProduction("B", grammar.TermSym(b))
	return g
}
