// SPDX-License-Identifier: MIT
package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/symbol"
)

// scenario5Grammar builds the balanced a/b grammar used across the
// CFPQ tests: S -> A B | A S1; S1 -> S B; A -> a; B -> b.
func scenario5Grammar() *grammar.CFG {
	a, b := symbol.Intern("wcnf_a"), symbol.Intern("wcnf_b")
	g := grammar.NewCFG("S")
	g.AddProduction("S", grammar.VarSym("A"), grammar.VarSym("B"))
	g.AddProduction("S", grammar.VarSym("A"), grammar.VarSym("S1"))
	g.AddProduction("S1", grammar.VarSym("S"), grammar.VarSym("B"))
	g.AddProduction("A", grammar.TermSym(a))
	g.AddProduction("B", grammar.TermSym(b))
	return g
}

func TestToWCNFShapesOnly(t *testing.T) {
	wcnf, err := grammar.ToWCNF(scenario5Grammar())
	require.NoError(t, err)
	for _, p := range wcnf.Productions {
		switch p.Kind {
		case grammar.ProdEpsilon, grammar.ProdTerminal, grammar.ProdBinary:
		default:
			t.Fatalf("unexpected production kind %v for %s", p.Kind, p.Head)
		}
	}
}

func TestToWCNFPreservesEpsilon(t *testing.T) {
	g := grammar.NewCFG("S")
	g.AddProduction("S") // S -> epsilon
	wcnf, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	require.Len(t, wcnf.Productions, 1)
	require.Equal(t, grammar.ProdEpsilon, wcnf.Productions[0].Kind)
}

func TestToWCNFEliminatesUnitProductions(t *testing.T) {
	a := symbol.Intern("unit_a")
	g := grammar.NewCFG("S")
	g.AddProduction("S", grammar.VarSym("A")) // unit production
	g.AddProduction("A", grammar.TermSym(a))
	wcnf, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	found := false
	for _, p := range wcnf.Productions {
		if p.Head == "S" && p.Kind == grammar.ProdTerminal && p.Terminal == a {
			found = true
		}
	}
	require.True(t, found, "unit production S->A->a should collapse to S->a")
}

func TestToWCNFBinarizesLongBodies(t *testing.T) {
	a, b, c, d := symbol.Intern("bz_a"), symbol.Intern("bz_b"), symbol.Intern("bz_c"), symbol.Intern("bz_d")
	g := grammar.NewCFG("S")
	g.AddProduction("AA", grammar.TermSym(a))
	g.AddProduction("BB", grammar.TermSym(b))
	g.AddProduction("CC", grammar.TermSym(c))
	g.AddProduction("DD", grammar.TermSym(d))
	g.AddProduction("S", grammar.VarSym("AA"), grammar.VarSym("BB"), grammar.VarSym("CC"), grammar.VarSym("DD"))
	wcnf, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	byHead := wcnf.ByHead()
	require.NotEmpty(t, byHead["S"])
	for _, p := range byHead["S"] {
		require.Equal(t, grammar.ProdBinary, p.Kind)
	}
}

func TestToWCNFRemovesUselessSymbols(t *testing.T) {
	a := symbol.Intern("useless_a")
	g := grammar.NewCFG("S")
	g.AddProduction("S", grammar.TermSym(a))
	g.AddProduction("Unreachable", grammar.TermSym(a))
	wcnf, err := grammar.ToWCNF(g)
	require.NoError(t, err)
	for _, p := range wcnf.Productions {
		require.NotEqual(t, grammar.Variable("Unreachable"), p.Head)
	}
}
