// SPDX-License-Identifier: MIT
package rsm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/rsm"
	"github.com/katalvlaran/pathql/symbol"
)

// scenario5ECFG mirrors builder.Scenario5Grammar as an ECFG: S -> (a
// S1) | (a b); S1 -> S b.
func scenario5ECFG() *grammar.ECFG {
	e := grammar.NewECFG("S")
	e.AddProduction("S", "rsm_a rsm_b | rsm_a S1")
	e.AddProduction("S1", "S rsm_b")
	return e
}

func TestFromECFGCompilesOneBoxPerVariable(t *testing.T) {
	r, err := rsm.FromECFG(scenario5ECFG())
	require.NoError(t, err)
	require.Len(t, r.Boxes, 2)
	require.NotNil(t, r.Boxes["S"])
	require.NotNil(t, r.Boxes["S1"])
}

func TestIsCallEdgeRecognizesVariableTokens(t *testing.T) {
	r, err := rsm.FromECFG(scenario5ECFG())
	require.NoError(t, err)

	s1Sym := symbol.Intern("S1")
	v, ok := r.IsCallEdge(s1Sym)
	require.True(t, ok)
	require.Equal(t, grammar.Variable("S1"), v)

	terminalSym := symbol.Intern("rsm_a")
	_, ok = r.IsCallEdge(terminalSym)
	require.False(t, ok)
}

func TestFromECFGMissingStartErrors(t *testing.T) {
	e := grammar.NewECFG("Missing")
	e.AddProduction("Other", "rsm_x")
	_, err := rsm.FromECFG(e)
	require.ErrorIs(t, err, rsm.ErrNoBox)
}

func TestUnionMergesDisjointBoxes(t *testing.T) {
	a := grammar.NewECFG("A")
	a.AddProduction("A", "rsm_union_a")
	ra, err := rsm.FromECFG(a)
	require.NoError(t, err)

	b := grammar.NewECFG("B")
	b.AddProduction("B", "rsm_union_b")
	rb, err := rsm.FromECFG(b)
	require.NoError(t, err)

	merged, err := rsm.Union(ra, rb)
	require.NoError(t, err)
	require.Len(t, merged.Boxes, 2)
	require.Equal(t, grammar.Variable("A"), merged.Start)
}

func TestUnionRejectsOverlappingVariables(t *testing.T) {
	a := grammar.NewECFG("A")
	a.AddProduction("A", "rsm_overlap_1")
	ra, err := rsm.FromECFG(a)
	require.NoError(t, err)

	b := grammar.NewECFG("A")
	b.AddProduction("A", "rsm_overlap_2")
	rb, err := rsm.FromECFG(b)
	require.NoError(t, err)

	_, err = rsm.Union(ra, rb)
	require.ErrorIs(t, err, rsm.ErrDuplicateVariable)
}
