// SPDX-License-Identifier: MIT
package cfpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/builder"
	"github.com/katalvlaran/pathql/cfpq"
	"github.com/katalvlaran/pathql/grammar"
)

// scenario5 pairs the two-cycles(3, 3) graph with the balanced a/b
// grammar S -> AB | AS1; S1 -> SB; A -> a; B -> b.
func scenario5(t *testing.T) (*grammar.WCNF, builder.Constructor) {
	t.Helper()
	wcnf, err := grammar.ToWCNF(builder.Scenario5Grammar("cfpq_a", "cfpq_b"))
	require.NoError(t, err)
	return wcnf, builder.TwoCycles(3, 3, "cfpq_a", "cfpq_b")
}

func TestHellingsAndMatrixAgree(t *testing.T) {
	wcnf, cons := scenario5(t)
	g, err := builder.BuildGraph(nil, cons)
	require.NoError(t, err)

	viaHellings, err := cfpq.Hellings(wcnf, g)
	require.NoError(t, err)
	viaMatrix, err := cfpq.Matrix(wcnf, g)
	require.NoError(t, err)

	require.ElementsMatch(t, viaHellings.Pairs(wcnf.Start), viaMatrix.Pairs(wcnf.Start))
	require.NotEmpty(t, viaHellings.Pairs(wcnf.Start), "scenario 5's S should reach at least one pair")
}

func TestCFPQEpsilonReachesEveryVertexItself(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.LabeledCycle(4, "cfpq_loop"))
	require.NoError(t, err)

	gram := grammar.NewCFG("S")
	gram.AddProduction("S") // S -> epsilon
	wcnf, err := grammar.ToWCNF(gram)
	require.NoError(t, err)

	res, err := cfpq.Hellings(wcnf, g)
	require.NoError(t, err)
	for _, v := range res.Vertices {
		require.True(t, res.Holds("S", v, v))
	}
}

func TestCFPQNoPathMeansEmptyRelation(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.LabeledCycle(3, "cfpq_iso"))
	require.NoError(t, err)

	gram := grammar.NewCFG("S") // S has no productions: empty language
	wcnf, err := grammar.ToWCNF(gram)
	require.NoError(t, err)

	res, err := cfpq.Matrix(wcnf, g)
	require.NoError(t, err)
	require.Empty(t, res.Pairs("S"))
}

func TestCFPQScenario5ExactStartPairs(t *testing.T) {
	wcnf, err := grammar.ToWCNF(builder.Scenario5Grammar("s5_a", "s5_b"))
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, builder.TwoCycles(2, 1, "s5_a", "s5_b"))
	require.NoError(t, err)

	res, err := cfpq.Hellings(wcnf, g)
	require.NoError(t, err)
	require.ElementsMatch(t, [][2]string{
		{"0", "0"}, {"0", "3"}, {"1", "0"}, {"1", "3"}, {"2", "0"}, {"2", "3"},
	}, res.Pairs("S"))

	// Restricted to U={0,1}, V={2,3} the answer narrows to two pairs.
	var restricted [][2]string
	for _, p := range res.Pairs("S") {
		if (p[0] == "0" || p[0] == "1") && (p[1] == "2" || p[1] == "3") {
			restricted = append(restricted, p)
		}
	}
	require.ElementsMatch(t, [][2]string{{"0", "3"}, {"1", "3"}}, restricted)
}
