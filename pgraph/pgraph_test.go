// SPDX-License-Identifier: MIT
package pgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/pgraph"
	"github.com/katalvlaran/pathql/symbol"
)

func TestAddEdgeAutoVivifiesVertices(t *testing.T) {
	g := pgraph.NewGraph()
	a := symbol.Intern("a")
	_, err := g.AddEdge("0", "1", a)
	require.NoError(t, err)
	require.True(t, g.HasVertex("0"))
	require.True(t, g.HasVertex("1"))
	require.True(t, g.HasEdge("0", "1"))
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdgeAllowsParallelAndLoops(t *testing.T) {
	g := pgraph.NewGraph()
	a, b := symbol.Intern("a"), symbol.Intern("b")
	_, err := g.AddEdge("0", "0", a)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", a)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "1", b)
	require.NoError(t, err)
	require.Equal(t, 3, g.EdgeCount())
}

func TestVerticesSortedDeterministic(t *testing.T) {
	g := pgraph.NewGraph()
	a := symbol.Intern("a")
	_, _ = g.AddEdge("2", "1", a)
	_, _ = g.AddEdge("1", "0", a)
	require.Equal(t, []string{"0", "1", "2"}, g.Vertices())
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := pgraph.NewGraph()
	a := symbol.Intern("a")
	_, _ = g.AddEdge("0", "1", a)
	_, _ = g.AddEdge("1", "2", a)
	require.NoError(t, g.RemoveVertex("1"))
	require.Equal(t, 0, g.EdgeCount())
	require.False(t, g.HasVertex("1"))
}

func TestToAutomatonRoundTrips(t *testing.T) {
	g := pgraph.NewGraph()
	a := symbol.Intern("pq_a")
	_, _ = g.AddEdge("0", "1", a)
	_, _ = g.AddEdge("1", "2", a)

	fa := g.ToAutomaton([]string{"0"}, []string{"2"})
	require.True(t, automaton.Accepts(fa, []symbol.Symbol{a, a}))
	require.False(t, automaton.Accepts(fa, []symbol.Symbol{a}))
}

func TestLabels(t *testing.T) {
	g := pgraph.NewGraph()
	a, b := symbol.Intern("pg_a"), symbol.Intern("pg_b")
	_, _ = g.AddEdge("0", "1", a)
	_, _ = g.AddEdge("1", "2", b)
	require.ElementsMatch(t, []symbol.Symbol{a, b}, g.Labels())
}
