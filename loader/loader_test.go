// SPDX-License-Identifier: MIT
package loader_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/loader"
	"github.com/katalvlaran/pathql/symbol"
)

const sampleDot = `
digraph demo {
    // two labeled cycles sharing vertex 0
    0 -> 1 [label=a];
    1 -> 0 [label=a];
    0 -> 2 [label=b];
    2 -> 0 [label=b];
    3;
}
`

func TestParseGraphEdgesAndVertices(t *testing.T) {
	g, err := loader.ParseGraph(strings.NewReader(sampleDot))
	require.NoError(t, err)
	require.Equal(t, 4, g.VertexCount(), "3 endpoint vertices + 1 bare declaration")
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, g.HasEdge("0", "1"))
	require.True(t, g.HasVertex("3"))

	a := symbol.Intern("a")
	found := false
	for _, e := range g.Edges() {
		if e.From == "0" && e.To == "1" {
			require.Equal(t, a, e.Label)
			found = true
		}
	}
	require.True(t, found)
}

func TestParseGraphQuotedIdentifiers(t *testing.T) {
	src := `digraph { "node one" -> "node two" [label="x y"]; }`
	g, err := loader.ParseGraph(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, g.HasEdge("node one", "node two"))
}

func TestParseGraphMissingLabel(t *testing.T) {
	_, err := loader.ParseGraph(strings.NewReader("digraph { 0 -> 1; }"))
	require.Error(t, err)
	require.True(t, errors.Is(err, loader.ErrMissingLabel))
}

func TestParseGraphEmptyInput(t *testing.T) {
	_, err := loader.ParseGraph(strings.NewReader("digraph {\n}\n"))
	require.True(t, errors.Is(err, loader.ErrEmptyInput))
}

func TestParseCFGAlternativesAndEpsilon(t *testing.T) {
	src := `
# scenario 5 grammar, plus an epsilon alternative on S
S -> A B | A S1 | $
S1 -> S B
A -> a
B -> b
`
	cfg, err := loader.ParseCFG(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, grammar.Variable("S"), cfg.Start)
	require.Len(t, cfg.Productions, 6)

	epsilons := 0
	for _, p := range cfg.Productions {
		if len(p.Body) == 0 {
			epsilons++
			require.Equal(t, grammar.Variable("S"), p.Head)
		}
	}
	require.Equal(t, 1, epsilons)
}

func TestParseCFGRejectsLowercaseHead(t *testing.T) {
	_, err := loader.ParseCFG(strings.NewReader("s -> a"))
	require.True(t, errors.Is(err, loader.ErrMalformedGrammar))
}

func TestParseCFGRejectsMissingArrow(t *testing.T) {
	_, err := loader.ParseCFG(strings.NewReader("S a b"))
	require.True(t, errors.Is(err, loader.ErrMalformedGrammar))
}

func TestParseECFGKeepsRegexBodyVerbatim(t *testing.T) {
	src := `
S -> a S b | $
T -> (a | b)*
`
	e, err := loader.ParseECFG(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, grammar.Variable("S"), e.Start)
	require.Equal(t, "a S b | $", e.RegexSrc["S"], "ECFG bodies are regexes; '|' must not be split")
	require.Equal(t, "(a | b)*", e.RegexSrc["T"])
}
