package automaton_test

import (
	"testing"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/symbol"
	"github.com/stretchr/testify/require"
)

func words(toks ...string) []symbol.Symbol {
	out := make([]symbol.Symbol, len(toks))
	for i, t := range toks {
		out[i] = symbol.Intern(t)
	}
	return out
}

func TestCompileRegex_SingleSymbol(t *testing.T) {
	dfa, err := automaton.CompileRegex("a")
	require.NoError(t, err)
	require.True(t, automaton.Accepts(dfa, words("a")))
	require.False(t, automaton.Accepts(dfa, words("b")))
	require.False(t, automaton.Accepts(dfa, nil))
}

func TestCompileRegex_Epsilon(t *testing.T) {
	dfa, err := automaton.CompileRegex("$")
	require.NoError(t, err)
	require.True(t, automaton.Accepts(dfa, nil))
	require.False(t, automaton.Accepts(dfa, words("a")))
}

func TestCompileRegex_Union(t *testing.T) {
	dfa, err := automaton.CompileRegex("a | b")
	require.NoError(t, err)
	require.True(t, automaton.Accepts(dfa, words("a")))
	require.True(t, automaton.Accepts(dfa, words("b")))
	require.False(t, automaton.Accepts(dfa, words("c")))
}

func TestCompileRegex_Concat(t *testing.T) {
	dfa, err := automaton.CompileRegex("a a b")
	require.NoError(t, err)
	require.True(t, automaton.Accepts(dfa, words("a", "a", "b")))
	require.False(t, automaton.Accepts(dfa, words("a", "b")))
}

func TestCompileRegex_Star(t *testing.T) {
	dfa, err := automaton.CompileRegex("a*")
	require.NoError(t, err)
	require.True(t, automaton.Accepts(dfa, nil))
	require.True(t, automaton.Accepts(dfa, words("a")))
	require.True(t, automaton.Accepts(dfa, words("a", "a", "a")))
	require.False(t, automaton.Accepts(dfa, words("b")))
}

func TestCompileRegex_Plus(t *testing.T) {
	dfa, err := automaton.CompileRegex("a+")
	require.NoError(t, err)
	require.False(t, automaton.Accepts(dfa, nil), "a+ requires at least one a")
	require.True(t, automaton.Accepts(dfa, words("a")))
	require.True(t, automaton.Accepts(dfa, words("a", "a")))
}

func TestCompileRegex_Grouping(t *testing.T) {
	dfa, err := automaton.CompileRegex("(a|b)*c")
	require.NoError(t, err)
	require.True(t, automaton.Accepts(dfa, words("a", "b", "a", "c")))
	require.False(t, automaton.Accepts(dfa, words("a", "b")))
}

// TestCompileRegex_Minimality pins the 3-state minimal DFA for a*b*
// against its accepted-sample set {epsilon, b, bb, a}; see DESIGN.md
// for why a*b* (not a+b*) is the language with this sample set.
func TestCompileRegex_Minimality(t *testing.T) {
	dfa, err := automaton.CompileRegex("a*b*")
	require.NoError(t, err)

	require.True(t, automaton.Accepts(dfa, nil))
	require.True(t, automaton.Accepts(dfa, words("b")))
	require.True(t, automaton.Accepts(dfa, words("b", "b")))
	require.True(t, automaton.Accepts(dfa, words("a")))
	require.True(t, automaton.Accepts(dfa, words("a", "a", "b", "b")))
	require.False(t, automaton.Accepts(dfa, words("b", "a")))

	require.Len(t, dfa.States(), 3, "minimal DFA for a*b* has exactly 3 states: seen-only-a's, seen-a-b, dead")
}

func TestCompileRegex_MalformedInput(t *testing.T) {
	_, err := automaton.CompileRegex("(a")
	require.ErrorIs(t, err, automaton.ErrMalformedRegex)

	_, err = automaton.CompileRegex("a|")
	require.ErrorIs(t, err, automaton.ErrMalformedRegex)

	_, err = automaton.CompileRegex("")
	require.ErrorIs(t, err, automaton.ErrMalformedRegex)
}

func TestIntersect_Basic(t *testing.T) {
	// L(a*) ∩ L(a a*) == L(a+)
	star, err := automaton.CompileRegex("a*")
	require.NoError(t, err)
	plus, err := automaton.CompileRegex("a+")
	require.NoError(t, err)

	inter, err := automaton.Intersect(star, plus)
	require.NoError(t, err)

	require.False(t, languageContainsEmpty(t, inter))
	require.True(t, languageContains(t, inter, words("a")))
	require.True(t, languageContains(t, inter, words("a", "a")))
}

func languageContains(t *testing.T, fa *automaton.FA, w []symbol.Symbol) bool {
	t.Helper()
	return automaton.Accepts(fa, w)
}

func languageContainsEmpty(t *testing.T, fa *automaton.FA) bool {
	t.Helper()
	return automaton.Accepts(fa, nil)
}
