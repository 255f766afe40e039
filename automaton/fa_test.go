package automaton_test

import (
	"testing"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/symbol"
	"github.com/stretchr/testify/require"
)

func TestFA_AddStateIdempotent(t *testing.T) {
	fa := automaton.New()
	s := automaton.NewState("q0")
	fa.AddState(s)
	fa.AddState(s)
	require.Len(t, fa.States(), 1)
}

func TestFA_StartFinal(t *testing.T) {
	fa := automaton.New()
	s0, s1 := automaton.NewState("q0"), automaton.NewState("q1")
	fa.AddStart(s0)
	fa.AddFinal(s1)
	require.True(t, fa.IsStart(s0))
	require.False(t, fa.IsStart(s1))
	require.True(t, fa.IsFinal(s1))
}

func TestFA_TransitionsAndNext(t *testing.T) {
	fa := automaton.New()
	s0, s1 := automaton.NewState("q0"), automaton.NewState("q1")
	a := symbol.Intern("a")
	fa.AddTransition(s0, a, s1)

	next := fa.Next(s0, a)
	require.Contains(t, next, s1)
	require.False(t, fa.HasEpsilon())

	fa.AddTransition(s1, symbol.Epsilon, s0)
	require.True(t, fa.HasEpsilon())
}

func TestDecompose_RejectsEpsilon(t *testing.T) {
	fa := automaton.New()
	s0, s1 := automaton.NewState("q0"), automaton.NewState("q1")
	fa.AddTransition(s0, symbol.Epsilon, s1)
	_, err := automaton.Decompose(fa)
	require.ErrorIs(t, err, automaton.ErrEpsilonInDecomposition)
}

func TestDecompose_IndexOrderAndMatrix(t *testing.T) {
	fa := automaton.New()
	s0, s1, s2 := automaton.NewState("q0"), automaton.NewState("q1"), automaton.NewState("q2")
	fa.AddState(s0)
	fa.AddState(s1)
	fa.AddState(s2)
	a := symbol.Intern("a")
	fa.AddTransition(s0, a, s1)

	d, err := automaton.Decompose(fa)
	require.NoError(t, err)
	require.Equal(t, 3, d.N)
	require.True(t, d.At(a, d.Index[s0], d.Index[s1]))
	require.False(t, d.At(a, d.Index[s1], d.Index[s0]))

	b := symbol.Intern("never-used")
	require.False(t, d.At(b, 0, 0), "absent symbol is the implicit zero matrix")
}

func TestTransitiveClosure_Basic(t *testing.T) {
	// 0 -a-> 1 -a-> 2: closure must connect 0->1, 0->2, 1->2 (not 0->0).
	fa := automaton.New()
	s0, s1, s2 := automaton.NewState("0"), automaton.NewState("1"), automaton.NewState("2")
	a := symbol.Intern("a")
	fa.AddTransition(s0, a, s1)
	fa.AddTransition(s1, a, s2)

	d, err := automaton.Decompose(fa)
	require.NoError(t, err)
	c, err := automaton.TransitiveClosure(d)
	require.NoError(t, err)

	require.True(t, c.At(d.Index[s0], d.Index[s1]))
	require.True(t, c.At(d.Index[s0], d.Index[s2]))
	require.True(t, c.At(d.Index[s1], d.Index[s2]))
	require.False(t, c.At(d.Index[s0], d.Index[s0]))
}

func TestTransitiveClosure_EmptyDecomposition(t *testing.T) {
	fa := automaton.New()
	d, err := automaton.Decompose(fa)
	require.NoError(t, err)
	_, err = automaton.TransitiveClosure(d)
	require.ErrorIs(t, err, automaton.ErrEmptyDecomposition)
}

func TestRemoveEpsilon(t *testing.T) {
	fa := automaton.New()
	s0, s1, s2 := automaton.NewState("0"), automaton.NewState("1"), automaton.NewState("2")
	a := symbol.Intern("a")
	fa.AddStart(s0)
	fa.AddFinal(s2)
	fa.AddTransition(s0, symbol.Epsilon, s1)
	fa.AddTransition(s1, a, s2)

	out := automaton.RemoveEpsilon(fa)
	require.False(t, out.HasEpsilon())
	require.Contains(t, out.Next(s0, a), s2)
}
