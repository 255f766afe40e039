package symbol_test

import (
	"testing"

	"github.com/katalvlaran/pathql/symbol"
	"github.com/stretchr/testify/require"
)

func TestTable_InternIsIdempotent(t *testing.T) {
	tbl := symbol.NewTable()

	a1 := tbl.Intern("a")
	a2 := tbl.Intern("a")
	b := tbl.Intern("b")

	require.Equal(t, a1, a2, "interning the same label twice must return the same Symbol")
	require.NotEqual(t, a1, b, "distinct labels must intern to distinct Symbols")
}

func TestTable_NameRoundTrip(t *testing.T) {
	tbl := symbol.NewTable()
	s := tbl.Intern("hello")

	name, ok := tbl.Name(s)
	require.True(t, ok)
	require.Equal(t, "hello", name)
}

func TestTable_EpsilonPredeclared(t *testing.T) {
	tbl := symbol.NewTable()
	name, ok := tbl.Name(symbol.Epsilon)
	require.True(t, ok)
	require.Equal(t, "$", name)
}

func TestTable_UnknownSymbol(t *testing.T) {
	tbl := symbol.NewTable()
	_, ok := tbl.Name(symbol.Symbol(999))
	require.False(t, ok)
}

func TestTable_IsolatedAcrossInstances(t *testing.T) {
	t1 := symbol.NewTable()
	t2 := symbol.NewTable()

	a1 := t1.Intern("a")
	a2 := t2.Intern("a")

	require.Equal(t, a1, a2, "identical intern sequences in separate tables yield identical integer ids")
}
