// SPDX-License-Identifier: MIT
package rpq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathql/builder"
	"github.com/katalvlaran/pathql/rpq"
)

func TestAllPairsScenario1StarStar(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "s1_a", "s1_b"))
	require.NoError(t, err)
	U := []string{"0", "1", "2"}
	V := []string{"4", "5", "6"}

	pairs, err := rpq.AllPairs("s1_a* s1_b*", built, U, V)
	require.NoError(t, err)
	require.Len(t, pairs, 9, "every (u,v) in U x V should be reachable via a*b*")
}

func TestAllPairsScenario2AAB(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "s2_a", "s2_b"))
	require.NoError(t, err)
	U := []string{"0", "1", "2"}
	V := []string{"4", "5", "6"}

	pairs, err := rpq.AllPairs("s2_a s2_a s2_b", built, U, V)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"2", "4"}}, pairs)
}

func TestAllPairsScenario3BStar(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "s3_a", "s3_b"))
	require.NoError(t, err)
	U := []string{"0", "1", "2"}
	V := []string{"4", "5", "6"}

	pairs, err := rpq.AllPairs("s3_b*", built, U, V)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"0", "4"}, {"0", "5"}, {"0", "6"}}, pairs)
}

func TestMultiSourcePerSourceAgreesWithAllPairs(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "ms_a", "ms_b"))
	require.NoError(t, err)
	U := []string{"0", "1", "2"}
	V := []string{"4", "5", "6"}

	viaAllPairs, err := rpq.AllPairs("ms_a ms_a ms_b", built, U, V)
	require.NoError(t, err)
	viaMultiSource, err := rpq.MultiSourcePerSource("ms_a ms_a ms_b", built, U, V)
	require.NoError(t, err)

	require.ElementsMatch(t, viaAllPairs, viaMultiSource)
}

func TestMultiSourceUnionReturnsReachableVertexSet(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "mu_a", "mu_b"))
	require.NoError(t, err)
	U := []string{"0", "1", "2"}
	V := []string{"4", "5", "6"}

	reachable, err := rpq.MultiSourceUnion("mu_b*", built, U, V)
	require.NoError(t, err)
	require.Equal(t, []string{"4", "5", "6"}, reachable)
}

func TestAllPairsNoMatchReturnsEmpty(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "nm_a", "nm_b"))
	require.NoError(t, err)
	pairs, err := rpq.AllPairs("nm_a nm_a nm_a nm_a nm_a", built, []string{"0"}, []string{"0"})
	require.NoError(t, err)
	require.Empty(t, pairs)
}

func TestMultiSourcePerSourceScenario4ABB(t *testing.T) {
	built, err := builder.BuildGraph(nil, builder.TwoCycles(3, 3, "s4_a", "s4_b"))
	require.NoError(t, err)
	U := []string{"1", "2", "3"}
	V := []string{"4", "5", "6"}

	pairs, err := rpq.MultiSourcePerSource("s4_a s4_b s4_b", built, U, V)
	require.NoError(t, err)
	require.Equal(t, [][2]string{{"3", "5"}}, pairs)
}
