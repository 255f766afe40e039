// SPDX-License-Identifier: MIT
package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathql/config"
)

func writeSession(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadValidSession(t *testing.T) {
	path := writeSession(t, `
graph: testdata/graph.dot
queries:
  - kind: rpq
    regex: "a b*"
    sources: ["0", "1"]
    finals: ["4"]
  - kind: rpq
    mode: persource
    regex: "a"
  - kind: cfpq
    grammar: testdata/grammar.cfg
    algorithm: matrix
`)
	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "testdata/graph.dot", s.Graph)
	require.Len(t, s.Queries, 3)
	require.Equal(t, config.ModeAllPairs, s.Queries[0].Mode, "mode defaults to allpairs")
	require.Equal(t, []string{"0", "1"}, s.Queries[0].Sources)
	require.Equal(t, config.ModePerSource, s.Queries[1].Mode)
	require.Equal(t, config.AlgoMatrix, s.Queries[2].Algorithm)
}

func TestLoadDefaultsCFPQAlgorithm(t *testing.T) {
	path := writeSession(t, `
graph: g.dot
queries:
  - kind: cfpq
    grammar: g.cfg
`)
	s, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.AlgoHellings, s.Queries[0].Algorithm)
}

func TestValidateRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"no graph", "queries: [{kind: rpq, regex: a}]", config.ErrNoGraph},
		{"no queries", "graph: g.dot", config.ErrNoQueries},
		{"rpq without regex", "graph: g.dot\nqueries: [{kind: rpq}]", config.ErrBadQuery},
		{"cfpq without grammar", "graph: g.dot\nqueries: [{kind: cfpq}]", config.ErrBadQuery},
		{"unknown kind", "graph: g.dot\nqueries: [{kind: sparql}]", config.ErrBadQuery},
		{"unknown mode", "graph: g.dot\nqueries: [{kind: rpq, regex: a, mode: turbo}]", config.ErrBadQuery},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s config.Session
			require.NoError(t, yaml.Unmarshal([]byte(tc.body), &s))
			require.True(t, errors.Is(s.Validate(), tc.want))
		})
	}
}
