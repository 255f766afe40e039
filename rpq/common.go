// SPDX-License-Identifier: MIT
//
// File: common.go
// Role: shared helpers — recovering vertex-ID labels from a graph-side
// BooleanDecomposition, and membership filtering against a nilable
// vertex set (nil meaning "all vertices", per pgraph.ToAutomaton's
// convention).
package rpq

import "github.com/katalvlaran/pathql/automaton"

// graphVertexIndex maps each vertex ID to its index in dh, by reading
// back the atomic label pgraph.Graph.ToAutomaton minted for it.
func graphVertexIndex(dh *automaton.BooleanDecomposition) map[string]int {
	idx := make(map[string]int, dh.N)
	for i, s := range dh.States {
		if label, ok := s.Atom(); ok {
			idx[label] = i
		}
	}
	return idx
}

// vertexSet builds a membership set from a nilable vertex list. A nil
// list means "every vertex is a member" (contains reports true for
// anything); this mirrors ToAutomaton's "nil starts/finals means all
// vertices" convention for the V (final) filter.
type vertexSet struct {
	all     bool
	members map[string]struct{}
}

func newVertexSet(vs []string) vertexSet {
	if vs == nil {
		return vertexSet{all: true}
	}
	m := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		m[v] = struct{}{}
	}
	return vertexSet{members: m}
}

func (s vertexSet) contains(v string) bool {
	if s.all {
		return true
	}
	_, ok := s.members[v]
	return ok
}
