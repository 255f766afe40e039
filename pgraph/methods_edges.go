// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: edge lifecycle and enumeration: monotonic "e<N>" IDs, sorted
// Edges().
package pgraph

import (
	"sort"
	"strconv"
	"sync/atomic"

	"github.com/katalvlaran/pathql/symbol"
)

const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge from->to labeled sym, auto-
// vivifying both endpoints. Parallel edges and self-loops are always
// permitted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, sym symbol.Symbol) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Label: sym}
	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacency[from][to][eid] = struct{}{}
	return eid, nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)
	cleanupAdjacency(g)
	return nil
}

// HasEdge reports whether at least one from->to edge exists.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// Edges returns every edge sorted by Edge.ID ascending.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// Labels returns the distinct set of symbols actually used by some
// edge (backs the query-language surface's getLabels primitive).
func (g *Graph) Labels() []symbol.Symbol {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	seen := make(map[symbol.Symbol]struct{})
	for _, e := range g.edges {
		seen[e.Label] = struct{}{}
	}
	out := make([]symbol.Symbol, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)
	return string(buf)
}
