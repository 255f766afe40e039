// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: adjacency bookkeeping helpers shared by vertex/edge mutators.
package pgraph

// ensureAdjacency makes sure adjacency[from] and adjacency[from][to]
// exist, without inserting any edge ID.
func ensureAdjacency(g *Graph, from, to string) {
	bucket, ok := g.adjacency[from]
	if !ok {
		bucket = make(map[string]map[string]struct{})
		g.adjacency[from] = bucket
	}
	if _, ok := bucket[to]; !ok {
		bucket[to] = make(map[string]struct{})
	}
}

// removeAdjacency deletes e's entry from the adjacency index.
func removeAdjacency(g *Graph, e *Edge) {
	if bucket, ok := g.adjacency[e.From]; ok {
		if inner, ok := bucket[e.To]; ok {
			delete(inner, e.ID)
		}
	}
}

// cleanupAdjacency prunes empty nested maps left behind by removals.
func cleanupAdjacency(g *Graph) {
	for from, bucket := range g.adjacency {
		for to, inner := range bucket {
			if len(inner) == 0 {
				delete(bucket, to)
			}
		}
		if len(bucket) == 0 {
			delete(g.adjacency, from)
		}
	}
}

// Neighbors returns the distinct successor vertex IDs of id (outgoing
// edges only), in no particular order.
//
// Complexity: O(out-degree(id)).
func (g *Graph) Neighbors(id string) []string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	bucket, ok := g.adjacency[id]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(bucket))
	for to, inner := range bucket {
		if len(inner) == 0 {
			continue // empty bucket left by AddVertex, not an edge
		}
		out = append(out, to)
	}
	return out
}
