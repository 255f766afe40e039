// SPDX-License-Identifier: MIT
//
// Package rpq is the query-evaluation core: given a
// regex and a pgraph.Graph, it returns the vertex pairs connected by a
// path whose label word belongs to the regex's language.
//
// Two evaluators are provided:
//
//   - AllPairs (allpairs.go): tensor-product intersection of the query
//     DFA with the graph NFA, then transitive closure — O((q*g)^2)
//     product-state space, simple and exact.
//   - MultiSourceUnion / MultiSourcePerSource (multisource.go):
//     block-diagonal composition plus row-normalized matrix-BFS,
//     answering "from every source in U at once, which vertices in V
//     are reachable" without per-source repetition of AllPairs' cost.
//
// Both read State labels back via automaton.State.Atom(): pgraph.Graph.
// ToAutomaton mints one atomic State per vertex ID, so a composite or
// decomposed State's Atom() (directly, or via Parts() for a tensor-
// product pair) recovers the original vertex ID without a side table.
package rpq
