// Package automaton implements finite automata (FA) over symbol.Symbol
// labels: construction, epsilon elimination, boolean decomposition,
// transitive closure, tensor-product intersection, and compilation of
// the RPQ regex syntax into a minimized DFA via Thompson
// construction, subset construction and partition-refinement
// minimization.
//
// The graph→NFA adapter lives in pgraph, which depends on this package
// rather than the reverse.
package automaton
