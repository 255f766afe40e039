// SPDX-License-Identifier: MIT
//
// Package cfpq implements context-free path querying over a pgraph.Graph
// constrained by a grammar.WCNF: "does there exist a
// path from u to w whose edge-label word is derivable from variable A".
//
// Two evaluators are provided, required to agree on every input:
//
//   - Hellings (hellings.go): the worklist algorithm over (variable,
//     start, end) triples, each new triple propagating through the
//     grammar's binary productions exactly once.
//   - Matrix (matrix.go): one boolmat.Matrix per variable, related by the
//     fixed point T[Head] ⊇ T[B]·T[C] for every production Head -> B C,
//     iterated to convergence.
//
// Both consume the same inputs (a grammar.WCNF and a pgraph.Graph) and
// produce the same Result shape, so a caller — or a test — can run both
// and compare.
package cfpq
