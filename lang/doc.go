// SPDX-License-Identifier: MIT
//
// Package lang implements the textual query language wrapped around
// the engine: variable
// declarations, print, the load/smb primitives, the automaton operation
// set (setStart ... getReachable), the &, |, ++, *, in combinators,
// list/set/range literals, indexing, and map/filter with \x -> expr
// lambdas.
//
// Structure: a hand-written lexer (token.go), a recursive-descent
// parser producing a small AST (ast.go, parser.go), and a tree-walking
// interpreter (interp.go) over a tagged Value union (value.go) with a
// frame-stack scope chain. The language layer carries no
// pretty-printing or rich diagnostics: errors are sentinel values
// wrapped with position/name context, and print renders values in one
// canonical plain form.
package lang
