// SPDX-License-Identifier: MIT
//
// Package grammar defines context-free grammars (CFG), the Weak
// Chomsky Normal Form transform, and extended CFGs (ECFG), following
// the sentinel-error and doc.go conventions set by boolmat/automaton.
//
// Variables and terminals share the module's two symbol spaces:
// Variable is a small string-keyed type local to this package (grammar
// nonterminals never need cross-grammar interning, unlike graph/regex
// labels), while terminals are symbol.Symbol values from the same
// interning table edges and regexes use, so a grammar's terminal "a"
// and a graph edge labeled "a" compare equal during CFPQ seeding.
package grammar
