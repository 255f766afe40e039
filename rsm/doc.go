// SPDX-License-Identifier: MIT
//
// Package rsm builds a Recursive State Machine from a grammar.ECFG:
// one minimized DFA ("box") per variable, where a
// transition labeled with another variable's name is a call edge into
// that variable's own box rather than an ordinary graph-label
// transition.
//
// Because automaton.CompileRegex interns every regex token through the
// same symbol.Table a pgraph.Graph's edge labels use, a box's call
// edges are recognized after compilation (IsCallEdge), not during
// parsing: the regex syntax itself does not distinguish a terminal
// token from a variable-reference token.
package rsm
