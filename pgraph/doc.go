// SPDX-License-Identifier: MIT
//
// Package pgraph defines the labeled directed multigraph that rpq/cfpq
// queries run against: a thin, thread-safe vertex/edge catalog with
// deterministic enumeration, plus one conversion entry point —
// ToAutomaton — that feeds the automaton package's FA machinery.
//
// Vertex identifiers are user-supplied strings; callers that want
// integer vertices format them themselves (the loader package keeps a
// DOT file's identifiers verbatim, so `0` becomes the vertex "0"). Every edge carries exactly
// one symbol.Symbol label; multi-edges and self-loops are always
// permitted, with no undirected or unweighted configuration modes.
package pgraph
