// SPDX-License-Identifier: MIT
//
// Package loader reads the two textual external-interface formats:
// a Graphviz-like DOT graph format where every edge
// carries a label attribute, and a line-oriented grammar format with
// one production per line ("HEAD -> BODY", '|' separating alternatives,
// uppercase-initial tokens naming variables).
//
// The loaders are thin constructors over pgraph/grammar: they either
// return a fully-built value or an error wrapping one of the loader
// sentinels (ErrMalformed*, ErrMissingLabel, ErrEmptyInput) or an I/O
// error; line-level errors carry the offending line. No evaluation
// happens here.
package loader
