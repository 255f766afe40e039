// Package symbol provides interned edge/production labels shared across
// automata, graphs and grammars.
//
// A Symbol is compared by identity, not by string content: two Symbols
// obtained from the same printable label via Intern are always equal,
// and the comparison is an O(1) integer compare rather than a string
// compare. The identifier is opaque on purpose so that boolean-matrix
// code never has to hash a string on the hot path.
//
// Table is the only stateful type in the package; the package-level
// Intern/Name/Epsilon helpers operate against a default Table so most
// callers never construct one explicitly.
package symbol
