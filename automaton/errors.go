// SPDX-License-Identifier: MIT
// Package automaton: sentinel error set, prefixed "automaton: ...".
package automaton

import "errors"

var (
	// ErrUnknownState indicates an operation referenced a State never
	// added to the FA via AddState (or implicitly via AddTransition).
	ErrUnknownState = errors.New("automaton: unknown state")

	// ErrEpsilonInDecomposition indicates Decompose was called on an FA
	// that still contains epsilon transitions; these must be removed
	// first.
	ErrEpsilonInDecomposition = errors.New("automaton: epsilon transition present at decomposition time")

	// ErrEmptyDecomposition indicates TransitiveClosure was asked to
	// operate on a zero-state decomposition, whose closure is undefined;
	// callers must treat it as "no reachability".
	ErrEmptyDecomposition = errors.New("automaton: empty decomposition has no closure")

	// ErrMalformedRegex indicates the regex source could not be parsed.
	ErrMalformedRegex = errors.New("automaton: malformed regex")
)
