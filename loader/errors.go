// SPDX-License-Identifier: MIT
// Package loader: sentinel error set, prefixed "loader: ...".
package loader

import "errors"

var (
	// ErrMalformedGraph indicates a line that is neither a vertex
	// declaration, a labeled edge, nor DOT scaffolding.
	ErrMalformedGraph = errors.New("loader: malformed graph line")

	// ErrMissingLabel indicates an edge whose attribute list carries no
	// label attribute; every edge must carry exactly one.
	ErrMissingLabel = errors.New("loader: edge without label attribute")

	// ErrMalformedGrammar indicates a production line without the
	// "HEAD -> BODY" shape, or a head token that is not a variable.
	ErrMalformedGrammar = errors.New("loader: malformed grammar line")

	// ErrEmptyInput indicates a graph or grammar source containing no
	// declarations at all.
	ErrEmptyInput = errors.New("loader: empty input")
)
