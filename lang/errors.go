// SPDX-License-Identifier: MIT
// Package lang: the interpreter's sentinel error taxonomy, prefixed
// "lang: ...".
package lang

import "errors"

var (
	// ErrSyntax indicates the source could not be tokenized or parsed.
	ErrSyntax = errors.New("lang: syntax error")

	// ErrTypeMismatch indicates an operation applied to a value kind it
	// is not defined on.
	ErrTypeMismatch = errors.New("lang: type mismatch")

	// ErrUnsupported indicates an operation the language explicitly
	// refuses, e.g. intersection with an RSM operand.
	ErrUnsupported = errors.New("lang: unsupported operation")

	// ErrUnknownName indicates an identifier absent from the scope
	// chain.
	ErrUnknownName = errors.New("lang: unknown name")

	// ErrRedeclared indicates a second declaration of a name already
	// bound in the same scope.
	ErrRedeclared = errors.New("lang: name already declared in this scope")

	// ErrRecursionNonRSM indicates a name was referenced inside its own
	// pending definition and the definition did not produce an RSM; a
	// self-reference is only tolerated when the pending value has RSM
	// type.
	ErrRecursionNonRSM = errors.New("lang: recursive reference through non-RSM value")
)
