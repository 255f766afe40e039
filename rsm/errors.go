// SPDX-License-Identifier: MIT
package rsm

import "errors"

var (
	// ErrNoBox indicates an ECFG variable with no compiled box — either
	// a missing RegexSrc entry or a variable referenced by Start that
	// was never declared.
	ErrNoBox = errors.New("rsm: no box for variable")

	// ErrDuplicateVariable indicates Union was asked to merge two
	// RecursiveStateMachines that both define a box for the same
	// variable; merging them silently would conflate unrelated
	// productions (see DESIGN.md).
	ErrDuplicateVariable = errors.New("rsm: duplicate variable across union")
)
