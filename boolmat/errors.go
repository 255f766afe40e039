// SPDX-License-Identifier: MIT
// Package boolmat: sentinel error set.
//
// NOTE ON NAMING & PREFIXING
// Every message is prefixed with "boolmat: ..." for consistency and to
// allow easy grepping across logs. Algorithms return these sentinels
// rather than panicking on user-triggered conditions; panics remain
// reserved for programmer errors (MustNew on an invalid shape).
package boolmat

import "errors"

var (
	// ErrBadShape is returned when a requested dimension is invalid (n <= 0).
	ErrBadShape = errors.New("boolmat: invalid shape")

	// ErrOutOfRange indicates a row or column index outside [0, n).
	ErrOutOfRange = errors.New("boolmat: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("boolmat: dimension mismatch")
)
