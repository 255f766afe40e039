// SPDX-License-Identifier: MIT
package grammar

import "errors"

var (
	// ErrNoStart indicates a CFG/ECFG with no designated start variable.
	ErrNoStart = errors.New("grammar: no start variable")

	// ErrUnknownVariable indicates a production body or ECFG regex
	// references a variable never declared in Variables.
	ErrUnknownVariable = errors.New("grammar: unknown variable")

	// ErrMalformedProduction indicates a production that ToWCNF could not
	// bring into one of the three WCNF shapes (a surviving unit
	// production, a binary body not isolated, or a body longer than two).
	ErrMalformedProduction = errors.New("grammar: malformed production")
)
