// SPDX-License-Identifier: MIT
//
// File: rsm.go
// Role: RecursiveStateMachine type, FromECFG construction, call-edge
// recognition, and Union.
package rsm

import (
	"fmt"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/symbol"
)

// RecursiveStateMachine is a box per grammar.Variable plus a
// designated start variable.
type RecursiveStateMachine struct {
	Start grammar.Variable
	Boxes map[grammar.Variable]*automaton.FA
}

// FromECFG compiles every variable's regex body into a minimized DFA.
//
// Complexity: sum over variables of CompileRegex's cost (Thompson
// construction + epsilon removal + determinization + minimization).
func FromECFG(e *grammar.ECFG) (*RecursiveStateMachine, error) {
	boxes := make(map[grammar.Variable]*automaton.FA, len(e.Variables))
	for _, v := range e.Variables {
		src, ok := e.RegexSrc[v]
		if !ok {
			return nil, fmt.Errorf("rsm.FromECFG: variable %s: %w", v, ErrNoBox)
		}
		fa, err := automaton.CompileRegex(src)
		if err != nil {
			return nil, fmt.Errorf("rsm.FromECFG: variable %s: %w", v, err)
		}
		boxes[v] = fa
	}
	if _, ok := boxes[e.Start]; !ok {
		return nil, fmt.Errorf("rsm.FromECFG: start variable %s: %w", e.Start, ErrNoBox)
	}
	return &RecursiveStateMachine{Start: e.Start, Boxes: boxes}, nil
}

// IsCallEdge reports whether sym names one of r's own variables, i.e.
// a transition labeled sym inside some box is a call edge into
// r.Boxes[v] rather than an ordinary terminal transition.
func (r *RecursiveStateMachine) IsCallEdge(sym symbol.Symbol) (grammar.Variable, bool) {
	name, ok := symbol.Name(sym)
	if !ok {
		return "", false
	}
	v := grammar.Variable(name)
	if _, exists := r.Boxes[v]; exists {
		return v, true
	}
	return "", false
}

// Union merges a and b into a single RecursiveStateMachine whose start
// is a.Start, by taking the disjoint union of their variable->box
// mappings. Union here means
// "the combined call graph has access to both sets of boxes", not a
// product construction over states — two RSMs sharing a variable name
// are a caller error (ErrDuplicateVariable), since merging their boxes
// silently would conflate unrelated productions.
func Union(a, b *RecursiveStateMachine) (*RecursiveStateMachine, error) {
	out := &RecursiveStateMachine{Start: a.Start, Boxes: make(map[grammar.Variable]*automaton.FA, len(a.Boxes)+len(b.Boxes))}
	for v, fa := range a.Boxes {
		out.Boxes[v] = fa
	}
	for v, fa := range b.Boxes {
		if _, dup := out.Boxes[v]; dup {
			return nil, fmt.Errorf("rsm.Union: variable %s: %w", v, ErrDuplicateVariable)
		}
		out.Boxes[v] = fa
	}
	return out, nil
}
