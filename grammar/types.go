// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: CFG data model: variables, terminals, a start variable and
// productions. A production's body is a sequence of BodySymbol,
// each either a Variable or a terminal symbol.Symbol; an empty body
// denotes the epsilon production A -> ε.
package grammar

import "github.com/katalvlaran/pathql/symbol"

// Variable is a context-free grammar nonterminal, identified by its
// (conventionally uppercase) name.
type Variable string

// BodySymbol is one element of a production body: either a Variable
// (IsVar true) or a terminal symbol.Symbol (IsVar false).
type BodySymbol struct {
	IsVar bool
	Var   Variable
	Term  symbol.Symbol
}

// VarSym wraps v as a variable BodySymbol.
func VarSym(v Variable) BodySymbol { return BodySymbol{IsVar: true, Var: v} }

// TermSym wraps t as a terminal BodySymbol.
func TermSym(t symbol.Symbol) BodySymbol { return BodySymbol{IsVar: false, Term: t} }

// Production is one CFG rule Head -> Body. An empty Body is the
// epsilon production.
type Production struct {
	Head Variable
	Body []BodySymbol
}

// CFG is a context-free grammar.
type CFG struct {
	Variables   []Variable
	Terminals   []symbol.Symbol
	Start       Variable
	Productions []Production
}

// NewCFG returns an empty CFG with the given start variable.
func NewCFG(start Variable) *CFG {
	return &CFG{Start: start}
}

// AddVariable registers v if not already present.
func (g *CFG) AddVariable(v Variable) {
	for _, existing := range g.Variables {
		if existing == v {
			return
		}
	}
	g.Variables = append(g.Variables, v)
}

// AddTerminal registers t if not already present.
func (g *CFG) AddTerminal(t symbol.Symbol) {
	for _, existing := range g.Terminals {
		if existing == t {
			return
		}
	}
	g.Terminals = append(g.Terminals, t)
}

// AddProduction registers head -> body, auto-registering head and any
// referenced variables/terminals.
func (g *CFG) AddProduction(head Variable, body ...BodySymbol) {
	g.AddVariable(head)
	for _, b := range body {
		if b.IsVar {
			g.AddVariable(b.Var)
		} else {
			g.AddTerminal(b.Term)
		}
	}
	g.Productions = append(g.Productions, Production{Head: head, Body: body})
}
