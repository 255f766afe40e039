// SPDX-License-Identifier: MIT
//
// File: wcnf.go
// Role: Weak Chomsky Normal Form transform: unit-
// production elimination, useless-symbol removal, terminal isolation,
// binarization, in that order ("order matters").
package grammar

import (
	"fmt"

	"github.com/katalvlaran/pathql/symbol"
)

// ProdKind discriminates the three body shapes WCNF permits.
type ProdKind int

const (
	// ProdEpsilon is A -> ε.
	ProdEpsilon ProdKind = iota
	// ProdTerminal is A -> a.
	ProdTerminal
	// ProdBinary is A -> B C.
	ProdBinary
)

// WCNFProduction is one production of a WeakCNF grammar.
type WCNFProduction struct {
	Head     Variable
	Kind     ProdKind
	Terminal symbol.Symbol
	B, C     Variable
}

// WCNF is a grammar whose every production matches WCNFProduction's
// three shapes.
type WCNF struct {
	Start       Variable
	Productions []WCNFProduction
}

// ByHead indexes Productions by Head ("all productions with this
// head"). The cfpq evaluators do not use it; they build their own
// index of binary productions by body symbol.
func (w *WCNF) ByHead() map[Variable][]WCNFProduction {
	out := make(map[Variable][]WCNFProduction)
	for _, p := range w.Productions {
		out[p.Head] = append(out[p.Head], p)
	}
	return out
}

// ToWCNF converts cfg into Weak Chomsky Normal Form.
// Steps, in the mandated order: eliminate unit productions; remove
// useless symbols; isolate terminals; binarize bodies of length >= 3.
// Epsilon productions are preserved throughout (the "weak" relaxation
// relative to true CNF).
func ToWCNF(cfg *CFG) (*WCNF, error) {
	if cfg.Start == "" {
		return nil, ErrNoStart
	}

	prods := eliminateUnits(cfg.Productions)
	prods = removeUseless(cfg.Start, prods)

	freshCounter := 0
	fresh := func(prefix string) Variable {
		freshCounter++
		return Variable(fmt.Sprintf("#%s%d", prefix, freshCounter))
	}

	prods = isolateTerminals(prods, fresh)
	prods = binarize(prods, fresh)

	out := &WCNF{Start: cfg.Start}
	for _, p := range prods {
		switch len(p.Body) {
		case 0:
			out.Productions = append(out.Productions, WCNFProduction{Head: p.Head, Kind: ProdEpsilon})
		case 1:
			if p.Body[0].IsVar {
				// A unit production surviving past eliminateUnits would be
				// a bug in that pass; guard defensively rather than
				// silently emitting an invalid WCNF shape.
				return nil, fmt.Errorf("%w: unresolved unit production %s -> %s", ErrMalformedProduction, p.Head, p.Body[0].Var)
			}
			out.Productions = append(out.Productions, WCNFProduction{Head: p.Head, Kind: ProdTerminal, Terminal: p.Body[0].Term})
		case 2:
			if !p.Body[0].IsVar || !p.Body[1].IsVar {
				return nil, fmt.Errorf("%w: binary body not isolated for %s", ErrMalformedProduction, p.Head)
			}
			out.Productions = append(out.Productions, WCNFProduction{Head: p.Head, Kind: ProdBinary, B: p.Body[0].Var, C: p.Body[1].Var})
		default:
			return nil, fmt.Errorf("%w: body of length %d survived binarization for %s", ErrMalformedProduction, len(p.Body), p.Head)
		}
	}
	return out, nil
}

// eliminateUnits replaces every unit production A -> B (B a single
// variable) by copying B's own productions onto A, following the
// transitive unit-pair closure, then drops the unit productions
// themselves.
func eliminateUnits(prods []Production) []Production {
	byHead := make(map[Variable][]Production)
	for _, p := range prods {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	// unitClosure[A] = set of variables reachable from A via zero or
	// more unit productions (including A itself).
	unitClosure := make(map[Variable]map[Variable]struct{})
	var closureOf func(v Variable) map[Variable]struct{}
	closureOf = func(v Variable) map[Variable]struct{} {
		if c, ok := unitClosure[v]; ok {
			return c
		}
		c := map[Variable]struct{}{v: {}}
		unitClosure[v] = c // break cycles before recursing
		for _, p := range byHead[v] {
			if len(p.Body) == 1 && p.Body[0].IsVar {
				for w := range closureOf(p.Body[0].Var) {
					c[w] = struct{}{}
				}
			}
		}
		return c
	}

	var out []Production
	seen := make(map[string]struct{})
	for head := range byHead {
		for target := range closureOf(head) {
			for _, p := range byHead[target] {
				if len(p.Body) == 1 && p.Body[0].IsVar {
					continue // a unit production itself contributes nothing new
				}
				key := productionKey(head, p.Body)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, Production{Head: head, Body: p.Body})
			}
		}
	}
	return out
}

func productionKey(head Variable, body []BodySymbol) string {
	s := string(head) + "->"
	for _, b := range body {
		if b.IsVar {
			s += "V:" + string(b.Var) + ","
		} else {
			s += fmt.Sprintf("T:%d,", b.Term)
		}
	}
	return s
}

// removeUseless drops productions mentioning a variable that is either
// unreachable from start or non-generating (derives no string at all;
// an epsilon production makes its head generating).
func removeUseless(start Variable, prods []Production) []Production {
	byHead := make(map[Variable][]Production)
	for _, p := range prods {
		byHead[p.Head] = append(byHead[p.Head], p)
	}

	generating := make(map[Variable]bool)
	for changed := true; changed; {
		changed = false
		for head, ps := range byHead {
			if generating[head] {
				continue
			}
			for _, p := range ps {
				ok := true
				for _, b := range p.Body {
					if b.IsVar && !generating[b.Var] {
						ok = false
						break
					}
				}
				if ok {
					generating[head] = true
					changed = true
					break
				}
			}
		}
	}

	reachable := map[Variable]struct{}{start: {}}
	queue := []Variable{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, p := range byHead[v] {
			for _, b := range p.Body {
				if b.IsVar {
					if _, ok := reachable[b.Var]; !ok {
						reachable[b.Var] = struct{}{}
						queue = append(queue, b.Var)
					}
				}
			}
		}
	}

	var out []Production
	for _, p := range prods {
		if !generating[p.Head] {
			continue
		}
		if _, ok := reachable[p.Head]; !ok {
			continue
		}
		keep := true
		for _, b := range p.Body {
			if b.IsVar && !generating[b.Var] {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, p)
		}
	}
	return out
}

// isolateTerminals replaces every terminal occurring alongside another
// symbol in a body of length >= 2 with a fresh variable whose sole
// production is Var -> terminal.
func isolateTerminals(prods []Production, fresh func(string) Variable) []Production {
	termVar := make(map[symbol.Symbol]Variable)
	var extra []Production

	varFor := func(t symbol.Symbol) Variable {
		if v, ok := termVar[t]; ok {
			return v
		}
		v := fresh("T")
		termVar[t] = v
		extra = append(extra, Production{Head: v, Body: []BodySymbol{TermSym(t)}})
		return v
	}

	out := make([]Production, 0, len(prods))
	for _, p := range prods {
		if len(p.Body) < 2 {
			out = append(out, p)
			continue
		}
		newBody := make([]BodySymbol, len(p.Body))
		for i, b := range p.Body {
			if b.IsVar {
				newBody[i] = b
			} else {
				newBody[i] = VarSym(varFor(b.Term))
			}
		}
		out = append(out, Production{Head: p.Head, Body: newBody})
	}
	return append(out, extra...)
}

// binarize splits every body of length >= 3 by repeatedly peeling off
// the rightmost pair into a fresh variable.
func binarize(prods []Production, fresh func(string) Variable) []Production {
	var out []Production
	for _, p := range prods {
		if len(p.Body) <= 2 {
			out = append(out, p)
			continue
		}
		body := p.Body
		head := p.Head
		for len(body) > 2 {
			last, secondLast := body[len(body)-1], body[len(body)-2]
			v := fresh("B")
			out = append(out, Production{Head: v, Body: []BodySymbol{secondLast, last}})
			body = append(body[:len(body)-2:len(body)-2], VarSym(v))
		}
		out = append(out, Production{Head: head, Body: body})
	}
	return out
}
