// SPDX-License-Identifier: MIT
//
// File: regex.go
// Role: regex lexing, parsing and Thompson construction for the RPQ
// regex syntax: concatenation by juxtaposition,
// '|' union, '*' Kleene star, '+' one-or-more, parentheses for
// grouping, '$' for epsilon, single-token symbols separated by
// whitespace.
package automaton

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pathql/symbol"
)

// --- lexer -----------------------------------------------------------

type reTokKind int

const (
	reTokSymbol reTokKind = iota
	reTokEpsilon
	reTokUnion
	reTokStar
	reTokPlus
	reTokLParen
	reTokRParen
	reTokEOF
)

type reToken struct {
	kind reTokKind
	text string
}

// lexRegex splits src into tokens. '|','*','+','(',')','$' are always
// single-character operator tokens; any other maximal run of
// non-whitespace, non-operator characters is a single symbol token.
func lexRegex(src string) ([]reToken, error) {
	var toks []reToken
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		c := runes[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '|':
			toks = append(toks, reToken{reTokUnion, "|"})
			i++
		case c == '*':
			toks = append(toks, reToken{reTokStar, "*"})
			i++
		case c == '+':
			toks = append(toks, reToken{reTokPlus, "+"})
			i++
		case c == '(':
			toks = append(toks, reToken{reTokLParen, "("})
			i++
		case c == ')':
			toks = append(toks, reToken{reTokRParen, ")"})
			i++
		case c == '$':
			toks = append(toks, reToken{reTokEpsilon, "$"})
			i++
		default:
			j := i
			var sb strings.Builder
			for j < len(runes) {
				cj := runes[j]
				if cj == ' ' || cj == '\t' || cj == '\n' || cj == '\r' ||
					cj == '|' || cj == '*' || cj == '+' || cj == '(' || cj == ')' || cj == '$' {
					break
				}
				sb.WriteRune(cj)
				j++
			}
			if sb.Len() == 0 {
				return nil, fmt.Errorf("%w: unexpected character %q", ErrMalformedRegex, c)
			}
			toks = append(toks, reToken{reTokSymbol, sb.String()})
			i = j
		}
	}
	toks = append(toks, reToken{reTokEOF, ""})
	return toks, nil
}

// --- AST ---------------------------------------------------------------

type reNode interface{ isReNode() }

type reEpsilonNode struct{}
type reSymbolNode struct{ sym symbol.Symbol }
type reConcatNode struct{ left, right reNode }
type reUnionNode struct{ left, right reNode }
type reStarNode struct{ inner reNode }
type rePlusNode struct{ inner reNode }

func (reEpsilonNode) isReNode() {}
func (reSymbolNode) isReNode()  {}
func (reConcatNode) isReNode()  {}
func (reUnionNode) isReNode()   {}
func (reStarNode) isReNode()    {}
func (rePlusNode) isReNode()    {}

// --- recursive-descent parser -------------------------------------------
//
// Grammar (lowest to highest precedence):
//   union  := concat ('|' concat)*
//   concat := postfix+
//   postfix:= primary ('*' | '+')*
//   primary:= SYMBOL | '$' | '(' union ')'

type reParser struct {
	toks []reToken
	pos  int
}

func (p *reParser) peek() reToken { return p.toks[p.pos] }
func (p *reParser) advance() reToken {
	t := p.toks[p.pos]
	if t.kind != reTokEOF {
		p.pos++
	}
	return t
}

func (p *reParser) parseUnion() (reNode, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == reTokUnion {
		p.advance()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = reUnionNode{left, right}
	}
	return left, nil
}

func (p *reParser) parseConcat() (reNode, error) {
	var left reNode
	for isConcatOperandStart(p.peek().kind) {
		next, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		if left == nil {
			left = next
		} else {
			left = reConcatNode{left, next}
		}
	}
	if left == nil {
		return nil, fmt.Errorf("%w: expected an operand", ErrMalformedRegex)
	}
	return left, nil
}

func isConcatOperandStart(k reTokKind) bool {
	return k == reTokSymbol || k == reTokEpsilon || k == reTokLParen
}

func (p *reParser) parsePostfix() (reNode, error) {
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().kind {
		case reTokStar:
			p.advance()
			n = reStarNode{n}
		case reTokPlus:
			p.advance()
			n = rePlusNode{n}
		default:
			return n, nil
		}
	}
}

func (p *reParser) parsePrimary() (reNode, error) {
	t := p.advance()
	switch t.kind {
	case reTokSymbol:
		return reSymbolNode{sym: symbol.Intern(t.text)}, nil
	case reTokEpsilon:
		return reEpsilonNode{}, nil
	case reTokLParen:
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != reTokRParen {
			return nil, fmt.Errorf("%w: missing closing parenthesis", ErrMalformedRegex)
		}
		p.advance()
		return inner, nil
	default:
		return nil, fmt.Errorf("%w: unexpected token %q", ErrMalformedRegex, t.text)
	}
}

// parseRegex parses src per the grammar above and returns its AST root.
func parseRegex(src string) (reNode, error) {
	toks, err := lexRegex(src)
	if err != nil {
		return nil, err
	}
	p := &reParser{toks: toks}
	n, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != reTokEOF {
		return nil, fmt.Errorf("%w: trailing input %q", ErrMalformedRegex, p.peek().text)
	}
	return n, nil
}

// --- Thompson construction -----------------------------------------------

// thompsonBuild returns an epsilon-carrying NFA for n, with exactly one
// start and one final state (the classical Thompson-construction
// invariant), using fresh States minted from a private counter so
// fragments never alias each other's states.
func thompsonBuild(n reNode) *FA {
	fa := New()
	counter := 0
	fresh := func() State {
		counter++
		return NewState(fmt.Sprintf("t%d", counter))
	}
	start, final := thompsonNode(fa, n, fresh)
	fa.AddStart(start)
	fa.AddFinal(final)
	return fa
}

func thompsonNode(fa *FA, n reNode, fresh func() State) (State, State) {
	switch t := n.(type) {
	case reEpsilonNode:
		s, f := fresh(), fresh()
		fa.AddTransition(s, symbol.Epsilon, f)
		return s, f
	case reSymbolNode:
		s, f := fresh(), fresh()
		fa.AddTransition(s, t.sym, f)
		return s, f
	case reConcatNode:
		ls, lf := thompsonNode(fa, t.left, fresh)
		rs, rf := thompsonNode(fa, t.right, fresh)
		fa.AddTransition(lf, symbol.Epsilon, rs)
		return ls, rf
	case reUnionNode:
		s, f := fresh(), fresh()
		ls, lf := thompsonNode(fa, t.left, fresh)
		rs, rf := thompsonNode(fa, t.right, fresh)
		fa.AddTransition(s, symbol.Epsilon, ls)
		fa.AddTransition(s, symbol.Epsilon, rs)
		fa.AddTransition(lf, symbol.Epsilon, f)
		fa.AddTransition(rf, symbol.Epsilon, f)
		return s, f
	case reStarNode:
		s, f := fresh(), fresh()
		is, iff := thompsonNode(fa, t.inner, fresh)
		fa.AddTransition(s, symbol.Epsilon, is)
		fa.AddTransition(s, symbol.Epsilon, f)
		fa.AddTransition(iff, symbol.Epsilon, is)
		fa.AddTransition(iff, symbol.Epsilon, f)
		return s, f
	case rePlusNode:
		// a+ == a concat a*
		return thompsonNode(fa, reConcatNode{t.inner, reStarNode{t.inner}}, fresh)
	default:
		panic(fmt.Sprintf("automaton: unhandled regex AST node %T", n))
	}
}

// CompileRegex parses src, builds its Thompson NFA, removes epsilon
// transitions, determinizes via subset construction and minimizes the
// result.
func CompileRegex(src string) (*FA, error) {
	ast, err := parseRegex(src)
	if err != nil {
		return nil, err
	}
	nfa := thompsonBuild(ast)
	epsFree := RemoveEpsilon(nfa)
	dfa := Determinize(epsFree)
	return Minimize(dfa), nil
}
