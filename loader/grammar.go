// SPDX-License-Identifier: MIT
//
// File: grammar.go
// Role: the line-oriented grammar loaders: one production
// per line, "HEAD -> BODY", '|' separating alternatives, uppercase
// initial = variable, lowercase initial = terminal, "$"/"ε"/"epsilon"
// = the empty string. For ECFGs the body is kept verbatim as a regex
// source string (compiled later by rsm.FromECFG).
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/symbol"
)

// LoadCFGFile opens path and parses it with ParseCFG.
func LoadCFGFile(path string) (*grammar.CFG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader.LoadCFGFile: %w", err)
	}
	defer f.Close()
	g, err := ParseCFG(f)
	if err != nil {
		return nil, fmt.Errorf("loader.LoadCFGFile(%s): %w", path, err)
	}
	return g, nil
}

// ParseCFG reads a CFG from r. The head of the first production is the
// start variable.
func ParseCFG(r io.Reader) (*grammar.CFG, error) {
	var cfg *grammar.CFG
	if err := eachProduction(r, func(lineNo int, head, body string) error {
		if cfg == nil {
			cfg = grammar.NewCFG(grammar.Variable(head))
		}
		for _, alt := range splitAlternatives(body) {
			syms, err := parseBodyTokens(alt)
			if err != nil {
				return fmt.Errorf("line %d (%q): %w", lineNo, alt, err)
			}
			cfg.AddProduction(grammar.Variable(head), syms...)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrEmptyInput
	}
	return cfg, nil
}

// LoadECFGFile opens path and parses it with ParseECFG.
func LoadECFGFile(path string) (*grammar.ECFG, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader.LoadECFGFile: %w", err)
	}
	defer f.Close()
	g, err := ParseECFG(f)
	if err != nil {
		return nil, fmt.Errorf("loader.LoadECFGFile(%s): %w", path, err)
	}
	return g, nil
}

// ParseECFG reads an extended CFG from r: exactly one production per
// variable, whose body is a full regex over variables and terminals.
// Alternation stays inside the regex body, so '|' is not split here.
func ParseECFG(r io.Reader) (*grammar.ECFG, error) {
	var e *grammar.ECFG
	if err := eachProduction(r, func(lineNo int, head, body string) error {
		if e == nil {
			e = grammar.NewECFG(grammar.Variable(head))
		}
		if body == "" {
			return fmt.Errorf("line %d: empty regex body: %w", lineNo, ErrMalformedGrammar)
		}
		e.AddProduction(grammar.Variable(head), body)
		return nil
	}); err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEmptyInput
	}
	return e, nil
}

// eachProduction scans r line by line, skipping blanks and #-comments,
// splitting each remaining line at "->" and validating the head token.
func eachProduction(r io.Reader, visit func(lineNo int, head, body string) error) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		arrow := strings.Index(line, "->")
		if arrow < 0 {
			return fmt.Errorf("line %d (%q): %w", lineNo, line, ErrMalformedGrammar)
		}
		head := strings.TrimSpace(line[:arrow])
		body := strings.TrimSpace(line[arrow+2:])
		if !isVariableToken(head) {
			return fmt.Errorf("line %d: head %q is not a variable: %w", lineNo, head, ErrMalformedGrammar)
		}
		if err := visit(lineNo, head, body); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	return nil
}

// splitAlternatives splits a CFG body on top-level '|'.
func splitAlternatives(body string) []string {
	parts := strings.Split(body, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// parseBodyTokens converts one whitespace-separated alternative into
// BodySymbols. An alternative that is exactly an epsilon token yields
// the empty body.
func parseBodyTokens(alt string) ([]grammar.BodySymbol, error) {
	toks := strings.Fields(alt)
	if len(toks) == 1 && isEpsilonToken(toks[0]) {
		return nil, nil
	}
	out := make([]grammar.BodySymbol, 0, len(toks))
	for _, tok := range toks {
		if isEpsilonToken(tok) {
			return nil, fmt.Errorf("epsilon mixed into a non-empty body: %w", ErrMalformedGrammar)
		}
		if isVariableToken(tok) {
			out = append(out, grammar.VarSym(grammar.Variable(tok)))
		} else {
			out = append(out, grammar.TermSym(symbol.Intern(tok)))
		}
	}
	if len(out) == 0 {
		return nil, ErrMalformedGrammar
	}
	return out, nil
}

// isVariableToken reports whether tok names a grammar variable
// (uppercase initial).
func isVariableToken(tok string) bool {
	if tok == "" {
		return false
	}
	return unicode.IsUpper([]rune(tok)[0])
}

// isEpsilonToken reports whether tok denotes the empty string.
func isEpsilonToken(tok string) bool {
	return tok == "$" || tok == "ε" || tok == "epsilon"
}
