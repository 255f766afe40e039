// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: the DOT-like graph loader. The accepted subset is
// deliberately small: an optional "digraph NAME {" header, "}" footer,
// vertex lines `ID;`, and edge lines `SRC -> DST [label=SYM];`, one
// statement per line; a header line may carry one statement and the
// closing "}" after its "{" (`digraph { a -> b [label=x]; }`).
// Identifiers may be bare words or double-quoted strings; the verbatim
// identifier (quotes stripped) is preserved as the vertex ID.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/pathql/pgraph"
	"github.com/katalvlaran/pathql/symbol"
)

// LoadGraphFile opens path and parses it with ParseGraph.
func LoadGraphFile(path string) (*pgraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader.LoadGraphFile: %w", err)
	}
	defer f.Close()
	g, err := ParseGraph(f)
	if err != nil {
		return nil, fmt.Errorf("loader.LoadGraphFile(%s): %w", path, err)
	}
	return g, nil
}

// ParseGraph reads a DOT-like graph description from r. Vertex
// identifiers are preserved verbatim, quotes stripped.
func ParseGraph(r io.Reader) (*pgraph.Graph, error) {
	g := pgraph.NewGraph()
	sc := bufio.NewScanner(r)
	lineNo := 0
	declarations := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		line = stripLineComment(line)
		if line == "" || line == "}" {
			continue
		}
		if strings.HasPrefix(line, "digraph") || strings.HasPrefix(line, "graph") {
			// Header line; the trailing "{" may share the line or not, and
			// a statement and the closing "}" may follow it on that line.
			brace := strings.IndexByte(line, '{')
			if brace < 0 {
				continue
			}
			line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line[brace+1:]), "}"))
			if line == "" {
				continue
			}
		}
		if line == "{" {
			continue
		}
		line = strings.TrimSuffix(line, ";")

		if src, dst, attrs, ok := splitEdge(line); ok {
			label, found := attrValue(attrs, "label")
			if !found {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingLabel)
			}
			if _, err := g.AddEdge(src, dst, symbol.Intern(label)); err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			declarations++
			continue
		}

		// Bare vertex declaration: a single identifier, optionally with
		// an (ignored) attribute list.
		id := line
		if i := strings.IndexByte(id, '['); i >= 0 {
			id = strings.TrimSpace(id[:i])
		}
		id = unquote(id)
		if id == "" || strings.ContainsAny(id, " \t") {
			return nil, fmt.Errorf("line %d (%q): %w", lineNo, line, ErrMalformedGraph)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		declarations++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader.ParseGraph: %w", err)
	}
	if declarations == 0 {
		return nil, ErrEmptyInput
	}
	return g, nil
}

// splitEdge recognizes `SRC -> DST [attrs]` and returns the unquoted
// endpoints plus the raw attribute text (may be empty).
func splitEdge(line string) (src, dst, attrs string, ok bool) {
	arrow := strings.Index(line, "->")
	if arrow < 0 {
		return "", "", "", false
	}
	src = unquote(strings.TrimSpace(line[:arrow]))
	rest := strings.TrimSpace(line[arrow+2:])
	if i := strings.IndexByte(rest, '['); i >= 0 {
		if !strings.HasSuffix(rest, "]") {
			return "", "", "", false
		}
		attrs = rest[i+1 : len(rest)-1]
		rest = strings.TrimSpace(rest[:i])
	}
	dst = unquote(rest)
	if src == "" || dst == "" {
		return "", "", "", false
	}
	return src, dst, attrs, true
}

// attrValue scans a DOT attribute list ("k=v, k2=v2", comma- or
// semicolon-separated) for key and returns its unquoted value.
// Space-separated pairs are not split apart.
func attrValue(attrs, key string) (string, bool) {
	for _, field := range strings.FieldsFunc(attrs, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		eq := strings.IndexByte(field, '=')
		if eq < 0 {
			continue
		}
		k := strings.TrimSpace(field[:eq])
		if k != key {
			continue
		}
		return unquote(strings.TrimSpace(field[eq+1:])), true
	}
	return "", false
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// stripLineComment removes a trailing //-comment (outside quotes DOT
// comments also come in /* */ form; only the line form is accepted
// here).
func stripLineComment(line string) string {
	inQuote := false
	for i := 0; i+1 < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '/':
			if !inQuote && line[i+1] == '/' {
				return strings.TrimSpace(line[:i])
			}
		}
	}
	return line
}
