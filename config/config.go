// SPDX-License-Identifier: MIT
//
// Package config reads YAML batch-session files: a graph to load plus a
// list of queries to evaluate against it. It is part of the ambient
// layer around the core engine (the core itself performs no I/O);
// cmd/pathql is its only consumer.
//
// The file shape is a flat struct decoded with gopkg.in/yaml.v3,
// validated after decoding with sentinel errors.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for session validation.
var (
	// ErrNoGraph indicates a session without a graph path.
	ErrNoGraph = errors.New("config: session names no graph")

	// ErrNoQueries indicates a session with an empty query list.
	ErrNoQueries = errors.New("config: session names no queries")

	// ErrBadQuery indicates a query entry whose kind/mode combination
	// is unknown or whose required inputs (regex, grammar) are missing.
	ErrBadQuery = errors.New("config: invalid query entry")
)

// Query kinds and modes accepted in session files.
const (
	KindRPQ  = "rpq"
	KindCFPQ = "cfpq"

	ModeAllPairs  = "allpairs"
	ModeUnion     = "union"
	ModePerSource = "persource"

	AlgoHellings = "hellings"
	AlgoMatrix   = "matrix"
)

// Query is one evaluation request within a session.
type Query struct {
	// Kind is "rpq" or "cfpq".
	Kind string `yaml:"kind"`

	// Regex is the RPQ constraint (Kind "rpq" only).
	Regex string `yaml:"regex,omitempty"`
	// Mode selects the RPQ evaluator: "allpairs" (default), "union" or
	// "persource".
	Mode string `yaml:"mode,omitempty"`

	// Grammar is a path to a grammar file (Kind "cfpq" only).
	Grammar string `yaml:"grammar,omitempty"`
	// Algorithm selects the CFPQ evaluator: "hellings" (default) or
	// "matrix".
	Algorithm string `yaml:"algorithm,omitempty"`
	// Variable restricts CFPQ output to one variable's pairs; empty
	// means the grammar's start variable.
	Variable string `yaml:"variable,omitempty"`

	// Sources/Finals restrict the answer to U x V. Nil means "all
	// vertices", matching the engine's convention.
	Sources []string `yaml:"sources,omitempty"`
	Finals  []string `yaml:"finals,omitempty"`
}

// Session is one batch run: a graph plus the queries to evaluate on it.
type Session struct {
	Graph   string  `yaml:"graph"`
	Queries []Query `yaml:"queries"`
}

// Load reads and validates a session file.
func Load(path string) (*Session, error) {
	bin, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(bin, &s); err != nil {
		return nil, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load(%s): %w", path, err)
	}
	return &s, nil
}

// Validate checks the session's shape, filling in per-query defaults
// (Mode "allpairs", Algorithm "hellings") as it goes.
func (s *Session) Validate() error {
	if s.Graph == "" {
		return ErrNoGraph
	}
	if len(s.Queries) == 0 {
		return ErrNoQueries
	}
	for i := range s.Queries {
		q := &s.Queries[i]
		switch q.Kind {
		case KindRPQ:
			if q.Regex == "" {
				return fmt.Errorf("query %d: rpq without regex: %w", i, ErrBadQuery)
			}
			if q.Mode == "" {
				q.Mode = ModeAllPairs
			}
			switch q.Mode {
			case ModeAllPairs, ModeUnion, ModePerSource:
			default:
				return fmt.Errorf("query %d: unknown rpq mode %q: %w", i, q.Mode, ErrBadQuery)
			}
		case KindCFPQ:
			if q.Grammar == "" {
				return fmt.Errorf("query %d: cfpq without grammar: %w", i, ErrBadQuery)
			}
			if q.Algorithm == "" {
				q.Algorithm = AlgoHellings
			}
			switch q.Algorithm {
			case AlgoHellings, AlgoMatrix:
			default:
				return fmt.Errorf("query %d: unknown cfpq algorithm %q: %w", i, q.Algorithm, ErrBadQuery)
			}
		default:
			return fmt.Errorf("query %d: unknown kind %q: %w", i, q.Kind, ErrBadQuery)
		}
	}
	return nil
}
