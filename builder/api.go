// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor type, BuildGraph orchestrator, and the TwoCycles
// topology — the "two cycles sharing vertex 0" fixture the rpq/cfpq
// tests are built on. This is the classical two_cycles(n, m, labels)
// generator: a cycle of n+1 vertices (0..n) labeled l1, sharing vertex
// 0 with a second cycle of m+1 vertices (0, n+1..n+m) labeled l2.
package builder

import (
	"fmt"

	"github.com/katalvlaran/pathql/pgraph"
	"github.com/katalvlaran/pathql/symbol"
)

const minCycleNodes = 1

// Constructor applies a deterministic mutation to g using cfg.
type Constructor func(g *pgraph.Graph, cfg *builderConfig) error

// BuildGraph creates a fresh pgraph.Graph, resolves bopts into a
// builderConfig, and applies each Constructor in order. The first
// error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) + sum of constructor costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*pgraph.Graph, error) {
	g := pgraph.NewGraph()
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// TwoCycles returns a Constructor building the canonical two-cycle
// fixture: a cycle 0->1->...->n->0 labeled
// labelA, sharing vertex 0 with a second cycle 0->(n+1)->...->(n+m)->0
// labeled labelB. n and m must each be >= 1.
//
// Complexity: O(n+m).
func TwoCycles(n, m int, labelA, labelB string) Constructor {
	return func(g *pgraph.Graph, cfg *builderConfig) error {
		if n < minCycleNodes || m < minCycleNodes {
			return fmt.Errorf("TwoCycles: n=%d, m=%d: %w", n, m, ErrTooFewVertices)
		}
		a, b := symbol.Intern(labelA), symbol.Intern(labelB)

		// First cycle: 0 -> 1 -> ... -> n -> 0.
		prev := cfg.idFn(0)
		for i := 1; i <= n; i++ {
			cur := cfg.idFn(i)
			if _, err := g.AddEdge(prev, cur, a); err != nil {
				return fmt.Errorf("TwoCycles: AddEdge(%s->%s): %w", prev, cur, err)
			}
			prev = cur
		}
		if _, err := g.AddEdge(prev, cfg.idFn(0), a); err != nil {
			return fmt.Errorf("TwoCycles: AddEdge(%s->%s): %w", prev, cfg.idFn(0), err)
		}

		// Second cycle: 0 -> n+1 -> ... -> n+m -> 0.
		prev = cfg.idFn(0)
		for i := 1; i <= m; i++ {
			cur := cfg.idFn(n + i)
			if _, err := g.AddEdge(prev, cur, b); err != nil {
				return fmt.Errorf("TwoCycles: AddEdge(%s->%s): %w", prev, cur, err)
			}
			prev = cur
		}
		if _, err := g.AddEdge(prev, cfg.idFn(0), b); err != nil {
			return fmt.Errorf("TwoCycles: AddEdge(%s->%s): %w", prev, cfg.idFn(0), err)
		}
		return nil
	}
}

// LabeledCycle returns a Constructor building a single simple cycle of
// n vertices (0..n-1), edges i->(i+1 mod n) labeled label. Used where a
// scenario needs one ring rather than the two_cycles pair.
//
// Complexity: O(n).
func LabeledCycle(n int, label string) Constructor {
	return func(g *pgraph.Graph, cfg *builderConfig) error {
		if n < 3 {
			return fmt.Errorf("LabeledCycle: n=%d: %w", n, ErrTooFewVertices)
		}
		sym := symbol.Intern(label)
		for i := 0; i < n; i++ {
			from := cfg.idFn(i)
			to := cfg.idFn((i + 1) % n)
			if _, err := g.AddEdge(from, to, sym); err != nil {
				return fmt.Errorf("LabeledCycle: AddEdge(%s->%s): %w", from, to, err)
			}
		}
		return nil
	}
}
