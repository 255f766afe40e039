// Package pathql evaluates path-constraint queries — regular (RPQ) and
// context-free (CFPQ) — against labeled directed graphs.
//
// Subpackages, in dependency order:
//
//	symbol/   — interned Symbol identifiers
//	boolmat/  — sparse boolean matrices: OR, product, Kronecker, block-diagonal, RowNormalize
//	automaton/ — FA type, Decompose, TransitiveClosure, Intersect, regex -> minimized DFA
//	pgraph/   — labeled directed multigraph + ToAutomaton adapter
//	rpq/      — all-pairs (tensor) and multi-source (matrix-BFS) RPQ evaluators
//	grammar/  — CFG, WCNF transform, ECFG
//	cfpq/     — Hellings and matrix CFPQ evaluators
//	rsm/      — RecursiveStateMachine, ECFG -> RSM construction
//	loader/   — DOT-like graph loader, grammar-text loader
//	lang/     — query language: lexer, parser, interpreter
//	config/   — YAML batch-session configuration
//	builder/  — deterministic labeled test fixtures
//	cmd/pathql/ — CLI entry point
//
// This package itself declares no exported API; it exists to document
// the module's shape. See each subpackage's doc.go for its contract.
package pathql
