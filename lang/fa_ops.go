// SPDX-License-Identifier: MIT
//
// File: fa_ops.go
// Role: the automaton-valued operations behind the language's
// combinators and automaton builtins: cloning, union, concatenation,
// Kleene star, start/final editing by label, and the reachability
// harvest. Epsilon transitions introduced by the Thompson-style
// constructions here are eliminated lazily, just before any operation
// that decomposes.
package lang

import (
	"errors"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/symbol"
)

// cloneFA copies src onto fresh State identities, preserving each
// state's label text. Fresh identities keep self-composition (g ++ g,
// g | g) from conflating the two operands' states.
func cloneFA(src *automaton.FA) (*automaton.FA, map[automaton.State]automaton.State) {
	out := automaton.New()
	fresh := make(map[automaton.State]automaton.State)
	for _, s := range src.States() {
		ns := automaton.NewState(s.String())
		fresh[s] = ns
		out.AddState(ns)
	}
	src.Transitions(func(a automaton.State, sym symbol.Symbol, b automaton.State) {
		out.AddTransition(fresh[a], sym, fresh[b])
	})
	for _, s := range src.StartStates() {
		out.AddStart(fresh[s])
	}
	for _, s := range src.FinalStates() {
		out.AddFinal(fresh[s])
	}
	return out, fresh
}

// faUnion accepts L(a) ∪ L(b): disjoint copies of both operands with
// merged start/final sets.
func faUnion(a, b *automaton.FA) *automaton.FA {
	out, _ := cloneFA(a)
	bc, _ := cloneFA(b)
	mergeInto(out, bc, true, true)
	return out
}

// faConcat accepts L(a)·L(b): a's copy keeps its starts, b's copy keeps
// its finals, and every final of a gets an epsilon edge to every start
// of b.
func faConcat(a, b *automaton.FA) *automaton.FA {
	ac, _ := cloneFA(a)
	bc, _ := cloneFA(b)
	out := automaton.New()
	mergeInto(out, ac, true, false)
	mergeInto(out, bc, false, true)
	for _, f := range ac.FinalStates() {
		for _, s := range bc.StartStates() {
			out.AddTransition(f, symbol.Epsilon, s)
		}
	}
	return out
}

// faStar accepts L(a)*: a fresh hub state that is both start and final,
// with epsilon edges into a's starts and back from a's finals.
func faStar(a *automaton.FA) *automaton.FA {
	ac, _ := cloneFA(a)
	out := automaton.New()
	hub := automaton.NewState("*")
	out.AddStart(hub)
	out.AddFinal(hub)
	mergeInto(out, ac, false, false)
	for _, s := range ac.StartStates() {
		out.AddTransition(hub, symbol.Epsilon, s)
	}
	for _, f := range ac.FinalStates() {
		out.AddTransition(f, symbol.Epsilon, hub)
	}
	return out
}

// mergeInto copies src's states and transitions into dst, optionally
// carrying over src's start/final markings.
func mergeInto(dst, src *automaton.FA, keepStarts, keepFinals bool) {
	for _, s := range src.States() {
		dst.AddState(s)
	}
	src.Transitions(func(a automaton.State, sym symbol.Symbol, b automaton.State) {
		dst.AddTransition(a, sym, b)
	})
	if keepStarts {
		for _, s := range src.StartStates() {
			dst.AddStart(s)
		}
	}
	if keepFinals {
		for _, s := range src.FinalStates() {
			dst.AddFinal(s)
		}
	}
}

// rebuildMarks returns a copy of src sharing its State identities,
// with start/final marks taken from the given label sets. A nil set
// keeps src's own marks; extendOnly adds to them instead of replacing.
func rebuildMarks(src *automaton.FA, starts, finals map[string]struct{}, extendOnly bool) *automaton.FA {
	out := automaton.New()
	for _, s := range src.States() {
		out.AddState(s)
	}
	src.Transitions(func(a automaton.State, sym symbol.Symbol, b automaton.State) {
		out.AddTransition(a, sym, b)
	})
	for _, s := range src.States() {
		label := s.String()
		switch {
		case starts == nil:
			if src.IsStart(s) {
				out.AddStart(s)
			}
		case extendOnly:
			if src.IsStart(s) {
				out.AddStart(s)
			}
			if _, ok := starts[label]; ok {
				out.AddStart(s)
			}
		default:
			if _, ok := starts[label]; ok {
				out.AddStart(s)
			}
		}
		switch {
		case finals == nil:
			if src.IsFinal(s) {
				out.AddFinal(s)
			}
		case extendOnly:
			if src.IsFinal(s) {
				out.AddFinal(s)
			}
			if _, ok := finals[label]; ok {
				out.AddFinal(s)
			}
		default:
			if _, ok := finals[label]; ok {
				out.AddFinal(s)
			}
		}
	}
	return out
}

// ensureNoEpsilon returns fa unchanged if it is already epsilon-free,
// otherwise the epsilon-eliminated equivalent.
func ensureNoEpsilon(fa *automaton.FA) *automaton.FA {
	if fa.HasEpsilon() {
		return automaton.RemoveEpsilon(fa)
	}
	return fa
}

// reachablePairs harvests (start-label, final-label) pairs connected by
// a nonempty path, via decomposition and transitive closure.
func reachablePairs(fa *automaton.FA) ([][2]string, error) {
	fa = ensureNoEpsilon(fa)
	d, err := automaton.Decompose(fa)
	if err != nil {
		return nil, err
	}
	closure, err := automaton.TransitiveClosure(d)
	if err != nil {
		if errors.Is(err, automaton.ErrEmptyDecomposition) {
			return nil, nil
		}
		return nil, err
	}
	var out [][2]string
	for _, s := range fa.StartStates() {
		si := d.Index[s]
		for _, f := range fa.FinalStates() {
			if closure.At(si, d.Index[f]) {
				out = append(out, [2]string{s.String(), f.String()})
			}
		}
	}
	return out, nil
}
