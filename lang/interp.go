// SPDX-License-Identifier: MIT
//
// File: interp.go
// Role: tree-walking evaluator over the tagged Value union, with a
// frame-stack scope chain pushed/popped around lambda application.
// Every operator is a total function on the union with explicit error
// cases.
package lang

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/loader"
	"github.com/katalvlaran/pathql/rsm"
	"github.com/katalvlaran/pathql/symbol"
)

// env is one scope frame.
type env struct {
	parent *env
	vars   map[string]Value
}

func newEnv(parent *env) *env {
	return &env{parent: parent, vars: make(map[string]Value)}
}

// define binds name in this frame; rebinding in the same frame is the
// RedeclarationAttempt error.
func (e *env) define(name string, v Value) error {
	if _, exists := e.vars[name]; exists {
		return fmt.Errorf("%s: %w", name, ErrRedeclared)
	}
	e.vars[name] = v
	return nil
}

func (e *env) lookup(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// pendingDef tracks the name currently being defined, so that a
// self-reference inside its own right-hand side can be tolerated when
// — and only when — the definition produces an RSM.
type pendingDef struct {
	name        string
	placeholder *rsm.RecursiveStateMachine
	referenced  bool
}

// Interp evaluates query-language programs. Output of print statements
// goes to out; the global scope persists across Run calls, so a REPL-ish
// driver can feed statements incrementally.
type Interp struct {
	out     io.Writer
	global  *env
	pending *pendingDef
}

// New returns an interpreter writing print output to out.
func New(out io.Writer) *Interp {
	return &Interp{out: out, global: newEnv(nil)}
}

// Run parses and executes src against the interpreter's global scope.
// The first failing statement aborts the run.
func (in *Interp) Run(src string) error {
	stmts, err := parse(src)
	if err != nil {
		return err
	}
	for _, s := range stmts {
		if err := in.exec(s); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interp) exec(s node) error {
	switch st := s.(type) {
	case assignStmt:
		return in.execAssign(st)
	case printStmt:
		v, err := in.eval(st.expr, in.global)
		if err != nil {
			return fmt.Errorf("line %d: %w", st.line, err)
		}
		fmt.Fprintln(in.out, v.render())
		return nil
	}
	return fmt.Errorf("unknown statement: %w", ErrSyntax)
}

func (in *Interp) execAssign(st assignStmt) error {
	pd := &pendingDef{
		name:        st.name,
		placeholder: &rsm.RecursiveStateMachine{Boxes: make(map[grammar.Variable]*automaton.FA)},
	}
	in.pending = pd
	v, err := in.eval(st.rhs, in.global)
	in.pending = nil
	if err != nil {
		return fmt.Errorf("line %d: %s: %w", st.line, st.name, err)
	}
	if pd.referenced && v.Kind != KindRSM {
		return fmt.Errorf("line %d: %s: %w", st.line, st.name, ErrRecursionNonRSM)
	}
	if err := in.global.define(st.name, v); err != nil {
		return fmt.Errorf("line %d: %w", st.line, err)
	}
	return nil
}

func (in *Interp) eval(n node, e *env) (Value, error) {
	switch x := n.(type) {
	case intLit:
		return intValue(x.v), nil
	case boolLit:
		return boolValue(x.v), nil
	case stringLit:
		return stringValue(x.v), nil
	case identExpr:
		if v, ok := e.lookup(x.name); ok {
			return v, nil
		}
		if in.pending != nil && in.pending.name == x.name {
			in.pending.referenced = true
			return rsmValue(in.pending.placeholder), nil
		}
		return Value{}, fmt.Errorf("%s: %w", x.name, ErrUnknownName)
	case listLit:
		elems := make([]Value, 0, len(x.elems))
		for _, en := range x.elems {
			v, err := in.eval(en, e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, v)
		}
		return listValue(elems), nil
	case setLit:
		s := newSet()
		for _, en := range x.elems {
			v, err := in.eval(en, e)
			if err != nil {
				return Value{}, err
			}
			if err := setAdd(s, v); err != nil {
				return Value{}, err
			}
		}
		return s, nil
	case rangeLit:
		return in.evalRange(x, e)
	case lambdaExpr:
		return Value{Kind: KindLambda, lambda: &lambdaValue{param: x.param, body: x.body, env: e}}, nil
	case binExpr:
		return in.evalBin(x, e)
	case starExpr:
		v, err := in.eval(x.inner, e)
		if err != nil {
			return Value{}, err
		}
		if v.Kind != KindFA {
			return Value{}, fmt.Errorf("'*' on %s: %w", v.Kind, ErrTypeMismatch)
		}
		return faValue(faStar(v.FA)), nil
	case indexExpr:
		return in.evalIndex(x, e)
	case callExpr:
		return in.evalCall(x, e)
	}
	return Value{}, ErrSyntax
}

func (in *Interp) evalRange(x rangeLit, e *env) (Value, error) {
	lo, err := in.eval(x.lo, e)
	if err != nil {
		return Value{}, err
	}
	hi, err := in.eval(x.hi, e)
	if err != nil {
		return Value{}, err
	}
	if lo.Kind != KindInt || hi.Kind != KindInt {
		return Value{}, fmt.Errorf("range bounds must be int: %w", ErrTypeMismatch)
	}
	s := newSet()
	for i := lo.Int; i <= hi.Int; i++ {
		if err := setAdd(s, intValue(i)); err != nil {
			return Value{}, err
		}
	}
	return s, nil
}

func (in *Interp) evalBin(x binExpr, e *env) (Value, error) {
	left, err := in.eval(x.left, e)
	if err != nil {
		return Value{}, err
	}
	right, err := in.eval(x.right, e)
	if err != nil {
		return Value{}, err
	}
	switch x.op {
	case opIn:
		return evalIn(left, right)
	case opUnion:
		return evalUnionOp(left, right)
	case opIntersect:
		return evalIntersectOp(left, right)
	case opConcat:
		return evalConcatOp(left, right)
	}
	return Value{}, ErrSyntax
}

func evalIn(left, right Value) (Value, error) {
	switch right.Kind {
	case KindSet:
		k, err := left.key()
		if err != nil {
			return Value{}, err
		}
		_, ok := right.Set[k]
		return boolValue(ok), nil
	case KindList:
		k, err := left.key()
		if err != nil {
			return Value{}, err
		}
		for _, el := range right.List {
			ek, err := el.key()
			if err != nil {
				return Value{}, err
			}
			if ek == k {
				return boolValue(true), nil
			}
		}
		return boolValue(false), nil
	}
	return Value{}, fmt.Errorf("'in' over %s: %w", right.Kind, ErrTypeMismatch)
}

func evalUnionOp(left, right Value) (Value, error) {
	switch {
	case left.Kind == KindFA && right.Kind == KindFA:
		return faValue(faUnion(left.FA, right.FA)), nil
	case left.Kind == KindRSM && right.Kind == KindRSM:
		merged, err := rsm.Union(left.RSM, right.RSM)
		if err != nil {
			return Value{}, err
		}
		return rsmValue(merged), nil
	case left.Kind == KindSet && right.Kind == KindSet:
		s := newSet()
		for k, v := range left.Set {
			s.Set[k] = v
		}
		for k, v := range right.Set {
			s.Set[k] = v
		}
		return s, nil
	}
	return Value{}, fmt.Errorf("'|' on %s and %s: %w", left.Kind, right.Kind, ErrTypeMismatch)
}

func evalIntersectOp(left, right Value) (Value, error) {
	// Intersection involving an RSM operand is explicitly refused.
	if left.Kind == KindRSM || right.Kind == KindRSM {
		return Value{}, fmt.Errorf("'&' with rsm operand: %w", ErrUnsupported)
	}
	switch {
	case left.Kind == KindFA && right.Kind == KindFA:
		inter, err := automaton.Intersect(ensureNoEpsilon(left.FA), ensureNoEpsilon(right.FA))
		if err != nil {
			return Value{}, err
		}
		return faValue(inter), nil
	case left.Kind == KindSet && right.Kind == KindSet:
		s := newSet()
		for k, v := range left.Set {
			if _, ok := right.Set[k]; ok {
				s.Set[k] = v
			}
		}
		return s, nil
	}
	return Value{}, fmt.Errorf("'&' on %s and %s: %w", left.Kind, right.Kind, ErrTypeMismatch)
}

func evalConcatOp(left, right Value) (Value, error) {
	switch {
	case left.Kind == KindFA && right.Kind == KindFA:
		return faValue(faConcat(left.FA, right.FA)), nil
	case left.Kind == KindString && right.Kind == KindString:
		return stringValue(left.Str + right.Str), nil
	case left.Kind == KindList && right.Kind == KindList:
		out := make([]Value, 0, len(left.List)+len(right.List))
		out = append(out, left.List...)
		out = append(out, right.List...)
		return listValue(out), nil
	}
	return Value{}, fmt.Errorf("'++' on %s and %s: %w", left.Kind, right.Kind, ErrTypeMismatch)
}

func (in *Interp) evalIndex(x indexExpr, e *env) (Value, error) {
	c, err := in.eval(x.container, e)
	if err != nil {
		return Value{}, err
	}
	idx, err := in.eval(x.idx, e)
	if err != nil {
		return Value{}, err
	}
	if c.Kind != KindList {
		return Value{}, fmt.Errorf("indexing a %s: %w", c.Kind, ErrTypeMismatch)
	}
	if idx.Kind != KindInt {
		return Value{}, fmt.Errorf("index must be int, got %s: %w", idx.Kind, ErrTypeMismatch)
	}
	if idx.Int < 0 || idx.Int >= len(c.List) {
		return Value{}, fmt.Errorf("index %d out of range [0, %d): %w", idx.Int, len(c.List), ErrTypeMismatch)
	}
	return c.List[idx.Int], nil
}

func (in *Interp) evalCall(x callExpr, e *env) (Value, error) {
	args := make([]Value, 0, len(x.args))
	for _, a := range x.args {
		v, err := in.eval(a, e)
		if err != nil {
			return Value{}, err
		}
		args = append(args, v)
	}
	v, err := in.applyBuiltin(x.name, args, e)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", x.name, err)
	}
	return v, nil
}

func (in *Interp) applyBuiltin(name string, args []Value, e *env) (Value, error) {
	switch name {
	case "load":
		return builtinLoad(args)
	case "smb":
		return builtinSmb(args)
	case "setStart", "setFinal", "addStart", "addFinal":
		return builtinMark(name, args)
	case "getStart", "getFinal", "getVertices", "getLabels":
		return builtinGetSet(name, args)
	case "getEdges":
		return builtinGetEdges(args)
	case "getReachable":
		return builtinGetReachable(args)
	case "map", "filter":
		return in.builtinMapFilter(name, args)
	}
	return Value{}, fmt.Errorf("%s: %w", name, ErrUnknownName)
}

// builtinLoad reads a graph (DOT) or an extended grammar, keyed off the
// file extension: .cfg/.ecfg/.gr load as an ECFG compiled to an RSM,
// anything else as a graph-shaped FA with every vertex start and final.
func builtinLoad(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != KindString {
		return Value{}, fmt.Errorf("want one string path: %w", ErrTypeMismatch)
	}
	path := args[0].Str
	switch filepath.Ext(path) {
	case ".cfg", ".ecfg", ".gr":
		e, err := loader.LoadECFGFile(path)
		if err != nil {
			return Value{}, err
		}
		r, err := rsm.FromECFG(e)
		if err != nil {
			return Value{}, err
		}
		return rsmValue(r), nil
	default:
		g, err := loader.LoadGraphFile(path)
		if err != nil {
			return Value{}, err
		}
		return faValue(g.ToAutomaton(nil, nil)), nil
	}
}

// builtinSmb builds the one-symbol automaton for a label.
func builtinSmb(args []Value) (Value, error) {
	if len(args) != 1 || args[0].Kind != KindString {
		return Value{}, fmt.Errorf("want one string label: %w", ErrTypeMismatch)
	}
	fa := automaton.New()
	src := automaton.NewState("0")
	dst := automaton.NewState("1")
	fa.AddStart(src)
	fa.AddFinal(dst)
	fa.AddTransition(src, symbol.Intern(args[0].Str), dst)
	return faValue(fa), nil
}

func builtinMark(name string, args []Value) (Value, error) {
	if len(args) != 2 {
		return Value{}, fmt.Errorf("want (automaton, vertex set): %w", ErrTypeMismatch)
	}
	if args[0].Kind != KindFA {
		return Value{}, fmt.Errorf("first argument is %s, want automaton: %w", args[0].Kind, ErrTypeMismatch)
	}
	labels, err := labelSet(args[1])
	if err != nil {
		return Value{}, err
	}
	fa := args[0].FA
	switch name {
	case "setStart":
		return faValue(rebuildMarks(fa, labels, nil, false)), nil
	case "setFinal":
		return faValue(rebuildMarks(fa, nil, labels, false)), nil
	case "addStart":
		return faValue(rebuildMarks(fa, labels, nil, true)), nil
	case "addFinal":
		return faValue(rebuildMarks(fa, nil, labels, true)), nil
	}
	return Value{}, ErrSyntax
}

func builtinGetSet(name string, args []Value) (Value, error) {
	fa, err := oneFA(args)
	if err != nil {
		return Value{}, err
	}
	s := newSet()
	switch name {
	case "getStart":
		for _, st := range fa.StartStates() {
			if err := setAdd(s, stringValue(st.String())); err != nil {
				return Value{}, err
			}
		}
	case "getFinal":
		for _, st := range fa.FinalStates() {
			if err := setAdd(s, stringValue(st.String())); err != nil {
				return Value{}, err
			}
		}
	case "getVertices":
		for _, st := range fa.States() {
			if err := setAdd(s, stringValue(st.String())); err != nil {
				return Value{}, err
			}
		}
	case "getLabels":
		names := make([]string, 0)
		for sym := range fa.Alphabet() {
			n, ok := symbol.Name(sym)
			if !ok {
				continue
			}
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			if err := setAdd(s, stringValue(n)); err != nil {
				return Value{}, err
			}
		}
	}
	return s, nil
}

func builtinGetEdges(args []Value) (Value, error) {
	fa, err := oneFA(args)
	if err != nil {
		return Value{}, err
	}
	s := newSet()
	var walkErr error
	fa.Transitions(func(src automaton.State, sym symbol.Symbol, dst automaton.State) {
		if walkErr != nil {
			return
		}
		n, ok := symbol.Name(sym)
		if !ok {
			n = "$"
		}
		walkErr = setAdd(s, listValue([]Value{
			stringValue(src.String()), stringValue(n), stringValue(dst.String()),
		}))
	})
	if walkErr != nil {
		return Value{}, walkErr
	}
	return s, nil
}

func builtinGetReachable(args []Value) (Value, error) {
	fa, err := oneFA(args)
	if err != nil {
		return Value{}, err
	}
	pairs, err := reachablePairs(fa)
	if err != nil {
		return Value{}, err
	}
	s := newSet()
	for _, p := range pairs {
		if err := setAdd(s, listValue([]Value{stringValue(p[0]), stringValue(p[1])})); err != nil {
			return Value{}, err
		}
	}
	return s, nil
}

func (in *Interp) builtinMapFilter(name string, args []Value) (Value, error) {
	if len(args) != 2 || args[0].Kind != KindLambda {
		return Value{}, fmt.Errorf("want (lambda, container): %w", ErrTypeMismatch)
	}
	fn := args[0].lambda
	apply := func(v Value) (Value, error) {
		frame := newEnv(fn.env)
		if err := frame.define(fn.param, v); err != nil {
			return Value{}, err
		}
		return in.eval(fn.body, frame)
	}

	switch args[1].Kind {
	case KindList:
		var out []Value
		for _, el := range args[1].List {
			r, err := apply(el)
			if err != nil {
				return Value{}, err
			}
			if name == "map" {
				out = append(out, r)
				continue
			}
			keep, err := asFilterVerdict(r)
			if err != nil {
				return Value{}, err
			}
			if keep {
				out = append(out, el)
			}
		}
		return listValue(out), nil
	case KindSet:
		s := newSet()
		for _, el := range args[1].Set {
			r, err := apply(el)
			if err != nil {
				return Value{}, err
			}
			if name == "map" {
				if err := setAdd(s, r); err != nil {
					return Value{}, err
				}
				continue
			}
			keep, err := asFilterVerdict(r)
			if err != nil {
				return Value{}, err
			}
			if keep {
				if err := setAdd(s, el); err != nil {
					return Value{}, err
				}
			}
		}
		return s, nil
	}
	return Value{}, fmt.Errorf("%s over %s: %w", name, args[1].Kind, ErrTypeMismatch)
}

func asFilterVerdict(v Value) (bool, error) {
	if v.Kind != KindBool {
		return false, fmt.Errorf("filter lambda returned %s, want bool: %w", v.Kind, ErrTypeMismatch)
	}
	return v.Bool, nil
}

// oneFA validates a single-automaton argument list.
func oneFA(args []Value) (*automaton.FA, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("want one automaton argument: %w", ErrTypeMismatch)
	}
	if args[0].Kind != KindFA {
		return nil, fmt.Errorf("argument is %s, want automaton: %w", args[0].Kind, ErrTypeMismatch)
	}
	return args[0].FA, nil
}

// labelSet renders a set/list of vertex designators into state labels.
func labelSet(v Value) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	switch v.Kind {
	case KindSet:
		for _, el := range v.Set {
			l, err := el.asLabel()
			if err != nil {
				return nil, err
			}
			out[l] = struct{}{}
		}
	case KindList:
		for _, el := range v.List {
			l, err := el.asLabel()
			if err != nil {
				return nil, err
			}
			out[l] = struct{}{}
		}
	default:
		return nil, fmt.Errorf("vertex set is %s, want set or list: %w", v.Kind, ErrTypeMismatch)
	}
	return out, nil
}
