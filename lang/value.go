// SPDX-License-Identifier: MIT
//
// File: value.go
// Role: the tagged value union the interpreter dispatches over, plus
// hashing (set membership) and canonical rendering (print).
package lang

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/rsm"
)

// Kind discriminates Value.
type Kind int

const (
	KindInt Kind = iota
	KindBool
	KindString
	KindList
	KindSet
	KindFA
	KindRSM
	KindLambda
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindFA:
		return "automaton"
	case KindRSM:
		return "rsm"
	case KindLambda:
		return "lambda"
	}
	return "unknown"
}

// lambdaValue is a closure: parameter, body, defining environment.
type lambdaValue struct {
	param string
	body  node
	env   *env
}

// Value is one query-language value. Exactly the field matching Kind is
// meaningful; Set is keyed by the element's canonical key.
type Value struct {
	Kind   Kind
	Int    int
	Bool   bool
	Str    string
	List   []Value
	Set    map[string]Value
	FA     *automaton.FA
	RSM    *rsm.RecursiveStateMachine
	lambda *lambdaValue
}

func intValue(v int) Value       { return Value{Kind: KindInt, Int: v} }
func boolValue(v bool) Value     { return Value{Kind: KindBool, Bool: v} }
func stringValue(v string) Value { return Value{Kind: KindString, Str: v} }
func listValue(vs []Value) Value { return Value{Kind: KindList, List: vs} }
func faValue(fa *automaton.FA) Value {
	return Value{Kind: KindFA, FA: fa}
}
func rsmValue(r *rsm.RecursiveStateMachine) Value {
	return Value{Kind: KindRSM, RSM: r}
}

func newSet() Value { return Value{Kind: KindSet, Set: make(map[string]Value)} }

// setAdd inserts v into set s. Unhashable kinds (FA, RSM, Lambda)
// cannot be set members.
func setAdd(s Value, v Value) error {
	k, err := v.key()
	if err != nil {
		return err
	}
	s.Set[k] = v
	return nil
}

// key returns a canonical identity string for hashable values; kinds
// whose equality is structural identity (FA, RSM, Lambda) are not
// hashable and report ErrTypeMismatch.
func (v Value) key() (string, error) {
	switch v.Kind {
	case KindInt:
		return "i:" + strconv.Itoa(v.Int), nil
	case KindBool:
		return "b:" + strconv.FormatBool(v.Bool), nil
	case KindString:
		return "s:" + v.Str, nil
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			k, err := e.key()
			if err != nil {
				return "", err
			}
			parts[i] = k
		}
		return "l:[" + strings.Join(parts, ",") + "]", nil
	case KindSet:
		keys := make([]string, 0, len(v.Set))
		for k := range v.Set {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "S:{" + strings.Join(keys, ",") + "}", nil
	}
	return "", fmt.Errorf("%s value is not hashable: %w", v.Kind, ErrTypeMismatch)
}

// render produces the canonical plain form print emits. Sets render in
// the string order of their elements' canonical keys (so {2, 10}
// prints as "{10, 2}"), which keeps output deterministic even though
// the underlying value is unordered.
func (v Value) render() string {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindString:
		return v.Str
	case KindList:
		parts := make([]string, len(v.List))
		for i, e := range v.List {
			parts[i] = e.render()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindSet:
		type entry struct{ key, text string }
		entries := make([]entry, 0, len(v.Set))
		for k, e := range v.Set {
			entries = append(entries, entry{key: k, text: e.render()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = e.text
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindFA:
		return fmt.Sprintf("automaton(%d states)", len(v.FA.States()))
	case KindRSM:
		return fmt.Sprintf("rsm(%s, %d boxes)", v.RSM.Start, len(v.RSM.Boxes))
	case KindLambda:
		return "<lambda>"
	}
	return "<invalid>"
}

// asLabel renders a vertex/state designator (int or string) for
// matching against automaton state labels.
func (v Value) asLabel() (string, error) {
	switch v.Kind {
	case KindInt:
		return strconv.Itoa(v.Int), nil
	case KindString:
		return v.Str, nil
	}
	return "", fmt.Errorf("%s value cannot name a state: %w", v.Kind, ErrTypeMismatch)
}
