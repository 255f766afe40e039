// SPDX-License-Identifier: MIT
package symbol

import (
	"fmt"
	"sync"
)

// Symbol is an interned label identifier. The zero Symbol is Epsilon,
// which Intern returns only for the label "$"; Epsilon is the only Symbol with a
// predeclared meaning (the empty-word label used by epsilon transitions
// before they are eliminated — see automaton.RemoveEpsilon).
type Symbol int

// Epsilon denotes the empty word. It is never a key in an
// automaton.BooleanDecomposition; epsilon transitions must be
// eliminated before decomposition.
const Epsilon Symbol = 0

// Table interns printable labels into Symbol values. The zero Table is
// ready to use once Intern has been called at least once; prefer
// NewTable for explicit construction.
//
// Concurrency: guarded by mu, mirroring core.Graph's muVert/muEdgeAdj
// split — here a single lock suffices since both maps are always
// mutated together.
type Table struct {
	mu     sync.RWMutex
	byName map[string]Symbol
	names  []string // names[s-1] == name of Symbol(s), s >= 1
}

// NewTable returns an empty Table with Epsilon pre-registered under the
// name "$".
func NewTable() *Table {
	t := &Table{byName: make(map[string]Symbol)}
	t.byName["$"] = Epsilon
	return t
}

// Intern returns the Symbol for name, allocating a new one if name has
// not been seen before by this Table.
//
// Complexity: O(1) amortized (map lookup, occasional slice append).
func (t *Table) Intern(name string) Symbol {
	t.mu.RLock()
	if s, ok := t.byName[name]; ok {
		t.mu.RUnlock()
		return s
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.byName == nil {
		t.byName = map[string]Symbol{"$": Epsilon} // zero Table
	}
	// Re-check under write lock: another goroutine may have interned
	// the same name between RUnlock and Lock.
	if s, ok := t.byName[name]; ok {
		return s
	}
	t.names = append(t.names, name)
	s := Symbol(len(t.names))
	t.byName[name] = s
	return s
}

// Name returns the printable label for s ("$" for Epsilon), or an empty
// string and false if s was never interned by this Table.
func (t *Table) Name(s Symbol) (string, bool) {
	if s == Epsilon {
		return "$", true
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx := int(s) - 1
	if idx < 0 || idx >= len(t.names) {
		return "", false
	}
	return t.names[idx], true
}

// MustName is Name without the ok flag; it panics on an unknown Symbol,
// which indicates a programmer error (mixing Symbols across Tables),
// not a user-triggered condition.
func (t *Table) MustName(s Symbol) string {
	name, ok := t.Name(s)
	if !ok {
		panic(fmt.Sprintf("symbol: unknown symbol %d", int(s)))
	}
	return name
}

// Len returns the number of distinct non-epsilon symbols interned so
// far.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}

// defaultTable is the package-level Table used by the Intern/Name
// convenience functions below, for callers that don't need isolation
// between independently-loaded graphs/grammars.
var defaultTable = NewTable()

// Intern interns name against the package-default Table.
func Intern(name string) Symbol { return defaultTable.Intern(name) }

// Name looks up name against the package-default Table.
func Name(s Symbol) (string, bool) { return defaultTable.Name(s) }

// Default returns the package-level default Table.
func Default() *Table { return defaultTable }
