// SPDX-License-Identifier: MIT
//
// File: hellings.go
// Role: Hellings' worklist CFPQ evaluator: propagate
// each new (variable, i, j) fact through the grammar's binary
// productions exactly once, via a FIFO worklist.
package cfpq

import (
	"github.com/katalvlaran/pathql/boolmat"
	"github.com/katalvlaran/pathql/grammar"
	"github.com/katalvlaran/pathql/pgraph"
)

// leftIndex[N] lists (Head, C) for every production Head -> N C (N is
// the left symbol of the body).
// rightIndex[N] lists (Head, B) for every production Head -> B N (N is
// the right symbol of the body).
type productionIndex struct {
	left  map[grammar.Variable][]leftEntry
	right map[grammar.Variable][]rightEntry
}

type leftEntry struct {
	head grammar.Variable
	c    grammar.Variable
}

type rightEntry struct {
	head grammar.Variable
	b    grammar.Variable
}

func buildProductionIndex(binaries []grammar.WCNFProduction) *productionIndex {
	idx := &productionIndex{left: make(map[grammar.Variable][]leftEntry), right: make(map[grammar.Variable][]rightEntry)}
	for _, p := range binaries {
		idx.left[p.B] = append(idx.left[p.B], leftEntry{head: p.Head, c: p.C})
		idx.right[p.C] = append(idx.right[p.C], rightEntry{head: p.Head, b: p.B})
	}
	return idx
}

// factSet is the running set of discovered (variable, i, j) triples,
// indexed both by start vertex and by end vertex so Hellings' two
// extension rules can look up matches in O(1) amortized per candidate.
type factSet struct {
	has     map[grammar.Variable]*boolmat.Matrix // existence test / final output
	byStart map[int]map[grammar.Variable][]int   // byStart[i][V] = sorted-free list of j with (V,i,j)
	byEnd   map[int]map[grammar.Variable][]int   // byEnd[j][V] = list of i with (V,i,j)
	n       int
}

func newFactSet(n int) *factSet {
	return &factSet{
		has:     make(map[grammar.Variable]*boolmat.Matrix),
		byStart: make(map[int]map[grammar.Variable][]int),
		byEnd:   make(map[int]map[grammar.Variable][]int),
		n:       n,
	}
}

func (f *factSet) exists(v grammar.Variable, i, j int) bool {
	m, ok := f.has[v]
	return ok && m.At(i, j)
}

// add records (v, i, j) if new, returning whether it was newly added.
func (f *factSet) add(v grammar.Variable, i, j int) bool {
	m, ok := f.has[v]
	if !ok {
		m = boolmat.MustNew(f.n, f.n)
		f.has[v] = m
	}
	if m.At(i, j) {
		return false
	}
	_ = m.Set(i, j, true)

	if f.byStart[i] == nil {
		f.byStart[i] = make(map[grammar.Variable][]int)
	}
	f.byStart[i][v] = append(f.byStart[i][v], j)

	if f.byEnd[j] == nil {
		f.byEnd[j] = make(map[grammar.Variable][]int)
	}
	f.byEnd[j][v] = append(f.byEnd[j][v], i)
	return true
}

// Hellings evaluates wcnf over g using the worklist algorithm.
//
// Complexity: O(n^3 * |grammar|) in the worst case, same asymptotic
// bound as Matrix — each of the O(n^2 * |variables|) possible facts is
// popped from the worklist at most once, and popping one fact scans
// O(n) candidates per matching production.
func Hellings(wcnf *grammar.WCNF, g *pgraph.Graph) (*Result, error) {
	vertices, idx := indexVertices(g)
	n := len(vertices)
	res := newResult(vertices)
	if n == 0 {
		return res, nil
	}

	facts := newFactSet(n)
	pidx := buildProductionIndex(binaryProductions(wcnf))

	type triple struct {
		v    grammar.Variable
		i, j int
	}
	var worklist []triple

	for _, sf := range seedFacts(wcnf, g, idx) {
		if facts.add(sf.head, sf.from, sf.to) {
			worklist = append(worklist, triple{v: sf.head, i: sf.from, j: sf.to})
		}
	}

	for len(worklist) > 0 {
		t := worklist[0]
		worklist = worklist[1:]

		// Rule 1: this triple is (N, v, u); extend with (C, u, w) for
		// productions Head -> N C, producing (Head, v, w).
		for _, le := range pidx.left[t.v] {
			for _, w := range facts.byStart[t.j][le.c] {
				if facts.add(le.head, t.i, w) {
					worklist = append(worklist, triple{v: le.head, i: t.i, j: w})
				}
			}
		}

		// Rule 2: this triple is (N, v, u); extend with (B, w, v) for
		// productions Head -> B N, producing (Head, w, u).
		for _, re := range pidx.right[t.v] {
			for _, w := range facts.byEnd[t.i][re.b] {
				if facts.add(re.head, w, t.j) {
					worklist = append(worklist, triple{v: re.head, i: w, j: t.j})
				}
			}
		}
	}

	res.T = facts.has
	return res, nil
}
