// SPDX-License-Identifier: MIT
//
// File: multisource.go
// Role: multi-source matrix-BFS RPQ evaluator: block-
// diagonal composition of the query DFA with the graph NFA, frontier
// expansion with RowNormalize restoring the per-source invariant, and
// two harvesting modes (union vs per-source).
package rpq

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pathql/automaton"
	"github.com/katalvlaran/pathql/boolmat"
	"github.com/katalvlaran/pathql/pgraph"
	"github.com/katalvlaran/pathql/symbol"
)

// frontierSetup is the shared state both harvesting modes iterate to a
// fixed point before reading their own result shape off of it.
type frontierSetup struct {
	dq, dh        *automaton.BooleanDecomposition
	vIdx          map[string]int
	q, g          int
	frontier      *boolmat.Matrix
	sourceIdx     map[int]struct{}
	queryFinalIdx []int
}

// buildFrontier compiles regexSrc, decomposes both operands, builds
// the per-symbol block-diagonal matrices, seeds the frontier per
// perSource, and iterates it to a fixed point.
func buildFrontier(regexSrc string, g *pgraph.Graph, sources []string, perSource bool) (*frontierSetup, error) {
	queryDFA, err := automaton.CompileRegex(regexSrc)
	if err != nil {
		return nil, fmt.Errorf("rpq: %w", err)
	}
	h := g.ToAutomaton(nil, nil)

	dq, err := automaton.Decompose(queryDFA)
	if err != nil {
		return nil, fmt.Errorf("rpq: %w", err)
	}
	dh, err := automaton.Decompose(h)
	if err != nil {
		return nil, fmt.Errorf("rpq: %w", err)
	}

	q, gN := dq.N, dh.N
	vIdx := graphVertexIndex(dh)
	k := len(sources)

	queryFinalIdx := make([]int, 0, len(queryDFA.FinalStates()))
	for _, qf := range queryDFA.FinalStates() {
		queryFinalIdx = append(queryFinalIdx, dq.Index[qf])
	}

	blocks := make(map[symbol.Symbol]*boolmat.Matrix)
	for sym, qm := range dq.M {
		gm, ok := dh.M[sym]
		if !ok {
			continue // not common to both alphabets
		}
		bd, err := boolmat.BlockDiag(qm, gm)
		if err != nil {
			return nil, fmt.Errorf("rpq: %w", err)
		}
		blocks[sym] = bd
	}

	rows := q
	if perSource {
		rows = q * k
	}
	if q == 0 || gN == 0 || rows == 0 {
		return &frontierSetup{
			dq: dq, dh: dh, vIdx: vIdx, q: q, g: gN,
			frontier:      boolmat.MustNew(maxInt(rows, 1), maxInt(q+gN, 1)),
			sourceIdx:     map[int]struct{}{},
			queryFinalIdx: queryFinalIdx,
		}, nil
	}

	frontier := boolmat.MustNew(rows, q+gN)
	sourceIdx := make(map[int]struct{}, k)
	qStarts := queryDFA.StartStates()

	if perSource {
		for j, u := range sources {
			base := j * q
			for i := 0; i < q; i++ {
				if err := frontier.Set(base+i, i, true); err != nil {
					return nil, fmt.Errorf("rpq: %w", err)
				}
			}
			uIdx, ok := vIdx[u]
			if !ok {
				continue
			}
			sourceIdx[uIdx] = struct{}{}
			for _, qs := range qStarts {
				if err := frontier.Set(base+dq.Index[qs], q+uIdx, true); err != nil {
					return nil, fmt.Errorf("rpq: %w", err)
				}
			}
		}
	} else {
		for i := 0; i < q; i++ {
			if err := frontier.Set(i, i, true); err != nil {
				return nil, fmt.Errorf("rpq: %w", err)
			}
		}
		for _, u := range sources {
			uIdx, ok := vIdx[u]
			if !ok {
				continue
			}
			sourceIdx[uIdx] = struct{}{}
			for _, qs := range qStarts {
				if err := frontier.Set(dq.Index[qs], q+uIdx, true); err != nil {
					return nil, fmt.Errorf("rpq: %w", err)
				}
			}
		}
	}

	for changed := true; changed; {
		changed = false
		acc := boolmat.MustNew(rows, q+gN)
		for _, blk := range blocks {
			prod, err := frontier.Mul(blk)
			if err != nil {
				return nil, fmt.Errorf("rpq: %w", err)
			}
			norm, err := boolmat.RowNormalize(prod, q)
			if err != nil {
				return nil, fmt.Errorf("rpq: %w", err)
			}
			if err := acc.OrInPlace(norm); err != nil {
				return nil, fmt.Errorf("rpq: %w", err)
			}
		}
		before := frontier.NNZ()
		if err := frontier.OrInPlace(acc); err != nil {
			return nil, fmt.Errorf("rpq: %w", err)
		}
		if frontier.NNZ() != before {
			changed = true
		}
	}

	return &frontierSetup{
		dq: dq, dh: dh, vIdx: vIdx, q: q, g: gN,
		frontier:      frontier,
		sourceIdx:     sourceIdx,
		queryFinalIdx: queryFinalIdx,
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MultiSourceUnion answers "which vertices in finals are reachable
// from any vertex in sources along a path labeled by regexSrc",
// merging all sources into the shared per-query-state row view.
func MultiSourceUnion(regexSrc string, g *pgraph.Graph, sources, finals []string) ([]string, error) {
	fs, err := buildFrontier(regexSrc, g, sources, false)
	if err != nil {
		return nil, fmt.Errorf("rpq.MultiSourceUnion: %w", err)
	}
	if fs.q == 0 || fs.g == 0 {
		return nil, nil
	}

	queryDFAFinals := finalIndices(fs)
	vset := newVertexSet(finals)

	seen := make(map[string]struct{})
	for _, qfIdx := range queryDFAFinals {
		for _, col := range fs.frontier.RowIndices(qfIdx) {
			if col < fs.q {
				continue
			}
			vi := col - fs.q
			if _, isSource := fs.sourceIdx[vi]; isSource {
				continue
			}
			label, ok := fs.dh.States[vi].Atom()
			if !ok || !vset.contains(label) {
				continue
			}
			seen[label] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out, nil
}

// MultiSourcePerSource answers the same question as MultiSourceUnion
// but keeps each source's reachable set distinct, returning (u, v)
// pairs.
func MultiSourcePerSource(regexSrc string, g *pgraph.Graph, sources, finals []string) ([][2]string, error) {
	fs, err := buildFrontier(regexSrc, g, sources, true)
	if err != nil {
		return nil, fmt.Errorf("rpq.MultiSourcePerSource: %w", err)
	}
	if fs.q == 0 || fs.g == 0 {
		return nil, nil
	}

	queryDFAFinals := finalIndices(fs)
	vset := newVertexSet(finals)

	seen := make(map[[2]string]struct{})
	for j, u := range sources {
		uIdx, ok := fs.vIdx[u]
		if !ok {
			continue
		}
		base := j * fs.q
		for _, qfIdx := range queryDFAFinals {
			for _, col := range fs.frontier.RowIndices(base + qfIdx) {
				if col < fs.q {
					continue
				}
				vi := col - fs.q
				if vi == uIdx {
					continue
				}
				label, ok := fs.dh.States[vi].Atom()
				if !ok || !vset.contains(label) {
					continue
				}
				seen[[2]string{u, label}] = struct{}{}
			}
		}
	}

	out := make([][2]string, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out, nil
}

// finalIndices returns the dq index of each query-DFA final state,
// captured once by buildFrontier.
func finalIndices(fs *frontierSetup) []int {
	return fs.queryFinalIdx
}
