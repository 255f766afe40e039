// SPDX-License-Identifier: MIT
package automaton

import (
	"math/bits"

	"github.com/katalvlaran/pathql/boolmat"
)

// TransitiveClosure computes C such that C[i,j] holds iff a nonempty
// path of length >= 1 exists from i to j in the union of d's per-symbol
// matrices. It repeatedly squares S := OR_a M[a] for
// ceil(log2(n)) iterations, which is enough for the boolean-sum-of-
// powers closure to stabilize since any path of length < n has already
// been folded in by then.
//
// Returns ErrEmptyDecomposition for a zero-state decomposition, whose
// closure is undefined; callers treat it as "no reachability".
//
// Complexity: O(log n) boolean matrix multiplications.
func TransitiveClosure(d *BooleanDecomposition) (*boolmat.Matrix, error) {
	if d.N == 0 {
		return nil, ErrEmptyDecomposition
	}

	s := boolmat.MustNew(d.N, d.N)
	for _, mat := range d.M {
		s.OrInPlace(mat)
	}

	iterations := ceilLog2(d.N)
	for i := 0; i < iterations; i++ {
		sq, err := s.Mul(s)
		if err != nil {
			return nil, err
		}
		s.OrInPlace(sq)
	}
	return s, nil
}

// ceilLog2 returns ceil(log2(n)) for n >= 1 (0 for n == 1).
func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	// bits.Len(n-1) == ceil(log2(n)) for n >= 2.
	return bits.Len(uint(n - 1))
}
