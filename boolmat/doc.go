// Package boolmat implements sparse boolean matrices and the
// linear-algebra primitives the query-evaluation engine is built from:
// boolean OR, boolean matrix product, Kronecker (tensor) product, and
// block-diagonal stacking.
//
// Storage is coordinate-sparse (a map of row -> set of set columns),
// which the per-symbol adjacency matrices of real query graphs reward.
// Dense storage is not a separate code path here: a small n simply
// produces a small sparse map, so there is exactly one concrete
// representation per concern rather than two competing ones.
//
// A matrix has fixed rows×cols dimensions set at construction and may
// be rectangular (the multi-source frontier is); BlockDiag alone
// requires square operands. Operations whose operand dimensions do not
// fit return ErrDimensionMismatch.
package boolmat
