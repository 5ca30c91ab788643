// SPDX-License-Identifier: MIT

// Package linalg provides small, allocation-explicit vector and matrix
// primitives for hierarchical clustering.
//
// The package offers:
//
//   - Vector ([]float64) and Matrix (rectangular, row-major) value types,
//     joined by the sealed Array union {Scalar, Vector, Matrix}.
//   - Selection: Gather over an IndexSet (a roaring bitmap), GatherRows.
//   - Reductions: Mean (column means for a Matrix), Sum, Min.
//   - Element-wise arithmetic: Sub (with row broadcast for a Matrix), Pow, Dot.
//   - Distances: Dist, and DistMatrix producing a strictly upper-triangular
//     DistanceMatrix whose lower half is unset rather than zero.
//   - Ward's criterion: ESS, and MergeCost (increase of the undivided sum of
//     squares on merging two clusters).
//
// Every operation is a pure function of its inputs: operands are never
// mutated and results are freshly allocated, so values may be shared across
// goroutines without coordination.
//
// Errors are package sentinels (ErrEmptyInput, ErrDimensionMismatch,
// ErrInvalidShape, ErrInvalidInput, ErrOutOfRange, ErrNaNInf) wrapped with
// the failing operation's name; match them with errors.Is.
//
// Quick example:
//
//	m, _ := linalg.NewMatrix([][]float64{{1, 2}, {3, 4}})
//	ess, _ := m.ESS() // 2
package linalg
