// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Selection (Gather, GatherRows) and reductions (Mean, Sum, Min) for both
//     rank variants. The Matrix forms recurse row-wise over the Vector forms
//     where that is the natural definition (Sum, Min).
//
// Determinism:
//   - Fixed loop orders (i→j); sums accumulate left to right.

package linalg

import "math"

// Gather returns the elements of source whose position is in indices,
// preserving the relative order of source (not the order indices were added).
//
// Behavior highlights:
//   - Empty set yields an empty Vector; out-of-range positions never match.
//   - Gather(v, RangeSet(len(v))) is the identity.
//
// Complexity:
//   - Time O(k) for k members below len(source), Space O(k).
func Gather(source Vector, indices IndexSet) Vector {
	out := make(Vector, 0, min(indices.Len(), len(source)))
	indices.each(len(source), func(i int) {
		out = append(out, source[i])
	})

	return out
}

// GatherRows returns the rows of m whose position is in indices, in row order.
// The result always has m.Cols() columns, even when no row is selected.
//
// AI-Hints:
//   - Materialize a cluster's member rows before ESS: GatherRows(X, members).ESS().
func GatherRows(m Matrix, indices IndexSet) Matrix {
	out := Matrix{c: m.c, data: make([]float64, 0, min(indices.Len(), m.r)*m.c)}
	indices.each(m.r, func(i int) {
		out.data = append(out.data, m.row(i)...)
		out.r++
	})

	return out
}

// Mean returns the arithmetic mean of the elements.
// Returns ErrEmptyInput when v has no elements.
func (v Vector) Mean() (float64, error) {
	if len(v) == 0 {
		return 0, linalgErrorf(opVecMean, ErrEmptyInput)
	}

	return v.Sum() / float64(len(v)), nil
}

// Mean returns the per-column means: element j is the mean of column j
// across all rows.
// Implementation:
//   - Stage 1: reject zero rows.
//   - Stage 2: accumulate column sums in one deterministic row-major pass.
//   - Stage 3: scale by 1/r.
//
// Returns:
//   - Vector of length m.Cols().
//
// Errors:
//   - ErrEmptyInput when m has zero rows.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func (m Matrix) Mean() (Vector, error) {
	// Stage 1 (Validate): at least one row.
	if m.r == 0 {
		return nil, linalgErrorf(opMatMean, ErrEmptyInput)
	}

	// Stage 2 (Execute): column sums over the flat buffer.
	means := make(Vector, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		base := i * m.c // cache row base offset
		for j = 0; j < m.c; j++ {
			means[j] += m.data[base+j]
		}
	}

	// Stage 3 (Finalize): divide sums by r.
	n := float64(m.r)
	for j = range means {
		means[j] /= n
	}

	return means, nil
}

// Sum returns the sum of all elements (0 for an empty Vector).
func (v Vector) Sum() float64 {
	var s float64
	for _, x := range v {
		s += x
	}

	return s
}

// Sum returns the sum of all elements as the sum of the row sums
// (0 for a matrix without elements).
func (m Matrix) Sum() float64 {
	var s float64
	for i := 0; i < m.r; i++ {
		s += m.row(i).Sum()
	}

	return s
}

// Min returns the smallest element. NaN propagates as in math.Min.
// Returns ErrEmptyInput when v has no elements.
func (v Vector) Min() (float64, error) {
	if len(v) == 0 {
		return 0, linalgErrorf(opVecMin, ErrEmptyInput)
	}

	return v.min(), nil
}

// min assumes len(v) > 0.
func (v Vector) min() float64 {
	res := v[0]
	for _, x := range v[1:] {
		res = math.Min(res, x)
	}

	return res
}

// Min returns the smallest element over all rows.
// Returns ErrEmptyInput when m has no elements (zero rows or zero columns).
func (m Matrix) Min() (float64, error) {
	if len(m.data) == 0 {
		return 0, linalgErrorf(opMatMin, ErrEmptyInput)
	}

	res := math.Inf(1)
	for i := 0; i < m.r; i++ {
		res = math.Min(res, m.row(i).min())
	}

	return res, nil
}
