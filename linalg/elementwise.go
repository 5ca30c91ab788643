// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Element-wise arithmetic (Sub, Pow) and the Dot product.
//   - Keep the tight loops in small private kernels (ew*) shared by the
//     Vector and Matrix forms.
//
// Determinism & Performance:
//   - Flat 0..n-1 loops over freshly allocated outputs; inputs are never written.
//   - Matrix kernels operate on the single row-major buffer.

package linalg

import "math"

// ewSub computes out[k] = a[k] - b[k]. Caller guarantees len(a) == len(b) == len(out).
func ewSub(out, a, b []float64) {
	for k := range out {
		out[k] = a[k] - b[k]
	}
}

// ewPow computes out[k] = x[k]^p with math.Pow semantics.
func ewPow(out, x []float64, p float64) {
	for k := range out {
		out[k] = math.Pow(x[k], p)
	}
}

// Sub returns the element-wise difference v - b.
// Returns ErrDimensionMismatch when the lengths differ.
// Complexity: Time O(n), Space O(n).
func (v Vector) Sub(b Vector) (Vector, error) {
	if err := validateSameLen(v, b); err != nil {
		return nil, linalgErrorf(opVecSub, err)
	}

	out := make(Vector, len(v))
	ewSub(out, v, b)

	return out, nil
}

// Sub broadcasts b over every row: out[i,j] = m[i,j] - b[j].
// Implementation:
//   - Stage 1: validate len(b) == m.Cols().
//   - Stage 2: subtract b from each row of the flat buffer.
//
// Returns:
//   - Matrix with the shape of m.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != m.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - m.Sub(mean) with mean from m.Mean() centers the columns (the ESS first step).
func (m Matrix) Sub(b Vector) (Matrix, error) {
	// Stage 1 (Validate): broadcast compatibility.
	if err := validateBroadcast(m, b); err != nil {
		return Matrix{}, linalgErrorf(opMatSub, err)
	}

	// Stage 2 (Execute): row-wise kernel over the flat buffer.
	out := Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		ewSub(out.data[base:base+m.c], m.data[base:base+m.c], b)
	}

	return out, nil
}

// Pow raises every element to p. No error conditions: a negative base with a
// fractional exponent yields NaN, as math.Pow does.
func (v Vector) Pow(p float64) Vector {
	out := make(Vector, len(v))
	ewPow(out, v, p)

	return out
}

// Pow raises every element to p, preserving the shape of m.
func (m Matrix) Pow(p float64) Matrix {
	out := Matrix{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	ewPow(out.data, m.data, p)

	return out
}

// Dot returns Σ v[i]·b[i].
// Returns ErrDimensionMismatch when the lengths differ; two empty vectors give 0.
func (v Vector) Dot(b Vector) (float64, error) {
	if err := validateSameLen(v, b); err != nil {
		return 0, linalgErrorf(opDot, err)
	}

	var s float64
	for i := range v {
		s += v[i] * b[i]
	}

	return s, nil
}
