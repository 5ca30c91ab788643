// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Provide a single source of truth for shape and length checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly
//     with their own operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.

package linalg

import "math"

// validateRectangular ensures every row has the length of rows[0] and
// returns that column count. Zero rows report zero columns.
// Complexity: O(r).
func validateRectangular(rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	c := len(rows[0]) // reference width
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != c {
			return 0, ErrInvalidShape // ragged row i
		}
	}

	return c, nil
}

// validateSameLen ensures two vectors have equal length.
// Complexity: O(1).
func validateSameLen(a, b Vector) error {
	if len(a) != len(b) {
		return ErrDimensionMismatch
	}

	return nil
}

// validateBroadcast ensures b can be broadcast against every row of m.
// Complexity: O(1).
func validateBroadcast(m Matrix, b Vector) error {
	if len(b) != m.c {
		return ErrDimensionMismatch
	}

	return nil
}

// validateFinite rejects NaN and ±Inf.
// Complexity: O(n).
func validateFinite(values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
