// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Ward's minimum-variance criterion: the error sum of squares (ESS) of a
//     cluster of row vectors, and the increase in the undivided sum of
//     squares caused by merging two clusters (MergeCost).
//
// Notes:
//   - ESS is normalized by the row count: sum((m - mean(m))^2) / rows(m).
//   - MergeCost works on undivided sums rows·ESS, so it is never negative.
//   - ESS composes Mean, Sub (broadcast), Pow and Sum; it fails exactly where
//     Mean or Sub fail.

package linalg

// essExponent squares the centered deviations.
const essExponent = 2.0

// ESS returns the within-cluster error sum of squares of m.
// Implementation:
//   - Stage 1: column means via Mean.
//   - Stage 2: center rows via Sub (Matrix minus Vector broadcast).
//   - Stage 3: square via Pow, total via Sum, divide by the row count.
//
// Errors:
//   - ErrEmptyInput when m has zero rows (from Mean).
//   - ErrDimensionMismatch from Sub (unreachable for a well-formed Matrix).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the centered copy.
//
// AI-Hints:
//   - A single-row cluster has ESS 0.
func (m Matrix) ESS() (float64, error) {
	// Stage 1: column means.
	mean, err := m.Mean()
	if err != nil {
		return 0, linalgErrorf(opESS, err)
	}

	// Stage 2: deviations from the mean.
	centered, err := m.Sub(mean)
	if err != nil {
		return 0, linalgErrorf(opESS, err)
	}

	// Stage 3: squared total per row.
	return centered.Pow(essExponent).Sum() / float64(m.r), nil
}

// Stack returns the rows of a followed by the rows of b.
// A 0×0 operand is neutral; otherwise the column counts must match
// (ErrDimensionMismatch).
func Stack(a, b Matrix) (Matrix, error) {
	switch {
	case a.r == 0 && a.c == 0:
		return b.Clone(), nil
	case b.r == 0 && b.c == 0:
		return a.Clone(), nil
	case a.c != b.c:
		return Matrix{}, linalgErrorf(opStack, ErrDimensionMismatch)
	}

	data := make([]float64, 0, len(a.data)+len(b.data))
	data = append(data, a.data...)
	data = append(data, b.data...)

	return Matrix{r: a.r + b.r, c: a.c, data: data}, nil
}

// MergeCost returns Ward's merge cost: the increase of the undivided sum of
// squares when the rows of a and b form one cluster,
//
//	(nA+nB)·ESS(a∪b) - nA·ESS(a) - nB·ESS(b) = nA·nB/(nA+nB)·‖μA-μB‖²
//
// evaluated through the closed form on the right, which is never negative.
//
// Errors:
//   - ErrEmptyInput when either cluster has zero rows.
//   - ErrDimensionMismatch when the column counts differ.
//
// Complexity:
//   - Time O((nA+nB)*c), Space O(c).
func MergeCost(a, b Matrix) (float64, error) {
	if a.r == 0 || b.r == 0 {
		return 0, linalgErrorf(opMergeCost, ErrEmptyInput)
	}
	if a.c != b.c {
		return 0, linalgErrorf(opMergeCost, ErrDimensionMismatch)
	}

	muA, err := a.Mean()
	if err != nil {
		return 0, linalgErrorf(opMergeCost, err)
	}
	muB, err := b.Mean()
	if err != nil {
		return 0, linalgErrorf(opMergeCost, err)
	}

	// Squared distance between centroids; zero columns give zero cost.
	var d2 float64
	if a.c > 0 {
		d, derr := muA.Dist(muB)
		if derr != nil {
			return 0, linalgErrorf(opMergeCost, derr)
		}
		d2 = d * d
	}

	nA, nB := float64(a.r), float64(b.r)

	return nA * nB / (nA + nB) * d2, nil
}
