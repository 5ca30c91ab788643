// SPDX-License-Identifier: MIT
// Package linalg_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and comparison utilities.

package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/linalg"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// MustMatrix builds a Matrix from rows or fails the test.
func MustMatrix(t testing.TB, rows [][]float64) linalg.Matrix {
	t.Helper()
	m, err := linalg.NewMatrix(rows)
	require.NoError(t, err)

	return m
}

// MustRow returns row i of m or fails the test.
func MustRow(t testing.TB, m linalg.Matrix, i int) linalg.Vector {
	t.Helper()
	r, err := m.Row(i)
	require.NoError(t, err)

	return r
}

// sliceClose asserts element-wise |got-want| <= eps.
func sliceClose(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RandomMatrix fills an r×c matrix with values in [-1, 1) from a fixed seed.
func RandomMatrix(t testing.TB, r, c int, seed int64) linalg.Matrix {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
	}

	return MustMatrix(t, rows)
}

// isNaN reports whether every element of v is NaN.
func isNaN(v []float64) bool {
	for _, x := range v {
		if !math.IsNaN(x) {
			return false
		}
	}

	return true
}
