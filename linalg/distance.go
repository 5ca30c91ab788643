// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Euclidean distance between vectors, from every row of a matrix to a
//     reference vector, and the all-pairs strictly upper-triangular
//     DistanceMatrix used as linkage input by agglomerative clustering.
//
// Notes:
//   - DistanceMatrix stores only the n(n-1)/2 entries with j > i. Entries
//     with j <= i are unset: At reports ok=false for them, never a zero.

package linalg

import "math"

// Dist returns the Euclidean distance √Σ(v[i]-b[i])².
//
// Errors (both also match ErrInvalidInput):
//   - ErrEmptyInput when v has no elements.
//   - ErrDimensionMismatch when len(v) != len(b).
//
// Complexity:
//   - Time O(n), Space O(1).
func (v Vector) Dist(b Vector) (float64, error) {
	if len(v) == 0 {
		return 0, distErrorf(opVecDist, ErrEmptyInput)
	}
	if err := validateSameLen(v, b); err != nil {
		return 0, distErrorf(opVecDist, err)
	}

	return v.dist(b), nil
}

// dist assumes len(v) == len(b).
func (v Vector) dist(b Vector) float64 {
	var s, d float64
	for i := range v {
		d = v[i] - b[i]
		s += d * d
	}

	return math.Sqrt(s)
}

// Dist returns, for every row i of m, the distance from row i to b.
//
// Errors (both also match ErrInvalidInput):
//   - ErrEmptyInput when m has zero rows.
//   - ErrDimensionMismatch when len(b) != m.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m Matrix) Dist(b Vector) (Vector, error) {
	if m.r == 0 {
		return nil, distErrorf(opMatDist, ErrEmptyInput)
	}
	if err := validateBroadcast(m, b); err != nil {
		return nil, distErrorf(opMatDist, err)
	}

	out := make(Vector, m.r)
	for i := range out {
		out[i] = m.row(i).dist(b)
	}

	return out, nil
}

// DistanceMatrix is the strictly upper-triangular n×n table of Euclidean
// distances between the rows of a matrix.
type DistanceMatrix struct {
	n    int       // number of source rows
	data []float64 // packed upper triangle, row-major, length n(n-1)/2
}

// DistMatrix computes entry (i,j) = dist(row i, row j) for all 0 <= i < j < n.
// Implementation:
//   - Stage 1: allocate the packed triangle.
//   - Stage 2: fill it in i→j order, reusing row views (no per-row copies).
//
// Behavior highlights:
//   - n<2 yields a matrix with no set entries.
//
// Complexity:
//   - Time O(n²·c), Space O(n²/2).
func (m Matrix) DistMatrix() DistanceMatrix {
	n := m.r
	dm := DistanceMatrix{n: n, data: make([]float64, triangleLen(n))}

	var i, j int
	k := 0 // packed write cursor
	for i = 0; i < n; i++ {
		ri := m.row(i)
		for j = i + 1; j < n; j++ {
			dm.data[k] = ri.dist(m.row(j))
			k++
		}
	}

	return dm
}

// triangleLen returns n(n-1)/2 for n >= 2, else 0.
func triangleLen(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// offset maps (i,j) with 0 <= i < j < n to its packed index.
// Row i starts after rows 0..i-1, which hold (n-1)+(n-2)+...+(n-i) entries.
func (d DistanceMatrix) offset(i, j int) int {
	return i*(2*d.n-i-1)/2 + (j - i - 1)
}

// N returns the number of source rows (the table is N×N).
func (d DistanceMatrix) N() int { return d.n }

// At returns the distance stored at (i,j). ok is false for every unset
// entry (j <= i) and for indices outside [0, N).
func (d DistanceMatrix) At(i, j int) (float64, bool) {
	if i < 0 || j >= d.n || j <= i {
		return 0, false
	}

	return d.data[d.offset(i, j)], true
}

// Pair returns the distance between rows i and j regardless of their order.
// Returns ErrOutOfRange when i == j or either index is outside [0, N).
func (d DistanceMatrix) Pair(i, j int) (float64, error) {
	if i > j {
		i, j = j, i
	}
	v, ok := d.At(i, j)
	if !ok {
		return 0, linalgErrorf(opPair, ErrOutOfRange)
	}

	return v, nil
}

// Row returns a copy of the set entries of row i: the N-i-1 distances to
// rows j > i, in ascending j. The last row, and any out-of-range i, yields
// an empty Vector.
func (d DistanceMatrix) Row(i int) Vector {
	if i < 0 || i >= d.n-1 {
		return Vector{}
	}
	start := d.offset(i, i+1)

	return Vector(d.data[start : start+d.n-i-1]).Clone()
}

// Closest returns the pair (i,j), i<j, at minimum distance. Ties resolve to
// the first pair in row-major order. NaN entries are skipped; ok is false
// when N < 2 or every entry is NaN.
func (d DistanceMatrix) Closest() (i, j int, dist float64, ok bool) {
	k := 0
	for a := 0; a < d.n; a++ {
		for b := a + 1; b < d.n; b++ {
			v := d.data[k]
			k++
			if math.IsNaN(v) {
				continue
			}
			if !ok || v < dist {
				i, j, dist, ok = a, b, v, true
			}
		}
	}

	return i, j, dist, ok
}
