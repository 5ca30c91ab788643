// SPDX-License-Identifier: MIT

// Package linalg: value types and constructors.
// This file contains the rank variants (Scalar, Vector, Matrix), the sealed
// Array union over them, and the constructors that enforce rectangularity.

package linalg

import "slices"

// Ranks reported by Array.Rank.
const (
	RankScalar = 0
	RankVector = 1
	RankMatrix = 2
)

// Array is the sealed union {Scalar, Vector, Matrix}.
// Only types of this package implement it; rank-polymorphic facades
// (Mean, Sum, Min, Sub, Pow, Dist) resolve the variant once via a type switch.
type Array interface {
	// Rank returns 0 for Scalar, 1 for Vector and 2 for Matrix.
	Rank() int

	// array seals the interface.
	array()
}

// Scalar is a rank-0 value. It appears as the result of facades that reduce
// a Vector to a single number (e.g. Mean of a Vector).
type Scalar float64

// Rank implements Array.
func (Scalar) Rank() int { return RankScalar }
func (Scalar) array() {}

// Vector is an ordered, fixed-length sequence of float64.
// Operations never mutate a Vector; every result is freshly allocated.
type Vector []float64

// Rank implements Array.
func (Vector) Rank() int { return RankVector }
func (Vector) array() {}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy of v (nil stays nil).
func (v Vector) Clone() Vector { return slices.Clone(v) }

// Matrix is a rectangular, row-major table of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is a valid 0×0 matrix. A Matrix is rectangular by
// construction: the only way to build one from rows is NewMatrix, which
// rejects ragged input.
type Matrix struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Rank implements Array.
func (Matrix) Rank() int { return RankMatrix }
func (Matrix) array() {}

// NewVector copies values into a new Vector.
// Inputs:
//   - values: source elements (nil or empty yields an empty Vector).
//   - opts: ingestion policy (WithValidateNaNInf).
//
// Errors:
//   - ErrNaNInf when validation is enabled and a non-finite value is present.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector(values []float64, opts ...Option) (Vector, error) {
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		if err := validateFinite(values); err != nil {
			return nil, linalgErrorf(opNewVector, err)
		}
	}

	out := make(Vector, len(values))
	copy(out, values)

	return out, nil
}

// NewMatrix copies rows into a new rectangular Matrix.
// Implementation:
//   - Stage 1: validate that every row has the length of rows[0].
//   - Stage 2: optionally validate finiteness.
//   - Stage 3: copy into a single row-major buffer.
//
// Behavior highlights:
//   - Zero rows yields a 0×0 matrix; rows of zero length yield an r×0 matrix.
//
// Errors:
//   - ErrInvalidShape for ragged rows.
//   - ErrNaNInf when validation is enabled and a non-finite value is present.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows [][]float64, opts ...Option) (Matrix, error) {
	// Stage 1 (Validate): eager rectangularity check.
	c, err := validateRectangular(rows)
	if err != nil {
		return Matrix{}, linalgErrorf(opNewMatrix, err)
	}

	// Stage 2 (Policy): finite values only, when requested.
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for _, row := range rows {
			if err = validateFinite(row); err != nil {
				return Matrix{}, linalgErrorf(opNewMatrix, err)
			}
		}
	}

	// Stage 3 (Copy): flatten into row-major storage.
	r := len(rows)
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}

	return Matrix{r: r, c: c, data: data}, nil
}

// NewZeros creates an r×c matrix of zeros. Zero dimensions are allowed.
// Returns ErrInvalidShape if rows<0 or cols<0.
func NewZeros(rows, cols int) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return Matrix{}, linalgErrorf(opNewZeros, ErrInvalidShape)
	}

	return Matrix{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m Matrix) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m Matrix) Cols() int { return m.c }

// At retrieves the element at position (i, j).
// Returns ErrOutOfRange if i or j is outside the matrix.
func (m Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, linalgErrorf(opAt, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Row returns a copy of row i.
// Returns ErrOutOfRange if i is outside [0, Rows()).
func (m Matrix) Row(i int) (Vector, error) {
	if i < 0 || i >= m.r {
		return nil, linalgErrorf(opRow, ErrOutOfRange)
	}

	return m.row(i).Clone(), nil
}

// row returns a read-only view of row i. The caller guarantees 0 <= i < r.
func (m Matrix) row(i int) Vector {
	base := i * m.c

	return Vector(m.data[base : base+m.c : base+m.c])
}

// ToRows returns the matrix as freshly allocated rows.
func (m Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.row(i).Clone()
	}

	return out
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	return Matrix{r: m.r, c: m.c, data: slices.Clone(m.data)}
}

// Len returns the number of stored elements (Rows*Cols).
func (m Matrix) Len() int { return len(m.data) }
