// SPDX-License-Identifier: MIT
// Package: linalg
//
// Purpose:
//   - Rank-polymorphic facades over the Array union. Each facade resolves
//     the variant once with a type switch and delegates to the per-variant
//     method; no operation inspects element types at run time.
//
// Exposed API:
//   - Mean(x)    -> Scalar (Vector input) or Vector (Matrix input)
//   - Sum(x)     -> float64
//   - Min(x)     -> float64
//   - Sub(a, b)  -> Vector or Matrix (same variant as a)
//   - Pow(x, p)  -> same variant as x
//   - Dist(a, b) -> Scalar (Vector input) or Vector (Matrix input)
//
// Errors:
//   - ErrInvalidShape for a nil operand, or a Scalar where a Vector/Matrix is required.
//   - Otherwise whatever the delegated method returns.

package linalg

import "math"

// Mean dispatches to Vector.Mean or Matrix.Mean.
func Mean(x Array) (Array, error) {
	switch t := x.(type) {
	case Vector:
		m, err := t.Mean()
		if err != nil {
			return nil, err
		}
		return Scalar(m), nil
	case Matrix:
		m, err := t.Mean()
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, linalgErrorf(opFacade, ErrInvalidShape)
	}
}

// Sum dispatches to Vector.Sum or Matrix.Sum. A Scalar sums to itself.
func Sum(x Array) (float64, error) {
	switch t := x.(type) {
	case Scalar:
		return float64(t), nil
	case Vector:
		return t.Sum(), nil
	case Matrix:
		return t.Sum(), nil
	default:
		return 0, linalgErrorf(opFacade, ErrInvalidShape)
	}
}

// Min dispatches to Vector.Min or Matrix.Min. A Scalar is its own minimum.
func Min(x Array) (float64, error) {
	switch t := x.(type) {
	case Scalar:
		return float64(t), nil
	case Vector:
		return t.Min()
	case Matrix:
		return t.Min()
	default:
		return 0, linalgErrorf(opFacade, ErrInvalidShape)
	}
}

// Sub dispatches to Vector.Sub or Matrix.Sub (row broadcast).
func Sub(a Array, b Vector) (Array, error) {
	switch t := a.(type) {
	case Vector:
		v, err := t.Sub(b)
		if err != nil {
			return nil, err
		}
		return v, nil
	case Matrix:
		m, err := t.Sub(b)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, linalgErrorf(opFacadeSub, ErrInvalidShape)
	}
}

// Pow dispatches to Vector.Pow or Matrix.Pow; a Scalar is raised directly.
func Pow(x Array, p float64) (Array, error) {
	switch t := x.(type) {
	case Scalar:
		return Scalar(math.Pow(float64(t), p)), nil
	case Vector:
		return t.Pow(p), nil
	case Matrix:
		return t.Pow(p), nil
	default:
		return nil, linalgErrorf(opFacade, ErrInvalidShape)
	}
}

// Dist dispatches to Vector.Dist or Matrix.Dist.
func Dist(a Array, b Vector) (Array, error) {
	switch t := a.(type) {
	case Vector:
		d, err := t.Dist(b)
		if err != nil {
			return nil, err
		}
		return Scalar(d), nil
	case Matrix:
		d, err := t.Dist(b)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, linalgErrorf(opFacadeDist, ErrInvalidShape)
	}
}
