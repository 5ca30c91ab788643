// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the linalg
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package linalg

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "linalg: ...". Operations wrap these
// sentinels with their tag via linalgErrorf, so a failure reads like
// "Vector.Dot: linalg: dimension mismatch" and still matches errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape -> empty input -> dimension mismatch -> index range.

var (
	// ErrEmptyInput is returned when a reduction or distance needs at least one
	// element (or row) and the operand has none (Mean, Min, Dist).
	ErrEmptyInput = errors.New("linalg: empty input")

	// ErrDimensionMismatch indicates incompatible operand lengths, e.g. Sub/Dot
	// on vectors of different length, or a broadcast vector whose length differs
	// from the matrix column count.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrInvalidShape is returned when a matrix is not rectangular (ragged rows),
	// when requested dimensions are negative, or when an operand of the wrong
	// rank reaches a rank-polymorphic facade.
	ErrInvalidShape = errors.New("linalg: invalid shape")

	// ErrInvalidInput groups the distance failures (empty operand or unequal
	// lengths). Dist errors match both this and the specific sentinel.
	ErrInvalidInput = errors.New("linalg: invalid input")

	// ErrOutOfRange indicates that a row, column or pair index is outside
	// valid bounds. Public indexers return this, never panic.
	ErrOutOfRange = errors.New("linalg: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion when finite-value
	// validation is enabled (see WithValidateNaNInf).
	ErrNaNInf = errors.New("linalg: NaN or Inf encountered")
)

// Operation name constants for unified error wrapping.
const (
	opNewVector  = "NewVector"
	opNewMatrix  = "NewMatrix"
	opNewZeros   = "NewZeros"
	opAt         = "Matrix.At"
	opRow        = "Matrix.Row"
	opVecMean    = "Vector.Mean"
	opMatMean    = "Matrix.Mean"
	opVecMin     = "Vector.Min"
	opMatMin     = "Matrix.Min"
	opVecSub     = "Vector.Sub"
	opMatSub     = "Matrix.Sub"
	opDot        = "Vector.Dot"
	opVecDist    = "Vector.Dist"
	opMatDist    = "Matrix.Dist"
	opPair       = "DistanceMatrix.Pair"
	opESS        = "Matrix.ESS"
	opStack      = "Stack"
	opMergeCost  = "MergeCost"
	opFacade     = "Array"
	opFacadeSub  = "Sub"
	opFacadeDist = "Dist"
)

// linalgErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// distErrorf wraps a distance failure so that it matches both ErrInvalidInput
// and the specific cause (ErrEmptyInput or ErrDimensionMismatch).
func distErrorf(tag string, cause error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidInput, cause)
}
