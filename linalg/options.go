// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for Vector/Matrix ingestion.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Notes:
//   - Options apply ONLY to constructors (NewVector, NewMatrix). Results of
//     computations are never validated: Pow of a negative base with a
//     fractional exponent yields NaN, exactly as math.Pow does.

package linalg

// ---------- Defaults (single source of truth) ----------

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion.
const DefaultValidateNaNInf = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation.
// Implementation:
//   - Stage 1: set validateNaNInf=true.
//
// Behavior highlights:
//   - NaN, +Inf and -Inf are rejected by NewVector/NewMatrix with ErrNaNInf.
//
// Complexity:
//   - Time O(1), Space O(1). The check itself costs O(n) at construction.
//
// AI-Hints:
//   - Enable in clustering pipelines: a single NaN poisons every ESS and
//     every distance it touches.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation (the default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{validateNaNInf: DefaultValidateNaNInf}
}

// gatherOptions applies opts over the defaults in order; later options win.
// nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
