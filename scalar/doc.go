// SPDX-License-Identifier: MIT

// Package scalar holds the numeric helpers every other package builds on.
//
// What lives here:
//   - Epsilon-based equality (Equals), Clamp/Min/Max over ordered types.
//   - Sign classification of float64 values and its total product table.
//   - Factorial via a precomputed int64 table, Gamma via a 9-term Lanczos series.
//   - GCD/LCM on integral float64 values (used by fraction arithmetic).
//   - The Scalar[T] component contract and the native component types
//     F64, F32, I32 and I64 that satisfy it.
//
// Determinism & Concurrency:
//   - Every function is pure; there is no package state. Safe for concurrent use.
//
// Errors:
//   - ErrOverflow: integer factorial outside the table.
//   - ErrDomain: negative integer factorial.
//   - ErrDivisionByZero: Quo with a zero divisor on any component type.
//   - ErrSyntax: Parse on malformed numeric text.
package scalar
