// SPDX-License-Identifier: MIT

// Package fraction implements Fraction, an exact two-field rational over
// float64 components.
//
// Non-finite values are legal states, not errors:
//
//	NewRatio(1, 0)  // +Inf
//	NewRatio(-3, 0) // -Inf
//	NewRatio(0, 0)  // NaN
//
// Only arithmetic that needs a finite operand rejects them: Add and Sub
// return ErrNonFinite, Div returns ErrDivisionByZero when the divisor's
// numerator is zero. Construction never fails and never simplifies.
//
// Equality and ordering collapse to the float64 value (Float64). All
// non-finite states of the same kind compare equal, and the single total
// order used everywhere is:
//
//	-Inf < finite values < +Inf < NaN
//
// Finite values within scalar.Epsilon of each other compare equal.
// StrictEqual compares raw fields instead.
//
// Text form: "numerator/denominator" (see String and Parse).
package fraction
