// SPDX-License-Identifier: MIT

package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Epsilon is the absolute tolerance used wherever two floats are compared.
const Epsilon = 1e-6

// Number is any native integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Equals reports whether |a-b| < Epsilon.
// Identical values (including same-signed infinities) are equal; NaN equals nothing.
func Equals(a, b float64) bool {
	return EqualsWithin(a, b, Epsilon)
}

// EqualsWithin is Equals with an explicit tolerance.
func EqualsWithin(a, b, eps float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) < eps
}

// IsZero reports whether |v| < Epsilon.
func IsZero(v float64) bool { return math.Abs(v) < Epsilon }

// Clamp limits v to [lo, hi]. Bounds given in the wrong order are swapped.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// MinOf returns the smallest of values; the zero value when values is empty.
func MinOf[T constraints.Ordered](values ...T) T {
	var out T
	for i, v := range values {
		if i == 0 || v < out {
			out = v
		}
	}

	return out
}

// MaxOf returns the largest of values; the zero value when values is empty.
func MaxOf[T constraints.Ordered](values ...T) T {
	var out T
	for i, v := range values {
		if i == 0 || v > out {
			out = v
		}
	}

	return out
}

// Abs returns |v| for any native number.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}
