// SPDX-License-Identifier: MIT

package scalar

import "math"

// IsIntegral reports whether v is finite and has no fractional part.
func IsIntegral(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && v == math.Trunc(v)
}

// GCD returns the greatest common divisor of |a| and |b| for integral values.
// GCD(0, 0) is 0 and GCD(a, 0) is |a|. Non-integral or non-finite input yields 1,
// so callers that divide by the result never change a value.
func GCD(a, b float64) float64 {
	if !IsIntegral(a) || !IsIntegral(b) {
		return 1
	}
	a, b = math.Abs(a), math.Abs(b)
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}

	return a
}

// LCM returns the least common multiple of |a| and |b| (0 if either is 0).
// For non-integral input GCD is 1, so the result is |a*b|.
func LCM(a, b float64) float64 {
	if a == 0 || b == 0 {
		return 0
	}

	return math.Abs(a/GCD(a, b)) * math.Abs(b)
}
