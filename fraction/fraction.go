// SPDX-License-Identifier: MIT

package fraction

import (
	"math"

	"github.com/katalvlaran/vecalg/scalar"
)

// Fraction is numerator/denominator with both fields finite.
// The zero value is 0/0 (NaN); use Zero or New(0) for the number zero.
type Fraction struct {
	num float64
	den float64
}

// Common values.
var (
	Zero = Fraction{num: 0, den: 1}
	One  = Fraction{num: 1, den: 1}
)

// New returns value/1. Non-finite input maps onto the canonical
// non-finite states 1/0, -1/0 and 0/0 so that fields stay finite.
func New(value float64) Fraction {
	switch {
	case math.IsNaN(value):
		return Fraction{num: 0, den: 0}
	case math.IsInf(value, 1):
		return Fraction{num: 1, den: 0}
	case math.IsInf(value, -1):
		return Fraction{num: -1, den: 0}
	}

	return ratio(value, 1)
}

// NewRatio stores n and d verbatim (no simplification).
// If either argument is itself non-finite, the result is New(n/d).
func NewRatio(n, d float64) Fraction {
	if !isFinite(n) || !isFinite(d) {
		return New(n / d)
	}

	return ratio(n, d)
}

// ratio builds a Fraction from finite fields, folding -0 into +0 so that
// the sign of a zero field never leaks into Float64.
func ratio(n, d float64) Fraction {
	if n == 0 {
		n = 0
	}
	if d == 0 {
		d = 0
	}

	return Fraction{num: n, den: d}
}

// Numerator returns the stored numerator.
func (f Fraction) Numerator() float64 { return f.num }

// Denominator returns the stored denominator.
func (f Fraction) Denominator() float64 { return f.den }

// Float64 collapses f to n/d; 1/0 is +Inf, -1/0 is -Inf, 0/0 is NaN.
func (f Fraction) Float64() float64 { return f.num / f.den }

// Sign classifies the value of f.
func (f Fraction) Sign() scalar.Sign { return scalar.SignOf(f.Float64()) }

// IsFinite reports whether the denominator is non-zero.
func (f Fraction) IsFinite() bool { return f.den != 0 }

func isFinite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }
