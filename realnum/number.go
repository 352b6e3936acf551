// SPDX-License-Identifier: MIT

package realnum

import (
	"math"

	"github.com/katalvlaran/vecalg/scalar"
)

// SqrtIterations is the fixed number of Newton steps taken by Sqrt.
const SqrtIterations = 3

// exponent bounds beyond which Float64 saturates.
const (
	maxFloatExp = 1100
	minFloatExp = -1100
)

// Number is 2^exp * mant. The zero value is the number zero.
type Number struct {
	exp  float64
	mant float64
}

// Common values.
var (
	Zero = Number{}
	One  = Number{exp: 0, mant: 1}
	Two  = Number{exp: 1, mant: 1}
)

// Compile-time conformance: Number is a vector component type.
var _ scalar.Scalar[Number] = Number{}

// New converts a native float: exponent = binary exponent of x,
// mantissa = x / 2^exponent.
func New(x float64) Number {
	if x == 0 {
		return Zero
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Number{mant: x}
	}
	frac, e := math.Frexp(x) // frac in [0.5, 1)

	return Number{exp: float64(e - 1), mant: frac * 2}
}

// NewParts returns the normalized form of 2^exp * mant.
func NewParts(exp, mant float64) Number { return normalize(exp, mant) }

// NaN returns the not-a-number value.
func NaN() Number { return Number{mant: math.NaN()} }

// Inf returns +Inf for sign >= 0 and -Inf otherwise.
func Inf(sign int) Number { return Number{mant: math.Inf(sign)} }

// normalize brings (e, m) to canonical form.
//
// Implementation:
//   - Stage 1: handle zero and non-finite mantissa / exponent.
//   - Stage 2: fold a fractional exponent into the mantissa.
//   - Stage 3: one Frexp moves |m| into [1, 2) regardless of how far off it was.
func normalize(e, m float64) Number {
	switch {
	case m == 0:
		return Zero
	case math.IsNaN(e):
		return NaN()
	case math.IsNaN(m) || math.IsInf(m, 0):
		return Number{mant: m}
	case math.IsInf(e, 1):
		return Number{mant: math.Copysign(math.Inf(1), m)}
	case math.IsInf(e, -1):
		return Zero
	}
	if fl := math.Floor(e); fl != e {
		m *= math.Exp2(e - fl)
		e = fl
	}
	frac, k := math.Frexp(m)

	return Number{exp: e + float64(k-1), mant: frac * 2}
}

// Exponent returns the stored binary exponent.
func (a Number) Exponent() float64 { return a.exp }

// Mantissa returns the stored mantissa.
func (a Number) Mantissa() float64 { return a.mant }

// Float64 converts back to a native double, saturating to ±Inf or ±0
// outside the float64 range.
func (a Number) Float64() float64 {
	if !a.IsFinite() || a.mant == 0 {
		return a.mant
	}
	switch {
	case a.exp > maxFloatExp:
		return math.Copysign(math.Inf(1), a.mant)
	case a.exp < minFloatExp:
		return math.Copysign(0, a.mant)
	}
	if a.exp == math.Trunc(a.exp) {
		return math.Ldexp(a.mant, int(a.exp))
	}

	return a.mant * math.Exp2(a.exp)
}

// FromFloat64 is New; it lets Number act as a scalar.Scalar component.
func (Number) FromFloat64(x float64) Number { return New(x) }

// Log2 returns log2|a| as a float64, valid far beyond the float64 range.
func (a Number) Log2() float64 {
	if !a.IsFinite() || a.mant == 0 {
		return math.Log2(math.Abs(a.mant))
	}

	return a.exp + math.Log2(math.Abs(a.mant))
}

// Sign classifies a.
func (a Number) Sign() scalar.Sign { return scalar.SignOf(a.mant) }

// IsZero reports whether a is exactly zero.
func (a Number) IsZero() bool { return a.mant == 0 }

// IsFinite reports whether a is neither infinite nor NaN.
func (a Number) IsFinite() bool { return !math.IsNaN(a.mant) && !math.IsInf(a.mant, 0) }
