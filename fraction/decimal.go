// SPDX-License-Identifier: MIT

package fraction

import (
	"math"

	"github.com/katalvlaran/vecalg/scalar"
)

// RepeatPrecision bounds the number of fractional digits IsRepeating
// examines before giving up.
const RepeatPrecision = 64

// maxScaleSteps bounds the powers of ten tried when turning decimal fields
// into integers; float64 carries at most 17 significant digits.
const maxScaleSteps = 17

// maxExactDen is the largest denominator for which remainder*10 stays exact.
const maxExactDen = 1 << 49

// IsRational reports whether f converts exactly to a decimal, i.e. its
// decimal expansion terminates. Non-finite values and values such as 1/3
// are reported as not rational.
func (f Fraction) IsRational() bool {
	_, d, ok := f.integral()
	if !ok {
		return false
	}
	for _, p := range [...]float64{2, 5} {
		for math.Mod(d, p) == 0 {
			d /= p
		}
	}

	return d == 1
}

// IsRepeating reports whether the decimal expansion of f has a recurring
// cycle that starts within RepeatPrecision digits. Terminating expansions
// and non-finite values are not repeating.
//
// Implementation: long division on the integral, simplified fields; a cycle
// exists as soon as a non-zero remainder recurs.
func (f Fraction) IsRepeating() bool {
	n, d, ok := f.integral()
	if !ok || d > maxExactDen {
		return false
	}
	den := int64(d)
	rem := int64(math.Mod(math.Abs(n), d))
	seen := make(map[int64]struct{}, RepeatPrecision)
	for i := 0; i < RepeatPrecision && rem != 0; i++ {
		if _, dup := seen[rem]; dup {
			return true
		}
		seen[rem] = struct{}{}
		rem = rem * 10 % den
	}

	return false
}

// integral returns the simplified fields scaled to integers with a
// positive denominator, or ok=false when f is non-finite or cannot be scaled.
func (f Fraction) integral() (n, d float64, ok bool) {
	if !f.IsFinite() {
		return 0, 0, false
	}
	s := f.Simplify()
	n, d = s.num, s.den
	for i := 0; i <= maxScaleSteps; i++ {
		if scalar.IsIntegral(n) && scalar.IsIntegral(d) {
			r := ratio(n, d).Simplify()
			return r.num, r.den, true
		}
		n, d = n*10, d*10
	}

	return 0, 0, false
}

// Approximate returns the best rational approximation of x whose
// denominator does not exceed maxDen, using continued-fraction convergents.
// Non-finite x maps to the matching non-finite state. maxDen < 1 is
// rejected with ErrArithmetic.
func Approximate(x, maxDen float64) (Fraction, error) {
	if maxDen < 1 || !isFinite(maxDen) {
		return Fraction{}, fractionErrorf("Approximate", ErrArithmetic)
	}
	if !isFinite(x) {
		return New(x), nil
	}
	h0, h1 := 0.0, 1.0 // numerators of the last two convergents
	k0, k1 := 1.0, 0.0 // denominators of the last two convergents
	v := x
	for i := 0; i < 64; i++ {
		a := math.Floor(v)
		h2, k2 := a*h1+h0, a*k1+k0
		if k2 > maxDen {
			break
		}
		h0, h1, k0, k1 = h1, h2, k1, k2
		frac := v - a
		if frac < 1e-12 {
			break
		}
		v = 1 / frac
	}
	if k1 == 0 {
		// maxDen too small for even the first convergent; fall back to floor.
		return New(math.Floor(x)), nil
	}

	return ratio(h1, k1), nil
}
