// SPDX-License-Identifier: MIT

package fraction

import (
	"math"

	"github.com/katalvlaran/vecalg/scalar"
)

// Add returns f + o over the least common multiple of the denominators.
//
// Implementation:
//   - Stage 1: reject non-finite operands (ErrNonFinite).
//   - Stage 2: l = lcm(d1, d2); rescale each numerator by l/di.
//   - Stage 3: return (n1' + n2') / l, unsimplified.
//
// Non-integral denominators have gcd 1, so l degrades to |d1*d2|. When l or
// the combined numerator leaves the finite non-zero range of float64, Add
// fails with ErrArithmetic so the result fields stay finite.
func (f Fraction) Add(o Fraction) (Fraction, error) {
	if !f.IsFinite() || !o.IsFinite() {
		return Fraction{}, fractionErrorf("Add", ErrNonFinite)
	}
	l := scalar.LCM(f.den, o.den)
	n := f.num*(l/f.den) + o.num*(l/o.den)
	if l == 0 || !isFinite(l) || !isFinite(n) {
		return Fraction{}, fractionErrorf("Add", ErrArithmetic)
	}

	return ratio(n, l), nil
}

// Sub returns f - o; see Add.
func (f Fraction) Sub(o Fraction) (Fraction, error) {
	if !f.IsFinite() || !o.IsFinite() {
		return Fraction{}, fractionErrorf("Sub", ErrNonFinite)
	}

	return f.Add(o.Negate())
}

// Mul cross-multiplies: (n1*n2)/(d1*d2). Non-finite operands propagate.
func (f Fraction) Mul(o Fraction) Fraction {
	return NewRatio(f.num*o.num, f.den*o.den)
}

// Div returns f * o.Reciprocal(). A divisor with a zero numerator
// (zero or 0/0) yields ErrDivisionByZero.
func (f Fraction) Div(o Fraction) (Fraction, error) {
	if o.num == 0 {
		return Fraction{}, fractionErrorf("Div", ErrDivisionByZero)
	}

	return f.Mul(o.Reciprocal()), nil
}

// Reciprocal swaps the fields; the reciprocal of zero is the non-finite 1/0 form.
func (f Fraction) Reciprocal() Fraction { return ratio(f.den, f.num) }

// Negate returns -f.
func (f Fraction) Negate() Fraction { return ratio(-f.num, f.den) }

// Abs returns |f|.
func (f Fraction) Abs() Fraction { return ratio(math.Abs(f.num), math.Abs(f.den)) }

// Simplify divides both fields by their gcd and moves the sign onto the
// numerator. 0/0 is returned unchanged; n/0 becomes ±1/0; 0/d becomes 0/1.
func (f Fraction) Simplify() Fraction {
	g := scalar.GCD(f.num, f.den)
	if g == 0 {
		return f
	}
	n, d := f.num/g, f.den/g
	if d < 0 {
		n, d = -n, -d
	}

	return ratio(n, d)
}

// Rescale multiplies both fields by s, leaving the value unchanged.
// s must be finite and non-zero (ErrArithmetic otherwise).
func (f Fraction) Rescale(s float64) (Fraction, error) {
	if s == 0 || !isFinite(s) {
		return Fraction{}, fractionErrorf("Rescale", ErrArithmetic)
	}

	return NewRatio(f.num*s, f.den*s), nil
}

// AddFloat, SubFloat, MulFloat and DivFloat combine f with a plain value v,
// treating it as New(v).

func (f Fraction) AddFloat(v float64) (Fraction, error) { return f.Add(New(v)) }
func (f Fraction) SubFloat(v float64) (Fraction, error) { return f.Sub(New(v)) }
func (f Fraction) MulFloat(v float64) Fraction          { return f.Mul(New(v)) }
func (f Fraction) DivFloat(v float64) (Fraction, error) { return f.Div(New(v)) }
