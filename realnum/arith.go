// SPDX-License-Identifier: MIT

package realnum

import "math"

// Add returns a + b.
//
// Implementation:
//   - Stage 1: zero operands short-circuit, so aligning never flushes the
//     other operand to zero through a meaningless exponent of 0.
//   - Stage 2: non-finite operands combine through their mantissas
//     (Inf + finite = Inf, Inf + -Inf = NaN).
//   - Stage 3: align to the larger exponent, scale each mantissa by
//     2^(e - max), add, renormalize.
func (a Number) Add(b Number) Number {
	switch {
	case a.IsZero():
		return b
	case b.IsZero():
		return a
	case !a.IsFinite() || !b.IsFinite():
		return New(a.mant + b.mant)
	}
	top := math.Max(a.exp, b.exp)
	ma := a.mant * math.Exp2(a.exp-top)
	mb := b.mant * math.Exp2(b.exp-top)

	return normalize(top, ma+mb)
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number { return a.Add(b.Neg()) }

// Mul multiplies mantissas, sums exponents and renormalizes.
func (a Number) Mul(b Number) Number {
	if !a.IsFinite() || !b.IsFinite() {
		return New(a.mant * b.mant)
	}

	return normalize(a.exp+b.exp, a.mant*b.mant)
}

// Div divides mantissas, subtracts exponents and renormalizes.
// A zero divisor yields ErrDivisionByZero; dividing a NaN or infinity
// by a non-zero value follows IEEE rules.
func (a Number) Div(b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, numberErrorf("Div", ErrDivisionByZero)
	}
	if !a.IsFinite() || !b.IsFinite() {
		return New(a.mant / b.mant), nil
	}

	return normalize(a.exp-b.exp, a.mant/b.mant), nil
}

// Quo is Div; it satisfies scalar.Scalar.
func (a Number) Quo(b Number) (Number, error) { return a.Div(b) }

// Neg returns -a.
func (a Number) Neg() Number {
	if a.IsZero() {
		return Zero
	}

	return Number{exp: a.exp, mant: -a.mant}
}

// Abs returns |a|.
func (a Number) Abs() Number { return Number{exp: a.exp, mant: math.Abs(a.mant)} }

// Pow2 multiplies a by 2^n in O(1) by shifting the exponent.
func (a Number) Pow2(n float64) Number {
	if a.IsZero() || !a.IsFinite() {
		return a
	}

	return normalize(a.exp+n, a.mant)
}

// Halve divides a by 2^n in O(1) by shifting the exponent.
func (a Number) Halve(n float64) Number { return a.Pow2(-n) }

// Sqrt returns √a after exactly SqrtIterations Newton steps
// g ← (g + a/g) / 2, starting from g = (exponent/2, mantissa).
// Zero maps to zero, +Inf to +Inf, negative values and NaN to NaN.
func (a Number) Sqrt() Number {
	switch {
	case a.IsZero():
		return Zero
	case math.IsNaN(a.mant) || a.mant < 0:
		return NaN()
	case math.IsInf(a.mant, 1):
		return a
	}
	// The guess is deliberately left unnormalized: a half-integral exponent
	// is a legal intermediate and normalize folds it on the first Add.
	g := Number{exp: a.exp / 2, mant: a.mant}
	for i := 0; i < SqrtIterations; i++ {
		q, _ := a.Div(g) // g > 0 on every step
		g = g.Add(q).Halve(1)
	}

	return g
}

// PowInt returns a^n by binary exponentiation. Negative n divides, so
// zero to a negative power yields ErrDivisionByZero.
func (a Number) PowInt(n int) (Number, error) {
	if n < 0 {
		p, err := a.PowInt(-n)
		if err != nil {
			return Number{}, err
		}
		return One.Div(p)
	}
	result, base := One, a
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}

	return result, nil
}
