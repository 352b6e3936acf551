// SPDX-License-Identifier: MIT

package realnum

import "github.com/katalvlaran/vecalg/scalar"

// approxOne is Epsilon as a Number, used by ApproxEqual.
var approxOne = New(scalar.Epsilon)

// Compare returns -1, 0 or +1.
//
// Order: -Inf < negative < zero < positive < +Inf < NaN. Signs are
// compared first (this settles every non-finite case); equal finite
// signs compare exponent, then mantissa, with the direction flipped for
// negative values.
func (a Number) Compare(b Number) int {
	sa, sb := a.Sign(), b.Sign()
	if sa != sb || !sa.IsFinite() || sa == scalar.Zero {
		return cmp(float64(sa.Rank()), float64(sb.Rank()))
	}
	c := cmp(a.exp, b.exp)
	if c != 0 {
		if sa == scalar.Negative {
			return -c
		}
		return c
	}

	return cmp(a.mant, b.mant)
}

// Cmp is Compare; it satisfies scalar.Scalar.
func (a Number) Cmp(b Number) int { return a.Compare(b) }

// Equal reports exact equality of the normalized values.
func (a Number) Equal(b Number) bool { return a.Compare(b) == 0 }

// ApproxEqual reports |a-b| < Epsilon for |a| ≤ 1 and |a-b| < Epsilon·|a|
// above that, so values far outside float64 range still compare sensibly.
// Non-finite values are approximately equal only to the same non-finite state.
func (a Number) ApproxEqual(b Number) bool {
	if !a.IsFinite() || !b.IsFinite() {
		return a.Sign() == b.Sign()
	}
	tol := approxOne
	if mag := a.Abs(); mag.Compare(One) > 0 {
		tol = tol.Mul(mag)
	}

	return a.Sub(b).Abs().Compare(tol) < 0
}

// Min returns the smaller of a and b under Compare.
func Min(a, b Number) Number {
	if a.Compare(b) <= 0 {
		return a
	}

	return b
}

// Max returns the larger of a and b under Compare.
func Max(a, b Number) Number {
	if a.Compare(b) >= 0 {
		return a
	}

	return b
}

func cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
