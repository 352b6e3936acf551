// SPDX-License-Identifier: MIT

package fraction

import "github.com/katalvlaran/vecalg/scalar"

// Compare returns -1, 0 or +1 under the package total order
// -Inf < finite < +Inf < NaN. Finite values are equal within scalar.Epsilon.
func (f Fraction) Compare(o Fraction) int {
	sa, sb := f.Sign(), o.Sign()
	if !sa.IsFinite() || !sb.IsFinite() {
		return cmpInt(sa.Rank(), sb.Rank())
	}
	a, b := f.Float64(), o.Float64()
	switch {
	case scalar.Equals(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// Equal reports Compare(o) == 0: every 0/0 equals every other 0/0, every
// n/0 with n > 0 equals every other, and so on.
func (f Fraction) Equal(o Fraction) bool { return f.Compare(o) == 0 }

// StrictEqual reports field-wise identity: 1/2 and 2/4 are not strictly equal.
func (f Fraction) StrictEqual(o Fraction) bool { return f.num == o.num && f.den == o.den }

// Less reports f < o under Compare; handy for sort.Slice.
func (f Fraction) Less(o Fraction) bool { return f.Compare(o) < 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
