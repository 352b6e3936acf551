// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecalg/scalar"

// Vec2 is a 2-component value vector (x, y).
type Vec2[T scalar.Scalar[T]] [2]T

var _vec2Keys = []string{"x", "y"}

const _vec2 = "Vec2"

// NewVec2 returns (x, y).
func NewVec2[T scalar.Scalar[T]](x, y T) Vec2[T] { return Vec2[T]{x, y} }

func (v Vec2[T]) X() T { return v[0] }
func (v Vec2[T]) Y() T { return v[1] }

func (v Vec2[T]) Len() int                { return 2 }
func (v Vec2[T]) At(i int) (T, error)     { return at(_vec2, v[:], i) }
func (v Vec2[T]) Components() []T         { return clone(v[:]) }
func (v Vec2[T]) Dot(o Vec2[T]) T         { return dot(v[:], o[:]) }
func (v Vec2[T]) Magnitude() T            { return magnitude(v[:]) }
func (v Vec2[T]) Magnitude2() T           { return dot(v[:], v[:]) }
func (v Vec2[T]) Distance(o Vec2[T]) T    { return distance(v[:], o[:]) }
func (v Vec2[T]) Angle(o Vec2[T]) float64 { return angle(v[:], o[:]) }
func (v Vec2[T]) Equal(o Vec2[T]) bool    { return approxEqual(v[:], o[:]) }
func (v Vec2[T]) String() string          { return format(_vec2, _vec2Keys, v[:]) }
func (v Vec2[T]) ToDynamic() *Dynamic[T]  { return NewDynamic(v[:]...) }

func (v Vec2[T]) Add(o Vec2[T]) (r Vec2[T]) { addInto(r[:], v[:], o[:]); return }
func (v Vec2[T]) Sub(o Vec2[T]) (r Vec2[T]) { subInto(r[:], v[:], o[:]); return }
func (v Vec2[T]) Min(o Vec2[T]) (r Vec2[T]) { minInto(r[:], v[:], o[:]); return }
func (v Vec2[T]) Max(o Vec2[T]) (r Vec2[T]) { maxInto(r[:], v[:], o[:]); return }
func (v Vec2[T]) AddScalar(s T) (r Vec2[T]) { addScalarInto(r[:], v[:], s); return }
func (v Vec2[T]) SubScalar(s T) (r Vec2[T]) { subScalarInto(r[:], v[:], s); return }
func (v Vec2[T]) MulScalar(s T) (r Vec2[T]) { scaleInto(r[:], v[:], s); return }
func (v Vec2[T]) Negate() (r Vec2[T])       { negInto(r[:], v[:]); return }

// Clamp clamps each component into the matching [lo, hi] components.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) (r Vec2[T]) {
	clampInto(r[:], v[:], lo[:], hi[:])
	return
}

// DivScalar divides every component by s.
// Errors: ErrDivisionByZero if s is exactly zero.
func (v Vec2[T]) DivScalar(s T) (Vec2[T], error) {
	var r Vec2[T]
	if err := divInto(r[:], v[:], s); err != nil {
		return Vec2[T]{}, vectorErrorf(_vec2, "DivScalar", err)
	}

	return r, nil
}

// Normalize returns v/|v|.
// Errors: ErrUnsupported if |v| is exactly zero.
func (v Vec2[T]) Normalize() (Vec2[T], error) {
	var r Vec2[T]
	if err := normalizeInto(r[:], v[:]); err != nil {
		return Vec2[T]{}, vectorErrorf(_vec2, "Normalize", err)
	}

	return r, nil
}

// Product treats v and o as complex numbers x+iy and returns v*o.
func (v Vec2[T]) Product(o Vec2[T]) Vec2[T] {
	return Vec2[T]{
		v[0].Mul(o[0]).Sub(v[1].Mul(o[1])),
		v[0].Mul(o[1]).Add(v[1].Mul(o[0])),
	}
}

// Mul is Product; it never fails for Vec2.
func (v Vec2[T]) Mul(o Vec2[T]) (Vec2[T], error) { return v.Product(o), nil }

// Det returns the z component of the 3-D cross product of (x, y, 0) vectors.
func (v Vec2[T]) Det(o Vec2[T]) T { return v[0].Mul(o[1]).Sub(v[1].Mul(o[0])) }

// Perp returns v rotated by +90 degrees.
func (v Vec2[T]) Perp() Vec2[T] { return Vec2[T]{v[1].Neg(), v[0]} }

// ParseVec2 parses Vec2{x=..., y=...}.
func ParseVec2[T scalar.Scalar[T]](s string) (Vec2[T], error) {
	var r Vec2[T]
	if err := parseInto(r[:], s, _vec2, _vec2Keys); err != nil {
		return Vec2[T]{}, err
	}

	return r, nil
}
