// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecalg/scalar"

// Vec4 is a 4-component value vector (x, y, z, w). As a quaternion, w is
// the scalar part and (x, y, z) the vector part.
type Vec4[T scalar.Scalar[T]] [4]T

var _vec4Keys = []string{"x", "y", "z", "w"}

const _vec4 = "Vec4"

// NewVec4 returns (x, y, z, w).
func NewVec4[T scalar.Scalar[T]](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

func (v Vec4[T]) X() T { return v[0] }
func (v Vec4[T]) Y() T { return v[1] }
func (v Vec4[T]) Z() T { return v[2] }
func (v Vec4[T]) W() T { return v[3] }

// XYZ returns the vector part.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

func (v Vec4[T]) Len() int                { return 4 }
func (v Vec4[T]) At(i int) (T, error)     { return at(_vec4, v[:], i) }
func (v Vec4[T]) Components() []T         { return clone(v[:]) }
func (v Vec4[T]) Dot(o Vec4[T]) T         { return dot(v[:], o[:]) }
func (v Vec4[T]) Magnitude() T            { return magnitude(v[:]) }
func (v Vec4[T]) Magnitude2() T           { return dot(v[:], v[:]) }
func (v Vec4[T]) Distance(o Vec4[T]) T    { return distance(v[:], o[:]) }
func (v Vec4[T]) Angle(o Vec4[T]) float64 { return angle(v[:], o[:]) }
func (v Vec4[T]) Equal(o Vec4[T]) bool    { return approxEqual(v[:], o[:]) }
func (v Vec4[T]) String() string          { return format(_vec4, _vec4Keys, v[:]) }
func (v Vec4[T]) ToDynamic() *Dynamic[T]  { return NewDynamic(v[:]...) }

func (v Vec4[T]) Add(o Vec4[T]) (r Vec4[T]) { addInto(r[:], v[:], o[:]); return }
func (v Vec4[T]) Sub(o Vec4[T]) (r Vec4[T]) { subInto(r[:], v[:], o[:]); return }
func (v Vec4[T]) Min(o Vec4[T]) (r Vec4[T]) { minInto(r[:], v[:], o[:]); return }
func (v Vec4[T]) Max(o Vec4[T]) (r Vec4[T]) { maxInto(r[:], v[:], o[:]); return }
func (v Vec4[T]) AddScalar(s T) (r Vec4[T]) { addScalarInto(r[:], v[:], s); return }
func (v Vec4[T]) SubScalar(s T) (r Vec4[T]) { subScalarInto(r[:], v[:], s); return }
func (v Vec4[T]) MulScalar(s T) (r Vec4[T]) { scaleInto(r[:], v[:], s); return }
func (v Vec4[T]) Negate() (r Vec4[T])       { negInto(r[:], v[:]); return }

// Clamp clamps each component into the matching [lo, hi] components.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) (r Vec4[T]) {
	clampInto(r[:], v[:], lo[:], hi[:])
	return
}

// DivScalar divides every component by s.
// Errors: ErrDivisionByZero if s is exactly zero.
func (v Vec4[T]) DivScalar(s T) (Vec4[T], error) {
	var r Vec4[T]
	if err := divInto(r[:], v[:], s); err != nil {
		return Vec4[T]{}, vectorErrorf(_vec4, "DivScalar", err)
	}

	return r, nil
}

// Normalize returns v/|v|.
// Errors: ErrUnsupported if |v| is exactly zero.
func (v Vec4[T]) Normalize() (Vec4[T], error) {
	var r Vec4[T]
	if err := normalizeInto(r[:], v[:]); err != nil {
		return Vec4[T]{}, vectorErrorf(_vec4, "Normalize", err)
	}

	return r, nil
}

// Product returns the Hamilton product v*o with w as the scalar part:
//
//	w = w1w2 - x1x2 - y1y2 - z1z2
//	x = w1x2 + x1w2 + y1z2 - z1y2
//	y = w1y2 - x1z2 + y1w2 + z1x2
//	z = w1z2 + x1y2 - y1x2 + z1w2
//
// Not commutative.
func (v Vec4[T]) Product(o Vec4[T]) Vec4[T] {
	x1, y1, z1, w1 := v[0], v[1], v[2], v[3]
	x2, y2, z2, w2 := o[0], o[1], o[2], o[3]

	return Vec4[T]{
		w1.Mul(x2).Add(x1.Mul(w2)).Add(y1.Mul(z2)).Sub(z1.Mul(y2)),
		w1.Mul(y2).Sub(x1.Mul(z2)).Add(y1.Mul(w2)).Add(z1.Mul(x2)),
		w1.Mul(z2).Add(x1.Mul(y2)).Sub(y1.Mul(x2)).Add(z1.Mul(w2)),
		w1.Mul(w2).Sub(x1.Mul(x2)).Sub(y1.Mul(y2)).Sub(z1.Mul(z2)),
	}
}

// Mul is Product; it never fails for Vec4.
func (v Vec4[T]) Mul(o Vec4[T]) (Vec4[T], error) { return v.Product(o), nil }

// ParseVec4 parses Vec4{x=..., y=..., z=..., w=...}.
func ParseVec4[T scalar.Scalar[T]](s string) (Vec4[T], error) {
	var r Vec4[T]
	if err := parseInto(r[:], s, _vec4, _vec4Keys); err != nil {
		return Vec4[T]{}, err
	}

	return r, nil
}
