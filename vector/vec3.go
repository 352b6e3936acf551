// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/vecalg/scalar"

// Vec3 is a 3-component value vector (x, y, z).
type Vec3[T scalar.Scalar[T]] [3]T

var _vec3Keys = []string{"x", "y", "z"}

const _vec3 = "Vec3"

// NewVec3 returns (x, y, z).
func NewVec3[T scalar.Scalar[T]](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

func (v Vec3[T]) X() T { return v[0] }
func (v Vec3[T]) Y() T { return v[1] }
func (v Vec3[T]) Z() T { return v[2] }

func (v Vec3[T]) Len() int                { return 3 }
func (v Vec3[T]) At(i int) (T, error)     { return at(_vec3, v[:], i) }
func (v Vec3[T]) Components() []T         { return clone(v[:]) }
func (v Vec3[T]) Dot(o Vec3[T]) T         { return dot(v[:], o[:]) }
func (v Vec3[T]) Magnitude() T            { return magnitude(v[:]) }
func (v Vec3[T]) Magnitude2() T           { return dot(v[:], v[:]) }
func (v Vec3[T]) Distance(o Vec3[T]) T    { return distance(v[:], o[:]) }
func (v Vec3[T]) Angle(o Vec3[T]) float64 { return angle(v[:], o[:]) }
func (v Vec3[T]) Equal(o Vec3[T]) bool    { return approxEqual(v[:], o[:]) }
func (v Vec3[T]) String() string          { return format(_vec3, _vec3Keys, v[:]) }
func (v Vec3[T]) ToDynamic() *Dynamic[T]  { return NewDynamic(v[:]...) }

func (v Vec3[T]) Add(o Vec3[T]) (r Vec3[T]) { addInto(r[:], v[:], o[:]); return }
func (v Vec3[T]) Sub(o Vec3[T]) (r Vec3[T]) { subInto(r[:], v[:], o[:]); return }
func (v Vec3[T]) Min(o Vec3[T]) (r Vec3[T]) { minInto(r[:], v[:], o[:]); return }
func (v Vec3[T]) Max(o Vec3[T]) (r Vec3[T]) { maxInto(r[:], v[:], o[:]); return }
func (v Vec3[T]) AddScalar(s T) (r Vec3[T]) { addScalarInto(r[:], v[:], s); return }
func (v Vec3[T]) SubScalar(s T) (r Vec3[T]) { subScalarInto(r[:], v[:], s); return }
func (v Vec3[T]) MulScalar(s T) (r Vec3[T]) { scaleInto(r[:], v[:], s); return }
func (v Vec3[T]) Negate() (r Vec3[T])       { negInto(r[:], v[:]); return }

// Clamp clamps each component into the matching [lo, hi] components.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) (r Vec3[T]) {
	clampInto(r[:], v[:], lo[:], hi[:])
	return
}

// DivScalar divides every component by s.
// Errors: ErrDivisionByZero if s is exactly zero.
func (v Vec3[T]) DivScalar(s T) (Vec3[T], error) {
	var r Vec3[T]
	if err := divInto(r[:], v[:], s); err != nil {
		return Vec3[T]{}, vectorErrorf(_vec3, "DivScalar", err)
	}

	return r, nil
}

// Normalize returns v/|v|.
// Errors: ErrUnsupported if |v| is exactly zero.
func (v Vec3[T]) Normalize() (Vec3[T], error) {
	var r Vec3[T]
	if err := normalizeInto(r[:], v[:]); err != nil {
		return Vec3[T]{}, vectorErrorf(_vec3, "Normalize", err)
	}

	return r, nil
}

// Cross returns the right-handed cross product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1].Mul(o[2]).Sub(v[2].Mul(o[1])),
		v[2].Mul(o[0]).Sub(v[0].Mul(o[2])),
		v[0].Mul(o[1]).Sub(v[1].Mul(o[0])),
	}
}

// Mul always fails: a 3-vector has no closed product. Use Cross or Dot.
func (v Vec3[T]) Mul(Vec3[T]) (Vec3[T], error) {
	return Vec3[T]{}, vectorErrorf(_vec3, "Mul", ErrUnsupported)
}

// Reflect reflects v about the plane with unit normal n: v - 2(v·n)n.
func (v Vec3[T]) Reflect(n Vec3[T]) Vec3[T] {
	d := v.Dot(n)
	return v.Sub(n.MulScalar(d.Add(d)))
}

// ParseVec3 parses Vec3{x=..., y=..., z=...}.
func ParseVec3[T scalar.Scalar[T]](s string) (Vec3[T], error) {
	var r Vec3[T]
	if err := parseInto(r[:], s, _vec3, _vec3Keys); err != nil {
		return Vec3[T]{}, err
	}

	return r, nil
}
