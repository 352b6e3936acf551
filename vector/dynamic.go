// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/vecalg/internal/notation"
	"github.com/katalvlaran/vecalg/scalar"
)

const _dynamic = "Vector"

// Dynamic is a mutable vector of any length.
//
// Binary operations require equal lengths and fail with
// ErrDimensionMismatch otherwise. The *Assign methods mutate the receiver;
// everything else returns a fresh Dynamic. There is no product: Mul always
// fails with ErrUnsupported.
//
// Not safe for concurrent mutation.
type Dynamic[T scalar.Scalar[T]] struct {
	data []T
}

// NewDynamic returns a Dynamic holding a copy of vals.
func NewDynamic[T scalar.Scalar[T]](vals ...T) *Dynamic[T] {
	return &Dynamic[T]{data: clone(vals)}
}

// Zeros returns a Dynamic of n zero components (n < 0 is treated as 0).
func Zeros[T scalar.Scalar[T]](n int) *Dynamic[T] {
	if n < 0 {
		n = 0
	}

	return &Dynamic[T]{data: make([]T, n)}
}

// FromVec2 copies v into a new Dynamic.
func FromVec2[T scalar.Scalar[T]](v Vec2[T]) *Dynamic[T] { return v.ToDynamic() }

// FromVec3 copies v into a new Dynamic.
func FromVec3[T scalar.Scalar[T]](v Vec3[T]) *Dynamic[T] { return v.ToDynamic() }

// FromVec4 copies v into a new Dynamic.
func FromVec4[T scalar.Scalar[T]](v Vec4[T]) *Dynamic[T] { return v.ToDynamic() }

func (d *Dynamic[T]) Len() int { return len(d.data) }

// Components returns a copy of the components.
func (d *Dynamic[T]) Components() []T { return clone(d.data) }

// Clone returns an independent copy of d.
func (d *Dynamic[T]) Clone() *Dynamic[T] { return NewDynamic(d.data...) }

// At returns component i.
func (d *Dynamic[T]) At(i int) (T, error) { return at(_dynamic, d.data, i) }

// Set overwrites component i.
func (d *Dynamic[T]) Set(i int, v T) error {
	if i < 0 || i >= len(d.data) {
		return vectorErrorf(_dynamic, "Set", ErrOutOfRange)
	}
	d.data[i] = v

	return nil
}

// Append grows d by vals.
func (d *Dynamic[T]) Append(vals ...T) { d.data = append(d.data, vals...) }

func (d *Dynamic[T]) checkLen(method string, o *Dynamic[T]) error {
	if len(d.data) != len(o.data) {
		return vectorErrorf(_dynamic, method, ErrDimensionMismatch)
	}

	return nil
}

// Add returns d + o.
func (d *Dynamic[T]) Add(o *Dynamic[T]) (*Dynamic[T], error) {
	if err := d.checkLen("Add", o); err != nil {
		return nil, err
	}
	r := Zeros[T](len(d.data))
	addInto(r.data, d.data, o.data)

	return r, nil
}

// Sub returns d - o.
func (d *Dynamic[T]) Sub(o *Dynamic[T]) (*Dynamic[T], error) {
	if err := d.checkLen("Sub", o); err != nil {
		return nil, err
	}
	r := Zeros[T](len(d.data))
	subInto(r.data, d.data, o.data)

	return r, nil
}

// AddAssign performs d += o in place.
func (d *Dynamic[T]) AddAssign(o *Dynamic[T]) error {
	if err := d.checkLen("AddAssign", o); err != nil {
		return err
	}
	addInto(d.data, d.data, o.data)

	return nil
}

// SubAssign performs d -= o in place.
func (d *Dynamic[T]) SubAssign(o *Dynamic[T]) error {
	if err := d.checkLen("SubAssign", o); err != nil {
		return err
	}
	subInto(d.data, d.data, o.data)

	return nil
}

// ScaleAssign performs d *= s in place.
func (d *Dynamic[T]) ScaleAssign(s T) { scaleInto(d.data, d.data, s) }

// AddScalar returns d with s added to every component.
func (d *Dynamic[T]) AddScalar(s T) *Dynamic[T] {
	r := Zeros[T](len(d.data))
	addScalarInto(r.data, d.data, s)

	return r
}

// SubScalar returns d with s subtracted from every component.
func (d *Dynamic[T]) SubScalar(s T) *Dynamic[T] {
	r := Zeros[T](len(d.data))
	subScalarInto(r.data, d.data, s)

	return r
}

// MulScalar returns d * s.
func (d *Dynamic[T]) MulScalar(s T) *Dynamic[T] {
	r := Zeros[T](len(d.data))
	scaleInto(r.data, d.data, s)

	return r
}

// DivScalar returns d / s.
// Errors: ErrDivisionByZero if s is exactly zero.
func (d *Dynamic[T]) DivScalar(s T) (*Dynamic[T], error) {
	r := Zeros[T](len(d.data))
	if err := divInto(r.data, d.data, s); err != nil {
		return nil, vectorErrorf(_dynamic, "DivScalar", err)
	}

	return r, nil
}

// Mul always fails with ErrUnsupported.
func (d *Dynamic[T]) Mul(*Dynamic[T]) (*Dynamic[T], error) {
	return nil, vectorErrorf(_dynamic, "Mul", ErrUnsupported)
}

// Negate returns -d.
func (d *Dynamic[T]) Negate() *Dynamic[T] {
	r := Zeros[T](len(d.data))
	negInto(r.data, d.data)

	return r
}

// Dot returns d · o.
func (d *Dynamic[T]) Dot(o *Dynamic[T]) (T, error) {
	if err := d.checkLen("Dot", o); err != nil {
		var zero T
		return zero, err
	}

	return dot(d.data, o.data), nil
}

func (d *Dynamic[T]) Magnitude() T  { return magnitude(d.data) }
func (d *Dynamic[T]) Magnitude2() T { return dot(d.data, d.data) }

// Distance returns |d - o|.
func (d *Dynamic[T]) Distance(o *Dynamic[T]) (T, error) {
	if err := d.checkLen("Distance", o); err != nil {
		var zero T
		return zero, err
	}

	return distance(d.data, o.data), nil
}

// Angle returns the angle between d and o in radians; NaN if either has
// zero magnitude.
func (d *Dynamic[T]) Angle(o *Dynamic[T]) (float64, error) {
	if err := d.checkLen("Angle", o); err != nil {
		return 0, err
	}

	return angle(d.data, o.data), nil
}

// Normalize returns d/|d|.
// Errors: ErrUnsupported if |d| is exactly zero (including the empty vector).
func (d *Dynamic[T]) Normalize() (*Dynamic[T], error) {
	r := Zeros[T](len(d.data))
	if err := normalizeInto(r.data, d.data); err != nil {
		return nil, vectorErrorf(_dynamic, "Normalize", err)
	}

	return r, nil
}

// Equal reports equal length and component-wise ApproxEqual.
func (d *Dynamic[T]) Equal(o *Dynamic[T]) bool { return approxEqual(d.data, o.data) }

// ToVec2 converts a 2-component Dynamic.
func (d *Dynamic[T]) ToVec2() (Vec2[T], error) {
	var r Vec2[T]
	if len(d.data) != len(r) {
		return r, vectorErrorf(_dynamic, "ToVec2", ErrDimensionMismatch)
	}
	copy(r[:], d.data)

	return r, nil
}

// ToVec3 converts a 3-component Dynamic.
func (d *Dynamic[T]) ToVec3() (Vec3[T], error) {
	var r Vec3[T]
	if len(d.data) != len(r) {
		return r, vectorErrorf(_dynamic, "ToVec3", ErrDimensionMismatch)
	}
	copy(r[:], d.data)

	return r, nil
}

// ToVec4 converts a 4-component Dynamic.
func (d *Dynamic[T]) ToVec4() (Vec4[T], error) {
	var r Vec4[T]
	if len(d.data) != len(r) {
		return r, vectorErrorf(_dynamic, "ToVec4", ErrDimensionMismatch)
	}
	copy(r[:], d.data)

	return r, nil
}

// String renders Vector{0=..., 1=...}.
func (d *Dynamic[T]) String() string { return format(_dynamic, indexKeys(len(d.data)), d.data) }

// ParseDynamic parses Vector{0=..., 1=..., ...}. Keys must be the indices
// 0..n-1 in order; Vector{} is the empty vector.
func ParseDynamic[T scalar.Scalar[T]](s string) (*Dynamic[T], error) {
	_, fields, err := notation.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	r := Zeros[T](len(fields))
	if err := parseInto(r.data, s, _dynamic, indexKeys(len(fields))); err != nil {
		return nil, err
	}

	return r, nil
}

func indexKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	return keys
}
