// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/vecalg/realnum"
	"github.com/katalvlaran/vecalg/scalar"
)

// Vector is the contract shared by Vec2, Vec3 and Vec4. V is the concrete
// vector type, T its component type.
type Vector[T scalar.Scalar[T], V any] interface {
	Linear[T, V]
	Len() int
	At(i int) (T, error)
	Components() []T
	SubScalar(T) V
	AddScalar(T) V
	DivScalar(T) (V, error)
	Mul(V) (V, error)
	Dot(V) T
	Magnitude() T
	Magnitude2() T
	Normalize() (V, error)
	Negate() V
	Min(V) V
	Max(V) V
	Clamp(lo, hi V) V
	Distance(V) T
	Equal(V) bool
	String() string
}

// Linear is the minimal surface interpolation needs: a + b, a - b, a * s.
type Linear[T any, V any] interface {
	Add(V) V
	Sub(V) V
	MulScalar(T) V
}

// Multiplier is implemented by vectors with a natural product that never fails.
type Multiplier[V any] interface {
	Product(V) V
}

// Crosser is implemented by vectors with a cross product (3-D only).
type Crosser[V any] interface {
	Cross(V) V
}

// Common instantiations.
type (
	Vec2d = Vec2[scalar.F64]
	Vec3d = Vec3[scalar.F64]
	Vec4d = Vec4[scalar.F64]

	Vec2f = Vec2[scalar.F32]
	Vec3f = Vec3[scalar.F32]
	Vec4f = Vec4[scalar.F32]

	Vec2i = Vec2[scalar.I32]
	Vec3i = Vec3[scalar.I32]
	Vec4i = Vec4[scalar.I32]

	Vec2l = Vec2[scalar.I64]
	Vec3l = Vec3[scalar.I64]
	Vec4l = Vec4[scalar.I64]

	Vec2r = Vec2[realnum.Number]
	Vec3r = Vec3[realnum.Number]
	Vec4r = Vec4[realnum.Number]
)

// Compile-time conformance.
var (
	_ Vector[scalar.F64, Vec2d]     = Vec2d{}
	_ Vector[scalar.F64, Vec3d]     = Vec3d{}
	_ Vector[scalar.F64, Vec4d]     = Vec4d{}
	_ Vector[realnum.Number, Vec3r] = Vec3r{}
	_ Multiplier[Vec2d]             = Vec2d{}
	_ Multiplier[Vec4d]             = Vec4d{}
	_ Crosser[Vec3d]                = Vec3d{}
)
