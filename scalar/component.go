// SPDX-License-Identifier: MIT

package scalar

// Scalar is the contract a vector component type must satisfy.
// T is the implementing type itself (F-bounded), so Vec3[T] can call
// a.Add(b) and receive a T back without boxing.
//
// Semantics every implementation follows:
//   - Arithmetic never mutates the receiver.
//   - Quo returns ErrDivisionByZero (wrapped) when the divisor IsZero.
//   - IsZero is exact; ApproxEqual is the tolerant comparison (Epsilon for
//     floating types, exact for integers).
//   - FromFloat64 ignores the receiver and converts x into T.
//   - Parse(String()) reproduces the value (ApproxEqual at least).
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) (T, error)
	Neg() T
	Abs() T
	Sqrt() T
	Cmp(T) int
	IsZero() bool
	ApproxEqual(T) bool
	Float64() float64
	FromFloat64(x float64) T
	Parse(s string) (T, error)
	String() string
}

// Compile-time conformance of the native component types.
var (
	_ Scalar[F64] = F64(0)
	_ Scalar[F32] = F32(0)
	_ Scalar[I32] = I32(0)
	_ Scalar[I64] = I64(0)
)
