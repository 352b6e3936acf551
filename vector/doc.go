// SPDX-License-Identifier: MIT

// Package vector provides fixed-arity value vectors Vec2[T], Vec3[T] and
// Vec4[T] plus the mutable variable-length Dynamic[T].
//
// Component types:
//
//	scalar.F64, scalar.F32, scalar.I32, scalar.I64, realnum.Number
//
// or anything else satisfying scalar.Scalar[T]. Aliases such as Vec3d
// (F64) and Vec3r (realnum.Number) name the common instantiations.
//
// Design:
//   - One set of slice kernels (kernel.go) implements every operation;
//     Vec2/Vec3/Vec4 are thin array wrappers, so there is no per-dimension
//     or per-precision duplication.
//   - Fixed-arity vectors are values: every method returns a new vector.
//   - Dimension-specific products are capabilities, not universal methods:
//     Vec2.Mul is the complex product, Vec4.Mul the quaternion (Hamilton)
//     product, Vec3.Mul always fails with ErrUnsupported; use Cross or Dot.
//   - Dynamic is the accumulation type: in-place AddAssign/SubAssign/
//     ScaleAssign, length checks on every binary op, and no Mul at all.
//
// Errors:
//   - ErrDimensionMismatch: Dynamic operands of different lengths, or a
//     Dynamic converted to a fixed arity it does not have.
//   - ErrUnsupported: operation with no defined meaning, e.g. Vec3.Mul, Dynamic.Mul,
//     normalizing a vector whose magnitude is exactly zero.
//   - ErrDivisionByZero: DivScalar by an exactly zero scalar.
//   - ErrOutOfRange: At/Set index outside [0, Len).
//   - ErrSyntax: malformed text.
//
// Concurrency: fixed-arity vectors are immutable values and safe to share.
// Dynamic is not synchronized. Random helpers take an explicit *rand.Rand.
package vector
