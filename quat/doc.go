// SPDX-License-Identifier: MIT

// Package quat treats vector.Vec4[scalar.F64] as a quaternion (x, y, z, w)
// with w the scalar part, and adds the rotation helpers a bare 4-vector
// lacks: conjugate, inverse, axis-angle and Euler conversion, vector
// rotation and the 3×3 rotation matrix form.
//
// Multiplication is the Hamilton product (vector.Vec4.Product): i*j = k,
// j*i = -k, not commutative. Rotation helpers accept non-unit quaternions
// where the result is still defined (Rotate uses the true inverse); only the
// zero quaternion is rejected, with vector.ErrUnsupported.
//
// Interpolation (Slerp, Nlerp) lives in package interp.
package quat
