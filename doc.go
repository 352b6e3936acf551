// SPDX-License-Identifier: MIT

// Package vecalg is an extended-precision number and vector algebra toolkit:
// exact fractions, 2^e·m real numbers, generic fixed-arity and dynamic
// vectors, quaternions and interpolation.
//
// What is inside:
//
//	scalar/:    Epsilon equality, Clamp/Min/Max, the Sign table, factorial and
//	            Lanczos Gamma, GCD/LCM, and the Scalar[T] component contract
//	            with native F64/F32/I32/I64 wrappers
//	fraction/:  two-field Fraction that keeps 1/0 and 0/0 as valid states,
//	            LCM add/sub, total ordering, decimal diagnostics
//	realnum/:   Number = 2^exponent·mantissa with renormalization, range far
//	            beyond float64 and a fixed three-step Newton square root
//	vector/:    Vec2/Vec3/Vec4[T] value vectors over any Scalar[T] and the
//	            mutable Dynamic[T], shared kernels, seeded random helpers
//	quat/:      Vec4 as quaternion: Hamilton product, inverse, axis-angle,
//	            Euler, rotation and rotation matrices
//	interp/:    Lerp, Slerp (with near-parallel fallback) and Nlerp
//	matrix/:    row-major Dense used for rotation matrices
//	examples/:  end-to-end scenarios
//
// Every value type prints and parses the same debugging form:
//
//	RealNumber{e=3, m=1.5}   Vec3{x=1, y=0, z=0}   Vector{0=1, 1=2}   3/4
//
// Values are immutable (except Dynamic), functions are pure and nothing
// shares mutable state, so the whole library is safe for concurrent use.
// Randomness always comes from an explicit *rand.Rand.
//
// Command vecalg (cmd/vecalg) exposes the same operations on the command line.
package vecalg
