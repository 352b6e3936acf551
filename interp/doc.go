// SPDX-License-Identifier: MIT

// Package interp provides stateless interpolation over vectors, components
// and quaternions.
//
//	Lerp(a, b, t)   a + (b - a)·t for any vector.Linear value
//	Slerp(p, q, t)  spherical interpolation of quaternions along the
//	                shortest arc, with a linear fallback when p ≈ ±q
//	Nlerp(p, q, t)  normalized Lerp along the shortest arc
//
// None of the functions clamp t: values outside [0, 1] extrapolate.
package interp
