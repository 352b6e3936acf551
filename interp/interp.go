// SPDX-License-Identifier: MIT

package interp

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/vecalg/quat"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

// Lerp returns start + (end - start)·t.
func Lerp[T any, V vector.Linear[T, V]](start, end V, t T) V {
	return start.Add(end.Sub(start).MulScalar(t))
}

// LerpScalar is Lerp for a single component.
func LerpScalar[T scalar.Scalar[T]](start, end, t T) T {
	return start.Add(end.Sub(start).Mul(t))
}

// LerpNumber is Lerp for native floats.
func LerpNumber[N constraints.Float](start, end, t N) N {
	return start + (end-start)*t
}

// Slerp interpolates between two unit quaternions along the shortest arc.
//
// Implementation:
//   - Stage 1: dot = start·end; a negative dot negates end (and dot) so the
//     path takes the short way round.
//   - Stage 2: if 1 - dot < scalar.Epsilon the arc is too short for a stable
//     sin/acos; fall back to Lerp(start, end, t).
//   - Stage 3: θ0 = acos(dot), θ1 = θ0·t,
//     s0 = cos θ1 - dot·sin θ1 / sin θ0, s1 = sin θ1 / sin θ0,
//     result = start·s0 + end·s1.
//
// t is not clamped. Inputs are not normalized; unit inputs give unit output.
func Slerp(start, end quat.Quaternion, t float64) quat.Quaternion {
	dot := float64(start.Dot(end))
	if dot < 0 {
		end = end.Negate()
		dot = -dot
	}
	if 1-dot < scalar.Epsilon {
		return Lerp(start, end, scalar.F64(t))
	}

	theta0 := math.Acos(dot)
	theta1 := theta0 * t
	sin0 := math.Sin(theta0)
	sin1, cos1 := math.Sincos(theta1)
	s0 := cos1 - dot*sin1/sin0
	s1 := sin1 / sin0

	return start.MulScalar(scalar.F64(s0)).Add(end.MulScalar(scalar.F64(s1)))
}

// Nlerp is Lerp along the shortest arc followed by normalization. It is
// cheaper than Slerp but does not move at constant angular speed.
// Errors: vector.ErrUnsupported if the interpolant passes through zero.
func Nlerp(start, end quat.Quaternion, t float64) (quat.Quaternion, error) {
	if start.Dot(end) < 0 {
		end = end.Negate()
	}

	return Lerp(start, end, scalar.F64(t)).Normalize()
}
