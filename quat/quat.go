// SPDX-License-Identifier: MIT

package quat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

// Quaternion is a 4-vector (x, y, z, w) with w the scalar part.
type Quaternion = vector.Vec4[scalar.F64]

// Vec3 is the 3-vector type quaternions rotate.
type Vec3 = vector.Vec3[scalar.F64]

func quatErrorf(op string, err error) error {
	return fmt.Errorf("quat.%s: %w", op, err)
}

// New returns x·i + y·j + z·k + w.
func New(x, y, z, w float64) Quaternion {
	return Quaternion{scalar.F64(x), scalar.F64(y), scalar.F64(z), scalar.F64(w)}
}

// Identity returns the rotation that leaves every vector unchanged.
func Identity() Quaternion { return New(0, 0, 0, 1) }

// Mul returns the Hamilton product a*b; applying the result rotates by b
// first, then a.
func Mul(a, b Quaternion) Quaternion { return a.Product(b) }

// Conjugate returns (-x, -y, -z, w).
func Conjugate(q Quaternion) Quaternion {
	return Quaternion{q[0].Neg(), q[1].Neg(), q[2].Neg(), q[3]}
}

// Norm returns |q|.
func Norm(q Quaternion) float64 { return float64(q.Magnitude()) }

// IsUnit reports |q| == 1 within scalar.Epsilon.
func IsUnit(q Quaternion) bool { return scalar.Equals(Norm(q), 1) }

// Inverse returns q⁻¹ = conj(q) / |q|².
// Errors: vector.ErrUnsupported for the zero quaternion.
func Inverse(q Quaternion) (Quaternion, error) {
	n2 := q.Magnitude2()
	if n2.IsZero() {
		return Quaternion{}, quatErrorf("Inverse", vector.ErrUnsupported)
	}
	inv, err := Conjugate(q).DivScalar(n2)
	if err != nil {
		return Quaternion{}, quatErrorf("Inverse", err)
	}

	return inv, nil
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// axis (right-hand rule). The axis need not be unit length.
// Errors: vector.ErrUnsupported for a zero axis.
func FromAxisAngle(axis Vec3, angle float64) (Quaternion, error) {
	n, err := axis.Normalize()
	if err != nil {
		return Quaternion{}, quatErrorf("FromAxisAngle", err)
	}
	s, c := math.Sincos(angle / 2)

	return New(float64(n[0])*s, float64(n[1])*s, float64(n[2])*s, c), nil
}

// AxisAngle returns the rotation axis and angle in [0, 2π] of q after
// normalization. A rotation by (nearly) zero reports the x axis.
// Errors: vector.ErrUnsupported for the zero quaternion.
func AxisAngle(q Quaternion) (Vec3, float64, error) {
	n, err := q.Normalize()
	if err != nil {
		return Vec3{}, 0, quatErrorf("AxisAngle", err)
	}
	w := scalar.Clamp(float64(n[3]), -1, 1)
	angle := 2 * math.Acos(w)
	s := math.Sqrt(1 - w*w)
	if s < scalar.Epsilon {
		return vector.NewVec3[scalar.F64](1, 0, 0), angle, nil
	}
	axis, _ := n.XYZ().DivScalar(scalar.F64(s))

	return axis, angle, nil
}

// FromEuler returns yaw(z) * pitch(y) * roll(x): roll is applied first.
func FromEuler(roll, pitch, yaw float64) Quaternion {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)

	return New(
		sr*cp*cy-cr*sp*sy,
		cr*sp*cy+sr*cp*sy,
		cr*cp*sy-sr*sp*cy,
		cr*cp*cy+sr*sp*sy,
	)
}

// Rotate returns q·(v, 0)·q⁻¹ as a 3-vector.
// Errors: vector.ErrUnsupported for the zero quaternion.
func Rotate(q Quaternion, v Vec3) (Vec3, error) {
	inv, err := Inverse(q)
	if err != nil {
		return Vec3{}, quatErrorf("Rotate", err)
	}
	p := Quaternion{v[0], v[1], v[2], 0}

	return q.Product(p).Product(inv).XYZ(), nil
}

// AngleBetween returns the rotation angle in [0, π] taking a to b.
// Errors: vector.ErrUnsupported if either operand is zero.
func AngleBetween(a, b Quaternion) (float64, error) {
	na, err := a.Normalize()
	if err != nil {
		return 0, quatErrorf("AngleBetween", err)
	}
	nb, err := b.Normalize()
	if err != nil {
		return 0, quatErrorf("AngleBetween", err)
	}
	d := math.Abs(float64(na.Dot(nb)))

	return 2 * math.Acos(scalar.Min(d, 1)), nil
}

// Parse reads Vec4{x=..., y=..., z=..., w=...}.
func Parse(s string) (Quaternion, error) { return vector.ParseVec4[scalar.F64](s) }
