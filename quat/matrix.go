// SPDX-License-Identifier: MIT

package quat

import (
	"math"

	"github.com/katalvlaran/vecalg/matrix"
)

// RotationMatrix returns the 3×3 matrix R with R·v == Rotate(q, v) for the
// normalized q (column-vector convention).
// Errors: vector.ErrUnsupported for the zero quaternion.
func RotationMatrix(q Quaternion) (*matrix.Dense, error) {
	n, err := q.Normalize()
	if err != nil {
		return nil, quatErrorf("RotationMatrix", err)
	}
	x, y, z, w := float64(n[0]), float64(n[1]), float64(n[2]), float64(n[3])
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return matrix.NewFromRows([][]float64{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	})
}

// FromRotationMatrix converts a 3×3 rotation matrix back to a unit
// quaternion with w >= 0.
//
// Implementation:
//   - Stage 1: validate the 3×3 shape.
//   - Stage 2: pick the largest of (trace, m00, m11, m22) as the pivot so
//     the square root argument stays well away from zero.
//   - Stage 3: derive the other three components from the off-diagonal sums
//     and differences, then flip the sign so w >= 0.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
func FromRotationMatrix(m *matrix.Dense) (Quaternion, error) {
	if m == nil {
		return Quaternion{}, quatErrorf("FromRotationMatrix", matrix.ErrNilMatrix)
	}
	if m.Rows() != 3 || m.Cols() != 3 {
		return Quaternion{}, quatErrorf("FromRotationMatrix", matrix.ErrDimensionMismatch)
	}
	var e [3][3]float64
	for i := 0; i < 3; i++ {
		row, err := m.Row(i)
		if err != nil {
			return Quaternion{}, quatErrorf("FromRotationMatrix", err)
		}
		copy(e[i][:], row)
	}

	tr, err := matrix.Trace(m)
	if err != nil {
		return Quaternion{}, quatErrorf("FromRotationMatrix", err)
	}

	var x, y, z, w float64
	switch {
	case tr > 0:
		s := math.Sqrt(tr+1) * 2
		w = s / 4
		x = (e[2][1] - e[1][2]) / s
		y = (e[0][2] - e[2][0]) / s
		z = (e[1][0] - e[0][1]) / s
	case e[0][0] > e[1][1] && e[0][0] > e[2][2]:
		s := math.Sqrt(1+e[0][0]-e[1][1]-e[2][2]) * 2
		w = (e[2][1] - e[1][2]) / s
		x = s / 4
		y = (e[0][1] + e[1][0]) / s
		z = (e[0][2] + e[2][0]) / s
	case e[1][1] > e[2][2]:
		s := math.Sqrt(1+e[1][1]-e[0][0]-e[2][2]) * 2
		w = (e[0][2] - e[2][0]) / s
		x = (e[0][1] + e[1][0]) / s
		y = s / 4
		z = (e[1][2] + e[2][1]) / s
	default:
		s := math.Sqrt(1+e[2][2]-e[0][0]-e[1][1]) * 2
		w = (e[1][0] - e[0][1]) / s
		x = (e[0][2] + e[2][0]) / s
		y = (e[1][2] + e[2][1]) / s
		z = s / 4
	}
	q := New(x, y, z, w)
	if w < 0 {
		q = q.Negate()
	}

	return q, nil
}
