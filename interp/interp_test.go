// SPDX-License-Identifier: MIT

package interp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalg/interp"
	"github.com/katalvlaran/vecalg/quat"
	"github.com/katalvlaran/vecalg/realnum"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

func aboutZ(t *testing.T, angle float64) quat.Quaternion {
	t.Helper()
	q, err := quat.FromAxisAngle(vector.NewVec3[scalar.F64](0, 0, 1), angle)
	require.NoError(t, err)

	return q
}

func TestLerp_Vectors(t *testing.T) {
	a := vector.NewVec3[scalar.F64](0, 0, 0)
	b := vector.NewVec3[scalar.F64](2, 4, -6)
	require.Equal(t, a, interp.Lerp(a, b, scalar.F64(0)))
	require.Equal(t, b, interp.Lerp(a, b, scalar.F64(1)))
	require.Equal(t, vector.NewVec3[scalar.F64](1, 2, -3), interp.Lerp(a, b, scalar.F64(0.5)))

	// No clamping: t outside [0, 1] extrapolates.
	require.Equal(t, vector.NewVec3[scalar.F64](4, 8, -12), interp.Lerp(a, b, scalar.F64(2)))
	require.Equal(t, vector.NewVec3[scalar.F64](-1, -2, 3), interp.Lerp(a, b, scalar.F64(-0.5)))

	ra := vector.NewVec2(realnum.New(1), realnum.New(10))
	rb := vector.NewVec2(realnum.New(3), realnum.New(20))
	mid := interp.Lerp(ra, rb, realnum.New(0.5))
	require.InDelta(t, 2, mid.X().Float64(), 1e-12)
	require.InDelta(t, 15, mid.Y().Float64(), 1e-12)
}

func TestLerp_Scalars(t *testing.T) {
	require.Equal(t, scalar.F64(7.5), interp.LerpScalar[scalar.F64](5, 10, 0.5))
	require.Equal(t, scalar.I32(15), interp.LerpScalar[scalar.I32](5, 10, 2))
	require.Equal(t, 1.5, interp.LerpNumber(1.0, 2.0, 0.5))
	require.Equal(t, float32(-1), interp.LerpNumber[float32](1, 2, -2))
}

func TestSlerp_Endpoints(t *testing.T) {
	p, q := aboutZ(t, 0.2), aboutZ(t, 1.4)
	require.True(t, interp.Slerp(p, q, 0).Equal(p))
	require.True(t, interp.Slerp(p, q, 1).Equal(q))
}

func TestSlerp_ConstantAngularSpeed(t *testing.T) {
	p, q := quat.Identity(), aboutZ(t, 2)
	for _, s := range []float64{0.1, 0.25, 0.5, 0.9} {
		got := interp.Slerp(p, q, s)
		require.True(t, got.Equal(aboutZ(t, 2*s)), "t=%v: %v", s, got)
		require.InDelta(t, 1, quat.Norm(got), 1e-12)
	}
}

func TestSlerp_NoClamping(t *testing.T) {
	p, q := quat.Identity(), aboutZ(t, 1)
	require.True(t, interp.Slerp(p, q, 1.5).Equal(aboutZ(t, 1.5)))
	require.True(t, interp.Slerp(p, q, -0.5).Equal(aboutZ(t, -0.5)))
}

func TestSlerp_ShortestPath(t *testing.T) {
	p, q := aboutZ(t, 0.3), aboutZ(t, 0.9)
	// -q is the same rotation; the result must not take the long way.
	got := interp.Slerp(p, q.Negate(), 0.5)
	require.True(t, got.Equal(aboutZ(t, 0.6)), got.String())
}

func TestSlerp_NearParallelFallsBackToLerp(t *testing.T) {
	p := aboutZ(t, 0.5)
	q := aboutZ(t, 0.5+1e-4) // 1 - dot ≈ 1.25e-9 < Epsilon
	require.Less(t, 1-float64(p.Dot(q)), scalar.Epsilon)

	for _, s := range []float64{0, 0.3, 1, 3} {
		got := interp.Slerp(p, q, s)
		want := interp.Lerp(p, q, scalar.F64(s))
		require.Equal(t, want, got)
		for i := range got {
			require.False(t, math.IsNaN(float64(got[i])))
		}
	}

	// Identical inputs: no NaN from sin(0)/sin(0).
	require.Equal(t, p, interp.Slerp(p, p, 0.7))
}

func TestNlerp(t *testing.T) {
	p, q := quat.Identity(), aboutZ(t, 1)
	got, err := interp.Nlerp(p, q, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 1, quat.Norm(got), 1e-12)
	// Symmetric inputs: the midpoint matches Slerp.
	require.True(t, got.Equal(interp.Slerp(p, q, 0.5)))

	got, err = interp.Nlerp(p, q.Negate(), 0.5)
	require.NoError(t, err)
	require.True(t, got.Equal(aboutZ(t, 0.5)))

	_, err = interp.Nlerp(quat.Quaternion{}, quat.Quaternion{}, 0.5)
	require.ErrorIs(t, err, vector.ErrUnsupported)
}
