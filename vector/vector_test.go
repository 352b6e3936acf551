// SPDX-License-Identifier: MIT

package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalg/realnum"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

func v3(x, y, z float64) vector.Vec3d {
	return vector.NewVec3(scalar.F64(x), scalar.F64(y), scalar.F64(z))
}

func TestVec3_CrossScenario(t *testing.T) {
	x, y := v3(1, 0, 0), v3(0, 1, 0)
	require.Equal(t, v3(0, 0, 1), x.Cross(y))
	require.Equal(t, v3(0, 0, -1), y.Cross(x))
	require.Equal(t, scalar.F64(0), x.Dot(y))
	require.InDelta(t, math.Pi/2, x.Angle(y), 1e-12)

	// a × b is orthogonal to both operands.
	a, b := v3(1, 2, 3), v3(-4, 0.5, 2)
	c := a.Cross(b)
	assert.InDelta(t, 0, float64(c.Dot(a)), 1e-12)
	assert.InDelta(t, 0, float64(c.Dot(b)), 1e-12)
}

func TestVec_Arithmetic(t *testing.T) {
	a, b := v3(1, 2, 3), v3(4, 5, 6)
	assert.Equal(t, v3(5, 7, 9), a.Add(b))
	assert.Equal(t, v3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, v3(2, 4, 6), a.MulScalar(2))
	assert.Equal(t, v3(3, 4, 5), a.AddScalar(2))
	assert.Equal(t, v3(0, 1, 2), a.SubScalar(1))
	assert.Equal(t, scalar.F64(32), a.Dot(b))
	assert.Equal(t, scalar.F64(14), a.Magnitude2())
	assert.InDelta(t, math.Sqrt(27), float64(a.Distance(b)), 1e-12)

	half, err := a.DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, v3(0.5, 1, 1.5), half)

	_, err = a.DivScalar(0)
	require.ErrorIs(t, err, vector.ErrDivisionByZero)
}

func TestVec_MinMaxClamp(t *testing.T) {
	a, b := v3(1, 5, -2), v3(3, 0, -2)
	assert.Equal(t, v3(1, 0, -2), a.Min(b))
	assert.Equal(t, v3(3, 5, -2), a.Max(b))

	lo, hi := v3(0, 0, 0), v3(2, 2, 2)
	assert.Equal(t, v3(1, 2, 0), a.Clamp(lo, hi))
	// Inverted bounds are swapped per component.
	assert.Equal(t, v3(1, 2, 0), a.Clamp(hi, lo))
}

func TestVec_NegateTwice(t *testing.T) {
	for _, v := range []vector.Vec3d{v3(0, 0, 0), v3(1, -2, 3.5), v3(-1e300, 1e-300, 7)} {
		require.Equal(t, v, v.Negate().Negate())
	}
	q := vector.NewVec4[scalar.I32](1, -2, 3, -4)
	require.Equal(t, q, q.Negate().Negate())
}

func TestVec_Normalize(t *testing.T) {
	for _, v := range []vector.Vec3d{v3(3, 4, 0), v3(1e-8, 0, 0), v3(-2, 7, 1e5)} {
		n, err := v.Normalize()
		require.NoError(t, err)
		require.InDelta(t, 1, float64(n.Magnitude()), 1e-12, "%v", v)
	}

	_, err := v3(0, 0, 0).Normalize()
	require.ErrorIs(t, err, vector.ErrUnsupported)
	_, err = vector.Vec2d{}.Normalize()
	require.ErrorIs(t, err, vector.ErrUnsupported)
	_, err = vector.Vec4d{}.Normalize()
	require.ErrorIs(t, err, vector.ErrUnsupported)
}

func TestVec_NormalizeExtremeMagnitudes(t *testing.T) {
	for _, v := range []vector.Vec3d{v3(1e200, 0, 0), v3(-3e300, 4e300, 0), v3(1e-200, 0, 0), v3(3e-310, -4e-310, 0)} {
		n, err := v.Normalize()
		require.NoError(t, err, "%v", v)
		require.InDelta(t, 1, float64(n.Magnitude()), 1e-12, "%v", v)
	}

	n, err := v3(-3e300, 4e300, 0).Normalize()
	require.NoError(t, err)
	require.True(t, n.Equal(v3(-0.6, 0.8, 0)), "%v", n)

	big := vector.NewDynamic[scalar.F64](1e250, 1e250)
	d, err := big.Normalize()
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt2/2, float64(d.Components()[0]), 1e-12)
}

func TestVec_Products(t *testing.T) {
	// Vec2 is the complex product: i*i = -1.
	i := vector.NewVec2[scalar.F64](0, 1)
	ii, err := i.Mul(i)
	require.NoError(t, err)
	require.Equal(t, vector.NewVec2[scalar.F64](-1, 0), ii)
	require.Equal(t, scalar.F64(1), vector.NewVec2[scalar.F64](1, 0).Det(i))
	require.Equal(t, vector.NewVec2[scalar.F64](-1, 0), i.Perp())

	// Vec3 has no product.
	_, err = v3(1, 2, 3).Mul(v3(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrUnsupported)

	// Vec4 is the Hamilton product: i*j = k, j*i = -k.
	qi := vector.NewVec4[scalar.F64](1, 0, 0, 0)
	qj := vector.NewVec4[scalar.F64](0, 1, 0, 0)
	k, err := qi.Mul(qj)
	require.NoError(t, err)
	require.Equal(t, vector.NewVec4[scalar.F64](0, 0, 1, 0), k)
	require.Equal(t, vector.NewVec4[scalar.F64](0, 0, -1, 0), qj.Product(qi))
	require.Equal(t, vector.NewVec4[scalar.F64](0, 0, 0, -1), qi.Product(qi))
}

func TestVec3_Reflect(t *testing.T) {
	n := v3(0, 1, 0)
	require.Equal(t, v3(1, 1, 0), v3(1, -1, 0).Reflect(n))
}

func TestVec_AtAndComponents(t *testing.T) {
	v := v3(1, 2, 3)
	c, err := v.At(2)
	require.NoError(t, err)
	require.Equal(t, scalar.F64(3), c)
	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.At(-1)
	require.ErrorIs(t, err, vector.ErrOutOfRange)

	comps := v.Components()
	comps[0] = 99
	require.Equal(t, scalar.F64(1), v.X(), "Components must copy")
	require.Equal(t, 3, v.Len())

	q := vector.NewVec4[scalar.F64](1, 2, 3, 4)
	require.Equal(t, v3(1, 2, 3), q.XYZ())
	require.Equal(t, scalar.F64(4), q.W())
}

func TestVec_Equal(t *testing.T) {
	a := v3(1, 2, 3)
	require.True(t, a.Equal(v3(1+1e-9, 2, 3-1e-9)))
	require.False(t, a.Equal(v3(1.01, 2, 3)))
}

func TestVec_IntegerComponents(t *testing.T) {
	a := vector.NewVec3[scalar.I32](3, 4, 0)
	require.Equal(t, scalar.I32(5), a.Magnitude())
	n, err := a.Normalize()
	require.NoError(t, err)
	// Integer division truncates.
	require.Equal(t, vector.NewVec3[scalar.I32](0, 0, 0), n)

	b := vector.NewVec3[scalar.I64](1, 0, 0).Cross(vector.NewVec3[scalar.I64](0, 1, 0))
	require.Equal(t, vector.NewVec3[scalar.I64](0, 0, 1), b)
}

func TestVec_Float32Components(t *testing.T) {
	a := vector.NewVec2[scalar.F32](3, 4)
	require.Equal(t, scalar.F32(5), a.Magnitude())
	n, err := a.Normalize()
	require.NoError(t, err)
	require.InDelta(t, 1, n.Magnitude().Float64(), 1e-6)
}

func TestVec_RealNumberComponents(t *testing.T) {
	a := vector.NewVec3(realnum.New(3), realnum.New(4), realnum.New(0))
	require.InDelta(t, 5, a.Magnitude().Float64(), 1e-5)

	n, err := a.Normalize()
	require.NoError(t, err)
	require.InDelta(t, 1, n.Magnitude().Float64(), 1e-5)
	require.InDelta(t, 0.6, n.X().Float64(), 1e-5)

	// Components far beyond float64 range still combine.
	huge := realnum.New(1).Pow2(5000)
	b := vector.NewVec2(huge, huge)
	sum := b.Add(b)
	require.InDelta(t, 5001, sum.X().Log2(), 1e-9)
	require.Equal(t, realnum.Zero, b.Sub(b).Y())

	_, err = vector.Vec3r{}.Normalize()
	require.ErrorIs(t, err, vector.ErrUnsupported)
}
