// SPDX-License-Identifier: MIT

package realnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalg/realnum"
	"github.com/katalvlaran/vecalg/scalar"
)

// spread is a set of representative finite values of assorted magnitude.
var spread = []float64{0, 1, -1, 0.5, 3, 12, -7.25, 1e-300, 6.02214076e23, -1e300, 2.2250738585072014e-308, math.Pi}

func TestNew_Fields(t *testing.T) {
	n := realnum.New(12)
	require.Equal(t, 3.0, n.Exponent())
	require.Equal(t, 1.5, n.Mantissa())

	n = realnum.New(-0.375)
	require.Equal(t, -2.0, n.Exponent())
	require.Equal(t, -1.5, n.Mantissa())

	require.Equal(t, realnum.Zero, realnum.New(0))
	require.Equal(t, realnum.Zero, realnum.New(math.Copysign(0, -1)))
	require.True(t, math.IsInf(realnum.New(math.Inf(-1)).Mantissa(), -1))
}

func TestNew_MantissaNormalized(t *testing.T) {
	for _, x := range spread {
		if x == 0 {
			continue
		}
		m := math.Abs(realnum.New(x).Mantissa())
		require.GreaterOrEqual(t, m, 1.0, "x=%v", x)
		require.Less(t, m, 2.0, "x=%v", x)
	}
}

func TestFloat64_RoundTrip(t *testing.T) {
	for _, x := range spread {
		require.Equal(t, x, realnum.New(x).Float64(), "x=%v", x)
	}
	require.True(t, math.IsNaN(realnum.NaN().Float64()))
	require.True(t, math.IsInf(realnum.Inf(-1).Float64(), -1))
}

func TestNewParts_Normalizes(t *testing.T) {
	require.True(t, realnum.NewParts(0, 12).Equal(realnum.New(12)))
	require.True(t, realnum.NewParts(10, 0.001).ApproxEqual(realnum.New(1.024)))
	// fractional exponent is folded into the mantissa
	n := realnum.NewParts(0.5, 1)
	require.Equal(t, 0.0, n.Exponent())
	require.InDelta(t, math.Sqrt2, n.Mantissa(), 1e-15)
	require.Equal(t, realnum.Zero, realnum.NewParts(math.Inf(-1), 3))
	require.True(t, math.IsInf(realnum.NewParts(math.Inf(1), -3).Float64(), -1))
	require.Equal(t, scalar.NaN, realnum.NewParts(math.NaN(), 1).Sign())
}

func TestArithmetic_MatchesFloat(t *testing.T) {
	pairs := [][2]float64{{1, 2}, {3.5, -1.25}, {1e10, 1e-10}, {-8, -0.125}, {0, 4}, {5, 0}, {7, 7}, {7, -7}}
	for _, p := range pairs {
		a, b := realnum.New(p[0]), realnum.New(p[1])
		require.InDelta(t, p[0]+p[1], a.Add(b).Float64(), 1e-9, "%v + %v", p[0], p[1])
		require.InDelta(t, p[0]-p[1], a.Sub(b).Float64(), 1e-9, "%v - %v", p[0], p[1])
		require.InDelta(t, p[0]*p[1], a.Mul(b).Float64(), 1e-9, "%v * %v", p[0], p[1])
		if p[1] != 0 {
			q, err := a.Div(b)
			require.NoError(t, err)
			require.InDelta(t, p[0]/p[1], q.Float64(), 1e-9, "%v / %v", p[0], p[1])
		}
	}
}

func TestArithmetic_BeyondFloat64(t *testing.T) {
	huge := realnum.New(1e300)
	sq := huge.Mul(huge) // 1e600: overflows float64, not Number
	require.True(t, sq.IsFinite())
	require.True(t, math.IsInf(sq.Float64(), 1))
	require.InDelta(t, 600*math.Log2(10), sq.Log2(), 1e-9)

	back, err := sq.Div(huge)
	require.NoError(t, err)
	require.True(t, back.ApproxEqual(huge))
	require.InDelta(t, 300*math.Log2(10), sq.Sqrt().Log2(), 1e-5)
}

func TestDiv_ByZero(t *testing.T) {
	_, err := realnum.One.Div(realnum.Zero)
	require.ErrorIs(t, err, realnum.ErrDivisionByZero)
	_, err = realnum.One.Quo(realnum.Zero)
	require.ErrorIs(t, err, realnum.ErrDivisionByZero)
}

func TestNonFinite(t *testing.T) {
	inf := realnum.Inf(1)
	require.Equal(t, scalar.PositiveInfinity, inf.Add(realnum.New(5)).Sign())
	require.Equal(t, scalar.NaN, inf.Add(realnum.Inf(-1)).Sign())
	require.Equal(t, scalar.NaN, inf.Mul(realnum.Zero).Sign())
	require.Equal(t, scalar.NegativeInfinity, inf.Mul(realnum.New(-2)).Sign())
	q, err := realnum.New(3).Div(inf)
	require.NoError(t, err)
	require.True(t, q.IsZero())
}

func TestSqrt_ThreeNewtonSteps(t *testing.T) {
	for _, x := range []float64{1, 2, 3, 4, 9, 10, 1.9999, 0.01, 123456.789, 1e-200, 7e250} {
		got := realnum.New(x).Sqrt().Float64()
		require.InEpsilon(t, math.Sqrt(x), got, 2e-6, "sqrt(%v)", x)
	}
	// perfect powers of two are exact from the first guess
	require.Equal(t, 8.0, realnum.New(64).Sqrt().Float64())
	require.Equal(t, realnum.Zero, realnum.Zero.Sqrt())
	require.Equal(t, scalar.NaN, realnum.New(-4).Sqrt().Sign())
	require.Equal(t, scalar.PositiveInfinity, realnum.Inf(1).Sqrt().Sign())
}

// TestSqrt_FixedIterationReference pins the iteration count: a fourth step
// would move the worst-case result closer to the true root.
func TestSqrt_FixedIterationReference(t *testing.T) {
	x := 1.9999 * 2 // exponent 1, mantissa 1.9999: the slowest-converging guess
	g := math.Exp2(0.5) * 1.9999
	for i := 0; i < realnum.SqrtIterations; i++ {
		g = (g + x/g) / 2
	}
	require.InEpsilon(t, g, realnum.New(x).Sqrt().Float64(), 1e-12)
}

func TestPow2Halve(t *testing.T) {
	n := realnum.New(3)
	require.Equal(t, 48.0, n.Pow2(4).Float64())
	require.Equal(t, 0.375, n.Halve(3).Float64())
	require.Equal(t, realnum.Zero, realnum.Zero.Pow2(10))
	big := n.Pow2(5000)
	require.Equal(t, 5001.0, big.Exponent())
	require.True(t, big.Halve(5000).Equal(n))
}

func TestPowInt(t *testing.T) {
	p, err := realnum.New(3).PowInt(5)
	require.NoError(t, err)
	require.Equal(t, 243.0, p.Float64())

	p, err = realnum.New(2).PowInt(-3)
	require.NoError(t, err)
	require.Equal(t, 0.125, p.Float64())

	p, err = realnum.New(7).PowInt(0)
	require.NoError(t, err)
	require.True(t, p.Equal(realnum.One))

	_, err = realnum.Zero.PowInt(-1)
	require.ErrorIs(t, err, realnum.ErrDivisionByZero)
}

func TestCompare(t *testing.T) {
	ordered := []realnum.Number{
		realnum.Inf(-1),
		realnum.New(-1e300).Mul(realnum.New(1e300)),
		realnum.New(-3),
		realnum.New(-2.5),
		realnum.Zero,
		realnum.New(1e-300),
		realnum.New(1.5),
		realnum.New(2),
		realnum.New(1e300).Mul(realnum.New(1e300)),
		realnum.Inf(1),
		realnum.NaN(),
	}
	for i := range ordered {
		for j := range ordered {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			require.Equal(t, want, ordered[i].Compare(ordered[j]), "%v vs %v", ordered[i], ordered[j])
		}
	}
	require.True(t, realnum.Min(realnum.One, realnum.Two).Equal(realnum.One))
	require.True(t, realnum.Max(realnum.One, realnum.Two).Equal(realnum.Two))
}

func TestApproxEqual(t *testing.T) {
	require.True(t, realnum.New(0.1).Add(realnum.New(0.2)).ApproxEqual(realnum.New(0.3)))
	require.False(t, realnum.New(1).ApproxEqual(realnum.New(1.001)))
	big := realnum.New(1e300).Mul(realnum.New(1e300))
	require.True(t, big.ApproxEqual(big.Mul(realnum.New(1+1e-9))))
	require.True(t, realnum.NaN().ApproxEqual(realnum.NaN()))
	require.False(t, realnum.Inf(1).ApproxEqual(realnum.New(1e308)))
}
