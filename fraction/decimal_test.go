// SPDX-License-Identifier: MIT

package fraction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalg/fraction"
)

func TestIsRational(t *testing.T) {
	cases := []struct {
		f    fraction.Fraction
		want bool
	}{
		{fraction.NewRatio(1, 2), true},
		{fraction.NewRatio(3, 40), true},
		{fraction.NewRatio(7, 1), true},
		{fraction.NewRatio(2.5, 1), true},
		{fraction.NewRatio(6, 3), true},
		{fraction.NewRatio(1, 3), false},
		{fraction.NewRatio(5, 6), false},
		{fraction.NewRatio(1, 0), false},
		{fraction.NewRatio(0, 0), false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.f.IsRational(), "%v", tc.f)
	}
}

func TestIsRepeating(t *testing.T) {
	cases := []struct {
		f    fraction.Fraction
		want bool
	}{
		{fraction.NewRatio(1, 3), true},
		{fraction.NewRatio(1, 6), true},
		{fraction.NewRatio(-22, 7), true},
		{fraction.NewRatio(0.5, 1.5), true},
		{fraction.NewRatio(1, 4), false},
		{fraction.NewRatio(3, 1), false},
		{fraction.NewRatio(-1, 0), false},
		{fraction.NewRatio(0, 0), false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.f.IsRepeating(), "%v", tc.f)
	}
}

func TestApproximate(t *testing.T) {
	f, err := fraction.Approximate(math.Pi, 1000)
	require.NoError(t, err)
	require.True(t, f.StrictEqual(fraction.NewRatio(355, 113)), "got %v", f)

	f, err = fraction.Approximate(-0.5, 10)
	require.NoError(t, err)
	require.True(t, f.StrictEqual(fraction.NewRatio(-1, 2)), "got %v", f)

	f, err = fraction.Approximate(0.75, 100)
	require.NoError(t, err)
	require.True(t, f.StrictEqual(fraction.NewRatio(3, 4)), "got %v", f)

	f, err = fraction.Approximate(math.Inf(-1), 10)
	require.NoError(t, err)
	require.True(t, f.StrictEqual(fraction.NewRatio(-1, 0)))

	_, err = fraction.Approximate(1, 0.5)
	require.ErrorIs(t, err, fraction.ErrArithmetic)
}
