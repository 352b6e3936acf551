// SPDX-License-Identifier: MIT

package vector_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecalg/realnum"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

func TestString_Golden(t *testing.T) {
	lines := []string{
		vector.NewVec2[scalar.F64](1, -2.5).String(),
		v3(1, 0, 0).String(),
		vector.NewVec4[scalar.F64](0, 0, 0, 1).String(),
		vector.NewVec3[scalar.I32](1, 2, 3).String(),
		vector.NewVec2(realnum.New(3), realnum.New(0)).String(),
		dyn(1, 2, 3, 4).String(),
		dyn().String(),
	}
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "vector_strings", []byte(strings.Join(lines, "\n")+"\n"))
}

func TestParse_RoundTrip(t *testing.T) {
	v2 := vector.NewVec2[scalar.F64](1, -2.5)
	got2, err := vector.ParseVec2[scalar.F64](v2.String())
	require.NoError(t, err)
	require.Equal(t, v2, got2)

	v := v3(0.1, -1e-300, 42)
	got3, err := vector.ParseVec3[scalar.F64](v.String())
	require.NoError(t, err)
	require.Equal(t, v, got3)

	q := vector.NewVec4[scalar.I64](1, -2, 3, -4)
	got4, err := vector.ParseVec4[scalar.I64](q.String())
	require.NoError(t, err)
	require.Equal(t, q, got4)

	r := vector.NewVec2(realnum.New(3), realnum.New(-0.25))
	gotR, err := vector.ParseVec2[realnum.Number](r.String())
	require.NoError(t, err)
	require.True(t, gotR.Equal(r))

	d := dyn(5, 6, 7)
	gotD, err := vector.ParseDynamic[scalar.F64](d.String())
	require.NoError(t, err)
	require.True(t, gotD.Equal(d))

	empty, err := vector.ParseDynamic[scalar.F64]("Vector{}")
	require.NoError(t, err)
	require.Equal(t, 0, empty.Len())
}

func TestParse_Malformed(t *testing.T) {
	bad := []string{
		"",
		"Vec3{x=1, y=2}",
		"Vec3{x=1, y=2, z=3, w=4}",
		"Vec3{y=1, x=2, z=3}",
		"Vec2{x=1, y=2, z=3}",
		"Vec3{x=1, y=two, z=3}",
		"Vec3{x=1, y=2, z=3",
	}
	for _, s := range bad {
		_, err := vector.ParseVec3[scalar.F64](s)
		require.ErrorIs(t, err, vector.ErrSyntax, "input %q", s)
	}

	_, err := vector.ParseVec3[scalar.I32]("Vec3{x=1.5, y=2, z=3}")
	require.ErrorIs(t, err, vector.ErrSyntax)

	_, err = vector.ParseDynamic[scalar.F64]("Vector{1=1, 0=2}")
	require.ErrorIs(t, err, vector.ErrSyntax)
	_, err = vector.ParseDynamic[scalar.F64]("Vec3{x=1}")
	require.ErrorIs(t, err, vector.ErrSyntax)
}
