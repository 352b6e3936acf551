// SPDX-License-Identifier: MIT

package vector

import (
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/vecalg/scalar"
)

// NewRand returns a deterministic generator for the helpers below.
func NewRand(seed uint64) *rand.Rand { return rand.New(rand.NewSource(seed)) }

func uniform(r *rand.Rand, lo, hi float64) scalar.F64 {
	return scalar.F64(lo + (hi-lo)*r.Float64())
}

// RandomVec3 returns a vector with every component uniform in [lo, hi).
func RandomVec3(r *rand.Rand, lo, hi float64) Vec3[scalar.F64] {
	return Vec3[scalar.F64]{uniform(r, lo, hi), uniform(r, lo, hi), uniform(r, lo, hi)}
}

// RandomInBox returns a point uniform in the axis-aligned box [lo, hi).
// Inverted bounds are swapped per axis.
func RandomInBox(r *rand.Rand, lo, hi Vec3[scalar.F64]) Vec3[scalar.F64] {
	var out Vec3[scalar.F64]
	for i := range out {
		a, b := float64(lo[i]), float64(hi[i])
		if a > b {
			a, b = b, a
		}
		out[i] = uniform(r, a, b)
	}

	return out
}

// RandomUnitVec3 returns a direction uniformly distributed on the unit
// sphere (normalized Gaussian triple; degenerate draws are retried).
func RandomUnitVec3(r *rand.Rand) Vec3[scalar.F64] {
	for {
		v := Vec3[scalar.F64]{scalar.F64(r.NormFloat64()), scalar.F64(r.NormFloat64()), scalar.F64(r.NormFloat64())}
		if n, err := v.Normalize(); err == nil {
			return n
		}
	}
}

// RandomUnitVec4 returns a unit 4-vector uniformly distributed on the
// 3-sphere; as a quaternion it is a uniformly random rotation.
func RandomUnitVec4(r *rand.Rand) Vec4[scalar.F64] {
	for {
		v := Vec4[scalar.F64]{
			scalar.F64(r.NormFloat64()), scalar.F64(r.NormFloat64()),
			scalar.F64(r.NormFloat64()), scalar.F64(r.NormFloat64()),
		}
		if n, err := v.Normalize(); err == nil {
			return n
		}
	}
}

// RandomDynamic returns n components uniform in [lo, hi).
func RandomDynamic(r *rand.Rand, n int, lo, hi float64) *Dynamic[scalar.F64] {
	d := Zeros[scalar.F64](n)
	for i := range d.data {
		d.data[i] = uniform(r, lo, hi)
	}

	return d
}
