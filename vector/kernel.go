// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecalg/internal/notation"
	"github.com/katalvlaran/vecalg/scalar"
)

// The kernels below operate on equal-length slices; callers guarantee the
// lengths (fixed arrays by construction, Dynamic by checkLen).

func zip[T scalar.Scalar[T]](dst, a, b []T, f func(x, y T) T) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

func each[T scalar.Scalar[T]](dst, a []T, f func(x T) T) {
	for i := range dst {
		dst[i] = f(a[i])
	}
}

func addInto[T scalar.Scalar[T]](dst, a, b []T) {
	zip(dst, a, b, func(x, y T) T { return x.Add(y) })
}

func subInto[T scalar.Scalar[T]](dst, a, b []T) {
	zip(dst, a, b, func(x, y T) T { return x.Sub(y) })
}

func minInto[T scalar.Scalar[T]](dst, a, b []T) {
	zip(dst, a, b, func(x, y T) T {
		if y.Cmp(x) < 0 {
			return y
		}
		return x
	})
}

func maxInto[T scalar.Scalar[T]](dst, a, b []T) {
	zip(dst, a, b, func(x, y T) T {
		if y.Cmp(x) > 0 {
			return y
		}
		return x
	})
}

func addScalarInto[T scalar.Scalar[T]](dst, a []T, s T) {
	each(dst, a, func(x T) T { return x.Add(s) })
}

func subScalarInto[T scalar.Scalar[T]](dst, a []T, s T) {
	each(dst, a, func(x T) T { return x.Sub(s) })
}

func scaleInto[T scalar.Scalar[T]](dst, a []T, s T) {
	each(dst, a, func(x T) T { return x.Mul(s) })
}

func negInto[T scalar.Scalar[T]](dst, a []T) {
	each(dst, a, func(x T) T { return x.Neg() })
}

// clampInto clamps each a[i] into [lo[i], hi[i]], swapping inverted bounds
// like scalar.Clamp does.
func clampInto[T scalar.Scalar[T]](dst, a, lo, hi []T) {
	for i := range dst {
		l, h := lo[i], hi[i]
		if l.Cmp(h) > 0 {
			l, h = h, l
		}
		switch x := a[i]; {
		case x.Cmp(l) < 0:
			dst[i] = l
		case x.Cmp(h) > 0:
			dst[i] = h
		default:
			dst[i] = x
		}
	}
}

// divInto divides every component by s; s is checked once up front so the
// per-component Quo can never fail.
func divInto[T scalar.Scalar[T]](dst, a []T, s T) error {
	if s.IsZero() {
		return ErrDivisionByZero
	}
	for i := range dst {
		q, err := a[i].Quo(s)
		if err != nil {
			return err
		}
		dst[i] = q
	}

	return nil
}

func dot[T scalar.Scalar[T]](a, b []T) T {
	var sum T
	for i := range a {
		sum = sum.Add(a[i].Mul(b[i]))
	}

	return sum
}

func magnitude[T scalar.Scalar[T]](a []T) T { return dot(a, a).Sqrt() }

// normalizeInto writes a/|a| into dst. Only the zero vector yields
// ErrUnsupported. When the sum of squares overflows or underflows, a is
// first divided by its largest |component| so the squares stay in range.
func normalizeInto[T scalar.Scalar[T]](dst, a []T) error {
	m := magnitude(a)
	if f := m.Float64(); !m.IsZero() && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return divInto(dst, a, m)
	}
	mx := maxAbs(a)
	if mx.IsZero() {
		return ErrUnsupported
	}
	scaled := make([]T, len(a))
	if err := divInto(scaled, a, mx); err != nil {
		return err
	}

	return divInto(dst, scaled, magnitude(scaled))
}

// maxAbs returns the largest |component| of a, or zero for an empty slice.
func maxAbs[T scalar.Scalar[T]](a []T) T {
	var mx T
	for _, v := range a {
		if av := v.Abs(); av.Cmp(mx) > 0 {
			mx = av
		}
	}

	return mx
}

func distance[T scalar.Scalar[T]](a, b []T) T {
	d := make([]T, len(a))
	subInto(d, a, b)

	return magnitude(d)
}

func approxEqual[T scalar.Scalar[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].ApproxEqual(b[i]) {
			return false
		}
	}

	return true
}

// angle returns the angle between a and b in radians, computed in float64.
// Zero-length operands give NaN.
func angle[T scalar.Scalar[T]](a, b []T) float64 {
	den := magnitude(a).Float64() * magnitude(b).Float64()
	if den == 0 {
		return math.NaN()
	}
	c := scalar.Clamp(dot(a, b).Float64()/den, -1, 1)

	return math.Acos(c)
}

func at[T scalar.Scalar[T]](typ string, a []T, i int) (T, error) {
	if i < 0 || i >= len(a) {
		var zero T
		return zero, vectorErrorf(typ, "At", ErrOutOfRange)
	}

	return a[i], nil
}

func clone[T any](a []T) []T {
	out := make([]T, len(a))
	copy(out, a)

	return out
}

// format renders a as name{k0=a0, k1=a1, ...}.
func format[T scalar.Scalar[T]](name string, keys []string, a []T) string {
	fields := make([]notation.Field, len(a))
	for i, c := range a {
		fields[i] = notation.Field{Key: keys[i], Value: c.String()}
	}

	return notation.Format(name, fields...)
}

// parseInto parses s as name{keys...} and decodes each value with T.Parse.
func parseInto[T scalar.Scalar[T]](dst []T, s, name string, keys []string) error {
	vals, err := notation.Expect(s, name, keys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	var zero T
	for i, v := range vals {
		c, err := zero.Parse(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrSyntax, keys[i], err)
		}
		dst[i] = c
	}

	return nil
}
