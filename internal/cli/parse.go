// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecalg/quat"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

type vec = *vector.Dynamic[scalar.F64]

// parseVector accepts Vec2{..}, Vec3{..}, Vec4{..}, Vector{..} or a plain
// comma-separated list such as "1, 0, -2.5".
func parseVector(s string) (vec, error) {
	t := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(t, "Vec2{"):
		v, err := vector.ParseVec2[scalar.F64](t)
		return v.ToDynamic(), err
	case strings.HasPrefix(t, "Vec3{"):
		v, err := vector.ParseVec3[scalar.F64](t)
		return v.ToDynamic(), err
	case strings.HasPrefix(t, "Vec4{"):
		v, err := vector.ParseVec4[scalar.F64](t)
		return v.ToDynamic(), err
	case strings.HasPrefix(t, "Vector{"):
		return vector.ParseDynamic[scalar.F64](t)
	}

	d := vector.Zeros[scalar.F64](0)
	for _, part := range strings.Split(t, ",") {
		x, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", vector.ErrSyntax, s)
		}
		d.Append(scalar.F64(x))
	}

	return d, nil
}

// formatVector prints d in its fixed-arity form when it has 2, 3 or 4
// components and as Vector{..} otherwise.
func formatVector(d vec) string {
	switch d.Len() {
	case 2:
		v, _ := d.ToVec2()
		return v.String()
	case 3:
		v, _ := d.ToVec3()
		return v.String()
	case 4:
		v, _ := d.ToVec4()
		return v.String()
	}
	return d.String()
}

// parseQuaternion parses a 4-component vector as (x, y, z, w).
func parseQuaternion(s string) (quat.Quaternion, error) {
	d, err := parseVector(s)
	if err != nil {
		return quat.Quaternion{}, err
	}
	return d.ToVec4()
}

func parseT(s string) (float64, error) {
	t, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid t %q: %w", s, err)
	}
	return t, nil
}
