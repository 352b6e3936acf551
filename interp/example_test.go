// SPDX-License-Identifier: MIT

package interp_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/vecalg/interp"
	"github.com/katalvlaran/vecalg/quat"
	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

func ExampleLerp() {
	a := vector.NewVec2[scalar.F64](0, 10)
	b := vector.NewVec2[scalar.F64](4, 20)
	fmt.Println(interp.Lerp(a, b, scalar.F64(0.25)))
	fmt.Println(interp.Lerp(a, b, scalar.F64(2)))
	// Output:
	// Vec2{x=1, y=12.5}
	// Vec2{x=8, y=30}
}

func ExampleSlerp() {
	z := vector.NewVec3[scalar.F64](0, 0, 1)
	end, _ := quat.FromAxisAngle(z, math.Pi/2)
	mid := interp.Slerp(quat.Identity(), end, 0.5)
	_, angle, _ := quat.AxisAngle(mid)
	fmt.Printf("%.4f\n", angle)
	// Output:
	// 0.7854
}
