// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vecalg/scalar"
	"github.com/katalvlaran/vecalg/vector"
)

func ExampleVec3_Cross() {
	x := vector.NewVec3[scalar.F64](1, 0, 0)
	y := vector.NewVec3[scalar.F64](0, 1, 0)
	fmt.Println(x.Cross(y))

	_, err := x.Mul(y)
	fmt.Println(errors.Is(err, vector.ErrUnsupported))
	// Output:
	// Vec3{x=0, y=0, z=1}
	// true
}

func ExampleDynamic_AddAssign() {
	acc := vector.Zeros[scalar.F64](2)
	_ = acc.AddAssign(vector.NewDynamic[scalar.F64](1, 2))
	_ = acc.AddAssign(vector.NewDynamic[scalar.F64](3, 4))
	fmt.Println(acc)

	err := acc.AddAssign(vector.NewDynamic[scalar.F64](1, 2, 3))
	fmt.Println(errors.Is(err, vector.ErrDimensionMismatch))
	// Output:
	// Vector{0=4, 1=6}
	// true
}
