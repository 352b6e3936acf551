// SPDX-License-Identifier: MIT

package fraction_test

import (
	"fmt"

	"github.com/katalvlaran/vecalg/fraction"
)

// ExampleFraction_Add shows that sums are taken over the lcm of the
// denominators and compare by value.
func ExampleFraction_Add() {
	sum, err := fraction.NewRatio(1, 3).Add(fraction.NewRatio(1, 6))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum, sum.Simplify(), sum.Equal(fraction.NewRatio(1, 2)))
	// Output:
	// 3/6 1/2 true
}

// ExampleFraction_Equal shows non-finite states as ordinary values.
func ExampleFraction_Equal() {
	fmt.Println(fraction.NewRatio(1, 0).Equal(fraction.NewRatio(5, 0)))
	fmt.Println(fraction.NewRatio(1, 0).Equal(fraction.NewRatio(-1, 0)))
	fmt.Println(fraction.NewRatio(0, 0).Sign())
	// Output:
	// true
	// false
	// NaN
}
