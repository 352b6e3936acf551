// SPDX-License-Identifier: MIT

package scalar

import "math"

// MaxFactorial is the largest n whose factorial fits in int64.
const MaxFactorial = 20

// factorials[n] == n! for 0 ≤ n ≤ MaxFactorial.
var factorials = [MaxFactorial + 1]int64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
	87178291200,
	1307674368000,
	20922789888000,
	355687428096000,
	6402373705728000,
	121645100408832000,
	2432902008176640000,
}

// Lanczos approximation, g = 7, 9 coefficients.
const lanczosG = 7.0

var lanczosCoef = [9]float64{
	0.99999999999980993,
	676.5203681218851,
	-1259.1392167224028,
	771.32342877765313,
	-176.61502916214059,
	12.507343278686905,
	-0.13857109526572012,
	9.9843695780195716e-6,
	1.5056327351493116e-7,
}

// Factorial returns n! from the precomputed table.
//
// Errors:
//   - ErrDomain   if n < 0.
//   - ErrOverflow if n > MaxFactorial (the value would wrap int64).
//
// Complexity: O(1).
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, scalarErrorf("Factorial", ErrDomain)
	}
	if n > MaxFactorial {
		return 0, scalarErrorf("Factorial", ErrOverflow)
	}

	return factorials[n], nil
}

// FactorialReal returns Γ(x+1), the continuous extension of x!.
func FactorialReal(x float64) float64 {
	return Gamma(x + 1)
}

// Gamma evaluates Γ(x) with the Lanczos series. Inputs below 0.5 go through
// the reflection formula Γ(x)Γ(1-x) = π / sin(πx).
// Poles (0, -1, -2, ...) produce ±Inf or NaN rather than an error.
func Gamma(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x < 0.5 {
		return math.Pi / (math.Sin(math.Pi*x) * Gamma(1-x))
	}
	x--
	a := lanczosCoef[0]
	t := x + lanczosG + 0.5
	for i := 1; i < len(lanczosCoef); i++ {
		a += lanczosCoef[i] / (x + float64(i))
	}

	return math.Sqrt(2*math.Pi) * math.Pow(t, x+0.5) * math.Exp(-t) * a
}
