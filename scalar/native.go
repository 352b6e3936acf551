// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"

	"github.com/chewxy/math32"
)

// F64, F32, I32 and I64 are the native component types. Being defined on
// the builtin kinds, untyped constants convert implicitly:
//
//	v := vector.Vec3[scalar.F64]{1, 0, 0}
type (
	F64 float64
	F32 float32
	I32 int32
	I64 int64
)

// ---------- F64 ----------

func (a F64) Add(b F64) F64 { return a + b }
func (a F64) Sub(b F64) F64 { return a - b }
func (a F64) Mul(b F64) F64 { return a * b }
func (a F64) Neg() F64      { return -a }
func (a F64) Abs() F64      { return F64(math.Abs(float64(a))) }
func (a F64) Sqrt() F64     { return F64(math.Sqrt(float64(a))) }
func (a F64) IsZero() bool  { return a == 0 }

// Quo returns a/b, or ErrDivisionByZero when b is exactly zero.
func (a F64) Quo(b F64) (F64, error) {
	if b == 0 {
		return 0, scalarErrorf("F64.Quo", ErrDivisionByZero)
	}

	return a / b, nil
}

func (a F64) Cmp(b F64) int           { return cmpOrdered(a, b) }
func (a F64) ApproxEqual(b F64) bool  { return Equals(float64(a), float64(b)) }
func (a F64) Float64() float64        { return float64(a) }
func (F64) FromFloat64(x float64) F64 { return F64(x) }
func (a F64) String() string          { return strconv.FormatFloat(float64(a), 'g', -1, 64) }
func (F64) Parse(s string) (F64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, scalarErrorf("F64.Parse", ErrSyntax)
	}

	return F64(v), nil
}

// ---------- F32 ----------

func (a F32) Add(b F32) F32 { return a + b }
func (a F32) Sub(b F32) F32 { return a - b }
func (a F32) Mul(b F32) F32 { return a * b }
func (a F32) Neg() F32      { return -a }
func (a F32) Abs() F32      { return F32(math32.Abs(float32(a))) }
func (a F32) Sqrt() F32     { return F32(math32.Sqrt(float32(a))) }
func (a F32) IsZero() bool  { return a == 0 }

// Quo returns a/b, or ErrDivisionByZero when b is exactly zero.
func (a F32) Quo(b F32) (F32, error) {
	if b == 0 {
		return 0, scalarErrorf("F32.Quo", ErrDivisionByZero)
	}

	return a / b, nil
}

func (a F32) Cmp(b F32) int           { return cmpOrdered(a, b) }
func (a F32) ApproxEqual(b F32) bool  { return Equals(float64(a), float64(b)) }
func (a F32) Float64() float64        { return float64(a) }
func (F32) FromFloat64(x float64) F32 { return F32(x) }
func (a F32) String() string          { return strconv.FormatFloat(float64(a), 'g', -1, 32) }
func (F32) Parse(s string) (F32, error) {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, scalarErrorf("F32.Parse", ErrSyntax)
	}

	return F32(v), nil
}

// ---------- I32 ----------
// Integer components truncate: Sqrt is floor(√a) (0 for negative a) and
// FromFloat64 truncates toward zero.

func (a I32) Add(b I32) I32 { return a + b }
func (a I32) Sub(b I32) I32 { return a - b }
func (a I32) Mul(b I32) I32 { return a * b }
func (a I32) Neg() I32      { return -a }
func (a I32) Abs() I32      { return Abs(a) }
func (a I32) Sqrt() I32     { return I32(isqrt(int64(a))) }
func (a I32) IsZero() bool  { return a == 0 }

// Quo returns the truncated quotient a/b, or ErrDivisionByZero when b is zero.
func (a I32) Quo(b I32) (I32, error) {
	if b == 0 {
		return 0, scalarErrorf("I32.Quo", ErrDivisionByZero)
	}

	return a / b, nil
}

func (a I32) Cmp(b I32) int           { return cmpOrdered(a, b) }
func (a I32) ApproxEqual(b I32) bool  { return a == b }
func (a I32) Float64() float64        { return float64(a) }
func (I32) FromFloat64(x float64) I32 { return I32(x) }
func (a I32) String() string          { return strconv.FormatInt(int64(a), 10) }
func (I32) Parse(s string) (I32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, scalarErrorf("I32.Parse", ErrSyntax)
	}

	return I32(v), nil
}

// ---------- I64 ----------

func (a I64) Add(b I64) I64 { return a + b }
func (a I64) Sub(b I64) I64 { return a - b }
func (a I64) Mul(b I64) I64 { return a * b }
func (a I64) Neg() I64      { return -a }
func (a I64) Abs() I64      { return Abs(a) }
func (a I64) Sqrt() I64     { return I64(isqrt(int64(a))) }
func (a I64) IsZero() bool  { return a == 0 }

// Quo returns the truncated quotient a/b, or ErrDivisionByZero when b is zero.
func (a I64) Quo(b I64) (I64, error) {
	if b == 0 {
		return 0, scalarErrorf("I64.Quo", ErrDivisionByZero)
	}

	return a / b, nil
}

func (a I64) Cmp(b I64) int           { return cmpOrdered(a, b) }
func (a I64) ApproxEqual(b I64) bool  { return a == b }
func (a I64) Float64() float64        { return float64(a) }
func (I64) FromFloat64(x float64) I64 { return I64(x) }
func (a I64) String() string          { return strconv.FormatInt(int64(a), 10) }
func (I64) Parse(s string) (I64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, scalarErrorf("I64.Parse", ErrSyntax)
	}

	return I64(v), nil
}

// ---------- helpers ----------

func cmpOrdered[T Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// maxIsqrt is floor(√MaxInt64), the largest root an int64 can hold.
const maxIsqrt = 3037000499

// isqrt is floor(√n) for n ≥ 0 and 0 otherwise, corrected for float rounding.
// Comparisons use r > n/r so no intermediate square can overflow.
func isqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}
	r := min(int64(math.Sqrt(float64(n))), maxIsqrt)
	for r > n/r {
		r--
	}
	for r < maxIsqrt && r+1 <= n/(r+1) {
		r++
	}

	return r
}
