// SPDX-License-Identifier: MIT

// Package realnum implements Number, a real value stored as
//
//	2^exponent * mantissa
//
// with both fields float64. The exponent field is not limited to the
// ±1023 range of a native double, so products and powers that would
// overflow float64 stay representable; Float64 saturates to ±Inf or 0
// only when converting back.
//
// Normalization:
//   - Every constructor and every operation returns a canonical value:
//     integral exponent, |mantissa| in [1, 2); zero is (0, 0); non-finite
//     values keep Inf/NaN in the mantissa with exponent 0.
//   - Renormalization is complete on every path (a single Frexp, never a
//     partial one-step correction), so comparisons by exponent then
//     mantissa are always valid.
//
// Square root runs exactly three Newton iterations from the guess
// (exponent/2, mantissa). The iteration count is fixed (SqrtIterations),
// which bounds latency and yields a relative error below ~2e-6.
//
// Text form: RealNumber{e=3, m=1.5} (see String and Parse).
package realnum
