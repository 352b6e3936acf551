// SPDX-License-Identifier: MIT

package scalar

import "math"

// Sign classifies a value into one of six states.
// The zero value is Zero.
type Sign int8

const (
	NegativeInfinity Sign = iota - 2
	Negative
	Zero
	Positive
	PositiveInfinity
	NaN
)

var signNames = map[Sign]string{
	NegativeInfinity: "-Inf",
	Negative:         "Negative",
	Zero:             "Zero",
	Positive:         "Positive",
	PositiveInfinity: "+Inf",
	NaN:              "NaN",
}

// SignOf classifies v. Both +0 and -0 are Zero.
func SignOf(v float64) Sign {
	switch {
	case math.IsNaN(v):
		return NaN
	case math.IsInf(v, 1):
		return PositiveInfinity
	case math.IsInf(v, -1):
		return NegativeInfinity
	case v > 0:
		return Positive
	case v < 0:
		return Negative
	default:
		return Zero
	}
}

// IsFinite reports whether s describes a finite value.
func (s Sign) IsFinite() bool { return s == Negative || s == Zero || s == Positive }

// IsInfinite reports whether s is one of the infinities.
func (s Sign) IsInfinite() bool { return s == NegativeInfinity || s == PositiveInfinity }

// Polarity maps s to -1, 0 or +1. NaN maps to 0.
func (s Sign) Polarity() int {
	switch s {
	case NegativeInfinity, Negative:
		return -1
	case Positive, PositiveInfinity:
		return 1
	default:
		return 0
	}
}

// Negate flips the direction of s; Zero and NaN are fixed points.
func (s Sign) Negate() Sign {
	switch s {
	case NegativeInfinity:
		return PositiveInfinity
	case Negative:
		return Positive
	case Positive:
		return Negative
	case PositiveInfinity:
		return NegativeInfinity
	default:
		return s
	}
}

// Multiply returns the sign of a product whose factors have signs s and o.
//
// Table (rows s, columns o):
//   - NaN with anything        → NaN
//   - Zero with ±Inf           → NaN
//   - Zero with finite         → Zero
//   - ±Inf with nonzero        → ±Inf, sign by polarity product
//   - finite nonzero pair      → Negative/Positive by polarity product
func (s Sign) Multiply(o Sign) Sign {
	if s == NaN || o == NaN {
		return NaN
	}
	if s == Zero || o == Zero {
		if s.IsInfinite() || o.IsInfinite() {
			return NaN
		}
		return Zero
	}
	positive := s.Polarity()*o.Polarity() > 0
	if s.IsInfinite() || o.IsInfinite() {
		if positive {
			return PositiveInfinity
		}
		return NegativeInfinity
	}
	if positive {
		return Positive
	}

	return Negative
}

// Rank orders signs as -Inf < Negative < Zero < Positive < +Inf < NaN.
// It is the single ordering used by Compare in fraction and realnum.
func (s Sign) Rank() int { return int(s) }

// String returns a short human-readable name.
func (s Sign) String() string {
	if n, ok := signNames[s]; ok {
		return n
	}

	return "Sign(?)"
}
