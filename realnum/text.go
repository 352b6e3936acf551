// SPDX-License-Identifier: MIT

package realnum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/vecalg/internal/notation"
)

const (
	_typeName = "RealNumber"
	_keyExp   = "e"
	_keyMant  = "m"
)

// String renders a as RealNumber{e=<exponent>, m=<mantissa>}.
func (a Number) String() string {
	return notation.Format(_typeName,
		notation.Field{Key: _keyExp, Value: formatField(a.exp)},
		notation.Field{Key: _keyMant, Value: formatField(a.mant)},
	)
}

// Parse reads RealNumber{e=..., m=...} or a bare float literal.
// The result is normalized, so RealNumber{e=0, m=12} reads as 12.
func Parse(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if !strings.ContainsRune(s, '{') {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Number{}, parseErrorf(s, err)
		}
		return New(v), nil
	}
	vals, err := notation.Expect(s, _typeName, _keyExp, _keyMant)
	if err != nil {
		return Number{}, parseErrorf(s, err)
	}
	e, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return Number{}, parseErrorf(s, err)
	}
	m, err := strconv.ParseFloat(vals[1], 64)
	if err != nil {
		return Number{}, parseErrorf(s, err)
	}

	return normalize(e, m), nil
}

// Parse is the package Parse; it satisfies scalar.Scalar.
func (Number) Parse(s string) (Number, error) { return Parse(s) }

// MustParse is Parse that panics on error.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return n
}

// MarshalText implements encoding.TextMarshaler.
func (a Number) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Number) UnmarshalText(b []byte) error {
	n, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = n

	return nil
}

func formatField(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseErrorf(s string, cause error) error {
	return fmt.Errorf("%w: %q: %v", ErrSyntax, s, cause)
}
