// SPDX-License-Identifier: MIT

package fraction

import (
	"fmt"
	"strconv"
	"strings"
)

const _slash = "/"

// String renders f as "numerator/denominator" with the shortest float
// representation of each field, e.g. "1/3", "-2.5/1", "0/0".
func (f Fraction) String() string {
	return formatField(f.num) + _slash + formatField(f.den)
}

// Parse reads "n/d" or a bare number "n" (denominator 1).
// Parse(f.String()) is StrictEqual to f for every finite-field f.
func Parse(s string) (Fraction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Fraction{}, parseErrorf(s, "empty input")
	}
	parts := strings.Split(s, _slash)
	switch len(parts) {
	case 1:
		v, err := parseField(parts[0])
		if err != nil {
			return Fraction{}, parseErrorf(s, err.Error())
		}
		return New(v), nil
	case 2:
		n, err := parseField(parts[0])
		if err != nil {
			return Fraction{}, parseErrorf(s, err.Error())
		}
		d, err := parseField(parts[1])
		if err != nil {
			return Fraction{}, parseErrorf(s, err.Error())
		}
		if !isFinite(n) || !isFinite(d) {
			return Fraction{}, parseErrorf(s, "fields must be finite")
		}
		return ratio(n, d), nil
	default:
		return Fraction{}, parseErrorf(s, "more than one '/'")
	}
}

// MustParse is Parse that panics on error; intended for literals in tests
// and examples.
func MustParse(s string) Fraction {
	f, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return f
}

// MarshalText implements encoding.TextMarshaler.
func (f Fraction) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fraction) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

func formatField(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseErrorf(s, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrSyntax, s, reason)
}
