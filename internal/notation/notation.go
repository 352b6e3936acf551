// SPDX-License-Identifier: MIT

// Package notation implements the debugging text form shared by every value
// type in the module:
//
//	TypeName{field=value, field=value}
//
// Values are opaque strings to this package and may themselves be braced
// records, e.g. Vec2{x=RealNumber{e=1, m=1.5}, y=RealNumber{e=0, m=0}}.
// Splitting is depth-aware, so commas and '=' inside nested braces never
// break the outer record.
//
// Complexity: Format and Parse are O(len(s)).
package notation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax reports text that does not follow the TypeName{k=v, ...} shape.
var ErrSyntax = errors.New("notation: malformed text")

const (
	_open     = '{'
	_close    = '}'
	_assign   = '='
	_sep      = ','
	_fieldSep = ", "
)

// Field is a single key=value pair in declaration order.
type Field struct {
	Key   string
	Value string
}

// syntaxErrorf wraps ErrSyntax with the offending input and a reason.
func syntaxErrorf(s, reason string) error {
	return fmt.Errorf("%w: %q: %s", ErrSyntax, s, reason)
}

// Format renders name and fields as Name{k=v, k=v}.
func Format(name string, fields ...Field) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte(_open)
	for i, f := range fields {
		if i > 0 {
			b.WriteString(_fieldSep)
		}
		b.WriteString(f.Key)
		b.WriteByte(_assign)
		b.WriteString(f.Value)
	}
	b.WriteByte(_close)

	return b.String()
}

// Parse splits s into its type name and fields.
//
// Implementation:
//   - Stage 1: locate the opening brace and validate the name.
//   - Stage 2: require a matching closing brace at the very end.
//   - Stage 3: split the body on depth-0 commas, then each part on its first depth-0 '='.
//
// Errors: ErrSyntax (wrapped) for any structural violation.
func Parse(s string) (string, []Field, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, _open)
	if open <= 0 {
		return "", nil, syntaxErrorf(s, "missing type name or '{'")
	}
	name := strings.TrimSpace(s[:open])
	if !isIdent(name) {
		return "", nil, syntaxErrorf(s, "invalid type name")
	}
	if s[len(s)-1] != _close {
		return "", nil, syntaxErrorf(s, "missing closing '}'")
	}
	body := s[open+1 : len(s)-1]
	if err := checkBalance(body); err != nil {
		return "", nil, syntaxErrorf(s, err.Error())
	}
	if strings.TrimSpace(body) == "" {
		return name, nil, nil
	}

	parts := splitTop(body, _sep)
	fields := make([]Field, 0, len(parts))
	for _, p := range parts {
		kv := splitTop(p, _assign)
		if len(kv) < 2 {
			return "", nil, syntaxErrorf(s, "field without '='")
		}
		key := strings.TrimSpace(kv[0])
		// Re-join: only the first depth-0 '=' separates key from value.
		val := strings.TrimSpace(strings.Join(kv[1:], string(_assign)))
		if key == "" || val == "" {
			return "", nil, syntaxErrorf(s, "empty key or value")
		}
		fields = append(fields, Field{Key: key, Value: val})
	}

	return name, fields, nil
}

// Expect parses s, checks the type name and the exact key sequence, and
// returns the values in key order.
func Expect(s, name string, keys ...string) ([]string, error) {
	got, fields, err := Parse(s)
	if err != nil {
		return nil, err
	}
	if got != name {
		return nil, syntaxErrorf(s, fmt.Sprintf("want type %s, got %s", name, got))
	}
	if len(fields) != len(keys) {
		return nil, syntaxErrorf(s, fmt.Sprintf("want %d fields, got %d", len(keys), len(fields)))
	}
	vals := make([]string, len(keys))
	for i, k := range keys {
		if fields[i].Key != k {
			return nil, syntaxErrorf(s, fmt.Sprintf("field %d: want %q, got %q", i, k, fields[i].Key))
		}
		vals[i] = fields[i].Value
	}

	return vals, nil
}

// splitTop splits s on sep occurrences that are not nested inside braces.
func splitTop(s string, sep byte) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case _open:
			depth++
		case _close:
			depth--
		case sep:
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}

	return append(out, s[start:])
}

// checkBalance rejects bodies whose braces do not nest.
func checkBalance(s string) error {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case _open:
			depth++
		case _close:
			depth--
			if depth < 0 {
				return errors.New("unbalanced '}'")
			}
		}
	}
	if depth != 0 {
		return errors.New("unbalanced '{'")
	}

	return nil
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}

	return true
}
