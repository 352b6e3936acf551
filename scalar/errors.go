// SPDX-License-Identifier: MIT

package scalar

import (
	"errors"
	"fmt"
)

var (
	// ErrOverflow signals a result that does not fit the integer table range.
	ErrOverflow = errors.New("scalar: integer overflow")

	// ErrDomain signals an argument outside the mathematical domain of the function.
	ErrDomain = errors.New("scalar: argument outside domain")

	// ErrDivisionByZero signals Quo with an exactly zero divisor.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrSyntax signals malformed numeric text.
	ErrSyntax = errors.New("scalar: malformed number")
)

// scalarErrorf wraps err with an operation tag, keeping errors.Is matching intact.
func scalarErrorf(op string, err error) error {
	return fmt.Errorf("scalar.%s: %w", op, err)
}
