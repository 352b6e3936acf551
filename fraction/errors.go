// SPDX-License-Identifier: MIT

package fraction

import (
	"errors"
	"fmt"
)

var (
	// ErrArithmetic is the root of every arithmetic failure in this package.
	ErrArithmetic = errors.New("fraction: arithmetic error")

	// ErrNonFinite signals Add/Sub with an operand whose denominator is zero.
	ErrNonFinite = fmt.Errorf("%w: non-finite operand", ErrArithmetic)

	// ErrDivisionByZero signals Div by a fraction whose numerator is zero.
	ErrDivisionByZero = fmt.Errorf("%w: division by zero", ErrArithmetic)

	// ErrSyntax signals malformed "n/d" text.
	ErrSyntax = errors.New("fraction: malformed text")
)

func fractionErrorf(op string, err error) error {
	return fmt.Errorf("Fraction.%s: %w", op, err)
}
