// SPDX-License-Identifier: MIT

package realnum

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero signals Div/Quo by an exactly zero Number.
	ErrDivisionByZero = errors.New("realnum: division by zero")

	// ErrSyntax signals malformed RealNumber text.
	ErrSyntax = errors.New("realnum: malformed text")
)

func numberErrorf(op string, err error) error {
	return fmt.Errorf("Number.%s: %w", op, err)
}
