// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrUnsupported indicates an operation with no defined meaning for the
	// operand (e.g. Vec3.Mul, normalizing a zero vector).
	ErrUnsupported = errors.New("vector: unsupported operation")

	// ErrDivisionByZero indicates DivScalar by an exactly zero scalar.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrOutOfRange indicates a component index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrSyntax indicates malformed vector text.
	ErrSyntax = errors.New("vector: malformed text")
)

// vectorErrorf tags err with the receiver type and method.
func vectorErrorf(typ, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", typ, method, err)
}
