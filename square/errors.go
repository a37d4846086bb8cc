// SPDX-License-Identifier: MIT
// Package square: sentinel error set.
// Every message is prefixed with "square: ". Validators wrap these with the
// offending parameter name; callers match with errors.Is.

package square

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the single error kind for rejected inputs.
	// Both ErrNotANumber and ErrNonPositive match it via errors.Is.
	ErrInvalidArgument = errors.New("square: invalid argument")

	// ErrNotANumber signals a NaN or ±Inf side length.
	ErrNotANumber = fmt.Errorf("%w: side length must be a valid number", ErrInvalidArgument)

	// ErrNonPositive signals a side length that is zero or negative (-0 included).
	ErrNonPositive = fmt.Errorf("%w: side length must be greater than zero", ErrInvalidArgument)

	// ErrOverflow is returned by PreciseArea when the exact product does not
	// fit the decimal representation.
	ErrOverflow = errors.New("square: decimal overflow")

	// ErrPrecision is returned by PreciseArea when the exact product has more
	// significant digits than the decimal representation holds.
	ErrPrecision = errors.New("square: decimal precision loss")
)
