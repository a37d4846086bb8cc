// SPDX-License-Identifier: MIT
// Package: square
//
// Purpose:
//  - Single source of truth for side-length checks shared by every formula.
//  - Return sentinels tagged with the parameter name so call sites need no
//    guard logic of their own.
//
// Note:
//  - The float64 validator checks finiteness before sign.
//  - Decimals have no NaN/Inf states, so only the sign is checked.

package square

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// paramSide names the validated parameter in error messages.
const paramSide = "sideLength"

// validatorErrorf tags err with the parameter it refers to.
func validatorErrorf(param string, err error) error {
	// Errors wrap the sentinel so errors.Is still matches.
	return fmt.Errorf("%s: %w", param, err)
}

// ValidateSide ensures side is finite and strictly positive.
//
// Errors: ErrNotANumber for NaN/±Inf, ErrNonPositive for side <= 0.
// Complexity: O(1).
func ValidateSide(side float64) error {
	// Non-finite values are reported before the sign check.
	if math.IsNaN(side) || math.IsInf(side, 0) {
		return validatorErrorf(paramSide, ErrNotANumber)
	}
	// -0 <= 0 holds, so negative zero is rejected here too.
	if side <= 0 {
		return validatorErrorf(paramSide, ErrNonPositive)
	}

	// Otherwise accept.
	return nil
}

// ValidateSideDecimal ensures side is strictly positive.
//
// Errors: ErrNonPositive for side <= 0.
// Complexity: O(1).
func ValidateSideDecimal(side decimal.Decimal) error {
	// Zero at any scale and negatives share one sentinel.
	if side.Sign() <= 0 {
		return validatorErrorf(paramSide, ErrNonPositive)
	}

	// Otherwise accept.
	return nil
}
