// SPDX-License-Identifier: MIT

package square

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

// Area returns side² computed in float64 arithmetic.
//
// The result is exact whenever side² is representable, e.g. Area(1e6) == 1e12.
// Sides above √MaxFloat64 (about 1.34e154) overflow to +Inf with a nil error.
// Errors: ErrNotANumber, ErrNonPositive.
func Area(side float64) (float64, error) {
	if err := ValidateSide(side); err != nil {
		return 0, err
	}

	return side * side, nil
}

// PreciseArea returns side² using exact decimal multiplication,
// so 5.5 yields 30.25 with no binary rounding drift.
//
// Errors: ErrNonPositive, ErrOverflow when the integer part of the
// product exceeds decimal.MaxPrec digits, or ErrPrecision when the product
// would need rounding to fit the representation.
func PreciseArea(side decimal.Decimal) (decimal.Decimal, error) {
	if err := ValidateSideDecimal(side); err != nil {
		return decimal.Decimal{}, err
	}

	area, err := side.Mul(side)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q squared: %w", ErrOverflow, side, err)
	}
	// An exact square of a value with minimal scale k has minimal scale 2k;
	// anything less means Mul rounded away fractional digits.
	if area.MinScale() < 2*side.MinScale() {
		return decimal.Decimal{}, fmt.Errorf("%w: %q squared needs scale %d", ErrPrecision, side, 2*side.MinScale())
	}

	return area, nil
}

// Perimeter returns 4·side.
// Errors: ErrNotANumber, ErrNonPositive.
func Perimeter(side float64) (float64, error) {
	if err := ValidateSide(side); err != nil {
		return 0, err
	}

	return 4 * side, nil
}

// Diagonal returns side·√2.
// Errors: ErrNotANumber, ErrNonPositive.
func Diagonal(side float64) (float64, error) {
	if err := ValidateSide(side); err != nil {
		return 0, err
	}

	return side * math.Sqrt2, nil
}
