// SPDX-License-Identifier: MIT

package square

import "math"

// Square is an immutable square with a validated side length.
// Construct it with New; the zero value has side 0 and all measures 0.
type Square struct {
	side float64
}

// Measures bundles the float64 properties of a square.
type Measures struct {
	Side      float64
	Area      float64
	Perimeter float64
	Diagonal  float64
}

// New validates side once and returns a Square whose methods cannot fail.
// Errors: ErrNotANumber, ErrNonPositive.
func New(side float64) (Square, error) {
	if err := ValidateSide(side); err != nil {
		return Square{}, err
	}

	return Square{side: side}, nil
}

// Side returns the side length.
func (s Square) Side() float64 { return s.side }

// Area returns side².
func (s Square) Area() float64 { return s.side * s.side }

// Perimeter returns 4·side.
func (s Square) Perimeter() float64 { return 4 * s.side }

// Diagonal returns side·√2.
func (s Square) Diagonal() float64 { return s.side * math.Sqrt2 }

// Measure computes every property at once.
func (s Square) Measure() Measures {
	return Measures{
		Side:      s.side,
		Area:      s.Area(),
		Perimeter: s.Perimeter(),
		Diagonal:  s.Diagonal(),
	}
}
