// Package square computes the elementary properties of a square from its
// side length: area, exact decimal area, perimeter and diagonal.
//
// 🚀 What is in here?
//
//	Four pure functions sharing one validator:
//	  • Area        — side² in float64
//	  • PreciseArea — side² in exact decimal arithmetic (govalues/decimal)
//	  • Perimeter   — 4·side
//	  • Diagonal    — side·√2
//
// ✨ Guarantees:
//   - validation always runs before computation
//   - NaN and ±Inf are rejected with ErrNotANumber
//   - zero, negative and -0 sides are rejected with ErrNonPositive
//   - both match ErrInvalidArgument via errors.Is
//   - no shared state: every call is safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvgeom/square"
//
//	area, err := square.Area(5)
//	if errors.Is(err, square.ErrInvalidArgument) {
//	  // reject input
//	}
//
//	exact, err := square.PreciseArea(decimal.MustParse("5.5")) // 30.25
//
// When several properties of the same square are needed, New validates once
// and returns a Square whose methods cannot fail.
//
// Complexity: O(1) time and memory for every operation.
package square
