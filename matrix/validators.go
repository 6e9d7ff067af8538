// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single source of truth for shape, index and numeric checks.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// validateShape ensures 1 ≤ rows ≤ MaxSize and 1 ≤ cols ≤ MaxSize.
// Returns ErrInvalidDimensions otherwise.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || rows > MaxSize || cols <= 0 || cols > MaxSize {
		return ErrInvalidDimensions
	}

	return nil
}

// validateSwap ensures r1 and r2 are distinct rows inside [0, rows).
// Returns ErrSwapIndex otherwise.
// Complexity: O(1).
func validateSwap(r1, r2, rows int) error {
	if r1 == r2 || r1 < 0 || r2 < 0 || r1 >= rows || r2 >= rows {
		return ErrSwapIndex
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// validateFinite returns ErrNaNInf when enabled and v is not finite.
func validateFinite(v float64, enabled bool) error {
	if enabled && isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}
