// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every failure returned by this package wraps one of these sentinels, and the
// failure sentinels carry their outcome.Outcome so that outcome.Of(err) and the
// Register agree on the classification. Tests MUST check them via errors.Is.

package matrix

import (
	"errors"

	"github.com/katalvlaran/fixmat/outcome"
)

// NOTE ON NAMING & WRAPPING
// -------------------------
// Every message is prefixed with "matrix: ...". Call sites wrap with
// fmt.Errorf("Fixed.<Method>(args): %w", ErrX) so coordinates survive in logs
// and errors.Is still matches.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released receiver -> shape -> index -> numeric policy.
// Read: header -> allocation (ErrCreate wins) -> elements.

// Classified failures: one sentinel per outcome.Outcome failure kind.
var (
	// ErrCreate marks a refused allocation (outcome.CreateFailure).
	// Returned together with ErrInvalidDimensions, which names the cause.
	ErrCreate = outcome.New(outcome.CreateFailure, "matrix: cannot create matrix")

	// ErrRead marks malformed or truncated serialized input (outcome.ReadFailure).
	ErrRead = outcome.New(outcome.ReadFailure, "matrix: cannot read matrix")

	// ErrSwapIndex marks equal, negative or out-of-range swap indices
	// (outcome.SwapIndexError).
	ErrSwapIndex = outcome.New(outcome.SwapIndexError, "matrix: invalid row indices for swap")
)

// Causes and caller-contract violations. The latter classify as
// outcome.UnknownError because they carry no outcome of their own.
var (
	// ErrInvalidDimensions indicates rows/cols outside [1, MaxSize].
	ErrInvalidDimensions = errors.New("matrix: dimensions must be in [1, MaxSize]")

	// ErrOutOfRange indicates that an index (row or column) is outside the active region.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// by the numeric policy (Set, Fill, Read).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Fixed receiver was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrReleased indicates use of a matrix after Release.
	ErrReleased = errors.New("matrix: matrix already released")

	// ErrNilReader indicates Read was called with a nil io.Reader.
	ErrNilReader = errors.New("matrix: nil reader")

	// ErrWrite wraps a failure reported by the destination io.Writer.
	ErrWrite = errors.New("matrix: write failed")

	// ErrConfig indicates an unreadable or invalid YAML configuration.
	ErrConfig = errors.New("matrix: invalid config")
)
