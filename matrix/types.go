// SPDX-License-Identifier: MIT

// Package matrix: domain types and capacity constants.
// This file contains ONLY the entity definition; constructors and methods
// live in impl_fixed.go, serialization in textio.go.
package matrix

import (
	"fmt"
	"io"
)

// MaxSize is the fixed capacity for both rows and columns of every matrix.
const MaxSize = 100

// Variant names the storage variant of this package.
const Variant = "fixed"

// Fixed is a row-major matrix of float64 values with a capacity of
// MaxSize×MaxSize and an active region of r×c.
//   - r,c hold the active extent; 0 < r,c ≤ MaxSize for every constructed value.
//   - data is a flat buffer of exactly r*c cells (offset = i*c + j); cells
//     outside the active region are never allocated, so they cannot be read.
//   - opts is the resolved configuration the matrix was created with
//     (register, logger, random source, write format, numeric policy).
//
// A Fixed is owned by its creator and carries no locking: do not mutate the
// same value from several goroutines.
type Fixed struct {
	r, c     int       // active rows and columns
	data     []float64 // contiguous row-major storage (len == r*c), nil after Release
	released bool      // set once by Release
	opts     Options   // resolved options, inherited by Clone
	clones   uint64    // Clone calls so far; selects each clone's random seed
}

// Compile-time assertions for interface conformance.
var (
	_ fmt.Stringer = (*Fixed)(nil)
	_ io.WriterTo  = (*Fixed)(nil)
)
