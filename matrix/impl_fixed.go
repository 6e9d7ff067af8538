// SPDX-License-Identifier: MIT

// Package matrix - Fixed storage (row-major) & lifecycle operations.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j,
//     bounded by the fixed capacity MaxSize×MaxSize.
//   - Implement the lifecycle: New, Release, Fill, Clone, Randomize, SwapRows.
//   - Guarantee safety at the public surface: no method panics, not even on a nil receiver;
//     operations return an error, accessors return zero values.
//   - Report each lifecycle result twice: as the returned error and in the matrix's outcome.Register.
//
// Reporting contract (which calls write the Register):
//   - New: only on failure (CreateFailure). A successful allocation leaves the Register untouched.
//   - Release, Fill, Clone, Randomize, SwapRows, WriteTo, Read: always (success → OK).
//   - Rows/Cols/Shape/Cap/At/Set/Do/Equal/String: never.
//
// Contract violations (nil receiver, use after Release) are returned as
// ErrNilMatrix / ErrReleased and classify as outcome.UnknownError.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Fill/Clone/Randomize: O(r*c); SwapRows: O(c).

package matrix

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxRelease   = "Release"
	ctxFill      = "Fill"
	ctxClone     = "Clone"
	ctxRandomize = "Randomize"
	ctxSwapRows  = "SwapRows"
	ctxAt        = "At"
	ctxSet       = "Set"
)


// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtReleased = "Fixed(released)"
	_fmtNil      = "Fixed(nil)"
)

// fixedErrorf wraps an error with a uniform Fixed context and callsite indices.
// Format: "Fixed.<method>(a,b): %w", preserving the sentinel for errors.Is.
func fixedErrorf(method string, a, b int, err error) error {
	return fmt.Errorf("Fixed.%s(%d,%d): %w", method, a, b, err)
}

// New creates a rows×cols zero matrix.
// MAIN DESCRIPTION:
//   - Public allocator with strict shape validation against the fixed capacity.
//
// Implementation:
//   - Stage 1: resolve options.
//   - Stage 2: validate 1 ≤ rows,cols ≤ MaxSize; else ErrCreate + ErrInvalidDimensions.
//   - Stage 3: allocate a zero-filled buffer of rows*cols cells.
//
// Behavior highlights:
//   - Failure records outcome.CreateFailure; success does not touch the Register.
//   - Contents are zero (Go has no uninitialized memory); callers should still
//     populate with Fill, Randomize or Set before reading.
//
// Errors:
//   - ErrCreate wrapping ErrInvalidDimensions.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New(rows, cols int, opts ...Option) (*Fixed, error) {
	o := gatherOptions(opts...)

	return allocate(rows, cols, o)
}

// allocate is New with already resolved options (shared by Clone and Read).
func allocate(rows, cols int, o Options) (*Fixed, error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, o.record(ctxNew, fmt.Errorf("matrix.New(%d,%d): %w: %w", rows, cols, ErrCreate, err))
	}
	o.logger.Debug(logOperationComplete, zap.String("op", ctxNew), zap.Int("rows", rows), zap.Int("cols", cols))

	return &Fixed{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
		opts: o,
	}, nil
}

// check rejects nil and released receivers.
func (m *Fixed) check(method string) error {
	if m == nil {
		return fmt.Errorf("Fixed.%s: %w", method, ErrNilMatrix)
	}
	if m.released {
		return fmt.Errorf("Fixed.%s: %w", method, ErrReleased)
	}

	return nil
}

// reporter returns the options that receive the outcome of a call on m.
// A nil receiver reports to the defaults (outcome.Default, no-op logger).
func (m *Fixed) reporter() *Options {
	if m == nil {
		o := defaultOptions()
		return &o
	}

	return &m.opts
}

// Release drops the backing storage and marks the matrix unusable.
// Implementation:
//   - Stage 1: reject a nil receiver (ErrNilMatrix).
//   - Stage 2: drop data, set released; record OK.
//
// Behavior highlights:
//   - Idempotent: releasing twice is a no-op that still records OK.
//   - Every later lifecycle call returns ErrReleased.
func (m *Fixed) Release() error {
	if m == nil {
		return m.reporter().record(ctxRelease, fmt.Errorf("Fixed.%s: %w", ctxRelease, ErrNilMatrix))
	}
	if !m.released {
		m.opts.logger.Debug(logOperationComplete, zap.String("op", ctxRelease), zap.Int("rows", m.r), zap.Int("cols", m.c))
	}
	m.drop()

	return m.opts.record(ctxRelease, nil)
}

// drop releases the storage without reporting (used by Release and by Read
// to discard a partially populated matrix).
func (m *Fixed) drop() {
	m.data = nil
	m.released = true
}

// Released reports whether Release has been called.
func (m *Fixed) Released() bool { return m != nil && m.released }

// Rows returns the active row count (0 for a nil matrix). No side effects.
// Complexity: O(1).
func (m *Fixed) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the active column count (0 for a nil matrix). No side effects.
// Complexity: O(1).
func (m *Fixed) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Fixed) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// Cap returns the fixed capacity, MaxSize in both dimensions.
func (m *Fixed) Cap() (rows, cols int) { return MaxSize, MaxSize }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Fixed) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col).
// Errors: ErrNilMatrix, ErrReleased, ErrOutOfRange. Does not touch the Register.
// Complexity: O(1).
func (m *Fixed) At(row, col int) (float64, error) {
	if err := m.check(ctxAt); err != nil {
		return 0, err
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, fixedErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrNilMatrix, ErrReleased, ErrOutOfRange, ErrNaNInf (policy).
// Does not touch the Register.
// Complexity: O(1).
func (m *Fixed) Set(row, col int, v float64) error {
	if err := m.check(ctxSet); err != nil {
		return err
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return fixedErrorf(ctxSet, row, col, err)
	}
	if err = validateFinite(v, m.opts.validateNaNInf); err != nil {
		return fixedErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Fill overwrites every active cell with v and records OK.
// Implementation:
//   - Stage 1: reject nil/released receivers.
//   - Stage 2: enforce the numeric policy on v (ErrNaNInf, classified UnknownError).
//   - Stage 3: write v into all r*c cells.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Fixed) Fill(v float64) error {
	if err := m.check(ctxFill); err != nil {
		return m.reporter().record(ctxFill, err)
	}
	if err := validateFinite(v, m.opts.validateNaNInf); err != nil {
		return m.opts.record(ctxFill, fmt.Errorf("Fixed.%s(%g): %w", ctxFill, v, err))
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m.opts.record(ctxFill, nil)
}

// Clone returns an independent copy of the active region.
// MAIN DESCRIPTION:
//   - Allocate a matrix with the same shape (through the same path as New),
//     copy every active cell, record OK.
//
// Behavior highlights:
//   - Independence: mutations of the clone never affect the source.
//   - Options are inherited except the random stream: the clone is seeded with
//     cloneSeed(seed, n) for the n-th clone of this source, so it never shares
//     a *rand.Rand with its source and the source's stream is left untouched.
//   - An allocation failure propagates CreateFailure (cannot happen for a
//     valid source, kept for contract symmetry).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Fixed) Clone() (*Fixed, error) {
	if err := m.check(ctxClone); err != nil {
		return nil, m.reporter().record(ctxClone, err)
	}
	m.clones++
	o := m.opts
	o.seed = cloneSeed(m.opts.seed, m.clones)
	o.rng = nil

	d, err := allocate(m.r, m.c, o)
	if err != nil {
		return nil, err
	}
	copy(d.data, m.data)

	return d, m.opts.record(ctxClone, nil)
}

// Randomize overwrites every active cell with a pseudo-random multiple of
// 0.01 in [-10.00, 9.99]: (Intn(2000) - 1000) / 100, drawn from the matrix's
// random source (WithSeed / WithRand; defaultRNGSeed otherwise). Records OK.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Fixed) Randomize() error {
	if err := m.check(ctxRandomize); err != nil {
		return m.reporter().record(ctxRandomize, err)
	}
	rng := m.opts.random()
	for i := range m.data {
		m.data[i] = randomCell(rng)
	}

	return m.opts.record(ctxRandomize, nil)
}

// SwapRows exchanges rows r1 and r2 across all active columns.
// Implementation:
//   - Stage 1: reject nil/released receivers.
//   - Stage 2: validate r1 != r2 and both in [0, rows); else ErrSwapIndex, matrix unchanged.
//   - Stage 3: swap cell by cell; record OK.
//
// Complexity:
//   - Time O(c), Space O(1).
func (m *Fixed) SwapRows(r1, r2 int) error {
	if err := m.check(ctxSwapRows); err != nil {
		return m.reporter().record(ctxSwapRows, err)
	}
	if err := validateSwap(r1, r2, m.r); err != nil {
		return m.opts.record(ctxSwapRows, fixedErrorf(ctxSwapRows, r1, r2, err))
	}
	a := m.data[r1*m.c : (r1+1)*m.c]
	b := m.data[r2*m.c : (r2+1)*m.c]
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}

	return m.opts.record(ctxSwapRows, nil)
}

// Do visits each active cell in row-major order and calls f(i,j,v).
// Stops early when f returns false. Nil and released matrices visit nothing.
// Complexity: O(r*c).
func (m *Fixed) Do(f func(i, j int, v float64) bool) {
	if m.check("Do") != nil {
		return
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Equal reports whether m and other are usable matrices with the same shape
// and bitwise-equal cells. Quantize before comparing values that went
// through the text format.
func (m *Fixed) Equal(other *Fixed) bool {
	if m.check("Equal") != nil || other.check("Equal") != nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}

	return true
}

// String renders rows as "[a, b, ...]\n" lines for diagnostics.
// Not the serialization format; use WriteTo for that.
func (m *Fixed) String() string {
	switch {
	case m == nil:
		return _fmtNil
	case m.released:
		return _fmtReleased
	}

	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
