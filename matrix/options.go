// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for matrix construction and I/O.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective configuration,
//   - the record helper that reports an operation result to the Register and logger.
//
// Design goals:
//   - Deterministic behavior: no time-based randomness; seed==0 means defaultRNGSeed.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are resolved once, at New/Read, and stored in the matrix.
//     Clone inherits them (with a derived random stream).
//   - The Register defaults to outcome.Default, the process-wide slot.
//     Pass WithRegister to scope outcomes per goroutine or component.
package matrix

import (
	"math/rand"

	"github.com/katalvlaran/fixmat/outcome"
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation in Set, Fill and Read.
	// Off: Fill accepts any value and Read accepts every token strconv parses,
	// including "nan" and "inf".
	DefaultValidateNaNInf = false

	// DefaultWidth is the minimum field width of a written element.
	DefaultWidth = 7

	// DefaultPrecision is the number of decimals of a written element.
	DefaultPrecision = 2

	// DefaultSeed selects the random stream for Randomize; 0 maps to defaultRNGSeed.
	DefaultSeed int64 = 0
)

// Format bounds accepted by WithFormat.
const (
	maxWidth     = 64
	maxPrecision = 17
)

// ---------- Internal panic and log messages (no magic strings) ----------

const (
	panicFormatInvalid   = "matrix: WithFormat: width must be in [1,64] and precision in [0,17]"
	panicRegisterNil     = "matrix: WithRegister: register must not be nil"
	panicLoggerNil       = "matrix: WithLogger: logger must not be nil"
	panicRandNil         = "matrix: WithRand: source must not be nil"
	logOperationFailed   = "matrix operation failed"
	logOperationComplete = "matrix operation completed"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	// numeric policy
	validateNaNInf bool // DefaultValidateNaNInf

	// text format (WriteTo)
	width     int // DefaultWidth
	precision int // DefaultPrecision

	// random source (Randomize); rng==nil ⇒ lazily rngFromSeed(seed)
	seed int64
	rng  *rand.Rand

	// reporting
	register *outcome.Register // outcome.Default
	logger   *zap.Logger       // zap.NewNop()
}

// WithValidateNaNInf opts in to strict finite-value validation: Set and Fill
// reject NaN/±Inf with ErrNaNInf, and Read reports such tokens as ReadFailure.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf through Set, Fill and Read (the default).
// The write format prints them as Go does ("NaN", "+Inf", "-Inf"), and Read
// parses those tokens back.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithFormat overrides the element width and precision used by WriteTo.
// Panics when width ∉ [1,64] or precision ∉ [0,17].
//
// Round trips are lossy to 10^-precision; the default 2 decimals
// quantize values to multiples of 0.01.
func WithFormat(width, precision int) Option {
	if width < 1 || width > maxWidth || precision < 0 || precision > maxPrecision {
		panic(panicFormatInvalid)
	}

	return func(o *Options) {
		o.width = width
		o.precision = precision
	}
}

// WithSeed selects a deterministic random stream for Randomize.
// seed==0 maps to defaultRNGSeed. Clears any source set by WithRand.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand injects the random source used by Randomize.
// The source is not goroutine-safe; do not share it between matrices used concurrently.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = r }
}

// WithRegister routes outcomes of the matrix (and of its clones) to r
// instead of outcome.Default.
func WithRegister(r *outcome.Register) Option {
	if r == nil {
		panic(panicRegisterNil)
	}

	return func(o *Options) { o.register = r }
}

// WithLogger sets the structured logger. Failures are logged at Debug level.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		width:          DefaultWidth,
		precision:      DefaultPrecision,
		seed:           DefaultSeed,
		register:       outcome.Default,
		logger:         zap.NewNop(),
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// record reports the result of op: the Register receives outcome.Of(err) and
// failures are logged. err is returned unchanged so call sites can
// `return nil, o.record(op, err)`.
func (o *Options) record(op string, err error) error {
	kind := o.register.Record(err)
	if err != nil {
		o.logger.Debug(logOperationFailed,
			zap.String("op", op),
			zap.Stringer("outcome", kind),
			zap.Error(err),
		)
	}

	return err
}

// random returns the random source, creating it from the seed on first use.
func (o *Options) random() *rand.Rand {
	if o.rng == nil {
		o.rng = rngFromSeed(o.seed)
	}

	return o.rng
}
