// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported RNG helpers, cell formatting and panic messages to
//     matrix_test ONLY, without widening the production API.
//   - File name ends in _test.go, so it is invisible in production builds.

var (
	ExportedRngFromSeed = rngFromSeed
	ExportedDeriveSeed  = deriveSeed
	ExportedCloneSeed   = cloneSeed
	ExportedRandomCell  = randomCell
	ExportedAppendCell  = appendCell
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicFormatInvalid_TestOnly = panicFormatInvalid
	PanicRegisterNil_TestOnly   = panicRegisterNil
	PanicLoggerNil_TestOnly     = panicLoggerNil
	PanicRandNil_TestOnly       = panicRandNil
)

// OptionsSnapshot is a read-only view of resolved Options for tests.
type OptionsSnapshot struct {
	ValidateNaNInf bool
	Width          int
	Precision      int
	Seed           int64
	HasRand        bool
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns their snapshot.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		ValidateNaNInf: o.validateNaNInf,
		Width:          o.width,
		Precision:      o.precision,
		Seed:           o.seed,
		HasRand:        o.rng != nil,
	}
}
