// SPDX-License-Identifier: MIT

// Package outcome records and renders the result of the most recent matrix
// operation.
//
// An Outcome is one value of a closed enumeration:
//
//	OK, CreateFailure, ReadFailure, SwapIndexError, UnknownError
//
// Every error returned by package matrix carries its Outcome (see Error and
// Of), so callers can classify failures with errors.Is / Of without touching
// any shared state. For callers that prefer the "inspect the last result"
// style, a Register keeps exactly one Outcome: the one written by the last
// operation that reported to it. Default is the process-wide Register used
// when a matrix is not given its own.
//
// Registers are safe for concurrent use (the slot is atomic), but the value
// they hold is only meaningful to the goroutine that ran the last operation.
// Give each goroutine its own Register when that matters.
//
// Rendering:
//
//	outcome.RenderMessage(os.Stderr, outcome.ReadFailure)
//	// matrix error: error reading input data
//
// Values outside the enumeration render as UnknownError; rendering never panics.
package outcome
