// SPDX-License-Identifier: MIT

package outcome

import (
	"io"
	"sync/atomic"
)

// Register holds the Outcome of the most recent operation that reported to it.
// It is a flat overwrite slot, not a log: only the last value is observable.
// The zero value is ready to use and holds OK.
type Register struct {
	last atomic.Int32
}

// Default is the process-wide Register. Matrices created without their own
// Register report here.
var Default = NewRegister()

// NewRegister returns an empty Register holding OK.
func NewRegister() *Register { return &Register{} }

// Set overwrites the slot. Values outside the enumeration are stored as
// UnknownError so the slot never holds an undeclared code.
func (r *Register) Set(o Outcome) {
	r.last.Store(int32(o.normalize()))
}

// Record classifies err with Of, stores the result and returns it.
func (r *Register) Record(err error) Outcome {
	o := Of(err)
	r.Set(o)

	return o
}

// Last returns the stored Outcome without altering it.
func (r *Register) Last() Outcome { return Outcome(r.last.Load()) }

// Reset puts the slot back to OK.
func (r *Register) Reset() { r.Set(OK) }

// RenderLast writes the message for Last() to w.
func (r *Register) RenderLast(w io.Writer) error {
	return RenderMessage(w, r.Last())
}

// LastOutcome returns the Outcome held by Default.
func LastOutcome() Outcome { return Default.Last() }

// RenderLastMessage writes the message for LastOutcome() to w.
func RenderLastMessage(w io.Writer) error { return Default.RenderLast(w) }
