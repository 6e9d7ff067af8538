// SPDX-License-Identifier: MIT

package outcome

// Outcome is the result kind of a matrix operation.
type Outcome int

// The closed set of outcomes. Values are stable; do not reorder.
const (
	OK             Outcome = iota // operation completed
	CreateFailure                 // allocation refused (bad dimensions)
	ReadFailure                   // malformed or truncated serialized input
	SwapIndexError                // invalid row indices for a swap
	UnknownError                  // anything else, including out-of-range codes
)

// names and messages are indexed by Outcome; keep them in enum order.
var (
	names = [...]string{
		OK:             "OK",
		CreateFailure:  "CreateFailure",
		ReadFailure:    "ReadFailure",
		SwapIndexError: "SwapIndexError",
		UnknownError:   "UnknownError",
	}

	messages = [...]string{
		OK:             "strange, no error is registered",
		CreateFailure:  "not enough memory or invalid dimensions to create the matrix",
		ReadFailure:    "error reading input data",
		SwapIndexError: "invalid row indices for swap",
		UnknownError:   "unknown error, run for the hills",
	}
)

// Valid reports whether o is one of the declared outcomes.
func (o Outcome) Valid() bool { return o >= OK && o <= UnknownError }

// normalize maps any value outside the enumeration to UnknownError.
func (o Outcome) normalize() Outcome {
	if !o.Valid() {
		return UnknownError
	}

	return o
}

// String returns the identifier of o ("UnknownError" for invalid values).
func (o Outcome) String() string { return names[o.normalize()] }

// Message returns the fixed human-readable text for o.
// Invalid values yield the UnknownError text.
func (o Outcome) Message() string { return messages[o.normalize()] }
