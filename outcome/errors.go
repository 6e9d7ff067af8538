// SPDX-License-Identifier: MIT

package outcome

import "errors"

// Error attaches an Outcome to an underlying error.
//
// Packages declare their failure sentinels with New so that a single
// errors.As walk (see Of) recovers the kind, however deeply the sentinel was
// wrapped with fmt.Errorf("...: %w", ...).
type Error struct {
	kind Outcome
	err  error
}

// New returns an *Error of the given kind with the given text.
// Intended for package-level sentinels; compare them with errors.Is.
func New(kind Outcome, text string) error {
	return &Error{kind: kind.normalize(), err: errors.New(text)}
}

// Wrap attaches kind to err. A nil err yields nil.
func Wrap(kind Outcome, err error) error {
	if err == nil {
		return nil
	}

	return &Error{kind: kind.normalize(), err: err}
}

// Error implements error by delegating to the wrapped error.
func (e *Error) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped error to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.err }

// Kind returns the attached Outcome.
func (e *Error) Kind() Outcome { return e.kind }

// Of classifies err:
//   - nil            → OK
//   - carries *Error → the outermost attached kind
//   - anything else  → UnknownError
func Of(err error) Outcome {
	if err == nil {
		return OK
	}
	var oe *Error
	if errors.As(err, &oe) {
		return oe.kind
	}

	return UnknownError
}
