// SPDX-License-Identifier: MIT

package outcome

import (
	"errors"
	"fmt"
	"io"
)

// messagePrefix starts every rendered line.
const messagePrefix = "matrix error: "

// ErrNilWriter is returned by the render functions when w is nil.
var ErrNilWriter = errors.New("outcome: nil writer")

// RenderMessage writes "matrix error: <message>\n" for o to w.
// Out-of-range values render exactly as UnknownError. The only failures are a
// nil writer (ErrNilWriter) or a write error from w, which is wrapped.
func RenderMessage(w io.Writer, o Outcome) error {
	if w == nil {
		return ErrNilWriter
	}
	if _, err := fmt.Fprintf(w, "%s%s\n", messagePrefix, o.Message()); err != nil {
		return fmt.Errorf("outcome: render %s: %w", o, err)
	}

	return nil
}
