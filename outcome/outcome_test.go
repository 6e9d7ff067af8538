// SPDX-License-Identifier: MIT
// Package outcome_test covers the enumeration, classification and rendering.

package outcome_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/katalvlaran/fixmat/outcome"
	"github.com/stretchr/testify/require"
)

// all lists every declared outcome in enum order.
var all = []outcome.Outcome{
	outcome.OK,
	outcome.CreateFailure,
	outcome.ReadFailure,
	outcome.SwapIndexError,
	outcome.UnknownError,
}

// render is a small helper returning the rendered line for o.
func render(t *testing.T, o outcome.Outcome) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, outcome.RenderMessage(&buf, o))

	return buf.String()
}

// TestRenderMessage_DistinctPerKind checks every valid kind renders a
// non-empty, unique, newline-terminated line.
func TestRenderMessage_DistinctPerKind(t *testing.T) {
	seen := make(map[string]outcome.Outcome, len(all))
	for _, o := range all {
		line := render(t, o)
		require.True(t, strings.HasPrefix(line, "matrix error: "), "prefix for %s", o)
		require.True(t, strings.HasSuffix(line, "\n"), "newline for %s", o)
		require.Greater(t, len(strings.TrimSpace(strings.TrimPrefix(line, "matrix error: "))), 0)

		prev, dup := seen[line]
		require.False(t, dup, "%s renders like %s", o, prev)
		seen[line] = o
	}
}

// TestRenderMessage_OutOfRange checks invalid codes render as UnknownError.
func TestRenderMessage_OutOfRange(t *testing.T) {
	want := render(t, outcome.UnknownError)
	for _, code := range []int{-1, 5, 42, -1000} {
		require.Equal(t, want, render(t, outcome.Outcome(code)), "code %d", code)
	}
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderMessage_WriterErrors(t *testing.T) {
	require.ErrorIs(t, outcome.RenderMessage(nil, outcome.OK), outcome.ErrNilWriter)

	err := outcome.RenderMessage(failingWriter{}, outcome.ReadFailure)
	require.Error(t, err)
	require.Contains(t, err.Error(), "ReadFailure")
}

func TestOutcome_StringAndValid(t *testing.T) {
	require.Equal(t, "OK", outcome.OK.String())
	require.Equal(t, "SwapIndexError", outcome.SwapIndexError.String())
	require.Equal(t, "UnknownError", outcome.Outcome(99).String())

	for _, o := range all {
		require.True(t, o.Valid())
	}
	require.False(t, outcome.Outcome(-1).Valid())
	require.False(t, outcome.Outcome(len(all)).Valid())
	require.Equal(t, outcome.UnknownError.Message(), outcome.Outcome(7).Message())
}

func TestOf(t *testing.T) {
	errRead := outcome.New(outcome.ReadFailure, "x: read")

	tests := []struct {
		name string
		err  error
		want outcome.Outcome
	}{
		{"nil", nil, outcome.OK},
		{"sentinel", errRead, outcome.ReadFailure},
		{"wrapped", fmt.Errorf("ctx: %w", errRead), outcome.ReadFailure},
		{"plain", errors.New("boom"), outcome.UnknownError},
		{"wrap helper", outcome.Wrap(outcome.SwapIndexError, errors.New("bad")), outcome.SwapIndexError},
		{"invalid kind", outcome.New(outcome.Outcome(12), "odd"), outcome.UnknownError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, outcome.Of(tc.err))
		})
	}

	require.Nil(t, outcome.Wrap(outcome.ReadFailure, nil))
}

func TestError_UnwrapKeepsIdentity(t *testing.T) {
	base := errors.New("inner")
	err := outcome.Wrap(outcome.CreateFailure, base)
	require.ErrorIs(t, err, base)
	require.Equal(t, "inner", err.Error())

	var oe *outcome.Error
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &oe)
	require.Equal(t, outcome.CreateFailure, oe.Kind())
}
