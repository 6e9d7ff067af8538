// SPDX-License-Identifier: MIT

// Package matrix - text serialization.
//
// Format (whitespace-delimited, row-major):
//
//	<rows> <cols>
//	<e0,0> <e0,1> ... <e0,cols-1>
//	...
//	<erows-1,0> ... <erows-1,cols-1>
//
// Writing:
//   - Header: plain decimal integers separated by one space.
//   - Elements: fixed notation, right-aligned to DefaultWidth (7) with
//     DefaultPrecision (2) decimals, separated by one space; every line ends in '\n'.
//   - WithFormat changes width/precision for a matrix.
//
// Reading:
//   - Any run of whitespace (spaces, tabs, newlines) separates tokens.
//   - Exactly rows*cols elements are consumed; anything after them is left unread
//     when the source is a *bufio.Reader, so several matrices can be read in sequence.
//
// Round trips are lossy to 10^-precision: values already quantized to two
// decimals come back unchanged.
package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"
)

const (
	ctxWrite = "WriteTo"
	ctxRead  = "Read"
)

// maxTokenLen bounds a single token; longer runs of non-space bytes are malformed input.
const maxTokenLen = 512

// errTokenTooLong is the cause reported for tokens over maxTokenLen.
var errTokenTooLong = errors.New("token too long")

// WriteTo writes m in the text format to w and records OK.
// Implements io.WriterTo.
//
// Implementation:
//   - Stage 1: reject nil/released receivers and a nil writer.
//   - Stage 2: render the whole matrix into one buffer.
//   - Stage 3: a single w.Write; a short write counts as a failure.
//
// Errors:
//   - ErrWrite wrapping the writer's error (classified UnknownError).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the buffer.
func (m *Fixed) WriteTo(w io.Writer) (int64, error) {
	if err := m.check(ctxWrite); err != nil {
		return 0, m.reporter().record(ctxWrite, err)
	}
	if w == nil {
		return 0, m.opts.record(ctxWrite, fmt.Errorf("Fixed.%s: nil writer: %w", ctxWrite, ErrWrite))
	}

	buf := m.appendText(make([]byte, 0, m.textSize()))
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return int64(n), m.opts.record(ctxWrite, fmt.Errorf("Fixed.%s: %w: %w", ctxWrite, ErrWrite, err))
	}

	return int64(n), m.opts.record(ctxWrite, nil)
}

// Write writes m to w in the text format. Shorthand for m.WriteTo(w).
func Write(w io.Writer, m *Fixed) error {
	_, err := m.WriteTo(w)

	return err
}

// Print writes m to standard output in the text format.
func Print(m *Fixed) error { return Write(os.Stdout, m) }

// textSize estimates the rendered size: header plus (width+1) bytes per cell.
func (m *Fixed) textSize() int {
	return 16 + m.r*m.c*(m.opts.width+1)
}

// appendText renders the header and all rows into buf.
func (m *Fixed) appendText(buf []byte) []byte {
	buf = strconv.AppendInt(buf, int64(m.r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(m.c), 10)
	buf = append(buf, '\n')
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = appendCell(buf, m.data[base+j], m.opts.width, m.opts.precision)
		}
		buf = append(buf, '\n')
	}

	return buf
}

// appendCell appends v in fixed notation, left-padded with spaces to width.
func appendCell(buf []byte, v float64, width, precision int) []byte {
	var scratch [32]byte
	s := strconv.AppendFloat(scratch[:0], v, 'f', precision, 64)
	for k := len(s); k < width; k++ {
		buf = append(buf, ' ')
	}

	return append(buf, s...)
}

// Read parses one matrix in the text format from r.
// MAIN DESCRIPTION:
//   - Header, allocation, then exactly rows*cols elements.
//
// Implementation:
//   - Stage 1: parse two integers; on failure record ReadFailure and return
//     without allocating.
//   - Stage 2: allocate through the New path; on failure CreateFailure is
//     recorded and wins over anything that might follow in the input.
//   - Stage 3: parse elements in row-major order; on the first failure the
//     partial matrix is released (nothing leaks) and ReadFailure is recorded.
//   - Stage 4: record OK.
//
// Errors:
//   - ErrRead (header, element, truncated input, NaN/Inf under WithValidateNaNInf).
//   - ErrCreate + ErrInvalidDimensions (header shape outside [1, MaxSize]).
//   - ErrNilReader (classified UnknownError).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Read(r io.Reader, opts ...Option) (*Fixed, error) {
	o := gatherOptions(opts...)
	if r == nil {
		return nil, o.record(ctxRead, fmt.Errorf("matrix.%s: %w", ctxRead, ErrNilReader))
	}
	tr := newTokenReader(r)

	rows, err := tr.nextInt()
	var cols int
	if err == nil {
		cols, err = tr.nextInt()
	}
	if err != nil {
		return nil, o.record(ctxRead, fmt.Errorf("matrix.%s: header: %w: %w", ctxRead, ErrRead, err))
	}

	m, err := allocate(rows, cols, o)
	if err != nil {
		return nil, err
	}

	var v float64
	for i := range m.data {
		v, err = tr.nextFloat()
		if err == nil {
			err = validateFinite(v, o.validateNaNInf)
		}
		if err != nil {
			m.drop()
			return nil, o.record(ctxRead,
				fmt.Errorf("matrix.%s: element (%d,%d): %w: %w", ctxRead, i/cols, i%cols, ErrRead, err))
		}
		m.data[i] = v
	}
	o.logger.Debug(logOperationComplete, zap.String("op", ctxRead), zap.Int("rows", rows), zap.Int("cols", cols))

	return m, o.record(ctxRead, nil)
}

// ReadStdin parses one matrix from standard input. See Read.
func ReadStdin(opts ...Option) (*Fixed, error) { return Read(os.Stdin, opts...) }

// tokenReader yields whitespace-separated tokens one byte at a time, so it
// never consumes input past the delimiter that ends the current token.
type tokenReader struct {
	br  *bufio.Reader
	tok []byte
}

// newTokenReader reuses r when it already is a *bufio.Reader.
func newTokenReader(r io.Reader) *tokenReader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}

	return &tokenReader{br: br, tok: make([]byte, 0, 32)}
}

// isSpace matches the C locale whitespace set.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// next returns the next token. End of input before any token byte yields
// io.ErrUnexpectedEOF; other reader errors are returned as is.
func (t *tokenReader) next() (string, error) {
	t.tok = t.tok[:0]
	for {
		b, err := t.br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				if len(t.tok) > 0 {
					return string(t.tok), nil
				}
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}
		if isSpace(b) {
			if len(t.tok) > 0 {
				return string(t.tok), nil
			}
			continue
		}
		if len(t.tok) == maxTokenLen {
			return "", errTokenTooLong
		}
		t.tok = append(t.tok, b)
	}
}

// nextInt parses the next token as a decimal int.
func (t *tokenReader) nextInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(tok)
}

// nextFloat parses the next token as a float64.
func (t *tokenReader) nextFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}

	return strconv.ParseFloat(tok, 64)
}
