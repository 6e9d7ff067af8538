// Package fixmat is a small library of fixed-capacity numeric matrices with
// explicit operation outcomes.
//
// What is in the box:
//
//	matrix/  — the Fixed matrix (capacity MaxSize×MaxSize): New, Release,
//	           Fill, Clone, Randomize, SwapRows, and the text format
//	           (WriteTo / Read), configured by functional options or YAML.
//	outcome/ — the closed set of outcomes (OK, CreateFailure, ReadFailure,
//	           SwapIndexError, UnknownError), the last-outcome Register and
//	           message rendering.
//
// What is deliberately not in the box: arithmetic, decompositions, resizing
// beyond the capacity, binary formats.
//
// Quick example:
//
//	m, err := matrix.Read(os.Stdin)
//	if err != nil {
//		outcome.RenderLastMessage(os.Stderr)
//		return
//	}
//	_ = m.SwapRows(0, 1)
//	_, _ = m.WriteTo(os.Stdout)
//
//	go get github.com/katalvlaran/fixmat
package fixmat
