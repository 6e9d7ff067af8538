// Package matrix provides fixed-capacity numeric matrices and their text format.
//
// A *Fixed holds up to MaxSize×MaxSize float64 cells, of which the r×c active
// region is used. The package provides:
//
//   - Lifecycle: New, Release, Fill, Clone, Randomize, SwapRows.
//   - Access: Rows, Cols, Shape, Cap, At, Set, Do, Equal, String.
//   - Text serialization: WriteTo / Write / Print and Read / ReadStdin.
//   - Configuration: functional options (WithSeed, WithFormat, WithRegister,
//     WithLogger, ...) and a YAML form (LoadConfig).
//
// There is no arithmetic: no addition, multiplication, transposition or
// decomposition.
//
// Every operation returns an explicit error wrapping a package sentinel. The
// lifecycle and I/O operations also write their outcome to an
// outcome.Register (outcome.Default unless WithRegister is given), so the
// last result can be inspected or rendered afterwards:
//
//	m, err := matrix.Read(strings.NewReader("2 x"))
//	// m == nil, errors.Is(err, matrix.ErrRead)
//	// outcome.LastOutcome() == outcome.ReadFailure
//	outcome.RenderLastMessage(os.Stderr)
//
// Matrices carry no locks; a matrix must not be mutated from several
// goroutines at once.
package matrix
