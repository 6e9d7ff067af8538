// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for lifecycle and I/O tests.
//   • Give every test its own outcome.Register so results never leak between tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
	"github.com/katalvlaran/fixmat/outcome"
	"github.com/stretchr/testify/require"
)

// testSeed is the fixed seed used by randomized fixtures.
const testSeed int64 = 20240917

// mustNew allocates an r×c matrix reporting to reg, or fails the test.
func mustNew(t *testing.T, reg *outcome.Register, r, c int, opts ...matrix.Option) *matrix.Fixed {
	t.Helper()
	opts = append([]matrix.Option{matrix.WithRegister(reg)}, opts...)
	m, err := matrix.New(r, c, opts...)
	require.NoError(t, err)
	require.NotNil(t, m)

	return m
}

// fromGrid builds a matrix from a rectangular grid.
func fromGrid(t *testing.T, reg *outcome.Register, grid [][]float64) *matrix.Fixed {
	t.Helper()
	require.NotEmpty(t, grid)
	m := mustNew(t, reg, len(grid), len(grid[0]))
	for i, row := range grid {
		require.Len(t, row, len(grid[0]))
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// grid copies the active region of m into a [][]float64.
func grid(t *testing.T, m *matrix.Fixed) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
	}
	m.Do(func(i, j int, v float64) bool {
		out[i][j] = v
		return true
	})

	return out
}

// quantize rounds every cell to two decimals, the precision of the default format.
func quantize(t *testing.T, m *matrix.Fixed) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.NoError(t, m.Set(i, j, math.Round(v*100)/100))
		}
	}
}
