// SPDX-License-Identifier: MIT

// Package matrix - RNG utilities used by Randomize and Clone.
//
// Goals:
//   - Determinism: same seed ⇒ identical values across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Each matrix owns its stream;
//     Clone seeds an independent one with cloneSeed.
package matrix

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// 1 is also the seed an unseeded C rand() starts from.
const defaultRNGSeed int64 = 1

// Randomize draws an integer in [0, randomSpan), subtracts randomOffset and
// divides by randomScale: multiples of 0.01 in [-10.00, 9.99].
const (
	randomSpan   = 2000
	randomOffset = 1000
	randomScale  = 100.0
)

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so neighbouring inputs give unrelated seeds.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// cloneSeed returns the seed of the n-th clone of a matrix seeded with parent.
// It is a pure function of its inputs: the source's own stream is never drawn
// from, so cloning does not shift the source's later Randomize values.
//
// Complexity: O(1).
func cloneSeed(parent int64, n uint64) int64 {
	if parent == 0 {
		parent = defaultRNGSeed
	}

	return deriveSeed(parent, n)
}

// randomCell returns one Randomize value drawn from r.
func randomCell(r *rand.Rand) float64 {
	return float64(r.Intn(randomSpan)-randomOffset) / randomScale
}
