// RNG utilities shared by the genetic solver.
//
// Goals:
//   - Determinism: same seed => identical results across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics, no logging.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; each cluster's Solve
// call must own its own *rand.Rand (the orchestrator passes each job its own
// Options.Seed, and Solve builds a fresh *rand.Rand from it via rngFromSeed,
// rather than sharing a single instance across goroutines).
package tsp

import (
	"math/rand"

	"github.com/bkarpov/mtsp-routing-core/spatial"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed==0 uses defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style avalanche finalizer, so independent streams
// derived from the same parent don't correlate.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier, consuming one value from base to decorrelate
// consecutive derivations.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffledCopy returns a Fisher-Yates shuffled copy of points using rng.
func shuffledCopy(points []spatial.Point, rng *rand.Rand) []spatial.Point {
	out := make([]spatial.Point, len(points))
	copy(out, points)

	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// sampleDistinct returns k distinct indices in [0, n) chosen uniformly at
// random without replacement, via a partial Fisher-Yates shuffle.
func sampleDistinct(n, k int, rng *rand.Rand) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	for i := 0; i < k && i < n; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	return idx[:k]
}
