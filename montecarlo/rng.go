// SPDX-License-Identifier: MIT
// Package: percolate/montecarlo
//
// rng.go — random site sources and per-trial stream derivation.
//
// Goals:
//   - Determinism: same base seed ⇒ identical per-trial streams on every run.
//   - Independence: each trial gets its own stream, derived from (seed, trial).
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Source is owned by exactly one
//     trial and never shared.

package montecarlo

import "math/rand"

// Source draws uniformly distributed integers from the closed range [lo, hi].
// Implementations need not be safe for concurrent use.
type Source interface {
	UniformInt(lo, hi int) int
}

// SourceFactory builds the Source for one trial from that trial's seed.
type SourceFactory func(seed int64) Source

// defaultSeed is used when the caller leaves the seed at 0.
const defaultSeed int64 = 1

// randSource adapts *rand.Rand to Source.
type randSource struct {
	r *rand.Rand
}

// NewSource returns a Source backed by math/rand seeded with seed.
// seed == 0 selects defaultSeed.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = defaultSeed
	}

	return randSource{r: rand.New(rand.NewSource(seed))}
}

// UniformInt returns a uniform integer in [lo, hi]. It panics if hi < lo.
func (s randSource) UniformInt(lo, hi int) int {
	return lo + s.r.Intn(hi-lo+1)
}

// deriveSeed mixes a base seed and a stream id into a new seed with a
// SplitMix64 finalizer, so neighbouring trial indices get unrelated streams.
func deriveSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
