package sim

import "math/rand"

// RandSource supplies the uniform draws used for over-braking. *rand.Rand
// satisfies it. Implementations need not be goroutine-safe; a Simulator
// never shares its source.
type RandSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// defaultSeed is used when callers pass seed==0, keeping the zero value
// reproducible rather than time-based.
const defaultSeed int64 = 1

// NewRandSource returns a deterministic source. seed==0 ⇒ defaultSeed.
func NewRandSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// StreamSeed derives an independent seed for run number stream from a base
// seed, so a batch of runs can be seeded from one value. SplitMix64 finalizer.
func StreamSeed(base int64, stream uint64) int64 {
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
