// Package randutil picks seeds for boards the user did not ask for by number.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed *rand.Rand whose stream is fixed by seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Seed draws a board seed from r.
func Seed(r *rand.Rand) uint32 {
	return r.Uint32()
}

// NewSeed draws a board seed from the wall clock.
func NewSeed() uint32 {
	return Seed(New(time.Now().UnixNano()))
}
