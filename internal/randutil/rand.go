// Package randutil builds the random sources used for shuffling.
package randutil

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a *rand.Rand seeded deterministically from seed, so a game can be
// replayed from the seed alone. Both PCG words are derived from the one int64.
func New(seed int64) *mrand.Rand {
	u := uint64(seed)
	return mrand.New(mrand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewRandom returns a generator seeded from the operating system's entropy source.
// It falls back to the runtime-seeded global source if that read fails.
func NewRandom() *mrand.Rand {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return mrand.New(mrand.NewPCG(mrand.Uint64(), mrand.Uint64()))
	}
	return mrand.New(mrand.NewPCG(binary.LittleEndian.Uint64(buf[:8]), binary.LittleEndian.Uint64(buf[8:])))
}

// mix is the splitmix64 finalizer, it spreads nearby seeds across the state
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
