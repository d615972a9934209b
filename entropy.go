package mtrand

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// EntropySource supplies seeds for new generators.
type EntropySource interface {
	Seed() uint32
}

// FixedSeed is an EntropySource that always returns the same seed.
type FixedSeed uint32

// Seed returns s.
func (s FixedSeed) Seed() uint32 {
	return uint32(s)
}

// SeedFunc adapts a function to EntropySource.
type SeedFunc func() uint32

// Seed calls f.
func (f SeedFunc) Seed() uint32 {
	return f()
}

// TimeEntropy derives a seed from the clock.
type TimeEntropy struct {
	// Now defaults to time.Now.
	Now func() time.Time
}

// Seed folds the nanosecond timestamp into 32 bits.
func (e TimeEntropy) Seed() uint32 {
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}
	ns := uint64(now().UnixNano())
	return uint32(ns) ^ uint32(ns>>32)
}

// SystemEntropy reads a seed from the operating system's random source,
// falling back to the clock if that read fails.
type SystemEntropy struct{}

// Seed returns four bytes of system randomness.
func (SystemEntropy) Seed() uint32 {
	var b [4]byte
	if _, err := crand.Read(b[:]); err != nil {
		return TimeEntropy{}.Seed()
	}
	return binary.LittleEndian.Uint32(b[:])
}
