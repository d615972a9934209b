// Package mtrand provides a pseudo-random number generator built on the
// MT19937 Mersenne Twister.
//
// A Generator produces typed values (integers, floats, booleans, bytes,
// characters, strings), samples from normal, exponential and Poisson
// distributions, and operates on caller-supplied slices (choice, weighted
// choice, shuffle, sampling).
//
// The stream is fully determined by the seed: two generators seeded with the
// same value produce identical output for the same sequence of calls. It is
// not suitable for cryptographic use.
//
// A Generator is not safe for concurrent use. Give each goroutine its own
// instance (see Spawn) or guard a shared one with a mutex.
//
// Basic usage:
//
//	g := mtrand.NewWithSeed(42)
//	n, err := g.Int(1, 6)
//	x := g.Float64()
package mtrand

import (
	"fmt"

	"github.com/nozzle/mtrand/internal/rand"
)

// StateSize is the number of 32-bit words in the generator state.
const StateSize = rand.N

// Config configures a Generator.
type Config struct {
	// Seed initializes the state array when Entropy is nil.
	// Every 32-bit value is valid, including even values and 0.
	// Default: 5489
	Seed uint32

	// Entropy supplies the seed when non-nil, overriding Seed.
	// Default: nil
	Entropy EntropySource

	// WordWidth is the width in bits of values returned by Word.
	// Options: 32 or 64
	// Default: 32
	WordWidth int
}

// DefaultConfig returns the default Generator configuration.
func DefaultConfig() Config {
	return Config{
		Seed:      5489,
		WordWidth: 32,
	}
}

// Validate reports whether the configuration can build a Generator.
func (c Config) Validate() error {
	if c.WordWidth != 32 && c.WordWidth != 64 {
		return fmt.Errorf("%w: word width %d, want 32 or 64", ErrInvalidParameter, c.WordWidth)
	}
	return nil
}

// Generator is a Mersenne Twister random number generator.
//
// Generators are used through pointers. Copying a Generator value duplicates
// its stream; use Clone when that is intended.
type Generator struct {
	mt        *rand.MT19937
	wordWidth int
}

// New creates a Generator seeded from the system entropy source.
func New() *Generator {
	return NewWithEntropy(SystemEntropy{})
}

// NewWithSeed creates a Generator with the given seed.
func NewWithSeed(seed uint32) *Generator {
	return &Generator{mt: rand.NewMT19937(seed), wordWidth: 32}
}

// NewWithEntropy creates a Generator seeded by src.
func NewWithEntropy(src EntropySource) *Generator {
	return NewWithSeed(src.Seed())
}

// NewFromConfig creates a Generator from config.
func NewFromConfig(config Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if config.Entropy != nil {
		seed = config.Entropy.Seed()
	}

	return &Generator{mt: rand.NewMT19937(seed), wordWidth: config.WordWidth}, nil
}

// Seed returns the seed the generator was last initialized with.
func (g *Generator) Seed() uint32 {
	return g.mt.SeedValue()
}

// Index returns the position of the next state word, in [0, StateSize].
// StateSize means the next draw regenerates the state array.
func (g *Generator) Index() int {
	return g.mt.Index()
}

// SetIndex moves the read position within the current state array.
// It exists for diagnostics; moving the index skips or replays words.
func (g *Generator) SetIndex(i int) error {
	if i < 0 || i > StateSize {
		return fmt.Errorf("%w: index %d outside [0, %d]", ErrInvalidParameter, i, StateSize)
	}
	g.mt.SetIndex(i)
	return nil
}

// Reseed reinitializes the state array with seed, restarting the stream.
func (g *Generator) Reseed(seed uint32) {
	g.mt.Seed(seed)
}

// Clone returns an independent Generator that continues the same stream.
func (g *Generator) Clone() *Generator {
	return &Generator{mt: g.mt.Clone(), wordWidth: g.wordWidth}
}

// Spawn returns a new Generator seeded from the next word of g. Spawned
// generators are meant to be handed to separate goroutines.
func (g *Generator) Spawn() *Generator {
	return &Generator{mt: rand.NewMT19937(g.Uint32()), wordWidth: g.wordWidth}
}

// Uint32 returns the next tempered 32-bit word.
func (g *Generator) Uint32() uint32 {
	return g.mt.Uint32()
}

// Uint64 returns a 64-bit value built from two words, high word first.
// It makes Generator a math/rand/v2 Source.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.mt.Uint32())
	lo := uint64(g.mt.Uint32())
	return hi<<32 | lo
}

// Word returns the next output word at the configured width.
func (g *Generator) Word() uint64 {
	if g.wordWidth == 64 {
		return g.Uint64()
	}
	return uint64(g.mt.Uint32())
}

// Pseudo returns the XOR of 32 successive words.
func (g *Generator) Pseudo() uint32 {
	res := g.mt.Uint32()
	for range 31 {
		res ^= g.mt.Uint32()
	}
	return res
}

// String describes the generator without dumping the state array.
func (g *Generator) String() string {
	return fmt.Sprintf("Generator{seed: %d, index: %d, width: %d}", g.Seed(), g.Index(), g.wordWidth)
}
