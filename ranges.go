package mtrand

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/bits"
)

const alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// uint32n returns a value in [0, n) for n > 0 using a widening multiply with
// rejection of the biased low region (Lemire's method).
func (g *Generator) uint32n(n uint32) uint32 {
	m := uint64(g.mt.Uint32()) * uint64(n)
	low := uint32(m)
	if low < n {
		thresh := -n % n
		for low < thresh {
			m = uint64(g.mt.Uint32()) * uint64(n)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

// uint64n is uint32n for 64-bit bounds; each attempt costs two words.
func (g *Generator) uint64n(n uint64) uint64 {
	hi, lo := bits.Mul64(g.Uint64(), n)
	if lo < n {
		thresh := -n % n
		for lo < thresh {
			hi, lo = bits.Mul64(g.Uint64(), n)
		}
	}
	return hi
}

// upTo returns a value in [0, span]. Spans that fit in 32 bits cost one
// word per attempt.
func (g *Generator) upTo(span uint64) uint64 {
	switch {
	case span == math.MaxUint64:
		return g.Uint64()
	case span == math.MaxUint32:
		return uint64(g.mt.Uint32())
	case span < math.MaxUint32:
		return uint64(g.uint32n(uint32(span) + 1))
	default:
		return g.uint64n(span + 1)
	}
}

// intn returns a value in [0, n) for n > 0.
func (g *Generator) intn(n int) int {
	return int(g.upTo(uint64(n) - 1))
}

// Int returns a uniformly distributed integer in [min, max].
func (g *Generator) Int(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, min, max)
	}
	span := uint64(max) - uint64(min)
	return min + int(g.upTo(span)), nil
}

// Intn returns a uniformly distributed integer in [0, n).
func (g *Generator) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("%w: n %d <= 0", ErrInvalidRange, n)
	}
	return g.intn(n), nil
}

// Uint returns a uniformly distributed unsigned integer in [min, max].
func (g *Generator) Uint(min, max uint32) (uint32, error) {
	if min > max {
		return 0, fmt.Errorf("%w: min %d > max %d", ErrInvalidRange, min, max)
	}
	return min + uint32(g.upTo(uint64(max-min))), nil
}

// RandomRange returns a uniformly distributed unsigned integer in [min, max).
func (g *Generator) RandomRange(min, max uint32) (uint32, error) {
	if min >= max {
		return 0, fmt.Errorf("%w: min %d >= max %d", ErrInvalidRange, min, max)
	}
	return min + g.uint32n(max-min), nil
}

// Int64 returns a 64-bit signed integer over the full range.
func (g *Generator) Int64() int64 {
	return int64(g.Uint64())
}

// Float64 returns a float64 in [0, 1) with 53 random bits taken from two
// words (27 from the first, 26 from the second).
// This matches numpy's random_sample().
func (g *Generator) Float64() float64 {
	a := g.mt.Uint32() >> 5
	b := g.mt.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Double is Float64.
func (g *Generator) Double() float64 {
	return g.Float64()
}

// Float32 returns a float32 in [0, 1) from the top 24 bits of one word.
func (g *Generator) Float32() float32 {
	return float32(g.mt.Uint32()>>8) * (1.0 / 16777216.0)
}

// openFloat64 returns a float64 in (0, 1).
func (g *Generator) openFloat64() float64 {
	for {
		if u := g.Float64(); u > 0 {
			return u
		}
	}
}

// Uniform returns a float64 in [low, high).
// This matches numpy.random.uniform(low, high).
func (g *Generator) Uniform(low, high float64) (float64, error) {
	if math.IsNaN(low) || math.IsNaN(high) || low > high {
		return 0, fmt.Errorf("%w: low %v > high %v", ErrInvalidRange, low, high)
	}
	return low + (high-low)*g.Float64(), nil
}

// Bool returns true with the given probability.
func (g *Generator) Bool(probability float64) (bool, error) {
	if !(probability >= 0 && probability <= 1) {
		return false, fmt.Errorf("%w: %v outside [0, 1]", ErrInvalidProbability, probability)
	}
	return g.Float64() < probability, nil
}

// Read fills p with random bytes, four per word in little-endian order.
// It always returns len(p), nil.
func (g *Generator) Read(p []byte) (int, error) {
	n := len(p)
	i := 0
	for ; i+4 <= n; i += 4 {
		binary.LittleEndian.PutUint32(p[i:], g.mt.Uint32())
	}
	if i < n {
		w := g.mt.Uint32()
		for ; i < n; i++ {
			p[i] = byte(w)
			w >>= 8
		}
	}
	return n, nil
}

// Bytes returns n random bytes drawn from ceil(n/4) words.
func (g *Generator) Bytes(n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	b := make([]byte, n)
	g.Read(b)
	return b
}

// Char returns a random lowercase letter in 'a'..'z'.
func (g *Generator) Char() rune {
	return 'a' + rune(g.uint32n(26))
}

// Alphanumeric returns a string of length ASCII characters, each drawn
// independently from [0-9a-zA-Z].
func (g *Generator) Alphanumeric(length int) string {
	if length <= 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = alphanumeric[g.uint32n(uint32(len(alphanumeric)))]
	}
	return string(b)
}
