// Package rand implements the MT19937 Mersenne Twister engine: the 624-word
// state array, seeding, the twist step and output tempering.
//
// The engine is not safe for concurrent use.
package rand

const (
	// N is the number of words in the state array.
	N = 624
	// M is the middle word offset used by the twist.
	M = 397

	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	initMultiplier = 1812433253
)

// MT19937 is a 32-bit Mersenne Twister.
type MT19937 struct {
	mt   [N]uint32
	mti  int
	seed uint32
}

// NewMT19937 creates a new Mersenne Twister with the given seed.
func NewMT19937(seed uint32) *MT19937 {
	mt := &MT19937{}
	mt.Seed(seed)
	return mt
}

// Seed initializes the state array from seed. Any value is accepted,
// including 0: the recurrence never leaves the array all zero.
// The index is set to N so the first draw regenerates the array.
func (mt *MT19937) Seed(seed uint32) {
	mt.seed = seed
	mt.mt[0] = seed
	for i := 1; i < N; i++ {
		mt.mt[i] = initMultiplier*(mt.mt[i-1]^(mt.mt[i-1]>>30)) + uint32(i)
	}
	mt.mti = N
}

// SeedValue returns the seed the array was last initialized with.
func (mt *MT19937) SeedValue() uint32 {
	return mt.seed
}

// Index returns the position of the next word to temper, in [0, N].
func (mt *MT19937) Index() int {
	return mt.mti
}

// twist regenerates all N words and resets the index.
func (mt *MT19937) twist() {
	var y uint32
	mag01 := [2]uint32{0, matrixA}

	var kk int
	for kk = 0; kk < N-M; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+M] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < N-1; kk++ {
		y = (mt.mt[kk] & upperMask) | (mt.mt[kk+1] & lowerMask)
		mt.mt[kk] = mt.mt[kk+(M-N)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (mt.mt[N-1] & upperMask) | (mt.mt[0] & lowerMask)
	mt.mt[N-1] = mt.mt[M-1] ^ (y >> 1) ^ mag01[y&1]

	mt.mti = 0
}

// Uint32 returns the next tempered word, twisting first when the array is
// exhausted.
func (mt *MT19937) Uint32() uint32 {
	if mt.mti >= N {
		mt.twist()
	}

	y := mt.mt[mt.mti]
	mt.mti++

	// Tempering
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18

	return y
}

// Snapshot copies the state array and index out of the engine.
func (mt *MT19937) Snapshot() (words [N]uint32, index int, seed uint32) {
	return mt.mt, mt.mti, mt.seed
}

// Load replaces the engine state verbatim. The caller validates index.
func (mt *MT19937) Load(words [N]uint32, index int, seed uint32) {
	mt.mt = words
	mt.mti = index
	mt.seed = seed
}

// SetIndex moves the read position. Callers keep it in [0, N].
func (mt *MT19937) SetIndex(i int) {
	mt.mti = i
}

// Clone returns an independent copy that will produce the same stream.
func (mt *MT19937) Clone() *MT19937 {
	c := *mt
	return &c
}
