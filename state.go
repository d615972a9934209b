package mtrand

import (
	"encoding/binary"
	"fmt"
)

// stateHeaderSize covers the seed and index fields of an encoded State.
const stateHeaderSize = 8

// State is a verbatim copy of a generator's internal state. Restoring it
// resumes the stream exactly where the copy was taken.
type State struct {
	Words [StateSize]uint32
	Index int
	Seed  uint32
}

// Validate reports whether s can be restored.
func (s State) Validate() error {
	if s.Index < 0 || s.Index > StateSize {
		return fmt.Errorf("%w: index %d outside [0, %d]", ErrInvalidState, s.Index, StateSize)
	}
	return nil
}

// State returns a copy of the generator state.
func (g *Generator) State() State {
	words, index, seed := g.mt.Snapshot()
	return State{Words: words, Index: index, Seed: seed}
}

// SetState replaces the generator state with s.
func (g *Generator) SetState(s State) error {
	if err := s.Validate(); err != nil {
		return err
	}
	g.mt.Load(s.Words, s.Index, s.Seed)
	return nil
}

// Restore creates a 32-bit word Generator from a state snapshot.
func Restore(s State) (*Generator, error) {
	g := NewWithSeed(0)
	if err := g.SetState(s); err != nil {
		return nil, err
	}
	return g, nil
}

// MarshalBinary encodes s as little-endian seed, index and state words.
func (s State) MarshalBinary() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	b := make([]byte, stateHeaderSize+4*StateSize)
	binary.LittleEndian.PutUint32(b[0:], s.Seed)
	binary.LittleEndian.PutUint32(b[4:], uint32(s.Index))
	for i, w := range s.Words {
		binary.LittleEndian.PutUint32(b[stateHeaderSize+4*i:], w)
	}
	return b, nil
}

// UnmarshalBinary decodes the format written by MarshalBinary.
func (s *State) UnmarshalBinary(b []byte) error {
	if len(b) != stateHeaderSize+4*StateSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidState, len(b), stateHeaderSize+4*StateSize)
	}
	var dec State
	dec.Seed = binary.LittleEndian.Uint32(b[0:])
	idx := binary.LittleEndian.Uint32(b[4:])
	if idx > StateSize {
		return fmt.Errorf("%w: index %d outside [0, %d]", ErrInvalidState, idx, StateSize)
	}
	dec.Index = int(idx)
	for i := range dec.Words {
		dec.Words[i] = binary.LittleEndian.Uint32(b[stateHeaderSize+4*i:])
	}
	*s = dec
	return nil
}
