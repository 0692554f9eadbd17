package types

import (
	"errors"
	"os"

	"github.com/cespare/xxhash"
)

// ErrStateShort is returned when a read runs past the end of a State.
var ErrStateShort = errors.New("state: short read")

// Resettable is an interface that allows an object to be reset.
type Resettable interface {
	Reset() // Reset the state of the object
}

// State is a flat snapshot buffer. Objects write their fields in a fixed
// order and read them back in the same order to restore themselves.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	err          error  // first read error encountered
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0, 16),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

// ResetPosition rewinds the read position, allowing the state to be
// read from the beginning.
func (s *State) ResetPosition() {
	s.readPosition = 0
	s.err = nil
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

// Write16 writes value little-endian.
func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

func (s *State) WriteBool(value bool) {
	if value {
		s.raw = append(s.raw, 1)
	} else {
		s.raw = append(s.raw, 0)
	}
}

// next returns the next n bytes, or nil once the state is exhausted. The
// first short read is remembered and reported by Err.
func (s *State) next(n int) []byte {
	if s.err != nil || s.readPosition+n > len(s.raw) {
		s.err = ErrStateShort
		return nil
	}
	p := s.raw[s.readPosition : s.readPosition+n]
	s.readPosition += n
	return p
}

func (s *State) Read8() uint8 {
	p := s.next(1)
	if p == nil {
		return 0
	}
	return p[0]
}

func (s *State) Read16() uint16 {
	p := s.next(2)
	if p == nil {
		return 0
	}
	return uint16(p[0]) | uint16(p[1])<<8
}

func (s *State) ReadBool() bool {
	return s.Read8() != 0
}

// Err returns the first read error, if any.
func (s *State) Err() error {
	return s.err
}

// Sum64 returns a fingerprint of the state contents. Two machines that
// saved identical state produce the same fingerprint.
func (s *State) Sum64() uint64 {
	return xxhash.Sum64(s.raw)
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}
