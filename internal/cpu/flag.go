package cpu

import "github.com/thelolagemann/sm83/pkg/bits"

// Flag is the bit position of a condition flag within the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// flagMask covers the meaningful bits of the F register. The lower nibble
// always reads as zero.
const flagMask = 0xF0

// Flags is the F register:
//
//	7 6 5 4 3 2 1 0
//	Z N H C 0 0 0 0
type Flags uint8

// Set stores value, discarding the lower nibble.
func (f *Flags) Set(value uint8) {
	*f = Flags(value & flagMask)
}

// Clear resets every flag.
func (f *Flags) Clear() {
	*f = 0
}

// Byte returns the raw register value.
func (f Flags) Byte() uint8 {
	return uint8(f)
}

// Get returns true if the given flag is set.
func (f Flags) Get(flag Flag) bool {
	return bits.Test(uint8(f), flag)
}

// Put sets the given flag to value.
func (f *Flags) Put(flag Flag, value bool) {
	if value {
		*f = Flags(bits.Set(uint8(*f), flag))
	} else {
		f.Reset(flag)
	}
}

// Reset clears the given flag.
func (f *Flags) Reset(flag Flag) {
	*f = Flags(bits.Reset(uint8(*f), flag))
}

func (f Flags) Zero() bool      { return f.Get(FlagZero) }
func (f Flags) Subtract() bool  { return f.Get(FlagSubtract) }
func (f Flags) HalfCarry() bool { return f.Get(FlagHalfCarry) }
func (f Flags) Carry() bool     { return f.Get(FlagCarry) }

// setFlags rewrites all four flags at once.
func (c *CPU) setFlags(zero, subtract, halfCarry, carry bool) {
	var f Flags
	f.Put(FlagZero, zero)
	f.Put(FlagSubtract, subtract)
	f.Put(FlagHalfCarry, halfCarry)
	f.Put(FlagCarry, carry)
	c.F = f
}

// carryBit returns the carry flag as 0 or 1.
func (c *CPU) carryBit() uint8 {
	return bits.Val(uint8(c.F), FlagCarry)
}
