package types

// Register represents an SM83 register which is used to hold an 8-bit value.
// The CPU has 7 general purpose registers: A, B, C, D, E, H and L. The flags
// live in their own type, as only their upper nibble is ever stored.
type Register = uint8

// RegisterPair represents a pair of Registers viewed as a single 16-bit
// value. The pair holds no storage of its own, it reads and writes through
// to the two backing registers, High being the most significant byte.
type RegisterPair struct {
	High *Register
	Low  *Register
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r RegisterPair) Uint16() uint16 {
	return uint16(*r.High)<<8 | uint16(*r.Low)
}

// SetUint16 splits value across the high and low registers.
func (r RegisterPair) SetUint16(value uint16) {
	*r.High = uint8(value >> 8)
	*r.Low = uint8(value)
}
