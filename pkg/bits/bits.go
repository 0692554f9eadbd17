// Package bits provides helpers for reading and writing single bits of a
// byte. Bit indexes are taken modulo 8.
package bits

// Val returns the value of the bit at the given index, 0 or 1.
func Val(b uint8, i uint8) uint8 {
	return (b >> (i & 7)) & 1
}

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << (i & 7))
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << (i & 7))
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return Val(b, i) != 0
}
