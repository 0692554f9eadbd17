// Package ram provides a basic RAM implementation.
package ram

import (
	"errors"
	"fmt"
)

// ErrImageTooLarge is returned when an image does not fit in the address
// space at its origin.
var ErrImageTooLarge = errors.New("ram: image exceeds address space")

// Size is the size of the full 16-bit address space.
const Size = 0x10000

// RAM represents a flat block of memory starting at address 0x0000.
// Addresses past the end of the block read as 0xFF and ignore writes,
// matching an unmapped bus.
type RAM struct {
	data []byte
	end  int // fetch limit
}

// NewRAM returns a new zeroed RAM of the given size, capped at Size.
func NewRAM(size uint32) *RAM {
	if size > Size {
		size = Size
	}
	return &RAM{
		data: make([]byte, size),
		end:  int(size),
	}
}

// NewImage returns a RAM covering the whole address space with image
// copied in at origin. Reads and writes reach every address, but Fetch
// stops where the image ends, so a truncated program surfaces as a decode
// error.
func NewImage(image []byte, origin uint16) (*RAM, error) {
	end := int(origin) + len(image)
	if end > Size {
		return nil, fmt.Errorf("%w: %d bytes at $%04X", ErrImageTooLarge, len(image), origin)
	}
	r := NewRAM(Size)
	copy(r.data[origin:], image)
	r.end = end
	return r, nil
}

// Read returns the value at the given address.
func (r *RAM) Read(address uint16) uint8 {
	if int(address) >= len(r.data) {
		return 0xFF
	}
	return r.data[address]
}

// Write writes the value to the given address.
func (r *RAM) Write(address uint16, value uint8) {
	if int(address) >= len(r.data) {
		return
	}
	r.data[address] = value
}

// Fetch returns up to n bytes starting at address without copying. The
// slice is shorter than n when the loaded image (or the block) ends
// first, and empty when address lies past the end.
func (r *RAM) Fetch(address uint16, n int) []byte {
	if int(address) >= r.end {
		return nil
	}
	end := int(address) + n
	if end > r.end {
		end = r.end
	}
	return r.data[address:end]
}

// Len returns the number of addressable bytes.
func (r *RAM) Len() int {
	return len(r.data)
}
