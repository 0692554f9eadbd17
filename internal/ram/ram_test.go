package ram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRAM(t *testing.T) {
	assert := assert.New(t)

	r := NewRAM(0x100)
	assert.Equal(0x100, r.Len())

	r.Write(0x0010, 0x42)
	assert.Equal(uint8(0x42), r.Read(0x0010))

	// unmapped addresses
	r.Write(0x0200, 0x42)
	assert.Equal(uint8(0xFF), r.Read(0x0200))

	assert.Equal(Size, NewRAM(0x20000).Len())
}

func TestRAM_Fetch(t *testing.T) {
	assert := assert.New(t)

	r, err := NewImage([]byte{0x80, 0xC6}, 0x0100)
	require.NoError(t, err)
	assert.Equal(Size, r.Len())
	assert.Equal([]byte{0x80, 0xC6}, r.Fetch(0x0100, 3))
	assert.Equal([]byte{0xC6}, r.Fetch(0x0101, 2))
	assert.Empty(r.Fetch(0x0102, 2))
	assert.Equal([]byte{0x00, 0x00}, r.Fetch(0x0000, 2))
}

func TestRAM_ImageAddressSpace(t *testing.T) {
	assert := assert.New(t)

	r, err := NewImage([]byte{0x76}, 0x0000)
	require.NoError(t, err)

	// memory past the image stays readable and writable
	r.Write(0xC000, 0x42)
	assert.Equal(uint8(0x42), r.Read(0xC000))
	r.Write(0xFFFF, 0x24)
	assert.Equal(uint8(0x24), r.Read(0xFFFF))
	assert.Equal(uint8(0x00), r.Read(0x0001))

	// but instructions cannot be fetched from it
	assert.Equal([]byte{0x76}, r.Fetch(0x0000, 3))
	assert.Empty(r.Fetch(0xC000, 1))
}

func TestRAM_ImageTooLarge(t *testing.T) {
	image := make([]byte, 0x100)
	image[0x7F] = 0x42

	_, err := NewImage(image, 0xFF80)
	assert.ErrorIs(t, err, ErrImageTooLarge)

	// an image ending exactly at the top of the address space fits
	r, err := NewImage(image[:0x80], 0xFF80)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), r.Read(0xFFFF))
	assert.Equal(t, []byte{0x42}, r.Fetch(0xFFFF, 3))
}
