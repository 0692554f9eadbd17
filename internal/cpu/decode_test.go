package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	for op := 0; op <= 0xFF; op++ {
		want := Block(op >> 6)
		if op == PrefixCB {
			want = BlockPrefixed
		}
		assert.Equal(t, want, Classify(uint8(op)), "opcode 0x%02X", op)
	}
	assert.Equal(t, "prefixed", BlockPrefixed.String())
	assert.Equal(t, "block 2", Block2.String())
}

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		bytes    []byte
		expected Instruction
	}{
		{[]byte{0x80}, Add(RegB)},
		{[]byte{0x87}, Add(RegA)},
		{[]byte{0x86}, Add(IndirectHL{})},
		{[]byte{0xC6, 0xFF}, Add(Immediate(0xFF))},
		{[]byte{0xC6, 0xAB, 0x00}, Add(Immediate(0xAB))},
		{[]byte{0x9E}, ALU{Op: OpSbc, Src: IndirectHL{}}},
		{[]byte{0xFE, 0x10}, ALU{Op: OpCp, Src: Immediate(0x10)}},
		{[]byte{0x00}, Nop{}},
		{[]byte{0x76}, Halt{}},
		{[]byte{0x41}, Load{Dst: RegB, Src: RegC}},
		{[]byte{0x36, 0x99}, Load{Dst: IndirectHL{}, Src: Immediate(0x99)}},
		{[]byte{0x3C}, IncDec{Dst: RegA}},
		{[]byte{0x35}, IncDec{Dst: IndirectHL{}, Dec: true}},
		{[]byte{0x27}, Accumulator{Op: AccDaa}},
		{[]byte{0xCB, 0x30}, Shift{Op: ShiftSwap, Dst: RegB}},
		{[]byte{0xCB, 0x7E}, Bit{N: 7, Src: IndirectHL{}}},
		{[]byte{0xCB, 0x81}, Res{N: 0, Dst: RegC}},
		{[]byte{0xCB, 0xC7}, Set{N: 0, Dst: RegA}},
	} {
		instr, err := Decode(tt.bytes)
		if assert.NoError(t, err, "% X", tt.bytes) {
			assert.Equal(t, tt.expected, instr, "% X", tt.bytes)
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	for _, tt := range []struct {
		bytes  []byte
		err    error
		opcode uint8
	}{
		{nil, ErrTruncated, 0x00},
		{[]byte{0xC6}, ErrTruncated, 0xC6},
		{[]byte{0xEE}, ErrTruncated, 0xEE},
		{[]byte{0x06}, ErrTruncated, 0x06},
		{[]byte{0xCB}, ErrTruncated, 0xCB},
		{[]byte{0x01, 0x34, 0x12}, ErrUnimplemented, 0x01},
		{[]byte{0x10, 0x00}, ErrUnimplemented, 0x10},
		{[]byte{0xC3, 0x00, 0x01}, ErrUnimplemented, 0xC3},
		{[]byte{0xFF}, ErrUnimplemented, 0xFF},
		{[]byte{0xD3}, ErrIllegalOpcode, 0xD3},
		{[]byte{0xFD}, ErrIllegalOpcode, 0xFD},
	} {
		instr, err := Decode(tt.bytes)
		assert.Nil(t, instr)
		assert.ErrorIs(t, err, tt.err, "% X", tt.bytes)

		var decodeErr *DecodeError
		if assert.True(t, errors.As(err, &decodeErr)) {
			assert.Equal(t, tt.opcode, decodeErr.Opcode)
		}
	}
	assert.EqualError(t, &DecodeError{Opcode: 0xD3, Err: ErrIllegalOpcode}, "decode 0xD3: illegal opcode")
}

// TestDecode_Exhaustive decodes every leading byte and every prefixed
// opcode, checking each yields an instruction or a known decode error.
func TestDecode_Exhaustive(t *testing.T) {
	decoded := map[Block]int{}
	for op := 0; op <= 0xFF; op++ {
		b := []byte{uint8(op), 0x00, 0x00}
		instr, err := Decode(b)
		if err != nil {
			if !errors.Is(err, ErrUnimplemented) && !errors.Is(err, ErrIllegalOpcode) {
				t.Errorf("0x%02X: unexpected error %v", op, err)
			}
			continue
		}
		assert.LessOrEqual(t, int(instr.Len()), len(b))
		decoded[Classify(uint8(op))]++
	}

	for op := 0; op <= 0xFF; op++ {
		instr, err := Decode([]byte{PrefixCB, uint8(op)})
		if assert.NoError(t, err) {
			assert.Equal(t, uint16(2), instr.Len())
		}
	}

	assert.Equal(t, 64, decoded[Block1], "LD r, r and HALT")
	assert.Equal(t, 64, decoded[Block2], "ALU r")
	assert.Equal(t, 8, decoded[Block3], "ALU d8")
	assert.Equal(t, 1+8+8+8+8, decoded[Block0], "NOP, INC, DEC, LD r, d8, accumulator")
	assert.Equal(t, 1, decoded[BlockPrefixed])
}

func TestDecode_RegisterField(t *testing.T) {
	want := []Source{RegB, RegC, RegD, RegE, RegH, RegL, IndirectHL{}, RegA}
	for op := uint8(0); op < 8; op++ {
		for i := uint8(0); i < 8; i++ {
			instr, err := Decode([]byte{0x80 | op<<3 | i})
			if assert.NoError(t, err) {
				assert.Equal(t, want[i], instr.(ALU).Src)
				assert.Equal(t, Operation(op), instr.(ALU).Op)
			}
		}
	}
}

func FuzzDecode(f *testing.F) {
	for _, seed := range [][]byte{{}, {0x80}, {0xC6}, {0xC6, 0x01}, {0xCB}, {0xCB, 0x7E}, {0x76}, {0xD3}} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, b []byte) {
		assert := assert.New(t)

		instr, err := Decode(b)
		if err != nil {
			assert.Nil(instr)
			var decodeErr *DecodeError
			assert.True(errors.As(err, &decodeErr))
			return
		}
		assert.LessOrEqual(int(instr.Len()), len(b))
		assert.NotEmpty(instr.String())

		c := newTestCPU(b[:min(len(b), MaxInstructionLen)]...)
		assert.NoError(c.Step())
		assert.Equal(instr.Len(), c.PC)
	})
}
