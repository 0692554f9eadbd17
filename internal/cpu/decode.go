package cpu

// Block is the decode path selected by the first byte of an instruction.
//
//	00 000 000
//	^^ ^^^ ^^^
//	x  y   z
//
// x picks one of the four blocks, y and z are decoded per block.
type Block uint8

//go:generate go tool stringer -linecomment -type=Block
const (
	Block0        Block = iota // block 0
	Block1                     // block 1
	Block2                     // block 2
	Block3                     // block 3
	BlockPrefixed              // prefixed
)

// PrefixCB escapes to the second opcode table.
const PrefixCB = 0xCB

// MaxInstructionLen is the largest encoded instruction, in bytes.
const MaxInstructionLen = 3

// decoder builds an instruction from a byte slice starting at its opcode.
type decoder func(b []byte) (Instruction, error)

var decoders = [...]decoder{
	Block0:        decodeBlock0,
	Block1:        decodeBlock1,
	Block2:        decodeBlock2,
	Block3:        decodeBlock3,
	BlockPrefixed: decodePrefixed,
}

// Classify returns the decode path for the first byte of an instruction.
func Classify(opcode uint8) Block {
	if opcode == PrefixCB {
		return BlockPrefixed
	}
	return Block(opcode >> 6)
}

// Decode decodes the instruction at the start of b. Trailing bytes past
// the instruction are ignored.
func Decode(b []byte) (Instruction, error) {
	if len(b) == 0 {
		return nil, &DecodeError{Err: ErrTruncated}
	}
	return decoders[Classify(b[0])](b)
}

// need checks that b holds at least n bytes.
func need(b []byte, n int) error {
	if len(b) < n {
		return &DecodeError{Opcode: b[0], Err: ErrTruncated}
	}
	return nil
}

func unimplemented(b []byte) (Instruction, error) {
	return nil, &DecodeError{Opcode: b[0], Err: ErrUnimplemented}
}

// block0Table is indexed by z.
var block0Table = [8]decoder{
	0: func(b []byte) (Instruction, error) {
		if b[0] == 0x00 {
			return Nop{}, nil
		}
		return unimplemented(b) // STOP, JR, LD (a16), SP
	},
	1: unimplemented, // LD rr, d16 / ADD HL, rr
	2: unimplemented, // LD (rr), A / LD A, (rr)
	3: unimplemented, // INC rr / DEC rr
	4: func(b []byte) (Instruction, error) {
		return IncDec{Dst: targetAt(b[0], 3)}, nil
	},
	5: func(b []byte) (Instruction, error) {
		return IncDec{Dst: targetAt(b[0], 3), Dec: true}, nil
	},
	6: func(b []byte) (Instruction, error) {
		if err := need(b, 2); err != nil {
			return nil, err
		}
		return Load{Dst: targetAt(b[0], 3), Src: SourceFromLiteral(b[1])}, nil
	},
	7: func(b []byte) (Instruction, error) {
		return Accumulator{Op: AccOperation(b[0] >> 3 & 0x7)}, nil
	},
}

// decodeBlock0 decodes 0x00 - 0x3F.
func decodeBlock0(b []byte) (Instruction, error) {
	return block0Table[b[0]&0x7](b)
}

// decodeBlock1 decodes 0x40 - 0x7F, register to register loads. The
// encoding of LD (HL), (HL) is HALT.
func decodeBlock1(b []byte) (Instruction, error) {
	if b[0] == 0x76 {
		return Halt{}, nil
	}
	return Load{Dst: targetAt(b[0], 3), Src: SourceFromOpcode(b[0])}, nil
}

// decodeBlock2 decodes 0x80 - 0xBF, ALU operations on A and a register.
func decodeBlock2(b []byte) (Instruction, error) {
	return ALU{Op: Operation(b[0] >> 3 & 0x7), Src: SourceFromOpcode(b[0])}, nil
}

// illegalOpcodes hang the CPU on hardware.
var illegalOpcodes = [256]bool{
	0xD3: true, 0xDB: true, 0xDD: true,
	0xE3: true, 0xE4: true, 0xEB: true, 0xEC: true, 0xED: true,
	0xF4: true, 0xFC: true, 0xFD: true,
}

// block3Table is indexed by z.
var block3Table = [8]decoder{
	0: unimplemented, // RET cc / LDH / ADD SP, e8 / LD HL, SP+e8
	1: unimplemented, // POP / RET / RETI / JP HL / LD SP, HL
	2: unimplemented, // JP cc / LD (C), A / LD (a16), A
	3: unimplemented, // JP a16 / DI / EI
	4: unimplemented, // CALL cc
	5: unimplemented, // PUSH / CALL a16
	6: func(b []byte) (Instruction, error) {
		if err := need(b, 2); err != nil {
			return nil, err
		}
		return ALU{Op: Operation(b[0] >> 3 & 0x7), Src: SourceFromLiteral(b[1])}, nil
	},
	7: unimplemented, // RST
}

// decodeBlock3 decodes 0xC0 - 0xFF, other than the 0xCB prefix.
func decodeBlock3(b []byte) (Instruction, error) {
	if illegalOpcodes[b[0]] {
		return nil, &DecodeError{Opcode: b[0], Err: ErrIllegalOpcode}
	}
	return block3Table[b[0]&0x7](b)
}

// decodePrefixed decodes 0xCB xx.
//
//	00 000 000
//	^^ ^^^ ^^^
//	op bit reg
func decodePrefixed(b []byte) (Instruction, error) {
	if err := need(b, 2); err != nil {
		return nil, err
	}
	op := b[1]
	bit, dst := op>>3&0x7, targetAt(op, 0)
	switch op >> 6 {
	case 0:
		return Shift{Op: ShiftOp(bit), Dst: dst}, nil
	case 1:
		return Bit{N: bit, Src: dst}, nil
	case 2:
		return Res{N: bit, Dst: dst}, nil
	default:
		return Set{N: bit, Dst: dst}, nil
	}
}
