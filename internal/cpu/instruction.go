package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// Instruction is a decoded instruction. Instructions are plain data until
// executed; Execute applies the instruction to the CPU and advances PC past
// it. The set of instructions is closed.
type Instruction interface {
	fmt.Stringer
	Execute(c *CPU)
	// Len is the encoded size of the instruction in bytes.
	Len() uint16

	instruction()
}

// ALU applies Op to the A register and Src.
type ALU struct {
	Op  Operation
	Src Source
}

// Add returns ADD A, src.
func Add(src Source) ALU {
	return ALU{Op: OpAdd, Src: src}
}

func (i ALU) Execute(c *CPU) {
	c.alu(i.Op, i.Src.Value(c))
	c.PC += i.Len()
}

func (i ALU) Len() uint16    { return 1 + i.Src.Len() }
func (i ALU) String() string { return fmt.Sprintf("%s A, %s", i.Op, i.Src) }

// Load copies Src into Dst. Flags are unaffected.
type Load struct {
	Dst Target
	Src Source
}

func (i Load) Execute(c *CPU) {
	i.Dst.Store(c, i.Src.Value(c))
	c.PC += i.Len()
}

func (i Load) Len() uint16    { return 1 + i.Src.Len() }
func (i Load) String() string { return fmt.Sprintf("LD %s, %s", i.Dst, i.Src) }

// IncDec increments, or decrements when Dec is set, Dst by one. The carry
// flag is left untouched.
type IncDec struct {
	Dst Target
	Dec bool
}

func (i IncDec) Execute(c *CPU) {
	old := i.Dst.Value(c)
	val := old + 1
	h := old&0x0F == 0x0F
	if i.Dec {
		val = old - 1
		h = old&0x0F == 0x00
	}
	i.Dst.Store(c, val)
	c.setFlags(val == 0, i.Dec, h, c.F.Carry())
	c.PC += i.Len()
}

func (i IncDec) Len() uint16 { return 1 }
func (i IncDec) String() string {
	if i.Dec {
		return "DEC " + i.Dst.String()
	}
	return "INC " + i.Dst.String()
}

// Nop does nothing.
type Nop struct{}

func (Nop) Execute(c *CPU) { c.PC++ }
func (Nop) Len() uint16    { return 1 }
func (Nop) String() string { return "NOP" }

// Halt stops the CPU from fetching further instructions.
type Halt struct{}

func (Halt) Execute(c *CPU) {
	c.halted = true
	c.PC++
}

func (Halt) Len() uint16    { return 1 }
func (Halt) String() string { return "HALT" }

// Accumulator is one of the single byte operations on A and the flags
// found in column 7 of block 0.
type Accumulator struct {
	Op AccOperation
}

// AccOperation selects an Accumulator operation, bits 5-3 of the opcode.
type AccOperation uint8

//go:generate go tool stringer -linecomment -type=AccOperation
const (
	AccRlca AccOperation = iota // RLCA
	AccRrca                     // RRCA
	AccRla                      // RLA
	AccRra                      // RRA
	AccDaa                      // DAA
	AccCpl                      // CPL
	AccScf                      // SCF
	AccCcf                      // CCF
)

var accumulatorTable = [8]func(c *CPU){
	AccRlca: func(c *CPU) {
		c.setFlags(false, false, false, c.A&types.Bit7 != 0)
		c.A = c.A<<1 | c.A>>7
	},
	AccRrca: func(c *CPU) {
		c.setFlags(false, false, false, c.A&types.Bit0 != 0)
		c.A = c.A>>1 | c.A<<7
	},
	AccRla: func(c *CPU) {
		res := c.A<<1 | c.carryBit()
		c.setFlags(false, false, false, c.A&types.Bit7 != 0)
		c.A = res
	},
	AccRra: func(c *CPU) {
		res := c.A>>1 | c.carryBit()<<7
		c.setFlags(false, false, false, c.A&types.Bit0 != 0)
		c.A = res
	},
	AccDaa: func(c *CPU) {
		cy := c.F.Carry()
		if !c.F.Subtract() {
			if cy || c.A > 0x99 {
				c.A += 0x60
				cy = true
			}
			if c.F.HalfCarry() || c.A&0x0F > 0x09 {
				c.A += 0x06
			}
		} else {
			if cy {
				c.A -= 0x60
			}
			if c.F.HalfCarry() {
				c.A -= 0x06
			}
		}
		c.setFlags(c.A == 0, c.F.Subtract(), false, cy)
	},
	AccCpl: func(c *CPU) {
		c.A = 0xFF ^ c.A
		c.setFlags(c.F.Zero(), true, true, c.F.Carry())
	},
	AccScf: func(c *CPU) {
		c.setFlags(c.F.Zero(), false, false, true)
	},
	AccCcf: func(c *CPU) {
		c.setFlags(c.F.Zero(), false, false, !c.F.Carry())
	},
}

func (i Accumulator) Execute(c *CPU) {
	accumulatorTable[i.Op&0x7](c)
	c.PC += i.Len()
}

func (i Accumulator) Len() uint16    { return 1 }
func (i Accumulator) String() string { return i.Op.String() }

func (ALU) instruction()         {}
func (Load) instruction()        {}
func (IncDec) instruction()      {}
func (Nop) instruction()         {}
func (Halt) instruction()        {}
func (Accumulator) instruction() {}
