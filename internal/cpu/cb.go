package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/bits"
)

// ShiftOp selects a rotate or shift from the first quarter of the 0xCB
// table, bits 5-3 of the second opcode byte.
type ShiftOp uint8

//go:generate go tool stringer -linecomment -type=ShiftOp
const (
	ShiftRlc  ShiftOp = iota // RLC
	ShiftRrc                 // RRC
	ShiftRl                  // RL
	ShiftRr                  // RR
	ShiftSla                 // SLA
	ShiftSra                 // SRA
	ShiftSwap                // SWAP
	ShiftSrl                 // SRL
)

// shiftTable computes each shift of v, returning the result and the bit
// shifted out into the carry flag. carry is the carry flag beforehand.
var shiftTable = [8]func(v, carry uint8) (uint8, bool){
	ShiftRlc:  func(v, _ uint8) (uint8, bool) { return v<<1 | v>>7, v&types.Bit7 != 0 },
	ShiftRrc:  func(v, _ uint8) (uint8, bool) { return v>>1 | v<<7, v&types.Bit0 != 0 },
	ShiftRl:   func(v, carry uint8) (uint8, bool) { return v<<1 | carry, v&types.Bit7 != 0 },
	ShiftRr:   func(v, carry uint8) (uint8, bool) { return v>>1 | carry<<7, v&types.Bit0 != 0 },
	ShiftSla:  func(v, _ uint8) (uint8, bool) { return v << 1, v&types.Bit7 != 0 },
	ShiftSra:  func(v, _ uint8) (uint8, bool) { return v&types.Bit7 | v>>1, v&types.Bit0 != 0 },
	ShiftSwap: func(v, _ uint8) (uint8, bool) { return v<<4 | v>>4, false },
	ShiftSrl:  func(v, _ uint8) (uint8, bool) { return v >> 1, v&types.Bit0 != 0 },
}

// Shift rotates or shifts Dst in place.
type Shift struct {
	Op  ShiftOp
	Dst Target
}

func (i Shift) Execute(c *CPU) {
	res, cy := shiftTable[i.Op&0x7](i.Dst.Value(c), c.carryBit())
	i.Dst.Store(c, res)
	c.setFlags(res == 0, false, false, cy)
	c.PC += i.Len()
}

func (i Shift) Len() uint16    { return 2 }
func (i Shift) String() string { return fmt.Sprintf("%s %s", i.Op, i.Dst) }

// Bit tests bit N of Src, setting the zero flag when it is clear.
type Bit struct {
	N   uint8
	Src Source
}

func (i Bit) Execute(c *CPU) {
	c.setFlags(!bits.Test(i.Src.Value(c), i.N), false, true, c.F.Carry())
	c.PC += i.Len()
}

func (i Bit) Len() uint16    { return 2 }
func (i Bit) String() string { return fmt.Sprintf("BIT %d, %s", i.N, i.Src) }

// Res clears bit N of Dst.
type Res struct {
	N   uint8
	Dst Target
}

func (i Res) Execute(c *CPU) {
	i.Dst.Store(c, bits.Reset(i.Dst.Value(c), i.N))
	c.PC += i.Len()
}

func (i Res) Len() uint16    { return 2 }
func (i Res) String() string { return fmt.Sprintf("RES %d, %s", i.N, i.Dst) }

// Set sets bit N of Dst.
type Set struct {
	N   uint8
	Dst Target
}

func (i Set) Execute(c *CPU) {
	i.Dst.Store(c, bits.Set(i.Dst.Value(c), i.N))
	c.PC += i.Len()
}

func (i Set) Len() uint16    { return 2 }
func (i Set) String() string { return fmt.Sprintf("SET %d, %s", i.N, i.Dst) }

func (Shift) instruction() {}
func (Bit) instruction()   {}
func (Res) instruction()   {}
func (Set) instruction()   {}
