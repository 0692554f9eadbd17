package cpu

import "fmt"

// Source is where an instruction takes an 8-bit value from: a register,
// the memory cell addressed by HL, or a literal from the instruction
// stream. The set of sources is closed.
type Source interface {
	fmt.Stringer
	// Value resolves the operand against the current CPU state.
	Value(c *CPU) uint8
	// Len is the number of bytes the operand occupies after the opcode.
	Len() uint16

	operand()
}

// Target is a Source that can also be written to.
type Target interface {
	Source
	Store(c *CPU, value uint8)
}

// IndirectHL is the memory cell addressed by the HL register pair.
type IndirectHL struct{}

// Immediate is a literal byte following the opcode.
type Immediate uint8

// registerTable maps the 3-bit register field of an opcode to its
// operand. Every block that encodes an 8-bit register uses this table.
var registerTable = [8]Target{
	0: RegB,
	1: RegC,
	2: RegD,
	3: RegE,
	4: RegH,
	5: RegL,
	6: IndirectHL{},
	7: RegA,
}

// SourceFromOpcode returns the operand selected by bits 2-0 of opcode.
func SourceFromOpcode(opcode uint8) Source {
	return registerTable[opcode&0x7]
}

// targetAt returns the operand encoded by the 3-bit field of opcode
// starting at bit shift.
func targetAt(opcode, shift uint8) Target {
	return registerTable[opcode>>shift&0x7]
}

// SourceFromLiteral wraps an immediate byte.
func SourceFromLiteral(value uint8) Source {
	return Immediate(value)
}

func (r Reg8) Value(c *CPU) uint8        { return c.Get(r) }
func (r Reg8) Store(c *CPU, value uint8) { c.Set(r, value) }
func (r Reg8) Len() uint16               { return 0 }
func (r Reg8) operand()                  {}

func (IndirectHL) Value(c *CPU) uint8    { return c.bus.Read(c.HL()) }
func (IndirectHL) Store(c *CPU, v uint8) { c.bus.Write(c.HL(), v) }
func (IndirectHL) Len() uint16           { return 0 }
func (IndirectHL) String() string        { return "(HL)" }
func (IndirectHL) operand()              {}

func (i Immediate) Value(*CPU) uint8 { return uint8(i) }
func (i Immediate) Len() uint16      { return 1 }
func (i Immediate) String() string   { return fmt.Sprintf("$%02X", uint8(i)) }
func (i Immediate) operand()         {}
