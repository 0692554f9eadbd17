package cpu

// Operation is an 8-bit ALU operation applied to the A register, selected
// by bits 5-3 of the opcode in blocks 2 and 3.
type Operation uint8

//go:generate go tool stringer -linecomment -type=Operation
const (
	OpAdd Operation = iota // ADD
	OpAdc                  // ADC
	OpSub                  // SUB
	OpSbc                  // SBC
	OpAnd                  // AND
	OpXor                  // XOR
	OpOr                   // OR
	OpCp                   // CP
)

// aluFunc computes an operation of a and b, returning the result and
// the resulting flags. carry is the carry flag before the operation.
type aluFunc func(a, b, carry uint8) (res uint8, z, n, h, cy bool)

var aluTable = [8]aluFunc{
	OpAdd: add8,
	OpAdc: adc8,
	OpSub: sub8,
	OpSbc: sbc8,
	OpAnd: and8,
	OpXor: xor8,
	OpOr:  or8,
	OpCp:  sub8,
}

// alu applies op to A and v. CP discards the result.
func (c *CPU) alu(op Operation, v uint8) {
	res, z, n, h, cy := aluTable[op&0x7](c.A, v, c.carryBit())
	c.setFlags(z, n, h, cy)
	if op != OpCp {
		c.A = res
	}
}

func add8(a, b, _ uint8) (res uint8, z, n, h, cy bool) {
	res = a + b
	z = res == 0
	// a carry out of bit 3 leaves the low nibble smaller than the operand's
	h = res&0x0F < b&0x0F
	cy = uint16(a)+uint16(b) > 0xFF
	return
}

func adc8(a, b, carry uint8) (res uint8, z, n, h, cy bool) {
	r := uint16(a) + uint16(b) + uint16(carry)
	res = uint8(r)
	z = res == 0
	h = (a&0x0F)+(b&0x0F)+carry > 0x0F
	cy = r > 0xFF
	return
}

func sub8(a, b, _ uint8) (res uint8, z, n, h, cy bool) {
	res = a - b
	z = res == 0
	n = true
	h = a&0x0F < b&0x0F
	cy = a < b
	return
}

func sbc8(a, b, carry uint8) (res uint8, z, n, h, cy bool) {
	r := int16(a) - int16(b) - int16(carry)
	res = uint8(r)
	z = res == 0
	n = true
	h = int16(a&0x0F)-int16(b&0x0F)-int16(carry) < 0
	cy = r < 0
	return
}

func and8(a, b, _ uint8) (res uint8, z, n, h, cy bool) {
	res = a & b
	z = res == 0
	h = true
	return
}

func xor8(a, b, _ uint8) (res uint8, z, n, h, cy bool) {
	res = a ^ b
	z = res == 0
	return
}

func or8(a, b, _ uint8) (res uint8, z, n, h, cy bool) {
	res = a | b
	z = res == 0
	return
}
