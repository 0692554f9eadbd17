package cpu

import "github.com/thelolagemann/sm83/internal/types"

// Reg8 names an 8-bit register.
type Reg8 uint8

//go:generate go tool stringer -linecomment -type=Reg8
const (
	RegA Reg8 = iota // A
	RegB             // B
	RegC             // C
	RegD             // D
	RegE             // E
	RegH             // H
	RegL             // L
)

// Reg16 names a 16-bit register pair.
type Reg16 uint8

//go:generate go tool stringer -linecomment -type=Reg16
const (
	RegBC Reg16 = iota // BC
	RegDE              // DE
	RegHL              // HL
)

// pairs lists the high and low halves of each register pair.
var pairs = [...][2]Reg8{
	RegBC: {RegB, RegC},
	RegDE: {RegD, RegE},
	RegHL: {RegH, RegL},
}

// Registers is the register file of the CPU. B/C, D/E and H/L may also
// be addressed as the 16-bit pairs BC, DE and HL; a pair is only a view
// over its two halves.
type Registers struct {
	A types.Register
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// ref returns a pointer to the storage of reg.
func (r *Registers) ref(reg Reg8) *types.Register {
	switch reg {
	case RegA:
		return &r.A
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic("cpu: invalid register " + reg.String())
}

// Get returns the value of reg.
func (r *Registers) Get(reg Reg8) uint8 {
	return *r.ref(reg)
}

// Set sets reg to value.
func (r *Registers) Set(reg Reg8, value uint8) {
	*r.ref(reg) = value
}

// Pair returns the 16-bit view of p, backed by this register file.
func (r *Registers) Pair(p Reg16) types.RegisterPair {
	return types.RegisterPair{High: r.ref(pairs[p][0]), Low: r.ref(pairs[p][1])}
}

// Get16 returns the value of the register pair p.
func (r *Registers) Get16(p Reg16) uint16 {
	return r.Pair(p).Uint16()
}

// Set16 sets the register pair p to value, high byte first.
func (r *Registers) Set16(p Reg16, value uint16) {
	r.Pair(p).SetUint16(value)
}

func (r *Registers) BC() uint16 { return r.Get16(RegBC) }
func (r *Registers) DE() uint16 { return r.Get16(RegDE) }
func (r *Registers) HL() uint16 { return r.Get16(RegHL) }

func (r *Registers) SetBC(v uint16) { r.Set16(RegBC, v) }
func (r *Registers) SetDE(v uint16) { r.Set16(RegDE, v) }
func (r *Registers) SetHL(v uint16) { r.Set16(RegHL, v) }
