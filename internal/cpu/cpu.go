package cpu

import (
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Bus is the memory the CPU fetches instructions from and resolves (HL)
// operands against.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// Fetcher is implemented by buses that can expose the instruction stream
// directly. Fetch returns up to n bytes starting at address; fewer when
// the stream ends.
type Fetcher interface {
	Fetch(address uint16, n int) []byte
}

// CPU represents the SM83 CPU. It is responsible for executing instructions.
type CPU struct {
	// Registers contains the 8-bit registers, the 16-bit register pairs,
	// the stack pointer and the program counter.
	Registers
	// F is the flags register.
	F Flags

	Debug bool

	bus    Bus
	log    log.Logger
	halted bool
}

// NewCPU creates a new CPU reading and writing through bus. All registers,
// flags and the program counter start at zero.
func NewCPU(bus Bus, opts ...Opt) *CPU {
	c := &CPU{
		bus: bus,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset zeroes every register and flag and leaves halt.
func (c *CPU) Reset() {
	c.Registers = Registers{}
	c.F.Clear()
	c.halted = false
}

// Halted reports whether the CPU has executed HALT.
func (c *CPU) Halted() bool {
	return c.halted
}

// Step fetches, decodes and executes the instruction at PC. A halted CPU
// does nothing. A decode error leaves the CPU untouched, so the host may
// stop cleanly at the failing instruction.
func (c *CPU) Step() error {
	if c.halted {
		return nil
	}

	instr, err := Decode(c.fetch())
	if err != nil {
		c.log.Errorf("%04X: %v", c.PC, err)
		return err
	}
	if c.Debug {
		c.log.Debugf("%04X: %s", c.PC, instr)
	}

	c.Execute(instr)
	return nil
}

// Execute runs an already decoded instruction against the CPU.
func (c *CPU) Execute(instr Instruction) {
	instr.Execute(c)
}

// fetch returns the bytes at PC, at most MaxInstructionLen of them.
func (c *CPU) fetch() []byte {
	if f, ok := c.bus.(Fetcher); ok {
		return f.Fetch(c.PC, MaxInstructionLen)
	}

	b := make([]byte, MaxInstructionLen)
	for i := range b {
		b[i] = c.bus.Read(c.PC + uint16(i))
	}
	return b
}

var (
	_ types.Stater     = (*CPU)(nil)
	_ types.Resettable = (*CPU)(nil)
)

// Load restores the CPU from s. A short state leaves the CPU untouched,
// the failure is reported by s.Err.
func (c *CPU) Load(s *types.State) {
	var r Registers
	var f Flags
	r.A = s.Read8()
	f.Set(s.Read8())
	r.B = s.Read8()
	r.C = s.Read8()
	r.D = s.Read8()
	r.E = s.Read8()
	r.H = s.Read8()
	r.L = s.Read8()
	r.SP = s.Read16()
	r.PC = s.Read16()
	halted := s.ReadBool()
	if s.Err() != nil {
		return
	}

	c.Registers, c.F, c.halted = r, f, halted
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F.Byte())
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
	s.WriteBool(c.halted)
}
