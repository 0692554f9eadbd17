package cpu

import (
	"errors"

	"github.com/thelolagemann/sm83/internal/translate"
)

var f = translate.From

var (
	// ErrTruncated is returned when the byte stream ends before the
	// operand bytes an opcode requires.
	ErrTruncated = errors.New(f("instruction truncated"))
	// ErrUnimplemented is returned for opcodes this core cannot execute yet.
	ErrUnimplemented = errors.New(f("opcode not implemented"))
	// ErrIllegalOpcode is returned for the opcodes that lock up the CPU.
	ErrIllegalOpcode = errors.New(f("illegal opcode"))
)

// DecodeError reports the opcode that failed to decode.
type DecodeError struct {
	Opcode uint8
	Err    error
}

func (err *DecodeError) Error() string {
	return f("decode 0x%02X: %v", err.Opcode, err.Err)
}

func (err *DecodeError) Unwrap() error {
	return err.Err
}
