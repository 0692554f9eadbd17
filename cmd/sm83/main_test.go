package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Infof(format string, args ...interface{}) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *recordLogger) Errorf(format string, args ...interface{}) {
	r.lines = append(r.lines, "error: "+fmt.Sprintf(format, args...))
}

func (r *recordLogger) Debugf(format string, args ...interface{}) {
	r.lines = append(r.lines, "debug: "+fmt.Sprintf(format, args...))
}

func writeProgram(t *testing.T, program ...byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program.bin")
	require.NoError(t, os.WriteFile(path, program, 0644))
	return path
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-program", "add.bin", "-origin", "$0100", "-steps", "4", "-debug"})
	require.NoError(t, err)
	assert.Equal(t, config{program: "add.bin", origin: 0x0100, pc: 0x0100, steps: 4, debug: true}, cfg)

	cfg, err = parseFlags([]string{"-program", "add.bin", "-pc", "0x10"})
	require.NoError(t, err)
	assert.Equal(t, uint16(0), cfg.origin)
	assert.Equal(t, uint16(0x10), cfg.pc)

	_, err = parseFlags(nil)
	assert.Error(t, err)

	_, err = parseFlags([]string{"-program", "add.bin", "-origin", "0x10000"})
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "cpu.state")
	cfg := config{
		program: writeProgram(t, 0x3E, 0x0F, 0x06, 0x01, 0x80, 0x76),
		origin:  0x0100,
		pc:      0x0100,
		steps:   16,
		state:   statePath,
		debug:   true,
	}
	logger := &recordLogger{}
	require.NoError(t, run(cfg, logger))

	assert.Contains(t, logger.lines, "debug: 0104: ADD A, B")
	assert.Contains(t, logger.lines, "steps=4 halted=true")
	assert.Contains(t, logger.lines, "AF=1020 BC=0100 DE=0000 HL=0000 SP=0000 PC=0106")

	raw, err := os.ReadFile(statePath)
	require.NoError(t, err)
	c := cpu.NewCPU(nil)
	c.Load(types.StateFromBytes(raw))
	assert.Equal(t, uint8(0x10), c.A)
	assert.True(t, c.Halted())
}

func TestRun_DecodeError(t *testing.T) {
	cfg := config{program: writeProgram(t, 0x80, 0xC6), steps: 16}
	logger := &recordLogger{}

	err := run(cfg, logger)
	assert.ErrorIs(t, err, cpu.ErrTruncated)
	assert.Contains(t, logger.lines, "steps=1 halted=false")
	assert.Contains(t, logger.lines, "error: 0001: decode 0xC6: instruction truncated")
}

func TestRun_StepLimit(t *testing.T) {
	cfg := config{program: writeProgram(t, 0x00, 0x00, 0x00, 0x76), steps: 2}
	logger := &recordLogger{}

	require.NoError(t, run(cfg, logger))
	assert.Contains(t, logger.lines, "steps=2 halted=false")
}

func TestRun_ImageTooLarge(t *testing.T) {
	cfg := config{program: writeProgram(t, make([]byte, 0x100)...), origin: 0xFF80, pc: 0xFF80, steps: 1}
	assert.ErrorIs(t, run(cfg, &recordLogger{}), ram.ErrImageTooLarge)
}
