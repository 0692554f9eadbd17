package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/ram"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// config holds the parsed command line.
type config struct {
	program string
	origin  uint16
	pc      uint16
	steps   int
	state   string
	debug   bool
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.New(cfg.debug)
	if err := run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("sm83", flag.ContinueOnError)
	fs.StringVar(&cfg.program, "program", "", "The program image to load (.gz, .zip and .7z are decompressed)")
	origin := fs.String("origin", "0", "The address the program is loaded at")
	pc := fs.String("pc", "", "The initial program counter, defaults to the origin")
	fs.IntVar(&cfg.steps, "steps", 1<<16, "The maximum number of instructions to execute")
	fs.StringVar(&cfg.state, "state", "", "Write the final CPU state to this file")
	fs.BoolVar(&cfg.debug, "debug", false, "Log every executed instruction")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.program == "" {
		return cfg, errors.New("no program given, see -program")
	}

	var err error
	if cfg.origin, err = parseAddress(*origin); err != nil {
		return cfg, fmt.Errorf("origin: %w", err)
	}
	cfg.pc = cfg.origin
	if *pc != "" {
		if cfg.pc, err = parseAddress(*pc); err != nil {
			return cfg, fmt.Errorf("pc: %w", err)
		}
	}
	return cfg, nil
}

// parseAddress accepts decimal, 0x prefixed hex or $ prefixed hex.
func parseAddress(s string) (uint16, error) {
	if len(s) > 1 && s[0] == '$' {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	return uint16(v), err
}

// run loads the program and steps the CPU until it halts, fails to decode
// or exhausts its step budget.
func run(cfg config, logger log.Logger) error {
	image, err := utils.LoadFile(cfg.program)
	if err != nil {
		return err
	}

	mem, err := ram.NewImage(image, cfg.origin)
	if err != nil {
		return err
	}

	opts := []cpu.Opt{cpu.WithLogger(logger)}
	if cfg.debug {
		opts = append(opts, cpu.Debug())
	}
	c := cpu.NewCPU(mem, opts...)
	c.PC = cfg.pc

	steps := 0
	for ; steps < cfg.steps && !c.Halted(); steps++ {
		if err = c.Step(); err != nil {
			break
		}
	}

	logger.Infof("steps=%d halted=%t", steps, c.Halted())
	logger.Infof("AF=%02X%02X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X",
		c.A, c.F.Byte(), c.BC(), c.DE(), c.HL(), c.SP, c.PC)

	state := types.NewState()
	c.Save(state)
	logger.Infof("state=%016x", state.Sum64())
	if cfg.state != "" {
		if serr := state.SaveToFile(cfg.state); serr != nil {
			return serr
		}
	}

	return err
}
