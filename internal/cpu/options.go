package cpu

import "github.com/thelolagemann/sm83/pkg/log"

// Opt is a function that modifies a CPU instance.
type Opt func(c *CPU)

// Debug logs every instruction as it is executed.
func Debug() Opt {
	return func(c *CPU) {
		c.Debug = true
	}
}

func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}
