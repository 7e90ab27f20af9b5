package knightbot

import "github.com/haakonnh/knightbot/bitops"

// Config controls how a Resolver is built.
type Config struct {
	// BitOps selects the extract/deposit implementation.
	BitOps bitops.Mode
}

// DefaultConfig uses BMI2 when the CPU has it and the software path otherwise.
func DefaultConfig() Config {
	return Config{BitOps: bitops.ModeAuto}
}
