// Package bitops implements parallel bit extract and deposit (PEXT/PDEP)
// with a BMI2 hardware path on amd64 and a portable software fallback.
package bitops

import (
	"math/bits"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnsupported is returned when the hardware implementation is requested
// on a CPU that lacks BMI2.
var ErrUnsupported = errors.New("bitops: BMI2 not supported on this CPU")

// A Manipulator gathers and scatters bits through a mask.
//
// Extract packs the bits of src selected by mask into the low bits of the
// result, preserving their order. Deposit is its inverse: it places the low
// bits of src, in order, at the positions of the set bits of mask.
type Manipulator interface {
	Extract(src, mask uint64) uint64
	Deposit(src, mask uint64) uint64
	Name() string
}

// Mode selects a Manipulator implementation.
type Mode int

const (
	ModeAuto Mode = iota
	ModeHardware
	ModeSoftware
)

var modeNames = map[Mode]string{
	ModeAuto:     "auto",
	ModeHardware: "hardware",
	ModeSoftware: "software",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return "unknown"
}

// ParseMode parses "auto", "hardware" or "software".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "hardware", "bmi2":
		return ModeHardware, nil
	case "software", "soft":
		return ModeSoftware, nil
	}
	return ModeAuto, errors.WithHint(errors.Newf("bitops: unknown mode %q", s), "valid modes: auto, hardware, software")
}

// New returns the Manipulator for mode. ModeAuto prefers hardware when available.
func New(mode Mode) (Manipulator, error) {
	switch mode {
	case ModeAuto:
		if hw, ok := hardware(); ok {
			return hw, nil
		}
		return Software(), nil
	case ModeHardware:
		if hw, ok := hardware(); ok {
			return hw, nil
		}
		return nil, ErrUnsupported
	case ModeSoftware:
		return Software(), nil
	}
	return nil, errors.Newf("bitops: invalid mode %d", int(mode))
}

// HardwareAvailable reports whether the BMI2 implementation can be used.
func HardwareAvailable() bool {
	_, ok := hardware()
	return ok
}

type software struct{}

// Software returns the portable sequential gather/scatter implementation.
func Software() Manipulator { return software{} }

func (software) Name() string { return "software" }

func (software) Extract(src, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		res |= (src >> bit & 1) << idx
		idx++
	}
	return res
}

func (software) Deposit(src, mask uint64) uint64 {
	var res uint64
	var idx uint
	for m := mask; m != 0; m &= m - 1 {
		bit := uint(bits.TrailingZeros64(m))
		res |= (src >> idx & 1) << bit
		idx++
	}
	return res
}
