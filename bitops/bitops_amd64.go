//go:build amd64

package bitops

import "golang.org/x/sys/cpu"

// Implemented in bitops_amd64.s.
func pextq(src, mask uint64) uint64
func pdepq(src, mask uint64) uint64

type bmi2 struct{}

func (bmi2) Name() string                    { return "bmi2" }
func (bmi2) Extract(src, mask uint64) uint64 { return pextq(src, mask) }
func (bmi2) Deposit(src, mask uint64) uint64 { return pdepq(src, mask) }

func hardware() (Manipulator, bool) {
	if !cpu.X86.HasBMI2 {
		return nil, false
	}
	return bmi2{}, true
}
