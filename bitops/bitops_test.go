package bitops

import (
	"errors"
	"math/bits"
	"math/rand"
	"testing"
)

type extractCase struct {
	src, mask, packed uint64
}

var extractCases = []extractCase{
	{0, 0, 0},
	{0xFFFFFFFFFFFFFFFF, 0, 0},
	{0xFFFFFFFFFFFFFFFF, 0x0101010101010101, 0xFF},
	{0x0000000000000100, 0x0101010101010101, 0x02},
	{0x8000000000000001, 0x8040201008040201, 0x81},
	{0x00000000000000F0, 0x00000000000000AA, 0x0C},
	{0x1234567890ABCDEF, 0xFFFFFFFFFFFFFFFF, 0x1234567890ABCDEF},
}

func implementations(t testing.TB) []Manipulator {
	m := []Manipulator{Software()}
	if hw, ok := hardware(); ok {
		m = append(m, hw)
	} else {
		t.Logf("BMI2 not available, testing software implementation only")
	}
	return m
}

func TestExtract(t *testing.T) {
	for _, impl := range implementations(t) {
		for _, c := range extractCases {
			if got := impl.Extract(c.src, c.mask); got != c.packed {
				t.Fatalf("%s: Extract(%#x, %#x) = %#x, expected %#x", impl.Name(), c.src, c.mask, got, c.packed)
			}
		}
	}
}

func TestDeposit(t *testing.T) {
	for _, impl := range implementations(t) {
		for _, c := range extractCases {
			expected := c.src & c.mask
			if got := impl.Deposit(c.packed, c.mask); got != expected {
				t.Fatalf("%s: Deposit(%#x, %#x) = %#x, expected %#x", impl.Name(), c.packed, c.mask, got, expected)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, impl := range implementations(t) {
		for i := 0; i < 2000; i++ {
			mask := r.Uint64() & r.Uint64()
			n := bits.OnesCount64(mask)
			for v := uint64(0); v < 256; v++ {
				want := v
				if n < 64 {
					want &= 1<<n - 1
				}
				if got := impl.Extract(impl.Deposit(v, mask), mask); got != want {
					t.Fatalf("%s: Extract(Deposit(%#x, %#x)) = %#x, expected %#x", impl.Name(), v, mask, got, want)
				}
			}
		}
	}
}

func TestHardwareMatchesSoftware(t *testing.T) {
	hw, ok := hardware()
	if !ok {
		t.Skip("BMI2 not available")
	}
	sw := Software()
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 100000; i++ {
		src, mask := r.Uint64(), r.Uint64()
		if a, b := hw.Extract(src, mask), sw.Extract(src, mask); a != b {
			t.Fatalf("Extract(%#x, %#x): bmi2 %#x, software %#x", src, mask, a, b)
		}
		if a, b := hw.Deposit(src, mask), sw.Deposit(src, mask); a != b {
			t.Fatalf("Deposit(%#x, %#x): bmi2 %#x, software %#x", src, mask, a, b)
		}
	}
}

func TestNew(t *testing.T) {
	m, err := New(ModeSoftware)
	if err != nil || m.Name() != "software" {
		t.Fatalf("New(ModeSoftware) = %v, %v", m, err)
	}

	m, err = New(ModeAuto)
	if err != nil {
		t.Fatalf("New(ModeAuto) failed: %v", err)
	}
	if HardwareAvailable() && m.Name() != "bmi2" {
		t.Fatalf("New(ModeAuto) picked %s although BMI2 is available", m.Name())
	}

	_, err = New(ModeHardware)
	if HardwareAvailable() && err != nil {
		t.Fatalf("New(ModeHardware) failed: %v", err)
	}
	if !HardwareAvailable() && !errors.Is(err, ErrUnsupported) {
		t.Fatalf("New(ModeHardware) expected ErrUnsupported, got %v", err)
	}

	if _, err := New(Mode(42)); err == nil {
		t.Fatalf("New(Mode(42)) expected an error")
	}
}

func TestParseMode(t *testing.T) {
	for s, want := range map[string]Mode{
		"":         ModeAuto,
		"auto":     ModeAuto,
		"Hardware": ModeHardware,
		"bmi2":     ModeHardware,
		"software": ModeSoftware,
	} {
		got, err := ParseMode(s)
		if err != nil || got != want {
			t.Fatalf("ParseMode(%q) = %v, %v; expected %v", s, got, err, want)
		}
	}
	if _, err := ParseMode("magic"); err == nil {
		t.Fatalf("ParseMode(\"magic\") expected an error")
	}
}

func BenchmarkExtract(b *testing.B) {
	for _, impl := range implementations(b) {
		b.Run(impl.Name(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				impl.Extract(uint64(i)*0x9E3779B97F4A7C15, 0x8040201008040201)
			}
		})
	}
}
