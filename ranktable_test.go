package knightbot

import "testing"

func TestRankAttackTableEdges(t *testing.T) {
	table := GenerateRankAttackTable()
	cases := []struct {
		idx, occ, attacks uint8
	}{
		{0, 0b00000000, 0b11111110},
		{7, 0b00000000, 0b01111111},
		{3, 0b00000000, 0b11110111},
		{3, 0b00101000, 0b00110111},
		{3, 0b00010100, 0b00010100},
		{0, 0b00000010, 0b00000010},
		{7, 0b10000001, 0b01111111},
		{4, 0b11111111, 0b00101000},
		{4, 0b00010000, 0b11101111},
	}
	for _, c := range cases {
		if got := table.Lookup(c.idx, c.occ); got != c.attacks {
			t.Fatalf("Lookup(%d, %08b) = %08b, expected %08b", c.idx, c.occ, got, c.attacks)
		}
	}
}

func TestRankAttackTableNeverAttacksOwnSquare(t *testing.T) {
	table := GenerateRankAttackTable()
	for idx := uint8(0); idx < 8; idx++ {
		for occ := 0; occ < 256; occ++ {
			if table.Lookup(idx, uint8(occ))&(1<<idx) != 0 {
				t.Fatalf("Lookup(%d, %08b) includes the slider's own position", idx, occ)
			}
		}
	}
}

func TestRankAttackTableDeterministic(t *testing.T) {
	if *GenerateRankAttackTable() != *GenerateRankAttackTable() {
		t.Fatalf("two table constructions differ")
	}
}

func TestRankAttackTableLookupPanics(t *testing.T) {
	table := GenerateRankAttackTable()
	defer func() {
		if recover() == nil {
			t.Fatalf("Lookup(8, 0) did not panic")
		}
	}()
	table.Lookup(8, 0)
}

func BenchmarkGenerateRankAttackTable(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GenerateRankAttackTable()
	}
}
