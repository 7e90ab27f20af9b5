package knightbot

import "fmt"

// RankAttackTable maps (line index, 8-bit line occupancy) to the 8-bit set of
// positions a slider at that index attacks along the line. One table serves
// ranks, files and both diagonals once they are packed down to eight bits.
type RankAttackTable [NumOfFiles][256]uint8

// GenerateRankAttackTable builds the table for every line index and occupancy.
func GenerateRankAttackTable() *RankAttackTable {
	t := &RankAttackTable{}
	for idx := 0; idx < NumOfFiles; idx++ {
		for occ := 0; occ < 256; occ++ {
			t[idx][occ] = lineAttacks(idx, uint8(occ))
		}
	}
	return t
}

// lineAttacks scans outward from idx in both directions. The first occupied
// position on each side is attacked, nothing beyond it is.
func lineAttacks(idx int, occ uint8) uint8 {
	var attacks uint8
	for i := idx - 1; i >= 0; i-- {
		attacks |= 1 << i
		if occ&(1<<i) != 0 {
			break
		}
	}
	for i := idx + 1; i < NumOfFiles; i++ {
		attacks |= 1 << i
		if occ&(1<<i) != 0 {
			break
		}
	}
	return attacks
}

// Lookup returns the attacks for a slider at lineIndex given the line occupancy.
// lineIndex must be in [0,7].
func (t *RankAttackTable) Lookup(lineIndex, occupancy uint8) uint8 {
	if lineIndex >= NumOfFiles {
		panic(fmt.Sprintf("knightbot: rank attack line index %d out of range", lineIndex))
	}
	return t[lineIndex][occupancy]
}
