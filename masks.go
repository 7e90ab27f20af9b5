package knightbot

import "fmt"

// StructuralMasks holds, for every square, the lines a slider on that square moves along.
// Every mask includes the square itself.
type StructuralMasks struct {
	// Rook is {file mask, rank mask}, indexed by square.
	Rook [NumOfSquaresInBoard][2]Bitboard
	// Bishop is {A1-H8 diagonal, A8-H1 anti-diagonal}, indexed by square.
	Bishop [NumOfSquaresInBoard][2]Bitboard
}

// PrecomputeMasks builds the structural masks for all 64 squares.
func PrecomputeMasks() *StructuralMasks {
	m := &StructuralMasks{}
	for sq := range FullBB.Squares() {
		f, r := int(sq.File()), int(sq.Rank())

		var fileMask, rankMask Bitboard
		for i := 0; i < 8; i++ {
			fileMask |= SquareBB(MustSquare(i*8 + f))
			rankMask |= SquareBB(MustSquare(r*8 + i))
		}
		m.Rook[sq] = [2]Bitboard{fileMask, rankMask}

		m.Bishop[sq] = [2]Bitboard{
			diagonalLine(f, r, 1, 1),
			diagonalLine(f, r, 1, -1),
		}
	}
	return m
}

// diagonalLine walks from (f, r) in steps of (df, dr) and (-df, -dr) until it leaves the board.
func diagonalLine(f, r, df, dr int) Bitboard {
	line := SquareBB(NewSquare(File(f), Rank(r)))
	for _, sign := range [2]int{1, -1} {
		for i := 1; ; i++ {
			nf, nr := f+sign*i*df, r+sign*i*dr
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				break
			}
			line |= SquareBB(NewSquare(File(nf), Rank(nr)))
		}
	}
	return line
}

// RookMasks returns the {file, rank} masks through sq.
func (m *StructuralMasks) RookMasks(sq Square) [2]Bitboard {
	checkSquare(sq)
	return m.Rook[sq]
}

// BishopMasks returns the two diagonal masks through sq.
func (m *StructuralMasks) BishopMasks(sq Square) [2]Bitboard {
	checkSquare(sq)
	return m.Bishop[sq]
}

func checkSquare(sq Square) {
	if !sq.Valid() {
		panic(fmt.Sprintf("knightbot: invalid square %d", int(sq)))
	}
}
