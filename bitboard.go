package knightbot

import (
	"iter"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares, one bit per square. Bit 0 is A1 and bit 63 is H8.
// Bitboards are values: every operation returns a new Bitboard.
type Bitboard uint64

const (
	NumOfFiles = 8 // Number of files (columns).
	NumOfRanks = 8 // Number of ranks (rows).
)

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileBBB Bitboard = FileABB << 1
	FileCBB Bitboard = FileABB << 2
	FileDBB Bitboard = FileABB << 3
	FileEBB Bitboard = FileABB << 4
	FileFBB Bitboard = FileABB << 5
	FileGBB Bitboard = FileABB << 6
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank2BB Bitboard = Rank1BB << (8 * 1)
	Rank3BB Bitboard = Rank1BB << (8 * 2)
	Rank4BB Bitboard = Rank1BB << (8 * 3)
	Rank5BB Bitboard = Rank1BB << (8 * 4)
	Rank6BB Bitboard = Rank1BB << (8 * 5)
	Rank7BB Bitboard = Rank1BB << (8 * 6)
	Rank8BB Bitboard = Rank1BB << (8 * 7)
)

// BBFile returns the mask for the given file.
func BBFile(f File) Bitboard {
	if f < FileA || f > FileH {
		return EmptyBB
	}
	return FileABB << f
}

// BBRank returns the mask for the given rank.
func BBRank(r Rank) Bitboard {
	if r < Rank1 || r > Rank8 {
		return EmptyBB
	}
	return Rank1BB << (8 * r)
}

// --- Bitboard Manipulation ---

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	if sq.Valid() {
		return 1 << sq
	}
	return EmptyBB
}

// ParseBitboard returns the singleton bitboard for algebraic text such as "a4".
func ParseBitboard(s string) (Bitboard, error) {
	sq, err := ParseSquare(s)
	if err != nil {
		return EmptyBB, err
	}
	return SquareBB(sq), nil
}

// Set sets the bit corresponding to the square.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Toggle toggles the bit corresponding to the square.
func (b Bitboard) Toggle(sq Square) Bitboard { return b ^ SquareBB(sq) }

// Occupied checks if the square's bit is set.
func (b Bitboard) Occupied(sq Square) bool {
	return (b & SquareBB(sq)) != 0
}

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// ClearLSB clears the lowest set bit. On an empty board it is a no-op.
func (b Bitboard) ClearLSB() Bitboard { return b & (b - 1) }

// LSB finds the least significant set square. Returns (NoSquare, false) on an empty board.
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// MSB finds the most significant set square. Returns (NoSquare, false) on an empty board.
func (b Bitboard) MSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(NumOfSquaresInBoard - 1 - bits.LeadingZeros64(uint64(b))), true
}

// PopLSB finds and removes the least significant bit.
// Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	sq, ok := b.LSB()
	if !ok {
		return NoSquare, b, false
	}
	return sq, b.ClearLSB(), true
}

// Squares returns a sequence of the set squares in ascending order.
// The sequence works on its own copy of b.
func (b Bitboard) Squares() iter.Seq[Square] {
	return func(yield func(Square) bool) {
		for rest := b; rest != 0; rest = rest.ClearLSB() {
			if !yield(Square(bits.TrailingZeros64(uint64(rest)))) {
				return
			}
		}
	}
}

// Scan returns a slice of all squares corresponding to set bits, ordered LSB to MSB.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for sq := range b.Squares() {
		squares = append(squares, sq)
	}
	return squares
}

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(NumOfSquaresInBoard)
	for i := NumOfSquaresInBoard - 1; i >= 0; i-- {
		if (uint64(b)>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw renders the bitboard as an 8x8 grid of 1s and 0s, rank 8 on top,
// followed by a file footer. The layout matches the developer tooling output:
//
//	8 0 0 0 0 0 0 0 0
//	...
//	1 1 0 0 0 0 0 0 0
//	  A B C D E F G H
func (b Bitboard) Draw() string {
	const lastBit = NumOfSquaresInBoard - 1
	var sb strings.Builder
	for row := 0; row < NumOfRanks; row++ {
		sb.WriteString(Rank(lastBit/8 - row).String())
		sb.WriteByte(' ')
		for col := NumOfFiles - 1; col >= 0; col-- {
			mask := Bitboard(1) << (lastBit - row*8 - col)
			if b&mask != 0 {
				sb.WriteString("1 ")
			} else {
				sb.WriteString("0 ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  A B C D E F G H\n")
	return sb.String()
}

// And performs a bitwise AND operation.
func (b Bitboard) And(other Bitboard) Bitboard { return b & other }

// Or performs a bitwise OR operation.
func (b Bitboard) Or(other Bitboard) Bitboard { return b | other }

// Xor performs a bitwise XOR operation.
func (b Bitboard) Xor(other Bitboard) Bitboard { return b ^ other }

// Not performs a bitwise NOT operation.
func (b Bitboard) Not() Bitboard { return ^b }

// AndNot performs a bitwise AND NOT operation (b & ~other).
func (b Bitboard) AndNot(other Bitboard) Bitboard { return b &^ other }

// Reverse reverses the bits of the bitboard (A1 <-> H8).
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }
