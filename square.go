package knightbot

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// A Square is one of the 64 squares on a chess board.
// Squares are numbered rank by rank from A1 (0) to H8 (63).
type Square int8

// NumOfSquaresInBoard is the number of squares on the board.
const NumOfSquaresInBoard = 64

const (
	NoSquare Square = iota - 1
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// A File is one of the eight columns of the board.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const fileChars = "abcdefgh"

func (f File) String() string {
	return fileChars[f : f+1]
}

// A Rank is one of the eight rows of the board.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const rankChars = "12345678"

func (r Rank) String() string {
	return rankChars[r : r+1]
}

// NewSquare returns the square at the intersection of f and r.
func NewSquare(f File, r Rank) Square {
	return Square(int(r)*8 + int(f))
}

// SquareFromIndex converts a raw index into a Square.
// Indexes outside [0,63] fail with ErrSquareOutOfRange.
func SquareFromIndex(idx int) (Square, error) {
	if idx < 0 || idx >= NumOfSquaresInBoard {
		return NoSquare, errors.Wrapf(ErrSquareOutOfRange, "index %d", idx)
	}
	return Square(idx), nil
}

// MustSquare is like SquareFromIndex but panics on an invalid index.
// It is meant for table construction where the index is known to be in range.
func MustSquare(idx int) Square {
	sq, err := SquareFromIndex(idx)
	if err != nil {
		panic(fmt.Sprintf("knightbot: %v", err))
	}
	return sq
}

// ParseSquare parses two-character algebraic text such as "e4" or "E4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, errors.WithHint(errors.Wrapf(ErrInvalidFormat, "%q has length %d", s, len(s)), squareFormatHint)
	}
	letter := s[0] | 0x20 // fold to lower case
	if letter < 'a' || letter > 'h' {
		return NoSquare, errors.WithHint(errors.Wrapf(ErrInvalidFormat, "%q has invalid file %q", s, s[0]), squareFormatHint)
	}
	digit := s[1]
	if digit < '1' || digit > '8' {
		return NoSquare, errors.WithHint(errors.Wrapf(ErrInvalidFormat, "%q has invalid rank %q", s, s[1]), squareFormatHint)
	}
	return NewSquare(File(letter-'a'), Rank(digit-'1')), nil
}

// Valid reports whether sq is one of A1..H8.
func (sq Square) Valid() bool {
	return sq >= A1 && sq <= H8
}

// File returns the square's file.
func (sq Square) File() File {
	return File(sq & 7)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(sq >> 3)
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}
