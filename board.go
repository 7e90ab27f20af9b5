package knightbot

import "strings"

// A Board records piece placement with one bitboard per color and piece type.
// It is a value: Place and Remove return a modified copy.
type Board struct {
	pieces [2][len(PieceTypes)]Bitboard
}

// StartingBoard returns the standard initial piece placement.
func StartingBoard() Board {
	var b Board
	back := [NumOfFiles]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := FileA; f <= FileH; f++ {
		b = b.Place(White, back[f], NewSquare(f, Rank1)).
			Place(White, Pawn, NewSquare(f, Rank2)).
			Place(Black, Pawn, NewSquare(f, Rank7)).
			Place(Black, back[f], NewSquare(f, Rank8))
	}
	return b
}

// Place puts a piece on sq, replacing whatever was there.
// Invalid colors, piece types and squares leave the board unchanged.
func (b Board) Place(c Color, pt PieceType, sq Square) Board {
	idx := PieceTypeToIndex(pt)
	if idx < 0 || c == NoColor || !sq.Valid() {
		return b
	}
	b = b.Remove(sq)
	b.pieces[ColorToIndex(c)][idx] = b.pieces[ColorToIndex(c)][idx].Set(sq)
	return b
}

// Remove clears sq on every piece bitboard.
func (b Board) Remove(sq Square) Board {
	for ci := range b.pieces {
		for pi := range b.pieces[ci] {
			b.pieces[ci][pi] = b.pieces[ci][pi].Clear(sq)
		}
	}
	return b
}

// Pieces returns the squares holding pieces of color c and type pt.
func (b Board) Pieces(c Color, pt PieceType) Bitboard {
	idx := PieceTypeToIndex(pt)
	if idx < 0 || c == NoColor {
		return EmptyBB
	}
	return b.pieces[ColorToIndex(c)][idx]
}

// ColorOccupancy returns every square holding a piece of color c.
func (b Board) ColorOccupancy(c Color) Bitboard {
	if c == NoColor {
		return EmptyBB
	}
	occ := EmptyBB
	for _, bb := range b.pieces[ColorToIndex(c)] {
		occ |= bb
	}
	return occ
}

// Occupancy returns every occupied square.
func (b Board) Occupancy() Bitboard {
	return b.ColorOccupancy(White) | b.ColorOccupancy(Black)
}

// PieceAt returns the piece on sq, or ok=false if the square is empty.
func (b Board) PieceAt(sq Square) (c Color, pt PieceType, ok bool) {
	for ci := range b.pieces {
		for pi, bb := range b.pieces[ci] {
			if bb.Occupied(sq) {
				return IndexToColor(ci), PieceTypes[pi], true
			}
		}
	}
	return NoColor, NoPieceType, false
}

// SliderAttacks returns every square attacked by c's rooks, bishops and queens.
func (b Board) SliderAttacks(r *Resolver, c Color) Bitboard {
	occ := b.Occupancy()
	attacks := EmptyBB
	for sq := range b.Pieces(c, Rook).Squares() {
		attacks |= r.RookAttacks(sq, occ)
	}
	for sq := range b.Pieces(c, Bishop).Squares() {
		attacks |= r.BishopAttacks(sq, occ)
	}
	for sq := range b.Pieces(c, Queen).Squares() {
		attacks |= r.QueenAttacks(sq, occ)
	}
	return attacks
}

// Draw returns a visual representation of the board useful for debugging.
// White pieces are upper case, black pieces lower case.
func (b Board) Draw() string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(r.String() + " ")
		for f := FileA; f <= FileH; f++ {
			c, pt, ok := b.PieceAt(NewSquare(f, r))
			if !ok {
				sb.WriteString(". ")
				continue
			}
			letter := pieceLetter(pt)
			if c == White {
				letter = strings.ToUpper(letter)
			}
			sb.WriteString(letter + " ")
		}
		sb.WriteString(r.String() + "\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
