package knightbot

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Color is the color of a piece.
type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// PieceType is the kind of a piece, independent of color.
type PieceType int8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

// PieceTypes lists every piece type in order.
var PieceTypes = [...]PieceType{King, Queen, Rook, Bishop, Knight, Pawn}

var pieceTypeNames = map[PieceType]string{
	King:   "king",
	Queen:  "queen",
	Rook:   "rook",
	Bishop: "bishop",
	Knight: "knight",
	Pawn:   "pawn",
}

func (p PieceType) String() string {
	if s, ok := pieceTypeNames[p]; ok {
		return s
	}
	return "none"
}

// IsSlider reports whether p moves along lines until blocked.
func (p PieceType) IsSlider() bool {
	return p == Rook || p == Bishop || p == Queen
}

// ParsePieceType parses a piece name ("rook") or its letter ("r").
func ParsePieceType(s string) (PieceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for pt, name := range pieceTypeNames {
		if s == name || (len(s) == 1 && s == pieceLetter(pt)) {
			return pt, nil
		}
	}
	return NoPieceType, errors.Newf("unknown piece type %q", s)
}

func pieceLetter(p PieceType) string {
	if p == Knight {
		return "n"
	}
	return p.String()[:1]
}

// Internal color indices.
const (
	WhiteIdx = 0
	BlackIdx = 1
)

// ColorToIndex maps Color to an internal index (White=0, Black=1).
func ColorToIndex(c Color) int {
	if c == Black {
		return BlackIdx
	}
	// Default to White for White or NoColor.
	return WhiteIdx
}

// IndexToColor converts an internal index back to Color.
func IndexToColor(idx int) Color {
	if idx == BlackIdx {
		return Black
	}
	return White
}

// PieceTypeToIndex maps PieceType to an internal index (King=0..Pawn=5). Returns -1 for invalid.
func PieceTypeToIndex(pt PieceType) int {
	if pt < King || pt > Pawn {
		return -1
	}
	return int(pt - King)
}
