package knightbot

import "github.com/cockroachdb/errors"

var (
	// ErrSquareOutOfRange is returned when an integer does not name one of the 64 squares.
	ErrSquareOutOfRange = errors.New("square index out of range")
	// ErrInvalidFormat is returned when algebraic square text cannot be parsed.
	ErrInvalidFormat = errors.New("invalid square format")
	// ErrNotSlider is returned when attacks are requested for a non-sliding piece.
	ErrNotSlider = errors.New("piece type is not a slider")
)

const squareFormatHint = "expected a file letter a-h followed by a rank digit 1-8, e.g. \"e4\""
