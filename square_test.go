package knightbot

import (
	"errors"
	"testing"
)

func TestSquareFileRank(t *testing.T) {
	for i := 0; i < NumOfSquaresInBoard; i++ {
		sq, err := SquareFromIndex(i)
		if err != nil {
			t.Fatalf("SquareFromIndex(%d): %v", i, err)
		}
		if int(sq.File()) != i%8 || int(sq.Rank()) != i/8 {
			t.Fatalf("%s: expected file %d rank %d but got %d %d", sq, i%8, i/8, sq.File(), sq.Rank())
		}
		if back := MustSquare(int(sq.Rank())*8 + int(sq.File())); back != sq {
			t.Fatalf("round trip of %s gave %s", sq, back)
		}
		if NewSquare(sq.File(), sq.Rank()) != sq {
			t.Fatalf("NewSquare(%s, %s) != %s", sq.File(), sq.Rank(), sq)
		}
	}
}

func TestSquareFromIndexOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 64, 255, 1 << 20} {
		sq, err := SquareFromIndex(idx)
		if !errors.Is(err, ErrSquareOutOfRange) {
			t.Fatalf("SquareFromIndex(%d) expected ErrSquareOutOfRange but got %v", idx, err)
		}
		if sq != NoSquare {
			t.Fatalf("SquareFromIndex(%d) expected NoSquare but got %d", idx, sq)
		}
	}
}

func TestMustSquarePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustSquare(64) did not panic")
		}
	}()
	MustSquare(64)
}

func TestSquareString(t *testing.T) {
	cases := map[Square]string{
		A1:       "a1",
		H1:       "h1",
		E4:       "e4",
		A8:       "a8",
		H8:       "h8",
		NoSquare: "-",
	}
	for sq, s := range cases {
		if sq.String() != s {
			t.Fatalf("square %d expected %q but got %q", int(sq), s, sq.String())
		}
	}
	if E4 != 28 {
		t.Fatalf("E4 expected index 28 but got %d", int(E4))
	}
}

func TestParseSquare(t *testing.T) {
	good := map[string]Square{
		"a1": A1,
		"A1": A1,
		"e4": E4,
		"H8": H8,
		"d6": D6,
	}
	for s, sq := range good {
		got, err := ParseSquare(s)
		if err != nil || got != sq {
			t.Fatalf("ParseSquare(%q) = %s, %v; expected %s", s, got, err, sq)
		}
	}
	for _, s := range []string{"", "a", "a10", "i1", "@1", "a0", "a9", "ax", "1a", "e4 "} {
		if _, err := ParseSquare(s); !errors.Is(err, ErrInvalidFormat) {
			t.Fatalf("ParseSquare(%q) expected ErrInvalidFormat but got %v", s, err)
		}
	}
}
