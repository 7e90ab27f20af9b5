package knightbot

import "golang.org/x/exp/constraints"

// Directions for ray generation (N, NE, E, SE, S, SW, W, NW).
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections // Total number of directions = 8
)

var (
	rookDirections   = []int{North, East, South, West}
	bishopDirections = []int{NorthEast, SouthEast, SouthWest, NorthWest}
)

// rays[sq][dir] is the ray from sq in direction dir, excluding sq.
var rays = computeRays()

func computeRays() *[NumOfSquaresInBoard][NumDirections]Bitboard {
	var out [NumOfSquaresInBoard][NumDirections]Bitboard
	// Steps: N=8, NE=9, E=1, SE=-7, S=-8, SW=-9, W=-1, NW=7
	steps := [NumDirections]int{8, 9, 1, -7, -8, -9, -1, 7}
	for sq := A1; sq <= H8; sq++ {
		for dir := 0; dir < NumDirections; dir++ {
			ray := EmptyBB
			prev := sq
			for {
				next := int(prev) + steps[dir]
				if next < 0 || next >= NumOfSquaresInBoard {
					break
				}
				nextSq := Square(next)
				// A step of more than one file or rank wrapped around the edge.
				df := abs(int(nextSq.File()) - int(prev.File()))
				dr := abs(int(nextSq.Rank()) - int(prev.Rank()))
				if max(df, dr) > 1 {
					break
				}
				ray |= SquareBB(nextSq)
				prev = nextSq
			}
			out[sq][dir] = ray
		}
	}
	return &out
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// isPositiveRayDir checks if a direction walks towards higher square indexes (N, NE, E, NW).
func isPositiveRayDir(dir int) bool {
	return dir == North || dir == NorthEast || dir == East || dir == NorthWest
}

// Ray returns the ray from sq in direction dir (excluding sq).
func Ray(sq Square, dir int) Bitboard {
	if !sq.Valid() || dir < 0 || dir >= NumDirections {
		return EmptyBB
	}
	return rays[sq][dir]
}

// generateSliderAttacks walks each ray in dirs up to and including the first blocker.
func generateSliderAttacks(sq Square, blockers Bitboard, dirs []int) Bitboard {
	if !sq.Valid() {
		return EmptyBB
	}
	attacks := EmptyBB
	for _, dir := range dirs {
		ray := rays[sq][dir]
		blocked := ray & blockers
		if blocked == 0 {
			attacks |= ray
			continue
		}
		var blocker Square
		if isPositiveRayDir(dir) {
			blocker, _ = blocked.LSB()
		} else {
			blocker, _ = blocked.MSB()
		}
		// Everything on the ray up to the blocker, blocker included.
		attacks |= ray &^ rays[blocker][dir]
	}
	return attacks
}

// GenerateRookAttacks calculates rook attacks by walking rays. It is slower than
// Resolver.RookAttacks and serves as an independent reference.
func GenerateRookAttacks(sq Square, blockers Bitboard) Bitboard {
	return generateSliderAttacks(sq, blockers, rookDirections)
}

// GenerateBishopAttacks calculates bishop attacks by walking rays.
func GenerateBishopAttacks(sq Square, blockers Bitboard) Bitboard {
	return generateSliderAttacks(sq, blockers, bishopDirections)
}

// GenerateQueenAttacks calculates queen attacks by walking rays.
func GenerateQueenAttacks(sq Square, blockers Bitboard) Bitboard {
	return GenerateRookAttacks(sq, blockers) | GenerateBishopAttacks(sq, blockers)
}
