package knightbot

import (
	"github.com/cockroachdb/errors"
	"github.com/golang/glog"

	"github.com/haakonnh/knightbot/bitops"
)

// A Resolver computes slider attacks from the structural masks and the shared
// rank attack table. Each line through the square is packed to eight bits with
// a bit extract, looked up, and deposited back onto the board.
//
// A Resolver is immutable and safe for concurrent use.
type Resolver struct {
	table *RankAttackTable
	masks *StructuralMasks
	ops   bitops.Manipulator
}

// NewResolver builds the rank attack table and structural masks and selects
// the extract/deposit implementation named by cfg.
func NewResolver(cfg Config) (*Resolver, error) {
	ops, err := bitops.New(cfg.BitOps)
	if err != nil {
		return nil, errors.Wrapf(err, "select %s bit operations", cfg.BitOps)
	}
	r := NewResolverFrom(GenerateRankAttackTable(), PrecomputeMasks(), ops)
	glog.V(1).Infof("knightbot: resolver ready (bitops=%s, table=%dx%d, masks=%d squares)",
		ops.Name(), len(r.table), len(r.table[0]), len(r.masks.Rook))
	return r, nil
}

// NewResolverFrom wraps already built tables. None of the arguments may be nil.
func NewResolverFrom(table *RankAttackTable, masks *StructuralMasks, ops bitops.Manipulator) *Resolver {
	if table == nil || masks == nil || ops == nil {
		panic("knightbot: NewResolverFrom called with nil tables")
	}
	return &Resolver{table: table, masks: masks, ops: ops}
}

// BitOps names the extract/deposit implementation in use.
func (r *Resolver) BitOps() string { return r.ops.Name() }

// Table returns the shared rank attack table.
func (r *Resolver) Table() *RankAttackTable { return r.table }

// Masks returns the structural masks.
func (r *Resolver) Masks() *StructuralMasks { return r.masks }

// line resolves attacks along a single mask for a slider at lineIndex on that line.
func (r *Resolver) line(mask Bitboard, lineIndex uint8, occupied Bitboard) Bitboard {
	packed := r.ops.Extract(uint64(occupied), uint64(mask))
	attacks := r.table.Lookup(lineIndex, uint8(packed))
	return Bitboard(r.ops.Deposit(uint64(attacks), uint64(mask)))
}

// RookAttacks returns the squares a rook on sq attacks given the board occupancy.
func (r *Resolver) RookAttacks(sq Square, occupied Bitboard) Bitboard {
	masks := r.masks.RookMasks(sq)
	return r.line(masks[0], uint8(sq.Rank()), occupied) |
		r.line(masks[1], uint8(sq.File()), occupied)
}

// BishopAttacks returns the squares a bishop on sq attacks given the board occupancy.
// A diagonal is indexed by the rank distance from its lowest square.
func (r *Resolver) BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	attacks := EmptyBB
	for _, mask := range r.masks.BishopMasks(sq) {
		low, ok := mask.LSB()
		if !ok {
			panic("knightbot: empty diagonal mask for " + sq.String())
		}
		attacks |= r.line(mask, uint8(sq.Rank()-low.Rank()), occupied)
	}
	return attacks
}

// QueenAttacks returns the union of rook and bishop attacks from sq.
func (r *Resolver) QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return r.RookAttacks(sq, occupied) | r.BishopAttacks(sq, occupied)
}

// Attacks dispatches on the slider type. Non-sliding pieces fail with ErrNotSlider.
func (r *Resolver) Attacks(pt PieceType, sq Square, occupied Bitboard) (Bitboard, error) {
	switch pt {
	case Rook:
		return r.RookAttacks(sq, occupied), nil
	case Bishop:
		return r.BishopAttacks(sq, occupied), nil
	case Queen:
		return r.QueenAttacks(sq, occupied), nil
	}
	return EmptyBB, errors.Wrapf(ErrNotSlider, "%s", pt)
}

var autoBitOps, _ = bitops.New(bitops.ModeAuto)

// ResolveAttacks computes slider attacks for pt on sq against prebuilt tables,
// using the best available extract/deposit implementation.
func ResolveAttacks(pt PieceType, sq Square, occupied Bitboard, table *RankAttackTable, masks *StructuralMasks) (Bitboard, error) {
	return NewResolverFrom(table, masks, autoBitOps).Attacks(pt, sq, occupied)
}
