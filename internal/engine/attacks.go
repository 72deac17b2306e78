package engine

import "github.com/mgrdich/chesscore/internal/bitboard"

// knightAttacks returns every square a knight on sq attacks, ignoring
// occupancy (a knight's attack set never depends on blockers).
func knightAttacks(sq int) bitboard.Bitboard {
	return knightMasks[sq]
}

// kingAttacks returns every square a king on sq attacks, ignoring occupancy
// and castling.
func kingAttacks(sq int) bitboard.Bitboard {
	return kingMasks[sq]
}

// pawnAttacks returns the squares a pawn of the given color on sq attacks
// (diagonal captures only, not pushes).
func pawnAttacks(color Color, sq int) bitboard.Bitboard {
	return pawnCaptureMasks[color][sq]
}

// nearestBlocker returns the square of the first occupied square the ray
// scan hits. away tells which end of the ray is nearest the origin: for
// directions that enumerate increasing square indices (N, NE, E, NW) the
// nearest blocker is the lowest set bit; for the rest it is the highest.
func nearestBlocker(blocked bitboard.Bitboard, away bool) int {
	if away {
		return blocked.LSBIndex()
	}
	return blocked.MSBIndex()
}

// slidingAttacks walks each ray in dirs outward from sq, stopping at and
// including the first occupied square — a slider can capture the blocker
// but never sees past it. occ is the full-board occupancy (both colors).
func slidingAttacks(sq int, occ bitboard.Bitboard, dirs [4]int) bitboard.Bitboard {
	var attacks bitboard.Bitboard
	for _, dir := range dirs {
		full := ray[dir][sq]
		blocked := full.And(occ)
		if blocked.IsEmpty() {
			attacks = attacks.Or(full)
			continue
		}
		blockerSq := nearestBlocker(blocked, isAwayFromOrigin(dir))
		// full minus everything at-or-beyond the blocker, plus the blocker
		// square itself: the slider can land on (capture) the blocker.
		beyondAndBlocker := inclRay[dir][blockerSq]
		attacks = attacks.Or(full.And(beyondAndBlocker.Not())).Set(blockerSq)
	}
	return attacks
}

// isAwayFromOrigin reports whether direction dir enumerates squares in
// increasing index order, so the nearest blocker is the lowest set bit
// rather than the highest.
func isAwayFromOrigin(dir int) bool {
	switch dir {
	case dirNorth, dirNorthEast, dirEast, dirNorthWest:
		return true
	default:
		return false
	}
}

// rookAttacks returns a rook's attack set from sq given full-board
// occupancy occ, via ray-scan to the nearest blocker in each of the four
// orthogonal directions.
func rookAttacks(sq int, occ bitboard.Bitboard) bitboard.Bitboard {
	return slidingAttacks(sq, occ, rookDirs)
}

// bishopAttacks returns a bishop's attack set from sq given full-board
// occupancy occ, via ray-scan along the four diagonals.
func bishopAttacks(sq int, occ bitboard.Bitboard) bitboard.Bitboard {
	return slidingAttacks(sq, occ, bishopDirs)
}

// queenAttacks returns a queen's attack set: the union of rook and bishop
// attacks from the same square.
func queenAttacks(sq int, occ bitboard.Bitboard) bitboard.Bitboard {
	return rookAttacks(sq, occ).Or(bishopAttacks(sq, occ))
}

// attacksFrom returns the squares a piece of type pt and color c standing on
// sq attacks, given full-board occupancy occ. Pawns use their capture mask,
// not their push mask: this is an attack/defend query, not move generation.
func attacksFrom(pt PieceType, c Color, sq int, occ bitboard.Bitboard) bitboard.Bitboard {
	switch pt {
	case Pawn:
		return pawnAttacks(c, sq)
	case Knight:
		return knightAttacks(sq)
	case Bishop:
		return bishopAttacks(sq, occ)
	case Rook:
		return rookAttacks(sq, occ)
	case Queen:
		return queenAttacks(sq, occ)
	case King:
		return kingAttacks(sq)
	default:
		return bitboard.Empty
	}
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	if !sq.IsValid() {
		return false
	}
	s := int(sq)
	occ := b.occupied()

	if pawnAttacks(by.Opposite(), s).And(b.pieces[by][Pawn]).Count() > 0 {
		return true
	}
	if knightAttacks(s).And(b.pieces[by][Knight]).Count() > 0 {
		return true
	}
	if kingAttacks(s).And(b.pieces[by][King]).Count() > 0 {
		return true
	}
	bishopsQueens := b.pieces[by][Bishop].Or(b.pieces[by][Queen])
	if bishopAttacks(s, occ).And(bishopsQueens).Count() > 0 {
		return true
	}
	rooksQueens := b.pieces[by][Rook].Or(b.pieces[by][Queen])
	if rookAttacks(s, occ).And(rooksQueens).Count() > 0 {
		return true
	}
	return false
}

// attackersTo returns every square occupied by a piece of color by that
// attacks sq, used by check detection to enumerate checking pieces.
func (b *Board) attackersTo(sq int, by Color) bitboard.Bitboard {
	occ := b.occupied()
	var attackers bitboard.Bitboard
	attackers = attackers.Or(pawnAttacks(by.Opposite(), sq).And(b.pieces[by][Pawn]))
	attackers = attackers.Or(knightAttacks(sq).And(b.pieces[by][Knight]))
	attackers = attackers.Or(kingAttacks(sq).And(b.pieces[by][King]))
	bishopsQueens := b.pieces[by][Bishop].Or(b.pieces[by][Queen])
	attackers = attackers.Or(bishopAttacks(sq, occ).And(bishopsQueens))
	rooksQueens := b.pieces[by][Rook].Or(b.pieces[by][Queen])
	attackers = attackers.Or(rookAttacks(sq, occ).And(rooksQueens))
	return attackers
}
