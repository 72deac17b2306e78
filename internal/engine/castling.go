package engine

import "github.com/mgrdich/chesscore/internal/bitboard"

// castlingSpec describes one castling option: the squares that must be
// empty for the rook and king to pass, and the squares (including the
// king's start and destination) that must not be attacked.
type castlingSpec struct {
	right      uint8
	kingFrom   int
	kingTo     int
	rookFrom   int
	rookTo     int
	emptyPath  bitboard.Bitboard
	safePath   [3]int
	safeCount  int
}

var castlingSpecs = [2][2]castlingSpec{
	White: {
		0: { // kingside
			right:     CastleWhiteKing,
			kingFrom:  4,
			kingTo:    6,
			rookFrom:  7,
			rookTo:    5,
			emptyPath: bitboard.FromSquare(5).Or(bitboard.FromSquare(6)),
			safePath:  [3]int{4, 5, 6},
			safeCount: 3,
		},
		1: { // queenside
			right:     CastleWhiteQueen,
			kingFrom:  4,
			kingTo:    2,
			rookFrom:  0,
			rookTo:    3,
			emptyPath: bitboard.FromSquare(1).Or(bitboard.FromSquare(2)).Or(bitboard.FromSquare(3)),
			safePath:  [3]int{4, 3, 2},
			safeCount: 3,
		},
	},
	Black: {
		0: {
			right:     CastleBlackKing,
			kingFrom:  60,
			kingTo:    62,
			rookFrom:  63,
			rookTo:    61,
			emptyPath: bitboard.FromSquare(61).Or(bitboard.FromSquare(62)),
			safePath:  [3]int{60, 61, 62},
			safeCount: 3,
		},
		1: {
			right:     CastleBlackQueen,
			kingFrom:  60,
			kingTo:    58,
			rookFrom:  56,
			rookTo:    59,
			emptyPath: bitboard.FromSquare(57).Or(bitboard.FromSquare(58)).Or(bitboard.FromSquare(59)),
			safePath:  [3]int{60, 59, 58},
			safeCount: 3,
		},
	},
}

// canCastle reports whether color c may legally castle via spec right now:
// the right hasn't been revoked, the rook is still on its home square, the
// squares between king and rook are empty, and the king does not start,
// pass through, or land on an attacked square.
func (b *Board) canCastle(c Color, spec castlingSpec) bool {
	if !b.HasCastlingRight(spec.right) {
		return false
	}
	if !b.pieces[c][Rook].IsSet(spec.rookFrom) {
		return false
	}
	if spec.emptyPath.And(b.occupied()) != bitboard.Empty {
		return false
	}
	enemy := c.Opposite()
	for i := 0; i < spec.safeCount; i++ {
		if b.IsSquareAttacked(Square(spec.safePath[i]), enemy) {
			return false
		}
	}
	return true
}
