package engine

import (
	"sort"

	"github.com/mgrdich/chesscore/internal/bitboard"
)

// PseudoLegalMoves generates every move available to the side to move
// without checking whether it leaves that side's own king in check.
// Moves are emitted in deterministic order: King, Queen, Rook, Bishop,
// Knight, then Pawn, each ascending by from-square then to-square, with
// promotions ordered Queen, Rook, Bishop, Knight.
func (b *Board) PseudoLegalMoves() []Move {
	var moves []Move
	c := b.ActiveColor

	for _, pt := range pieceTypes {
		fromBB := b.pieces[c][pt]
		froms := fromBB.Bits()
		sort.Ints(froms)
		for _, from := range froms {
			var fromMoves []Move
			switch pt {
			case Pawn:
				fromMoves = b.pawnMoves(c, from)
			case King:
				fromMoves = b.kingMoves(c, from)
			default:
				fromMoves = b.pieceMoves(c, pt, from)
			}
			// Pushes, captures, en passant and castling are generated in
			// separate passes; a stable sort by destination puts them in
			// ascending order and keeps each promotion group's piece order.
			sort.SliceStable(fromMoves, func(i, j int) bool { return fromMoves[i].To < fromMoves[j].To })
			moves = append(moves, fromMoves...)
		}
	}

	return moves
}

func (b *Board) pieceMoves(c Color, pt PieceType, from int) []Move {
	occ := b.occupied()
	attacks := attacksFrom(pt, c, from, occ).And(b.colorOccupied(c).Not())
	return b.movesFromAttackSet(c, pt, from, attacks)
}

func (b *Board) movesFromAttackSet(c Color, pt PieceType, from int, attacks bitboard.Bitboard) []Move {
	var moves []Move
	tos := attacks.Bits()
	sort.Ints(tos)
	enemyOcc := b.colorOccupied(c.Opposite())
	for _, to := range tos {
		m := Move{From: Square(from), To: Square(to), Piece: pt, Color: c, Flag: Quiet}
		if enemyOcc.IsSet(to) {
			m.Flag = Capture
			m.Captured = b.PieceAt(Square(to)).Type()
		}
		moves = append(moves, m)
	}
	return moves
}

func (b *Board) kingMoves(c Color, from int) []Move {
	moves := b.pieceMoves(c, King, from)

	for i := 0; i < 2; i++ {
		spec := castlingSpecs[c][i]
		if from != spec.kingFrom {
			continue
		}
		if b.canCastle(c, spec) {
			flag := ShortCastle
			if i == 1 {
				flag = LongCastle
			}
			moves = append(moves, Move{
				From: Square(spec.kingFrom), To: Square(spec.kingTo),
				Piece: King, Color: c, Flag: flag,
			})
		}
	}

	return moves
}

func (b *Board) pawnMoves(c Color, from int) []Move {
	var moves []Move
	occ := b.occupied()
	enemyOcc := b.colorOccupied(c.Opposite())

	promoRank := 7
	if c == Black {
		promoRank = 0
	}

	single := pawnPushMasks[c][from].And(occ.Not())
	if !single.IsEmpty() {
		to := single.LSBIndex()
		moves = append(moves, b.pawnMoveOrPromotions(c, from, to, promoRank, Quiet, Empty)...)
		double := pawnDoubleMasks[c][from]
		if !double.IsEmpty() && double.And(occ).IsEmpty() {
			moves = append(moves, Move{From: Square(from), To: Square(double.LSBIndex()), Piece: Pawn, Color: c, Flag: DoublePawnPush})
		}
	}

	captures := pawnAttacks(c, from).And(enemyOcc)
	tos := captures.Bits()
	sort.Ints(tos)
	for _, to := range tos {
		captured := b.PieceAt(Square(to)).Type()
		moves = append(moves, b.pawnMoveOrPromotions(c, from, to, promoRank, Capture, captured)...)
	}

	if b.EnPassantSq != NoSquare {
		epAttacks := pawnAttacks(c, from)
		if epAttacks.IsSet(int(b.EnPassantSq)) {
			moves = append(moves, Move{From: Square(from), To: b.EnPassantSq, Piece: Pawn, Color: c, Flag: EnPassant, Captured: Pawn})
		}
	}

	return moves
}

// pawnMoveOrPromotions emits a single Quiet/Capture move, or — when to lands
// on the promotion rank — one move per promotion piece in Queen, Rook,
// Bishop, Knight order.
func (b *Board) pawnMoveOrPromotions(c Color, from, to, promoRank int, flag MoveFlag, captured PieceType) []Move {
	if Square(to).Rank() != promoRank {
		return []Move{{From: Square(from), To: Square(to), Piece: Pawn, Color: c, Flag: flag, Captured: captured}}
	}

	promoFlag := Promotion
	if flag == Capture {
		promoFlag = CapturePromotion
	}
	moves := make([]Move, 0, 4)
	for _, promo := range promotionOrder {
		moves = append(moves, Move{
			From: Square(from), To: Square(to), Piece: Pawn, Color: c,
			Flag: promoFlag, Captured: captured, Promotion: promo,
		})
	}
	return moves
}

// LegalMoves returns every pseudo-legal move that does not leave the mover's
// own king in check, via copy-make: each candidate is played on a scratch
// copy of the board and discarded.
func (b *Board) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := make([]Move, 0, len(pseudo))
	mover := b.ActiveColor

	for _, m := range pseudo {
		scratch := *b
		scratch.makeMoveUnchecked(m)
		kingSq := scratch.KingSquare(mover)
		if kingSq == NoSquare || !scratch.IsSquareAttacked(kingSq, mover.Opposite()) {
			legal = append(legal, m)
		}
	}

	return legal
}

// IsLegal reports whether m is among the legal moves in the current
// position. Useful for validating a move parsed from user input before
// committing it with MakeMove.
func (b *Board) IsLegal(m Move) bool {
	for _, lm := range b.LegalMoves() {
		if lm == m {
			return true
		}
	}
	return false
}
