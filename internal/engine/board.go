package engine

import "github.com/mgrdich/chesscore/internal/bitboard"

// Castling rights bit masks, indexed the way FEN's KQkq field lists them.
const (
	CastleWhiteKing  uint8 = 1 << 0 // K
	CastleWhiteQueen uint8 = 1 << 1 // Q
	CastleBlackKing  uint8 = 1 << 2 // k
	CastleBlackQueen uint8 = 1 << 3 // q
	CastleAll        uint8 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Board represents the complete state of a chess position: one bitboard per
// (color, piece type) pair, plus the side to move, castling rights,
// en-passant target, halfmove clock, fullmove number, and the repetition
// history needed for threefold/fivefold detection.
type Board struct {
	// pieces[color][pieceType] is the bitboard of squares occupied by that
	// color's pieces of that type. pieces[c][Empty] is always unused.
	pieces [2][7]bitboard.Bitboard

	// ActiveColor is the color of the player to move.
	ActiveColor Color

	// CastlingRights encodes available castling options, see the Castle*
	// constants.
	CastlingRights uint8

	// EnPassantSq is the en-passant target square, or NoSquare if none is
	// available this move.
	EnPassantSq Square

	// HalfMoveClock counts half-moves since the last pawn move or capture,
	// for the fifty/seventy-five-move rules.
	HalfMoveClock int

	// FullMoveNum is the current full move number, starting at 1.
	FullMoveNum int

	// hash is the Zobrist hash of the current position (en-passant target
	// is deliberately not part of it, see internal/zobrist).
	hash uint64

	// history holds the Zobrist hash of every position reached since the
	// last irreversible move (pawn move, capture, or castling), including
	// the current position, used for repetition detection.
	history []uint64
}

// NewBoard returns an empty board: no pieces, White to move, all castling
// rights set, no en-passant target, and move counters at their initial
// values. Callers typically populate it via FromFEN or DefaultBoard rather
// than placing pieces by hand.
func NewBoard() *Board {
	b := &Board{
		ActiveColor:    White,
		CastlingRights: CastleAll,
		EnPassantSq:    NoSquare,
		HalfMoveClock:  0,
		FullMoveNum:    1,
	}
	return b
}

// EmptyBoard returns a board with no pieces and no castling rights, White to
// move. Used as a starting point for hand-built test positions.
func EmptyBoard() *Board {
	b := NewBoard()
	b.CastlingRights = 0
	return b
}

// DefaultBoard returns the standard chess starting position.
func DefaultBoard() *Board {
	b, err := FromFEN(StartingFEN)
	if err != nil {
		panic("engine: starting FEN failed to parse: " + err.Error())
	}
	return b
}

// PieceAt returns the piece occupying sq, or the zero Piece (White, Empty)
// if sq is empty or invalid.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.IsValid() {
		return Piece(Empty)
	}
	s := int(sq)
	for _, c := range [2]Color{White, Black} {
		for _, pt := range pieceTypes {
			if b.pieces[c][pt].IsSet(s) {
				return NewPiece(c, pt)
			}
		}
	}
	return Piece(Empty)
}

// put places a piece of the given color and type on sq. Callers must ensure
// sq is currently empty; put does not clear any existing occupant.
func (b *Board) put(c Color, pt PieceType, sq int) {
	b.pieces[c][pt] = b.pieces[c][pt].Set(sq)
}

// remove clears a piece of the given color and type from sq.
func (b *Board) remove(c Color, pt PieceType, sq int) {
	b.pieces[c][pt] = b.pieces[c][pt].Clear(sq)
}

// colorOccupied returns the union of every piece bitboard for color c.
func (b *Board) colorOccupied(c Color) bitboard.Bitboard {
	var occ bitboard.Bitboard
	for _, pt := range pieceTypes {
		occ = occ.Or(b.pieces[c][pt])
	}
	return occ
}

// occupied returns the union of every piece on the board, both colors.
func (b *Board) occupied() bitboard.Bitboard {
	return b.colorOccupied(White).Or(b.colorOccupied(Black))
}

// KingSquare returns the square of color c's king, or NoSquare if (in an
// invalid, hand-built position) it has none.
func (b *Board) KingSquare(c Color) Square {
	kings := b.pieces[c][King]
	if kings.IsEmpty() {
		return NoSquare
	}
	return Square(kings.LSBIndex())
}

// Hash returns the Zobrist hash of the current position.
func (b *Board) Hash() uint64 { return b.hash }

// History returns the Zobrist hash of every position reached since the
// last irreversible move, oldest first, including the current position.
// The returned slice is owned by the caller; mutating it does not affect b.
func (b *Board) History() []uint64 {
	out := make([]uint64, len(b.history))
	copy(out, b.history)
	return out
}

// Turn returns the color to move.
func (b *Board) Turn() Color { return b.ActiveColor }

// HasCastlingRight reports whether the given Castle* right is still
// available.
func (b *Board) HasCastlingRight(right uint8) bool {
	return b.CastlingRights&right != 0
}
