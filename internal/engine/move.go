package engine

// MoveFlag classifies the special effect a Move has on the board beyond
// relocating a piece from From to To.
type MoveFlag uint8

const (
	// Quiet is an ordinary move to an empty square.
	Quiet MoveFlag = iota
	// DoublePawnPush is a pawn advancing two squares from its start rank,
	// setting up a potential en-passant target.
	DoublePawnPush
	// Capture takes an enemy piece standing on the destination square.
	Capture
	// EnPassant captures a pawn on the square behind the destination,
	// per the en-passant rule.
	EnPassant
	// Promotion is a pawn move to the back rank that promotes to Promotion,
	// landing on an empty square.
	Promotion
	// CapturePromotion is a pawn move to the back rank that captures an
	// enemy piece and promotes to Promotion.
	CapturePromotion
	// ShortCastle is kingside castling (O-O).
	ShortCastle
	// LongCastle is queenside castling (O-O-O).
	LongCastle
	// NullMove passes the turn without moving any piece, used by search and
	// debug tooling to probe a position from the opponent's perspective.
	NullMove
)

// String names the flag, matching the identifiers above.
func (f MoveFlag) String() string {
	switch f {
	case Quiet:
		return "quiet"
	case DoublePawnPush:
		return "double-pawn-push"
	case Capture:
		return "capture"
	case EnPassant:
		return "en-passant"
	case Promotion:
		return "promotion"
	case CapturePromotion:
		return "capture-promotion"
	case ShortCastle:
		return "short-castle"
	case LongCastle:
		return "long-castle"
	case NullMove:
		return "null"
	default:
		return "unknown"
	}
}

// IsCapture reports whether the move removes an enemy piece from the board,
// including en-passant and capture-promotions.
func (f MoveFlag) IsCapture() bool {
	return f == Capture || f == EnPassant || f == CapturePromotion
}

// IsPromotion reports whether the move promotes a pawn.
func (f MoveFlag) IsPromotion() bool {
	return f == Promotion || f == CapturePromotion
}

// IsCastle reports whether the move is a castling move.
func (f MoveFlag) IsCastle() bool {
	return f == ShortCastle || f == LongCastle
}

// Move is a single ply: the piece moved, its color, the source and
// destination squares, the special-effect flag, and — where the flag calls
// for it — the captured piece type and/or the promotion piece type.
//
// Move is a plain value type, not an interface: a generated move never
// needs to be anything other than itself, so there is no benefit to an
// interface abstraction here.
type Move struct {
	From      Square
	To        Square
	Piece     PieceType
	Color     Color
	Flag      MoveFlag
	Captured  PieceType
	Promotion PieceType
}

// NewNullMove returns the null move for the side to move: no piece moves,
// only the turn and any en-passant target change (the target is cleared).
func NewNullMove(side Color) Move {
	return Move{From: NoSquare, To: NoSquare, Color: side, Flag: NullMove}
}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.Flag == NullMove
}

// String renders m in coordinate notation ("e2e4", "e7e8q", "e1g1" for
// castling), the format ParseMove accepts back.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Flag.IsPromotion() {
		s += promotionSuffix(m.Promotion)
	}
	return s
}

func promotionSuffix(p PieceType) string {
	switch p {
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	default:
		return ""
	}
}

func promotionFromSuffix(c byte) (PieceType, bool) {
	switch c {
	case 'q':
		return Queen, true
	case 'r':
		return Rook, true
	case 'b':
		return Bishop, true
	case 'n':
		return Knight, true
	default:
		return Empty, false
	}
}
