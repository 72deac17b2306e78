package engine

import (
	"strconv"
	"strings"
)

// StartingFEN is the FEN string for the standard chess starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN (Forsyth-Edwards Notation) string into a Board.
// FEN format: <pieces> <active> <castling> <ep> <halfmove> <fullmove>
// Example: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
//
// In addition to syntactic validation, FromFEN rejects a position that is
// not valid: more than one king per side, a pawn on the first or last
// rank, or the side not to move already in check.
func FromFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, &FenParseError{FEN: fen, Detail: "expected 6 space-separated fields, got " + strconv.Itoa(len(parts))}
	}

	b := EmptyBoard()

	if err := parsePlacement(b, parts[0], fen); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		b.ActiveColor = White
	case "b":
		b.ActiveColor = Black
	default:
		return nil, &FenParseError{FEN: fen, Detail: "active color must be 'w' or 'b', got " + parts[1]}
	}

	if parts[2] != "-" {
		for _, ch := range parts[2] {
			switch ch {
			case 'K':
				b.CastlingRights |= CastleWhiteKing
			case 'Q':
				b.CastlingRights |= CastleWhiteQueen
			case 'k':
				b.CastlingRights |= CastleBlackKing
			case 'q':
				b.CastlingRights |= CastleBlackQueen
			default:
				return nil, &FenParseError{FEN: fen, Detail: "invalid castling character '" + string(ch) + "'"}
			}
		}
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, &FenParseError{FEN: fen, Detail: "invalid en passant square '" + parts[3] + "'"}
		}
		b.EnPassantSq = sq
	}

	halfMove, err := strconv.Atoi(parts[4])
	if err != nil || halfMove < 0 {
		return nil, &FenParseError{FEN: fen, Detail: "invalid halfmove clock '" + parts[4] + "'"}
	}
	b.HalfMoveClock = halfMove

	fullMove, err := strconv.Atoi(parts[5])
	if err != nil || fullMove < 1 {
		return nil, &FenParseError{FEN: fen, Detail: "invalid fullmove number '" + parts[5] + "'"}
	}
	b.FullMoveNum = fullMove

	if err := validatePosition(b); err != nil {
		return nil, err
	}

	b.hash = b.ComputeHash()
	b.history = append(b.history, b.hash)

	return b, nil
}

func parsePlacement(b *Board, placement, fen string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return &FenParseError{FEN: fen, Detail: "piece placement must have 8 ranks, got " + strconv.Itoa(len(ranks))}
	}

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		file := 0

		for _, ch := range ranks[rankIdx] {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}

			if file > 7 {
				return &FenParseError{FEN: fen, Detail: "too many squares in rank " + strconv.Itoa(rank+1)}
			}

			color := White
			pieceCh := ch
			if ch >= 'a' && ch <= 'z' {
				color = Black
				pieceCh = ch - 'a' + 'A'
			}

			var pt PieceType
			switch pieceCh {
			case 'P':
				pt = Pawn
			case 'N':
				pt = Knight
			case 'B':
				pt = Bishop
			case 'R':
				pt = Rook
			case 'Q':
				pt = Queen
			case 'K':
				pt = King
			default:
				return &FenParseError{FEN: fen, Detail: "invalid piece character '" + string(ch) + "'"}
			}

			b.put(color, pt, int(NewSquare(file, rank)))
			file++
		}

		if file != 8 {
			return &FenParseError{FEN: fen, Detail: "rank " + strconv.Itoa(rank+1) + " does not cover all 8 files"}
		}
	}

	return nil
}

func validatePosition(b *Board) error {
	if b.pieces[White][King].Count() != 1 {
		return &InvalidPositionError{Detail: "white must have exactly one king"}
	}
	if b.pieces[Black][King].Count() != 1 {
		return &InvalidPositionError{Detail: "black must have exactly one king"}
	}

	backRanks := b.pieces[White][Pawn].Or(b.pieces[Black][Pawn])
	for file := 0; file < 8; file++ {
		if backRanks.IsSet(int(NewSquare(file, 0))) || backRanks.IsSet(int(NewSquare(file, 7))) {
			return &InvalidPositionError{Detail: "pawns cannot stand on the first or last rank"}
		}
	}

	notToMove := b.ActiveColor.Opposite()
	kingSq := b.KingSquare(notToMove)
	if kingSq != NoSquare && b.IsSquareAttacked(kingSq, b.ActiveColor) {
		return &InvalidPositionError{Detail: "the side not to move is already in check"}
	}

	return nil
}

// ToFEN renders the board back to a FEN string.
func (b *Board) ToFEN() string {
	var sb strings.Builder

	for rankIdx := 0; rankIdx < 8; rankIdx++ {
		rank := 7 - rankIdx
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.PieceAt(NewSquare(file, rank))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pieceLetter(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rankIdx != 7 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if b.ActiveColor == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if b.CastlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if b.HasCastlingRight(CastleWhiteKing) {
			sb.WriteByte('K')
		}
		if b.HasCastlingRight(CastleWhiteQueen) {
			sb.WriteByte('Q')
		}
		if b.HasCastlingRight(CastleBlackKing) {
			sb.WriteByte('k')
		}
		if b.HasCastlingRight(CastleBlackQueen) {
			sb.WriteByte('q')
		}
	}

	sb.WriteByte(' ')
	if b.EnPassantSq == NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassantSq.String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoveNum))

	return sb.String()
}

func pieceLetter(p Piece) string {
	letter := p.Type().String()
	if p.Color() == Black {
		return strings.ToLower(letter)
	}
	return letter
}
