package engine

// ParseMove parses a move given in coordinate notation ("e2e4", "a7a8q",
// "e1g1" for castling, "0000" for the null move) against the current
// position, resolving it to a fully-populated Move — including its flag,
// captured piece, and en-passant/castling bookkeeping — by looking up the
// moving piece and matching against LegalMoves.
//
// ParseMove only recognizes legal moves: an otherwise well-formed move that
// is not legal in the current position is rejected with a *MoveParseError.
func (b *Board) ParseMove(s string) (Move, error) {
	if s == "0000" {
		return NewNullMove(b.ActiveColor), nil
	}

	from, to, wantPromo, err := ParseCoordinateMove(s)
	if err != nil {
		return Move{}, err
	}

	for _, m := range b.LegalMoves() {
		if m.From != from || m.To != to {
			continue
		}
		if m.Flag.IsPromotion() && m.Promotion != wantPromo {
			continue
		}
		if !m.Flag.IsPromotion() && wantPromo != Empty {
			continue
		}
		return m, nil
	}

	return Move{}, &MoveParseError{Input: s, Detail: "not a legal move in this position"}
}

// ParseCoordinateMove parses the from/to/promotion triple out of coordinate
// notation ("e2e4", "a7a8q") without consulting any board — it does not
// accept "0000", since the null move has no squares to parse. Exported so
// callers that need an unchecked move (matched against pseudo-legal moves
// rather than legal ones) can reuse the same syntax ParseMove accepts.
func ParseCoordinateMove(s string) (from, to Square, promotion PieceType, err error) {
	if len(s) < 4 || len(s) > 5 {
		return NoSquare, NoSquare, Empty, &MoveParseError{Input: s, Detail: "expected 4 or 5 characters"}
	}

	from, err = ParseSquare(s[0:2])
	if err != nil {
		return NoSquare, NoSquare, Empty, &MoveParseError{Input: s, Detail: "bad source square"}
	}
	to, err = ParseSquare(s[2:4])
	if err != nil {
		return NoSquare, NoSquare, Empty, &MoveParseError{Input: s, Detail: "bad destination square"}
	}

	promotion = Empty
	if len(s) == 5 {
		p, ok := promotionFromSuffix(s[4])
		if !ok {
			return NoSquare, NoSquare, Empty, &MoveParseError{Input: s, Detail: "bad promotion character"}
		}
		promotion = p
	}

	return from, to, promotion, nil
}
