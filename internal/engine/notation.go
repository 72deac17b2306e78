package engine

// SAN renders m in a non-canonical SAN-like form: pawn moves render as
// their destination square, other pieces are prefixed with K/Q/R/B/N,
// captures insert an "x" before the destination (a pawn capture is also
// prefixed with the pawn's source file, as in "exd5"), promotions append
// "=<P>", castles render as "0-0"/"0-0-0", and the null move renders as
// "--". Unlike real SAN this never disambiguates between two pieces of the
// same type and adds no check suffix — it is meant for human-readable move
// logs, not round-tripping.
func (m Move) SAN() string {
	if m.IsNull() {
		return "--"
	}
	if m.Flag == ShortCastle {
		return "0-0"
	}
	if m.Flag == LongCastle {
		return "0-0-0"
	}

	var sb []byte
	if m.Piece != Pawn {
		sb = append(sb, m.Piece.String()[0])
	}
	if m.Flag.IsCapture() {
		if m.Piece == Pawn {
			sb = append(sb, byte('a'+m.From.File()))
		}
		sb = append(sb, 'x')
	}
	sb = append(sb, []byte(m.To.String())...)
	if m.Flag.IsPromotion() {
		sb = append(sb, '=')
		sb = append(sb, m.Promotion.String()[0])
	}
	return string(sb)
}

// Coordinate renders m as a plain "<from><to>[<promotion>]" string, the
// form ParseMove accepts back — equivalent to Move.String but named to
// make the tooling-interoperability use case explicit at call sites.
func (m Move) Coordinate() string {
	return m.String()
}
