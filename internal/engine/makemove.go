package engine

// MakeMove applies m to the board, updating piece placement, castling
// rights, the en-passant target, the halfmove clock, the fullmove number,
// the Zobrist hash, and the repetition history. It returns a
// *GameFinishedError if the board's Status is not Ongoing, and does not
// mutate the board in that case.
func (b *Board) MakeMove(m Move) error {
	if status := b.Status(); status != Ongoing {
		return &GameFinishedError{Status: status}
	}
	b.makeMoveUnchecked(m)
	return nil
}

// MakeMoveUnchecked applies m without checking game-over status. Like
// MakeMove, it does not verify m came from LegalMoves(): it applies any move
// whose From/To/Flag fields describe a physically applicable transition.
// Unlike MakeMove, it also plays on after the game is over. Intended for the
// front-end's debug-only "um" command.
func (b *Board) MakeMoveUnchecked(m Move) {
	b.makeMoveUnchecked(m)
}

// makeMoveUnchecked applies m without checking game-over status or legality,
// used internally by LegalMoves' copy-make filter and by debug tooling that
// intentionally plays illegal/null moves.
func (b *Board) makeMoveUnchecked(m Move) {
	mover := b.ActiveColor

	if m.IsNull() {
		b.EnPassantSq = NoSquare
		b.ActiveColor = mover.Opposite()
		b.commitHash()
		return
	}

	from, to := int(m.From), int(m.To)
	newEP := NoSquare

	switch m.Flag {
	case Quiet:
		b.relocate(mover, m.Piece, from, to)

	case DoublePawnPush:
		b.relocate(mover, Pawn, from, to)
		newEP = doublePushEnPassantTarget(mover, to, b)

	case Capture:
		b.remove(mover.Opposite(), m.Captured, to)
		b.relocate(mover, m.Piece, from, to)

	case EnPassant:
		capturedSq := epCapturedSquare(mover, to)
		b.remove(mover.Opposite(), Pawn, capturedSq)
		b.relocate(mover, Pawn, from, to)

	case Promotion:
		b.remove(mover, Pawn, from)
		b.put(mover, m.Promotion, to)

	case CapturePromotion:
		b.remove(mover.Opposite(), m.Captured, to)
		b.remove(mover, Pawn, from)
		b.put(mover, m.Promotion, to)

	case ShortCastle, LongCastle:
		b.applyCastle(mover, m.Flag)
	}

	b.updateCastlingRights(mover, m, from, to)
	b.EnPassantSq = newEP
	b.updateHalfmoveClock(m)
	if mover == Black {
		b.FullMoveNum++
	}
	b.ActiveColor = mover.Opposite()
	b.commitHash()
}

func (b *Board) relocate(c Color, pt PieceType, from, to int) {
	b.remove(c, pt, from)
	b.put(c, pt, to)
}

func (b *Board) applyCastle(c Color, flag MoveFlag) {
	idx := 0
	if flag == LongCastle {
		idx = 1
	}
	spec := castlingSpecs[c][idx]
	b.relocate(c, King, spec.kingFrom, spec.kingTo)
	b.relocate(c, Rook, spec.rookFrom, spec.rookTo)
}

// doublePushEnPassantTarget returns the square behind the pushed pawn, but
// only if an enemy pawn actually stands adjacent to it — the target only
// exists when it could be captured.
func doublePushEnPassantTarget(mover Color, to int, b *Board) Square {
	behind := to - 8
	if mover == Black {
		behind = to + 8
	}
	enemyPawns := b.pieces[mover.Opposite()][Pawn]
	file := Square(to).File()
	rank := Square(to).Rank()
	for _, df := range [2]int{-1, 1} {
		if adj := NewSquare(file+df, rank); adj.IsValid() && enemyPawns.IsSet(int(adj)) {
			return Square(behind)
		}
	}
	return NoSquare
}

func epCapturedSquare(mover Color, to int) int {
	if mover == White {
		return to - 8
	}
	return to + 8
}

func (b *Board) updateCastlingRights(mover Color, m Move, from, to int) {
	switch {
	case m.Piece == King:
		if mover == White {
			b.CastlingRights &^= CastleWhiteKing | CastleWhiteQueen
		} else {
			b.CastlingRights &^= CastleBlackKing | CastleBlackQueen
		}
	case m.Piece == Rook:
		b.revokeRookRight(mover, from)
	}
	if m.Flag.IsCapture() && m.Captured == Rook {
		b.revokeRookRight(mover.Opposite(), to)
	}
}

func (b *Board) revokeRookRight(c Color, sq int) {
	switch sq {
	case 0:
		b.CastlingRights &^= CastleWhiteQueen
	case 7:
		b.CastlingRights &^= CastleWhiteKing
	case 56:
		b.CastlingRights &^= CastleBlackQueen
	case 63:
		b.CastlingRights &^= CastleBlackKing
	}
}

func (b *Board) updateHalfmoveClock(m Move) {
	if m.Piece == Pawn || m.Flag.IsCapture() {
		b.HalfMoveClock = 0
	} else {
		b.HalfMoveClock++
	}
	// Pawn moves, captures, and castling are all irreversible: the position
	// they lead to can never recur via the moves they foreclosed, so the
	// repetition history restarts from this position.
	// A fresh slice, not history[:0]: a copy-made scratch board shares its
	// backing array with the board it was copied from.
	if m.Piece == Pawn || m.Flag.IsCapture() || m.Flag.IsCastle() {
		b.history = nil
	}
}

// commitHash recomputes the Zobrist hash from scratch and appends it to the
// repetition history. A from-scratch recompute (rather than incremental
// XOR toggling) keeps make-move simple and is cheap enough at this board
// size; it trades a small constant factor for eliminating an entire class
// of incremental-update bugs.
func (b *Board) commitHash() {
	b.hash = b.ComputeHash()
	b.history = append(b.history, b.hash)
}
