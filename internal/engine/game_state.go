package engine

// Status represents the terminal (or non-terminal) state of a position.
type Status int

const (
	// Ongoing indicates the game is still in progress.
	Ongoing Status = iota

	// Checkmate indicates the player to move is in checkmate; the
	// opponent wins.
	Checkmate

	// Stalemate indicates the player to move has no legal moves but is
	// not in check. The game is a draw.
	Stalemate

	// DrawFiftyMoveRule indicates a draw may be claimed under the
	// fifty-move rule (50 full moves without a pawn move or capture).
	DrawFiftyMoveRule

	// DrawSeventyFiveMoveRule indicates an automatic draw under the
	// seventy-five-move rule (75 full moves without a pawn move or
	// capture).
	DrawSeventyFiveMoveRule

	// DrawThreefoldRepetition indicates a draw may be claimed because the
	// current position has occurred three or more times.
	DrawThreefoldRepetition

	// DrawFivefoldRepetition indicates an automatic draw because the
	// current position has occurred five or more times.
	DrawFivefoldRepetition
)

// String returns a human-readable description of the status.
func (s Status) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMoveRule:
		return "draw (fifty-move rule)"
	case DrawSeventyFiveMoveRule:
		return "draw (seventy-five-move rule)"
	case DrawThreefoldRepetition:
		return "draw (threefold repetition)"
	case DrawFivefoldRepetition:
		return "draw (fivefold repetition)"
	default:
		return "unknown"
	}
}

// IsAutomatic reports whether the status is forced (checkmate, stalemate,
// or one of the automatic draws) rather than merely claimable.
func (s Status) IsAutomatic() bool {
	switch s {
	case Checkmate, Stalemate, DrawSeventyFiveMoveRule, DrawFivefoldRepetition:
		return true
	default:
		return false
	}
}

// Status evaluates the current position's terminal state in priority
// order: the halfmove-clock draws (seventy-five-move, then fifty-move) take
// precedence over everything else, including checkmate; then fivefold
// repetition; then no legal moves resolves to checkmate or stalemate;
// otherwise threefold repetition applies; otherwise the game is ongoing.
func (b *Board) Status() Status {
	if b.HalfMoveClock >= 150 {
		return DrawSeventyFiveMoveRule
	}

	if b.HalfMoveClock >= 100 {
		return DrawFiftyMoveRule
	}

	if rep := b.repetitionCount(); rep >= 5 {
		return DrawFivefoldRepetition
	}

	if len(b.LegalMoves()) == 0 {
		if b.InCheck() {
			return Checkmate
		}
		return Stalemate
	}

	if rep := b.repetitionCount(); rep >= 3 {
		return DrawThreefoldRepetition
	}

	return Ongoing
}

// IsGameOver reports whether Status is anything other than Ongoing.
func (b *Board) IsGameOver() bool {
	return b.Status() != Ongoing
}

// Winner returns the winning color and true if the position is checkmate;
// otherwise it returns the zero color and false (stalemate, a draw, or an
// ongoing game all have no winner).
func (b *Board) Winner() (Color, bool) {
	if b.Status() == Checkmate {
		return b.ActiveColor.Opposite(), true
	}
	return White, false
}

// InCheck reports whether the side to move is currently in check.
func (b *Board) InCheck() bool {
	kingSq := b.KingSquare(b.ActiveColor)
	if kingSq == NoSquare {
		return false
	}
	return b.IsSquareAttacked(kingSq, b.ActiveColor.Opposite())
}

// repetitionCount returns the number of times the current position's hash
// has occurred in the game's history, including the current occurrence.
func (b *Board) repetitionCount() int {
	count := 0
	for _, hash := range b.history {
		if hash == b.hash {
			count++
		}
	}
	return count
}
