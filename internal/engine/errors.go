package engine

import "fmt"

// SquareParseError is returned when a two-character square name is outside
// the a-h / 1-8 range.
type SquareParseError struct {
	Input string
}

func (e *SquareParseError) Error() string {
	return fmt.Sprintf("invalid square %q: expected a file a-h and a rank 1-8", e.Input)
}

// MoveParseError is returned when an algebraic move string is malformed:
// wrong length, an empty source square, or a promotion requested from a
// non-pawn.
type MoveParseError struct {
	Input  string
	Detail string
}

func (e *MoveParseError) Error() string {
	return fmt.Sprintf("invalid move %q: %s", e.Input, e.Detail)
}

// FenParseError is returned when a FEN string is malformed: a field has the
// wrong shape, or an integer field can't be parsed.
type FenParseError struct {
	FEN    string
	Detail string
}

func (e *FenParseError) Error() string {
	return fmt.Sprintf("invalid FEN %q: %s", e.FEN, e.Detail)
}

// InvalidPositionError is returned when a FEN string parses syntactically
// but the resulting position is not valid: more than one king per side, a
// pawn on rank 1 or 8, or the side not to move already in check.
type InvalidPositionError struct {
	Detail string
}

func (e *InvalidPositionError) Error() string {
	return fmt.Sprintf("invalid position: %s", e.Detail)
}

// GameFinishedError is returned by MakeMove when called on a Board whose
// Status is not Ongoing.
type GameFinishedError struct {
	Status Status
}

func (e *GameFinishedError) Error() string {
	return fmt.Sprintf("make move: game is already over (%s)", e.Status)
}
