package engine

import "testing"

func mustFEN(t *testing.T, fen string) *Board {
	t.Helper()
	b, err := FromFEN(fen)
	if err != nil {
		t.Fatalf("FromFEN(%q): %v", fen, err)
	}
	return b
}

func TestIsSquareAttackedEmptyBoard(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	e4 := NewSquare(4, 3)
	if b.IsSquareAttacked(e4, White) {
		t.Error("e4 should not be attacked by White")
	}
	if b.IsSquareAttacked(e4, Black) {
		t.Error("e4 should not be attacked by Black")
	}
}

func TestIsSquareAttackedInvalidSquare(t *testing.T) {
	b := DefaultBoard()
	for _, sq := range []Square{NoSquare, -5, 64, 100} {
		if b.IsSquareAttacked(sq, White) {
			t.Errorf("invalid square %d should never be attacked", sq)
		}
	}
}

func TestPawnAttacksDiagonalOnly(t *testing.T) {
	// White pawn alone on e4.
	b := mustFEN(t, "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1")
	d5 := NewSquare(3, 4)
	f5 := NewSquare(5, 4)
	e5 := NewSquare(4, 4)

	if !b.IsSquareAttacked(d5, White) {
		t.Error("pawn on e4 should attack d5")
	}
	if !b.IsSquareAttacked(f5, White) {
		t.Error("pawn on e4 should attack f5")
	}
	if b.IsSquareAttacked(e5, White) {
		t.Error("pawn on e4 should not attack e5 directly ahead")
	}
}

func TestBlackPawnAttacksDownward(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/4p3/8/8/4K3 w - - 0 1")
	d3 := NewSquare(3, 2)
	f3 := NewSquare(5, 2)
	if !b.IsSquareAttacked(d3, Black) {
		t.Error("black pawn on e4 should attack d3")
	}
	if !b.IsSquareAttacked(f3, Black) {
		t.Error("black pawn on e4 should attack f3")
	}
}

func TestKnightAttacksLShape(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1")
	// Knight on d4 attacks 8 squares.
	targets := []Square{
		NewSquare(2, 5), NewSquare(4, 5),
		NewSquare(1, 4), NewSquare(5, 4),
		NewSquare(1, 2), NewSquare(5, 2),
		NewSquare(2, 1), NewSquare(4, 1),
	}
	for _, sq := range targets {
		if !b.IsSquareAttacked(sq, White) {
			t.Errorf("knight on d4 should attack %s", sq)
		}
	}
	if b.IsSquareAttacked(NewSquare(3, 4), White) {
		t.Error("knight should not attack the adjacent square d5")
	}
}

func TestKingAttacksAdjacentSquares(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/3K4/8/8/8 w - - 0 1")
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			sq := NewSquare(3+df, 3+dr)
			if !b.IsSquareAttacked(sq, White) {
				t.Errorf("king on d4 should attack %s", sq)
			}
		}
	}
}

func TestRookAttacksStopAtBlocker(t *testing.T) {
	// White rook on a1, white pawn on a4 blocking further advance.
	b := mustFEN(t, "4k3/8/8/8/P7/8/8/R3K3 w - - 0 1")
	if !b.IsSquareAttacked(NewSquare(0, 1), White) {
		t.Error("rook on a1 should attack a2")
	}
	if !b.IsSquareAttacked(NewSquare(0, 2), White) {
		t.Error("rook on a1 should attack a3")
	}
	if b.IsSquareAttacked(NewSquare(0, 4), White) {
		t.Error("rook should not see past its own pawn on a4")
	}
}

func TestBishopAttacksDiagonalStopsAtBlocker(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/8/8/2N5/8/B3K3 w - - 0 1")
	// Bishop a1 -> diagonal a1,b2,c3(knight),d4...
	if !b.IsSquareAttacked(NewSquare(1, 1), White) {
		t.Error("bishop on a1 should attack b2")
	}
	if !b.IsSquareAttacked(NewSquare(2, 2), White) {
		t.Error("bishop on a1 should attack (defend) its own knight square c3")
	}
	if b.IsSquareAttacked(NewSquare(3, 3), White) {
		t.Error("bishop should not see past the blocker on c3")
	}
}

func TestQueenAttacksCombinesRookAndBishop(t *testing.T) {
	b := mustFEN(t, "4k3/8/8/3Q4/8/8/8/4K3 w - - 0 1")
	d5 := NewSquare(3, 4)
	if !b.IsSquareAttacked(NewSquare(3, 0), White) {
		t.Error("queen on d5 should attack straight down the file")
	}
	if !b.IsSquareAttacked(NewSquare(7, 4), White) {
		t.Error("queen on d5 should attack straight along the rank")
	}
	if !b.IsSquareAttacked(NewSquare(0, 1), White) {
		t.Error("queen on d5 should attack along a diagonal")
	}
	_ = d5
}
