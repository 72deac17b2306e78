package engine

import (
	"errors"
	"testing"
)

func TestFromFENStartingPosition(t *testing.T) {
	b, err := FromFEN(StartingFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if b.ActiveColor != White {
		t.Error("expected White to move")
	}
	if b.CastlingRights != CastleAll {
		t.Errorf("expected all castling rights, got %d", b.CastlingRights)
	}
	if b.EnPassantSq != NoSquare {
		t.Error("expected no en-passant target")
	}
	if b.pieces[White][Rook].Count() != 2 || b.pieces[White][King].Count() != 1 {
		t.Error("expected two white rooks and one white king")
	}
	if got := b.PieceAt(NewSquare(4, 0)); got.Type() != King || got.Color() != White {
		t.Error("expected white king on e1")
	}
}

func TestFromFENRejectsWrongFieldCount(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	var target *FenParseError
	if !errors.As(err, &target) {
		t.Fatalf("expected *FenParseError, got %v (%T)", err, err)
	}
}

func TestFromFENRejectsBadRankCount(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected error for a FEN with only 7 ranks")
	}
}

func TestFromFENRejectsUnknownPieceChar(t *testing.T) {
	_, err := FromFEN("rnbqkbXr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatal("expected error for unknown piece character")
	}
}

func TestFromFENRejectsUnknownActiveColor(t *testing.T) {
	_, err := FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	if err == nil {
		t.Fatal("expected error for unknown active color")
	}
}

func TestFromFENRejectsTwoKings(t *testing.T) {
	_, err := FromFEN("4kk2/8/8/8/8/8/8/4K3 w - - 0 1")
	var target *InvalidPositionError
	if !errors.As(err, &target) {
		t.Fatalf("expected *InvalidPositionError for two black kings, got %v", err)
	}
}

func TestFromFENRejectsMissingKing(t *testing.T) {
	_, err := FromFEN("8/8/8/8/8/8/8/4K3 w - - 0 1")
	if err == nil {
		t.Fatal("expected error for missing black king")
	}
}

func TestFromFENRejectsPawnOnBackRank(t *testing.T) {
	_, err := FromFEN("4k3/8/8/8/8/8/8/P3K3 w - - 0 1")
	var target *InvalidPositionError
	if !errors.As(err, &target) {
		t.Fatalf("expected *InvalidPositionError for pawn on rank 1, got %v", err)
	}
}

func TestFromFENRejectsSideNotToMoveInCheck(t *testing.T) {
	// White rook on e1 aims straight up the e-file at the black king on e8,
	// while it is White's turn: Black (not to move) is already in check,
	// which is not a legal position to start from.
	_, err := FromFEN("4k3/8/8/8/8/8/8/4R1K1 w - - 0 1")
	if err == nil {
		t.Fatal("expected error when the side not to move is in check")
	}
}

func TestToFENRoundTrips(t *testing.T) {
	for _, fen := range []string{
		StartingFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	} {
		b, err := FromFEN(fen)
		if err != nil {
			t.Fatalf("FromFEN(%q): %v", fen, err)
		}
		got := b.ToFEN()
		b2, err := FromFEN(got)
		if err != nil {
			t.Fatalf("round-trip FromFEN(%q): %v", got, err)
		}
		if b2.ToFEN() != got {
			t.Errorf("FEN did not round-trip: %q -> %q -> %q", fen, got, b2.ToFEN())
		}
	}
}

func TestFromFENEnPassantSquare(t *testing.T) {
	b, err := FromFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	if b.EnPassantSq != NewSquare(3, 5) {
		t.Errorf("expected en-passant target d6, got %s", b.EnPassantSq)
	}
}
