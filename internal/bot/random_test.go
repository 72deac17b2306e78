package bot

import (
	"context"
	"testing"
	"time"

	"github.com/mgrdich/chesscore/internal/engine"
	"github.com/stretchr/testify/require"
)

func TestRandomMoverSelectMoveReturnsLegalMove(t *testing.T) {
	mover := NewRandomMover()
	defer mover.Close()

	board := engine.DefaultBoard()
	legal := board.LegalMoves()

	for i := 0; i < 50; i++ {
		m, err := mover.SelectMove(context.Background(), board)
		require.NoError(t, err)
		require.Contains(t, legal, m)
	}
}

func TestRandomMoverNoLegalMoves(t *testing.T) {
	mover := NewRandomMover()
	defer mover.Close()

	board, err := engine.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)
	require.Empty(t, board.LegalMoves())

	_, err = mover.SelectMove(context.Background(), board)
	require.Error(t, err)
}

func TestRandomMoverForcedMove(t *testing.T) {
	mover := NewRandomMover()
	defer mover.Close()

	board, err := engine.FromFEN("7k/8/6K1/8/8/8/8/7R b - - 0 1")
	require.NoError(t, err)
	legal := board.LegalMoves()
	require.Len(t, legal, 1)

	for i := 0; i < 5; i++ {
		m, err := mover.SelectMove(context.Background(), board)
		require.NoError(t, err)
		require.Equal(t, legal[0], m)
	}
}

func TestRandomMoverRespectsCancelledContext(t *testing.T) {
	mover := NewRandomMover(WithTimeLimit(time.Nanosecond))
	defer mover.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	board := engine.DefaultBoard()
	_, err := mover.SelectMove(ctx, board)
	require.Error(t, err)
}

func TestRandomMoverClosed(t *testing.T) {
	mover := NewRandomMover()
	require.NoError(t, mover.Close())

	_, err := mover.SelectMove(context.Background(), engine.DefaultBoard())
	require.Error(t, err)
}

func TestRandomMoverDistributionCoversMultipleMoves(t *testing.T) {
	mover := NewRandomMover()
	defer mover.Close()

	board := engine.DefaultBoard()
	seen := make(map[string]bool)
	for i := 0; i < 300; i++ {
		m, err := mover.SelectMove(context.Background(), board)
		require.NoError(t, err)
		seen[m.String()] = true
	}
	require.Greater(t, len(seen), 10)
}
