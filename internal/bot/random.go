// Package bot provides a uniform-random legal-move picker for the
// text-mode front-end's "random move" command. Search and evaluation are
// out of scope for the core engine, so this is deliberately the only
// move-selection strategy offered.
package bot

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/mgrdich/chesscore/internal/engine"
)

// RandomMover selects uniformly among the legal moves in a position.
type RandomMover struct {
	timeLimit time.Duration
	closed    bool
}

// Option configures a RandomMover.
type Option func(*RandomMover)

// WithTimeLimit overrides the default 2-second selection timeout.
func WithTimeLimit(d time.Duration) Option {
	return func(m *RandomMover) { m.timeLimit = d }
}

// NewRandomMover constructs a RandomMover with a 2-second default timeout.
func NewRandomMover(opts ...Option) *RandomMover {
	m := &RandomMover{timeLimit: 2 * time.Second}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SelectMove returns a uniformly random legal move from board. It respects
// ctx cancellation and returns an error if the mover has been closed, the
// context is already done, or the position has no legal moves.
func (m *RandomMover) SelectMove(ctx context.Context, board *engine.Board) (engine.Move, error) {
	if m.closed {
		return engine.Move{}, errors.New("random mover is closed")
	}

	moves := board.LegalMoves()
	if len(moves) == 0 {
		return engine.Move{}, errors.New("no legal moves available")
	}

	ctx, cancel := context.WithTimeout(ctx, m.timeLimit)
	defer cancel()

	select {
	case <-ctx.Done():
		return engine.Move{}, ctx.Err()
	default:
		if len(moves) == 1 {
			return moves[0], nil
		}
		return moves[rand.Intn(len(moves))], nil
	}
}

// Close marks the mover closed; subsequent SelectMove calls return an
// error. Close is idempotent.
func (m *RandomMover) Close() error {
	m.closed = true
	return nil
}
