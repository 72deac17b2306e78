// Package zobrist holds the pseudo-random key tables used to hash a chess
// position: one key per (color, piece type, square), one key
// for side-to-move, and one key per castling-rights combination.
//
// The en-passant target square is deliberately excluded from the hash: two
// positions that differ only in whether an en-passant capture is still
// available are treated as the same position for repetition purposes.
package zobrist

import "math/rand/v2"

// seed fixes the key generation so the same position always hashes to the
// same value across runs and across processes.
const seed = 0x5D4E3C2B1A

var (
	// Pieces[color][pieceType][square] holds the key for a piece of the
	// given color and type standing on the given square. pieceType 0
	// (Empty) is unused and left zero.
	Pieces [2][7][64]uint64

	// SideToMove is XORed into the hash whenever it is Black's turn.
	SideToMove uint64

	// Castling[rights] holds the key for a given 4-bit KQkq combination
	// (0-15).
	Castling [16]uint64
)

func init() {
	rng := rand.New(rand.NewPCG(seed, seed))

	for color := 0; color < 2; color++ {
		for pt := 1; pt < 7; pt++ {
			for sq := 0; sq < 64; sq++ {
				Pieces[color][pt][sq] = rng.Uint64()
			}
		}
	}

	SideToMove = rng.Uint64()

	for rights := 0; rights < 16; rights++ {
		Castling[rights] = rng.Uint64()
	}
}
