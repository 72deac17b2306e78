package engine

import "github.com/mgrdich/chesscore/internal/zobrist"

// ComputeHash computes the full Zobrist hash for the current position from
// scratch. MakeMove recomputes rather than incrementally updating it — a
// full recompute is simple and cheap enough at this board size to skip the
// bookkeeping an incremental XOR-toggle update would need. The en-passant
// target is not part of the hash.
func (b *Board) ComputeHash() uint64 {
	var hash uint64

	for _, c := range [2]Color{White, Black} {
		for _, pt := range pieceTypes {
			bb := b.pieces[c][pt]
			for _, sq := range bb.Bits() {
				hash ^= zobrist.Pieces[c][pt][sq]
			}
		}
	}

	if b.ActiveColor == Black {
		hash ^= zobrist.SideToMove
	}

	hash ^= zobrist.Castling[b.CastlingRights]

	return hash
}
