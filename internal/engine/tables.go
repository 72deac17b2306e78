package engine

import "github.com/mgrdich/chesscore/internal/bitboard"

// Direction indexes the eight compass rays a rook or bishop slides along.
// Rook directions are even indices, bishop directions are odd, matching the
// order attacks.go iterates them in for queen generation.
const (
	dirNorth = iota
	dirNorthEast
	dirEast
	dirSouthEast
	dirSouth
	dirSouthWest
	dirWest
	dirNorthWest
	numDirections
)

var (
	knightMasks      [64]bitboard.Bitboard
	kingMasks        [64]bitboard.Bitboard
	pawnCaptureMasks [2][64]bitboard.Bitboard
	pawnPushMasks    [2][64]bitboard.Bitboard
	pawnDoubleMasks  [2][64]bitboard.Bitboard

	// ray[dir][sq] holds every square strictly beyond sq along dir, stopping
	// at the board edge — the "exclusive" rays attacks.go intersects with
	// the occupancy to find a blocker.
	ray [numDirections][64]bitboard.Bitboard

	// inclRay[dir][sq] is ray[dir][sq] plus sq itself, used to carve the
	// "beyond the first blocker" tail off of a ray once the blocker square
	// is known.
	inclRay [numDirections][64]bitboard.Bitboard
)

func init() {
	for sq := 0; sq < 64; sq++ {
		knightMasks[sq] = knightMaskFor(sq)
		kingMasks[sq] = kingMaskFor(sq)
		pawnCaptureMasks[White][sq] = pawnCaptureMaskFor(White, sq)
		pawnCaptureMasks[Black][sq] = pawnCaptureMaskFor(Black, sq)
		pawnPushMasks[White][sq], pawnDoubleMasks[White][sq] = pawnPushMasksFor(White, sq)
		pawnPushMasks[Black][sq], pawnDoubleMasks[Black][sq] = pawnPushMasksFor(Black, sq)
		for dir := 0; dir < numDirections; dir++ {
			ray[dir][sq] = buildRay(sq, dir)
			inclRay[dir][sq] = ray[dir][sq].Or(bitboard.FromSquare(sq))
		}
	}
}

// step applies a single (dFile, dRank) offset to sq, returning NoSquare if
// the result leaves the board.
func step(sq Square, dFile, dRank int) Square {
	f, r := sq.File()+dFile, sq.Rank()+dRank
	return NewSquare(f, r)
}

func knightMaskFor(sq int) bitboard.Bitboard {
	offsets := [8][2]int{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	var bb bitboard.Bitboard
	for _, o := range offsets {
		if t := step(Square(sq), o[0], o[1]); t.IsValid() {
			bb = bb.Set(int(t))
		}
	}
	return bb
}

func kingMaskFor(sq int) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for df := -1; df <= 1; df++ {
		for dr := -1; dr <= 1; dr++ {
			if df == 0 && dr == 0 {
				continue
			}
			if t := step(Square(sq), df, dr); t.IsValid() {
				bb = bb.Set(int(t))
			}
		}
	}
	return bb
}

func pawnCaptureMaskFor(color Color, sq int) bitboard.Bitboard {
	dr := 1
	if color == Black {
		dr = -1
	}
	var bb bitboard.Bitboard
	for _, df := range [2]int{-1, 1} {
		if t := step(Square(sq), df, dr); t.IsValid() {
			bb = bb.Set(int(t))
		}
	}
	return bb
}

func pawnPushMasksFor(color Color, sq int) (single, double bitboard.Bitboard) {
	dr := 1
	startRank := 1
	if color == Black {
		dr = -1
		startRank = 6
	}
	one := step(Square(sq), 0, dr)
	if !one.IsValid() {
		return
	}
	single = bitboard.FromSquare(int(one))
	if Square(sq).Rank() == startRank {
		if two := step(Square(sq), 0, 2*dr); two.IsValid() {
			double = bitboard.FromSquare(int(two))
		}
	}
	return
}

// dirOffsets maps each direction to its (dFile, dRank) unit step.
var dirOffsets = [numDirections][2]int{
	dirNorth:     {0, 1},
	dirNorthEast: {1, 1},
	dirEast:      {1, 0},
	dirSouthEast: {1, -1},
	dirSouth:     {0, -1},
	dirSouthWest: {-1, -1},
	dirWest:      {-1, 0},
	dirNorthWest: {-1, 1},
}

func buildRay(sq, dir int) bitboard.Bitboard {
	off := dirOffsets[dir]
	var bb bitboard.Bitboard
	cur := Square(sq)
	for {
		next := step(cur, off[0], off[1])
		if !next.IsValid() {
			break
		}
		bb = bb.Set(int(next))
		cur = next
	}
	return bb
}

// rookDirs and bishopDirs split the eight rays into the two piece families
// that use them.
var rookDirs = [4]int{dirNorth, dirEast, dirSouth, dirWest}
var bishopDirs = [4]int{dirNorthEast, dirSouthEast, dirSouthWest, dirNorthWest}
