package chessmg

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
// Filled once from a fixed seed and read-only afterwards, so hashes are
// identical across runs.
var zobristPiece [2][7][64]uint64 // [color][piece type][square]
var zobristCastle [16]uint64      // indexed by the 4-bit castling state
var zobristEnPassant [8]uint64    // en passant file
var zobristSide uint64            // Black to move

// ZobristSeed seeds the key generator.
const ZobristSeed = 0x5EED_C0DE

func init() {
	initZobrist()
}

func initZobrist() {
	rnd := rand.New(rand.NewSource(ZobristSeed))

	for c := 0; c < 2; c++ {
		for pt := 1; pt < 7; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func (b *Board) castlingIndex() int {
	idx := 0
	if b.castling[White].Kingside {
		idx |= 1
	}
	if b.castling[White].Queenside {
		idx |= 2
	}
	if b.castling[Black].Kingside {
		idx |= 4
	}
	if b.castling[Black].Queenside {
		idx |= 8
	}
	return idx
}

// Hash computes the Zobrist key of the current position from scratch.
func (b *Board) Hash() uint64 {
	var key uint64

	for c := White; c <= Black; c++ {
		for _, pt := range PieceTypes {
			pieces := b.pieces[c][pt]
			for pieces != 0 {
				key ^= zobristPiece[c][pt][SquareIndex(popLSB(&pieces))]
			}
		}
	}

	if b.sideToMove == Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[b.castlingIndex()]

	if b.enPassant != 0 {
		key ^= zobristEnPassant[SquareIndex(b.enPassant)%8]
	}
	return key
}
