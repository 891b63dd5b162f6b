package chessmg

import "math/bits"

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// PieceTypes lists the six piece kinds in generation order.
var PieceTypes = [6]PieceType{PieceTypePawn, PieceTypeKnight, PieceTypeBishop, PieceTypeRook, PieceTypeQueen, PieceTypeKing}

const pieceLetters = " pnbrqk"

// Letter returns the lower-case letter of the type ("p", "n", ...).
func (pt PieceType) Letter() byte { return pieceLetters[pt] }

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Letter returns the FEN letter of the piece, upper-case for White.
func (p Piece) Letter() byte {
	l := p.Type().Letter()
	if p.Color() == White {
		l -= 'a' - 'A'
	}
	return l
}

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	return Piece(pt) | Piece(color)<<3
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// CastleRights records which castling moves a side may still make.
type CastleRights struct {
	Kingside  bool
	Queenside bool
}

// Check is one checking piece and the squares that resolve its check:
// the checker itself plus any squares between it and the king.
type Check struct {
	Checker uint64
	Mask    uint64
}

// CheckMap lists the pieces giving check to one side.
type CheckMap struct {
	Checkers uint64
	entries  [2]Check
	n        int
}

func (m *CheckMap) add(c Check) {
	m.Checkers |= c.Checker
	if m.n < len(m.entries) {
		m.entries[m.n] = c
	}
	m.n++
}

// Count returns the number of checking pieces.
func (m CheckMap) Count() int { return m.n }

// InCheck reports whether at least one piece gives check.
func (m CheckMap) InCheck() bool { return m.n > 0 }

// DoubleCheck reports whether two or more pieces give check.
func (m CheckMap) DoubleCheck() bool { return m.n > 1 }

// Entries returns the recorded checks.
func (m CheckMap) Entries() []Check {
	n := m.n
	if n > len(m.entries) {
		n = len(m.entries)
	}
	out := make([]Check, n)
	copy(out, m.entries[:n])
	return out
}

// Board represents the chess board state, including piece placement, game
// state and the derived coverage, pin and check information.
type Board struct {
	// Piece bitboards indexed by color and PieceType (slot 0 unused)
	pieces [2][7]uint64

	occupancy [2]uint64
	empty     uint64

	sideToMove Color
	castling   [2]CastleRights

	// En passant target square mask (at most one bit)
	enPassant uint64

	halfmoveClock  int
	fullmoveNumber int

	// Derived state, refreshed after every applied move
	kingPos  [2]Coord
	pinned   [2]uint64
	checks   [2]CheckMap
	coverage [2]uint64
	attacked [2]uint64

	// RevokeCastlingOnCheck makes entering check clear both castling
	// rights of the checked side permanently. When false, castling is only
	// unavailable while the king is in check.
	RevokeCastlingOnCheck bool
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (b *Board) HasLegalMoves() bool {
	var buf [MaxMoves]Move
	return len(b.GenerateMovesInto(buf[:0])) > 0
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c Color) bool { return b.checks[c].InCheck() }

// OurKingInCheck reports whether the side to move is in check.
func (b *Board) OurKingInCheck() bool { return b.checks[b.sideToMove].InCheck() }

// InCheckmate reports whether the side to move is checkmated.
func (b *Board) InCheckmate() bool {
	return b.OurKingInCheck() && !b.HasLegalMoves()
}

// InStalemate reports whether the side to move is stalemated.
func (b *Board) InStalemate() bool {
	return !b.OurKingInCheck() && !b.HasLegalMoves()
}

// Checks returns the check map of the given side.
func (b *Board) Checks(c Color) CheckMap { return b.checks[c] }

// Pinned returns the mask of the given side's absolutely pinned pieces.
func (b *Board) Pinned(c Color) uint64 { return b.pinned[c] }

// Coverage returns every square the given side attacks or defends.
func (b *Board) Coverage(c Color) uint64 { return b.coverage[c] }

// AttackedPieces returns the enemy pieces the given side currently attacks.
func (b *Board) AttackedPieces(c Color) uint64 { return b.attacked[c] }

// KingPosition returns the cached king coordinate of the given side.
func (b *Board) KingPosition(c Color) Coord { return b.kingPos[c] }

// HalfmoveClock accessor for consumers that want read-only access.
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// EnPassant returns the en-passant target mask, or 0.
func (b *Board) EnPassant() uint64 { return b.enPassant }

// SideToMove reports which side is to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// Castling returns the castling rights of the given side.
func (b *Board) Castling(c Color) CastleRights { return b.castling[c] }

// Pieces returns the bitboard of one piece kind of one side.
func (b *Board) Pieces(c Color, pt PieceType) uint64 { return b.pieces[c][pt] }

// AllOccupancy returns a bitboard of all occupied squares.
func (b *Board) AllOccupancy() uint64 { return b.occupancy[White] | b.occupancy[Black] }

// ColorOccupancy returns the occupancy bitboard for the given color.
func (b *Board) ColorOccupancy(c Color) uint64 { return b.occupancy[c] }

// Empty returns the mask of unoccupied squares.
func (b *Board) Empty() uint64 { return b.empty }

// PieceAt returns the piece on a square index.
func (b *Board) PieceAt(sq int) Piece {
	mask := bb(sq)
	for c := White; c <= Black; c++ {
		if b.occupancy[c]&mask == 0 {
			continue
		}
		return PieceFromType(c, b.typeAt(mask, c))
	}
	return NoPiece
}

// typeAt returns the type of c's piece on the single-bit mask.
func (b *Board) typeAt(mask uint64, c Color) PieceType {
	for _, pt := range PieceTypes {
		if b.pieces[c][pt]&mask != 0 {
			return pt
		}
	}
	return PieceTypeNone
}

// refresh recomputes aggregate occupancy, king positions, coverage, pins
// and checks for both sides.
func (b *Board) refresh() {
	for c := White; c <= Black; c++ {
		var occ uint64
		for _, pt := range PieceTypes {
			occ |= b.pieces[c][pt]
		}
		b.occupancy[c] = occ
		b.kingPos[c] = CoordOf(b.pieces[c][PieceTypeKing])
	}
	b.empty = ^(b.occupancy[White] | b.occupancy[Black])

	for c := White; c <= Black; c++ {
		b.coverage[c], b.attacked[c] = b.computeCoverage(c)
	}
	for c := White; c <= Black; c++ {
		b.pinned[c] = b.computePins(c)
		b.checks[c] = b.computeChecks(c)
		if b.RevokeCastlingOnCheck && b.checks[c].InCheck() {
			b.castling[c] = CastleRights{}
		}
	}
}

// Validate checks internal consistency between per-piece bitboards,
// aggregates and the king cache. Returns true if consistent.
func (b *Board) Validate() bool {
	for c := White; c <= Black; c++ {
		var occ uint64
		for _, pt := range PieceTypes {
			m := b.pieces[c][pt]
			if occ&m != 0 {
				return false
			}
			occ |= m
		}
		if occ != b.occupancy[c] {
			return false
		}
		if bits.OnesCount64(b.pieces[c][PieceTypeKing]) != 1 {
			return false
		}
		if b.kingPos[c] != CoordOf(b.pieces[c][PieceTypeKing]) {
			return false
		}
	}
	if b.occupancy[White]&b.occupancy[Black] != 0 {
		return false
	}
	if b.empty != ^(b.occupancy[White]|b.occupancy[Black]) {
		return false
	}
	return bits.OnesCount64(b.enPassant) <= 1
}
