package chessmg

type genMode uint8

const (
	genAll genMode = iota
	genCaptures
)

// pieceTargets holds one piece's filtered destinations.
type pieceTargets struct {
	piece    Piece
	from     uint64
	moves    uint64
	captures uint64
}

var promotionTypes = [4]PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

// GenerateMoves returns all legal moves for the side to move, captures first.
func (b *Board) GenerateMoves() []Move {
	return b.GenerateMovesInto(make([]Move, 0, 64))
}

// GenerateMovesInto appends all legal moves to dst and returns it.
func (b *Board) GenerateMovesInto(dst []Move) []Move {
	return b.generate(dst, genAll)
}

// GenerateCapturesInto appends only the legal captures (en passant
// included) to dst and returns it.
func (b *Board) GenerateCapturesInto(dst []Move) []Move {
	return b.generate(dst, genCaptures)
}

func (b *Board) generate(dst []Move, mode genMode) []Move {
	us := b.sideToMove
	them := us.Other()
	checks := b.checks[us]
	king := b.kingPos[us]

	var resolve uint64 = ^uint64(0)
	if checks.Count() == 1 {
		resolve = checks.entries[0].Mask
	}

	var targets [64]pieceTargets
	n := 0
	for _, pt := range PieceTypes {
		if checks.DoubleCheck() && pt != PieceTypeKing {
			continue
		}
		gen := generators[pt]
		pieces := b.pieces[us][pt]
		for pieces != 0 {
			from := popLSB(&pieces)
			axis := AxisNone
			if from&b.pinned[us] != 0 {
				axis = axisBetween(king, CoordOf(from))
			}
			moves, captures := gen(b, from, us, false, axis)
			if pt != PieceTypeKing {
				mask := resolve
				// Capturing the checking pawn en passant lands off its square.
				if pt == PieceTypePawn && b.enPassant != 0 && checks.Count() == 1 &&
					enPassantVictim(b.enPassant, us) == checks.entries[0].Checker {
					mask |= b.enPassant
				}
				moves &= mask
				captures &= mask
			}
			if moves|captures == 0 {
				continue
			}
			targets[n] = pieceTargets{piece: PieceFromType(us, pt), from: from, moves: moves, captures: captures}
			n++
		}
	}

	for i := 0; i < n; i++ {
		t := &targets[i]
		caps := t.captures
		for caps != 0 {
			to := popLSB(&caps)
			captured := b.typeAt(to, them)
			if captured == PieceTypeNone && t.piece.Type() == PieceTypePawn {
				captured = PieceTypePawn
			}
			dst = appendMove(dst, t.piece, t.from, to, captured)
		}
	}
	if mode == genCaptures {
		return dst
	}
	for i := 0; i < n; i++ {
		t := &targets[i]
		quiet := t.moves
		for quiet != 0 {
			to := popLSB(&quiet)
			dst = appendMove(dst, t.piece, t.from, to, PieceTypeNone)
		}
	}
	return dst
}

func appendMove(dst []Move, p Piece, from, to uint64, captured PieceType) []Move {
	if p.Type() == PieceTypePawn && to&(Rank1|Rank8) != 0 {
		for _, promo := range promotionTypes {
			dst = append(dst, Move{Piece: p, From: from, To: to, Captured: captured, Promotion: promo})
		}
		return dst
	}
	return append(dst, Move{Piece: p, From: from, To: to, Captured: captured})
}
