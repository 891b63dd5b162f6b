package chessmg

// computePins returns the pieces of side c that are absolutely pinned to
// their king: the first piece on a ray from the king is c's own and the next
// piece beyond it is an enemy slider moving along that ray.
func (b *Board) computePins(c Color) uint64 {
	king := b.pieces[c][PieceTypeKing]
	if king == 0 {
		return 0
	}
	them := c.Other()
	own := b.occupancy[c]
	occ := b.occupancy[White] | b.occupancy[Black]
	straight := b.pieces[them][PieceTypeRook] | b.pieces[them][PieceTypeQueen]
	diagonal := b.pieces[them][PieceTypeBishop] | b.pieces[them][PieceTypeQueen]

	var pinned uint64
	for _, d := range allDirs {
		sliders := diagonal
		if d.Orthogonal() {
			sliders = straight
		}
		var candidate uint64
		sq := king
		for {
			sq = d.Shift(sq)
			if sq == 0 {
				break
			}
			if sq&occ == 0 {
				continue
			}
			if candidate == 0 {
				if sq&own == 0 {
					break
				}
				candidate = sq
				continue
			}
			if sq&sliders != 0 {
				pinned |= candidate
			}
			break
		}
	}
	return pinned
}

// computeChecks finds every enemy piece attacking side c's king together with
// the squares on which a non-king move resolves that check.
func (b *Board) computeChecks(c Color) CheckMap {
	var m CheckMap
	king := b.pieces[c][PieceTypeKing]
	if king == 0 {
		return m
	}
	them := c.Other()

	knights := knightMoves[SquareIndex(king)] & b.pieces[them][PieceTypeKnight]
	for knights != 0 {
		sq := popLSB(&knights)
		m.add(Check{Checker: sq, Mask: sq})
	}

	// Enemy pawns attack the king from the squares our own pawn would capture on.
	diag, anti := pawnCaptureSquares(king, c)
	pawns := (diag | anti) & b.pieces[them][PieceTypePawn]
	for pawns != 0 {
		sq := popLSB(&pawns)
		m.add(Check{Checker: sq, Mask: sq})
	}

	occ := b.occupancy[White] | b.occupancy[Black]
	straight := b.pieces[them][PieceTypeRook] | b.pieces[them][PieceTypeQueen]
	diagonal := b.pieces[them][PieceTypeBishop] | b.pieces[them][PieceTypeQueen]
	for _, d := range allDirs {
		sliders := diagonal
		if d.Orthogonal() {
			sliders = straight
		}
		if sliders == 0 {
			continue
		}
		var ray uint64
		sq := king
		for {
			sq = d.Shift(sq)
			if sq == 0 {
				break
			}
			ray |= sq
			if sq&occ == 0 {
				continue
			}
			if sq&sliders != 0 {
				m.add(Check{Checker: sq, Mask: ray})
			}
			break
		}
	}
	return m
}

// CheckingSquares returns the squares of every piece giving check to the
// side to move, in ascending order.
func (b *Board) CheckingSquares() []string {
	checkers := b.checks[b.sideToMove].Checkers
	out := make([]string, 0, 2)
	for checkers != 0 {
		out = append(out, SquareName(popLSB(&checkers)))
	}
	return out
}
