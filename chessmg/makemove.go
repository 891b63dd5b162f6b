package chessmg

// Undo holds the state needed to reverse one Apply. It is produced by
// Apply and consumed by Board.Undo.
type Undo struct {
	move       Move
	captured   PieceType
	capturedAt uint64

	castling  [2]CastleRights
	enPassant uint64
	occupancy [2]uint64
	empty     uint64
	kingPos   [2]Coord
	pinned    [2]uint64
	checks    [2]CheckMap
	coverage  [2]uint64
	attacked  [2]uint64
	halfmove  int
	fullmove  int
}

// Move returns the move the token undoes.
func (u Undo) Move() Move { return u.move }

// Apply plays a legal move in place and returns the token that reverts it.
// The move must come from the legal move generator for this position.
func (b *Board) Apply(m Move) Undo {
	u := Undo{
		move:      m,
		castling:  b.castling,
		enPassant: b.enPassant,
		occupancy: b.occupancy,
		empty:     b.empty,
		kingPos:   b.kingPos,
		pinned:    b.pinned,
		checks:    b.checks,
		coverage:  b.coverage,
		attacked:  b.attacked,
		halfmove:  b.halfmoveClock,
		fullmove:  b.fullmoveNumber,
	}

	us := b.sideToMove
	them := us.Other()
	pt := m.Piece.Type()
	b.enPassant = 0

	// Handle capture (including en passant)
	victim := m.To
	if pt == PieceTypePawn && m.To == u.enPassant {
		victim = enPassantVictim(m.To, us)
	}
	if captured := b.typeAt(victim, them); captured != PieceTypeNone {
		b.pieces[them][captured] &^= victim
		u.captured, u.capturedAt = captured, victim
	}

	b.pieces[us][pt] &^= m.From
	if m.IsPromotion() {
		b.pieces[us][m.Promotion] |= m.To
	} else {
		b.pieces[us][pt] |= m.To
	}

	switch pt {
	case PieceTypeKing:
		b.castling[us] = CastleRights{}
		if m.To == m.From<<2 {
			b.pieces[us][PieceTypeRook] ^= m.From<<3 | m.From<<1
		} else if m.To == m.From>>2 {
			b.pieces[us][PieceTypeRook] ^= m.From>>4 | m.From>>1
		}
	case PieceTypeRook:
		b.revokeRookCorner(us, m.From)
	case PieceTypePawn:
		if m.To == m.From<<16 {
			b.enPassant = m.From << 8
		} else if m.To == m.From>>16 {
			b.enPassant = m.From >> 8
		}
	}
	if u.captured == PieceTypeRook {
		b.revokeRookCorner(them, victim)
	}

	if pt == PieceTypePawn || u.captured != PieceTypeNone {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if us == Black {
		b.fullmoveNumber++
	}
	b.sideToMove = them

	b.refresh()
	return u
}

func (b *Board) revokeRookCorner(c Color, sq uint64) {
	g := &castles[c]
	if sq == g.rookKing {
		b.castling[c].Kingside = false
	} else if sq == g.rookQueen {
		b.castling[c].Queenside = false
	}
}

// Undo reverts the move recorded in u, restoring the exact prior state.
func (b *Board) Undo(u Undo) {
	m := u.move
	b.sideToMove = b.sideToMove.Other()
	us := b.sideToMove
	pt := m.Piece.Type()

	if m.IsPromotion() {
		b.pieces[us][m.Promotion] &^= m.To
	} else {
		b.pieces[us][pt] &^= m.To
	}
	b.pieces[us][pt] |= m.From

	if pt == PieceTypeKing {
		if m.To == m.From<<2 {
			b.pieces[us][PieceTypeRook] ^= m.From<<3 | m.From<<1
		} else if m.To == m.From>>2 {
			b.pieces[us][PieceTypeRook] ^= m.From>>4 | m.From>>1
		}
	}
	if u.captured != PieceTypeNone {
		b.pieces[us.Other()][u.captured] |= u.capturedAt
	}

	b.castling = u.castling
	b.enPassant = u.enPassant
	b.occupancy = u.occupancy
	b.empty = u.empty
	b.kingPos = u.kingPos
	b.pinned = u.pinned
	b.checks = u.checks
	b.coverage = u.coverage
	b.attacked = u.attacked
	b.halfmoveClock = u.halfmove
	b.fullmoveNumber = u.fullmove
}
