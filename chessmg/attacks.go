package chessmg

// generator produces the (moves, captures) masks of a single piece. In
// coverage mode it instead returns every square the piece attacks or
// defends together with the enemy pieces among them, ignoring legality.
type generator func(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64)

// generators is indexed by PieceType.
var generators = [7]generator{
	PieceTypeNone:   nil,
	PieceTypePawn:   pawnAttacks,
	PieceTypeKnight: knightAttacks,
	PieceTypeBishop: bishopAttacks,
	PieceTypeRook:   rookAttacks,
	PieceTypeQueen:  queenAttacks,
	PieceTypeKing:   kingAttacks,
}

// Attacks runs the generator for one piece of type pt standing on from.
func (b *Board) Attacks(pt PieceType, from uint64, c Color, coverage bool, axis Axis) (moves, captures uint64) {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return 0, 0
	}
	return generators[pt](b, from, c, coverage, axis)
}

func slide(b *Board, from uint64, c Color, coverage bool, axis Axis, dirs []Direction) (moves, captures uint64) {
	own := b.occupancy[c]
	enemy := b.occupancy[c.Other()]
	enemyKing := b.pieces[c.Other()][PieceTypeKing]
	for _, d := range dirs {
		if axis != AxisNone && d.Axis() != axis {
			continue
		}
		sq := from
		for {
			sq = d.Shift(sq)
			if sq == 0 {
				break
			}
			if sq&own != 0 {
				if coverage {
					moves |= sq
				}
				break
			}
			if sq&enemy != 0 {
				captures |= sq
				if !coverage {
					break
				}
				moves |= sq
				// A king cannot step back along the ray it is attacked on.
				if sq&enemyKing != 0 {
					continue
				}
				break
			}
			moves |= sq
		}
	}
	return moves, captures
}

func bishopAttacks(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64) {
	return slide(b, from, c, coverage, axis, diagonalDirs)
}

func rookAttacks(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64) {
	return slide(b, from, c, coverage, axis, orthogonalDirs)
}

func queenAttacks(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64) {
	return slide(b, from, c, coverage, axis, allDirs)
}

func knightAttacks(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64) {
	if axis != AxisNone {
		return 0, 0
	}
	targets := knightMoves[SquareIndex(from)]
	enemy := b.occupancy[c.Other()]
	if coverage {
		return targets, targets & enemy
	}
	return targets & b.empty, targets & enemy
}

func kingAttacks(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64) {
	targets := kingMoves[SquareIndex(from)]
	enemy := b.occupancy[c.Other()]
	if coverage {
		return targets, targets & enemy
	}
	safe := ^b.coverage[c.Other()]
	moves := targets & b.empty & safe
	captures := targets & enemy & safe
	return moves | b.castleTargets(from, c), captures
}

// Castling geometry per color: king start, rook corners, squares that must
// be empty and squares that must not be attacked.
type castleGeometry struct {
	king        uint64
	rookKing    uint64
	rookQueen   uint64
	emptyKing   uint64
	emptyQueen  uint64
	safeKing    uint64
	safeQueen   uint64
	targetKing  uint64
	targetQueen uint64
}

var castles = [2]castleGeometry{
	White: {
		king:        bb(4),
		rookKing:    bb(7),
		rookQueen:   bb(0),
		emptyKing:   bb(5) | bb(6),
		emptyQueen:  bb(1) | bb(2) | bb(3),
		safeKing:    bb(5) | bb(6),
		safeQueen:   bb(2) | bb(3),
		targetKing:  bb(6),
		targetQueen: bb(2),
	},
	Black: {
		king:        bb(60),
		rookKing:    bb(63),
		rookQueen:   bb(56),
		emptyKing:   bb(61) | bb(62),
		emptyQueen:  bb(57) | bb(58) | bb(59),
		safeKing:    bb(61) | bb(62),
		safeQueen:   bb(58) | bb(59),
		targetKing:  bb(62),
		targetQueen: bb(58),
	},
}

func (b *Board) castleTargets(from uint64, c Color) uint64 {
	g := &castles[c]
	rights := b.castling[c]
	if from != g.king || b.checks[c].InCheck() || (!rights.Kingside && !rights.Queenside) {
		return 0
	}
	threats := b.coverage[c.Other()]
	rooks := b.pieces[c][PieceTypeRook]
	var targets uint64
	if rights.Kingside && rooks&g.rookKing != 0 && b.empty&g.emptyKing == g.emptyKing && threats&g.safeKing == 0 {
		targets |= g.targetKing
	}
	if rights.Queenside && rooks&g.rookQueen != 0 && b.empty&g.emptyQueen == g.emptyQueen && threats&g.safeQueen == 0 {
		targets |= g.targetQueen
	}
	return targets
}

// pawnCaptureSquares returns the two capture diagonals of a pawn; the first
// lies on the a1-h8 axis, the second on the a8-h1 axis.
func pawnCaptureSquares(from uint64, c Color) (diag, anti uint64) {
	if c == White {
		return NorthEast(from), NorthWest(from)
	}
	return SouthWest(from), SouthEast(from)
}

func pawnAttacks(b *Board, from uint64, c Color, coverage bool, axis Axis) (uint64, uint64) {
	diag, anti := pawnCaptureSquares(from, c)
	enemy := b.occupancy[c.Other()]
	if coverage {
		return diag | anti, (diag | anti) & enemy
	}

	var moves, captures uint64
	if axis == AxisNone || axis == AxisFile {
		push, startRank, doubleRank := North, Rank2, Rank4
		if c == Black {
			push, startRank, doubleRank = South, Rank7, Rank5
		}
		single := push(from) & b.empty
		moves |= single
		if single != 0 && from&startRank != 0 {
			moves |= push(single) & b.empty & doubleRank
		}
	}

	targets := enemy | b.enPassant
	if axis == AxisNone || axis == AxisDiagonal {
		captures |= diag & targets
	}
	if axis == AxisNone || axis == AxisAntiDiagonal {
		captures |= anti & targets
	}
	if captures&b.enPassant != 0 && !b.enPassantSafe(from, c) {
		captures &^= b.enPassant
	}
	return moves, captures
}

// enPassantVictim returns the square of the pawn removed by an en-passant
// capture onto target by side c.
func enPassantVictim(target uint64, c Color) uint64 {
	if c == White {
		return South(target)
	}
	return North(target)
}

// enPassantSafe reports whether capturing en passant from the given square
// leaves c's king unattacked. Both pawns leave their squares at once, which
// can open a rank (or diagonal) that no pin test sees.
func (b *Board) enPassantSafe(from uint64, c Color) bool {
	victim := enPassantVictim(b.enPassant, c)
	occ := (b.AllOccupancy() &^ from &^ victim) | b.enPassant
	them := c.Other()
	return !b.sliderAttacks(b.kingPos[c].Mask(), occ, them)
}

// sliderAttacks reports whether an enemy rook, bishop or queen reaches sq
// under the given occupancy.
func (b *Board) sliderAttacks(sq, occ uint64, them Color) bool {
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
		cur := sq
		for {
			cur = d.Shift(cur)
			if cur == 0 {
				break
			}
			if cur&occ != 0 {
				if cur&sliders != 0 {
					return true
				}
				break
			}
		}
	}
	return false
}

// computeCoverage returns every square side c attacks or defends and the
// enemy pieces among them.
func (b *Board) computeCoverage(c Color) (covered, attacked uint64) {
	for _, pt := range PieceTypes {
		gen := generators[pt]
		pieces := b.pieces[c][pt]
		for pieces != 0 {
			from := popLSB(&pieces)
			m, caps := gen(b, from, c, true, AxisNone)
			covered |= m
			attacked |= caps
		}
	}
	return covered, attacked
}
