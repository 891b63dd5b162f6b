package chessmg

import (
	"errors"
	"fmt"
	"strings"
)

// MaxMoves bounds the number of legal moves in any reachable position.
const MaxMoves = 256

// Move is a plain value describing one board action. Two moves compare
// equal iff they describe the same action.
type Move struct {
	Piece     Piece
	From      uint64
	To        uint64
	Captured  PieceType
	Promotion PieceType
}

// NullMove is the zero Move.
var NullMove Move

// ErrIllegalMove is returned when a requested move is not in the legal list.
var ErrIllegalMove = errors.New("illegal move")

// IsNull reports whether m is the zero move.
func (m Move) IsNull() bool { return m.From == 0 }

// IsCapture reports whether the move removes an enemy piece (en passant included).
func (m Move) IsCapture() bool { return m.Captured != PieceTypeNone }

// IsPromotion reports whether a pawn is promoted by this move.
func (m Move) IsPromotion() bool { return m.Promotion != PieceTypeNone }

// IsCastle reports whether the move is a king moving two files.
func (m Move) IsCastle() bool {
	return m.Piece.Type() == PieceTypeKing && (m.To == m.From<<2 || m.To == m.From>>2)
}

// String returns the coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := SquareName(m.From) + SquareName(m.To)
	if m.IsPromotion() {
		s += string(m.Promotion.Letter())
	}
	return s
}

// Notation returns the "<from> <to> <piece>" form used by the query
// surface, e.g. "e2 e4 P". The piece letter is lower-case for Black.
func (m Move) Notation() string {
	return SquareName(m.From) + " " + SquareName(m.To) + " " + string(m.Piece.Letter())
}

// ParseCoordinate splits a four or five character coordinate move ("e2e4",
// "e7e8q") into its squares and optional promotion type.
func ParseCoordinate(s string) (from, to uint64, promo PieceType, err error) {
	s = strings.TrimSpace(s)
	if len(s) != 4 && len(s) != 5 {
		return 0, 0, PieceTypeNone, fmt.Errorf("%w: %q: want <from><to>[promotion]", ErrIllegalMove, s)
	}
	if from, err = ParseSquare(s[0:2]); err != nil {
		return 0, 0, PieceTypeNone, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	if to, err = ParseSquare(s[2:4]); err != nil {
		return 0, 0, PieceTypeNone, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	if len(s) == 5 {
		switch s[4] {
		case 'q', 'Q':
			promo = PieceTypeQueen
		case 'r', 'R':
			promo = PieceTypeRook
		case 'b', 'B':
			promo = PieceTypeBishop
		case 'n', 'N':
			promo = PieceTypeKnight
		default:
			return 0, 0, PieceTypeNone, fmt.Errorf("%w: %q: bad promotion piece", ErrIllegalMove, s)
		}
	}
	return from, to, promo, nil
}

// FindMove resolves a coordinate move against the legal move list. A
// promotion without a piece letter promotes to a queen.
func (b *Board) FindMove(s string) (Move, error) {
	from, to, promo, err := ParseCoordinate(s)
	if err != nil {
		return NullMove, err
	}
	var buf [MaxMoves]Move
	for _, m := range b.GenerateMovesInto(buf[:0]) {
		if m.From != from || m.To != to {
			continue
		}
		if m.IsPromotion() {
			want := promo
			if want == PieceTypeNone {
				want = PieceTypeQueen
			}
			if m.Promotion != want {
				continue
			}
		} else if promo != PieceTypeNone {
			continue
		}
		return m, nil
	}
	return NullMove, fmt.Errorf("%w: %s", ErrIllegalMove, s)
}

// PlayMove applies a caller-supplied coordinate move if it is legal. On
// error the board is left untouched.
func (b *Board) PlayMove(s string) (Undo, error) {
	m, err := b.FindMove(s)
	if err != nil {
		return Undo{}, err
	}
	return b.Apply(m), nil
}
