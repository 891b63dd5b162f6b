package chessmg

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN validation failures. Every error returned by ValidateFEN and ParseFEN
// is a *FENError wrapping one of these.
var (
	ErrFENShape      = errors.New("expected 6 space-separated fields")
	ErrFENRankCount  = errors.New("expected 8 ranks")
	ErrFENRankLength = errors.New("rank does not cover 8 squares")
	ErrFENCharacter  = errors.New("unrecognized character")
	ErrFENKingCount  = errors.New("each side needs exactly one king")
	ErrFENSide       = errors.New("side to move must be w or b")
	ErrFENCastling   = errors.New("castling must be - or a subset of KQkq")
	ErrFENEnPassant  = errors.New("en passant must be - or the square behind a pawn that just advanced two")
	ErrFENClock      = errors.New("clock must be a non-negative integer")
	ErrFENOffside    = errors.New("side not to move is in check")
)

// FENError reports which FEN field failed validation.
type FENError struct {
	Field string
	Value string
	Err   error
}

func (e *FENError) Error() string {
	return fmt.Sprintf("invalid FEN %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FENError) Unwrap() error { return e.Err }

var (
	castlingPattern  = regexp.MustCompile(`^(-|K?Q?k?q?)$`)
	enPassantPattern = regexp.MustCompile(`^(-|[a-h][36])$`)
	clockPattern     = regexp.MustCompile(`^[0-9]+$`)
)

// ValidateFEN checks that a FEN string describes a playable position: the
// grammar of every field, the en-passant square against the pawns, and that
// the side that just moved is not left in check.
func ValidateFEN(fen string) error {
	_, err := ParseFEN(fen)
	return err
}

func validateFields(fen string) ([]string, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, &FENError{Field: "shape", Value: fen, Err: ErrFENShape}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, &FENError{Field: "placement", Value: fields[0], Err: ErrFENRankCount}
	}
	kings := map[rune]int{}
	for _, rank := range ranks {
		squares := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				squares += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				squares++
				if ch == 'k' || ch == 'K' {
					kings[ch]++
				}
			default:
				return nil, &FENError{Field: "placement", Value: rank, Err: ErrFENCharacter}
			}
		}
		if squares != 8 {
			return nil, &FENError{Field: "placement", Value: rank, Err: ErrFENRankLength}
		}
	}
	if kings['K'] != 1 || kings['k'] != 1 {
		return nil, &FENError{Field: "placement", Value: fields[0], Err: ErrFENKingCount}
	}

	if fields[1] != "w" && fields[1] != "b" {
		return nil, &FENError{Field: "side", Value: fields[1], Err: ErrFENSide}
	}
	if fields[2] == "" || !castlingPattern.MatchString(fields[2]) {
		return nil, &FENError{Field: "castling", Value: fields[2], Err: ErrFENCastling}
	}
	if ep := fields[3]; !enPassantPattern.MatchString(ep) ||
		(ep != "-" && (fields[1] == "w") != (ep[1] == '6')) {
		return nil, &FENError{Field: "en passant", Value: ep, Err: ErrFENEnPassant}
	}
	if !clockPattern.MatchString(fields[4]) {
		return nil, &FENError{Field: "halfmove clock", Value: fields[4], Err: ErrFENClock}
	}
	if !clockPattern.MatchString(fields[5]) {
		return nil, &FENError{Field: "fullmove number", Value: fields[5], Err: ErrFENClock}
	}
	return fields, nil
}

// ParseOption adjusts a board while it is built from FEN.
type ParseOption func(*Board)

// WithCastlingRevocation makes entering check permanently clear the checked
// side's castling rights.
func WithCastlingRevocation() ParseOption {
	return func(b *Board) { b.RevokeCastlingOnCheck = true }
}

// ParseFEN validates a FEN string and returns a new Board set up to that
// position. No board is returned when validation fails.
func ParseFEN(fen string, opts ...ParseOption) (*Board, error) {
	fields, err := validateFields(fen)
	if err != nil {
		return nil, err
	}
	b := &Board{}
	for _, opt := range opts {
		opt(b)
	}

	for i, rank := range strings.Split(fields[0], "/") {
		r := 7 - i
		f := 0
		for _, ch := range rank {
			if ch >= '1' && ch <= '8' {
				f += int(ch - '0')
				continue
			}
			p := pieceFromChar(byte(ch))
			b.pieces[p.Color()][p.Type()] |= bb(r*8 + f)
			f++
		}
	}

	if fields[1] == "b" {
		b.sideToMove = Black
	}
	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			b.castling[White].Kingside = true
		case 'Q':
			b.castling[White].Queenside = true
		case 'k':
			b.castling[Black].Kingside = true
		case 'q':
			b.castling[Black].Queenside = true
		}
	}
	if fields[3] != "-" {
		// Pattern-checked above.
		b.enPassant, _ = ParseSquare(fields[3])
	}
	b.halfmoveClock, _ = strconv.Atoi(fields[4])
	b.fullmoveNumber, _ = strconv.Atoi(fields[5])
	if b.fullmoveNumber < 1 {
		b.fullmoveNumber = 1
	}

	b.refresh()
	if b.enPassant != 0 && !b.enPassantConsistent() {
		return nil, &FENError{Field: "en passant", Value: fields[3], Err: ErrFENEnPassant}
	}
	if b.InCheck(b.sideToMove.Other()) {
		return nil, &FENError{Field: "position", Value: fields[0], Err: ErrFENOffside}
	}
	return b, nil
}

// enPassantConsistent reports whether the enemy pawn that just advanced two
// squares stands behind the target and the squares it crossed are empty.
func (b *Board) enPassantConsistent() bool {
	them := b.sideToMove.Other()
	victim := enPassantVictim(b.enPassant, b.sideToMove)
	origin := enPassantVictim(b.enPassant, them)
	crossed := b.enPassant | origin
	return b.pieces[them][PieceTypePawn]&victim != 0 && b.empty&crossed == crossed
}

func pieceFromChar(ch byte) Piece {
	i := strings.IndexByte(pieceLetters, ch|0x20)
	if i <= 0 {
		return NoPiece
	}
	if ch >= 'a' {
		return PieceFromType(Black, PieceType(i))
	}
	return PieceFromType(White, PieceType(i))
}

// FEN serializes the board into Forsyth-Edwards Notation.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.PieceAt(r*8 + f)
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')

	castling := ""
	if b.castling[White].Kingside {
		castling += "K"
	}
	if b.castling[White].Queenside {
		castling += "Q"
	}
	if b.castling[Black].Kingside {
		castling += "k"
	}
	if b.castling[Black].Queenside {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	sb.WriteString(castling)
	sb.WriteByte(' ')
	sb.WriteString(SquareName(b.enPassant))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullmoveNumber))
	return sb.String()
}

func (b *Board) String() string { return b.FEN() }
