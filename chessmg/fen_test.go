package chessmg_test

import (
	"errors"
	"testing"

	mg "chessbot/chessmg"
)

func TestFENRoundTrip(t *testing.T) {
	fens := append([]string{
		"8/8/8/8/8/8/8/k6K b - - 99 120",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 7",
	}, roundTripFENs...)
	for _, fen := range fens {
		b, err := mg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Fatalf("round trip: got %q want %q", got, fen)
		}
	}
}

func TestValidateFENErrors(t *testing.T) {
	cases := []struct {
		fen   string
		field string
		want  error
	}{
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", "shape", mg.ErrFENShape},
		{"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement", mg.ErrFENRankCount},
		{"rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement", mg.ErrFENRankLength},
		{"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement", mg.ErrFENCharacter},
		{"rnbqkbnr/ppppxppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "placement", mg.ErrFENCharacter},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq - 0 1", "placement", mg.ErrFENKingCount},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBKKBNR w KQkq - 0 1", "placement", mg.ErrFENKingCount},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", "side", mg.ErrFENSide},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w QKkq - 0 1", "castling", mg.ErrFENCastling},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqK - 0 1", "castling", mg.ErrFENCastling},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1", "en passant", mg.ErrFENEnPassant},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq i3 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/8/8/8/8/3P4/4K3 w - e3 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/8/3pP3/8/8/8/4K3 b - d6 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/8/8/8/8/8/4K3 w - e6 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/4p3/4p3/8/8/8/4K3 w - e6 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/8/4P3/8/8/8/4K3 w - e6 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/8/8/4P3/8/4P3/4K3 b - e3 0 1", "en passant", mg.ErrFENEnPassant},
		{"4k3/8/8/8/8/8/8/4RK2 w - - 0 1", "position", mg.ErrFENOffside},
		{"4K3/8/8/8/8/8/8/4rk2 b - - 0 1", "position", mg.ErrFENOffside},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1", "halfmove clock", mg.ErrFENClock},
		{"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 -1", "fullmove number", mg.ErrFENClock},
	}
	for _, tc := range cases {
		err := mg.ValidateFEN(tc.fen)
		if !errors.Is(err, tc.want) {
			t.Fatalf("ValidateFEN(%q): got %v want %v", tc.fen, err, tc.want)
		}
		var fenErr *mg.FENError
		if !errors.As(err, &fenErr) {
			t.Fatalf("ValidateFEN(%q): error %T is not a *FENError", tc.fen, err)
		}
		if fenErr.Field != tc.field {
			t.Fatalf("ValidateFEN(%q): field %q want %q", tc.fen, fenErr.Field, tc.field)
		}
		if b, err := mg.ParseFEN(tc.fen); err == nil || b != nil {
			t.Fatalf("ParseFEN(%q) should fail without a board", tc.fen)
		}
	}
}

func TestSquareNames(t *testing.T) {
	for sq := 0; sq < 64; sq++ {
		name := mg.SquareName(uint64(1) << uint(sq))
		mask, err := mg.ParseSquare(name)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", name, err)
		}
		if mg.SquareIndex(mask) != sq {
			t.Fatalf("square %d round-tripped to %d via %s", sq, mg.SquareIndex(mask), name)
		}
	}
	if mg.SquareName(1) != "a1" || mg.SquareName(1<<63) != "h8" {
		t.Fatalf("unexpected corner names")
	}
}
