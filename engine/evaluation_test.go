package engine

import (
	"strings"
	"testing"

	mg "chessbot/chessmg"
)

var evalModes = []EvalMode{EvalMaterial, EvalCoverage, EvalPeSTO}

// mirrorFEN flips the board vertically and swaps colors, producing the same
// position seen from the other side.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	f := strings.Fields(fen)
	if len(f) != 6 {
		t.Fatalf("bad FEN %q", fen)
	}
	swapCase := func(s string) string {
		return strings.Map(func(r rune) rune {
			switch {
			case r >= 'a' && r <= 'z':
				return r - 'a' + 'A'
			case r >= 'A' && r <= 'Z':
				return r - 'A' + 'a'
			}
			return r
		}, s)
	}

	ranks := strings.Split(f[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	placement := swapCase(strings.Join(ranks, "/"))

	side := "w"
	if f[1] == "w" {
		side = "b"
	}

	castling := "-"
	if f[2] != "-" {
		var sb strings.Builder
		swapped := swapCase(f[2])
		for _, r := range "KQkq" {
			if strings.ContainsRune(swapped, r) {
				sb.WriteRune(r)
			}
		}
		castling = sb.String()
	}

	ep := f[3]
	if ep != "-" {
		rank := byte('3')
		if ep[1] == '3' {
			rank = '6'
		}
		ep = string([]byte{ep[0], rank})
	}
	return strings.Join([]string{placement, side, castling, ep, f[4], f[5]}, " ")
}

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	b := mustParse(t, mg.FENStartPos)
	for _, mode := range evalModes {
		if got := Evaluate(b, mode); got != 0 {
			t.Errorf("%s: start position scored %d", mode, got)
		}
	}
}

func TestEvaluateIsColorSymmetric(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		m := mustParse(t, mirrorFEN(t, fen))
		for _, mode := range evalModes {
			if got, want := Evaluate(m, mode), Evaluate(b, mode); got != want {
				t.Errorf("%s %q: mirrored %d, original %d", mode, fen, got, want)
			}
		}
	}
}

func TestEvaluateSeesMaterial(t *testing.T) {
	white := mustParse(t, "4k3/8/8/8/8/8/8/3QK3 w - - 0 1")
	black := mustParse(t, "4k3/8/8/8/8/8/8/3QK3 b - - 0 1")
	for _, mode := range evalModes {
		if got := Evaluate(white, mode); got < 800 {
			t.Errorf("%s: queen up scored %d for the stronger side", mode, got)
		}
		if got := Evaluate(black, mode); got > -800 {
			t.Errorf("%s: queen down scored %d for the weaker side", mode, got)
		}
	}
}

func TestGamePhase(t *testing.T) {
	if got := GamePhase(mustParse(t, mg.FENStartPos)); got != TotalPhase {
		t.Fatalf("start position phase %d, want %d", got, TotalPhase)
	}
	if got := GamePhase(mustParse(t, "4k3/pppppppp/8/8/8/8/PPPPPPPP/4K3 w - - 0 1")); got != 0 {
		t.Fatalf("pawn ending phase %d, want 0", got)
	}
	if got := GamePhase(mustParse(t, "3qk3/8/8/8/8/8/8/3QK3 w - - 0 1")); got != 8 {
		t.Fatalf("queen ending phase %d, want 8", got)
	}
}

func TestParseEvalMode(t *testing.T) {
	for _, mode := range evalModes {
		got, err := ParseEvalMode(strings.ToUpper(mode.String()))
		if err != nil || got != mode {
			t.Fatalf("ParseEvalMode(%q) = %v, %v", mode, got, err)
		}
	}
	if _, err := ParseEvalMode("bogus"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}
