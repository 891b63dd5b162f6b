package chessmg_test

import (
	"errors"
	"testing"

	mg "chessbot/chessmg"
)

var roundTripFENs = []string{
	mg.FENStartPos,
	kiwipeteFEN,
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	"k7/8/8/3pP3/8/8/8/7K w - d6 0 2",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// walkApplyUndo applies and undoes every move down to depth, failing on the
// first position that is not restored exactly.
func walkApplyUndo(t *testing.T, b *mg.Board, depth int) {
	t.Helper()
	if depth == 0 {
		return
	}
	for _, m := range b.GenerateMoves() {
		before := *b
		beforeHash := b.Hash()
		u := b.Apply(m)
		if !b.Validate() {
			t.Fatalf("inconsistent board after %s from %s", m, before.FEN())
		}
		walkApplyUndo(t, b, depth-1)
		b.Undo(u)
		if *b != before {
			t.Fatalf("undo %s did not restore %s, got %s", m, before.FEN(), b.FEN())
		}
		if b.Hash() != beforeHash {
			t.Fatalf("hash changed across apply/undo of %s", m)
		}
	}
}

func TestApplyUndoRestoresState(t *testing.T) {
	for _, fen := range roundTripFENs {
		b, err := mg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		walkApplyUndo(t, b, 2)
	}
}

func TestApplyUndoRestoresRevokedCastling(t *testing.T) {
	for _, tc := range []struct {
		fen   string
		depth int
	}{
		{kiwipeteFEN, 3},
		{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", 2},
	} {
		b, err := mg.ParseFEN(tc.fen, mg.WithCastlingRevocation())
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}
		walkApplyUndo(t, b, tc.depth)
	}

	b, err := mg.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", mg.WithCastlingRevocation())
	if err != nil {
		t.Fatal(err)
	}
	before := *b
	m, err := b.FindMove("a1a8")
	if err != nil {
		t.Fatalf("FindMove a1a8: %v", err)
	}
	u := b.Apply(m)
	if got := b.Castling(mg.Black); got != (mg.CastleRights{}) {
		t.Fatalf("check should revoke black's rights, got %+v", got)
	}
	b.Undo(u)
	if *b != before {
		t.Fatalf("undo did not restore revoked rights: %s", b.FEN())
	}
}

func TestApplyUpdatesClocksAndRights(t *testing.T) {
	b, err := mg.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 5 10")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := b.PlayMove("a1a7"); err != nil {
		t.Fatalf("PlayMove a1a7: %v", err)
	}
	if got := b.FEN(); got != "r3k2r/R7/8/8/8/8/8/4K2R b Kkq - 6 10" {
		t.Fatalf("after Ra7: got %s", got)
	}

	if _, err := b.PlayMove("e8g8"); err != nil {
		t.Fatalf("PlayMove e8g8: %v", err)
	}
	if got := b.FEN(); got != "r4rk1/R7/8/8/8/8/8/4K2R w K - 7 11" {
		t.Fatalf("after O-O: got %s", got)
	}

	if _, err := b.PlayMove("e1d1"); err != nil {
		t.Fatalf("PlayMove e1d1: %v", err)
	}
	if got := b.Castling(mg.White); got != (mg.CastleRights{}) {
		t.Fatalf("king move should clear rights, got %+v", got)
	}
}

func TestCapturingCornerRookRevokesRights(t *testing.T) {
	b, err := mg.ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.PlayMove("h1h8"); err != nil {
		t.Fatalf("PlayMove h1h8: %v", err)
	}
	if got := b.FEN(); got != "r3k2R/8/8/8/8/8/8/R3K3 b Qq - 0 1" {
		t.Fatalf("after Rxh8: got %s", got)
	}
}

func TestApplySetsEnPassantTarget(t *testing.T) {
	b, err := mg.ParseFEN(mg.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.PlayMove("e2e4"); err != nil {
		t.Fatal(err)
	}
	if got := mg.SquareName(b.EnPassant()); got != "e3" {
		t.Fatalf("en passant target: got %s want e3", got)
	}
	if _, err := b.PlayMove("g8f6"); err != nil {
		t.Fatal(err)
	}
	if b.EnPassant() != 0 {
		t.Fatalf("en passant target should clear after a quiet move")
	}
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b, err := mg.ParseFEN("k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if err != nil {
		t.Fatal(err)
	}
	u, err := b.PlayMove("e5d6")
	if err != nil {
		t.Fatalf("PlayMove e5d6: %v", err)
	}
	if !u.Move().IsCapture() {
		t.Fatalf("en passant should be flagged as a capture")
	}
	if got := b.FEN(); got != "k7/8/3P4/8/8/8/8/7K b - - 0 2" {
		t.Fatalf("after exd6: got %s", got)
	}
}

func TestPromotionChoices(t *testing.T) {
	b, err := mg.ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.PlayMove("a7b8n"); err != nil {
		t.Fatalf("PlayMove a7b8n: %v", err)
	}
	if got := b.PieceAt(57); got != mg.WhiteKnight {
		t.Fatalf("b8: got %v want white knight", got)
	}

	b, _ = mg.ParseFEN("1n5k/P7/8/8/8/8/8/7K w - - 0 1")
	if _, err := b.PlayMove("a7a8"); err != nil {
		t.Fatalf("PlayMove a7a8: %v", err)
	}
	if got := b.PieceAt(56); got != mg.WhiteQueen {
		t.Fatalf("a8: got %v want white queen by default", got)
	}
}

func TestPlayMoveRejectsIllegal(t *testing.T) {
	b, err := mg.ParseFEN(mg.FENStartPos)
	if err != nil {
		t.Fatal(err)
	}
	before := *b
	for _, s := range []string{"e2e5", "e1e2", "a7a6", "zz99", "e2e4x", "e2"} {
		if _, err := b.PlayMove(s); !errors.Is(err, mg.ErrIllegalMove) {
			t.Fatalf("PlayMove(%q): got %v want ErrIllegalMove", s, err)
		}
		if *b != before {
			t.Fatalf("PlayMove(%q) modified the board", s)
		}
	}
}
