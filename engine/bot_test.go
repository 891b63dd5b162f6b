package engine

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	mg "chessbot/chessmg"
)

func TestPlayBotMoveDeliversMate(t *testing.T) {
	opts := DefaultOptions()
	opts.Budget = 0
	opts.MaxDepth = 3
	s := NewSearcher(opts, zerolog.Nop())
	b := mustParse(t, mateInOneFEN)

	turn, err := PlayBotMove(context.Background(), b, s)
	if err != nil {
		t.Fatalf("bot move: %v", err)
	}
	if turn.Move != "g6g7" || turn.Notation != "g6 g7 Q" {
		t.Fatalf("unexpected move %q (%q)", turn.Move, turn.Notation)
	}
	if !turn.Checkmate || turn.Stalemate || len(turn.LegalMoves) != 0 {
		t.Fatalf("expected a checkmate status, got %+v", turn.Status)
	}
	if len(turn.CheckBy) != 1 || turn.CheckBy[0] != "g7" {
		t.Fatalf("expected check from g7, got %v", turn.CheckBy)
	}
	if turn.FEN != b.FEN() || b.SideToMove() != mg.Black {
		t.Fatalf("board not advanced: %s", b.FEN())
	}
}

func TestPlayBotMoveOnFinishedGame(t *testing.T) {
	s := NewSearcher(plainOptions(EvalPeSTO), zerolog.Nop())
	b := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	before := b.FEN()

	turn, err := PlayBotMove(context.Background(), b, s)
	if err != nil {
		t.Fatalf("bot move: %v", err)
	}
	if turn.Move != "" || !turn.Stalemate || turn.Checkmate {
		t.Fatalf("expected stalemate without a move, got %+v", turn)
	}
	if b.FEN() != before {
		t.Fatalf("board changed on a finished game: %s", b.FEN())
	}
}

func TestPlayBotMoveWithoutCompletedDepth(t *testing.T) {
	opts := DefaultOptions()
	opts.Budget = time.Nanosecond
	opts.QuiescenceDepth = 16
	s := NewSearcher(opts, zerolog.Nop())
	// Depth one with deep quiescence runs past the first clock check.
	b := mustParse(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := b.FEN()

	turn, err := PlayBotMove(context.Background(), b, s)
	if !errors.Is(err, ErrNoMove) {
		t.Fatalf("expected ErrNoMove, got %v (%+v)", err, turn)
	}
	if turn.Move != "" {
		t.Fatalf("expected no move, got %q", turn.Move)
	}
	if b.FEN() != before {
		t.Fatalf("board changed after an interrupted search: %s", b.FEN())
	}
}

func TestMakeMove(t *testing.T) {
	b := mustParse(t, mg.FENStartPos)
	st, err := MakeMove(b, "e2e4")
	if err != nil {
		t.Fatalf("make move: %v", err)
	}
	if want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"; st.FEN != want {
		t.Fatalf("FEN %q, want %q", st.FEN, want)
	}
	if len(st.LegalMoves) != 20 {
		t.Fatalf("expected 20 replies, got %d", len(st.LegalMoves))
	}

	if _, err := MakeMove(b, "e7e3"); !errors.Is(err, mg.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	if _, err := MakeMove(b, "zz"); !errors.Is(err, mg.ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove for malformed input, got %v", err)
	}
}

func TestBotTurnJSON(t *testing.T) {
	turn := BotTurn{
		Status: mg.Status{LegalMoves: []string{"e7 e5 p"}, FEN: "f", CheckBy: []string{}},
		Move:   "e2e4",
	}
	raw, err := json.Marshal(turn)
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"legalMoves", "fen", "checkmate", "stalemate", "checkBy", "move"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("missing %q in %s", key, raw)
		}
	}
}
