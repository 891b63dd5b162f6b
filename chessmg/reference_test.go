package chessmg_test

import (
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	mg "chessbot/chessmg"
)

func referenceMoves(fen string) []string {
	ref := dragontoothmg.ParseFen(fen)
	moves := ref.GenerateLegalMoves()
	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	sort.Strings(out)
	return out
}

// compareWithReference walks the tree to depth and checks that every node's
// legal move set matches dragontoothmg's.
func compareWithReference(t *testing.T, b *mg.Board, depth int) {
	t.Helper()
	fen := b.FEN()
	got := moveStrings(b.GenerateMoves())
	want := referenceMoves(fen)
	if !equalStrings(got, want) {
		t.Fatalf("%s:\n got  %v\n want %v", fen, got, want)
	}
	if depth <= 1 {
		return
	}
	for _, m := range b.GenerateMoves() {
		u := b.Apply(m)
		compareWithReference(t, b, depth-1)
		b.Undo(u)
	}
}

func TestLegalMovesMatchReference(t *testing.T) {
	fens := []string{
		mg.FENStartPos,
		kiwipeteFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"8/8/8/K2pP2r/8/8/8/7k w - d6 0 1",
	}
	depth := 3
	if testing.Short() {
		depth = 2
	}
	for _, fen := range fens {
		compareWithReference(t, mustParse(t, fen), depth)
	}
}
