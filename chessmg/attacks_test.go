package chessmg_test

import (
	"testing"

	mg "chessbot/chessmg"
)

func sq(t *testing.T, name string) uint64 {
	t.Helper()
	m, err := mg.ParseSquare(name)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func squares(t *testing.T, names ...string) uint64 {
	t.Helper()
	var m uint64
	for _, n := range names {
		m |= sq(t, n)
	}
	return m
}

func TestShiftsDoNotWrap(t *testing.T) {
	if mg.East(mg.FileH) != 0 || mg.West(mg.FileA) != 0 {
		t.Fatalf("east/west shifts wrapped around the board edge")
	}
	if mg.NorthEast(mg.FileH) != 0 || mg.SouthWest(mg.FileA) != 0 {
		t.Fatalf("diagonal shifts wrapped around the board edge")
	}
	if mg.North(mg.Rank8) != 0 || mg.South(mg.Rank1) != 0 {
		t.Fatalf("north/south shifts kept bits off the board")
	}
}

func TestSliderAxisConstraint(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/3Q4/8/8/4K3 w - - 0 1")
	from := sq(t, "d4")

	moves, _ := b.Attacks(mg.PieceTypeQueen, from, mg.White, false, mg.AxisFile)
	if want := squares(t, "d1", "d2", "d3", "d5", "d6", "d7", "d8"); moves != want {
		t.Fatalf("file axis: got %x want %x", moves, want)
	}
	moves, _ = b.Attacks(mg.PieceTypeQueen, from, mg.White, false, mg.AxisDiagonal)
	if want := squares(t, "a1", "b2", "c3", "e5", "f6", "g7", "h8"); moves != want {
		t.Fatalf("diagonal axis: got %x want %x", moves, want)
	}
	moves, _ = b.Attacks(mg.PieceTypeQueen, from, mg.White, false, mg.AxisAntiDiagonal)
	if want := squares(t, "a7", "b6", "c5", "e3", "f2", "g1"); moves != want {
		t.Fatalf("anti-diagonal axis: got %x want %x", moves, want)
	}
	moves, caps := b.Attacks(mg.PieceTypeKnight, from, mg.White, false, mg.AxisRank)
	if moves|caps != 0 {
		t.Fatalf("constrained knight should not move")
	}
}

func TestCoverageModeSeesThroughKing(t *testing.T) {
	b := mustParse(t, "8/8/8/8/r3K3/8/8/7k w - - 0 1")
	covered, attacked := b.Attacks(mg.PieceTypeRook, sq(t, "a4"), mg.Black, true, mg.AxisNone)
	if covered&sq(t, "f4") == 0 {
		t.Fatalf("rook coverage should continue past the enemy king")
	}
	if attacked != sq(t, "e4") {
		t.Fatalf("attacked pieces: got %x want e4", attacked)
	}
	if b.Coverage(mg.Black)&sq(t, "f4") == 0 {
		t.Fatalf("black coverage should include f4")
	}
	if hasMove(b, "e4f4") {
		t.Fatalf("king must not retreat along the checking ray")
	}
}

func TestCoverageIncludesDefendedPieces(t *testing.T) {
	b := mustParse(t, "4k3/8/8/8/8/2P5/1P6/4K3 w - - 0 1")
	covered, _ := b.Attacks(mg.PieceTypePawn, sq(t, "b2"), mg.White, true, mg.AxisNone)
	if covered != squares(t, "a3", "c3") {
		t.Fatalf("pawn coverage: got %x want a3|c3", covered)
	}
	moves, caps := b.Attacks(mg.PieceTypePawn, sq(t, "b2"), mg.White, false, mg.AxisNone)
	if moves != squares(t, "b3", "b4") || caps != 0 {
		t.Fatalf("pawn moves: got %x/%x", moves, caps)
	}
}
