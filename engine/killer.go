package engine

import (
	mg "chessbot/chessmg"
)

type killerTable struct {
	KillerMoves [MaxPly][2]mg.Move
}

// InsertKiller remembers a quiet move that caused a beta cutoff at ply.
func (k *killerTable) InsertKiller(m mg.Move, ply int) {
	if m != k.KillerMoves[ply][0] {
		k.KillerMoves[ply][1] = k.KillerMoves[ply][0]
		k.KillerMoves[ply][0] = m
	}
}

// Clear the killer moves table.
func (k *killerTable) ClearKillers() {
	for ply := range k.KillerMoves {
		k.KillerMoves[ply][0] = mg.NullMove
		k.KillerMoves[ply][1] = mg.NullMove
	}
}
