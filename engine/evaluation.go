package engine

import (
	"math/bits"

	mg "chessbot/chessmg"
)

var materialValue = [7]int32{0, 100, 320, 330, 500, 900, 0}

var pieceValueMG = [7]int32{0, 82, 337, 365, 477, 1025, 0}
var pieceValueEG = [7]int32{0, 94, 281, 297, 512, 936, 0}

// Game phase weights; a full set of non-pawn material adds up to TotalPhase.
var phaseValue = [7]int32{0, 0, 1, 1, 2, 4, 0}

const TotalPhase = 24

// pstIndex maps a square (a1 = 0) to a table index for the given side.
func pstIndex(c mg.Color, sq int) int {
	if c == mg.White {
		return sq ^ 56
	}
	return sq
}

// Evaluate scores the position from the side to move's point of view.
func Evaluate(b *mg.Board, mode EvalMode) int32 {
	switch mode {
	case EvalMaterial:
		return evaluateMaterial(b)
	case EvalCoverage:
		return evaluateCoverage(b)
	default:
		return evaluatePeSTO(b)
	}
}

func evaluateMaterial(b *mg.Board) int32 {
	us := b.SideToMove()
	var score int32
	for c := mg.White; c <= mg.Black; c++ {
		sign := int32(1)
		if c != us {
			sign = -1
		}
		for _, pt := range mg.PieceTypes {
			table := pieceSquareTables[pt]
			pieces := b.Pieces(c, pt)
			for pieces != 0 {
				sq := bits.TrailingZeros64(pieces)
				pieces &= pieces - 1
				score += sign * (materialValue[pt] + table[pstIndex(c, sq)]/10)
			}
		}
	}
	return score
}

func evaluateCoverage(b *mg.Board) int32 {
	us := b.SideToMove()
	them := us.Other()
	score := evaluateMaterial(b)
	score += int32(bits.OnesCount64(b.Coverage(us)) - bits.OnesCount64(b.Coverage(them)))
	score += int32(bits.OnesCount64(b.AttackedPieces(us)) - bits.OnesCount64(b.AttackedPieces(them)))
	return score
}

func evaluatePeSTO(b *mg.Board) int32 {
	var mgScore, egScore, phase int32
	for c := mg.White; c <= mg.Black; c++ {
		sign := int32(1)
		if c == mg.Black {
			sign = -1
		}
		for _, pt := range mg.PieceTypes {
			pieces := b.Pieces(c, pt)
			for pieces != 0 {
				sq := bits.TrailingZeros64(pieces)
				pieces &= pieces - 1
				idx := pstIndex(c, sq)
				mgScore += sign * (pieceValueMG[pt] + mgTables[pt][idx])
				egScore += sign * (pieceValueEG[pt] + egTables[pt][idx])
				phase += phaseValue[pt]
			}
		}
	}

	phase = Min(phase, TotalPhase)
	weight := (phase*256 + TotalPhase/2) / TotalPhase
	score := (mgScore*weight + egScore*(256-weight)) / 256
	if b.SideToMove() == mg.Black {
		return -score
	}
	return score
}

// GamePhase returns the remaining non-pawn material weight, capped at TotalPhase.
func GamePhase(b *mg.Board) int {
	var phase int32
	for c := mg.White; c <= mg.Black; c++ {
		for _, pt := range mg.PieceTypes {
			phase += phaseValue[pt] * int32(bits.OnesCount64(b.Pieces(c, pt)))
		}
	}
	return int(Min(phase, TotalPhase))
}
