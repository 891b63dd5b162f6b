package engine

import (
	mg "chessbot/chessmg"
)

type move struct {
	move  mg.Move
	score uint16
}

type moveList struct {
	moves []move
}

// Most Valuable Victim - Least Valuable Aggressor; used to score & sort captures
var mvvLva [7][7]uint16 = [7][7]uint16{
	{0, 0, 0, 0, 0, 0, 0},
	{0, 14, 13, 12, 11, 10, 0}, // victim Pawn
	{0, 24, 23, 22, 21, 20, 0}, // victim Knight
	{0, 34, 33, 32, 31, 30, 0}, // victim Bishop
	{0, 44, 43, 42, 41, 40, 0}, // victim Rook
	{0, 54, 53, 52, 51, 50, 0}, // victim Queen
	{0, 0, 0, 0, 0, 0, 0},      // victim King
}

// The stored best move goes first, then captures, promotions, killers and
// finally quiet moves by history score.
var ttMoveOffset uint16 = 25000
var captureOffset uint16 = 20000
var promotionOffset uint16 = 15000
var firstKillerScore uint16 = 10000
var secondKillerScore uint16 = 9000

// orderHints carries the per-node inputs to move scoring. A nil history
// scores every quiet move as zero.
type orderHints struct {
	ttMove  mg.Move
	killers [2]mg.Move
	history *[64][64]int
}

// scoreMoves wraps moves with their ordering score, reusing buf.
func scoreMoves(moves []mg.Move, hints orderHints, buf []move) moveList {
	list := moveList{moves: buf[:0]}
	for _, m := range moves {
		var score uint16
		switch {
		case !hints.ttMove.IsNull() && m == hints.ttMove:
			score = ttMoveOffset
		case m.IsCapture():
			score = captureOffset + mvvLva[m.Captured][m.Piece.Type()]
			if m.IsPromotion() {
				score += uint16(m.Promotion) * 100
			}
		case m.IsPromotion():
			score = promotionOffset + uint16(m.Promotion)*100
		case m == hints.killers[0]:
			score = firstKillerScore
		case m == hints.killers[1]:
			score = secondKillerScore
		case hints.history != nil:
			score = uint16(Min(hints.history[mg.SquareIndex(m.From)][mg.SquareIndex(m.To)], historyMaxVal))
		}
		list.moves = append(list.moves, move{move: m, score: score})
	}
	return list
}

// Ordering the moves one at a time, at index given
func orderNextMove(currIndex int, moves *moveList) {
	bestIndex := currIndex
	bestScore := moves.moves[bestIndex].score

	for index := bestIndex + 1; index < len(moves.moves); index++ {
		if moves.moves[index].score > bestScore {
			bestIndex = index
			bestScore = moves.moves[index].score
		}
	}

	moves.moves[currIndex], moves.moves[bestIndex] = moves.moves[bestIndex], moves.moves[currIndex]
}
