package engine

import (
	"fmt"
	"strings"

	mg "chessbot/chessmg"
)

var historyMaxVal = 8000 // Ensure we stay below killers and captures

/*
HISTORY MOVES
If a quiet move caused a cut-node (above beta), we bump a historical score for its from/to pair,
so it is tried earlier the next time it shows up in the ordering
*/
func (s *Searcher) incrementHistoryScore(c mg.Color, m mg.Move, depth int) {
	from, to := mg.SquareIndex(m.From), mg.SquareIndex(m.To)
	s.history[c][from][to] += depth * depth
	if s.history[c][from][to] >= historyMaxVal {
		s.ageHistoryTable(c)
	}
}

// Age the values in the history table by halving them.
func (s *Searcher) ageHistoryTable(c mg.Color) {
	for sq1 := 0; sq1 < 64; sq1++ {
		for sq2 := 0; sq2 < 64; sq2++ {
			s.history[c][sq1][sq2] /= 2
		}
	}
}

// ClearHistory wipes killers and history scores, e.g. between games.
func (s *Searcher) ClearHistory() {
	s.history = [2][64][64]int{}
	s.killers = killerTable{}
}

// principalVariation follows stored best moves from the root, checking each
// one is legal before playing it.
func (s *Searcher) principalVariation(b *mg.Board, depth int) []mg.Move {
	if s.tt == nil {
		return nil
	}
	var pv []mg.Move
	var undos []mg.Undo
	for len(pv) < depth {
		e, ok := s.tt.Probe(b.Hash())
		if !ok || e.Move.IsNull() || !isLegal(b, e.Move) {
			break
		}
		undos = append(undos, b.Apply(e.Move))
		pv = append(pv, e.Move)
	}
	for i := len(undos) - 1; i >= 0; i-- {
		b.Undo(undos[i])
	}
	return pv
}

func isLegal(b *mg.Board, m mg.Move) bool {
	for _, legal := range b.GenerateMoves() {
		if legal == m {
			return true
		}
	}
	return false
}

func getPVLineString(pv []mg.Move) string {
	moves := make([]string, len(pv))
	for i, m := range pv {
		moves[i] = m.String()
	}
	return strings.Join(moves, " ")
}

// getMateOrCPScore formats a score as "mate N" (negative when being mated)
// or "cp N".
func getMateOrCPScore(score int32) string {
	if score > mateThreshold {
		pliesToMate := Max(MateScore-score, 0)
		return fmt.Sprintf("mate %d", (pliesToMate+1)/2)
	} else if score < -mateThreshold {
		pliesToMate := Max(MateScore+score, 0)
		return fmt.Sprintf("mate %d", -(pliesToMate+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
