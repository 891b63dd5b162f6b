package engine

import (
	"context"

	mg "chessbot/chessmg"
)

// BotTurn is the response to a bot move: the move it chose plus the status
// of the position after that move. Move is empty when the game was already
// over.
type BotTurn struct {
	mg.Status
	Move     string `json:"move,omitempty"`
	Notation string `json:"notation,omitempty"`
	Score    int32  `json:"score"`
	Depth    int    `json:"depth"`
}

// PlayBotMove searches b, plays the chosen move on it and reports the new
// position. A finished game is reported as is, without an error. A search
// interrupted before its first depth completed returns ErrNoMove and leaves
// b untouched.
func PlayBotMove(ctx context.Context, b *mg.Board, s *Searcher) (BotTurn, error) {
	if !b.HasLegalMoves() {
		return BotTurn{Status: b.Status()}, nil
	}

	res, err := s.Search(ctx, b)
	if err != nil {
		return BotTurn{}, err
	}

	b.Apply(res.Move)
	return BotTurn{
		Status:   b.Status(),
		Move:     res.Move.String(),
		Notation: res.Move.Notation(),
		Score:    res.Score,
		Depth:    res.Depth,
	}, nil
}

// MakeMove plays a caller's coordinate move and returns the resulting
// status. Illegal moves leave b untouched and wrap mg.ErrIllegalMove.
func MakeMove(b *mg.Board, move string) (mg.Status, error) {
	if _, err := b.PlayMove(move); err != nil {
		return mg.Status{}, err
	}
	return b.Status(), nil
}
