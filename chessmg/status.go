package chessmg

// Status is the externally visible summary of a position: what the side to
// move may play and how the game stands.
type Status struct {
	LegalMoves []string `json:"legalMoves"`
	FEN        string   `json:"fen"`
	Checkmate  bool     `json:"checkmate"`
	Stalemate  bool     `json:"stalemate"`
	CheckBy    []string `json:"checkBy"`
}

// Status lists the legal moves in "<from> <to> <piece>" form (promotions
// once per destination square) together with
// the FEN, the game-over flags and the squares of any checking pieces.
func (b *Board) Status() Status {
	moves := b.GenerateMoves()
	st := Status{
		LegalMoves: make([]string, 0, len(moves)),
		FEN:        b.FEN(),
		CheckBy:    b.CheckingSquares(),
	}
	for _, m := range moves {
		// One entry per destination; the promotion piece is chosen when playing.
		if m.IsPromotion() && m.Promotion != PieceTypeQueen {
			continue
		}
		st.LegalMoves = append(st.LegalMoves, m.Notation())
	}
	if len(moves) == 0 {
		st.Checkmate = b.OurKingInCheck()
		st.Stalemate = !st.Checkmate
	}
	return st
}
