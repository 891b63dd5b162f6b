package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	mg "chessbot/chessmg"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	MateScore int32 = 30000
	DrawScore int32 = 0

	// MaxPly bounds recursion depth, quiescence included.
	MaxPly = 128

	// Scores beyond this magnitude encode a forced mate.
	mateThreshold = MateScore - MaxPly
)

// ErrNoMove is returned when no search depth completed, or the side to move
// has no legal moves.
var ErrNoMove = errors.New("search produced no move")

// Result describes the outcome of the last completed iteration.
type Result struct {
	Move    mg.Move
	Score   int32
	Depth   int
	Nodes   uint64
	Elapsed time.Duration
	PV      []mg.Move
}

// Searcher runs iterative-deepening alpha-beta searches. A Searcher owns its
// transposition table and scratch buffers and must not be shared between
// goroutines; parallel searches need one Searcher and one Board clone each.
type Searcher struct {
	opts  Options
	tt    *TransTable
	log   zerolog.Logger
	timer TimeHandler
	stats CutStatistics
	nodes uint64
	stop  bool

	killers killerTable
	history [2][64][64]int

	moveBufs  [MaxPly][]mg.Move
	orderBufs [MaxPly][]move
}

// NewSearcher builds a Searcher. Pass zerolog.Nop() to silence progress logs.
func NewSearcher(opts Options, log zerolog.Logger) *Searcher {
	opts = opts.normalized()
	s := &Searcher{opts: opts, log: log}
	if opts.HashMB > 0 {
		s.tt = NewTransTable(opts.HashMB)
	}
	return s
}

// Options returns the effective settings.
func (s *Searcher) Options() Options { return s.opts }

// TT returns the transposition table, or nil when hashing is disabled.
func (s *Searcher) TT() *TransTable { return s.tt }

// Stats returns the cutoff counters of the last search.
func (s *Searcher) Stats() CutStatistics { return s.stats }

// Nodes returns the node count of the last search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// ClearHash empties the transposition table.
func (s *Searcher) ClearHash() {
	if s.tt != nil {
		s.tt.Clear()
	}
}

func (s *Searcher) evaluate(b *mg.Board) int32 { return Evaluate(b, s.opts.Eval) }

func (s *Searcher) reset(ctx context.Context, budget time.Duration) {
	s.timer.StartTime(ctx, budget)
	s.nodes = 0
	s.stop = false
	s.stats = CutStatistics{}
	s.killers.ClearKillers()
}

// Search deepens from MinDepth to MaxDepth until the budget or ctx runs out
// and returns the result of the deepest iteration that finished. An
// interrupted iteration is discarded.
func (s *Searcher) Search(ctx context.Context, b *mg.Board) (Result, error) {
	s.reset(ctx, s.opts.Budget)

	var res Result
	for depth := s.opts.MinDepth; depth <= s.opts.MaxDepth; depth++ {
		score, best := s.searchRoot(b, depth)
		if s.stop || best.IsNull() {
			break
		}

		elapsed := s.timer.Elapsed()
		res = Result{Move: best, Score: score, Depth: depth, Nodes: s.nodes, Elapsed: elapsed}
		res.PV = s.principalVariation(b, depth)

		ms := Max(elapsed.Milliseconds(), 1)
		s.log.Info().
			Int("depth", depth).
			Str("score", getMateOrCPScore(score)).
			Uint64("nodes", s.nodes).
			Dur("elapsed", elapsed).
			Uint64("nps", s.nodes*1000/uint64(ms)).
			Str("pv", getPVLineString(res.PV)).
			Msg("info")

		// Nothing deeper changes a forced mate.
		if abs(score) > mateThreshold {
			break
		}
		if s.timer.TimeStatus() {
			break
		}
	}

	s.log.Debug().Object("cuts", s.stats).Uint64("nodes", s.nodes).Msg("search finished")
	if res.Move.IsNull() {
		return res, ErrNoMove
	}
	return res, nil
}

// SearchDepth runs one fixed-depth pass without a clock.
func (s *Searcher) SearchDepth(b *mg.Board, depth int) (int32, mg.Move) {
	s.reset(context.Background(), 0)
	return s.searchRoot(b, Clamp(depth, 1, MaxPly-1))
}

func (s *Searcher) moveBuf(ply int) []mg.Move {
	if s.moveBufs[ply] == nil {
		s.moveBufs[ply] = make([]mg.Move, 0, mg.MaxMoves)
	}
	return s.moveBufs[ply][:0]
}

func (s *Searcher) orderBuf(ply int) []move {
	if s.orderBufs[ply] == nil {
		s.orderBufs[ply] = make([]move, 0, mg.MaxMoves)
	}
	return s.orderBufs[ply][:0]
}

func (s *Searcher) probeMove(hash uint64) mg.Move {
	if s.tt == nil {
		return mg.NullMove
	}
	if e, ok := s.tt.Probe(hash); ok {
		return e.Move
	}
	return mg.NullMove
}

func (s *Searcher) searchRoot(b *mg.Board, depth int) (int32, mg.Move) {
	moves := b.GenerateMovesInto(s.moveBuf(0))
	if len(moves) == 0 {
		return 0, mg.NullMove
	}
	hash := b.Hash()
	us := b.SideToMove()
	list := scoreMoves(moves, orderHints{ttMove: s.probeMove(hash), history: &s.history[us]}, s.orderBuf(0))

	alpha, beta := -MaxScore, MaxScore
	bestScore := -MaxScore
	var bestMove mg.Move
	for i := range list.moves {
		orderNextMove(i, &list)
		m := list.moves[i].move

		u := b.Apply(m)
		score := -s.alphabeta(b, -beta, -alpha, depth-1, 1)
		b.Undo(u)

		if s.stop {
			return 0, mg.NullMove
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
	}

	if s.tt != nil {
		s.tt.Store(hash, int8(depth), 0, bestMove, bestScore, ExactFlag)
	}
	return bestScore, bestMove
}

func (s *Searcher) alphabeta(b *mg.Board, alpha, beta int32, depth, ply int) int32 {
	s.nodes++
	if s.nodes&2047 == 0 && s.timer.TimeStatus() {
		s.stop = true
	}
	if s.stop {
		return 0
	}

	if depth <= 0 || ply >= MaxPly-1 {
		if s.opts.QuiescenceDepth > 0 {
			return s.quiescence(b, alpha, beta, s.opts.QuiescenceDepth, ply)
		}
		return s.evaluate(b)
	}

	hash := b.Hash()
	var ttMove mg.Move
	if s.tt != nil {
		if e, ok := s.tt.Probe(hash); ok {
			ttMove = e.Move
			if int(e.Depth) >= depth {
				score := e.scoreAt(ply)
				switch e.Flag {
				case ExactFlag:
					s.stats.TTCutoffs++
					return score
				case BetaFlag:
					if score > alpha {
						alpha = score
						s.stats.TTBoundNarrowed++
					}
				case AlphaFlag:
					if score < beta {
						beta = score
						s.stats.TTBoundNarrowed++
					}
				}
				if alpha >= beta {
					s.stats.TTCutoffs++
					return score
				}
			}
		}
	}
	alphaOrig := alpha

	moves := b.GenerateMovesInto(s.moveBuf(ply))
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -(MateScore - int32(ply))
		}
		return DrawScore
	}

	us := b.SideToMove()
	hints := orderHints{ttMove: ttMove, killers: s.killers.KillerMoves[ply], history: &s.history[us]}
	list := scoreMoves(moves, hints, s.orderBuf(ply))
	bestScore := -MaxScore
	var bestMove mg.Move
	for i := range list.moves {
		orderNextMove(i, &list)
		m := list.moves[i].move
		if i == 0 && m == ttMove {
			s.stats.TTMoveFirst++
		}

		u := b.Apply(m)
		score := -s.alphabeta(b, -beta, -alpha, depth-1, ply+1)
		b.Undo(u)

		if s.stop {
			return 0
		}
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.stats.BetaCutoffs++
			if !m.IsCapture() && !m.IsPromotion() {
				s.killers.InsertKiller(m, ply)
				s.incrementHistoryScore(us, m, depth)
			}
			break
		}
	}

	if s.tt != nil {
		flag := ExactFlag
		if bestScore <= alphaOrig {
			flag = AlphaFlag
		} else if bestScore >= beta {
			flag = BetaFlag
		}
		s.tt.Store(hash, int8(depth), ply, bestMove, bestScore, flag)
	}
	return bestScore
}

func (s *Searcher) quiescence(b *mg.Board, alpha, beta int32, depth, ply int) int32 {
	s.nodes++
	if s.nodes&2047 == 0 && s.timer.TimeStatus() {
		s.stop = true
	}
	if s.stop {
		return 0
	}
	if depth <= 0 || ply >= MaxPly-1 {
		return s.evaluate(b)
	}

	// Generate moves: all moves when in check, only captures otherwise
	var moves []mg.Move
	if b.OurKingInCheck() {
		moves = b.GenerateMovesInto(s.moveBuf(ply))
		if len(moves) == 0 {
			return -(MateScore - int32(ply))
		}
	} else {
		standpat := s.evaluate(b)
		if standpat >= beta {
			s.stats.QStandPatCutoffs++
			return standpat
		}
		if standpat > alpha {
			alpha = standpat
		}
		moves = b.GenerateCapturesInto(s.moveBuf(ply))
	}

	list := scoreMoves(moves, orderHints{}, s.orderBuf(ply))
	for i := range list.moves {
		orderNextMove(i, &list)
		u := b.Apply(list.moves[i].move)
		score := -s.quiescence(b, -beta, -alpha, depth-1, ply+1)
		b.Undo(u)

		if s.stop {
			return 0
		}
		if score >= beta {
			s.stats.QBetaCutoffs++
			return score
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// Minimax scores the position by full-width negamax to the given depth,
// without pruning, hashing or quiescence. Used to verify alphabeta.
func (s *Searcher) Minimax(b *mg.Board, depth int) int32 {
	return s.minimax(b, depth, 0)
}

func (s *Searcher) minimax(b *mg.Board, depth, ply int) int32 {
	if depth <= 0 {
		return s.evaluate(b)
	}
	moves := b.GenerateMoves()
	if len(moves) == 0 {
		if b.OurKingInCheck() {
			return -(MateScore - int32(ply))
		}
		return DrawScore
	}
	best := -MaxScore
	for _, m := range moves {
		u := b.Apply(m)
		score := -s.minimax(b, depth-1, ply+1)
		b.Undo(u)
		best = Max(best, score)
	}
	return best
}
