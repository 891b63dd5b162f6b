package engine

import (
	"fmt"
	"strings"
	"time"

	mg "chessbot/chessmg"
)

// EvalMode selects the static evaluation function.
type EvalMode uint8

const (
	// EvalMaterial scores material plus a tenth of the piece-square bonus.
	EvalMaterial EvalMode = iota
	// EvalCoverage adds the difference in covered squares and attacked pieces.
	EvalCoverage
	// EvalPeSTO blends middlegame and endgame tables by game phase.
	EvalPeSTO
)

var evalModeNames = [...]string{EvalMaterial: "material", EvalCoverage: "coverage", EvalPeSTO: "pesto"}

func (m EvalMode) String() string {
	if int(m) < len(evalModeNames) {
		return evalModeNames[m]
	}
	return fmt.Sprintf("EvalMode(%d)", m)
}

// ParseEvalMode maps a name ("material", "coverage", "pesto") to its mode.
func ParseEvalMode(s string) (EvalMode, error) {
	for i, name := range evalModeNames {
		if strings.EqualFold(s, name) {
			return EvalMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown eval mode %q", s)
}

// Options configures a Searcher.
type Options struct {
	// HashMB sizes the transposition table; 0 disables it.
	HashMB int
	// Budget is the wall-clock limit per search; 0 means depth-limited only.
	Budget time.Duration
	// MinDepth and MaxDepth bound iterative deepening.
	MinDepth int
	MaxDepth int
	// QuiescenceDepth caps the capture extension; 0 evaluates statically at the horizon.
	QuiescenceDepth int
	Eval            EvalMode
	// RevokeCastling makes boards built by ParseBoard lose castling rights
	// once their king is checked.
	RevokeCastling bool
}

// DefaultOptions returns the settings used by the bot.
func DefaultOptions() Options {
	return Options{
		HashMB:          64,
		Budget:          2 * time.Second,
		MinDepth:        1,
		MaxDepth:        20,
		QuiescenceDepth: 8,
		Eval:            EvalPeSTO,
	}
}

// ParseBoard builds a board from fen honoring the board-level options.
func (o Options) ParseBoard(fen string) (*mg.Board, error) {
	if o.RevokeCastling {
		return mg.ParseFEN(fen, mg.WithCastlingRevocation())
	}
	return mg.ParseFEN(fen)
}

func (o Options) normalized() Options {
	o.MaxDepth = Clamp(o.MaxDepth, 1, MaxPly-1)
	o.MinDepth = Clamp(o.MinDepth, 1, o.MaxDepth)
	o.QuiescenceDepth = Max(o.QuiescenceDepth, 0)
	o.HashMB = Max(o.HashMB, 0)
	return o
}
