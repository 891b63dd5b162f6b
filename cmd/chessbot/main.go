package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	mg "chessbot/chessmg"
	"chessbot/engine"
	"chessbot/internal/logx"
)

const usage = `Usage: chessbot [options] <status|move|bot>

  status   print the legal moves and game state of -fen
  move     play -move on -fen and print the new state
  bot      let the engine pick a move for -fen and print the new state
`

func main() {
	defaults := envDefaults()

	var (
		fen      = flag.String("fen", mg.FENStartPos, "position in FEN")
		move     = flag.String("move", "", "coordinate move for the move command (e2e4, e7e8q)")
		budget   = flag.Duration("budget", defaults.Budget, "search time budget ($CHESSBOT_BUDGET)")
		hashMB   = flag.Int("hash", defaults.HashMB, "transposition table size in MB ($CHESSBOT_TT_MB)")
		evalName = flag.String("eval", defaults.Eval.String(), "evaluation: material, coverage or pesto ($CHESSBOT_EVAL)")
		maxDepth = flag.Int("max-depth", defaults.MaxDepth, "deepest iteration")
		qDepth   = flag.Int("qdepth", defaults.QuiescenceDepth, "quiescence depth (0 = static evaluation at the horizon)")
		revoke   = flag.Bool("revoke-castling", false, "lose castling rights once the king is checked")
		verbose  = flag.Bool("v", false, "log search progress")
	)
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	level := logx.LevelFromEnv("CHESSBOT_LOG", zerolog.WarnLevel)
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := logx.New(os.Stderr, level)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	mode, err := engine.ParseEvalMode(*evalName)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid -eval")
	}
	opts := defaults
	opts.Budget = *budget
	opts.HashMB = *hashMB
	opts.Eval = mode
	opts.MaxDepth = *maxDepth
	opts.QuiescenceDepth = *qDepth
	opts.RevokeCastling = *revoke

	board, err := opts.ParseBoard(*fen)
	if err != nil {
		logger.Fatal().Err(err).Str("fen", *fen).Msg("parse FEN")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var out any
	switch cmd := flag.Arg(0); cmd {
	case "status":
		out = board.Status()
	case "move":
		if *move == "" {
			logger.Fatal().Msg("the move command needs -move")
		}
		st, err := engine.MakeMove(board, *move)
		if err != nil {
			logger.Fatal().Err(err).Msg("make move")
		}
		out = st
	case "bot":
		logger.Info().
			Str("fen", *fen).
			Dur("budget", opts.Budget).
			Int("hash_mb", opts.HashMB).
			Str("eval", opts.Eval.String()).
			Msg("starting search")
		turn, err := engine.PlayBotMove(ctx, board, engine.NewSearcher(opts, logger))
		if err != nil {
			logger.Fatal().Err(err).Msg("bot move")
		}
		out = turn
	default:
		logger.Error().Str("command", cmd).Msg("unknown command")
		flag.Usage()
		os.Exit(2)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Fatal().Err(err).Msg("encode response")
	}
}

// envDefaults layers CHESSBOT_* environment variables over the engine
// defaults. Unparseable values are ignored.
func envDefaults() engine.Options {
	opts := engine.DefaultOptions()
	if v := os.Getenv("CHESSBOT_BUDGET"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			opts.Budget = d
		}
	}
	if v := os.Getenv("CHESSBOT_TT_MB"); v != "" {
		if mb, err := strconv.Atoi(v); err == nil {
			opts.HashMB = mb
		}
	}
	if v := os.Getenv("CHESSBOT_EVAL"); v != "" {
		if mode, err := engine.ParseEvalMode(v); err == nil {
			opts.Eval = mode
		}
	}
	return opts
}
