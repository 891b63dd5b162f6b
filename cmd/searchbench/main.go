package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"

	mg "chessbot/chessmg"
	"chessbot/engine"
	"chessbot/internal/logx"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 6, "search depth in plies")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	fenFlag := flag.String("fen", mg.FENStartPos, "FEN to search")
	hashFlag := flag.Int("hash", 64, "transposition table size in MB")
	evalFlag := flag.String("eval", "pesto", "evaluation: material, coverage or pesto")
	verbose := flag.Bool("v", false, "log every completed depth")
	cpuProfile := flag.String("cpuprofile", "", "write CPU profile to file")
	memProfile := flag.String("memprofile", "", "write memory profile (heap) to file")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := logx.New(os.Stderr, level)

	if *depthFlag <= 0 {
		logger.Fatal().Int("depth", *depthFlag).Msg("depth must be positive")
	}
	mode, err := engine.ParseEvalMode(*evalFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse eval mode")
	}

	// --- Optional CPU profiling setup ---
	if *cpuProfile != "" {
		cpuFile, err := os.Create(*cpuProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create CPU profile")
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			logger.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			cpuFile.Close()
		}()
	}

	opts := engine.DefaultOptions()
	opts.Budget = 0
	opts.MaxDepth = *depthFlag
	opts.HashMB = *hashFlag
	opts.Eval = mode

	startAll := time.Now()
	var totalNodes uint64
	for i := 0; i < *repeatFlag; i++ {
		// Fresh position and tables for each run
		board, err := mg.ParseFEN(*fenFlag)
		if err != nil {
			logger.Fatal().Err(err).Str("fen", *fenFlag).Msg("parse FEN")
		}
		searcher := engine.NewSearcher(opts, logger)

		res, err := searcher.Search(context.Background(), board)
		if err != nil {
			logger.Fatal().Err(err).Msg("search")
		}
		totalNodes += res.Nodes
		logger.Warn().
			Int("iteration", i+1).
			Str("bestmove", res.Move.String()).
			Int32("score", res.Score).
			Uint64("nodes", res.Nodes).
			Dur("time", res.Elapsed).
			Object("cuts", searcher.Stats()).
			Msg("search done")
	}
	totalElapsed := time.Since(startAll)
	logger.Warn().
		Dur("total", totalElapsed).
		Uint64("nodes", totalNodes).
		Float64("nps", float64(totalNodes)/totalElapsed.Seconds()).
		Msg("searchbench finished")

	// --- Optional heap profile at the end ---
	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			logger.Fatal().Err(err).Msg("could not create memory profile")
		}
		defer f.Close()

		runtime.GC() // get up-to-date heap info
		if err := pprof.WriteHeapProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("could not write memory profile")
		}
	}
}
