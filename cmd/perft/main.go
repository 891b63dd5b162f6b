package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/dylhunn/dragontoothmg"

	mg "chessbot/chessmg"
	"chessbot/internal/logx"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	compare := flag.Bool("compare", false, "Diff the root divide against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	logger := logx.NewLogger()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := mg.ParseFEN(*fen)
	if err != nil {
		logger.Fatal().Err(err).Str("fen", *fen).Msg("parse FEN")
	}

	if *divide || *compare {
		div := mg.PerftDivide(board, *depth)
		ours := make(map[string]uint64, len(div))
		for m, n := range div {
			ours[m.String()] = n
		}
		if *compare {
			if !compareDivide(ours, referenceDivide(*fen, *depth)) {
				os.Exit(1)
			}
			return
		}
		printDivide(ours)
		return
	}

	// Optional CPU profiling
	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			logger.Fatal().Err(err).Msg("create cpu profile")
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("start cpu profile")
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mg.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

func printDivide(div map[string]uint64) {
	keys := sortedKeys(div)
	var sum uint64
	for _, k := range keys {
		fmt.Printf("%s: %d\n", k, div[k])
		sum += div[k]
	}
	fmt.Printf("Total: %d\n", sum)
}

// compareDivide prints every root move whose count differs, including moves
// only one generator produced, and reports whether both agree.
func compareDivide(ours, ref map[string]uint64) bool {
	union := make(map[string]uint64, len(ref))
	for k := range ours {
		union[k] = 0
	}
	for k := range ref {
		union[k] = 0
	}

	ok := true
	var sumOurs, sumRef uint64
	for _, k := range sortedKeys(union) {
		a, inOurs := ours[k]
		r, inRef := ref[k]
		sumOurs += a
		sumRef += r
		switch {
		case !inRef:
			fmt.Printf("%s: %d (not generated by reference)\n", k, a)
			ok = false
		case !inOurs:
			fmt.Printf("%s: missing (reference %d)\n", k, r)
			ok = false
		case a != r:
			fmt.Printf("%s: %d (reference %d)\n", k, a, r)
			ok = false
		}
	}
	fmt.Printf("Total: %d (reference %d)\n", sumOurs, sumRef)
	return ok
}

func referenceDivide(fen string, depth int) map[string]uint64 {
	board := dragontoothmg.ParseFen(fen)
	out := make(map[string]uint64)
	for _, m := range board.GenerateLegalMoves() {
		unapply := board.Apply(m)
		out[m.String()] = referencePerft(&board, depth-1)
		unapply()
	}
	return out
}

func referencePerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += referencePerft(b, depth-1)
		unapply()
	}
	return nodes
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
