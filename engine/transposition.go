package engine

import (
	"unsafe"

	mg "chessbot/chessmg"
)

const (
	// Flags
	EmptyFlag uint8 = iota
	AlphaFlag       // upper bound: the search failed low
	BetaFlag        // lower bound: the search failed high
	ExactFlag
)

type TTEntry struct {
	Hash  uint64
	Move  mg.Move
	Score int32
	Depth int8
	Flag  uint8
}

// TTStats counts table traffic since the last Clear.
type TTStats struct {
	Probes     uint64
	Hits       uint64
	Stores     uint64
	Overwrites uint64
	Rejected   uint64
}

// TransTable is a single-slot, power-of-two sized transposition table. It is
// not safe for concurrent use.
type TransTable struct {
	entries []TTEntry
	mask    uint64
	stats   TTStats
}

// NewTransTable allocates the largest power-of-two entry count that fits in
// sizeMB megabytes (at least one entry).
func NewTransTable(sizeMB int) *TransTable {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	budget := uint64(sizeMB) * 1024 * 1024 / entrySize
	count := uint64(1)
	for count*2 <= budget {
		count *= 2
	}
	return &TransTable{entries: make([]TTEntry, count), mask: count - 1}
}

// Len returns the capacity in entries.
func (tt *TransTable) Len() int { return len(tt.entries) }

// Stats returns the traffic counters.
func (tt *TransTable) Stats() TTStats { return tt.stats }

// Clear empties every slot and resets the counters.
func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.stats = TTStats{}
}

// Probe returns the entry stored for hash, if the slot holds that exact key.
func (tt *TransTable) Probe(hash uint64) (TTEntry, bool) {
	tt.stats.Probes++
	e := tt.entries[hash&tt.mask]
	if e.Flag == EmptyFlag || e.Hash != hash {
		return TTEntry{}, false
	}
	tt.stats.Hits++
	return e, true
}

// Store writes an entry when its slot is empty or the new result was
// searched at least as deep as the one it replaces. Mate scores are stored
// relative to the node so they stay valid at any ply.
func (tt *TransTable) Store(hash uint64, depth int8, ply int, move mg.Move, score int32, flag uint8) {
	slot := &tt.entries[hash&tt.mask]
	if slot.Flag != EmptyFlag && depth < slot.Depth {
		tt.stats.Rejected++
		return
	}
	if slot.Flag != EmptyFlag && slot.Hash != hash {
		tt.stats.Overwrites++
	}
	tt.stats.Stores++

	if score > mateThreshold {
		score += int32(ply)
	} else if score < -mateThreshold {
		score -= int32(ply)
	}
	*slot = TTEntry{Hash: hash, Move: move, Score: score, Depth: depth, Flag: flag}
}

// scoreAt converts a stored score back to the probing node's ply.
func (e TTEntry) scoreAt(ply int) int32 {
	score := e.Score
	if score > mateThreshold {
		score -= int32(ply)
	} else if score < -mateThreshold {
		score += int32(ply)
	}
	return score
}
