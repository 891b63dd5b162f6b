package chessmg

import (
	"fmt"
	"math/bits"
)

// Square index layout: a1 = 0, b1 = 1, ..., h8 = 63 (rank*8 + file).

const (
	FileA uint64 = 0x0101010101010101
	FileB        = FileA << 1
	FileG        = FileA << 6
	FileH        = FileA << 7

	Rank1 uint64 = 0x00000000000000FF
	Rank2        = Rank1 << 8
	Rank3        = Rank1 << 16
	Rank4        = Rank1 << 24
	Rank5        = Rank1 << 32
	Rank6        = Rank1 << 40
	Rank7        = Rank1 << 48
	Rank8        = Rank1 << 56
)

// FileMasks and RankMasks index the eight files (a..h) and ranks (1..8).
var FileMasks = [8]uint64{FileA, FileA << 1, FileA << 2, FileA << 3, FileA << 4, FileA << 5, FileA << 6, FileA << 7}
var RankMasks = [8]uint64{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// Shift operators. East/west shifts mask off the file that would wrap around.
func North(b uint64) uint64     { return b << 8 }
func South(b uint64) uint64     { return b >> 8 }
func East(b uint64) uint64      { return (b << 1) &^ FileA }
func West(b uint64) uint64      { return (b >> 1) &^ FileH }
func NorthEast(b uint64) uint64 { return (b << 9) &^ FileA }
func NorthWest(b uint64) uint64 { return (b << 7) &^ FileH }
func SouthEast(b uint64) uint64 { return (b >> 7) &^ FileA }
func SouthWest(b uint64) uint64 { return (b >> 9) &^ FileH }

// Direction indexes the eight ray directions. Orthogonal directions come first.
type Direction uint8

const (
	DirNorth Direction = iota
	DirSouth
	DirEast
	DirWest
	DirNorthEast
	DirNorthWest
	DirSouthEast
	DirSouthWest
)

var shifts = [8]func(uint64) uint64{North, South, East, West, NorthEast, NorthWest, SouthEast, SouthWest}

var orthogonalDirs = []Direction{DirNorth, DirSouth, DirEast, DirWest}
var diagonalDirs = []Direction{DirNorthEast, DirNorthWest, DirSouthEast, DirSouthWest}
var allDirs = []Direction{DirNorth, DirSouth, DirEast, DirWest, DirNorthEast, DirNorthWest, DirSouthEast, DirSouthWest}

// Shift moves every bit of b one step in direction d.
func (d Direction) Shift(b uint64) uint64 { return shifts[d](b) }

// Orthogonal reports whether the direction runs along a file or rank.
func (d Direction) Orthogonal() bool { return d <= DirWest }

// Axis constrains a pinned piece to the line through its king.
type Axis uint8

const (
	AxisNone         Axis = 0
	AxisFile         Axis = 1
	AxisRank         Axis = 3
	AxisDiagonal     Axis = 5 // a1-h8 direction, file-rank constant
	AxisAntiDiagonal Axis = 7 // a8-h1 direction, file+rank constant
)

var directionAxis = [8]Axis{AxisFile, AxisFile, AxisRank, AxisRank, AxisDiagonal, AxisAntiDiagonal, AxisAntiDiagonal, AxisDiagonal}

// Axis returns the line a direction travels along.
func (d Direction) Axis() Axis { return directionAxis[d] }

// Coord is a (file, rank) pair, both in [0, 8).
type Coord struct {
	File int
	Rank int
}

// CoordOf returns the coordinate of the lowest set bit of mask.
func CoordOf(mask uint64) Coord {
	sq := bits.TrailingZeros64(mask)
	return Coord{File: sq % 8, Rank: sq / 8}
}

// Square returns the square index of the coordinate.
func (c Coord) Square() int { return c.Rank*8 + c.File }

// Mask returns the single-bit mask of the coordinate.
func (c Coord) Mask() uint64 { return bb(c.Square()) }

// axisBetween returns the line shared by two distinct coordinates, or AxisNone.
func axisBetween(a, b Coord) Axis {
	switch {
	case a == b:
		return AxisNone
	case a.File == b.File:
		return AxisFile
	case a.Rank == b.Rank:
		return AxisRank
	case a.File-a.Rank == b.File-b.Rank:
		return AxisDiagonal
	case a.File+a.Rank == b.File+b.Rank:
		return AxisAntiDiagonal
	}
	return AxisNone
}

// Precomputed knight and king target masks per square.
var knightMoves [64]uint64
var kingMoves [64]uint64

func init() {
	initLeaperTables()
}

func initLeaperTables() {
	for sq := 0; sq < 64; sq++ {
		from := bb(sq)

		var k uint64
		for _, d := range allDirs {
			k |= d.Shift(from)
		}
		kingMoves[sq] = k

		n1 := NorthEast(North(from)) | NorthWest(North(from))
		n2 := NorthEast(East(from)) | SouthEast(East(from))
		n3 := SouthEast(South(from)) | SouthWest(South(from))
		n4 := NorthWest(West(from)) | SouthWest(West(from))
		knightMoves[sq] = n1 | n2 | n3 | n4
	}
}

// bb returns a bitboard with the given square bit set.
func bb(sq int) uint64 { return 1 << uint(sq) }

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) uint64 {
	x := *mask & -(*mask)
	*mask &= *mask - 1
	return x
}

// SquareIndex returns the index of a single-bit mask.
func SquareIndex(mask uint64) int { return bits.TrailingZeros64(mask) }

// SquareName renders a single-bit mask as algebraic text, e.g. "e4".
func SquareName(mask uint64) string {
	if mask == 0 {
		return "-"
	}
	sq := SquareIndex(mask)
	return string([]byte{byte('a' + sq%8), byte('1' + sq/8)})
}

// ParseSquare converts algebraic text ("e4") into a single-bit mask.
func ParseSquare(s string) (uint64, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("invalid square %q", s)
	}
	return bb(int(s[1]-'1')*8 + int(s[0]-'a')), nil
}
