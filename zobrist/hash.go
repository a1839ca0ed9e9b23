package zobrist

import (
	"lukechampine.com/frand"

	"github.com/domino14/draughts/board"
)

const bignum = 1<<63 - 2

// generate a zobrist hash for a draughts position.
// https://en.wikipedia.org/wiki/Zobrist_hashing
type Zobrist struct {
	// posTable[cell][color]; index 0 is First, 1 is Second.
	posTable [board.Dim * board.Dim][2]uint64
}

// New returns a Zobrist with freshly drawn random keys. Hashes are only
// comparable between positions hashed with the same Zobrist.
func New() *Zobrist {
	z := &Zobrist{}
	z.Initialize()
	return z
}

func (z *Zobrist) Initialize() {
	for i := range z.posTable {
		for j := range z.posTable[i] {
			z.posTable[i][j] = frand.Uint64n(bignum) + 1
		}
	}
}

func (z *Zobrist) key(c board.Cell, col board.Color) uint64 {
	if !c.IsWithinBoard() {
		return 0
	}
	idx := int(c.Y)*board.Dim + int(c.X)
	switch col {
	case board.First:
		return z.posTable[idx][0]
	case board.Second:
		return z.posTable[idx][1]
	}
	return 0
}

// Hash returns the hash of every piece on the board.
func (z *Zobrist) Hash(occ *board.Occupancy) uint64 {
	key := uint64(0)
	for _, c := range occ.AllOccupied() {
		col, _ := occ.ColorAt(c)
		key ^= z.key(c, col)
	}
	return key
}

// Toggle adds a piece of color col on c to the hash, or removes it if it
// is already there. A caller applying a move can update its hash with one
// Toggle per piece moved or captured instead of rehashing the board.
func (z *Zobrist) Toggle(h uint64, c board.Cell, col board.Color) uint64 {
	return h ^ z.key(c, col)
}
