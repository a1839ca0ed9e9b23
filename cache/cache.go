package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
	"github.com/domino14/draughts/zobrist"
)

// The cache keeps the legal moves of pieces in positions that were already
// resolved, keyed by the zobrist hash of the position and the queried cell.
// It is useful when the same positions are queried over and over, for
// example from the interactive shell.

const DefaultMaxEntries = 1 << 14

type cacheKey struct {
	hash uint64
	cell board.Cell
}

type entry struct {
	occ   *board.Occupancy
	plays []*move.Move
}

// LoadFunc computes the moves on a cache miss.
type LoadFunc func(cell board.Cell, occ *board.Occupancy) ([]*move.Move, error)

// MoveCache is safe for concurrent use.
type MoveCache struct {
	sync.Mutex
	z          *zobrist.Zobrist
	maxEntries int
	objects    map[cacheKey]entry
	hits       int
	misses     int
}

// NewMoveCache creates a cache holding at most maxEntries results. When it
// is full it is emptied before the next result is stored.
func NewMoveCache(maxEntries int) *MoveCache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &MoveCache{
		z:          zobrist.New(),
		maxEntries: maxEntries,
		objects:    make(map[cacheKey]entry),
	}
}

func copyPlays(plays []*move.Move) []*move.Move {
	cp := make([]*move.Move, len(plays))
	copy(cp, plays)
	return cp
}

// Get returns the cached moves for cell in occ, calling loadFunc on a miss.
// Errors from loadFunc are returned and not cached.
func (c *MoveCache) Get(cell board.Cell, occ *board.Occupancy, loadFunc LoadFunc) ([]*move.Move, error) {
	k := cacheKey{hash: c.z.Hash(occ), cell: cell}

	c.Lock()
	defer c.Unlock()
	if e, ok := c.objects[k]; ok && e.occ.Equals(occ) {
		c.hits++
		log.Debug().Uint64("hash", k.hash).Stringer("cell", cell).Msg("getting moves from cache")
		return copyPlays(e.plays), nil
	}
	c.misses++
	log.Debug().Uint64("hash", k.hash).Stringer("cell", cell).Msg("loading into cache")
	plays, err := loadFunc(cell, occ)
	if err != nil {
		return nil, err
	}
	if len(c.objects) >= c.maxEntries {
		log.Debug().Int("entries", len(c.objects)).Msg("cache full, clearing")
		c.objects = make(map[cacheKey]entry)
	}
	c.objects[k] = entry{occ: occ, plays: copyPlays(plays)}
	return plays, nil
}

// Stats returns the number of hits and misses so far.
func (c *MoveCache) Stats() (hits, misses int) {
	c.Lock()
	defer c.Unlock()
	return c.hits, c.misses
}

func (c *MoveCache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}

func (c *MoveCache) Clear() {
	c.Lock()
	defer c.Unlock()
	c.objects = make(map[cacheKey]entry)
}
