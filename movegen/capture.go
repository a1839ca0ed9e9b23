package movegen

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

// SearchCaptures finds the longest capture chains that start with the piece
// on `from` jumping over `toward`. history holds the cells already captured
// earlier in the chain; it is never modified. It returns nil when no jump
// over `toward` is possible.
//
// Captured pieces stay on the board for the rest of the search: nothing can
// land on them, but they can't be captured a second time either.
func SearchCaptures(from, toward board.Cell, mover board.Color, occ *board.Occupancy,
	history []board.Cell) *ChainSet {

	return searchCaptures(from, toward, mover, occ, history, 0)
}

func searchCaptures(from, toward board.Cell, mover board.Color, occ *board.Occupancy,
	history []board.Cell, depth int) *ChainSet {

	if col, ok := occ.ColorAt(toward); !ok || col != mover.Opponent() {
		log.Trace().Int("depth", depth).Stringer("from", from).Stringer("toward", toward).
			Msg("not-opponent")
		return nil
	}
	landing, ok := from.LandingCell(toward)
	if !ok || occ.IsOccupied(landing) {
		log.Trace().Int("depth", depth).Stringer("from", from).Stringer("toward", toward).
			Msg("jump-blocked")
		return nil
	}
	jump := move.Capture{Landing: landing, Captured: toward}

	// Each branch gets its own history; siblings never see each other's
	// captures.
	captured := make([]board.Cell, len(history), len(history)+1)
	copy(captured, history)
	captured = append(captured, toward)

	next := lo.Filter(landing.Neighbors(), func(n board.Cell, _ int) bool {
		return !lo.Contains(captured, n)
	})
	log.Trace().Int("depth", depth).Stringer("jump", jump).Int("explore", len(next)).
		Msg("exploring")

	continuations := make([]*ChainSet, 0, len(next))
	for _, n := range next {
		continuations = append(continuations,
			searchCaptures(landing, n, mover, occ, captured, depth+1))
	}
	merged := MergeAll(continuations...)
	if merged.LongestLength() == 0 {
		merged = NewChainSet(move.Chain{jump})
	} else {
		merged.Prepend(jump)
	}
	log.Trace().Int("depth", depth).Stringer("jump", jump).Int("chains", merged.Len()).
		Int("length", merged.LongestLength()).Msg("merged")
	return merged
}
