package movegen

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

func TestSearchCapturesNotOpponent(t *testing.T) {
	is := is.New(t)
	occ := mustOccupancy(t, []board.Cell{c(5, 3), c(6, 4)}, nil)
	is.Equal(SearchCaptures(c(5, 3), c(6, 4), board.First, occ, nil), nil)
	is.Equal(SearchCaptures(c(5, 3), c(4, 4), board.First, occ, nil), nil)
}

func TestSearchCapturesBlocked(t *testing.T) {
	is := is.New(t)
	occ := mustOccupancy(t,
		[]board.Cell{c(5, 3), c(7, 5), c(8, 8)},
		[]board.Cell{c(6, 4), c(9, 9), c(2, 2), c(1, 1)})
	// Own piece on the landing cell.
	is.Equal(SearchCaptures(c(5, 3), c(6, 4), board.First, occ, nil), nil)
	// Opposing piece on the landing cell.
	is.Equal(SearchCaptures(c(3, 3), c(2, 2), board.First, occ, nil), nil)
	// Landing off the board.
	is.Equal(SearchCaptures(c(8, 8), c(9, 9), board.First, occ, nil), nil)
}

func TestSearchCapturesContinuation(t *testing.T) {
	is := is.New(t)
	occ := mustOccupancy(t,
		[]board.Cell{c(8, 4), c(6, 4), c(6, 2), c(5, 5), c(4, 2)},
		[]board.Cell{c(9, 3)})
	cs := SearchCaptures(c(9, 3), c(8, 4), board.Second, occ, nil)
	is.True(cs != nil)
	is.Equal(cs.LongestLength(), 3)
	is.Equal(cs.Len(), 2)

	// Starting from the middle of the chain with (8,4) already taken.
	history := []board.Cell{c(8, 4)}
	cs = SearchCaptures(c(7, 5), c(6, 4), board.Second, occ, history)
	is.Equal(cs.LongestLength(), 2)
	is.Equal(history, []board.Cell{c(8, 4)}) // caller's history is untouched
	for _, ch := range cs.Chains() {
		is.Equal(ch[0], move.Capture{Landing: c(5, 3), Captured: c(6, 4)})
	}
}

func TestSearchCapturesHistoryExcludesTargets(t *testing.T) {
	is := is.New(t)
	occ := mustOccupancy(t, []board.Cell{c(5, 3)}, []board.Cell{c(6, 4), c(6, 6)})
	cs := SearchCaptures(c(5, 3), c(6, 4), board.First, occ, nil)
	is.Equal(cs.Chains(), []move.Chain{{{Landing: c(7, 5), Captured: c(6, 4)}, {Landing: c(5, 7), Captured: c(6, 6)}}})

	// With (6,6) already captured the chain stops after one jump.
	cs = SearchCaptures(c(5, 3), c(6, 4), board.First, occ, []board.Cell{c(6, 6)})
	is.Equal(cs.Chains(), []move.Chain{{{Landing: c(7, 5), Captured: c(6, 4)}}})
}
