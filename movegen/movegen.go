// Package movegen contains the move-generating functions: the recursive
// capture-chain search and the policy that decides which moves are legal.
package movegen

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/domino14/draughts/board"
	"github.com/domino14/draughts/move"
)

var ErrUnidentifiedPiece = errors.New("no piece on this cell")

// MoveGenerator is a generic interface for generating moves.
type MoveGenerator interface {
	GenAll(cell board.Cell, occ *board.Occupancy) error
	Plays() []*move.Move
}

// RulesGenerator generates the legal moves of one piece under the
// mandatory-capture, longest-chain rules. It keeps the plays of the last
// call to GenAll, so it should not be shared between goroutines.
type RulesGenerator struct {
	plays []*move.Move
}

func NewRulesGenerator() *RulesGenerator {
	return &RulesGenerator{}
}

// GenAll generates every legal move for the piece on cell.
func (gen *RulesGenerator) GenAll(cell board.Cell, occ *board.Occupancy) error {
	plays, err := LegalMoves(cell, occ)
	if err != nil {
		gen.plays = nil
		return err
	}
	gen.plays = plays
	return nil
}

// Plays returns the moves found by the last GenAll.
func (gen *RulesGenerator) Plays() []*move.Move {
	return gen.plays
}

// LegalMoves returns the legal moves of the piece on cell. If any capture is
// available, only the longest capture chains are returned, across all
// starting directions; otherwise the forward one-step moves are. A piece
// that cannot move gets an empty list, not an error.
func LegalMoves(cell board.Cell, occ *board.Occupancy) ([]*move.Move, error) {
	color, ok := occ.ColorAt(cell)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnidentifiedPiece, cell)
	}

	var simple []*move.Move
	captures := &ChainSet{}
	hasCaptured := false

	for _, n := range cell.Neighbors() {
		if col, ok := occ.ColorAt(n); ok && col == color {
			continue
		}
		if !hasCaptured && color.IsForward(cell, n) && !occ.IsOccupied(n) {
			simple = append(simple, move.NewSimpleMove(cell, n))
			continue
		}
		found := SearchCaptures(cell, n, color, occ, nil)
		if found == nil {
			continue
		}
		if !hasCaptured {
			// Captures are mandatory.
			hasCaptured = true
			simple = nil
		}
		captures.Merge(found)
	}

	if !hasCaptured {
		if simple == nil {
			simple = []*move.Move{}
		}
		sort.Slice(simple, func(i, j int) bool {
			return simple[i].Target().Less(simple[j].Target())
		})
		log.Debug().Stringer("cell", cell).Stringer("color", color).
			Int("simple", len(simple)).Msg("generated-moves")
		return simple, nil
	}

	chains := captures.Chains()
	plays := make([]*move.Move, 0, len(chains))
	for _, ch := range chains {
		plays = append(plays, move.NewCaptureMove(cell, ch))
	}
	log.Debug().Stringer("cell", cell).Stringer("color", color).
		Int("captures", len(plays)).Int("length", captures.LongestLength()).
		Msg("generated-moves")
	return plays, nil
}
