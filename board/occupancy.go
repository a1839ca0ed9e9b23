package board

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrOverlappingPieces = errors.New("cell is occupied by both colors")
	ErrOffBoard          = errors.New("cell is not on the board")
)

// Occupancy is a snapshot of which cells hold a piece, and of which color.
// It is never modified after construction, so it can be shared freely
// between goroutines.
type Occupancy struct {
	colors map[Cell]Color
	first  []Cell
	second []Cell
}

// NewOccupancy builds a snapshot from the cells of each color. A cell may
// not be listed for both colors, and every cell must be on the board.
// A cell listed twice for the same color counts once.
func NewOccupancy(first, second []Cell) (*Occupancy, error) {
	o := &Occupancy{colors: make(map[Cell]Color, len(first)+len(second))}
	for _, c := range first {
		if !c.IsWithinBoard() {
			return nil, fmt.Errorf("%w: %v", ErrOffBoard, c)
		}
		if _, ok := o.colors[c]; ok {
			continue
		}
		o.colors[c] = First
		o.first = append(o.first, c)
	}
	for _, c := range second {
		if !c.IsWithinBoard() {
			return nil, fmt.Errorf("%w: %v", ErrOffBoard, c)
		}
		if col, ok := o.colors[c]; ok {
			if col == First {
				return nil, fmt.Errorf("%w: %v", ErrOverlappingPieces, c)
			}
			continue
		}
		o.colors[c] = Second
		o.second = append(o.second, c)
	}
	sortCells(o.first)
	sortCells(o.second)
	return o, nil
}

// EmptyOccupancy returns a board with no pieces on it.
func EmptyOccupancy() *Occupancy {
	return &Occupancy{colors: map[Cell]Color{}}
}

// StartingOccupancy returns the standard opening layout: every playable
// cell on rows 0-3 holds a First piece, every playable cell on rows 6-9 a
// Second piece.
func StartingOccupancy() *Occupancy {
	var first, second []Cell
	for y := 0; y < Dim; y++ {
		for x := 0; x < Dim; x++ {
			c := NewCell(x, y)
			if !c.IsPlayable() {
				continue
			}
			switch {
			case y <= 3:
				first = append(first, c)
			case y >= 6:
				second = append(second, c)
			}
		}
	}
	o, err := NewOccupancy(first, second)
	if err != nil {
		// Cannot happen with the cells generated above.
		panic(err)
	}
	return o
}

// PiecesOf returns the cells occupied by the given color, ordered row by row.
func (o *Occupancy) PiecesOf(c Color) ([]Cell, error) {
	var src []Cell
	switch c {
	case First:
		src = o.first
	case Second:
		src = o.second
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidColor, c)
	}
	cells := make([]Cell, len(src))
	copy(cells, src)
	return cells, nil
}

// AllOccupied returns every occupied cell, ordered row by row.
func (o *Occupancy) AllOccupied() []Cell {
	cells := make([]Cell, 0, len(o.first)+len(o.second))
	cells = append(cells, o.first...)
	cells = append(cells, o.second...)
	sortCells(cells)
	return cells
}

// ColorAt returns the color of the piece on c, if there is one.
func (o *Occupancy) ColorAt(c Cell) (Color, bool) {
	col, ok := o.colors[c]
	return col, ok
}

func (o *Occupancy) IsOccupied(c Cell) bool {
	_, ok := o.colors[c]
	return ok
}

func (o *Occupancy) NumPieces(c Color) int {
	switch c {
	case First:
		return len(o.first)
	case Second:
		return len(o.second)
	}
	return 0
}

// Equals reports whether both snapshots hold the same pieces.
func (o *Occupancy) Equals(o2 *Occupancy) bool {
	if len(o.colors) != len(o2.colors) {
		return false
	}
	for c, col := range o.colors {
		if col2, ok := o2.colors[c]; !ok || col2 != col {
			return false
		}
	}
	return true
}

func sortCells(cells []Cell) {
	sort.Slice(cells, func(i, j int) bool {
		return cells[i].Less(cells[j])
	})
}
