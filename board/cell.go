package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dim is the side length of the board.
const Dim = 10

var ErrBadCell = errors.New("cell must look like x,y")

// A Cell is a single square of the board, addressed by column x and row y.
// A Cell may hold out-of-range coordinates; such a cell is never returned as
// a neighbor and is never accepted as an occupant.
type Cell struct {
	X int8
	Y int8
}

// diagonals is the fixed order in which neighbors are enumerated.
var diagonals = [4][2]int8{
	{1, 1},
	{-1, 1},
	{1, -1},
	{-1, -1},
}

func NewCell(x, y int) Cell {
	return Cell{X: int8(x), Y: int8(y)}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ShortString is the form typed in the shell, like "3,5".
func (c Cell) ShortString() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// IsWithinBoard returns true if both coordinates lie on the 10x10 board.
func (c Cell) IsWithinBoard() bool {
	return c.X >= 0 && c.X < Dim && c.Y >= 0 && c.Y < Dim
}

// IsPlayable returns true for the dark squares, the only ones pieces use.
func (c Cell) IsPlayable() bool {
	return c.IsWithinBoard() && (c.X+c.Y)%2 == 0
}

// Neighbors returns the diagonally adjacent cells that are on the board.
// The order is always (+1,+1), (-1,+1), (+1,-1), (-1,-1).
func (c Cell) Neighbors() []Cell {
	neighbors := make([]Cell, 0, 4)
	for _, d := range diagonals {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if n.IsWithinBoard() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// LandingCell returns the cell one step beyond over, continuing the diagonal
// from c through over. The bool is false if that cell falls off the board.
func (c Cell) LandingCell(over Cell) (Cell, bool) {
	next := Cell{X: 2*over.X - c.X, Y: 2*over.Y - c.Y}
	if !next.IsWithinBoard() {
		return Cell{}, false
	}
	return next, true
}

// Less orders cells row by row, then by column.
func (c Cell) Less(o Cell) bool {
	if c.Y != o.Y {
		return c.Y < o.Y
	}
	return c.X < o.X
}

// ParseCell parses a user-supplied coordinate like "3,5" or "(3, 5)".
func ParseCell(s string) (Cell, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	if x < -128 || x > 127 || y < -128 || y > 127 {
		return Cell{}, fmt.Errorf("%w: %q out of range", ErrBadCell, s)
	}
	return NewCell(x, y), nil
}
