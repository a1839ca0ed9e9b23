package move

import (
	"strings"

	"github.com/domino14/draughts/board"
)

// A Capture is a single jump: the piece lands on Landing and removes the
// opposing piece on Captured.
type Capture struct {
	Landing  board.Cell
	Captured board.Cell
}

func (c Capture) String() string {
	return c.Landing.String() + "x" + c.Captured.String()
}

// A Chain is the ordered list of jumps a piece makes in one turn, first jump
// first.
type Chain []Capture

func (ch Chain) String() string {
	parts := make([]string, len(ch))
	for i, c := range ch {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Key returns a value that is equal for two chains exactly when they hold
// the same captures in the same order. Two bytes are used per cell.
func (ch Chain) Key() string {
	var b strings.Builder
	b.Grow(len(ch) * 4)
	for _, c := range ch {
		b.WriteByte(byte(c.Landing.X))
		b.WriteByte(byte(c.Landing.Y))
		b.WriteByte(byte(c.Captured.X))
		b.WriteByte(byte(c.Captured.Y))
	}
	return b.String()
}

func (ch Chain) Equals(o Chain) bool {
	if len(ch) != len(o) {
		return false
	}
	for i := range ch {
		if ch[i] != o[i] {
			return false
		}
	}
	return true
}

// CapturedCells returns the cells of the removed pieces, in capture order.
func (ch Chain) CapturedCells() []board.Cell {
	cells := make([]board.Cell, len(ch))
	for i, c := range ch {
		cells[i] = c.Captured
	}
	return cells
}

// Landing returns the final cell of the chain.
func (ch Chain) Landing() (board.Cell, bool) {
	if len(ch) == 0 {
		return board.Cell{}, false
	}
	return ch[len(ch)-1].Landing, true
}

// Copy returns a chain that shares no memory with ch.
func (ch Chain) Copy() Chain {
	c := make(Chain, len(ch))
	copy(c, ch)
	return c
}
