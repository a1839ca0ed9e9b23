package move

import (
	"fmt"

	"github.com/domino14/draughts/board"
)

// MoveType tells the two kinds of move apart.
type MoveType uint8

const (
	// MoveTypeSimple is a one-step diagonal move to an empty cell.
	MoveTypeSimple MoveType = iota
	// MoveTypeCapture is a full capture chain, applied as one turn.
	MoveTypeCapture
)

func (t MoveType) String() string {
	switch t {
	case MoveTypeSimple:
		return "simple"
	case MoveTypeCapture:
		return "capture"
	}
	return "UNHANDLED"
}

// Move is a legal move for one piece. A simple move only has a target; a
// capture move carries its whole chain, and its target is the last landing.
type Move struct {
	action MoveType
	from   board.Cell
	to     board.Cell
	chain  Chain
}

// NewSimpleMove creates a non-capturing move from `from` to `to`.
func NewSimpleMove(from, to board.Cell) *Move {
	return &Move{action: MoveTypeSimple, from: from, to: to}
}

// NewCaptureMove creates a move from a capture chain. The chain is copied.
// It returns nil for an empty chain.
func NewCaptureMove(from board.Cell, chain Chain) *Move {
	to, ok := chain.Landing()
	if !ok {
		return nil
	}
	return &Move{action: MoveTypeCapture, from: from, to: to, chain: chain.Copy()}
}

func (m *Move) Action() MoveType {
	return m.action
}

func (m *Move) From() board.Cell {
	return m.from
}

// Target is the cell the piece ends up on.
func (m *Move) Target() board.Cell {
	return m.to
}

// Chain returns the captures of a capture move, or nil for a simple move.
func (m *Move) Chain() Chain {
	return m.chain
}

// NumCaptured is the number of opposing pieces this move removes.
func (m *Move) NumCaptured() int {
	return len(m.chain)
}

// Key identifies the move by value; equal moves have equal keys.
func (m *Move) Key() string {
	switch m.action {
	case MoveTypeSimple:
		return string([]byte{byte(m.action), byte(m.from.X), byte(m.from.Y),
			byte(m.to.X), byte(m.to.Y)})
	case MoveTypeCapture:
		return string([]byte{byte(m.action), byte(m.from.X), byte(m.from.Y)}) +
			m.chain.Key()
	}
	return ""
}

func (m *Move) Equals(o *Move) bool {
	if m.action != o.action || m.from != o.from || m.to != o.to {
		return false
	}
	return m.chain.Equals(o.chain)
}

// ShortDescription provides a short description, useful for logging or
// user display.
func (m *Move) ShortDescription() string {
	switch m.action {
	case MoveTypeSimple:
		return m.to.String()
	case MoveTypeCapture:
		return m.chain.String()
	}
	return "UNHANDLED"
}

// String provides a string just for debugging purposes.
func (m *Move) String() string {
	switch m.action {
	case MoveTypeSimple:
		return fmt.Sprintf("<action: simple from: %v to: %v>", m.from, m.to)
	case MoveTypeCapture:
		return fmt.Sprintf("<action: capture from: %v chain: %v captured: %d>",
			m.from, m.chain, len(m.chain))
	}
	return "<Unhandled move>"
}
