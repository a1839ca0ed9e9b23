package board

import (
	"errors"
	"fmt"
	"strings"
)

// Color identifies the side a piece belongs to. The zero value is not a
// valid color.
type Color uint8

const (
	noColor Color = iota
	// First starts on rows 0-3 and moves toward increasing y.
	First
	// Second starts on rows 6-9 and moves toward decreasing y.
	Second
)

var ErrInvalidColor = errors.New("invalid color")

func (c Color) String() string {
	switch c {
	case First:
		return "first"
	case Second:
		return "second"
	}
	return "none"
}

func (c Color) Valid() bool {
	return c == First || c == Second
}

// Opponent returns the other side. The invalid color has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case First:
		return Second
	case Second:
		return First
	}
	return noColor
}

// forward is the sign of a forward y step for this color.
func (c Color) forward() int8 {
	switch c {
	case First:
		return 1
	case Second:
		return -1
	}
	return 0
}

// IsForward returns true if stepping from `from` to `to` moves this color
// toward the opponent's home rows.
func (c Color) IsForward(from, to Cell) bool {
	dy := to.Y - from.Y
	switch c.forward() {
	case 1:
		return dy > 0
	case -1:
		return dy < 0
	}
	return false
}

// ParseColor accepts "first"/"second" and the older "white"/"black" names.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "first", "f", "white", "w":
		return First, nil
	case "second", "s", "black", "b":
		return Second, nil
	}
	return noColor, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}
